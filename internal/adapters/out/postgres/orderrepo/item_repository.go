package orderrepo

import (
	"context"
	"errors"
	"time"

	"printshop/internal/adapters/out/postgres/pgerrs"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var itemColumns = []string{
	"name", "quantity", "deadline", "status", "responsible_id", "comment", "ready_at", "is_archived",
}

// GormItemRepository implements ItemRepository using GORM.
type GormItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormItemRepository(db *gorm.DB, tracker aggregateTracker) *GormItemRepository {
	return &GormItemRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormItemRepository) Add(ctx context.Context, item *order.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(item)
	if err := r.db.WithContext(ctx).Omit("seq").Create(&dto).Error; err != nil {
		return pgerrs.Translate(err, "responsible")
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Update writes every mutable column, including cleared ones.
func (r *GormItemRepository) Update(ctx context.Context, item *order.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(item)
	result := r.db.WithContext(ctx).Model(&ItemDTO{}).
		Where("id = ? AND order_id = ?", dto.ID, dto.OrderID).
		Select(itemColumns).
		Updates(&dto)
	if result.Error != nil {
		return pgerrs.Translate(result.Error, "responsible")
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("item", item.ID().String(), gorm.ErrRecordNotFound)
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

func (r *GormItemRepository) Delete(ctx context.Context, ids []kernel.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Where("id = ANY(?::uuid[])", pq.Array(idStrings(ids))).
		Delete(&ItemDTO{}).Error
}

func (r *GormItemRepository) Get(ctx context.Context, id kernel.UUID) (*order.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Google()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", id.String())
		}
		return nil, err
	}

	return itemToDomain(dto)
}

func (r *GormItemRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.Item, error) {
	var dtos []ItemDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Google()).
		Order("seq").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return itemsToDomain(dtos)
}

func (r *GormItemRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*order.Item, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var dtos []ItemDTO
	if err := r.db.WithContext(ctx).
		Where("id = ANY(?::uuid[])", pq.Array(idStrings(ids))).
		Order("seq").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return itemsToDomain(dtos)
}

func (r *GormItemRepository) GetPendingDueOn(ctx context.Context, date time.Time) ([]*order.Item, error) {
	var dtos []ItemDTO
	if err := r.db.WithContext(ctx).
		Where("deadline = ? AND NOT is_archived AND status <> ?", order.DateOf(date), order.Ready.String()).
		Order("order_id, seq").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return itemsToDomain(dtos)
}
