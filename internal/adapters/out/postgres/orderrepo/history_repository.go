package orderrepo

import (
	"context"

	"printshop/internal/adapters/out/postgres/pgerrs"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormHistoryRepository stores history entries. Entries are only ever inserted.
type GormHistoryRepository struct {
	db *gorm.DB
}

func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

// Append inserts entries one by one so seq follows the emission order.
func (r *GormHistoryRepository) Append(ctx context.Context, entries ...*order.HistoryEntry) error {
	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return err
		}

		dto := historyFromDomain(entry)
		if err := r.db.WithContext(ctx).Omit("seq").Create(&dto).Error; err != nil {
			return pgerrs.Translate(err, "actor")
		}
	}
	return nil
}

func (r *GormHistoryRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.HistoryEntry, error) {
	var dtos []HistoryDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Google()).
		Order("created_at DESC, seq DESC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]*order.HistoryEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := historyToDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
