// Package staffrepo provides the gorm persistence of staff members.
package staffrepo

import (
	"context"
	"errors"

	"printshop/internal/adapters/out/postgres/pgerrs"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/staff"
	"printshop/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// StaffDTO is a row of the staff table.
type StaffDTO struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username               string    `gorm:"size:150;not null;uniqueIndex"`
	FullName               string    `gorm:"size:255;not null"`
	DayBeforeNotifications bool      `gorm:"not null"`
}

func (StaffDTO) TableName() string {
	return "staff"
}

func fromDomain(m *staff.Member) StaffDTO {
	return StaffDTO{
		ID:                     m.ID().Google(),
		Username:               m.Username(),
		FullName:               m.FullName(),
		DayBeforeNotifications: m.DayBeforeNotifications(),
	}
}

func toDomain(dto StaffDTO) (*staff.Member, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	return staff.NewMember(id, dto.Username, dto.FullName, dto.DayBeforeNotifications)
}

// GormStaffRepository implements StaffRepository using GORM.
type GormStaffRepository struct {
	db *gorm.DB
}

func NewGormStaffRepository(db *gorm.DB) *GormStaffRepository {
	return &GormStaffRepository{db: db}
}

// Add reports a duplicate username as an invalid "username".
func (r *GormStaffRepository) Add(ctx context.Context, member *staff.Member) error {
	if err := member.Validate(); err != nil {
		return err
	}

	dto := fromDomain(member)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Translate(err, "username")
	}
	return nil
}

// Delete removes a member. The schema nulls items.responsible_id and order_history.actor_id.
func (r *GormStaffRepository) Delete(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).Delete(&StaffDTO{}, "id = ?", id.Google())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("staff", id.String())
	}
	return nil
}

func (r *GormStaffRepository) Get(ctx context.Context, id kernel.UUID) (*staff.Member, error) {
	var dto StaffDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Google()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("staff", id.String())
		}
		return nil, err
	}
	return toDomain(dto)
}

func (r *GormStaffRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*staff.Member, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	raw := make([]string, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.String())
	}

	var dtos []StaffDTO
	if err := r.db.WithContext(ctx).
		Where("id = ANY(?::uuid[])", pq.Array(raw)).
		Order("username").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	members := make([]*staff.Member, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, nil
}
