// Package catalogrepo provides the gorm persistence of the product catalog.
package catalogrepo

import (
	"context"

	"printshop/internal/core/domain/model/catalog"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductDTO is a row of the products table.
type ProductDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"size:100;not null"`
	Category string    `gorm:"size:50;not null"`
	Icon     string    `gorm:"size:50;not null"`
}

func (ProductDTO) TableName() string {
	return "products"
}

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) Add(ctx context.Context, product *catalog.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	dto := ProductDTO{
		ID:       product.ID().Google(),
		Name:     product.Name(),
		Category: product.Category().String(),
		Icon:     product.Icon(),
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormProductRepository) Delete(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).Delete(&ProductDTO{}, "id = ?", id.Google())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", id.String())
	}
	return nil
}
