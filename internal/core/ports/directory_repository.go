package ports

import (
	"context"

	"printshop/internal/core/domain/model/catalog"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/settings"
	"printshop/internal/core/domain/model/staff"
)

// StaffRepository stores staff members.
type StaffRepository interface {
	Add(ctx context.Context, member *staff.Member) error

	// Delete removes a member; item and history references to it are cleared.
	Delete(ctx context.Context, id kernel.UUID) error

	Get(ctx context.Context, id kernel.UUID) (*staff.Member, error)

	// GetByIDs returns the members among ids that exist.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*staff.Member, error)
}

// ProductRepository stores the product catalog.
type ProductRepository interface {
	Add(ctx context.Context, product *catalog.Product) error
	Delete(ctx context.Context, id kernel.UUID) error
}

// SettingsRepository stores the singleton settings rows.
// Getters create the default row on first access.
type SettingsRepository interface {
	GetCompany(ctx context.Context) (settings.Company, error)
	SaveCompany(ctx context.Context, company settings.Company) error
	GetTelegram(ctx context.Context) (settings.Telegram, error)
	SaveTelegram(ctx context.Context, telegram settings.Telegram) error
}
