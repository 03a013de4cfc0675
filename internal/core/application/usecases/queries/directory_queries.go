package queries

import (
	"context"
	"errors"

	"printshop/internal/core/domain/model/settings"
	"printshop/internal/core/ports"
	"printshop/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrListProductsQueryIsNotConstructed = errors.New(
		"ListProductsQuery must be created via NewListProductsQuery constructor",
	)
	ErrListStaffQueryIsNotConstructed = errors.New(
		"ListStaffQuery must be created via NewListStaffQuery constructor",
	)
	ErrGetSettingsQueryIsNotConstructed = errors.New(
		"GetSettingsQuery must be created via NewGetSettingsQuery constructor",
	)
)

// ListProductsQuery lists the catalog grouped by category, then by name.
type ListProductsQuery struct {
	guard guard.ConstructorGuard
}

func NewListProductsQuery() ListProductsQuery {
	return ListProductsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

type ProductResponse struct {
	ID       uuid.UUID
	Name     string
	Category string
	Icon     string
}

type ListProductsQueryHandler struct {
	db *gorm.DB
}

func NewListProductsQueryHandler(db *gorm.DB) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db}
}

func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]ProductResponse, 0)
	builder := psql.Select("id", "name", "category", "icon").From("products").OrderBy("category", "name")
	if err := scanRaw(h.db.WithContext(ctx), builder, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ListStaffQuery lists staff members by username.
type ListStaffQuery struct {
	guard guard.ConstructorGuard
}

func NewListStaffQuery() ListStaffQuery {
	return ListStaffQuery{guard: guard.NewConstructorGuard()}
}

func (q ListStaffQuery) Validate() error {
	return q.guard.Validate(ErrListStaffQueryIsNotConstructed)
}

type StaffResponse struct {
	ID                     uuid.UUID
	Username               string
	FullName               string
	DayBeforeNotifications bool
}

type ListStaffQueryHandler struct {
	db *gorm.DB
}

func NewListStaffQueryHandler(db *gorm.DB) ListStaffQueryHandler {
	return ListStaffQueryHandler{db: db}
}

func (h ListStaffQueryHandler) Handle(ctx context.Context, query ListStaffQuery) ([]StaffResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	members := make([]StaffResponse, 0)
	builder := psql.
		Select("id", "username", "full_name", "day_before_notifications").
		From("staff").
		OrderBy("username")
	if err := scanRaw(h.db.WithContext(ctx), builder, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// GetSettingsQuery reads both settings rows, creating defaults on first access.
type GetSettingsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetSettingsQuery() GetSettingsQuery {
	return GetSettingsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetSettingsQuery) Validate() error {
	return q.guard.Validate(ErrGetSettingsQueryIsNotConstructed)
}

type GetSettingsQueryResponse struct {
	Company  settings.Company
	Telegram settings.Telegram
}

type GetSettingsQueryHandler struct {
	repo ports.SettingsRepository
}

func NewGetSettingsQueryHandler(repo ports.SettingsRepository) GetSettingsQueryHandler {
	return GetSettingsQueryHandler{repo: repo}
}

func (h GetSettingsQueryHandler) Handle(ctx context.Context, query GetSettingsQuery) (*GetSettingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	company, err := h.repo.GetCompany(ctx)
	if err != nil {
		return nil, err
	}
	telegram, err := h.repo.GetTelegram(ctx)
	if err != nil {
		return nil, err
	}

	return &GetSettingsQueryResponse{Company: company, Telegram: telegram}, nil
}
