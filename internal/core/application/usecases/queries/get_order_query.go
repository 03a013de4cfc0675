package queries

import (
	"context"
	"errors"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
	ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
		"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
	)
)

// GetOrderQuery fetches one order with its items and full history.
// A non-nil archived restricts the items to that flag, like ListOrdersQuery.
type GetOrderQuery struct {
	orderID  kernel.UUID
	archived *bool

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID, archived *bool) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, archived: archived, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetOrderQuery) Archived() *bool {
	return q.archived
}

// GetOrderQueryResponse is the detailed view of an order.
type GetOrderQueryResponse struct {
	OrderResponse
	History []HistoryEntryResponse
}

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError for an unknown order.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	row, err := findOrder(ctx, h.db, query.OrderID())
	if err != nil {
		return nil, err
	}

	items, err := loadItems(ctx, h.db, []uuid.UUID{row.ID}, query.Archived())
	if err != nil {
		return nil, err
	}

	history, err := loadHistory(ctx, h.db, row.ID)
	if err != nil {
		return nil, err
	}

	return &GetOrderQueryResponse{
		OrderResponse: OrderResponse{
			ID:        row.ID,
			Client:    row.Client,
			Status:    row.Status,
			CreatedAt: row.CreatedAt,
			Items:     items[row.ID],
		},
		History: history,
	}, nil
}

// GetOrderHistoryQuery fetches the history of one order, newest first.
type GetOrderHistoryQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderHistoryQuery(orderID kernel.UUID) (GetOrderHistoryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderHistoryQuery{}, err
	}
	return GetOrderHistoryQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

func (q GetOrderHistoryQuery) OrderID() kernel.UUID {
	return q.orderID
}

type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError for an unknown order.
func (h GetOrderHistoryQueryHandler) Handle(ctx context.Context, query GetOrderHistoryQuery) ([]HistoryEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	row, err := findOrder(ctx, h.db, query.OrderID())
	if err != nil {
		return nil, err
	}

	return loadHistory(ctx, h.db, row.ID)
}

func findOrder(ctx context.Context, db *gorm.DB, id kernel.UUID) (orderRow, error) {
	query, args, err := psql.
		Select("id", "client", "status", "created_at").
		From("orders").
		Where(sq.Eq{"id": id.Google()}).
		ToSql()
	if err != nil {
		return orderRow{}, err
	}

	var rows []orderRow
	if err := db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return orderRow{}, err
	}
	if len(rows) == 0 {
		return orderRow{}, errs.NewObjectNotFoundError("order", id.String())
	}
	return rows[0], nil
}

type historyRow struct {
	ID        uuid.UUID
	ActorID   *uuid.UUID
	ActorName *string
	Message   string
	CreatedAt time.Time
}

func loadHistory(ctx context.Context, db *gorm.DB, orderID uuid.UUID) ([]HistoryEntryResponse, error) {
	query, args, err := psql.
		Select("h.id", "h.actor_id", staffDisplayName+" AS actor_name", "h.message", "h.created_at").
		From("order_history h").
		LeftJoin("staff s ON s.id = h.actor_id").
		Where(sq.Eq{"h.order_id": orderID}).
		OrderBy("h.created_at DESC", "h.seq DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []historyRow
	if err := db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	entries := make([]HistoryEntryResponse, 0, len(rows))
	for _, row := range rows {
		entry := HistoryEntryResponse{
			ID:        row.ID,
			ActorID:   row.ActorID,
			Message:   row.Message,
			CreatedAt: row.CreatedAt,
		}
		if row.ActorName != nil {
			entry.ActorName = *row.ActorName
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
