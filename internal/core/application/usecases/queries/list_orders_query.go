package queries

import (
	"context"
	"errors"

	"printshop/internal/pkg/guard"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists orders for the work board or the archive.
//
// With archived set to true only orders having archived items are listed, each with its
// archived items. With false, orders having active items or no items at all are listed
// with their active items. Without a filter every order is listed with all its items.
//
// Orders with the most urgent deadline come first; orders without deadlines follow,
// newest first.
type ListOrdersQuery struct {
	archived *bool

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(archived *bool) ListOrdersQuery {
	return ListOrdersQuery{archived: archived, guard: guard.NewConstructorGuard()}
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Archived returns the filter, nil when absent.
func (q ListOrdersQuery) Archived() *bool {
	return q.archived
}

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	builder := psql.
		Select("o.id", "o.client", "o.status", "o.created_at").
		From("orders o").
		GroupBy("o.id").
		OrderBy("MIN(i.deadline) ASC NULLS LAST", "o.created_at DESC")

	if archived := query.Archived(); archived != nil {
		builder = builder.LeftJoin("items i ON i.order_id = o.id AND i.is_archived = ?", *archived)
		if *archived {
			builder = builder.Where("EXISTS (SELECT 1 FROM items a WHERE a.order_id = o.id AND a.is_archived)")
		} else {
			builder = builder.Where(sq.Or{
				sq.Expr("NOT EXISTS (SELECT 1 FROM items a WHERE a.order_id = o.id)"),
				sq.Expr("EXISTS (SELECT 1 FROM items a WHERE a.order_id = o.id AND NOT a.is_archived)"),
			})
		}
	} else {
		builder = builder.LeftJoin("items i ON i.order_id = o.id")
	}

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	var rows []orderRow
	if err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	items, err := loadItems(ctx, h.db, ids, query.Archived())
	if err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, OrderResponse{
			ID:        row.ID,
			Client:    row.Client,
			Status:    row.Status,
			CreatedAt: row.CreatedAt,
			Items:     items[row.ID],
		})
	}
	return orders, nil
}
