// Package queries contains read-only operations of the print-shop backend.
// Query handlers read committed rows straight from PostgreSQL through gorm, with the
// SQL assembled by squirrel, and never go through the domain repositories.
package queries

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// psql builds statements with "?" placeholders, which gorm rebinds for the dialect.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// OrderResponse is an order with the items selected by the query.
type OrderResponse struct {
	ID        uuid.UUID
	Client    string
	Status    string
	CreatedAt time.Time
	Items     []ItemResponse
}

// ItemResponse is an item as shown to staff. ResponsibleName is empty when nobody is
// assigned.
type ItemResponse struct {
	ID              uuid.UUID
	OrderID         uuid.UUID
	Name            string
	Quantity        int
	Deadline        *time.Time
	Status          string
	ResponsibleID   *uuid.UUID
	ResponsibleName string
	Comment         string
	ReadyAt         *time.Time
	IsArchived      bool
}

// HistoryEntryResponse is one line of an order's history. ActorName is empty for
// automated changes and for deleted staff.
type HistoryEntryResponse struct {
	ID        uuid.UUID
	ActorID   *uuid.UUID
	ActorName string
	Message   string
	CreatedAt time.Time
}

type itemRow struct {
	ID              uuid.UUID
	OrderID         uuid.UUID
	Name            string
	Quantity        int
	Deadline        *time.Time
	Status          string
	ResponsibleID   *uuid.UUID
	ResponsibleName *string
	Comment         string
	ReadyAt         *time.Time
	IsArchived      bool
}

func (r itemRow) toResponse() ItemResponse {
	resp := ItemResponse{
		ID:            r.ID,
		OrderID:       r.OrderID,
		Name:          r.Name,
		Quantity:      r.Quantity,
		Deadline:      r.Deadline,
		Status:        r.Status,
		ResponsibleID: r.ResponsibleID,
		Comment:       r.Comment,
		ReadyAt:       r.ReadyAt,
		IsArchived:    r.IsArchived,
	}
	if r.ResponsibleName != nil {
		resp.ResponsibleName = *r.ResponsibleName
	}
	return resp
}

// staffDisplayName is the SQL form of staff.Member.DisplayName for the alias s.
const staffDisplayName = "COALESCE(NULLIF(s.full_name, ''), s.username)"

// loadItems returns the items of the given orders grouped by order, in creation order.
// A non-nil archived restricts the items to that flag.
func loadItems(ctx context.Context, db *gorm.DB, orderIDs []uuid.UUID, archived *bool) (map[uuid.UUID][]ItemResponse, error) {
	grouped := make(map[uuid.UUID][]ItemResponse, len(orderIDs))
	if len(orderIDs) == 0 {
		return grouped, nil
	}

	ids := make([]string, 0, len(orderIDs))
	for _, id := range orderIDs {
		ids = append(ids, id.String())
	}

	builder := psql.
		Select(
			"i.id", "i.order_id", "i.name", "i.quantity", "i.deadline", "i.status",
			"i.responsible_id", staffDisplayName+" AS responsible_name",
			"i.comment", "i.ready_at", "i.is_archived",
		).
		From("items i").
		LeftJoin("staff s ON s.id = i.responsible_id").
		Where("i.order_id = ANY(?::uuid[])", pq.Array(ids)).
		OrderBy("i.seq")
	if archived != nil {
		builder = builder.Where(sq.Eq{"i.is_archived": *archived})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	var rows []itemRow
	if err := db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		grouped[row.OrderID] = append(grouped[row.OrderID], row.toResponse())
	}
	return grouped, nil
}

type orderRow struct {
	ID        uuid.UUID
	Client    string
	Status    string
	CreatedAt time.Time
}
