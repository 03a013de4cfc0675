// Package ports defines the contracts between the print-shop core and its adapters:
// repositories, the unit of work and the outbound collaborators (notification queue,
// notifier, spreadsheet sink).
package ports

import (
	"context"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order rows.
// Items and history are stored through their own repositories.
type OrderRepository interface {
	// Add persists a new order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the client and status of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by identifier.
	// Returns errs.ObjectNotFoundError when it does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order together with its items and history.
	// Returns errs.ObjectNotFoundError when it does not exist.
	Delete(ctx context.Context, id kernel.UUID) error
}

// ItemRepository defines the persistence contract for order items.
type ItemRepository interface {
	Add(ctx context.Context, item *order.Item) error

	// Update persists every field of an existing item.
	Update(ctx context.Context, item *order.Item) error

	// Delete hard-deletes the given items.
	Delete(ctx context.Context, ids []kernel.UUID) error

	// Get retrieves an item by identifier, whatever its order.
	Get(ctx context.Context, id kernel.UUID) (*order.Item, error)

	// GetByOrder returns every item of an order, archived ones included, in creation order.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.Item, error)

	// GetByIDs returns the items among ids that exist, whatever their order.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*order.Item, error)

	// GetPendingDueOn returns the non-archived, non-ready items whose deadline is date.
	GetPendingDueOn(ctx context.Context, date time.Time) ([]*order.Item, error)
}

// HistoryRepository defines the append-only store of history entries.
type HistoryRepository interface {
	// Append stores entries preserving their order.
	Append(ctx context.Context, entries ...*order.HistoryEntry) error

	// ListByOrder returns the entries of an order newest first.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.HistoryEntry, error)
}
