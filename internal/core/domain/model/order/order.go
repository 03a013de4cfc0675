package order

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

// ClientMaxLength bounds the free-text client field.
const ClientMaxLength = 255

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a customer order. It is the aggregate root for its items and history entries,
// which are stored and loaded separately but always deleted together with it.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Client is a non-empty text of at most ClientMaxLength characters
//   - Status is a pure function of the non-archived items' statuses, except after
//     an explicit administrative override with OverrideStatus
//
// A new order has no items and the NotReady status.
type Order struct {
	id        kernel.UUID
	client    string
	status    Status
	createdAt time.Time
	guard     guard.ConstructorGuard
}

// NewOrder creates an order for client with the NotReady status.
//
// Returns a ValueIsRequiredError for an empty client and a ValueIsOutOfRangeError
// when the client is longer than ClientMaxLength.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), "Acme", time.Now())
//	if err != nil {
//	    return nil, err
//	}
func NewOrder(id kernel.UUID, client string, now time.Time) (*Order, error) {
	order := &Order{
		status:    NotReady,
		createdAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setClient(client),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder rebuilds an order from persisted state without applying creation defaults.
func RestoreOrder(id kernel.UUID, client string, status Status, createdAt time.Time) (*Order, error) {
	order := &Order{
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setClient(client),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order was built by NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Client() string {
	return o.client
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ChangeClient replaces the client and returns the previous value.
// changed is false when the new value equals the current one.
func (o *Order) ChangeClient(client string) (previous string, changed bool, err error) {
	previous = o.client
	if err := o.setClient(client); err != nil {
		return previous, false, err
	}
	return previous, previous != o.client, nil
}

// OverrideStatus sets the status explicitly, bypassing aggregation.
// The override lasts until the next item mutation triggers RecalculateStatus.
func (o *Order) OverrideStatus(status Status) error {
	return o.setStatus(status)
}

// RecalculateStatus applies AggregateStatus to the non-archived items and stores the
// result. It reports whether the stored status changed, so callers can skip redundant
// writes.
func (o *Order) RecalculateStatus(items []*Item) bool {
	statuses := make([]Status, 0, len(items))
	for _, item := range items {
		if item == nil || item.IsArchived() {
			continue
		}
		statuses = append(statuses, item.Status())
	}

	next := AggregateStatus(statuses)
	if next == o.status {
		return false
	}
	o.status = next
	return true
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClient(client string) error {
	client = strings.TrimSpace(client)
	if client == "" {
		return errs.NewValueIsRequiredError("client")
	}
	if n := utf8.RuneCountInString(client); n > ClientMaxLength {
		return errs.NewValueIsOutOfRangeErrorWithCause("client", n, 1, ClientMaxLength,
			fmt.Errorf("client is longer than %d characters", ClientMaxLength))
	}
	o.client = client
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
