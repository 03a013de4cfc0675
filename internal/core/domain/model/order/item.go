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

const (
	// NameMaxLength bounds the item name.
	NameMaxLength = 255

	// DateLayout is the wire and display form of item deadlines.
	DateLayout = "2006-01-02"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via ApplyItemWrite or RestoreItem")

// Item is one line of an order: a product name, a quantity and its own production status.
//
// Item follows these invariants:
//   - Belongs to exactly one order for its whole life
//   - Name is required, quantity is strictly positive
//   - ReadyAt is set if and only if the status is Ready
//
// Items are never mutated in place by the write path: ApplyItemWrite returns a new
// value. Archiving is the exception, see SetArchived.
type Item struct {
	id            kernel.UUID
	orderID       kernel.UUID
	name          string
	quantity      int
	deadline      *time.Time
	status        Status
	responsibleID *kernel.UUID
	comment       string
	readyAt       *time.Time
	archived      bool
	guard         guard.ConstructorGuard
}

// RestoreItemParams is the persisted state of an item.
type RestoreItemParams struct {
	ID            kernel.UUID
	OrderID       kernel.UUID
	Name          string
	Quantity      int
	Deadline      *time.Time
	Status        Status
	ResponsibleID *kernel.UUID
	Comment       string
	ReadyAt       *time.Time
	Archived      bool
}

// RestoreItem rebuilds an item read from storage. The stored ready_at is kept as is.
func RestoreItem(p RestoreItemParams) (*Item, error) {
	item := &Item{
		deadline:      dateOf(p.Deadline),
		responsibleID: p.ResponsibleID,
		comment:       p.Comment,
		readyAt:       p.ReadyAt,
		archived:      p.Archived,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(p.ID),
		item.setOrderID(p.OrderID),
		item.setName(p.Name),
		item.setQuantity(p.Quantity),
		item.setStatus(p.Status),
	); err != nil {
		return nil, err
	}

	return item, nil
}

func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) OrderID() kernel.UUID {
	return i.orderID
}

func (i *Item) Name() string {
	return i.name
}

func (i *Item) Quantity() int {
	return i.quantity
}

// Deadline returns the due date (UTC midnight) or nil.
func (i *Item) Deadline() *time.Time {
	return copyTime(i.deadline)
}

func (i *Item) Status() Status {
	return i.status
}

func (i *Item) ResponsibleID() *kernel.UUID {
	if i.responsibleID == nil {
		return nil
	}
	id := *i.responsibleID
	return &id
}

func (i *Item) Comment() string {
	return i.comment
}

// ReadyAt returns when the item last became Ready, or nil while it is not Ready.
func (i *Item) ReadyAt() *time.Time {
	return copyTime(i.readyAt)
}

func (i *Item) IsArchived() bool {
	return i.archived
}

// SetArchived flips the archived flag and reports whether it changed.
// The caller must recalculate the order status afterwards.
func (i *Item) SetArchived(archived bool) bool {
	if i.archived == archived {
		return false
	}
	i.archived = archived
	return true
}

// HasSameState reports whether other carries exactly the same persisted state.
func (i *Item) HasSameState(other *Item) bool {
	if other == nil {
		return false
	}
	return i.id.IsEqual(other.id) &&
		i.orderID.IsEqual(other.orderID) &&
		i.name == other.name &&
		i.quantity == other.quantity &&
		equalTime(i.deadline, other.deadline) &&
		i.status == other.status &&
		equalUUID(i.responsibleID, other.responsibleID) &&
		i.comment == other.comment &&
		equalTime(i.readyAt, other.readyAt) &&
		i.archived == other.archived
}

// FormatDeadline renders the deadline as DateLayout, or "-" when there is none.
func (i *Item) FormatDeadline() string {
	return FormatDate(i.deadline)
}

// FormatDate renders an optional date as DateLayout, or "-" for nil.
func FormatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(DateLayout)
}

// DateOf truncates t to its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order", err)
	}
	i.orderID = orderID
	return nil
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if n := utf8.RuneCountInString(name); n > NameMaxLength {
		return errs.NewValueIsOutOfRangeErrorWithCause("name", n, 1, NameMaxLength,
			fmt.Errorf("name is longer than %d characters", NameMaxLength))
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeErrorWithCause("quantity", quantity, 1, "unbounded",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	i.status = status
	return nil
}

func (i *Item) setResponsible(id *kernel.UUID) error {
	if id == nil {
		i.responsibleID = nil
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("responsible", err)
	}
	responsible := *id
	i.responsibleID = &responsible
	return nil
}

func dateOf(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := DateOf(*t)
	return &d
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func equalTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func equalUUID(a, b *kernel.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.IsEqual(*b)
}
