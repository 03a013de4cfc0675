package order

import (
	"errors"
	"strings"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var ErrHistoryEntryIsNotConstructed = errors.New("HistoryEntry must be created via NewHistoryEntry")

// HistoryEntry is one append-only audit line of an order.
// A nil actor means the change was made by the system.
type HistoryEntry struct {
	id        kernel.UUID
	orderID   kernel.UUID
	actorID   *kernel.UUID
	message   string
	createdAt time.Time
	guard     guard.ConstructorGuard
}

func NewHistoryEntry(orderID kernel.UUID, actor kernel.Actor, message string, now time.Time) (*HistoryEntry, error) {
	return RestoreHistoryEntry(kernel.NewUUID(), orderID, actor.ID(), message, now)
}

func RestoreHistoryEntry(
	id kernel.UUID,
	orderID kernel.UUID,
	actorID *kernel.UUID,
	message string,
	createdAt time.Time,
) (*HistoryEntry, error) {
	entry := &HistoryEntry{
		id:        id,
		orderID:   orderID,
		actorID:   actorID,
		message:   message,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	var msgErr error
	if strings.TrimSpace(message) == "" {
		msgErr = errs.NewValueIsRequiredError("message")
	}
	if err := errors.Join(id.Validate(), orderID.Validate(), msgErr); err != nil {
		return nil, err
	}

	return entry, nil
}

func (h *HistoryEntry) Validate() error {
	if h == nil {
		return ErrHistoryEntryIsNotConstructed
	}
	return h.guard.Validate(ErrHistoryEntryIsNotConstructed)
}

func (h *HistoryEntry) ID() kernel.UUID {
	return h.id
}

func (h *HistoryEntry) OrderID() kernel.UUID {
	return h.orderID
}

// ActorID returns the staff member who made the change, nil for the system.
func (h *HistoryEntry) ActorID() *kernel.UUID {
	if h.actorID == nil {
		return nil
	}
	id := *h.actorID
	return &id
}

func (h *HistoryEntry) Message() string {
	return h.message
}

func (h *HistoryEntry) CreatedAt() time.Time {
	return h.createdAt
}
