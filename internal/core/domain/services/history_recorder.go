package services

import (
	"fmt"
	"strings"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
)

// HistoryRecorder collects the history entries produced by one operation on one order.
// Entries keep their emission order and all carry the same actor and timestamp.
//
// Only status, quantity and deadline changes of an item are tracked; name, comment and
// responsible changes are silent.
//
// Example:
//
//	recorder := services.NewHistoryRecorder(o.ID(), actor, time.Now())
//	_ = recorder.RecordOrderFieldChange("client", "Acme", "Acme Corp")
//	entries := recorder.Entries() // "Changed client: Acme -> Acme Corp"
type HistoryRecorder struct {
	orderID kernel.UUID
	actor   kernel.Actor
	now     time.Time
	entries []*order.HistoryEntry
}

func NewHistoryRecorder(orderID kernel.UUID, actor kernel.Actor, now time.Time) *HistoryRecorder {
	return &HistoryRecorder{orderID: orderID, actor: actor, now: now}
}

// Entries returns the collected entries in emission order.
func (r *HistoryRecorder) Entries() []*order.HistoryEntry {
	return r.entries
}

// RecordOrderCreated emits the creation entry.
func (r *HistoryRecorder) RecordOrderCreated() error {
	return r.Record("Created order")
}

// RecordOrderFieldChange emits "Changed <field>: <old> -> <new>" when the values differ.
func (r *HistoryRecorder) RecordOrderFieldChange(field, oldValue, newValue string) error {
	if oldValue == newValue {
		return nil
	}
	return r.Record(fmt.Sprintf("Changed %s: %s -> %s", field, oldValue, newValue))
}

// RecordItemChange emits "Added item: <name>" when old is nil. Otherwise it emits a
// single combined entry describing every tracked field that differs, or nothing.
func (r *HistoryRecorder) RecordItemChange(old, updated *order.Item) error {
	if old == nil {
		return r.Record("Added item: " + updated.Name())
	}

	var changes []string
	if old.Status() != updated.Status() {
		changes = append(changes, fmt.Sprintf("status '%s' (%s -> %s)", old.Name(), old.Status(), updated.Status()))
	}
	if old.Quantity() != updated.Quantity() {
		changes = append(changes, fmt.Sprintf("quantity '%s' (%d -> %d)", old.Name(), old.Quantity(), updated.Quantity()))
	}
	if oldDeadline, newDeadline := old.FormatDeadline(), updated.FormatDeadline(); oldDeadline != newDeadline {
		changes = append(changes, fmt.Sprintf("deadline '%s' (%s -> %s)", old.Name(), oldDeadline, newDeadline))
	}
	if len(changes) == 0 {
		return nil
	}

	return r.Record("Changed: " + strings.Join(changes, ", "))
}

// RecordItemRemoval emits "Removed item: <name>".
func (r *HistoryRecorder) RecordItemRemoval(item *order.Item) error {
	return r.Record("Removed item: " + item.Name())
}

// Record emits a free-form entry.
func (r *HistoryRecorder) Record(message string) error {
	entry, err := order.NewHistoryEntry(r.orderID, r.actor, message, r.now)
	if err != nil {
		return err
	}
	r.entries = append(r.entries, entry)
	return nil
}
