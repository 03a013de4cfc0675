package services

import (
	"errors"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
)

// OrderChanges are the order-level fields of an update. Unset fields are left alone.
type OrderChanges struct {
	Client kernel.Optional[string]
	Status kernel.Optional[order.Status]
}

// ItemWrite describes one item of an update's item list. A nil ID asks for a new item.
type ItemWrite struct {
	ID    *kernel.UUID
	Patch order.ItemPatch
}

// SyncPlan is everything an order update must persist, in write order.
type SyncPlan struct {
	// OrderChanged is true when the order row itself (client or status) must be saved.
	OrderChanged bool

	// Created are new items, in descriptor order.
	Created []*order.Item

	// Updated are existing items whose state actually changed.
	Updated []*order.Item

	// Removed are items to hard-delete.
	Removed []*order.Item

	// History holds the entries to append: the order field entry first, then item
	// entries in descriptor order, removals last.
	History []*order.HistoryEntry

	// Items is the order's full item set after the update, archived items included.
	Items []*order.Item
}

// IsEmpty reports whether the plan writes nothing.
func (p SyncPlan) IsEmpty() bool {
	return !p.OrderChanged && len(p.Created) == 0 && len(p.Updated) == 0 &&
		len(p.Removed) == 0 && len(p.History) == 0
}

// OrderSynchronizer plans an "update order" call. It applies field changes to the order,
// merges the item list into the current items and computes the removals.
//
// Business rules:
//   - A nil writes pointer means no item list was supplied: items are untouched and the
//     status is not recalculated, so an explicit status override survives
//   - A supplied but empty list removes every non-archived item
//   - A descriptor whose ID resolves within the order updates that item
//   - A descriptor without ID, or with an ID unknown everywhere, creates a new item
//   - A descriptor whose ID belongs to another order fails the whole call
//   - Archived items are never removed by omission
//   - The order status is recalculated once, after all item changes
//
// Calling Sync twice with the same input yields an empty plan the second time.
type OrderSynchronizer struct{}

func NewOrderSynchronizer() OrderSynchronizer {
	return OrderSynchronizer{}
}

// Sync mutates o with the requested changes and returns the plan to persist.
//
// Parameters:
//   - o: the order being updated
//   - current: every item of o, archived ones included
//   - changes: the order-level fields
//   - writes: the item list, nil when absent
//   - foreign: items found by ID outside o for descriptors that did not resolve in current
//   - actor: who makes the change
//   - now: the timestamp of history entries and ready stamps
//
// On error nothing in the plan is valid and o must be discarded.
func (s OrderSynchronizer) Sync(
	o *order.Order,
	current []*order.Item,
	changes OrderChanges,
	writes *[]ItemWrite,
	foreign []*order.Item,
	actor kernel.Actor,
	now time.Time,
) (SyncPlan, error) {
	if err := o.Validate(); err != nil {
		return SyncPlan{}, err
	}

	var plan SyncPlan
	recorder := NewHistoryRecorder(o.ID(), actor, now)

	if client, ok := changes.Client.Get(); ok {
		previous, changed, err := o.ChangeClient(client)
		if err != nil {
			return SyncPlan{}, err
		}
		if changed {
			plan.OrderChanged = true
			if err := recorder.RecordOrderFieldChange("client", previous, o.Client()); err != nil {
				return SyncPlan{}, err
			}
		}
	}

	if status, ok := changes.Status.Get(); ok && status != o.Status() {
		if err := o.OverrideStatus(status); err != nil {
			return SyncPlan{}, err
		}
		plan.OrderChanged = true
	}

	if writes == nil {
		plan.Items = current
		plan.History = recorder.Entries()
		return plan, nil
	}

	items, err := s.mergeItems(&plan, recorder, o.ID(), current, *writes, foreign, now)
	if err != nil {
		return SyncPlan{}, err
	}
	plan.Items = items

	if o.RecalculateStatus(items) {
		plan.OrderChanged = true
	}
	plan.History = recorder.Entries()

	return plan, nil
}

func (s OrderSynchronizer) mergeItems(
	plan *SyncPlan,
	recorder *HistoryRecorder,
	orderID kernel.UUID,
	current []*order.Item,
	writes []ItemWrite,
	foreign []*order.Item,
	now time.Time,
) ([]*order.Item, error) {
	effective := make(map[kernel.UUID]*order.Item, len(current))
	for _, item := range current {
		effective[item.ID()] = item
	}
	foreignByID := make(map[kernel.UUID]*order.Item, len(foreign))
	for _, item := range foreign {
		if !item.OrderID().IsEqual(orderID) {
			foreignByID[item.ID()] = item
		}
	}

	keep := make(map[kernel.UUID]struct{}, len(writes))
	updated := make(map[kernel.UUID]int)
	var created []*order.Item

	for _, write := range writes {
		var existing *order.Item
		if write.ID != nil {
			if item, ok := effective[*write.ID]; ok {
				existing = item
			} else if item, ok := foreignByID[*write.ID]; ok {
				// ApplyItemWrite reports the ownership violation.
				existing = item
			}
		}

		next, err := order.ApplyItemWrite(existing, orderID, write.Patch, now)
		if err != nil {
			return nil, err
		}
		if err := recorder.RecordItemChange(existing, next); err != nil {
			return nil, err
		}

		keep[next.ID()] = struct{}{}
		if existing == nil {
			created = append(created, next)
			plan.Created = append(plan.Created, next)
			continue
		}

		effective[next.ID()] = next
		if next.HasSameState(existing) {
			continue
		}
		if idx, ok := updated[next.ID()]; ok {
			plan.Updated[idx] = next
		} else {
			updated[next.ID()] = len(plan.Updated)
			plan.Updated = append(plan.Updated, next)
		}
	}

	var removalErrs []error
	items := make([]*order.Item, 0, len(current)+len(created))
	for _, item := range current {
		next := effective[item.ID()]
		if _, kept := keep[item.ID()]; kept || next.IsArchived() {
			items = append(items, next)
			continue
		}
		plan.Removed = append(plan.Removed, next)
		removalErrs = append(removalErrs, recorder.RecordItemRemoval(next))
	}
	if err := errors.Join(removalErrs...); err != nil {
		return nil, err
	}

	return append(items, created...), nil
}
