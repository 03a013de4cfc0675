package commands

import (
	"context"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/services"
	"printshop/internal/pkg/metrics"
	"printshop/internal/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// UpdateOrderCommandHandler applies an order update atomically: client and status
// changes, item creations, updates and removals, the recalculated status and every
// history entry are committed together or not at all.
//
// The merge itself is planned by services.OrderSynchronizer; the handler loads what
// the plan needs and writes what it returns.
type UpdateOrderCommandHandler struct {
	uowFactory   OrderUoWFactory
	synchronizer services.OrderSynchronizer
	now          func() time.Time
}

func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory:   uowFactory,
		synchronizer: services.NewOrderSynchronizer(),
		now:          utcNow,
	}
}

// Handle returns the updated order.
//
// Errors:
//   - errs.ObjectNotFoundError when the order does not exist or an item ID belongs to
//     another order
//   - validation errors from the item lifecycle, before anything is written
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (_ *order.Order, err error) {
	if err = cmd.Validate(); err != nil {
		return nil, err
	}

	ctx, span := tracing.Start(ctx, "UpdateOrder", attribute.String("order.id", cmd.OrderID().String()))
	defer func() { tracing.End(span, err) }()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	itemRepo := uow.ItemRepository()
	current, err := itemRepo.GetByOrder(ctx, o.ID())
	if err != nil {
		return nil, err
	}

	var foreign []*order.Item
	if unresolved := unresolvedIDs(cmd.Items(), current); len(unresolved) > 0 {
		if foreign, err = itemRepo.GetByIDs(ctx, unresolved); err != nil {
			return nil, err
		}
	}

	plan, err := h.synchronizer.Sync(o, current, cmd.Changes(), cmd.Items(), foreign, cmd.Actor(), h.now())
	if err != nil {
		return nil, err
	}

	if plan.OrderChanged {
		if err = uow.OrderRepository().Update(ctx, o); err != nil {
			return nil, err
		}
	}

	for _, item := range plan.Created {
		if err = itemRepo.Add(ctx, item); err != nil {
			return nil, err
		}
	}

	for _, item := range plan.Updated {
		if err = itemRepo.Update(ctx, item); err != nil {
			return nil, err
		}
	}

	if len(plan.Removed) > 0 {
		ids := make([]kernel.UUID, 0, len(plan.Removed))
		for _, item := range plan.Removed {
			ids = append(ids, item.ID())
		}
		if err = itemRepo.Delete(ctx, ids); err != nil {
			return nil, err
		}
	}

	if len(plan.History) > 0 {
		if err = uow.HistoryRepository().Append(ctx, plan.History...); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	metrics.HistoryEntriesTotal.Add(float64(len(plan.History)))
	return o, nil
}

// unresolvedIDs returns the descriptor IDs that are not items of the order.
func unresolvedIDs(writes *[]services.ItemWrite, current []*order.Item) []kernel.UUID {
	if writes == nil {
		return nil
	}

	known := make(map[string]struct{}, len(current))
	for _, item := range current {
		known[item.ID().String()] = struct{}{}
	}

	var ids []kernel.UUID
	for _, w := range *writes {
		if w.ID == nil {
			continue
		}
		if _, ok := known[w.ID.String()]; !ok {
			ids = append(ids, *w.ID)
		}
	}
	return ids
}
