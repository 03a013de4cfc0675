package commands

import (
	"context"
	"time"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/services"
	"printshop/internal/pkg/metrics"
	"printshop/internal/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// UpdateItemCommandHandler applies a patch to one item, records the diff in the order's
// history and recalculates the order status, in one transaction.
type UpdateItemCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

func NewUpdateItemCommandHandler(uowFactory OrderUoWFactory) UpdateItemCommandHandler {
	return UpdateItemCommandHandler{
		uowFactory: uowFactory,
		now:        utcNow,
	}
}

// Handle returns the item as stored after the patch. A patch that changes nothing
// writes nothing.
func (h *UpdateItemCommandHandler) Handle(ctx context.Context, cmd UpdateItemCommand) (_ *order.Item, err error) {
	if err = cmd.Validate(); err != nil {
		return nil, err
	}

	ctx, span := tracing.Start(ctx, "UpdateItem", attribute.String("item.id", cmd.ItemID().String()))
	defer func() { tracing.End(span, err) }()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	itemRepo := uow.ItemRepository()
	existing, err := itemRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return nil, err
	}

	now := h.now()
	updated, err := order.ApplyItemWrite(existing, existing.OrderID(), cmd.Patch(), now)
	if err != nil {
		return nil, err
	}

	if updated.HasSameState(existing) {
		return existing, nil
	}

	if err = itemRepo.Update(ctx, updated); err != nil {
		return nil, err
	}

	o, err := uow.OrderRepository().Get(ctx, existing.OrderID())
	if err != nil {
		return nil, err
	}

	siblings, err := itemRepo.GetByOrder(ctx, o.ID())
	if err != nil {
		return nil, err
	}
	for i, item := range siblings {
		if item.IsEqual(updated) {
			siblings[i] = updated
		}
	}

	if o.RecalculateStatus(siblings) {
		if err = uow.OrderRepository().Update(ctx, o); err != nil {
			return nil, err
		}
	}

	recorder := services.NewHistoryRecorder(o.ID(), cmd.Actor(), now)
	if err = recorder.RecordItemChange(existing, updated); err != nil {
		return nil, err
	}
	if len(recorder.Entries()) > 0 {
		if err = uow.HistoryRepository().Append(ctx, recorder.Entries()...); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	metrics.HistoryEntriesTotal.Add(float64(len(recorder.Entries())))
	return updated, nil
}
