package commands

import (
	"context"
	"fmt"
	"time"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/services"
	"printshop/internal/pkg/metrics"
	"printshop/internal/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// ArchiveOrderCommandHandler flips the archived flag of an order's items.
// Archived items stop counting towards the order status, so the status is recalculated
// over what remains active. With nothing to flip the call is a no-op.
type ArchiveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

func NewArchiveOrderCommandHandler(uowFactory OrderUoWFactory) ArchiveOrderCommandHandler {
	return ArchiveOrderCommandHandler{
		uowFactory: uowFactory,
		now:        utcNow,
	}
}

// Handle returns how many items changed.
func (h *ArchiveOrderCommandHandler) Handle(ctx context.Context, cmd ArchiveOrderCommand) (_ int, err error) {
	if err = cmd.Validate(); err != nil {
		return 0, err
	}

	ctx, span := tracing.Start(ctx, "ArchiveOrder",
		attribute.String("order.id", cmd.OrderID().String()),
		attribute.Bool("archived", cmd.Archived()),
	)
	defer func() { tracing.End(span, err) }()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return 0, err
	}

	itemRepo := uow.ItemRepository()
	items, err := itemRepo.GetByOrder(ctx, o.ID())
	if err != nil {
		return 0, err
	}

	flipped := make([]*order.Item, 0, len(items))
	for _, item := range items {
		if item.SetArchived(cmd.Archived()) {
			flipped = append(flipped, item)
		}
	}
	if len(flipped) == 0 {
		return 0, nil
	}

	for _, item := range flipped {
		if err = itemRepo.Update(ctx, item); err != nil {
			return 0, err
		}
	}

	if o.RecalculateStatus(items) {
		if err = uow.OrderRepository().Update(ctx, o); err != nil {
			return 0, err
		}
	}

	verb := "Restored"
	if cmd.Archived() {
		verb = "Archived"
	}
	recorder := services.NewHistoryRecorder(o.ID(), cmd.Actor(), h.now())
	if err = recorder.Record(fmt.Sprintf("%s %d items", verb, len(flipped))); err != nil {
		return 0, err
	}
	if err = uow.HistoryRepository().Append(ctx, recorder.Entries()...); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	metrics.HistoryEntriesTotal.Add(float64(len(recorder.Entries())))
	return len(flipped), nil
}
