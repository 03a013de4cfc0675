package commands

import (
	"context"
	"log/slog"
	"time"

	"printshop/internal/core/application/notification"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/services"
	"printshop/internal/core/ports"
	"printshop/internal/pkg/metrics"
	"printshop/internal/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// CreateOrderCommandHandler registers an order, its initial items and the
// "Created order" history entry in one transaction. After the commit it enqueues an
// order-created notification for staff.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, queue, logger)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), "Acme", items, actor)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	queue      ports.NotificationQueue
	log        *slog.Logger
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// queue may be nil, in which case no notification is produced.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	queue ports.NotificationQueue,
	log *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		queue:      queue,
		log:        log.With("component", "create-order"),
		now:        utcNow,
	}
}

// Handle builds the order and items in memory first, so validation errors never reach
// the database, then persists everything in a single unit of work.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (err error) {
	if err = cmd.Validate(); err != nil {
		return err
	}

	ctx, span := tracing.Start(ctx, "CreateOrder", attribute.String("order.id", cmd.OrderID().String()))
	defer func() { tracing.End(span, err) }()

	now := h.now()
	o, err := order.NewOrder(cmd.OrderID(), cmd.Client(), now)
	if err != nil {
		return err
	}

	items := make([]*order.Item, 0, len(cmd.Items()))
	for _, patch := range cmd.Items() {
		item, err := order.ApplyItemWrite(nil, o.ID(), patch, now)
		if err != nil {
			return err
		}
		items = append(items, item)
	}
	o.RecalculateStatus(items)

	recorder := services.NewHistoryRecorder(o.ID(), cmd.Actor(), now)
	if err = recorder.RecordOrderCreated(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	itemRepo := uow.ItemRepository()
	for _, item := range items {
		if err = itemRepo.Add(ctx, item); err != nil {
			return err
		}
	}

	if err = uow.HistoryRepository().Append(ctx, recorder.Entries()...); err != nil {
		return err
	}

	names, err := displayNames(ctx, uow.StaffRepository(), items)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	metrics.OrdersCreatedTotal.Inc()
	metrics.HistoryEntriesTotal.Add(float64(len(recorder.Entries())))
	enqueue(ctx, h.queue, h.log, orderCreatedMessage(o, items, names))

	return nil
}

func orderCreatedMessage(o *order.Order, items []*order.Item, names map[string]string) notification.Message {
	summaries := make([]notification.ItemSummary, 0, len(items))
	for _, item := range items {
		summaries = append(summaries, notification.ItemSummary{
			Name:        item.Name(),
			Quantity:    item.Quantity(),
			Deadline:    item.FormatDeadline(),
			Responsible: responsibleName(names, item),
			Comment:     item.Comment(),
		})
	}

	return notification.NewOrderCreated(notification.OrderCreated{
		OrderID: o.ID().String(),
		Client:  o.Client(),
		Items:   summaries,
	})
}

func utcNow() time.Time {
	return time.Now().UTC()
}
