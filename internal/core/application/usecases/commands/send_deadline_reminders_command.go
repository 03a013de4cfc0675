package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"printshop/internal/core/application/notification"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/ports"
	"printshop/internal/pkg/guard"
	"printshop/internal/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
)

var ErrSendDeadlineRemindersCommandIsNotConstructed = errors.New(
	"SendDeadlineRemindersCommand must be created via NewSendDeadlineRemindersCommand constructor",
)

// SendDeadlineRemindersCommand asks for one reminder listing the unfinished items due
// on a calendar date.
type SendDeadlineRemindersCommand struct { //nolint:recvcheck //using for validation
	due time.Time

	guard guard.ConstructorGuard
}

// NewSendDeadlineRemindersCommand keeps only the calendar date of due.
func NewSendDeadlineRemindersCommand(due time.Time) SendDeadlineRemindersCommand {
	return SendDeadlineRemindersCommand{
		due:   order.DateOf(due),
		guard: guard.NewConstructorGuard(),
	}
}

func (c SendDeadlineRemindersCommand) Validate() error {
	return c.guard.Validate(ErrSendDeadlineRemindersCommandIsNotConstructed)
}

func (c SendDeadlineRemindersCommand) Due() time.Time {
	return c.due
}

// SendDeadlineRemindersCommandHandler collects the non-archived, not-ready items due on
// the requested date and enqueues a single reminder for them.
type SendDeadlineRemindersCommandHandler struct {
	uowFactory OrderUoWFactory
	queue      ports.NotificationQueue
	log        *slog.Logger
}

func NewSendDeadlineRemindersCommandHandler(
	uowFactory OrderUoWFactory,
	queue ports.NotificationQueue,
	log *slog.Logger,
) SendDeadlineRemindersCommandHandler {
	return SendDeadlineRemindersCommandHandler{
		uowFactory: uowFactory,
		queue:      queue,
		log:        log.With("component", "deadline-reminders"),
	}
}

// Handle returns the number of items in the reminder. Nothing is enqueued for zero.
func (h *SendDeadlineRemindersCommandHandler) Handle(ctx context.Context, cmd SendDeadlineRemindersCommand) (_ int, err error) {
	if err = cmd.Validate(); err != nil {
		return 0, err
	}

	ctx, span := tracing.Start(ctx, "SendDeadlineReminders", attribute.String("due", order.FormatDate(&cmd.due)))
	defer func() { tracing.End(span, err) }()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	items, err := uow.ItemRepository().GetPendingDueOn(ctx, cmd.Due())
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 0, nil
	}

	clients := make(map[string]string)
	for _, item := range items {
		key := item.OrderID().String()
		if _, ok := clients[key]; ok {
			continue
		}
		o, err := uow.OrderRepository().Get(ctx, item.OrderID())
		if err != nil {
			return 0, err
		}
		clients[key] = o.Client()
	}

	names, err := displayNames(ctx, uow.StaffRepository(), items)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	due := make([]notification.DueItem, 0, len(items))
	for _, item := range items {
		due = append(due, notification.DueItem{
			OrderID:     item.OrderID().String(),
			Client:      clients[item.OrderID().String()],
			Name:        item.Name(),
			Quantity:    item.Quantity(),
			Status:      item.Status().String(),
			Responsible: responsibleName(names, item),
		})
	}

	enqueue(ctx, h.queue, h.log, notification.NewDeadlineReminder(notification.DeadlineReminder{
		Date:  order.FormatDate(&cmd.due),
		Items: due,
	}))

	return len(items), nil
}
