package commands_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"printshop/internal/core/application/notification"
	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/model/staff"
	"printshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	// Given
	ctx := t.Context()
	member, err := staff.NewMember(kernel.NewUUID(), "ivan", "Ivan Petrov", false)
	require.NoError(t, err)
	memberID := member.ID()
	deadline := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "  Acme ", []order.ItemPatch{
		{Name: kernel.Some("Business cards"), Quantity: kernel.Some(500), Deadline: kernel.Some(&deadline),
			ResponsibleID: kernel.Some(&memberID)},
		{Name: kernel.Some("Flyers"), Comment: kernel.Some("A5")},
	}, kernel.SystemActor())
	require.NoError(t, err)

	u := newOrderUoW()
	var entries []*order.HistoryEntry
	mock.InOrder(
		u.uow.On("Begin", anyCtx).Return(nil).Once(),
		u.orders.On("Add", anyCtx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		u.items.On("Add", anyCtx, mock.AnythingOfType("*order.Item")).Return(nil).Twice(),
		u.history.On("Append", anyCtx, mock.Anything).Run(func(args mock.Arguments) {
			entries = args.Get(1).([]*order.HistoryEntry)
		}).Return(nil).Once(),
		u.staff.On("GetByIDs", anyCtx, []kernel.UUID{memberID}).Return([]*staff.Member{member}, nil).Once(),
		u.uow.On("Commit", anyCtx).Return(nil).Once(),
		u.uow.On("Rollback", anyCtx).Return(nil).Once(),
	)

	queue := new(MockNotificationQueue)
	var sent notification.Message
	queue.On("Enqueue", anyCtx, mock.Anything).Run(func(args mock.Arguments) {
		sent = args.Get(1).(notification.Message)
	}).Return(nil).Once()

	// When
	h := commands.NewCreateOrderCommandHandler(u.factory, queue, discardLogger)
	err = h.Handle(ctx, cmd)

	// Then
	require.NoError(t, err)
	u.assertExpectations(t)
	queue.AssertExpectations(t)

	assert.Equal(t, []string{"Created order"}, historyMessages(entries))

	require.Equal(t, notification.KindOrderCreated, sent.Kind)
	require.NotNil(t, sent.OrderCreated)
	assert.Equal(t, "Acme", sent.OrderCreated.Client)
	assert.Equal(t, cmd.OrderID().String(), sent.OrderCreated.OrderID)
	assert.Equal(t, []notification.ItemSummary{
		{Name: "Business cards", Quantity: 500, Deadline: "2026-03-20", Responsible: "Ivan Petrov"},
		{Name: "Flyers", Quantity: 1, Deadline: "-", Responsible: "-", Comment: "A5"},
	}, sent.OrderCreated.Items)
}

func TestCreateOrderCommandHandler_Handle_StatusFollowsInitialItems(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "Acme", []order.ItemPatch{
		{Name: kernel.Some("Cards"), Status: kernel.Some(order.Ready)},
		{Name: kernel.Some("Flyers")},
	}, kernel.SystemActor())
	require.NoError(t, err)

	u := newOrderUoW()
	var stored *order.Order
	u.uow.On("Begin", anyCtx).Return(nil).Once()
	u.orders.On("Add", anyCtx, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*order.Order)
	}).Return(nil).Once()
	u.items.On("Add", anyCtx, mock.Anything).Return(nil).Twice()
	u.history.On("Append", anyCtx, mock.Anything).Return(nil).Once()
	u.uow.On("Commit", anyCtx).Return(nil).Once()
	u.uow.On("Rollback", anyCtx).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(u.factory, nil, discardLogger)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, stored)
	assert.Equal(t, order.InProgress, stored.Status())
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)

	h := commands.NewCreateOrderCommandHandler(factory, nil, discardLogger)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_InvalidItemWritesNothing(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "Acme", []order.ItemPatch{
		{Name: kernel.Some("Cards"), Quantity: kernel.Some(0)},
	}, kernel.SystemActor())
	require.NoError(t, err)
	factory := new(MockOrderUoWFactory)

	h := commands.NewCreateOrderCommandHandler(factory, nil, discardLogger)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	field, _ := errs.Field(err)
	assert.Equal(t, "quantity", field)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), "Acme", nil, kernel.SystemActor())

	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", anyCtx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory, nil, discardLogger)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_AddErrorRollsBackWithoutNotification(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), "Acme", nil, kernel.SystemActor())

	u := newOrderUoW()
	mock.InOrder(
		u.uow.On("Begin", anyCtx).Return(nil).Once(),
		u.orders.On("Add", anyCtx, mock.Anything).Return(errors.New("add error")).Once(),
		u.uow.On("Rollback", anyCtx).Return(nil).Once(),
	)
	queue := new(MockNotificationQueue)

	h := commands.NewCreateOrderCommandHandler(u.factory, queue, discardLogger)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	u.assertExpectations(t)
	queue.AssertNotCalled(t, "Enqueue", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_EnqueueFailureIsNotAnError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(kernel.NewUUID(), "Acme", nil, kernel.SystemActor())

	u := newOrderUoW()
	u.uow.On("Begin", anyCtx).Return(nil).Once()
	u.orders.On("Add", anyCtx, mock.Anything).Return(nil).Once()
	u.history.On("Append", anyCtx, mock.Anything).Return(nil).Once()
	u.uow.On("Commit", anyCtx).Return(nil).Once()
	u.uow.On("Rollback", anyCtx).Return(nil).Once()
	queue := new(MockNotificationQueue)
	queue.On("Enqueue", anyCtx, mock.Anything).Return(errors.New("queue is full")).Once()

	h := commands.NewCreateOrderCommandHandler(u.factory, queue, discardLogger)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	queue.AssertExpectations(t)
}

func TestNewCreateOrderCommand_RequiresClient(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "   ", nil, kernel.SystemActor())

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	field, _ := errs.Field(err)
	assert.Equal(t, "client", field)
}
