package commands_test

import (
	"testing"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestArchiveOrderCommandHandler_Handle_ArchivesActiveItems(t *testing.T) {
	// Given
	ctx := t.Context()
	o := storedOrder(t, "Acme", order.InProgress)
	ready := storedItem(t, o.ID(), "Cards", order.Ready)
	pending := storedItem(t, o.ID(), "Flyers", order.NotReady)
	cmd, err := commands.NewArchiveOrderCommand(o.ID(), true, kernel.SystemActor())
	require.NoError(t, err)

	u := newOrderUoW()
	var entries []*order.HistoryEntry
	mock.InOrder(
		u.uow.On("Begin", anyCtx).Return(nil).Once(),
		u.orders.On("Get", anyCtx, o.ID()).Return(o, nil).Once(),
		u.items.On("GetByOrder", anyCtx, o.ID()).Return([]*order.Item{ready, pending}, nil).Once(),
		u.items.On("Update", anyCtx, mock.Anything).Return(nil).Twice(),
		u.orders.On("Update", anyCtx, o).Return(nil).Once(),
		u.history.On("Append", anyCtx, mock.Anything).Run(func(args mock.Arguments) {
			entries = args.Get(1).([]*order.HistoryEntry)
		}).Return(nil).Once(),
		u.uow.On("Commit", anyCtx).Return(nil).Once(),
		u.uow.On("Rollback", anyCtx).Return(nil).Once(),
	)

	// When
	h := commands.NewArchiveOrderCommandHandler(u.factory)
	n, err := h.Handle(ctx, cmd)

	// Then
	require.NoError(t, err)
	u.assertExpectations(t)
	assert.Equal(t, 2, n)
	assert.True(t, ready.IsArchived())
	assert.Equal(t, order.NotReady, o.Status())
	assert.Equal(t, []string{"Archived 2 items"}, historyMessages(entries))
}

func TestArchiveOrderCommandHandler_Handle_RestoreCountsOnlyFlippedItems(t *testing.T) {
	ctx := t.Context()
	o := storedOrder(t, "Acme", order.NotReady)
	archived := storedItem(t, o.ID(), "Cards", order.Ready)
	archived.SetArchived(true)
	active := storedItem(t, o.ID(), "Flyers", order.Ready)
	cmd, _ := commands.NewArchiveOrderCommand(o.ID(), false, kernel.SystemActor())

	u := newOrderUoW()
	var entries []*order.HistoryEntry
	u.uow.On("Begin", anyCtx).Return(nil).Once()
	u.orders.On("Get", anyCtx, o.ID()).Return(o, nil).Once()
	u.items.On("GetByOrder", anyCtx, o.ID()).Return([]*order.Item{archived, active}, nil).Once()
	u.items.On("Update", anyCtx, archived).Return(nil).Once()
	u.orders.On("Update", anyCtx, o).Return(nil).Once()
	u.history.On("Append", anyCtx, mock.Anything).Run(func(args mock.Arguments) {
		entries = args.Get(1).([]*order.HistoryEntry)
	}).Return(nil).Once()
	u.uow.On("Commit", anyCtx).Return(nil).Once()
	u.uow.On("Rollback", anyCtx).Return(nil).Once()

	h := commands.NewArchiveOrderCommandHandler(u.factory)
	n, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	u.assertExpectations(t)
	assert.Equal(t, 1, n)
	assert.Equal(t, order.Ready, o.Status())
	assert.Equal(t, []string{"Restored 1 items"}, historyMessages(entries))
}

func TestArchiveOrderCommandHandler_Handle_NothingToFlip(t *testing.T) {
	ctx := t.Context()
	o := storedOrder(t, "Acme", order.NotReady)
	cmd, _ := commands.NewArchiveOrderCommand(o.ID(), true, kernel.SystemActor())

	u := newOrderUoW()
	mock.InOrder(
		u.uow.On("Begin", anyCtx).Return(nil).Once(),
		u.orders.On("Get", anyCtx, o.ID()).Return(o, nil).Once(),
		u.items.On("GetByOrder", anyCtx, o.ID()).Return([]*order.Item{}, nil).Once(),
		u.uow.On("Rollback", anyCtx).Return(nil).Once(),
	)

	h := commands.NewArchiveOrderCommandHandler(u.factory)
	n, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, n)
	u.assertExpectations(t)
	u.history.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}
