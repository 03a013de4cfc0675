package order_test

import (
	"testing"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyItemWrite_Create(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("should apply defaults", func(t *testing.T) {
		item, err := order.ApplyItemWrite(nil, orderID, order.ItemPatch{Name: kernel.Some("Flyers")}, testNow)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.False(t, item.ID().IsZero())
		assert.True(t, item.OrderID().IsEqual(orderID))
		assert.Equal(t, "Flyers", item.Name())
		assert.Equal(t, 1, item.Quantity())
		assert.Equal(t, order.NotReady, item.Status())
		assert.Nil(t, item.ReadyAt())
		assert.Nil(t, item.Deadline())
		assert.False(t, item.IsArchived())
	})

	t.Run("should require name", func(t *testing.T) {
		_, err := order.ApplyItemWrite(nil, orderID, order.ItemPatch{Quantity: kernel.Some(3)}, testNow)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		field, _ := errs.Field(err)
		assert.Equal(t, "name", field)
	})

	t.Run("should stamp ready_at when created ready", func(t *testing.T) {
		item, err := order.ApplyItemWrite(nil, orderID, order.ItemPatch{
			Name:   kernel.Some("Stickers"),
			Status: kernel.Some(order.Ready),
		}, testNow)

		require.NoError(t, err)
		require.NotNil(t, item.ReadyAt())
		assert.Equal(t, testNow, *item.ReadyAt())
	})

	t.Run("should truncate deadline to a date", func(t *testing.T) {
		deadline := time.Date(2026, 3, 20, 17, 45, 0, 0, time.UTC)

		item, err := order.ApplyItemWrite(nil, orderID, order.ItemPatch{
			Name:     kernel.Some("Banner"),
			Deadline: kernel.Some(&deadline),
		}, testNow)

		require.NoError(t, err)
		assert.Equal(t, "2026-03-20", item.FormatDeadline())
		assert.Equal(t, time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC), *item.Deadline())
	})

	t.Run("should reject non positive quantity", func(t *testing.T) {
		for _, quantity := range []int{0, -1} {
			_, err := order.ApplyItemWrite(nil, orderID, order.ItemPatch{
				Name:     kernel.Some("Flyers"),
				Quantity: kernel.Some(quantity),
			}, testNow)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			field, _ := errs.Field(err)
			assert.Equal(t, "quantity", field)
		}
	})
}

func TestApplyItemWrite_Update(t *testing.T) {
	orderID := kernel.NewUUID()
	existing, err := order.ApplyItemWrite(nil, orderID, order.ItemPatch{
		Name:     kernel.Some("Business cards"),
		Quantity: kernel.Some(500),
		Comment:  kernel.Some("matte"),
	}, testNow)
	require.NoError(t, err)

	t.Run("should keep unset fields and never mutate input", func(t *testing.T) {
		updated, err := order.ApplyItemWrite(existing, orderID, order.ItemPatch{Quantity: kernel.Some(1000)}, testNow)

		require.NoError(t, err)
		assert.True(t, updated.IsEqual(existing))
		assert.Equal(t, 1000, updated.Quantity())
		assert.Equal(t, "Business cards", updated.Name())
		assert.Equal(t, "matte", updated.Comment())
		assert.Equal(t, 500, existing.Quantity())
	})

	t.Run("should refuse an item of another order", func(t *testing.T) {
		_, err := order.ApplyItemWrite(existing, kernel.NewUUID(), order.ItemPatch{Quantity: kernel.Some(2)}, testNow)

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should couple ready_at with ready status", func(t *testing.T) {
		later := testNow.Add(time.Hour)

		ready, err := order.ApplyItemWrite(existing, orderID, order.ItemPatch{Status: kernel.Some(order.Ready)}, testNow)
		require.NoError(t, err)
		require.NotNil(t, ready.ReadyAt())
		assert.Equal(t, testNow, *ready.ReadyAt())

		again, err := order.ApplyItemWrite(ready, orderID, order.ItemPatch{Status: kernel.Some(order.Ready)}, later)
		require.NoError(t, err)
		assert.Equal(t, testNow, *again.ReadyAt(), "ready_at must not move while the item stays ready")

		back, err := order.ApplyItemWrite(again, orderID, order.ItemPatch{Status: kernel.Some(order.InProgress)}, later)
		require.NoError(t, err)
		assert.Nil(t, back.ReadyAt())
	})

	t.Run("should clear nullable fields", func(t *testing.T) {
		deadline := testNow
		responsible := kernel.NewUUID()
		withRefs, err := order.ApplyItemWrite(existing, orderID, order.ItemPatch{
			Deadline:      kernel.Some(&deadline),
			ResponsibleID: kernel.Some(&responsible),
		}, testNow)
		require.NoError(t, err)
		require.NotNil(t, withRefs.ResponsibleID())

		cleared, err := order.ApplyItemWrite(withRefs, orderID, order.ItemPatch{
			Deadline:      kernel.Some[*time.Time](nil),
			ResponsibleID: kernel.Some[*kernel.UUID](nil),
		}, testNow)

		require.NoError(t, err)
		assert.Nil(t, cleared.Deadline())
		assert.Nil(t, cleared.ResponsibleID())
		assert.Equal(t, "-", cleared.FormatDeadline())
	})
}

func TestItem_SetArchived(t *testing.T) {
	item := restoreItem(t, kernel.NewUUID(), order.NotReady, false)

	assert.True(t, item.SetArchived(true))
	assert.True(t, item.IsArchived())
	assert.False(t, item.SetArchived(true))
	assert.True(t, item.SetArchived(false))
}

func TestRestoreItem(t *testing.T) {
	t.Run("should reject invalid state", func(t *testing.T) {
		_, err := order.RestoreItem(order.RestoreItemParams{
			ID:       kernel.NewUUID(),
			OrderID:  kernel.NewUUID(),
			Quantity: 0,
			Status:   order.NotReady,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero value item is not constructed", func(t *testing.T) {
		assert.Equal(t, order.ErrItemIsNotConstructed, (&order.Item{}).Validate())
	})
}

func TestHistoryEntry(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("system actor", func(t *testing.T) {
		entry, err := order.NewHistoryEntry(orderID, kernel.SystemActor(), "Created order", testNow)

		require.NoError(t, err)
		assert.Nil(t, entry.ActorID())
		assert.Equal(t, "Created order", entry.Message())
		assert.True(t, entry.OrderID().IsEqual(orderID))
		assert.Equal(t, testNow, entry.CreatedAt())
	})

	t.Run("staff actor", func(t *testing.T) {
		actor, err := kernel.NewActor(kernel.NewUUID())
		require.NoError(t, err)

		entry, err := order.NewHistoryEntry(orderID, actor, "Removed item: Flyers", testNow)

		require.NoError(t, err)
		assert.True(t, actor.ID().IsEqual(*entry.ActorID()))
	})

	t.Run("empty message", func(t *testing.T) {
		_, err := order.NewHistoryEntry(orderID, kernel.SystemActor(), " ", testNow)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestItem_HasSameState(t *testing.T) {
	orderID := kernel.NewUUID()
	item, err := order.ApplyItemWrite(nil, orderID, order.ItemPatch{Name: kernel.Some("Flyers")}, testNow)
	require.NoError(t, err)

	same, err := order.ApplyItemWrite(item, orderID, order.ItemPatch{Name: kernel.Some("Flyers"), Quantity: kernel.Some(1)}, testNow)
	require.NoError(t, err)
	assert.True(t, item.HasSameState(same))

	changed, err := order.ApplyItemWrite(item, orderID, order.ItemPatch{Comment: kernel.Some("glossy")}, testNow)
	require.NoError(t, err)
	assert.False(t, item.HasSameState(changed))
	assert.False(t, item.HasSameState(nil))
}
