package order_test

import (
	"strings"
	"testing"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func createValidOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "Acme", testNow)
	require.NoError(t, err)
	return o
}

func restoreItem(t *testing.T, orderID kernel.UUID, status order.Status, archived bool) *order.Item {
	t.Helper()
	var readyAt *time.Time
	if status == order.Ready {
		readyAt = &testNow
	}
	item, err := order.RestoreItem(order.RestoreItemParams{
		ID:       kernel.NewUUID(),
		OrderID:  orderID,
		Name:     "Flyers",
		Quantity: 1,
		Status:   status,
		ReadyAt:  readyAt,
		Archived: archived,
	})
	require.NoError(t, err)
	return item
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order with not ready status", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := order.NewOrder(id, "  Acme  ", testNow)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, "Acme", o.Client())
		assert.Equal(t, order.NotReady, o.Status())
		assert.Equal(t, testNow, o.CreatedAt())
	})

	t.Run("should require client", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "   ", testNow)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject too long client", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), strings.Repeat("a", order.ClientMaxLength+1), testNow)

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should join errors", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, "", testNow)

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	assert.Equal(t, order.ErrOrderIsNotConstructed, nilOrder.Validate())
	assert.Equal(t, order.ErrOrderIsNotConstructed, (&order.Order{}).Validate())
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should keep stored status", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), "Acme", order.Ready, testNow)

		require.NoError(t, err)
		assert.Equal(t, order.Ready, o.Status())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), "Acme", order.Unknown, testNow)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_ChangeClient(t *testing.T) {
	t.Run("should report previous value", func(t *testing.T) {
		o := createValidOrder(t)

		previous, changed, err := o.ChangeClient("Acme Corp")

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, "Acme", previous)
		assert.Equal(t, "Acme Corp", o.Client())
	})

	t.Run("should report no change for equal value", func(t *testing.T) {
		o := createValidOrder(t)

		_, changed, err := o.ChangeClient("Acme")

		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("should keep client on error", func(t *testing.T) {
		o := createValidOrder(t)

		_, changed, err := o.ChangeClient("")

		require.Error(t, err)
		assert.False(t, changed)
		assert.Equal(t, "Acme", o.Client())
	})
}

func TestOrder_RecalculateStatus(t *testing.T) {
	t.Run("should derive status from items", func(t *testing.T) {
		o := createValidOrder(t)
		items := []*order.Item{
			restoreItem(t, o.ID(), order.Ready, false),
			restoreItem(t, o.ID(), order.NotReady, false),
		}

		changed := o.RecalculateStatus(items)

		assert.True(t, changed)
		assert.Equal(t, order.InProgress, o.Status())
	})

	t.Run("should ignore archived items", func(t *testing.T) {
		o := createValidOrder(t)
		items := []*order.Item{
			restoreItem(t, o.ID(), order.Ready, false),
			restoreItem(t, o.ID(), order.NotReady, true),
		}

		o.RecalculateStatus(items)

		assert.Equal(t, order.Ready, o.Status())
	})

	t.Run("should report unchanged status", func(t *testing.T) {
		o := createValidOrder(t)

		assert.False(t, o.RecalculateStatus(nil))
		assert.Equal(t, order.NotReady, o.Status())
	})

	t.Run("should replace an override", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.OverrideStatus(order.Ready))

		changed := o.RecalculateStatus([]*order.Item{restoreItem(t, o.ID(), order.NotReady, false)})

		assert.True(t, changed)
		assert.Equal(t, order.NotReady, o.Status())
	})
}

func TestOrder_OverrideStatus(t *testing.T) {
	o := createValidOrder(t)

	require.NoError(t, o.OverrideStatus(order.InProgress))
	assert.Equal(t, order.InProgress, o.Status())
	assert.ErrorIs(t, o.OverrideStatus(order.Unknown), errs.ErrValueIsInvalid)
	assert.Equal(t, order.InProgress, o.Status())
}
