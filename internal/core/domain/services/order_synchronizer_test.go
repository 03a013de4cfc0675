package services_test

import (
	"testing"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/services"
	"printshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createOrder(t *testing.T, client string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), client, testNow)
	require.NoError(t, err)
	return o
}

func keepAll(items ...*order.Item) *[]services.ItemWrite {
	writes := make([]services.ItemWrite, 0, len(items))
	for _, item := range items {
		id := item.ID()
		writes = append(writes, services.ItemWrite{ID: &id, Patch: order.ItemPatch{
			Name:     kernel.Some(item.Name()),
			Quantity: kernel.Some(item.Quantity()),
			Status:   kernel.Some(item.Status()),
		}})
	}
	return &writes
}

func setStatus(item *order.Item, status order.Status) services.ItemWrite {
	id := item.ID()
	return services.ItemWrite{ID: &id, Patch: order.ItemPatch{Status: kernel.Some(status)}}
}

func TestOrderSynchronizer_ClientOnly(t *testing.T) {
	// Given
	o := createOrder(t, "Acme")
	items := []*order.Item{newItem(t, o.ID(), "Flyers", order.Ready)}
	sync := services.NewOrderSynchronizer()

	// When
	plan, err := sync.Sync(o, items,
		services.OrderChanges{Client: kernel.Some("Acme Corp")}, nil, nil, kernel.SystemActor(), testNow)

	// Then
	require.NoError(t, err)
	assert.Equal(t, []string{"Changed client: Acme -> Acme Corp"}, messages(plan.History))
	assert.True(t, plan.OrderChanged)
	assert.Equal(t, order.NotReady, o.Status(), "no item list means no aggregation")
	assert.Empty(t, plan.Created)
	assert.Empty(t, plan.Updated)
	assert.Empty(t, plan.Removed)
}

func TestOrderSynchronizer_StatusOverrideSurvivesWithoutItems(t *testing.T) {
	o := createOrder(t, "Acme")

	plan, err := services.NewOrderSynchronizer().Sync(o, nil,
		services.OrderChanges{Status: kernel.Some(order.Ready)}, nil, nil, kernel.SystemActor(), testNow)

	require.NoError(t, err)
	assert.True(t, plan.OrderChanged)
	assert.Empty(t, plan.History)
	assert.Equal(t, order.Ready, o.Status())
}

func TestOrderSynchronizer_RemovalDetection(t *testing.T) {
	// Given
	o := createOrder(t, "Acme")
	a := newItem(t, o.ID(), "A", order.NotReady)
	b := newItem(t, o.ID(), "B", order.NotReady)
	c := newItem(t, o.ID(), "C", order.NotReady)

	// When
	plan, err := services.NewOrderSynchronizer().Sync(o, []*order.Item{a, b, c},
		services.OrderChanges{}, keepAll(a, c), nil, kernel.SystemActor(), testNow)

	// Then
	require.NoError(t, err)
	require.Len(t, plan.Removed, 1)
	assert.True(t, plan.Removed[0].IsEqual(b))
	assert.Equal(t, []string{"Removed item: B"}, messages(plan.History))
	require.Len(t, plan.Items, 2)
	assert.True(t, plan.Items[0].IsEqual(a))
	assert.True(t, plan.Items[1].IsEqual(c))
	assert.Empty(t, plan.Updated)
	assert.False(t, plan.OrderChanged)
}

func TestOrderSynchronizer_EmptyListRemovesAllButArchived(t *testing.T) {
	o := createOrder(t, "Acme")
	active := newItem(t, o.ID(), "Active", order.NotReady)
	archived := newItem(t, o.ID(), "Archived", order.Ready)
	archived.SetArchived(true)
	empty := []services.ItemWrite{}

	plan, err := services.NewOrderSynchronizer().Sync(o, []*order.Item{active, archived},
		services.OrderChanges{}, &empty, nil, kernel.SystemActor(), testNow)

	require.NoError(t, err)
	require.Len(t, plan.Removed, 1)
	assert.True(t, plan.Removed[0].IsEqual(active))
	assert.Equal(t, []string{"Removed item: Active"}, messages(plan.History))
	assert.Equal(t, order.NotReady, o.Status(), "archived items do not count")
}

func TestOrderSynchronizer_CreatesUnknownItems(t *testing.T) {
	o := createOrder(t, "Acme")
	unknown := kernel.NewUUID()
	writes := []services.ItemWrite{
		{Patch: order.ItemPatch{Name: kernel.Some("Business cards"), Quantity: kernel.Some(500)}},
		{ID: &unknown, Patch: order.ItemPatch{Name: kernel.Some("Flyers"), Status: kernel.Some(order.Ready)}},
	}

	plan, err := services.NewOrderSynchronizer().Sync(o, nil,
		services.OrderChanges{}, &writes, nil, kernel.SystemActor(), testNow)

	require.NoError(t, err)
	require.Len(t, plan.Created, 2)
	assert.False(t, plan.Created[1].ID().IsEqual(unknown), "unknown ids get a fresh identity")
	assert.Equal(t, []string{"Added item: Business cards", "Added item: Flyers"}, messages(plan.History))
	assert.Equal(t, order.InProgress, o.Status())
	assert.True(t, plan.OrderChanged)
}

func TestOrderSynchronizer_RejectsForeignItem(t *testing.T) {
	o := createOrder(t, "Acme")
	other := createOrder(t, "Other")
	foreign := newItem(t, other.ID(), "Foreign", order.NotReady)
	id := foreign.ID()
	writes := []services.ItemWrite{{ID: &id, Patch: order.ItemPatch{Quantity: kernel.Some(3)}}}

	_, err := services.NewOrderSynchronizer().Sync(o, nil,
		services.OrderChanges{}, &writes, []*order.Item{foreign}, kernel.SystemActor(), testNow)

	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestOrderSynchronizer_ValidationStopsPlan(t *testing.T) {
	o := createOrder(t, "Acme")
	a := newItem(t, o.ID(), "A", order.NotReady)
	id := a.ID()
	writes := []services.ItemWrite{{ID: &id, Patch: order.ItemPatch{Quantity: kernel.Some(0)}}}

	_, err := services.NewOrderSynchronizer().Sync(o, []*order.Item{a},
		services.OrderChanges{}, &writes, nil, kernel.SystemActor(), testNow)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	field, _ := errs.Field(err)
	assert.Equal(t, "quantity", field)
}

func TestOrderSynchronizer_EntryOrdering(t *testing.T) {
	o := createOrder(t, "Acme")
	a := newItem(t, o.ID(), "A", order.NotReady)
	b := newItem(t, o.ID(), "B", order.NotReady)
	writes := []services.ItemWrite{
		setStatus(a, order.InProgress),
		{Patch: order.ItemPatch{Name: kernel.Some("C")}},
	}

	plan, err := services.NewOrderSynchronizer().Sync(o, []*order.Item{a, b},
		services.OrderChanges{Client: kernel.Some("Acme Corp")}, &writes, nil, kernel.SystemActor(), testNow)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"Changed client: Acme -> Acme Corp",
		"Changed: status 'A' (not-ready -> in-progress)",
		"Added item: C",
		"Removed item: B",
	}, messages(plan.History))
}

func TestOrderSynchronizer_Idempotence(t *testing.T) {
	// Given
	o := createOrder(t, "Acme")
	a := newItem(t, o.ID(), "A", order.NotReady)
	b := newItem(t, o.ID(), "B", order.NotReady)
	aID := a.ID()
	writes := []services.ItemWrite{
		{ID: &aID, Patch: order.ItemPatch{Status: kernel.Some(order.Ready), Quantity: kernel.Some(3)}},
		setStatus(b, order.InProgress),
	}
	changes := services.OrderChanges{Client: kernel.Some("Acme Corp")}
	sync := services.NewOrderSynchronizer()

	first, err := sync.Sync(o, []*order.Item{a, b}, changes, &writes, nil, kernel.SystemActor(), testNow)
	require.NoError(t, err)
	require.NotEmpty(t, first.History)

	// When
	second, err := sync.Sync(o, first.Items, changes, &writes, nil, kernel.SystemActor(), testNow.Add(1))

	// Then
	require.NoError(t, err)
	assert.True(t, second.IsEmpty(), "second identical call must not write: %+v", messages(second.History))
}

func TestOrderSynchronizer_BusinessCardsScenario(t *testing.T) {
	o := createOrder(t, "Acme")
	cards := newItem(t, o.ID(), "Business cards", order.NotReady)
	flyers := newItem(t, o.ID(), "Flyers", order.NotReady)
	items := []*order.Item{cards, flyers}
	sync := services.NewOrderSynchronizer()

	step := func(write services.ItemWrite, want order.Status) {
		t.Helper()
		writes := []services.ItemWrite{write}
		for _, item := range items {
			if !item.ID().IsEqual(*write.ID) {
				id := item.ID()
				writes = append(writes, services.ItemWrite{ID: &id})
			}
		}
		plan, err := sync.Sync(o, items, services.OrderChanges{}, &writes, nil, kernel.SystemActor(), testNow)
		require.NoError(t, err)
		require.Empty(t, plan.Removed)
		items = plan.Items
		assert.Equal(t, want, o.Status())
	}

	assert.Equal(t, order.NotReady, o.Status())
	step(setStatus(cards, order.InProgress), order.InProgress)
	step(setStatus(flyers, order.Ready), order.InProgress)
	step(setStatus(cards, order.Ready), order.Ready)
	step(setStatus(flyers, order.NotReady), order.InProgress)

	for _, item := range items {
		assert.Equal(t, item.Status() == order.Ready, item.ReadyAt() != nil, item.Name())
	}
}
