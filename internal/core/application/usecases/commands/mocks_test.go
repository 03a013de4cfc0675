package commands_test

import (
	"context"
	"time"

	"printshop/internal/core/application/notification"
	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/domain/model/catalog"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/model/settings"
	"printshop/internal/core/domain/model/staff"
	"printshop/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// anyCtx matches the context a handler passes on. Handlers open a span first, so it
// is never the test's own context.
var anyCtx = mock.MatchedBy(func(context.Context) bool { return true })

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockItemRepository struct{ mock.Mock }

func (m *MockItemRepository) Add(ctx context.Context, item *order.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockItemRepository) Update(ctx context.Context, item *order.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockItemRepository) Delete(ctx context.Context, ids []kernel.UUID) error {
	return m.Called(ctx, ids).Error(0)
}

func (m *MockItemRepository) Get(ctx context.Context, id kernel.UUID) (*order.Item, error) {
	args := m.Called(ctx, id)
	if item, ok := args.Get(0).(*order.Item); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockItemRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.Item, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]*order.Item)
	return items, args.Error(1)
}

func (m *MockItemRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*order.Item, error) {
	args := m.Called(ctx, ids)
	items, _ := args.Get(0).([]*order.Item)
	return items, args.Error(1)
}

func (m *MockItemRepository) GetPendingDueOn(ctx context.Context, date time.Time) ([]*order.Item, error) {
	args := m.Called(ctx, date)
	items, _ := args.Get(0).([]*order.Item)
	return items, args.Error(1)
}

type MockHistoryRepository struct{ mock.Mock }

func (m *MockHistoryRepository) Append(ctx context.Context, entries ...*order.HistoryEntry) error {
	return m.Called(ctx, entries).Error(0)
}

func (m *MockHistoryRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.HistoryEntry, error) {
	args := m.Called(ctx, orderID)
	entries, _ := args.Get(0).([]*order.HistoryEntry)
	return entries, args.Error(1)
}

type MockStaffRepository struct{ mock.Mock }

func (m *MockStaffRepository) Add(ctx context.Context, member *staff.Member) error {
	return m.Called(ctx, member).Error(0)
}

func (m *MockStaffRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockStaffRepository) Get(ctx context.Context, id kernel.UUID) (*staff.Member, error) {
	args := m.Called(ctx, id)
	if member, ok := args.Get(0).(*staff.Member); ok {
		return member, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStaffRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*staff.Member, error) {
	args := m.Called(ctx, ids)
	members, _ := args.Get(0).([]*staff.Member)
	return members, args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, product *catalog.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockSettingsRepository struct{ mock.Mock }

func (m *MockSettingsRepository) GetCompany(ctx context.Context) (settings.Company, error) {
	args := m.Called(ctx)
	return args.Get(0).(settings.Company), args.Error(1)
}

func (m *MockSettingsRepository) SaveCompany(ctx context.Context, company settings.Company) error {
	return m.Called(ctx, company).Error(0)
}

func (m *MockSettingsRepository) GetTelegram(ctx context.Context) (settings.Telegram, error) {
	args := m.Called(ctx)
	return args.Get(0).(settings.Telegram), args.Error(1)
}

func (m *MockSettingsRepository) SaveTelegram(ctx context.Context, telegram settings.Telegram) error {
	return m.Called(ctx, telegram).Error(0)
}

// MockUoW satisfies every unit of work interface of the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ItemRepository() ports.ItemRepository {
	return m.Called().Get(0).(ports.ItemRepository)
}

func (m *MockUoW) HistoryRepository() ports.HistoryRepository {
	return m.Called().Get(0).(ports.HistoryRepository)
}

func (m *MockUoW) StaffRepository() ports.StaffRepository {
	return m.Called().Get(0).(ports.StaffRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	return m.Called().Get(0).(ports.ProductRepository)
}

func (m *MockUoW) SettingsRepository() ports.SettingsRepository {
	return m.Called().Get(0).(ports.SettingsRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockDirectoryUoWFactory struct{ mock.Mock }

func (m *MockDirectoryUoWFactory) Create() commands.DirectoryUoW {
	return m.Called().Get(0).(commands.DirectoryUoW)
}

type MockSettingsUoWFactory struct{ mock.Mock }

func (m *MockSettingsUoWFactory) Create() commands.SettingsUoW {
	return m.Called().Get(0).(commands.SettingsUoW)
}

type MockNotificationQueue struct{ mock.Mock }

func (m *MockNotificationQueue) Enqueue(ctx context.Context, msg notification.Message) error {
	return m.Called(ctx, msg).Error(0)
}

// orderUoW wires a MockUoW with fresh repository mocks that may be requested any
// number of times.
type orderUoW struct {
	uow     *MockUoW
	factory *MockOrderUoWFactory
	orders  *MockOrderRepository
	items   *MockItemRepository
	history *MockHistoryRepository
	staff   *MockStaffRepository
}

func newOrderUoW() orderUoW {
	u := orderUoW{
		uow:     new(MockUoW),
		factory: new(MockOrderUoWFactory),
		orders:  new(MockOrderRepository),
		items:   new(MockItemRepository),
		history: new(MockHistoryRepository),
		staff:   new(MockStaffRepository),
	}
	u.factory.On("Create").Return(u.uow).Once()
	u.uow.On("OrderRepository").Return(u.orders).Maybe()
	u.uow.On("ItemRepository").Return(u.items).Maybe()
	u.uow.On("HistoryRepository").Return(u.history).Maybe()
	u.uow.On("StaffRepository").Return(u.staff).Maybe()
	return u
}

func (u orderUoW) assertExpectations(t mock.TestingT) {
	u.factory.AssertExpectations(t)
	u.uow.AssertExpectations(t)
	u.orders.AssertExpectations(t)
	u.items.AssertExpectations(t)
	u.history.AssertExpectations(t)
	u.staff.AssertExpectations(t)
}

var testNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func historyMessages(entries []*order.HistoryEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Message())
	}
	return out
}
