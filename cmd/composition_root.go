package cmd

import (
	"log/slog"

	httpadapter "printshop/internal/adapters/in/http"
	"printshop/internal/adapters/out/postgres"
	"printshop/internal/adapters/out/postgres/settingsrepo"
	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	queue      ports.NotificationQueue
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, queue ports.NotificationQueue, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		queue:      queue,
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) directoryUoWFactory() commands.DirectoryUoWFactory {
	return FuncDirectoryUoWFactory(func() commands.DirectoryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) settingsUoWFactory() commands.SettingsUoWFactory {
	return FuncSettingsUoWFactory(func() commands.SettingsUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	h := commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.queue, c.logger)
	return &h
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() *commands.UpdateOrderCommandHandler {
	h := commands.NewUpdateOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateUpdateItemCommandHandler() *commands.UpdateItemCommandHandler {
	h := commands.NewUpdateItemCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateArchiveOrderCommandHandler() *commands.ArchiveOrderCommandHandler {
	h := commands.NewArchiveOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() *commands.DeleteOrderCommandHandler {
	h := commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateSendDeadlineRemindersCommandHandler() *commands.SendDeadlineRemindersCommandHandler {
	h := commands.NewSendDeadlineRemindersCommandHandler(c.orderUoWFactory(), c.queue, c.logger)
	return &h
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() *commands.CreateProductCommandHandler {
	h := commands.NewCreateProductCommandHandler(c.directoryUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() *commands.DeleteProductCommandHandler {
	h := commands.NewDeleteProductCommandHandler(c.directoryUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateCreateStaffCommandHandler() *commands.CreateStaffCommandHandler {
	h := commands.NewCreateStaffCommandHandler(c.directoryUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateDeleteStaffCommandHandler() *commands.DeleteStaffCommandHandler {
	h := commands.NewDeleteStaffCommandHandler(c.directoryUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateUpdateCompanySettingsCommandHandler() *commands.UpdateCompanySettingsCommandHandler {
	h := commands.NewUpdateCompanySettingsCommandHandler(c.settingsUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateUpdateTelegramSettingsCommandHandler() *commands.UpdateTelegramSettingsCommandHandler {
	h := commands.NewUpdateTelegramSettingsCommandHandler(c.settingsUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return queries.NewListProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListStaffQueryHandler() queries.ListStaffQueryHandler {
	return queries.NewListStaffQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSettingsQueryHandler() queries.GetSettingsQueryHandler {
	return queries.NewGetSettingsQueryHandler(c.CreateSettingsRepository())
}

func (c *CompositionRoot) CreateGetStatisticsQueryHandler() queries.GetStatisticsQueryHandler {
	return queries.NewGetStatisticsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateExportOrdersQueryHandler() queries.ExportOrdersQueryHandler {
	return queries.NewExportOrdersQueryHandler(c.gormDB)
}

// CreateSettingsRepository reads settings outside any transaction.
func (c *CompositionRoot) CreateSettingsRepository() *settingsrepo.GormSettingsRepository {
	return settingsrepo.NewGormSettingsRepository(c.gormDB)
}

// CreateHTTPHandlers wires every use case exposed over HTTP. sheets may be nil.
func (c *CompositionRoot) CreateHTTPHandlers(sheets httpadapter.SheetsExporter) httpadapter.Handlers {
	return httpadapter.Handlers{
		CreateOrder:    c.CreateCreateOrderCommandHandler(),
		UpdateOrder:    c.CreateUpdateOrderCommandHandler(),
		UpdateItem:     c.CreateUpdateItemCommandHandler(),
		ArchiveOrder:   c.CreateArchiveOrderCommandHandler(),
		DeleteOrder:    c.CreateDeleteOrderCommandHandler(),
		CreateProduct:  c.CreateCreateProductCommandHandler(),
		DeleteProduct:  c.CreateDeleteProductCommandHandler(),
		CreateStaff:    c.CreateCreateStaffCommandHandler(),
		DeleteStaff:    c.CreateDeleteStaffCommandHandler(),
		UpdateCompany:  c.CreateUpdateCompanySettingsCommandHandler(),
		UpdateTelegram: c.CreateUpdateTelegramSettingsCommandHandler(),
		ListOrders:     c.CreateListOrdersQueryHandler(),
		GetOrder:       c.CreateGetOrderQueryHandler(),
		OrderHistory:   c.CreateGetOrderHistoryQueryHandler(),
		ListProducts:   c.CreateListProductsQueryHandler(),
		ListStaff:      c.CreateListStaffQueryHandler(),
		GetSettings:    c.CreateGetSettingsQueryHandler(),
		Statistics:     c.CreateGetStatisticsQueryHandler(),
		ExportOrders:   c.CreateExportOrdersQueryHandler(),
		Sheets:         sheets,
	}
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDirectoryUoWFactory func() commands.DirectoryUoW

func (f FuncDirectoryUoWFactory) Create() commands.DirectoryUoW {
	return f()
}

type FuncSettingsUoWFactory func() commands.SettingsUoW

func (f FuncSettingsUoWFactory) Create() commands.SettingsUoW {
	return f()
}
