package http

import (
	"context"
	"encoding/csv"
	"errors"
	"log/slog"
	"net/http"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/model/settings"
	"printshop/internal/generated/servers"
	"printshop/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CommandHandler runs a command that produces no result.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// ResultHandler runs a command or query that produces a result.
type ResultHandler[C, R any] interface {
	Handle(ctx context.Context, cmd C) (R, error)
}

// SheetsExporter starts a spreadsheet export in the background.
type SheetsExporter interface {
	Trigger() error
}

// Handlers are the use cases the HTTP API exposes.
type Handlers struct {
	CreateOrder    CommandHandler[commands.CreateOrderCommand]
	UpdateOrder    ResultHandler[commands.UpdateOrderCommand, *order.Order]
	UpdateItem     ResultHandler[commands.UpdateItemCommand, *order.Item]
	ArchiveOrder   ResultHandler[commands.ArchiveOrderCommand, int]
	DeleteOrder    CommandHandler[commands.DeleteOrderCommand]
	CreateProduct  CommandHandler[commands.CreateProductCommand]
	DeleteProduct  CommandHandler[commands.DeleteProductCommand]
	CreateStaff    CommandHandler[commands.CreateStaffCommand]
	DeleteStaff    CommandHandler[commands.DeleteStaffCommand]
	UpdateCompany  CommandHandler[commands.UpdateCompanySettingsCommand]
	UpdateTelegram CommandHandler[commands.UpdateTelegramSettingsCommand]

	ListOrders   ResultHandler[queries.ListOrdersQuery, []queries.OrderResponse]
	GetOrder     ResultHandler[queries.GetOrderQuery, *queries.GetOrderQueryResponse]
	OrderHistory ResultHandler[queries.GetOrderHistoryQuery, []queries.HistoryEntryResponse]
	ListProducts ResultHandler[queries.ListProductsQuery, []queries.ProductResponse]
	ListStaff    ResultHandler[queries.ListStaffQuery, []queries.StaffResponse]
	GetSettings  ResultHandler[queries.GetSettingsQuery, *queries.GetSettingsQueryResponse]
	Statistics   ResultHandler[queries.GetStatisticsQuery, *queries.GetStatisticsQueryResponse]
	ExportOrders ResultHandler[queries.ExportOrdersQuery, [][]string]

	// Sheets is nil when the spreadsheet export is not configured.
	Sheets SheetsExporter
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{h: handlers, logger: logger.With("component", "http")}
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(c echo.Context, params servers.ListOrdersParams) error {
	orders, err := s.h.ListOrders.Handle(c.Request().Context(), queries.NewListOrdersQuery(params.Archived))
	if err != nil {
		return writeError(c, s.logger, "list_orders", err)
	}

	resp := make([]servers.Order, len(orders))
	for i, o := range orders {
		resp[i] = toOrder(o)
	}
	return c.JSON(http.StatusOK, resp)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context, params servers.CreateOrderParams) error {
	var body servers.CreateOrderJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c)
	}

	actor, err := actorOf(params.XActorID)
	if err != nil {
		return writeError(c, s.logger, "create_order", err)
	}
	patches, err := newItemPatches(body.Items)
	if err != nil {
		return writeError(c, s.logger, "create_order", err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, body.Client, patches, actor)
	if err != nil {
		return writeError(c, s.logger, "create_order", err)
	}
	if err := s.h.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, s.logger, "create_order", err)
	}

	return s.respondOrder(c, http.StatusCreated, orderID, "create_order")
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(c echo.Context, orderId openapi_types.UUID, params servers.GetOrderParams) error {
	id, err := idOf(orderId, "orderId")
	if err != nil {
		return writeError(c, s.logger, "get_order", err)
	}

	query, err := queries.NewGetOrderQuery(id, params.Archived)
	if err != nil {
		return writeError(c, s.logger, "get_order", err)
	}
	o, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, s.logger, "get_order", err)
	}
	return c.JSON(http.StatusOK, toOrderDetails(o))
}

// UpdateOrder handles PATCH /api/v1/orders/{orderId}.
func (s *Server) UpdateOrder(c echo.Context, orderId openapi_types.UUID, params servers.UpdateOrderParams) error {
	var body servers.UpdateOrderJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c)
	}

	id, err := idOf(orderId, "orderId")
	if err != nil {
		return writeError(c, s.logger, "update_order", err)
	}
	actor, err := actorOf(params.XActorID)
	if err != nil {
		return writeError(c, s.logger, "update_order", err)
	}
	changes, err := orderChanges(body)
	if err != nil {
		return writeError(c, s.logger, "update_order", err)
	}
	writes, err := itemWrites(body.Items)
	if err != nil {
		return writeError(c, s.logger, "update_order", err)
	}

	cmd, err := commands.NewUpdateOrderCommand(id, changes, writes, actor)
	if err != nil {
		return writeError(c, s.logger, "update_order", err)
	}
	if _, err := s.h.UpdateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, s.logger, "update_order", err)
	}

	return s.respondOrder(c, http.StatusOK, id, "update_order")
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId}.
func (s *Server) DeleteOrder(c echo.Context, orderId openapi_types.UUID) error {
	id, err := idOf(orderId, "orderId")
	if err != nil {
		return writeError(c, s.logger, "delete_order", err)
	}
	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return writeError(c, s.logger, "delete_order", err)
	}
	if err := s.h.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, s.logger, "delete_order", err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetOrderHistory handles GET /api/v1/orders/{orderId}/history.
func (s *Server) GetOrderHistory(c echo.Context, orderId openapi_types.UUID) error {
	id, err := idOf(orderId, "orderId")
	if err != nil {
		return writeError(c, s.logger, "order_history", err)
	}
	query, err := queries.NewGetOrderHistoryQuery(id)
	if err != nil {
		return writeError(c, s.logger, "order_history", err)
	}
	history, err := s.h.OrderHistory.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, s.logger, "order_history", err)
	}
	return c.JSON(http.StatusOK, toHistory(history))
}

// ArchiveOrder handles POST /api/v1/orders/{orderId}/archive.
func (s *Server) ArchiveOrder(c echo.Context, orderId openapi_types.UUID, params servers.ArchiveOrderParams) error {
	return s.archive(c, orderId, params.XActorID, true)
}

// UnarchiveOrder handles POST /api/v1/orders/{orderId}/unarchive.
func (s *Server) UnarchiveOrder(c echo.Context, orderId openapi_types.UUID, params servers.UnarchiveOrderParams) error {
	return s.archive(c, orderId, params.XActorID, false)
}

func (s *Server) archive(c echo.Context, orderId openapi_types.UUID, actorID *servers.ActorID, archived bool) error {
	operation := "archive_order"
	if !archived {
		operation = "unarchive_order"
	}

	id, err := idOf(orderId, "orderId")
	if err != nil {
		return writeError(c, s.logger, operation, err)
	}
	actor, err := actorOf(actorID)
	if err != nil {
		return writeError(c, s.logger, operation, err)
	}
	cmd, err := commands.NewArchiveOrderCommand(id, archived, actor)
	if err != nil {
		return writeError(c, s.logger, operation, err)
	}

	changed, err := s.h.ArchiveOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, s.logger, operation, err)
	}
	return c.JSON(http.StatusOK, servers.ArchiveResult{Changed: changed})
}

// UpdateItem handles PATCH /api/v1/items/{itemId}.
func (s *Server) UpdateItem(c echo.Context, itemId openapi_types.UUID, params servers.UpdateItemParams) error {
	var body servers.UpdateItemJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c)
	}

	id, err := idOf(itemId, "itemId")
	if err != nil {
		return writeError(c, s.logger, "update_item", err)
	}
	actor, err := actorOf(params.XActorID)
	if err != nil {
		return writeError(c, s.logger, "update_item", err)
	}
	patch, err := fromItemPatch(body).patch()
	if err != nil {
		return writeError(c, s.logger, "update_item", err)
	}

	cmd, err := commands.NewUpdateItemCommand(id, patch, actor)
	if err != nil {
		return writeError(c, s.logger, "update_item", err)
	}
	item, err := s.h.UpdateItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, s.logger, "update_item", err)
	}

	// Re-read through the query side for the responsible's display name.
	query, err := queries.NewGetOrderQuery(item.OrderID(), nil)
	if err != nil {
		return writeError(c, s.logger, "update_item", err)
	}
	o, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, s.logger, "update_item", err)
	}
	for _, candidate := range o.Items {
		if candidate.ID == item.ID().Google() {
			return c.JSON(http.StatusOK, toItem(candidate))
		}
	}
	return writeError(c, s.logger, "update_item", errors.New("updated item missing from its order"))
}

// ListProducts handles GET /api/v1/products.
func (s *Server) ListProducts(c echo.Context) error {
	products, err := s.h.ListProducts.Handle(c.Request().Context(), queries.NewListProductsQuery())
	if err != nil {
		return writeError(c, s.logger, "list_products", err)
	}

	resp := make([]servers.Product, len(products))
	for i, p := range products {
		resp[i] = servers.Product{Id: p.ID, Name: p.Name, Category: servers.Category(p.Category), Icon: p.Icon}
	}
	return c.JSON(http.StatusOK, resp)
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(c echo.Context) error {
	var body servers.CreateProductJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c)
	}

	cmd, err := commands.NewCreateProductCommand(kernel.NewUUID(), body.Name, string(body.Category), deref(body.Icon))
	if err != nil {
		return writeError(c, s.logger, "create_product", err)
	}
	if err := s.h.CreateProduct.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, s.logger, "create_product", err)
	}

	p := cmd.Product()
	return c.JSON(http.StatusCreated, servers.Product{
		Id:       p.ID().Google(),
		Name:     p.Name(),
		Category: servers.Category(p.Category().String()),
		Icon:     p.Icon(),
	})
}

// DeleteProduct handles DELETE /api/v1/products/{productId}.
func (s *Server) DeleteProduct(c echo.Context, productId openapi_types.UUID) error {
	id, err := idOf(productId, "productId")
	if err != nil {
		return writeError(c, s.logger, "delete_product", err)
	}
	cmd, err := commands.NewDeleteProductCommand(id)
	if err != nil {
		return writeError(c, s.logger, "delete_product", err)
	}
	if err := s.h.DeleteProduct.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, s.logger, "delete_product", err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListStaff handles GET /api/v1/staff.
func (s *Server) ListStaff(c echo.Context) error {
	members, err := s.h.ListStaff.Handle(c.Request().Context(), queries.NewListStaffQuery())
	if err != nil {
		return writeError(c, s.logger, "list_staff", err)
	}

	resp := make([]servers.Staff, len(members))
	for i, m := range members {
		resp[i] = servers.Staff{
			Id:                     m.ID,
			Username:               m.Username,
			FullName:               m.FullName,
			DayBeforeNotifications: m.DayBeforeNotifications,
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// CreateStaff handles POST /api/v1/staff.
func (s *Server) CreateStaff(c echo.Context) error {
	var body servers.CreateStaffJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c)
	}

	dayBefore := body.DayBeforeNotifications != nil && *body.DayBeforeNotifications
	cmd, err := commands.NewCreateStaffCommand(kernel.NewUUID(), body.Username, deref(body.FullName), dayBefore)
	if err != nil {
		return writeError(c, s.logger, "create_staff", err)
	}
	if err := s.h.CreateStaff.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, s.logger, "create_staff", err)
	}

	m := cmd.Member()
	return c.JSON(http.StatusCreated, servers.Staff{
		Id:                     m.ID().Google(),
		Username:               m.Username(),
		FullName:               m.FullName(),
		DayBeforeNotifications: m.DayBeforeNotifications(),
	})
}

// DeleteStaff handles DELETE /api/v1/staff/{staffId}.
func (s *Server) DeleteStaff(c echo.Context, staffId openapi_types.UUID) error {
	id, err := idOf(staffId, "staffId")
	if err != nil {
		return writeError(c, s.logger, "delete_staff", err)
	}
	cmd, err := commands.NewDeleteStaffCommand(id)
	if err != nil {
		return writeError(c, s.logger, "delete_staff", err)
	}
	if err := s.h.DeleteStaff.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, s.logger, "delete_staff", err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetCompanySettings handles GET /api/v1/settings/company.
func (s *Server) GetCompanySettings(c echo.Context) error {
	current, err := s.h.GetSettings.Handle(c.Request().Context(), queries.NewGetSettingsQuery())
	if err != nil {
		return writeError(c, s.logger, "get_settings", err)
	}
	return c.JSON(http.StatusOK, toCompany(current.Company))
}

// UpdateCompanySettings handles PUT /api/v1/settings/company.
func (s *Server) UpdateCompanySettings(c echo.Context) error {
	var body servers.UpdateCompanySettingsJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c)
	}

	company := settings.Company{Name: deref(body.Name), Address: deref(body.Address), Phone: deref(body.Phone)}
	cmd, err := commands.NewUpdateCompanySettingsCommand(company)
	if err != nil {
		return writeError(c, s.logger, "update_company_settings", err)
	}
	if err := s.h.UpdateCompany.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, s.logger, "update_company_settings", err)
	}
	return c.JSON(http.StatusOK, toCompany(company))
}

// GetTelegramSettings handles GET /api/v1/settings/telegram.
func (s *Server) GetTelegramSettings(c echo.Context) error {
	current, err := s.h.GetSettings.Handle(c.Request().Context(), queries.NewGetSettingsQuery())
	if err != nil {
		return writeError(c, s.logger, "get_settings", err)
	}
	return c.JSON(http.StatusOK, toTelegram(current.Telegram))
}

// UpdateTelegramSettings handles PUT /api/v1/settings/telegram.
func (s *Server) UpdateTelegramSettings(c echo.Context) error {
	var body servers.UpdateTelegramSettingsJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return badRequest(c)
	}

	telegram := settings.Telegram{BotToken: deref(body.BotToken), ChatID: deref(body.ChatId)}
	cmd, err := commands.NewUpdateTelegramSettingsCommand(telegram)
	if err != nil {
		return writeError(c, s.logger, "update_telegram_settings", err)
	}
	if err := s.h.UpdateTelegram.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, s.logger, "update_telegram_settings", err)
	}
	return c.JSON(http.StatusOK, toTelegram(telegram))
}

// GetStatistics handles GET /api/v1/statistics.
func (s *Server) GetStatistics(c echo.Context, params servers.GetStatisticsParams) error {
	period := ""
	if params.Period != nil {
		period = string(*params.Period)
	}

	query, err := queries.NewGetStatisticsQuery(period)
	if err != nil {
		return writeError(c, s.logger, "statistics", err)
	}
	stats, err := s.h.Statistics.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, s.logger, "statistics", err)
	}
	return c.JSON(http.StatusOK, toStatistics(stats))
}

// utf8BOM lets spreadsheet software detect the encoding of the Cyrillic header.
const utf8BOM = "\ufeff"

// ExportOrdersCsv handles GET /api/v1/export/orders.csv.
func (s *Server) ExportOrdersCsv(c echo.Context) error {
	rows, err := s.h.ExportOrders.Handle(c.Request().Context(), queries.NewExportOrdersQuery())
	if err != nil {
		return writeError(c, s.logger, "export_csv", err)
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="orders.csv"`)
	res.WriteHeader(http.StatusOK)

	if _, err := res.Write([]byte(utf8BOM)); err != nil {
		return err
	}
	w := csv.NewWriter(res)
	if err := w.WriteAll(rows); err != nil {
		s.logger.ErrorContext(c.Request().Context(), "Failed to write CSV export", "error", err)
		return err
	}

	metrics.ExportRowsTotal.WithLabelValues("csv").Add(float64(len(rows) - 1))
	return nil
}

// ExportOrdersToSheets handles POST /api/v1/export/sheets.
func (s *Server) ExportOrdersToSheets(c echo.Context) error {
	if s.h.Sheets == nil {
		return c.JSON(http.StatusServiceUnavailable, servers.Error{
			Code:    http.StatusServiceUnavailable,
			Message: "Google Sheets export is not configured",
		})
	}
	if err := s.h.Sheets.Trigger(); err != nil {
		return c.JSON(http.StatusConflict, servers.Error{Code: http.StatusConflict, Message: err.Error()})
	}
	return c.NoContent(http.StatusAccepted)
}

func (s *Server) respondOrder(c echo.Context, status int, id kernel.UUID, operation string) error {
	query, err := queries.NewGetOrderQuery(id, nil)
	if err != nil {
		return writeError(c, s.logger, operation, err)
	}
	o, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, s.logger, operation, err)
	}
	return c.JSON(status, toOrderDetails(o))
}

func badRequest(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}

func toCompany(company settings.Company) servers.CompanySettings {
	return servers.CompanySettings{Name: &company.Name, Address: &company.Address, Phone: &company.Phone}
}

func toTelegram(telegram settings.Telegram) servers.TelegramSettings {
	return servers.TelegramSettings{BotToken: &telegram.BotToken, ChatId: &telegram.ChatID}
}
