// Package servers binds api/openapi.yaml to echo: contract types, the ServerInterface
// and the parameter-binding wrapper, in the layout oapi-codegen produces.
package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List orders
	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// Create an order
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context, params CreateOrderParams) error
	// Delete an order
	// (DELETE /api/v1/orders/{orderId})
	DeleteOrder(ctx echo.Context, orderId openapi_types.UUID) error
	// Get an order with items and history
	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderId openapi_types.UUID, params GetOrderParams) error
	// Update an order and synchronize its items
	// (PATCH /api/v1/orders/{orderId})
	UpdateOrder(ctx echo.Context, orderId openapi_types.UUID, params UpdateOrderParams) error
	// Archive every item of an order
	// (POST /api/v1/orders/{orderId}/archive)
	ArchiveOrder(ctx echo.Context, orderId openapi_types.UUID, params ArchiveOrderParams) error
	// List the history of an order
	// (GET /api/v1/orders/{orderId}/history)
	GetOrderHistory(ctx echo.Context, orderId openapi_types.UUID) error
	// Restore every archived item of an order
	// (POST /api/v1/orders/{orderId}/unarchive)
	UnarchiveOrder(ctx echo.Context, orderId openapi_types.UUID, params UnarchiveOrderParams) error
	// Update a single item
	// (PATCH /api/v1/items/{itemId})
	UpdateItem(ctx echo.Context, itemId openapi_types.UUID, params UpdateItemParams) error
	// List products
	// (GET /api/v1/products)
	ListProducts(ctx echo.Context) error
	// Create a product
	// (POST /api/v1/products)
	CreateProduct(ctx echo.Context) error
	// Delete a product
	// (DELETE /api/v1/products/{productId})
	DeleteProduct(ctx echo.Context, productId openapi_types.UUID) error
	// List staff members
	// (GET /api/v1/staff)
	ListStaff(ctx echo.Context) error
	// Create a staff member
	// (POST /api/v1/staff)
	CreateStaff(ctx echo.Context) error
	// Delete a staff member
	// (DELETE /api/v1/staff/{staffId})
	DeleteStaff(ctx echo.Context, staffId openapi_types.UUID) error
	// Get company settings
	// (GET /api/v1/settings/company)
	GetCompanySettings(ctx echo.Context) error
	// Save company settings
	// (PUT /api/v1/settings/company)
	UpdateCompanySettings(ctx echo.Context) error
	// Get telegram settings
	// (GET /api/v1/settings/telegram)
	GetTelegramSettings(ctx echo.Context) error
	// Save telegram settings
	// (PUT /api/v1/settings/telegram)
	UpdateTelegramSettings(ctx echo.Context) error
	// Get statistics
	// (GET /api/v1/statistics)
	GetStatistics(ctx echo.Context, params GetStatisticsParams) error
	// Download orders as CSV
	// (GET /api/v1/export/orders.csv)
	ExportOrdersCsv(ctx echo.Context) error
	// Start a Google Sheets export
	// (POST /api/v1/export/sheets)
	ExportOrdersToSheets(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var err error
	// Parameter object where we will unmarshal all parameters from the context
	var params ListOrdersParams
	// ------------- Optional query parameter "archived" -------------

	err = runtime.BindQueryParameter("form", true, false, "archived", ctx.QueryParams(), &params.Archived)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter archived: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListOrders(ctx, params)
	return err
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	var err error
	// Parameter object where we will unmarshal all parameters from the context
	var params CreateOrderParams
	headers := ctx.Request().Header
	// ------------- Optional header parameter "X-Actor-ID" -------------
	if valueList, found := headers[http.CanonicalHeaderKey("X-Actor-ID")]; found {
		var XActorID ActorID
		n := len(valueList)
		if n != 1 {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for X-Actor-ID, got %d", n))
		}

		err = runtime.BindStyledParameterWithOptions("simple", "X-Actor-ID", valueList[0], &XActorID, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: false})
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter X-Actor-ID: %s", err))
		}

		params.XActorID = &XActorID
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateOrder(ctx, params)
	return err
}

// DeleteOrder converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteOrder(ctx, orderId)
	return err
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Parameter object where we will unmarshal all parameters from the context
	var params GetOrderParams
	// ------------- Optional query parameter "archived" -------------

	err = runtime.BindQueryParameter("form", true, false, "archived", ctx.QueryParams(), &params.Archived)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter archived: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrder(ctx, orderId, params)
	return err
}

// UpdateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Parameter object where we will unmarshal all parameters from the context
	var params UpdateOrderParams
	headers := ctx.Request().Header
	// ------------- Optional header parameter "X-Actor-ID" -------------
	if valueList, found := headers[http.CanonicalHeaderKey("X-Actor-ID")]; found {
		var XActorID ActorID
		n := len(valueList)
		if n != 1 {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for X-Actor-ID, got %d", n))
		}

		err = runtime.BindStyledParameterWithOptions("simple", "X-Actor-ID", valueList[0], &XActorID, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: false})
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter X-Actor-ID: %s", err))
		}

		params.XActorID = &XActorID
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateOrder(ctx, orderId, params)
	return err
}

// ArchiveOrder converts echo context to params.
func (w *ServerInterfaceWrapper) ArchiveOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Parameter object where we will unmarshal all parameters from the context
	var params ArchiveOrderParams
	headers := ctx.Request().Header
	// ------------- Optional header parameter "X-Actor-ID" -------------
	if valueList, found := headers[http.CanonicalHeaderKey("X-Actor-ID")]; found {
		var XActorID ActorID
		n := len(valueList)
		if n != 1 {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for X-Actor-ID, got %d", n))
		}

		err = runtime.BindStyledParameterWithOptions("simple", "X-Actor-ID", valueList[0], &XActorID, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: false})
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter X-Actor-ID: %s", err))
		}

		params.XActorID = &XActorID
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ArchiveOrder(ctx, orderId, params)
	return err
}

// GetOrderHistory converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderHistory(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrderHistory(ctx, orderId)
	return err
}

// UnarchiveOrder converts echo context to params.
func (w *ServerInterfaceWrapper) UnarchiveOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Parameter object where we will unmarshal all parameters from the context
	var params UnarchiveOrderParams
	headers := ctx.Request().Header
	// ------------- Optional header parameter "X-Actor-ID" -------------
	if valueList, found := headers[http.CanonicalHeaderKey("X-Actor-ID")]; found {
		var XActorID ActorID
		n := len(valueList)
		if n != 1 {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for X-Actor-ID, got %d", n))
		}

		err = runtime.BindStyledParameterWithOptions("simple", "X-Actor-ID", valueList[0], &XActorID, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: false})
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter X-Actor-ID: %s", err))
		}

		params.XActorID = &XActorID
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UnarchiveOrder(ctx, orderId, params)
	return err
}

// UpdateItem converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateItem(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "itemId" -------------
	var itemId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "itemId", ctx.Param("itemId"), &itemId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter itemId: %s", err))
	}

	// Parameter object where we will unmarshal all parameters from the context
	var params UpdateItemParams
	headers := ctx.Request().Header
	// ------------- Optional header parameter "X-Actor-ID" -------------
	if valueList, found := headers[http.CanonicalHeaderKey("X-Actor-ID")]; found {
		var XActorID ActorID
		n := len(valueList)
		if n != 1 {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for X-Actor-ID, got %d", n))
		}

		err = runtime.BindStyledParameterWithOptions("simple", "X-Actor-ID", valueList[0], &XActorID, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: false})
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter X-Actor-ID: %s", err))
		}

		params.XActorID = &XActorID
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateItem(ctx, itemId, params)
	return err
}

// ListProducts converts echo context to params.
func (w *ServerInterfaceWrapper) ListProducts(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListProducts(ctx)
	return err
}

// CreateProduct converts echo context to params.
func (w *ServerInterfaceWrapper) CreateProduct(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateProduct(ctx)
	return err
}

// DeleteProduct converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteProduct(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "productId" -------------
	var productId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "productId", ctx.Param("productId"), &productId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter productId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteProduct(ctx, productId)
	return err
}

// ListStaff converts echo context to params.
func (w *ServerInterfaceWrapper) ListStaff(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListStaff(ctx)
	return err
}

// CreateStaff converts echo context to params.
func (w *ServerInterfaceWrapper) CreateStaff(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateStaff(ctx)
	return err
}

// DeleteStaff converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteStaff(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "staffId" -------------
	var staffId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "staffId", ctx.Param("staffId"), &staffId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter staffId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteStaff(ctx, staffId)
	return err
}

// GetCompanySettings converts echo context to params.
func (w *ServerInterfaceWrapper) GetCompanySettings(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetCompanySettings(ctx)
	return err
}

// UpdateCompanySettings converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateCompanySettings(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateCompanySettings(ctx)
	return err
}

// GetTelegramSettings converts echo context to params.
func (w *ServerInterfaceWrapper) GetTelegramSettings(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetTelegramSettings(ctx)
	return err
}

// UpdateTelegramSettings converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateTelegramSettings(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateTelegramSettings(ctx)
	return err
}

// GetStatistics converts echo context to params.
func (w *ServerInterfaceWrapper) GetStatistics(ctx echo.Context) error {
	var err error
	// Parameter object where we will unmarshal all parameters from the context
	var params GetStatisticsParams
	// ------------- Optional query parameter "period" -------------

	err = runtime.BindQueryParameter("form", true, false, "period", ctx.QueryParams(), &params.Period)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter period: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetStatistics(ctx, params)
	return err
}

// ExportOrdersCsv converts echo context to params.
func (w *ServerInterfaceWrapper) ExportOrdersCsv(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ExportOrdersCsv(ctx)
	return err
}

// ExportOrdersToSheets converts echo context to params.
func (w *ServerInterfaceWrapper) ExportOrdersToSheets(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ExportOrdersToSheets(ctx)
	return err
}

// EchoRouter is the subset of echo.Echo and echo.Group used to register routes.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths, so that the paths
// can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {

	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/orders", wrapper.ListOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.DELETE(baseURL+"/api/v1/orders/:orderId", wrapper.DeleteOrder)
	router.GET(baseURL+"/api/v1/orders/:orderId", wrapper.GetOrder)
	router.PATCH(baseURL+"/api/v1/orders/:orderId", wrapper.UpdateOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/archive", wrapper.ArchiveOrder)
	router.GET(baseURL+"/api/v1/orders/:orderId/history", wrapper.GetOrderHistory)
	router.POST(baseURL+"/api/v1/orders/:orderId/unarchive", wrapper.UnarchiveOrder)
	router.PATCH(baseURL+"/api/v1/items/:itemId", wrapper.UpdateItem)
	router.GET(baseURL+"/api/v1/products", wrapper.ListProducts)
	router.POST(baseURL+"/api/v1/products", wrapper.CreateProduct)
	router.DELETE(baseURL+"/api/v1/products/:productId", wrapper.DeleteProduct)
	router.GET(baseURL+"/api/v1/staff", wrapper.ListStaff)
	router.POST(baseURL+"/api/v1/staff", wrapper.CreateStaff)
	router.DELETE(baseURL+"/api/v1/staff/:staffId", wrapper.DeleteStaff)
	router.GET(baseURL+"/api/v1/settings/company", wrapper.GetCompanySettings)
	router.PUT(baseURL+"/api/v1/settings/company", wrapper.UpdateCompanySettings)
	router.GET(baseURL+"/api/v1/settings/telegram", wrapper.GetTelegramSettings)
	router.PUT(baseURL+"/api/v1/settings/telegram", wrapper.UpdateTelegramSettings)
	router.GET(baseURL+"/api/v1/statistics", wrapper.GetStatistics)
	router.GET(baseURL+"/api/v1/export/orders.csv", wrapper.ExportOrdersCsv)
	router.POST(baseURL+"/api/v1/export/sheets", wrapper.ExportOrdersToSheets)

}
