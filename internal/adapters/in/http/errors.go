package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"printshop/internal/generated/servers"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/metrics"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/labstack/echo/v4"
)

// writeError maps a use case error to its response:
//   - validation errors: 400 with the offending field
//   - missing objects: 404
//   - anything else: 500 with a generic message; the cause is only logged
func writeError(c echo.Context, logger *slog.Logger, operation string, err error) error {
	switch {
	case errs.IsValidation(err):
		body := servers.Error{Code: http.StatusBadRequest, Message: err.Error()}
		if field, ok := errs.Field(err); ok {
			body.Field = &field
		}
		return c.JSON(http.StatusBadRequest, body)

	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, servers.Error{Code: http.StatusNotFound, Message: err.Error()})
	}

	metrics.OperationErrorsTotal.WithLabelValues(operation).Inc()
	logger.ErrorContext(c.Request().Context(), "Request failed", "operation", operation, "error", err)
	return c.JSON(http.StatusInternalServerError, servers.Error{
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
	})
}

// requestError converts an OpenAPI validation failure into a 400 body.
func requestError(err error) servers.Error {
	body := servers.Error{Code: http.StatusBadRequest, Message: err.Error()}

	var reqErr *openapi3filter.RequestError
	if !errors.As(err, &reqErr) {
		return body
	}

	body.Message = reqErr.Error()
	if reqErr.Parameter != nil {
		field := reqErr.Parameter.Name
		body.Field = &field
		return body
	}

	var schemaErr *openapi3.SchemaError
	if errors.As(reqErr.Err, &schemaErr) {
		if pointer := schemaErr.JSONPointer(); len(pointer) > 0 {
			field := strings.Join(pointer, ".")
			body.Field = &field
		}
	}
	return body
}

// httpErrorHandler renders echo's own errors (unknown routes, binding failures) in the
// Error shape of the API.
func httpErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := "Internal server error"
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
		} else {
			logger.ErrorContext(c.Request().Context(), "Unhandled error", "error", err)
		}

		if writeErr := c.JSON(code, servers.Error{Code: code, Message: message}); writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "Failed to write error response", "error", writeErr)
		}
	}
}
