package middleware

import (
	"log/slog"
	"net/http"

	domainerrors "maplehub/internal/domain/errors"
	"maplehub/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPCode(), domainerrors.Response{
			Success: false,
			Code:    appErr.HTTPCode(),
			Message: appErr.Message(),
			Error: &domainerrors.ErrorInfo{
				Code:    appErr.ErrorCode(),
				Details: appErr.Details(),
			},
		})

		return
	}

	// Provider failures surface as 502 so clients can tell them apart from
	// our own errors.
	if code, ok := upstreamErrorCode(err); ok {
		m.logger.Warn("Upstream provider error",
			"error", err.Error(),
			"path", c.Request().URL.Path,
		)

		c.JSON(http.StatusBadGateway, domainerrors.Response{
			Success: false,
			Code:    http.StatusBadGateway,
			Message: "Upstream provider error",
			Error: &domainerrors.ErrorInfo{
				Code:    code,
				Details: err.Error(),
			},
		})

		return
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		c.JSON(httpErr.Code, domainerrors.Response{
			Success: false,
			Code:    httpErr.Code,
			Message: message,
			Error: &domainerrors.ErrorInfo{
				Code:    "HTTP_ERROR",
				Details: message,
			},
		})

		return
	}

	// Default to internal error, log error and return generic error
	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	c.JSON(http.StatusInternalServerError, domainerrors.Response{
		Success: false,
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
		Error: &domainerrors.ErrorInfo{
			Code:    "INTERNAL_ERROR",
			Details: err.Error(),
		},
	})
}

func upstreamErrorCode(err error) (string, bool) {
	var lookupErr *service.UpstreamLookupError
	if errors.As(err, &lookupErr) {
		return "UPSTREAM_LOOKUP_FAILED", true
	}

	var requestErr *service.UpstreamRequestError
	if errors.As(err, &requestErr) {
		return "UPSTREAM_REQUEST_FAILED", true
	}

	var malformedErr *service.UpstreamMalformedError
	if errors.As(err, &malformedErr) {
		return "UPSTREAM_MALFORMED_RESPONSE", true
	}

	return "", false
}
