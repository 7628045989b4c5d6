package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/policedept/records-system/internal/api/metrics"
	"github.com/policedept/records-system/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// kindStatus maps every domain failure kind to its HTTP status.
var kindStatus = map[domain.Kind]int{
	domain.KindInvalidIdentifier:    http.StatusBadRequest,
	domain.KindMissingRequiredField: http.StatusBadRequest,
	domain.KindInvalidFormat:        http.StatusBadRequest,
	domain.KindInvalidEnum:          http.StatusBadRequest,
	domain.KindInvalidDate:          http.StatusBadRequest,
	domain.KindImmutableField:       http.StatusBadRequest,
	domain.KindUnknownField:         http.StatusBadRequest,
	domain.KindEmailInUse:           http.StatusBadRequest,
	domain.KindWeakPassword:         http.StatusBadRequest,
	domain.KindNotFound:             http.StatusNotFound,
	domain.KindDanglingReference:    http.StatusNotFound,
	domain.KindInvalidCredentials:   http.StatusUnauthorized,
}

// kindLabel names each kind for the validation-failure metric.
var kindLabel = map[domain.Kind]string{
	domain.KindInvalidIdentifier:    "invalid_identifier",
	domain.KindMissingRequiredField: "missing_required_field",
	domain.KindInvalidFormat:        "invalid_format",
	domain.KindInvalidEnum:          "invalid_enum",
	domain.KindInvalidDate:          "invalid_date",
	domain.KindImmutableField:       "immutable_field",
	domain.KindUnknownField:         "unknown_field",
	domain.KindEmailInUse:           "email_in_use",
	domain.KindWeakPassword:         "weak_password",
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain failure kinds to their HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"message": "...", "field": "..."}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, resp := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Domain failures carry their own kind, which fixes the status code.
	var de *domain.Error
	if errors.As(err, &de) {
		if label, ok := kindLabel[de.Kind]; ok {
			metrics.ValidationFailuresTotal.WithLabelValues(label).Inc()
		}
		if status, ok := kindStatus[de.Kind]; ok {
			return status, errorResponse{Message: de.Message, Field: de.Field}
		}
	}

	// Echo's own errors (bind failures, 404 from router, middleware 401s).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Message: fmt.Sprintf("%v", he.Message)}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Message: "internal server error"}
}
