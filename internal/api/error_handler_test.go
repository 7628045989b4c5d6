package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/policedept/records-system/internal/core/domain"
)

func runErrorHandler(t *testing.T, err error) (*httptest.ResponseRecorder, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/agentes/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid error envelope: %v", err)
	}
	return rec, resp
}

func TestHTTPErrorHandler_DomainKinds(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid identifier", domain.FieldError(domain.KindInvalidIdentifier, "id", "id must be a positive integer"), http.StatusBadRequest},
		{"missing field", domain.FieldError(domain.KindMissingRequiredField, "name", "name is required"), http.StatusBadRequest},
		{"invalid enum", domain.FieldError(domain.KindInvalidEnum, "status", "status must be one of: open solved"), http.StatusBadRequest},
		{"invalid date", domain.FieldError(domain.KindInvalidDate, "incorporationDate", "bad date"), http.StatusBadRequest},
		{"immutable field", domain.FieldError(domain.KindImmutableField, "id", "id cannot be changed"), http.StatusBadRequest},
		{"unknown field", domain.FieldError(domain.KindUnknownField, "badge", "unknown field: badge"), http.StatusBadRequest},
		{"email in use", domain.FieldError(domain.KindEmailInUse, "email", "email already in use"), http.StatusBadRequest},
		{"weak password", domain.FieldError(domain.KindWeakPassword, "password", "weak"), http.StatusBadRequest},
		{"not found", domain.NotFound("agent"), http.StatusNotFound},
		{"dangling reference", domain.DanglingReference("agent", "agentId"), http.StatusNotFound},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec, resp := runErrorHandler(t, tc.err)
			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, rec.Code)
			}
			if resp.Message == "" {
				t.Errorf("expected a message in the envelope")
			}
		})
	}
}

func TestHTTPErrorHandler_FieldInEnvelope(t *testing.T) {
	rec, resp := runErrorHandler(t, domain.FieldError(domain.KindMissingRequiredField, "name", "name is required"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if resp.Field != "name" {
		t.Errorf("expected field name, got %q", resp.Field)
	}
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	rec, resp := runErrorHandler(t, echo.NewHTTPError(http.StatusUnauthorized, "invalid token"))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if resp.Message != "invalid token" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

// Unexpected errors must not leak internals to the client.
func TestHTTPErrorHandler_UnexpectedError(t *testing.T) {
	rec, resp := runErrorHandler(t, errDatabaseDown{})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if resp.Message != "internal server error" {
		t.Errorf("internal detail leaked: %q", resp.Message)
	}
}

type errDatabaseDown struct{}

func (errDatabaseDown) Error() string { return "pq: connection refused" }
