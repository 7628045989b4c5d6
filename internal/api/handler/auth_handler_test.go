package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/policedept/records-system/internal/core/domain"
	"github.com/policedept/records-system/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, error)
	deleteFn   func(ctx context.Context, id int64) error
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) DeleteUser(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func TestAuthHandler_Register(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*domain.User, error) {
			return &domain.User{
				ID:           1,
				Name:         in.Name,
				Email:        in.Email,
				PasswordHash: "$2a$10$secret",
			}, nil
		},
	})

	c, rec := newTestContext(t, http.MethodPost, "/register",
		`{"name":"Alice","email":"alice@example.com","password":"Str0ng!pass"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["email"] != "alice@example.com" {
		t.Errorf("unexpected email: %v", resp["email"])
	}
	if strings.Contains(rec.Body.String(), "secret") {
		t.Errorf("password hash leaked in response: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_Invalid(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.User, error) {
			t.Fatal("service must not be called for invalid payloads")
			return nil, nil
		},
	})

	tests := []struct {
		name  string
		body  string
		kind  domain.Kind
		field string
	}{
		{"missing name", `{"email":"a@example.com","password":"Str0ng!pass"}`, domain.KindMissingRequiredField, "name"},
		{"bad email", `{"name":"Alice","email":"not-an-email","password":"Str0ng!pass"}`, domain.KindInvalidFormat, "email"},
		{"missing password", `{"name":"Alice","email":"a@example.com"}`, domain.KindMissingRequiredField, "password"},
		{"unknown field", `{"name":"Alice","email":"a@example.com","password":"Str0ng!pass","role":"admin"}`, domain.KindUnknownField, "role"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestContext(t, http.MethodPost, "/register", tc.body)
			err := h.Register(c)
			derr := requireKind(t, err, tc.kind)
			if derr.Field != tc.field {
				t.Errorf("expected field %q, got %q", tc.field, derr.Field)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(_ context.Context, email, password string) (string, error) {
			if email != "alice@example.com" || password != "Str0ng!pass" {
				t.Errorf("unexpected credentials: %s %s", email, password)
			}
			return "signed-token", nil
		},
	})

	c, rec := newTestContext(t, http.MethodPost, "/login",
		`{"email":"alice@example.com","password":"Str0ng!pass"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["access_token"] != "signed-token" {
		t.Errorf("unexpected token: %v", resp["access_token"])
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(context.Context, string, string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	})

	c, _ := newTestContext(t, http.MethodPost, "/login",
		`{"email":"alice@example.com","password":"Wr0ng!pass"}`)

	err := h.Login(c)
	requireKind(t, err, domain.KindInvalidCredentials)
}

func TestAuthHandler_Logout(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, rec := newTestContext(t, http.MethodPost, "/logout", "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_DeleteUser(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		deleteFn: func(_ context.Context, id int64) error {
			if id != 9 {
				t.Errorf("expected id 9, got %d", id)
			}
			return nil
		},
	})

	c, rec := newTestContext(t, http.MethodDelete, "/users/9", "")
	c.SetParamNames("id")
	c.SetParamValues("9")

	if err := h.DeleteUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestAuthHandler_DeleteUser_MalformedID(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		deleteFn: func(context.Context, int64) error {
			t.Fatal("service must not be called for malformed ids")
			return nil
		},
	})

	c, _ := newTestContext(t, http.MethodDelete, "/users/zero", "")
	c.SetParamNames("id")
	c.SetParamValues("zero")

	requireKind(t, h.DeleteUser(c), domain.KindInvalidIdentifier)
}
