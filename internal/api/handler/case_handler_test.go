package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/policedept/records-system/internal/core/domain"
	"github.com/policedept/records-system/internal/core/ports"
)

type stubCaseService struct {
	listFn    func(ctx context.Context) ([]domain.Case, error)
	getFn     func(ctx context.Context, id int64) (*domain.Case, error)
	createFn  func(ctx context.Context, in ports.CaseInput) (*domain.Case, error)
	replaceFn func(ctx context.Context, id int64, in ports.CaseInput) (*domain.Case, error)
	patchFn   func(ctx context.Context, id int64, upd ports.CaseUpdate) (*domain.Case, error)
	deleteFn  func(ctx context.Context, id int64) error
}

func (s *stubCaseService) List(ctx context.Context) ([]domain.Case, error) {
	return s.listFn(ctx)
}

func (s *stubCaseService) Get(ctx context.Context, id int64) (*domain.Case, error) {
	return s.getFn(ctx, id)
}

func (s *stubCaseService) Create(ctx context.Context, in ports.CaseInput) (*domain.Case, error) {
	return s.createFn(ctx, in)
}

func (s *stubCaseService) Replace(ctx context.Context, id int64, in ports.CaseInput) (*domain.Case, error) {
	return s.replaceFn(ctx, id, in)
}

func (s *stubCaseService) Patch(ctx context.Context, id int64, upd ports.CaseUpdate) (*domain.Case, error) {
	return s.patchFn(ctx, id, upd)
}

func (s *stubCaseService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func TestCaseHandler_Create(t *testing.T) {
	var gotInput ports.CaseInput
	h := NewCaseHandler(&stubCaseService{
		createFn: func(_ context.Context, in ports.CaseInput) (*domain.Case, error) {
			gotInput = in
			return &domain.Case{
				ID:          1,
				Title:       in.Title,
				Description: in.Description,
				Status:      in.Status,
				AgentID:     in.AgentID,
			}, nil
		},
	})

	c, rec := newTestContext(t, http.MethodPost, "/casos",
		`{"title":"homicidio","description":"Disparos foram reportados as 22:33","status":"open","agentId":1}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if gotInput.Status != domain.StatusOpen || gotInput.AgentID != 1 {
		t.Errorf("unexpected input: %+v", gotInput)
	}
}

func TestCaseHandler_Create_Invalid(t *testing.T) {
	h := NewCaseHandler(&stubCaseService{
		createFn: func(context.Context, ports.CaseInput) (*domain.Case, error) {
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
		{"missing title", `{"description":"x","status":"open","agentId":1}`, domain.KindMissingRequiredField, "title"},
		{"missing description", `{"title":"roubo","status":"open","agentId":1}`, domain.KindMissingRequiredField, "description"},
		{"bad status", `{"title":"roubo","description":"x","status":"closed","agentId":1}`, domain.KindInvalidEnum, "status"},
		{"uppercase status", `{"title":"roubo","description":"x","status":"OPEN","agentId":1}`, domain.KindInvalidEnum, "status"},
		{"missing agentId", `{"title":"roubo","description":"x","status":"open"}`, domain.KindMissingRequiredField, "agentId"},
		{"zero agentId", `{"title":"roubo","description":"x","status":"open","agentId":0}`, domain.KindMissingRequiredField, "agentId"},
		{"negative agentId", `{"title":"roubo","description":"x","status":"open","agentId":-2}`, domain.KindInvalidIdentifier, "agentId"},
		{"string agentId", `{"title":"roubo","description":"x","status":"open","agentId":"1"}`, domain.KindInvalidIdentifier, "agentId"},
		{"fractional agentId", `{"title":"roubo","description":"x","status":"open","agentId":1.5}`, domain.KindInvalidIdentifier, "agentId"},
		{"id provided", `{"id":4,"title":"roubo","description":"x","status":"open","agentId":1}`, domain.KindImmutableField, "id"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestContext(t, http.MethodPost, "/casos", tc.body)
			err := h.Create(c)
			derr := requireKind(t, err, tc.kind)
			if derr.Field != tc.field {
				t.Errorf("expected field %q, got %q", tc.field, derr.Field)
			}
		})
	}
}

func TestCaseHandler_Patch_StatusOnly(t *testing.T) {
	var gotUpd ports.CaseUpdate
	h := NewCaseHandler(&stubCaseService{
		patchFn: func(_ context.Context, id int64, upd ports.CaseUpdate) (*domain.Case, error) {
			gotUpd = upd
			return &domain.Case{ID: id, Title: "roubo", Description: "x", Status: *upd.Status, AgentID: 1}, nil
		},
	})

	c, rec := newTestContext(t, http.MethodPatch, "/casos/1", `{"status":"solved"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.Patch(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotUpd.Status == nil || *gotUpd.Status != domain.StatusSolved {
		t.Errorf("expected status solved, got %+v", gotUpd)
	}
	if gotUpd.Title != nil || gotUpd.Description != nil || gotUpd.AgentID != nil {
		t.Errorf("expected other fields unset, got %+v", gotUpd)
	}
}

func TestCaseHandler_Patch_Invalid(t *testing.T) {
	h := NewCaseHandler(&stubCaseService{
		patchFn: func(context.Context, int64, ports.CaseUpdate) (*domain.Case, error) {
			t.Fatal("service must not be called for invalid payloads")
			return nil, nil
		},
	})

	tests := []struct {
		name string
		body string
		kind domain.Kind
	}{
		{"unknown field", `{"priority":"high"}`, domain.KindUnknownField},
		{"id in payload", `{"id":2}`, domain.KindImmutableField},
		{"blank title", `{"title":"  "}`, domain.KindMissingRequiredField},
		{"bad status", `{"status":"pending"}`, domain.KindInvalidEnum},
		{"zero agentId", `{"agentId":0}`, domain.KindInvalidIdentifier},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestContext(t, http.MethodPatch, "/casos/1", tc.body)
			c.SetParamNames("id")
			c.SetParamValues("1")
			requireKind(t, h.Patch(c), tc.kind)
		})
	}
}

func TestCaseHandler_Patch_EmptyBody(t *testing.T) {
	for _, body := range []string{"", "{}"} {
		t.Run("body "+body, func(t *testing.T) {
			h := NewCaseHandler(&stubCaseService{
				patchFn: func(_ context.Context, id int64, upd ports.CaseUpdate) (*domain.Case, error) {
					if !upd.Empty() {
						t.Errorf("expected empty update, got %+v", upd)
					}
					return &domain.Case{ID: id, Title: "roubo", Description: "x", Status: domain.StatusOpen, AgentID: 1}, nil
				},
			})

			c, rec := newTestContext(t, http.MethodPatch, "/casos/1", body)
			c.SetParamNames("id")
			c.SetParamValues("1")

			if err := h.Patch(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
		})
	}
}

func TestCaseHandler_Get_MalformedID(t *testing.T) {
	h := NewCaseHandler(&stubCaseService{
		getFn: func(context.Context, int64) (*domain.Case, error) {
			t.Fatal("service must not be called for malformed ids")
			return nil, nil
		},
	})

	c, _ := newTestContext(t, http.MethodGet, "/casos/xyz", "")
	c.SetParamNames("id")
	c.SetParamValues("xyz")

	requireKind(t, h.Get(c), domain.KindInvalidIdentifier)
}
