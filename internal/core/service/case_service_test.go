package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/policedept/records-system/internal/core/domain"
	"github.com/policedept/records-system/internal/core/ports"
)

type stubCaseRepo struct {
	cases  map[int64]domain.Case
	nextID int64
}

func newStubCaseRepo() *stubCaseRepo {
	return &stubCaseRepo{cases: make(map[int64]domain.Case)}
}

func (r *stubCaseRepo) Create(_ context.Context, c *domain.Case) (*domain.Case, error) {
	r.nextID++
	stored := *c
	stored.ID = r.nextID
	r.cases[stored.ID] = stored
	return &stored, nil
}

func (r *stubCaseRepo) Find(_ context.Context, id int64) (*domain.Case, error) {
	c, ok := r.cases[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *stubCaseRepo) FindAll(_ context.Context) ([]domain.Case, error) {
	out := make([]domain.Case, 0, len(r.cases))
	for _, c := range r.cases {
		out = append(out, c)
	}
	return out, nil
}

func (r *stubCaseRepo) Update(_ context.Context, id int64, upd ports.CaseUpdate) (*domain.Case, error) {
	c, ok := r.cases[id]
	if !ok {
		return nil, nil
	}
	if upd.Title != nil {
		c.Title = *upd.Title
	}
	if upd.Description != nil {
		c.Description = *upd.Description
	}
	if upd.Status != nil {
		c.Status = *upd.Status
	}
	if upd.AgentID != nil {
		c.AgentID = *upd.AgentID
	}
	r.cases[id] = c
	return &c, nil
}

func (r *stubCaseRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.cases[id]; !ok {
		return false, nil
	}
	delete(r.cases, id)
	return true, nil
}

func seedAgent(t *testing.T, repo *stubAgentRepo) *domain.Agent {
	t.Helper()
	agent, err := repo.Create(context.Background(), &domain.Agent{
		Name:              "Rommel Carneiro",
		Role:              "delegado",
		IncorporationDate: mustDate(t, "1992-10-04"),
	})
	if err != nil {
		t.Fatalf("seeding agent: %v", err)
	}
	return agent
}

func TestCaseService_Create(t *testing.T) {
	agents := newStubAgentRepo()
	agent := seedAgent(t, agents)
	svc := NewCaseService(newStubCaseRepo(), agents, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CaseInput{
		Title:       "homicidio",
		Description: "Disparos foram reportados as 22:33",
		Status:      domain.StatusOpen,
		AgentID:     agent.ID,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id, got 0")
	}
	if created.AgentID != agent.ID {
		t.Errorf("unexpected agent id: %d", created.AgentID)
	}
}

func TestCaseService_Create_DanglingAgent(t *testing.T) {
	svc := NewCaseService(newStubCaseRepo(), newStubAgentRepo(), zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CaseInput{
		Title:       "homicidio",
		Description: "Disparos foram reportados as 22:33",
		Status:      domain.StatusOpen,
		AgentID:     999,
	})
	derr := assertErrorKind(t, err, domain.KindDanglingReference)
	if derr.Field != "agentId" {
		t.Errorf("expected field agentId, got %q", derr.Field)
	}
}

func TestCaseService_Replace_DanglingAgent(t *testing.T) {
	agents := newStubAgentRepo()
	agent := seedAgent(t, agents)
	cases := newStubCaseRepo()
	svc := NewCaseService(cases, agents, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CaseInput{
		Title:       "roubo",
		Description: "Relato de roubo na regiao central",
		Status:      domain.StatusOpen,
		AgentID:     agent.ID,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	_, err = svc.Replace(context.Background(), created.ID, ports.CaseInput{
		Title:       "roubo",
		Description: "Relato de roubo na regiao central",
		Status:      domain.StatusSolved,
		AgentID:     999,
	})
	assertErrorKind(t, err, domain.KindDanglingReference)
}

func TestCaseService_Patch_ChecksAgentOnlyWhenSet(t *testing.T) {
	agents := newStubAgentRepo()
	agent := seedAgent(t, agents)
	cases := newStubCaseRepo()
	svc := NewCaseService(cases, agents, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CaseInput{
		Title:       "roubo",
		Description: "Relato de roubo na regiao central",
		Status:      domain.StatusOpen,
		AgentID:     agent.ID,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	// Status-only patch must not touch the agent reference.
	status := domain.StatusSolved
	patched, err := svc.Patch(context.Background(), created.ID, ports.CaseUpdate{Status: &status})
	if err != nil {
		t.Fatalf("Patch returned error: %v", err)
	}
	if patched.Status != domain.StatusSolved {
		t.Errorf("expected status solved, got %q", patched.Status)
	}

	// Reassigning to a nonexistent agent fails.
	missing := int64(999)
	_, err = svc.Patch(context.Background(), created.ID, ports.CaseUpdate{AgentID: &missing})
	assertErrorKind(t, err, domain.KindDanglingReference)
}

func TestCaseService_Get_NotFound(t *testing.T) {
	svc := NewCaseService(newStubCaseRepo(), newStubAgentRepo(), zerolog.Nop())

	_, err := svc.Get(context.Background(), 7)
	assertErrorKind(t, err, domain.KindNotFound)
}

func TestCaseService_Delete_NotFound(t *testing.T) {
	svc := NewCaseService(newStubCaseRepo(), newStubAgentRepo(), zerolog.Nop())

	err := svc.Delete(context.Background(), 7)
	assertErrorKind(t, err, domain.KindNotFound)
}
