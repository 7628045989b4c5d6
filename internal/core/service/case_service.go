package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/policedept/records-system/internal/api/metrics"
	"github.com/policedept/records-system/internal/core/domain"
	"github.com/policedept/records-system/internal/core/ports"
)

// CaseService orchestrates case mutations. Every write that sets agentId
// first confirms the referenced agent exists; the storage foreign key backs
// the check so a concurrent agent deletion fails the write atomically
// instead of persisting a dangling reference.
type CaseService struct {
	repo   ports.CaseRepository
	agents ports.AgentRepository
	logger zerolog.Logger
}

func NewCaseService(repo ports.CaseRepository, agents ports.AgentRepository, logger zerolog.Logger) *CaseService {
	return &CaseService{repo: repo, agents: agents, logger: logger}
}

func (s *CaseService) List(ctx context.Context) ([]domain.Case, error) {
	return s.repo.FindAll(ctx)
}

func (s *CaseService) Get(ctx context.Context, id int64) (*domain.Case, error) {
	c, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NotFound("case")
	}
	return c, nil
}

// requireAgent fails with DanglingReference when agentID resolves to nothing.
func (s *CaseService) requireAgent(ctx context.Context, agentID int64) error {
	agent, err := s.agents.Find(ctx, agentID)
	if err != nil {
		return err
	}
	if agent == nil {
		return domain.DanglingReference("agent", "agentId")
	}
	return nil
}

func (s *CaseService) Create(ctx context.Context, in ports.CaseInput) (*domain.Case, error) {
	if err := s.requireAgent(ctx, in.AgentID); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.Case{
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		AgentID:     in.AgentID,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create case")
		return nil, err
	}

	metrics.ResourceMutationsTotal.WithLabelValues("case", "create").Inc()
	s.logger.Info().Int64("case_id", created.ID).Int64("agent_id", created.AgentID).Msg("case created")
	return created, nil
}

func (s *CaseService) Replace(ctx context.Context, id int64, in ports.CaseInput) (*domain.Case, error) {
	if err := s.requireAgent(ctx, in.AgentID); err != nil {
		return nil, err
	}

	status := in.Status
	updated, err := s.repo.Update(ctx, id, ports.CaseUpdate{
		Title:       &in.Title,
		Description: &in.Description,
		Status:      &status,
		AgentID:     &in.AgentID,
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.NotFound("case")
	}

	metrics.ResourceMutationsTotal.WithLabelValues("case", "replace").Inc()
	return updated, nil
}

func (s *CaseService) Patch(ctx context.Context, id int64, upd ports.CaseUpdate) (*domain.Case, error) {
	if upd.AgentID != nil {
		if err := s.requireAgent(ctx, *upd.AgentID); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.NotFound("case")
	}

	if !upd.Empty() {
		metrics.ResourceMutationsTotal.WithLabelValues("case", "patch").Inc()
	}
	return updated, nil
}

func (s *CaseService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.NotFound("case")
	}

	metrics.ResourceMutationsTotal.WithLabelValues("case", "delete").Inc()
	return nil
}
