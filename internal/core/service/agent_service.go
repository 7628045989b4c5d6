package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/policedept/records-system/internal/api/metrics"
	"github.com/policedept/records-system/internal/core/domain"
	"github.com/policedept/records-system/internal/core/ports"
)

// AgentService orchestrates agent mutations against the repository.
// Structural validation has already happened at the transport layer; this
// layer owns not-found mapping and logging.
type AgentService struct {
	repo   ports.AgentRepository
	logger zerolog.Logger
}

func NewAgentService(repo ports.AgentRepository, logger zerolog.Logger) *AgentService {
	return &AgentService{repo: repo, logger: logger}
}

func (s *AgentService) List(ctx context.Context) ([]domain.Agent, error) {
	return s.repo.FindAll(ctx)
}

func (s *AgentService) Get(ctx context.Context, id int64) (*domain.Agent, error) {
	agent, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, domain.NotFound("agent")
	}
	return agent, nil
}

func (s *AgentService) Create(ctx context.Context, in ports.AgentInput) (*domain.Agent, error) {
	created, err := s.repo.Create(ctx, &domain.Agent{
		Name:              in.Name,
		Role:              in.Role,
		IncorporationDate: in.IncorporationDate,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create agent")
		return nil, err
	}

	metrics.ResourceMutationsTotal.WithLabelValues("agent", "create").Inc()
	s.logger.Info().Int64("agent_id", created.ID).Msg("agent created")
	return created, nil
}

func (s *AgentService) Replace(ctx context.Context, id int64, in ports.AgentInput) (*domain.Agent, error) {
	updated, err := s.repo.Update(ctx, id, ports.AgentUpdate{
		Name:              &in.Name,
		Role:              &in.Role,
		IncorporationDate: &in.IncorporationDate,
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.NotFound("agent")
	}

	metrics.ResourceMutationsTotal.WithLabelValues("agent", "replace").Inc()
	return updated, nil
}

func (s *AgentService) Patch(ctx context.Context, id int64, upd ports.AgentUpdate) (*domain.Agent, error) {
	updated, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.NotFound("agent")
	}

	if !upd.Empty() {
		metrics.ResourceMutationsTotal.WithLabelValues("agent", "patch").Inc()
	}
	return updated, nil
}

func (s *AgentService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.NotFound("agent")
	}

	metrics.ResourceMutationsTotal.WithLabelValues("agent", "delete").Inc()
	s.logger.Info().Int64("agent_id", id).Msg("agent deleted, referencing cases cascaded")
	return nil
}
