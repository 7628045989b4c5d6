package ports

import (
	"context"
	"time"

	"github.com/policedept/records-system/internal/core/domain"
)

// AgentInput carries the complete mutable field set of an agent, used for
// both create and full replace. Fields are already format-validated by the
// transport layer.
type AgentInput struct {
	Name              string
	Role              string
	IncorporationDate time.Time
}

// AgentService defines the use-case operations for agents.
type AgentService interface {
	List(ctx context.Context) ([]domain.Agent, error)
	Get(ctx context.Context, id int64) (*domain.Agent, error)
	Create(ctx context.Context, in AgentInput) (*domain.Agent, error)
	Replace(ctx context.Context, id int64, in AgentInput) (*domain.Agent, error)
	Patch(ctx context.Context, id int64, upd AgentUpdate) (*domain.Agent, error)
	Delete(ctx context.Context, id int64) error
}
