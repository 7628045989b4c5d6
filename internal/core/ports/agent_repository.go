package ports

import (
	"context"
	"time"

	"github.com/policedept/records-system/internal/core/domain"
)

// AgentUpdate carries the field set of a partial update. Nil fields are left
// untouched by the storage layer; an update with no fields set is a no-op
// re-fetch.
type AgentUpdate struct {
	Name              *string
	Role              *string
	IncorporationDate *time.Time
}

// Empty reports whether no field is set.
func (u AgentUpdate) Empty() bool {
	return u.Name == nil && u.Role == nil && u.IncorporationDate == nil
}

// AgentRepository is the persistence boundary for agents.
type AgentRepository interface {
	Create(ctx context.Context, a *domain.Agent) (*domain.Agent, error)
	// Find returns nil, nil when no agent has the given id.
	Find(ctx context.Context, id int64) (*domain.Agent, error)
	FindAll(ctx context.Context) ([]domain.Agent, error)
	// Update applies the set fields and returns the stored record, or
	// nil, nil when no agent has the given id.
	Update(ctx context.Context, id int64, upd AgentUpdate) (*domain.Agent, error)
	// Delete reports whether a row was removed. Cases referencing the agent
	// are removed in the same statement via the foreign key cascade.
	Delete(ctx context.Context, id int64) (bool, error)
}
