package ports

import (
	"context"

	"github.com/policedept/records-system/internal/core/domain"
)

// CaseUpdate carries the field set of a partial case update. Nil fields are
// left untouched.
type CaseUpdate struct {
	Title       *string
	Description *string
	Status      *domain.CaseStatus
	AgentID     *int64
}

// Empty reports whether no field is set.
func (u CaseUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Status == nil && u.AgentID == nil
}

// CaseRepository is the persistence boundary for cases. Writes that violate
// the agent foreign key surface as a DanglingReference domain error, so the
// constraint holds even if the agent disappears between the service's
// existence check and the write.
type CaseRepository interface {
	Create(ctx context.Context, c *domain.Case) (*domain.Case, error)
	// Find returns nil, nil when no case has the given id.
	Find(ctx context.Context, id int64) (*domain.Case, error)
	FindAll(ctx context.Context) ([]domain.Case, error)
	// Update applies the set fields and returns the stored record, or
	// nil, nil when no case has the given id.
	Update(ctx context.Context, id int64, upd CaseUpdate) (*domain.Case, error)
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id int64) (bool, error)
}
