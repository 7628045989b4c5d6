package ports

import (
	"context"

	"github.com/policedept/records-system/internal/core/domain"
)

// CaseInput carries the complete mutable field set of a case, used for both
// create and full replace. AgentID is format-validated by the transport
// layer; its existence is checked by the service.
type CaseInput struct {
	Title       string
	Description string
	Status      domain.CaseStatus
	AgentID     int64
}

// CaseService defines the use-case operations for cases.
type CaseService interface {
	List(ctx context.Context) ([]domain.Case, error)
	Get(ctx context.Context, id int64) (*domain.Case, error)
	Create(ctx context.Context, in CaseInput) (*domain.Case, error)
	Replace(ctx context.Context, id int64, in CaseInput) (*domain.Case, error)
	Patch(ctx context.Context, id int64, upd CaseUpdate) (*domain.Case, error)
	Delete(ctx context.Context, id int64) error
}
