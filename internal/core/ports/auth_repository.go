package ports

import (
	"context"

	"github.com/policedept/records-system/internal/core/domain"
)

// UserRepository is the persistence boundary for credential records.
type UserRepository interface {
	// Create persists the user and returns it with its assigned id. Inserts
	// violating the unique email index surface as an EmailInUse domain error.
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	// FindByEmail returns nil, nil when no user has the given email.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id int64) (bool, error)
}
