package ports

import (
	"context"

	"github.com/policedept/records-system/internal/core/domain"
)

// RegisterInput carries a registration request. Name and Email are
// non-blank by the time the service sees them; the password strength policy
// is the service's concern.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// AuthService defines credential use cases.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login returns a signed bearer token on success.
	Login(ctx context.Context, email, password string) (string, error)
	DeleteUser(ctx context.Context, id int64) error
}

// PasswordHasher abstracts the CPU-bound hash work so it can run on a
// dedicated worker pool instead of the request goroutine.
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)
	// Compare returns nil when password matches hash and
	// domain.ErrInvalidCredentials on mismatch.
	Compare(ctx context.Context, hash, password string) error
}
