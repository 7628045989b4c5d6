package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/policedept/records-system/internal/core/domain"
)

// AuthRepository implements ports.UserRepository on PostgreSQL. The unique
// index on email turns races between the service's pre-check and the insert
// into an EmailInUse error instead of a duplicate row.
type AuthRepository struct {
	db *sql.DB
}

func NewAuthRepository(db *sql.DB) *AuthRepository {
	return &AuthRepository{db: db}
}

func (r *AuthRepository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	created := &domain.User{}
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (name, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id, name, email, password_hash`,
		u.Name, u.Email, u.PasswordHash,
	).Scan(&created.ID, &created.Name, &created.Email, &created.PasswordHash)
	if err != nil {
		if mapped := constraintError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return created, nil
}

func (r *AuthRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := &domain.User{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash FROM users WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

func (r *AuthRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	return affected > 0, nil
}
