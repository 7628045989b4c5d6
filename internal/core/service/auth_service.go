package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/policedept/records-system/internal/api/metrics"
	"github.com/policedept/records-system/internal/core/domain"
	"github.com/policedept/records-system/internal/core/ports"
)

// AuthService implements registration, login, and account removal.
type AuthService struct {
	repo      ports.UserRepository
	hasher    ports.PasswordHasher
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, hasher: hasher, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if !domain.ValidPassword(in.Password) {
		return nil, domain.FieldError(domain.KindWeakPassword, "password",
			"password must be at least 8 characters with lowercase, uppercase, digit, and symbol")
	}

	existing, err := s.repo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.FieldError(domain.KindEmailInUse, "email", "email already in use")
	}

	hash, err := s.hasher.Hash(ctx, in.Password)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}

	metrics.RegistrationsTotal.Inc()
	s.logger.Info().Int64("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password both return domain.ErrInvalidCredentials so the caller cannot
// learn which part was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", domain.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(ctx, user.PasswordHash, password); err != nil {
		// Only a genuine mismatch is a credential failure; anything else
		// (pool shutdown, cancelled context) propagates as-is.
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			return "", err
		}
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return token, nil
}

func (s *AuthService) DeleteUser(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.NotFound("user")
	}

	s.logger.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
