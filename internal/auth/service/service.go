package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"doorman/internal/auth/models"
	"doorman/internal/platform/metrics"
	dErrors "doorman/pkg/domain-errors"
	"doorman/pkg/sentinel"
)

// UserStore defines the persistence interface for user data.
// Error Contract: Find methods return sentinel.ErrNotFound when the entity
// doesn't exist; Create returns sentinel.ErrDuplicate on an email collision.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// PasswordHasher hashes and verifies password digests.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}

// TokenIssuer issues signed bearer tokens for authenticated users.
type TokenIssuer interface {
	GenerateToken(userID uuid.UUID) (string, error)
}

// Service orchestrates registration and login over the credential store.
// Both operations are stateless request/response; there is no cross-request
// state here beyond the injected read-only collaborators.
type Service struct {
	users   UserStore
	hasher  PasswordHasher
	tokens  TokenIssuer
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// Option configures optional Service collaborators.
type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs the auth service. Store, hasher, and token issuer are required.
func New(users UserStore, hasher PasswordHasher, tokens TokenIssuer, opts ...Option) (*Service, error) {
	if users == nil {
		return nil, errors.New("user store is required")
	}
	if hasher == nil {
		return nil, errors.New("password hasher is required")
	}
	if tokens == nil {
		return nil, errors.New("token issuer is required")
	}

	svc := &Service{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	return svc, nil
}

// Register creates a user from the request, hashes the password, and issues a
// token. Duplicate emails surface as a conflict; the store's uniqueness
// constraint is the only duplicate check, so concurrent registrations with the
// same email cannot both succeed.
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, string, error) {
	digest, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        normalizeEmail(req.Email),
		PasswordHash: digest,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, sentinel.ErrDuplicate) {
			s.authFailure(ctx, "duplicate_email")
			return nil, "", dErrors.New(dErrors.CodeConflict, "email already registered")
		}
		return nil, "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to create user")
	}

	tokenString, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to issue token")
	}

	s.logRegistered(ctx, user)
	s.incrementUsersRegistered()
	return user, tokenString, nil
}

// Login verifies credentials and issues a fresh token.
//
// An unknown email and a wrong password deliberately take the same exit: one
// unauthorized error with one message, so the API cannot be used to probe
// which emails are registered.
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.User, string, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.authFailure(ctx, "unknown_email")
			return nil, "", errInvalidCredentials()
		}
		return nil, "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up user")
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		s.authFailure(ctx, "password_mismatch")
		return nil, "", errInvalidCredentials()
	}

	tokenString, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to issue token")
	}

	s.logLogin(ctx, user)
	s.incrementLogins()
	return user, tokenString, nil
}

func errInvalidCredentials() error {
	return dErrors.New(dErrors.CodeUnauthorized, "invalid email or password")
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
