// Package directory provides the user directory: listing and deleting user
// records. It is CRUD over the same store the auth service writes to; no
// cascading effects, no soft delete.
package directory

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"doorman/internal/auth/models"
	"doorman/internal/platform/metrics"
	"doorman/internal/platform/middleware"
	dErrors "doorman/pkg/domain-errors"
	"doorman/pkg/sentinel"
)

// UserStore is the slice of the credential store the directory needs.
type UserStore interface {
	ListAll(ctx context.Context) ([]*models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service lists and deletes users.
type Service struct {
	users   UserStore
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

// New constructs the directory service.
func New(users UserStore, opts ...Option) (*Service, error) {
	if users == nil {
		return nil, errors.New("user store is required")
	}
	svc := &Service{users: users}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	return svc, nil
}

// List returns all users as digest-free views, oldest first.
func (s *Service) List(ctx context.Context) ([]models.UserView, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list users")
	}

	views := make([]models.UserView, 0, len(users))
	for _, user := range users {
		views = append(views, user.View())
	}
	sort.Slice(views, func(i, j int) bool {
		return views[i].CreatedAt.Before(views[j].CreatedAt)
	})
	return views, nil
}

// Delete removes the user with the given id. A missing id is not_found and
// changes nothing.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "user not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete user")
	}

	s.logger.InfoContext(ctx, "user deleted",
		"user_id", id.String(),
		"request_id", middleware.GetRequestID(ctx),
	)
	if s.metrics != nil {
		s.metrics.IncrementUsersDeleted()
	}
	return nil
}
