package service

import (
	"context"

	"doorman/internal/auth/models"
	"doorman/internal/platform/middleware"
)

// Observability helpers for logging and metrics. Plaintext passwords and
// digests never appear in log attributes.

func (s *Service) logRegistered(ctx context.Context, user *models.User) {
	s.logger.InfoContext(ctx, "user registered",
		"user_id", user.ID.String(),
		"request_id", middleware.GetRequestID(ctx),
	)
}

func (s *Service) logLogin(ctx context.Context, user *models.User) {
	s.logger.InfoContext(ctx, "user logged in",
		"user_id", user.ID.String(),
		"request_id", middleware.GetRequestID(ctx),
	)
}

// authFailure logs the internal reason for a failed attempt. The reason stays
// server-side; the caller always receives the generic message.
func (s *Service) authFailure(ctx context.Context, reason string) {
	s.logger.WarnContext(ctx, "auth failure",
		"reason", reason,
		"request_id", middleware.GetRequestID(ctx),
	)
	if s.metrics != nil {
		s.metrics.IncrementAuthFailures()
	}
}

func (s *Service) incrementUsersRegistered() {
	if s.metrics != nil {
		s.metrics.IncrementUsersRegistered()
	}
}

func (s *Service) incrementLogins() {
	if s.metrics != nil {
		s.metrics.IncrementLogins()
	}
}
