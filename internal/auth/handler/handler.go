package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"doorman/internal/auth/models"
	"doorman/internal/platform/middleware"
	jsonResponse "doorman/internal/transport/http/json"
	"doorman/internal/transport/http/shared"
	dErrors "doorman/pkg/domain-errors"
	s "doorman/pkg/string"
	"doorman/pkg/validation"
)

// Service defines the interface for authentication operations.
type Service interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, string, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.User, string, error)
}

// Handler handles the registration and login endpoints.
type Handler struct {
	auth   Service
	logger *slog.Logger
}

// New creates a new auth Handler with the given service and logger.
func New(auth Service, logger *slog.Logger) *Handler {
	return &Handler{
		auth:   auth,
		logger: logger,
	}
}

// Register registers the auth routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/auth/register", h.HandleRegister)
	r.Post("/auth/login", h.HandleLogin)
}

// HandleRegister implements POST /api/auth/register.
//
// Input: { "name": "Ann", "email": "ann@x.com", "password": "..." }
// Output: 201 { "message": "...", "token": "...", "user": {...} }
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode register request",
			"error", err,
			"request_id", requestID,
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid JSON in request body"))
		return
	}

	s.TrimStrings(&req.Name, &req.Email)
	if err := validation.Validate(req); err != nil {
		h.logger.WarnContext(ctx, "invalid register request",
			"error", err,
			"request_id", requestID,
		)
		shared.WriteError(w, err)
		return
	}

	user, tokenString, err := h.auth.Register(ctx, &req)
	if err != nil {
		h.logger.WarnContext(ctx, "register failed",
			"error", err,
			"request_id", requestID,
		)
		shared.WriteError(w, err)
		return
	}

	jsonResponse.WriteJSON(w, http.StatusCreated, models.AuthResponse{
		Message: "user registered successfully",
		Token:   tokenString,
		User:    user.View(),
	})
}

// HandleLogin implements POST /api/auth/login.
//
// Input: { "email": "ann@x.com", "password": "..." }
// Output: 200 { "message": "...", "token": "...", "user": {...} }
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode login request",
			"error", err,
			"request_id", requestID,
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid JSON in request body"))
		return
	}

	s.TrimStrings(&req.Email)
	if err := validation.Validate(req); err != nil {
		h.logger.WarnContext(ctx, "invalid login request",
			"error", err,
			"request_id", requestID,
		)
		shared.WriteError(w, err)
		return
	}

	user, tokenString, err := h.auth.Login(ctx, &req)
	if err != nil {
		h.logger.WarnContext(ctx, "login failed",
			"error", err,
			"request_id", requestID,
		)
		shared.WriteError(w, err)
		return
	}

	jsonResponse.WriteJSON(w, http.StatusOK, models.AuthResponse{
		Message: "login successful",
		Token:   tokenString,
		User:    user.View(),
	})
}
