package directory

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"doorman/internal/auth/models"
	"doorman/internal/platform/middleware"
	jsonResponse "doorman/internal/transport/http/json"
	"doorman/internal/transport/http/shared"
	dErrors "doorman/pkg/domain-errors"
)

// Lister lists and deletes users; implemented by *Service.
type Lister interface {
	List(ctx context.Context) ([]models.UserView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Handler exposes the user directory endpoints.
type Handler struct {
	directory Lister
	logger    *slog.Logger
}

// NewHandler creates a directory Handler.
func NewHandler(directory Lister, logger *slog.Logger) *Handler {
	return &Handler{
		directory: directory,
		logger:    logger,
	}
}

// Register registers the public directory routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/users", h.HandleList)
}

// RegisterProtected registers routes that require a valid bearer token.
func (h *Handler) RegisterProtected(r chi.Router) {
	r.Delete("/users/{id}", h.HandleDelete)
}

// HandleList implements GET /api/users.
// Output: 200 with a bare JSON array of users; the digest field has no place
// in the response shape.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.directory.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list users failed",
			"error", err,
			"request_id", middleware.GetRequestID(ctx),
		)
		shared.WriteError(w, err)
		return
	}

	jsonResponse.WriteJSON(w, http.StatusOK, users)
}

// HandleDelete implements DELETE /api/users/{id}.
// Output: 200 {message} on success, 404 {message} when the id does not exist.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "id must be a valid uuid"))
		return
	}

	if err := h.directory.Delete(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete user failed",
			"error", err,
			"user_id", id.String(),
			"request_id", requestID,
		)
		shared.WriteError(w, err)
		return
	}

	jsonResponse.WriteJSON(w, http.StatusOK, jsonResponse.MessageResponse{
		Message: "user deleted successfully",
	})
}
