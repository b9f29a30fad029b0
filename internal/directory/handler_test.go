package directory

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"doorman/internal/auth/models"
	userstore "doorman/internal/auth/store/user"
)

func newTestRouter(t *testing.T) (*userstore.InMemoryStore, chi.Router) {
	t.Helper()
	store := userstore.NewMemory()
	svc, err := New(store, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)

	h := NewHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	router := chi.NewRouter()
	router.Route("/api", func(r chi.Router) {
		h.Register(r)
		h.RegisterProtected(r) // no auth middleware; handler behavior under test
	})
	return store, router
}

func TestHandleList(t *testing.T) {
	store, router := newTestRouter(t)
	require.NoError(t, store.Create(t.Context(), &models.User{
		ID:           uuid.New(),
		Name:         "Ann",
		Email:        "ann@x.com",
		PasswordHash: "$2a$10$digest",
		CreatedAt:    time.Now(),
	}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "ann@x.com")
	require.NotContains(t, rec.Body.String(), "$2a$10$")

	t.Run("empty directory is an empty array", func(t *testing.T) {
		_, emptyRouter := newTestRouter(t)
		rec := httptest.NewRecorder()
		emptyRouter.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "[]\n", rec.Body.String())
	})
}

func TestHandleDelete(t *testing.T) {
	store, router := newTestRouter(t)
	user := &models.User{ID: uuid.New(), Name: "Ann", Email: "ann@x.com", CreatedAt: time.Now()}
	require.NoError(t, store.Create(t.Context(), user))

	t.Run("existing id - 200 with message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/users/"+user.ID.String(), nil))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "user deleted successfully")
	})

	t.Run("missing id - 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/users/"+uuid.NewString(), nil))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "user not found")
	})

	t.Run("malformed id - 400", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/users/not-a-uuid", nil))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "id must be a valid uuid")
	})
}
