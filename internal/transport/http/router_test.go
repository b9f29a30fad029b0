package httptransport

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	authhandler "doorman/internal/auth/handler"
	authservice "doorman/internal/auth/service"
	userstore "doorman/internal/auth/store/user"
	"doorman/internal/directory"
	"doorman/internal/platform/health"
	"doorman/internal/token"
	"doorman/pkg/secrets"
)

// RouterSuite exercises the assembled HTTP surface end to end against the
// in-memory store: the same wiring main performs, minus postgres.
type RouterSuite struct {
	suite.Suite
	router http.Handler
	tokens *token.Service
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := userstore.NewMemory()
	s.tokens = token.NewService("test-signing-key", time.Hour)

	authSvc, err := authservice.New(store, secrets.NewHasher(bcrypt.MinCost), s.tokens,
		authservice.WithLogger(log))
	s.Require().NoError(err)

	dirSvc, err := directory.New(store, directory.WithLogger(log))
	s.Require().NoError(err)

	s.router = NewRouter(Deps{
		Auth:      authhandler.New(authSvc, log),
		Directory: directory.NewHandler(dirSvc, log),
		Health:    health.New(),
		Tokens:    token.NewValidator(s.tokens),
		Logger:    log,
	})
}

func (s *RouterSuite) do(method, path, body, bearer string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

type authBody struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"user"`
}

// TestRegisterLoginListDelete walks the full lifecycle: register, log in with
// right and wrong passwords, list, then delete and verify the listing shrank.
func (s *RouterSuite) TestRegisterLoginListDelete() {
	// register → 201, token decodes to Ann's id
	rec := s.do(http.MethodPost, "/api/auth/register", `{"name":"Ann","email":"ann@x.com","password":"pw1-secret"}`, "")
	s.Require().Equal(http.StatusCreated, rec.Code)

	var registered authBody
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &registered))
	s.NotEmpty(registered.Token)

	claims, err := s.tokens.ValidateToken(registered.Token)
	s.Require().NoError(err)
	s.Equal(registered.User.ID, claims.UserID)

	// login with the right password → 200, fresh token, same identity
	rec = s.do(http.MethodPost, "/api/auth/login", `{"email":"ann@x.com","password":"pw1-secret"}`, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var loggedIn authBody
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &loggedIn))
	claims, err = s.tokens.ValidateToken(loggedIn.Token)
	s.Require().NoError(err)
	s.Equal(registered.User.ID, claims.UserID)

	// login with the wrong password → 401 with the generic message
	rec = s.do(http.MethodPost, "/api/auth/login", `{"email":"ann@x.com","password":"wrong-pass"}`, "")
	s.Require().Equal(http.StatusUnauthorized, rec.Code)
	wrongPasswordBody := rec.Body.String()

	// login with an unknown email → identical status and body
	rec = s.do(http.MethodPost, "/api/auth/login", `{"email":"ghost@x.com","password":"pw1-secret"}`, "")
	s.Require().Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(wrongPasswordBody, rec.Body.String())

	// listing includes Ann without any password field
	rec = s.do(http.MethodGet, "/api/users", "", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "ann@x.com")
	s.NotContains(rec.Body.String(), "password")
	s.NotContains(rec.Body.String(), "$2a$")

	var listed []map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &listed))
	s.Require().Len(listed, 1)

	// delete requires a token
	deletePath := fmt.Sprintf("/api/users/%s", registered.User.ID)
	rec = s.do(http.MethodDelete, deletePath, "", "")
	s.Require().Equal(http.StatusUnauthorized, rec.Code)

	// delete with a valid token removes the record
	rec = s.do(http.MethodDelete, deletePath, "", loggedIn.Token)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "deleted")

	// subsequent listing excludes Ann
	rec = s.do(http.MethodGet, "/api/users", "", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.NotContains(rec.Body.String(), "ann@x.com")

	// deleting again is 404
	rec = s.do(http.MethodDelete, deletePath, "", loggedIn.Token)
	s.Require().Equal(http.StatusNotFound, rec.Code)
}

func (s *RouterSuite) TestDuplicateRegistration() {
	body := `{"name":"Ann","email":"ann@x.com","password":"pw1-secret"}`
	rec := s.do(http.MethodPost, "/api/auth/register", body, "")
	s.Require().Equal(http.StatusCreated, rec.Code)

	rec = s.do(http.MethodPost, "/api/auth/register", body, "")
	s.Require().Equal(http.StatusConflict, rec.Code)
	s.Contains(rec.Body.String(), "email already registered")

	rec = s.do(http.MethodGet, "/api/users", "", "")
	var listed []map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &listed))
	s.Len(listed, 1)
}

// TestExpiredAndMalformedTokensMatch verifies the boundary cannot be used to
// distinguish why a token was rejected.
func (s *RouterSuite) TestExpiredAndMalformedTokensMatch() {
	rec := s.do(http.MethodPost, "/api/auth/register", `{"name":"Ann","email":"ann@x.com","password":"pw1-secret"}`, "")
	s.Require().Equal(http.StatusCreated, rec.Code)
	var registered authBody
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &registered))

	expiredIssuer := token.NewService("test-signing-key", -time.Minute)
	expiredClaims, err := s.tokens.ValidateToken(registered.Token)
	s.Require().NoError(err)
	expired, err := expiredIssuer.GenerateToken(uuidMust(expiredClaims.UserID))
	s.Require().NoError(err)

	deletePath := fmt.Sprintf("/api/users/%s", registered.User.ID)

	expiredRec := s.do(http.MethodDelete, deletePath, "", expired)
	malformedRec := s.do(http.MethodDelete, deletePath, "", "not-a-token")

	s.Equal(http.StatusUnauthorized, expiredRec.Code)
	s.Equal(http.StatusUnauthorized, malformedRec.Code)
	s.Equal(expiredRec.Body.String(), malformedRec.Body.String())
}

func uuidMust(id string) uuid.UUID {
	return uuid.MustParse(id)
}

func (s *RouterSuite) TestHealthEndpoints() {
	rec := s.do(http.MethodGet, "/health/live", "", "")
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/health/ready", "", "")
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/health", "", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "uptime_seconds")
}

func (s *RouterSuite) TestValidationErrors() {
	rec := s.do(http.MethodPost, "/api/auth/register", `{"email":"ann@x.com","password":"pw1-secret"}`, "")
	s.Require().Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "name is required")

	rec = s.do(http.MethodPost, "/api/auth/register", `{"name":"Ann","email":"ann@x.com","password":"short"}`, "")
	s.Require().Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "password must be at least 8 characters")
}
