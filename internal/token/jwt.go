// Package token issues and verifies the signed, time-bounded bearer tokens
// that stand in for server-side sessions. Tokens are HS256 JWTs; verification
// is stateless, so rotating the signing key invalidates everything outstanding.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	dErrors "doorman/pkg/domain-errors"
)

// Claims carries the authenticated identity inside an access token.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// Service handles token creation and validation.
type Service struct {
	signingKey []byte
	tokenTTL   time.Duration
}

// NewService constructs a token Service with the given symmetric key and TTL.
func NewService(signingKey string, tokenTTL time.Duration) *Service {
	return &Service{
		signingKey: []byte(signingKey),
		tokenTTL:   tokenTTL,
	}
}

// TTL returns the configured token lifetime.
func (s *Service) TTL() time.Duration {
	return s.tokenTTL
}

// GenerateToken issues a signed token for the given user.
func (s *Service) GenerateToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	newToken := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	})

	signedToken, err := newToken.SignedString(s.signingKey)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "could not sign token")
	}
	return signedToken, nil
}

// ValidateToken verifies the signature, algorithm, structure, and expiry of a
// token and returns its claims.
//
// Every failure mode (malformed, expired, bad signature, wrong algorithm)
// maps to the same unauthorized code so the boundary response cannot be used
// as an oracle for why a token was rejected.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, errInvalidToken()
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	})
	if err != nil || !parsed.Valid {
		return nil, errInvalidToken()
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, errInvalidToken()
	}

	if _, parseErr := uuid.Parse(claims.UserID); parseErr != nil {
		return nil, errInvalidToken()
	}

	return claims, nil
}

func errInvalidToken() error {
	return dErrors.New(dErrors.CodeUnauthorized, "invalid or expired token")
}
