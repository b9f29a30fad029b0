package token

// Validator adapts Service to the middleware's TokenValidator interface,
// keeping the middleware package free of JWT claim types.
type Validator struct {
	service *Service
}

// NewValidator wraps a token Service for use as request middleware.
func NewValidator(service *Service) *Validator {
	return &Validator{service: service}
}

// ValidateToken verifies the token and returns the authenticated user id.
func (v *Validator) ValidateToken(tokenString string) (string, error) {
	claims, err := v.service.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}
