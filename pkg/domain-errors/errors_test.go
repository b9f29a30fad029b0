package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

// DomainErrorsSuite tests the domain error primitives.
//
// Justification: these primitives sit at every trust boundary; the HTTP status
// mapping and the account-enumeration collapse both depend on "errors.Is
// matches by code" and "Wrap preserves the original code" holding.
type DomainErrorsSuite struct {
	suite.Suite
}

func TestDomainErrorsSuite(t *testing.T) {
	suite.Run(t, new(DomainErrorsSuite))
}

func (s *DomainErrorsSuite) TestErrorInterface() {
	s.Run("returns message when present", func() {
		err := &Error{Code: CodeNotFound, Message: "user not found"}
		s.Equal("user not found", err.Error())
	})

	s.Run("returns code when message is empty", func() {
		err := &Error{Code: CodeConflict}
		s.Equal("conflict", err.Error())
	})
}

func (s *DomainErrorsSuite) TestUnwrap() {
	s.Run("returns wrapped error", func() {
		inner := errors.New("connection refused")
		err := &Error{Code: CodeInternal, Message: "store failed", Err: inner}
		s.Equal(inner, errors.Unwrap(err))
	})

	s.Run("returns nil when nothing wrapped", func() {
		err := &Error{Code: CodeNotFound}
		s.Nil(errors.Unwrap(err))
	})
}

func (s *DomainErrorsSuite) TestIsMatching() {
	s.Run("matches by code only", func() {
		err1 := &Error{Code: CodeUnauthorized, Message: "invalid email or password"}
		err2 := &Error{Code: CodeUnauthorized, Message: "token expired"}
		s.True(errors.Is(err1, err2))
	})

	s.Run("does not match different codes", func() {
		s.False(errors.Is(New(CodeNotFound, "x"), New(CodeConflict, "y")))
	})

	s.Run("matches through wrapping chains", func() {
		inner := New(CodeConflict, "email already registered")
		outer := fmt.Errorf("register: %w", inner)
		s.True(errors.Is(outer, &Error{Code: CodeConflict}))
	})
}

func (s *DomainErrorsSuite) TestWrap() {
	s.Run("preserves existing domain code", func() {
		inner := New(CodeUnauthorized, "invalid credentials")
		wrapped := Wrap(inner, CodeInternal, "login failed")
		s.True(HasCode(wrapped, CodeUnauthorized))
	})

	s.Run("applies code to plain errors", func() {
		wrapped := Wrap(errors.New("boom"), CodeInternal, "something broke")
		s.True(HasCode(wrapped, CodeInternal))
		s.Equal("something broke", wrapped.Error())
	})
}

func (s *DomainErrorsSuite) TestHasCode() {
	s.False(HasCode(errors.New("plain"), CodeInternal))
	s.True(HasCode(New(CodeValidation, "email is required"), CodeValidation))
}
