package validation

import (
	"testing"

	"github.com/stretchr/testify/require"

	dErrors "doorman/pkg/domain-errors"
)

type sampleRequest struct {
	Name     string `validate:"required,notblank"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

func TestValidate(t *testing.T) {
	t.Run("valid struct passes", func(t *testing.T) {
		err := Validate(sampleRequest{Name: "Ann", Email: "ann@x.com", Password: "password1"})
		require.NoError(t, err)
	})

	t.Run("missing field reports snake_case name", func(t *testing.T) {
		err := Validate(sampleRequest{Email: "ann@x.com", Password: "password1"})
		require.Error(t, err)
		require.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		require.Equal(t, "name is required", err.Error())
	})

	t.Run("bad email", func(t *testing.T) {
		err := Validate(sampleRequest{Name: "Ann", Email: "not-an-email", Password: "password1"})
		require.Error(t, err)
		require.Equal(t, "email must be a valid email", err.Error())
	})

	t.Run("short password", func(t *testing.T) {
		err := Validate(sampleRequest{Name: "Ann", Email: "ann@x.com", Password: "pw"})
		require.Error(t, err)
		require.Equal(t, "password must be at least 8 characters", err.Error())
	})

	t.Run("blank name fails notblank", func(t *testing.T) {
		err := Validate(sampleRequest{Name: "   ", Email: "ann@x.com", Password: "password1"})
		require.Error(t, err)
		require.Equal(t, "name must not be blank", err.Error())
	})
}
