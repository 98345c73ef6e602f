package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"helpdesk/internal/shared/errors"
)

type signupForm struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid struct passes", func(t *testing.T) {
		err := ValidateStruct(&signupForm{
			Name:     "Ada",
			Email:    "ada@example.com",
			Password: "longenough",
		})
		assert.NoError(t, err)
	})

	t.Run("errors use json field names", func(t *testing.T) {
		err := ValidateStruct(&signupForm{
			Name:     "Ada",
			Email:    "not-an-email",
			Password: "short",
		})
		assert.Error(t, err)
		assert.True(t, errors.IsValidationError(err))

		appErr := errors.GetAppError(err)
		assert.Contains(t, appErr.Details, "email must be a valid email address")
		assert.Contains(t, appErr.Details, "password must be at least 8 characters long")
	})

	t.Run("missing required fields", func(t *testing.T) {
		err := ValidateStruct(&signupForm{})
		assert.Error(t, err)

		appErr := errors.GetAppError(err)
		assert.Contains(t, appErr.Details, "name is required")
	})
}
