package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-dinas/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps status and code", func(t *testing.T) {
		err := apperror.Wrapf(apperror.ErrNotFound, "branch %d not found", 7)

		got := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusNotFound, got.Status)
		assert.Equal(t, apperror.CodeNotFound, got.Code)
		assert.Equal(t, "branch 7 not found", got.Message)
		assert.True(t, errors.Is(err, apperror.ErrNotFound))
	})

	t.Run("wrapped by fmt", func(t *testing.T) {
		err := fmt.Errorf("service: %w", apperror.ErrForbidden)

		got := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusForbidden, got.Status)
	})

	t.Run("unknown error is internal", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
	})

	t.Run("details are forwarded", func(t *testing.T) {
		err := apperror.ErrInvalidInput.WithDetails(map[string]string{"field": "code"})

		got := apperror.ToHTTP(err)

		assert.Equal(t, map[string]string{"field": "code"}, got.Details)
		assert.Nil(t, apperror.ErrInvalidInput.Details)
	})
}

func TestMapValidationError(t *testing.T) {
	type payload struct {
		Name  string `validate:"required"`
		Email string `validate:"email"`
	}
	v := validator.New()

	err := v.Struct(payload{Email: "x@y.z"})
	mapped := apperror.ToHTTP(err)
	assert.Equal(t, http.StatusBadRequest, mapped.Status)
	assert.Equal(t, "Name is required", mapped.Message)

	err = v.Struct(payload{Name: "a", Email: "nope"})
	mapped = apperror.ToHTTP(err)
	assert.Equal(t, "Email must be a valid email address", mapped.Message)
}

func TestIsEntityCode(t *testing.T) {
	assert.True(t, apperror.IsEntityCode("JKT01"))
	assert.False(t, apperror.IsEntityCode("JK-T"))
	assert.False(t, apperror.IsEntityCode(""))
}

func TestNormalizeEntityCode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
		ok   bool
	}{
		{name: "upper-cases and trims", in: " jkt ", max: 5, want: "JKT", ok: true},
		{name: "at max length", in: "abcde", max: 5, want: "ABCDE", ok: true},
		{name: "too long", in: "abcdef", max: 5},
		{name: "empty", in: "  ", max: 5},
		{name: "symbol", in: "JK-T", max: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := apperror.NormalizeEntityCode(tt.in, tt.max)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
