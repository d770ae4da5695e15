package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsCarryCodeAndStatus(t *testing.T) {
	cases := []struct {
		err    *AppError
		code   string
		status int
	}{
		{Validation("bad input"), CodeValidation, http.StatusBadRequest},
		{NotFound("transfer", 12), CodeNotFound, http.StatusNotFound},
		{InvalidState("already committed"), CodeInvalidState, http.StatusConflict},
		{Conflict("duplicate uid"), CodeConflict, http.StatusConflict},
		{Unauthorized(""), CodeUnauthorized, http.StatusUnauthorized},
		{Internal(errors.New("boom")), CodeInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.code, tc.err.Code)
		assert.Equal(t, tc.status, tc.err.HTTPStatus)
	}
}

func TestNotFoundMessage(t *testing.T) {
	err := NotFound("transfer", 12)
	assert.Equal(t, "transfer 12 not found", err.Message)
}

func TestFromPassesAppErrorsThrough(t *testing.T) {
	orig := NotFound("dock", 3)
	assert.Same(t, orig, From(orig))

	wrapped := fmt.Errorf("listing: %w", orig)
	assert.Same(t, orig, From(wrapped))
}

func TestFromWrapsUnknownErrors(t *testing.T) {
	cause := errors.New("connection refused")
	ae := From(cause)
	assert.Equal(t, CodeInternal, ae.Code)
	assert.ErrorIs(t, ae, cause)
}

func TestIs(t *testing.T) {
	err := Validation("empty item list")
	assert.True(t, Is(err, CodeValidation))
	assert.False(t, Is(err, CodeNotFound))
	assert.False(t, Is(errors.New("plain"), CodeValidation))
	assert.True(t, Is(fmt.Errorf("create: %w", err), CodeValidation))
}
