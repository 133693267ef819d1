package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCodes(t *testing.T) {
	cases := []struct {
		errType ErrorType
		status  int
	}{
		{EmailTaken, http.StatusConflict},
		{InvalidCredentials, http.StatusUnauthorized},
		{NoSuchAccount, http.StatusNotFound},
		{PasswordMismatch, http.StatusBadRequest},
		{ValidationError, http.StatusBadRequest},
		{NotFound, http.StatusNotFound},
		{Unauthorized, http.StatusForbidden},
		{GeneratorUnavailable, http.StatusBadGateway},
		{InternalError, http.StatusInternalServerError},
		{UnknownError, http.StatusInternalServerError},
	}
	for _, c := range cases {
		assert.Equal(t, c.status, New(c.errType, "x", nil).StatusCode())
	}
}

func TestErrorAndUnwrap(t *testing.T) {
	underlying := errors.New("db down")
	err := NewInternalError("query failed", underlying)

	assert.Equal(t, "query failed: db down", err.Error())
	assert.Equal(t, underlying, errors.Unwrap(err))

	bare := NewNotFound("no such entry")
	assert.Equal(t, "no such entry", bare.Error())
	assert.Nil(t, errors.Unwrap(bare))
}

func TestFromErrorThroughWrapping(t *testing.T) {
	err := NewUnauthorized("not yours")
	wrapped := fmt.Errorf("handler: %w", err)

	appErr, ok := FromError(wrapped)
	require.True(t, ok)
	assert.Equal(t, Unauthorized, appErr.Type)

	_, ok = FromError(errors.New("plain"))
	assert.False(t, ok)
}

func TestTypePredicates(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFound("x")))
	assert.True(t, IsUnauthorized(NewUnauthorized("x")))
	assert.True(t, IsEmailTaken(NewEmailTaken("x")))
	assert.False(t, IsNotFound(NewEmailTaken("x")))
	assert.False(t, IsNotFound(errors.New("plain")))
}
