package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindhaven/mindhaven-backend/internal/apperror"
)

func TestRequireOwnerSameUser(t *testing.T) {
	id := uuid.New()
	assert.NoError(t, RequireOwner(id, id))
}

func TestRequireOwnerDifferentUser(t *testing.T) {
	err := RequireOwner(uuid.New(), uuid.New())
	require.Error(t, err)
	assert.True(t, apperror.IsUnauthorized(err))

	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.StatusCode())
}

func TestNormalizePage(t *testing.T) {
	page, size := normalizePage(0, 0, 5)
	assert.Equal(t, 1, page)
	assert.Equal(t, 5, size)

	page, size = normalizePage(-3, -1, 4)
	assert.Equal(t, 1, page)
	assert.Equal(t, 4, size)

	page, size = normalizePage(7, 10, 5)
	assert.Equal(t, 7, page)
	assert.Equal(t, 10, size)
}
