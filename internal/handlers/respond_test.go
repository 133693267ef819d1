package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindhaven/mindhaven-backend/internal/apperror"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWriteErrorMapsTaxonomy(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, apperror.NewUnauthorized("You do not have access to this record"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "You do not have access to this record", body["message"])
}

func TestWriteErrorCollapsesInternal(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, apperror.NewInternalError("query failed", errors.New("db down")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "Something went wrong", body["message"])
}

func TestWriteErrorPlainError(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, errors.New("unexpected"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Something went wrong", decodeEnvelope(t, rec)["message"])
}

func TestParsePage(t *testing.T) {
	assert.Equal(t, 1, parsePage(""))
	assert.Equal(t, 1, parsePage("0"))
	assert.Equal(t, 1, parsePage("-2"))
	assert.Equal(t, 1, parsePage("abc"))
	assert.Equal(t, 3, parsePage("3"))
}
