package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindhaven/mindhaven-backend/internal/apperror"
)

func TestGenerateSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "had a rough day", req["inputs"])

		json.NewEncoder(w).Encode([]map[string]string{
			{"generated_text": "  Be kind to yourself today.  "},
		})
	}))
	defer srv.Close()

	g := NewReflectionGenerator(srv.URL, "test-token", 5*time.Second)
	reply, err := g.Generate(context.Background(), "had a rough day")
	require.NoError(t, err)
	assert.Equal(t, "Be kind to yourself today.", reply)
}

func TestGenerateSingleObjectResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"generated_text": "One step at a time."})
	}))
	defer srv.Close()

	g := NewReflectionGenerator(srv.URL, "", 5*time.Second)
	reply, err := g.Generate(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, "One step at a time.", reply)
}

func TestGenerateNon200Status(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	g := NewReflectionGenerator(srv.URL, "", 5*time.Second)
	_, err := g.Generate(context.Background(), "anything")
	require.Error(t, err)
	assert.True(t, apperror.IsType(err, apperror.GeneratorUnavailable))
}

func TestGenerateEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]string{})
	}))
	defer srv.Close()

	g := NewReflectionGenerator(srv.URL, "", 5*time.Second)
	_, err := g.Generate(context.Background(), "anything")
	assert.True(t, apperror.IsType(err, apperror.GeneratorUnavailable))
}

func TestGenerateDisabled(t *testing.T) {
	g := NewReflectionGenerator("", "", 0)
	assert.False(t, g.Enabled())

	_, err := g.Generate(context.Background(), "anything")
	assert.True(t, apperror.IsType(err, apperror.GeneratorUnavailable))
}

func TestGenerateOrFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]string{{"generated_text": "Rest is productive too."}})
	}))
	defer srv.Close()

	g := NewReflectionGenerator(srv.URL, "", 5*time.Second)
	assert.Equal(t, "Rest is productive too.", g.GenerateOrFallback(context.Background(), "tired"))

	disabled := NewReflectionGenerator("", "", 0)
	assert.Equal(t, FallbackReflection, disabled.GenerateOrFallback(context.Background(), "tired"))
}

func TestGenerateOrFallbackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := NewReflectionGenerator(srv.URL, "", 5*time.Second)
	assert.Equal(t, FallbackReflection, g.GenerateOrFallback(context.Background(), "tired"))
}
