package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mindhaven/mindhaven-backend/internal/apperror"
)

// FallbackReflection is the fixed text substituted for a journal's generated
// response whenever the generator fails. Entry persistence never depends on
// the generator succeeding.
const FallbackReflection = "AI reflection unavailable."

// ReflectionGenerator calls an external text-generation API to produce a
// short reflective response for a journal entry. It is constructed once at
// startup and handed to the journal handler; there is no ambient global.
type ReflectionGenerator struct {
	endpoint string
	apiToken string
	client   *http.Client
}

// NewReflectionGenerator builds a generator for the given endpoint. An empty
// endpoint yields a disabled generator whose Generate always fails, which
// callers absorb via FallbackReflection.
func NewReflectionGenerator(endpoint, apiToken string, timeout time.Duration) *ReflectionGenerator {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ReflectionGenerator{
		endpoint: endpoint,
		apiToken: apiToken,
		client:   &http.Client{Timeout: timeout},
	}
}

// Enabled reports whether an endpoint is configured.
func (g *ReflectionGenerator) Enabled() bool {
	return g.endpoint != ""
}

type generateRequest struct {
	Inputs string `json:"inputs"`
}

type generateResult struct {
	GeneratedText string `json:"generated_text"`
}

// Generate produces a reflection for the given text. Timeout and transport
// failures surface as GeneratorUnavailable; the caller substitutes the
// fallback text and proceeds.
func (g *ReflectionGenerator) Generate(ctx context.Context, text string) (string, error) {
	if !g.Enabled() {
		return "", apperror.NewGeneratorUnavailable("reflection generator not configured", nil)
	}

	body, err := json.Marshal(generateRequest{Inputs: text})
	if err != nil {
		return "", apperror.NewGeneratorUnavailable("failed to encode generation request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", apperror.NewGeneratorUnavailable("failed to build generation request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiToken)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return "", apperror.NewGeneratorUnavailable("generation request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apperror.NewGeneratorUnavailable(
			fmt.Sprintf("generation endpoint returned status %d", resp.StatusCode), nil)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", apperror.NewGeneratorUnavailable("failed to read generation response", err)
	}

	var results []generateResult
	if err := json.Unmarshal(data, &results); err != nil {
		// Some endpoints return a single object instead of a list.
		var single generateResult
		if err2 := json.Unmarshal(data, &single); err2 != nil {
			return "", apperror.NewGeneratorUnavailable("failed to decode generation response", err)
		}
		results = []generateResult{single}
	}

	if len(results) == 0 || strings.TrimSpace(results[0].GeneratedText) == "" {
		return "", apperror.NewGeneratorUnavailable("generation endpoint returned no text", errors.New("empty result"))
	}

	return strings.TrimSpace(results[0].GeneratedText), nil
}

// GenerateOrFallback resolves the response text for a journal entry: the
// generated reflection on success, FallbackReflection on any failure.
func (g *ReflectionGenerator) GenerateOrFallback(ctx context.Context, text string) string {
	reply, err := g.Generate(ctx, text)
	if err != nil {
		return FallbackReflection
	}
	return reply
}
