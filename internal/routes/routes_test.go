package routes

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindhaven/mindhaven-backend/internal/handlers"
	"github.com/mindhaven/mindhaven-backend/internal/services"
)

func TestSetupRoutesMountsFullSurface(t *testing.T) {
	r := chi.NewRouter()
	SetupRoutes(r,
		handlers.NewJournalHandler(services.NewReflectionGenerator("", "", 0)),
		handlers.NewProfileHandler(nil),
	)

	mounted := map[string]bool{}
	err := chi.Walk(r, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		mounted[method+" "+route] = true
		return nil
	})
	require.NoError(t, err)

	for _, want := range []string{
		"POST /signup",
		"POST /login",
		"GET /logout",
		"POST /forgot-password",
		"POST /reset-password",
		"POST /chat",
		"GET /ws/chat",
		"GET /me",
		"POST /profile/image",
		"GET /chat/history",
		"GET /journal",
		"POST /journal",
		"GET /edit-entry/{id}",
		"POST /edit-entry/{id}",
		"POST /delete-entry/{id}",
		"GET /daily-reflection",
		"POST /daily-reflection",
		"GET /edit-reflection/{id}",
		"POST /edit-reflection/{id}",
		"POST /delete-reflection/{id}",
		"GET /mood-tracker",
		"POST /mood-tracker",
		"POST /delete_mood/{id}",
	} {
		assert.True(t, mounted[want], "route %s not mounted", want)
	}
}
