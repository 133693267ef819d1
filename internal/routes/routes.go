package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/mindhaven/mindhaven-backend/internal/handlers"
	"github.com/mindhaven/mindhaven-backend/internal/middleware"
)

func SetupRoutes(r *chi.Mux, journal *handlers.JournalHandler, profile *handlers.ProfileHandler) {
	// Auth routes
	r.Post("/signup", handlers.Signup)
	r.Post("/login", handlers.Login)
	r.Get("/logout", handlers.Logout)
	r.Post("/forgot-password", handlers.ForgotPassword)
	r.Post("/reset-password", handlers.ResetPassword)

	// Chat routes (public, no account needed)
	r.Post("/chat", handlers.Chat)
	r.Get("/ws/chat", handlers.ChatWebSocket)

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Get("/me", handlers.GetMe)
		r.Post("/profile/image", profile.UploadImage)
		r.Get("/chat/history", handlers.ChatHistory)

		// Journal routes
		r.Get("/journal", journal.List)
		r.Post("/journal", journal.Create)
		r.Get("/edit-entry/{id}", journal.Get)
		r.Post("/edit-entry/{id}", journal.Update)
		r.Post("/delete-entry/{id}", journal.Delete)

		// Daily reflection routes
		r.Get("/daily-reflection", handlers.ListReflections)
		r.Post("/daily-reflection", handlers.CreateReflection)
		r.Get("/edit-reflection/{id}", handlers.GetReflection)
		r.Post("/edit-reflection/{id}", handlers.UpdateReflection)
		r.Post("/delete-reflection/{id}", handlers.DeleteReflection)

		// Mood tracker routes
		r.Get("/mood-tracker", handlers.MoodTracker)
		r.Post("/mood-tracker", handlers.CreateMoodLog)
		r.Post("/delete_mood/{id}", handlers.DeleteMoodLog)
	})
}
