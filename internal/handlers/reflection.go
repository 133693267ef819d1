package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mindhaven/mindhaven-backend/internal/forms"
	"github.com/mindhaven/mindhaven-backend/internal/middleware"
	"github.com/mindhaven/mindhaven-backend/internal/models"
	"github.com/mindhaven/mindhaven-backend/internal/store"
)

type ReflectionListResponse struct {
	Success     bool                     `json:"success"`
	Message     string                   `json:"message,omitempty"`
	Reflections []models.DailyReflection `json:"reflections"`
	Page        int                      `json:"page"`
	PageSize    int                      `json:"page_size"`
	Total       int64                    `json:"total"`
	HasMore     bool                     `json:"has_more"`
}

type ReflectionResponse struct {
	Success    bool                    `json:"success"`
	Message    string                  `json:"message"`
	Reflection *models.DailyReflection `json:"reflection,omitempty"`
}

// ListReflections returns the user's daily reflections, newest first.
func ListReflections(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ReflectionResponse{Success: false, Message: "Authentication required"})
		return
	}

	page := parsePage(r.URL.Query().Get("page"))

	result, err := store.ListReflectionsByOwner(userID, page, store.DefaultReflectionPageSize)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ReflectionListResponse{
		Success:     true,
		Reflections: result.Items,
		Page:        result.Page,
		PageSize:    result.PageSize,
		Total:       result.Total,
		HasMore:     result.HasMore,
	})
}

// CreateReflection records today's three prompts.
func CreateReflection(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ReflectionResponse{Success: false, Message: "Authentication required"})
		return
	}

	var in forms.ReflectionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}

	if err := in.Validate(); err != nil {
		writeError(w, err)
		return
	}

	reflection, err := store.CreateReflection(userID, in.SmileToday, in.DrainedToday, in.GratefulToday)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, ReflectionResponse{
		Success:    true,
		Message:    "Reflection saved!",
		Reflection: &reflection,
	})
}

// GetReflection returns one reflection for editing; owner-only.
func GetReflection(w http.ResponseWriter, r *http.Request) {
	reflection, ok := resolveOwnedReflection(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, ReflectionResponse{
		Success:    true,
		Message:    "OK",
		Reflection: &reflection,
	})
}

// UpdateReflection replaces the three prompt answers; owner-only.
func UpdateReflection(w http.ResponseWriter, r *http.Request) {
	reflection, ok := resolveOwnedReflection(w, r)
	if !ok {
		return
	}

	var in forms.ReflectionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}

	if err := in.Validate(); err != nil {
		writeError(w, err)
		return
	}

	if err := store.UpdateReflection(reflection.ID, in.SmileToday, in.DrainedToday, in.GratefulToday); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ReflectionResponse{
		Success: true,
		Message: "Reflection updated successfully.",
	})
}

// DeleteReflection removes one reflection; owner-only.
func DeleteReflection(w http.ResponseWriter, r *http.Request) {
	reflection, ok := resolveOwnedReflection(w, r)
	if !ok {
		return
	}

	if err := store.DeleteReflection(reflection.ID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ReflectionResponse{
		Success: true,
		Message: "Deleted.",
	})
}

func resolveOwnedReflection(w http.ResponseWriter, r *http.Request) (models.DailyReflection, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, ReflectionResponse{Success: false, Message: "Authentication required"})
		return models.DailyReflection{}, false
	}

	reflectionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "Invalid reflection id")
		return models.DailyReflection{}, false
	}

	reflection, err := store.GetReflectionByID(reflectionID)
	if err != nil {
		writeError(w, err)
		return models.DailyReflection{}, false
	}

	if err := store.RequireOwner(userID, reflection.UserID); err != nil {
		writeError(w, err)
		return models.DailyReflection{}, false
	}

	return reflection, true
}
