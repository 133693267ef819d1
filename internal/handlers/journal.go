package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mindhaven/mindhaven-backend/internal/forms"
	"github.com/mindhaven/mindhaven-backend/internal/middleware"
	"github.com/mindhaven/mindhaven-backend/internal/models"
	"github.com/mindhaven/mindhaven-backend/internal/services"
	"github.com/mindhaven/mindhaven-backend/internal/store"
)

// JournalHandler serves the journal endpoints. It holds the reflection
// generator adapter, constructed once at startup.
type JournalHandler struct {
	Generator *services.ReflectionGenerator
}

func NewJournalHandler(generator *services.ReflectionGenerator) *JournalHandler {
	return &JournalHandler{Generator: generator}
}

type JournalListResponse struct {
	Success  bool                  `json:"success"`
	Message  string                `json:"message,omitempty"`
	Entries  []models.JournalEntry `json:"entries"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"page_size"`
	Total    int64                 `json:"total"`
	HasMore  bool                  `json:"has_more"`
}

type JournalResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Entry   *models.JournalEntry `json:"entry,omitempty"`
}

// List returns the authenticated user's entries, newest first, with
// optional exact mood filtering via ?filter_mood=.
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, JournalResponse{Success: false, Message: "Authentication required"})
		return
	}

	page := parsePage(r.URL.Query().Get("page"))
	moodFilter := r.URL.Query().Get("filter_mood")

	result, err := store.ListJournalsByOwner(userID, page, store.DefaultJournalPageSize, moodFilter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, JournalListResponse{
		Success:  true,
		Entries:  result.Items,
		Page:     result.Page,
		PageSize: result.PageSize,
		Total:    result.Total,
		HasMore:  result.HasMore,
	})
}

// Create persists a new entry. The generator is consulted synchronously;
// if it fails in any way the fixed fallback text is stored instead and the
// entry is saved regardless.
func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, JournalResponse{Success: false, Message: "Authentication required"})
		return
	}

	var in forms.JournalInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}

	if err := in.Validate(); err != nil {
		writeError(w, err)
		return
	}

	response := h.Generator.GenerateOrFallback(r.Context(), in.Content)

	entry, err := store.CreateJournal(userID, in.Content, in.Mood, response)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, JournalResponse{
		Success: true,
		Message: "Journal entry saved!",
		Entry:   &entry,
	})
}

// Get returns a single entry for editing; owner-only.
func (h *JournalHandler) Get(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.resolveOwned(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, JournalResponse{
		Success: true,
		Message: "OK",
		Entry:   &entry,
	})
}

// Update edits content and mood; owner-only.
func (h *JournalHandler) Update(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.resolveOwned(w, r)
	if !ok {
		return
	}

	var in forms.JournalInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}

	if err := in.Validate(); err != nil {
		writeError(w, err)
		return
	}

	if err := store.UpdateJournal(entry.ID, in.Content, in.Mood); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, JournalResponse{
		Success: true,
		Message: "Entry updated successfully.",
	})
}

// Delete removes an entry; owner-only.
func (h *JournalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.resolveOwned(w, r)
	if !ok {
		return
	}

	if err := store.DeleteJournal(entry.ID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, JournalResponse{
		Success: true,
		Message: "Deleted.",
	})
}

// resolveOwned parses the {id} parameter, fetches the entry, and applies
// the ownership guard. On failure it writes the response and returns ok=false.
func (h *JournalHandler) resolveOwned(w http.ResponseWriter, r *http.Request) (models.JournalEntry, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, JournalResponse{Success: false, Message: "Authentication required"})
		return models.JournalEntry{}, false
	}

	entryID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "Invalid entry id")
		return models.JournalEntry{}, false
	}

	entry, err := store.GetJournalByID(entryID)
	if err != nil {
		writeError(w, err)
		return models.JournalEntry{}, false
	}

	if err := store.RequireOwner(userID, entry.UserID); err != nil {
		writeError(w, err)
		return models.JournalEntry{}, false
	}

	return entry, true
}

// parsePage parses a 1-indexed page query parameter, defaulting to 1.
func parsePage(raw string) int {
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
