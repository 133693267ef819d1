package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mindhaven/mindhaven-backend/internal/forms"
	"github.com/mindhaven/mindhaven-backend/internal/middleware"
	"github.com/mindhaven/mindhaven-backend/internal/models"
	"github.com/mindhaven/mindhaven-backend/internal/services"
	"github.com/mindhaven/mindhaven-backend/internal/store"
)

type MoodTrackerResponse struct {
	Success       bool             `json:"success"`
	Message       string           `json:"message,omitempty"`
	Logs          []models.MoodLog `json:"logs"`
	Page          int              `json:"page"`
	PageSize      int              `json:"page_size"`
	Total         int64            `json:"total"`
	HasMore       bool             `json:"has_more"`
	EmotionCounts map[string]int   `json:"emotion_counts"`
	ChartPNG      string           `json:"chart_png,omitempty"`
}

type MoodLogResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Log     *models.MoodLog `json:"log,omitempty"`
}

// MoodTracker returns one page of the user's mood history plus the
// per-emotion tally and a base64 PNG pie chart. The tally and chart always
// cover the full history, not just the requested page; the chart is omitted
// when no emotions were logged.
func MoodTracker(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, MoodLogResponse{Success: false, Message: "Authentication required"})
		return
	}

	page := parsePage(r.URL.Query().Get("page"))
	result, err := store.ListMoodLogsByOwner(userID, page, store.DefaultMoodPageSize)
	if err != nil {
		writeError(w, err)
		return
	}

	counts, cached := services.GetCachedEmotionCounts(userID)
	if !cached {
		allLogs, err := store.ListAllMoodLogsByOwner(userID)
		if err != nil {
			writeError(w, err)
			return
		}
		counts = services.AggregateEmotions(allLogs)
		services.SetCachedEmotionCounts(userID, counts)
	}

	resp := MoodTrackerResponse{
		Success:       true,
		Logs:          result.Items,
		Page:          result.Page,
		PageSize:      result.PageSize,
		Total:         result.Total,
		HasMore:       result.HasMore,
		EmotionCounts: counts,
	}

	if len(counts) > 0 {
		png, err := services.RenderEmotionPieChart(counts)
		if err != nil && !errors.Is(err, services.ErrEmptyChart) {
			log.Printf("⚠️ Failed to render emotion chart: %v", err)
		}
		if err == nil {
			resp.ChartPNG = base64.StdEncoding.EncodeToString(png)
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// CreateMoodLog records a mood with its emotion tags.
func CreateMoodLog(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, MoodLogResponse{Success: false, Message: "Authentication required"})
		return
	}

	var in forms.MoodLogInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}

	if err := in.Validate(); err != nil {
		writeError(w, err)
		return
	}

	moodLog, err := store.CreateMoodLog(userID, in.Mood, in.Emotions)
	if err != nil {
		writeError(w, err)
		return
	}

	services.InvalidateEmotionCounts(userID)

	writeJSON(w, http.StatusCreated, MoodLogResponse{
		Success: true,
		Message: "Mood logged!",
		Log:     &moodLog,
	})
}

// DeleteMoodLog removes one mood log; owner-only.
func DeleteMoodLog(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, MoodLogResponse{Success: false, Message: "Authentication required"})
		return
	}

	logID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "Invalid mood log id")
		return
	}

	moodLog, err := store.GetMoodLogByID(logID)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := store.RequireOwner(userID, moodLog.UserID); err != nil {
		writeError(w, err)
		return
	}

	if err := store.DeleteMoodLog(moodLog.ID); err != nil {
		writeError(w, err)
		return
	}

	services.InvalidateEmotionCounts(userID)

	writeJSON(w, http.StatusOK, MoodLogResponse{
		Success: true,
		Message: "Deleted.",
	})
}
