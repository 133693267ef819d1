package store

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/mindhaven/mindhaven-backend/internal/apperror"
	"github.com/mindhaven/mindhaven-backend/internal/database"
	"github.com/mindhaven/mindhaven-backend/internal/models"
)

// DefaultMoodPageSize matches the mood tracker listing view.
const DefaultMoodPageSize = 20

// CreateMoodLog persists a new mood check-in. Mood logs have no edit
// operation; they are created once and only ever deleted.
func CreateMoodLog(ownerID uuid.UUID, mood string, emotions []string) (models.MoodLog, error) {
	logEntry := models.MoodLog{
		ID:        uuid.New(),
		UserID:    ownerID,
		Mood:      mood,
		Emotions:  emotions,
		CreatedAt: time.Now().UTC(),
	}

	_, err := database.PostgresDB.Exec(`
		INSERT INTO mood_logs (id, user_id, mood, emotions, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, logEntry.ID, logEntry.UserID, logEntry.Mood, pq.Array(logEntry.Emotions), logEntry.CreatedAt)
	if err != nil {
		return models.MoodLog{}, apperror.NewInternalError("Failed to create mood log", err)
	}

	return logEntry, nil
}

// ListMoodLogsByOwner returns one page of the owner's mood logs, newest first.
func ListMoodLogsByOwner(ownerID uuid.UUID, page, pageSize int) (Page[models.MoodLog], error) {
	page, pageSize = normalizePage(page, pageSize, DefaultMoodPageSize)
	empty := Page[models.MoodLog]{Items: []models.MoodLog{}, Page: page, PageSize: pageSize}

	var total int64
	err := database.PostgresDB.QueryRow(`
		SELECT COUNT(*) FROM mood_logs WHERE user_id = $1
	`, ownerID).Scan(&total)
	if err != nil {
		return empty, apperror.NewInternalError("Database error", err)
	}

	rows, err := database.PostgresDB.Query(`
		SELECT id, user_id, mood, emotions, created_at
		FROM mood_logs
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`, ownerID, pageSize, (page-1)*pageSize)
	if err != nil {
		return empty, apperror.NewInternalError("Database error", err)
	}
	defer rows.Close()

	items, err := scanMoodLogs(rows, pageSize)
	if err != nil {
		return empty, err
	}

	return Page[models.MoodLog]{
		Items:    items,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
		HasMore:  int64(page*pageSize) < total,
	}, nil
}

// ListAllMoodLogsByOwner returns every mood log of the owner, newest first.
// Used by the tracker view so aggregation always covers the full history.
func ListAllMoodLogsByOwner(ownerID uuid.UUID) ([]models.MoodLog, error) {
	rows, err := database.PostgresDB.Query(`
		SELECT id, user_id, mood, emotions, created_at
		FROM mood_logs
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, ownerID)
	if err != nil {
		return nil, apperror.NewInternalError("Database error", err)
	}
	defer rows.Close()

	return scanMoodLogs(rows, 0)
}

// GetMoodLogByID fetches one mood log; callers apply RequireOwner.
func GetMoodLogByID(id uuid.UUID) (models.MoodLog, error) {
	var logEntry models.MoodLog
	err := database.PostgresDB.QueryRow(`
		SELECT id, user_id, mood, emotions, created_at
		FROM mood_logs WHERE id = $1
	`, id).Scan(&logEntry.ID, &logEntry.UserID, &logEntry.Mood, pq.Array(&logEntry.Emotions), &logEntry.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.MoodLog{}, apperror.NewNotFound("Mood log not found")
		}
		return models.MoodLog{}, apperror.NewInternalError("Database error", err)
	}
	return logEntry, nil
}

// DeleteMoodLog removes a mood log.
func DeleteMoodLog(id uuid.UUID) error {
	res, err := database.PostgresDB.Exec(`DELETE FROM mood_logs WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternalError("Failed to delete mood log", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperror.NewNotFound("Mood log not found")
	}
	return nil
}

func scanMoodLogs(rows *sql.Rows, sizeHint int) ([]models.MoodLog, error) {
	items := make([]models.MoodLog, 0, sizeHint)
	for rows.Next() {
		var logEntry models.MoodLog
		if err := rows.Scan(&logEntry.ID, &logEntry.UserID, &logEntry.Mood, pq.Array(&logEntry.Emotions), &logEntry.CreatedAt); err != nil {
			return nil, apperror.NewInternalError("Failed to scan mood log", err)
		}
		items = append(items, logEntry)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternalError("Database error", err)
	}
	return items, nil
}
