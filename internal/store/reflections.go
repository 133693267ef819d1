package store

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/mindhaven/mindhaven-backend/internal/apperror"
	"github.com/mindhaven/mindhaven-backend/internal/database"
	"github.com/mindhaven/mindhaven-backend/internal/models"
)

// DefaultReflectionPageSize matches the daily reflection listing view.
const DefaultReflectionPageSize = 4

// CreateReflection persists a new daily reflection for its owner.
func CreateReflection(ownerID uuid.UUID, smileToday, drainedToday, gratefulToday string) (models.DailyReflection, error) {
	reflection := models.DailyReflection{
		ID:            uuid.New(),
		UserID:        ownerID,
		SmileToday:    smileToday,
		DrainedToday:  drainedToday,
		GratefulToday: gratefulToday,
		CreatedAt:     time.Now().UTC(),
	}

	_, err := database.PostgresDB.Exec(`
		INSERT INTO daily_reflections (id, user_id, smile_today, drained_today, grateful_today, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, reflection.ID, reflection.UserID, reflection.SmileToday, reflection.DrainedToday, reflection.GratefulToday, reflection.CreatedAt)
	if err != nil {
		return models.DailyReflection{}, apperror.NewInternalError("Failed to create reflection", err)
	}

	return reflection, nil
}

// ListReflectionsByOwner returns one page of the owner's reflections, newest first.
func ListReflectionsByOwner(ownerID uuid.UUID, page, pageSize int) (Page[models.DailyReflection], error) {
	page, pageSize = normalizePage(page, pageSize, DefaultReflectionPageSize)
	empty := Page[models.DailyReflection]{Items: []models.DailyReflection{}, Page: page, PageSize: pageSize}

	var total int64
	err := database.PostgresDB.QueryRow(`
		SELECT COUNT(*) FROM daily_reflections WHERE user_id = $1
	`, ownerID).Scan(&total)
	if err != nil {
		return empty, apperror.NewInternalError("Database error", err)
	}

	rows, err := database.PostgresDB.Query(`
		SELECT id, user_id, smile_today, drained_today, grateful_today, created_at
		FROM daily_reflections
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`, ownerID, pageSize, (page-1)*pageSize)
	if err != nil {
		return empty, apperror.NewInternalError("Database error", err)
	}
	defer rows.Close()

	items := make([]models.DailyReflection, 0, pageSize)
	for rows.Next() {
		var ref models.DailyReflection
		var smile, drained, grateful sql.NullString
		if err := rows.Scan(&ref.ID, &ref.UserID, &smile, &drained, &grateful, &ref.CreatedAt); err != nil {
			return empty, apperror.NewInternalError("Failed to scan reflection", err)
		}
		ref.SmileToday = smile.String
		ref.DrainedToday = drained.String
		ref.GratefulToday = grateful.String
		items = append(items, ref)
	}
	if err := rows.Err(); err != nil {
		return empty, apperror.NewInternalError("Database error", err)
	}

	return Page[models.DailyReflection]{
		Items:    items,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
		HasMore:  int64(page*pageSize) < total,
	}, nil
}

// GetReflectionByID fetches one reflection; callers apply RequireOwner.
func GetReflectionByID(id uuid.UUID) (models.DailyReflection, error) {
	var ref models.DailyReflection
	var smile, drained, grateful sql.NullString
	err := database.PostgresDB.QueryRow(`
		SELECT id, user_id, smile_today, drained_today, grateful_today, created_at
		FROM daily_reflections WHERE id = $1
	`, id).Scan(&ref.ID, &ref.UserID, &smile, &drained, &grateful, &ref.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.DailyReflection{}, apperror.NewNotFound("Reflection not found")
		}
		return models.DailyReflection{}, apperror.NewInternalError("Database error", err)
	}
	ref.SmileToday = smile.String
	ref.DrainedToday = drained.String
	ref.GratefulToday = grateful.String
	return ref, nil
}

// UpdateReflection edits the three prompt answers in place.
func UpdateReflection(id uuid.UUID, smileToday, drainedToday, gratefulToday string) error {
	res, err := database.PostgresDB.Exec(`
		UPDATE daily_reflections
		SET smile_today = $1, drained_today = $2, grateful_today = $3
		WHERE id = $4
	`, smileToday, drainedToday, gratefulToday, id)
	if err != nil {
		return apperror.NewInternalError("Failed to update reflection", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperror.NewNotFound("Reflection not found")
	}
	return nil
}

// DeleteReflection removes a reflection.
func DeleteReflection(id uuid.UUID) error {
	res, err := database.PostgresDB.Exec(`DELETE FROM daily_reflections WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternalError("Failed to delete reflection", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperror.NewNotFound("Reflection not found")
	}
	return nil
}
