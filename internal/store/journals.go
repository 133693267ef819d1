package store

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/mindhaven/mindhaven-backend/internal/apperror"
	"github.com/mindhaven/mindhaven-backend/internal/database"
	"github.com/mindhaven/mindhaven-backend/internal/models"
)

// DefaultJournalPageSize matches the journal listing view.
const DefaultJournalPageSize = 5

// CreateJournal persists a new journal entry for its owner. The response
// text is resolved by the caller (generated or fallback) before this point,
// so persistence never depends on the generator.
func CreateJournal(ownerID uuid.UUID, content, mood, response string) (models.JournalEntry, error) {
	entry := models.JournalEntry{
		ID:        uuid.New(),
		UserID:    ownerID,
		Content:   content,
		Mood:      mood,
		Response:  response,
		CreatedAt: time.Now().UTC(),
	}

	_, err := database.PostgresDB.Exec(`
		INSERT INTO journal_entries (id, user_id, content, mood, response, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, entry.ID, entry.UserID, entry.Content, entry.Mood, entry.Response, entry.CreatedAt)
	if err != nil {
		return models.JournalEntry{}, apperror.NewInternalError("Failed to create journal entry", err)
	}

	return entry, nil
}

// ListJournalsByOwner returns one page of the owner's entries, newest first.
// moodFilter, when non-empty, restricts to entries whose mood matches exactly
// (case-sensitive).
func ListJournalsByOwner(ownerID uuid.UUID, page, pageSize int, moodFilter string) (Page[models.JournalEntry], error) {
	page, pageSize = normalizePage(page, pageSize, DefaultJournalPageSize)
	empty := Page[models.JournalEntry]{Items: []models.JournalEntry{}, Page: page, PageSize: pageSize}

	var total int64
	var rows *sql.Rows
	var err error

	if moodFilter != "" {
		err = database.PostgresDB.QueryRow(`
			SELECT COUNT(*) FROM journal_entries WHERE user_id = $1 AND mood = $2
		`, ownerID, moodFilter).Scan(&total)
		if err != nil {
			return empty, apperror.NewInternalError("Database error", err)
		}
		rows, err = database.PostgresDB.Query(`
			SELECT id, user_id, content, mood, response, created_at
			FROM journal_entries
			WHERE user_id = $1 AND mood = $2
			ORDER BY created_at DESC, id DESC
			LIMIT $3 OFFSET $4
		`, ownerID, moodFilter, pageSize, (page-1)*pageSize)
	} else {
		err = database.PostgresDB.QueryRow(`
			SELECT COUNT(*) FROM journal_entries WHERE user_id = $1
		`, ownerID).Scan(&total)
		if err != nil {
			return empty, apperror.NewInternalError("Database error", err)
		}
		rows, err = database.PostgresDB.Query(`
			SELECT id, user_id, content, mood, response, created_at
			FROM journal_entries
			WHERE user_id = $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2 OFFSET $3
		`, ownerID, pageSize, (page-1)*pageSize)
	}
	if err != nil {
		return empty, apperror.NewInternalError("Database error", err)
	}
	defer rows.Close()

	items := make([]models.JournalEntry, 0, pageSize)
	for rows.Next() {
		var e models.JournalEntry
		var response sql.NullString
		if err := rows.Scan(&e.ID, &e.UserID, &e.Content, &e.Mood, &response, &e.CreatedAt); err != nil {
			return empty, apperror.NewInternalError("Failed to scan journal entry", err)
		}
		e.Response = response.String
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return empty, apperror.NewInternalError("Database error", err)
	}

	return Page[models.JournalEntry]{
		Items:    items,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
		HasMore:  int64(page*pageSize) < total,
	}, nil
}

// GetJournalByID fetches one entry without an ownership check; callers apply
// RequireOwner before using the result.
func GetJournalByID(id uuid.UUID) (models.JournalEntry, error) {
	var e models.JournalEntry
	var response sql.NullString
	err := database.PostgresDB.QueryRow(`
		SELECT id, user_id, content, mood, response, created_at
		FROM journal_entries WHERE id = $1
	`, id).Scan(&e.ID, &e.UserID, &e.Content, &e.Mood, &response, &e.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.JournalEntry{}, apperror.NewNotFound("Journal entry not found")
		}
		return models.JournalEntry{}, apperror.NewInternalError("Database error", err)
	}
	e.Response = response.String
	return e, nil
}

// UpdateJournal edits content and mood in place. The generated response and
// the creation timestamp are immutable.
func UpdateJournal(id uuid.UUID, content, mood string) error {
	res, err := database.PostgresDB.Exec(`
		UPDATE journal_entries SET content = $1, mood = $2 WHERE id = $3
	`, content, mood, id)
	if err != nil {
		return apperror.NewInternalError("Failed to update journal entry", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperror.NewNotFound("Journal entry not found")
	}
	return nil
}

// DeleteJournal removes an entry.
func DeleteJournal(id uuid.UUID) error {
	res, err := database.PostgresDB.Exec(`DELETE FROM journal_entries WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternalError("Failed to delete journal entry", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperror.NewNotFound("Journal entry not found")
	}
	return nil
}
