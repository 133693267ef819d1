package models

import (
	"time"

	"github.com/google/uuid"
)

// JournalEntry represents a private journal entry for a user.
// Response holds the generated reflection (or the fixed fallback text).
type JournalEntry struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Content   string    `json:"content"`
	Mood      string    `json:"mood"`
	Response  string    `json:"response,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
