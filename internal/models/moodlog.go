package models

import (
	"time"

	"github.com/google/uuid"
)

// MoodLog records one mood check-in with its selected emotion tags.
// Tag order is preserved as submitted but is irrelevant for aggregation.
type MoodLog struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Mood      string    `json:"mood"`
	Emotions  []string  `json:"emotions"`
	CreatedAt time.Time `json:"created_at"`
}
