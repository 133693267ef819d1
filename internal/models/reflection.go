package models

import (
	"time"

	"github.com/google/uuid"
)

// DailyReflection captures the three end-of-day prompts.
type DailyReflection struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	SmileToday    string    `json:"smile_today"`
	DrainedToday  string    `json:"drained_today"`
	GratefulToday string    `json:"grateful_today"`
	CreatedAt     time.Time `json:"created_at"`
}
