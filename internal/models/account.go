package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultImageFile is the placeholder profile image assigned at signup.
const DefaultImageFile = "default.jpg"

// Account represents a registered user. The password hash never leaves
// the store layer.
type Account struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	ImageFile string    `json:"image_file"`
	CreatedAt time.Time `json:"created_at"`
}
