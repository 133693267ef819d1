// Package forms declares one typed input struct per mutating operation,
// validated by pure field predicates before anything touches the store.
package forms

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mindhaven/mindhaven-backend/internal/apperror"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Field predicates. Each is a pure function of its inputs.

func NonEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// MinLen and MaxLen count runes, not bytes, so multibyte input is measured
// the way users see it.

func MinLen(s string, n int) bool {
	return utf8.RuneCountInString(s) >= n
}

func MaxLen(s string, n int) bool {
	return utf8.RuneCountInString(s) <= n
}

func EmailShape(s string) bool {
	return emailPattern.MatchString(s)
}

func Equals(a, b string) bool {
	return a == b
}

// SignupInput carries the fields for account registration.
type SignupInput struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (in SignupInput) Validate() error {
	switch {
	case !NonEmpty(in.Username):
		return apperror.NewValidationError("Username is required")
	case !MinLen(in.Username, 2) || !MaxLen(in.Username, 20):
		return apperror.NewValidationError("Username must be between 2 and 20 characters")
	case !NonEmpty(in.Email):
		return apperror.NewValidationError("Email is required")
	case !EmailShape(in.Email):
		return apperror.NewValidationError("Email address is not valid")
	case !MinLen(in.Password, 6):
		return apperror.NewValidationError("Password must be at least 6 characters")
	case !Equals(in.Password, in.ConfirmPassword):
		return apperror.NewValidationError("Passwords must match")
	}
	return nil
}

// LoginInput carries the fields for authentication.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in LoginInput) Validate() error {
	switch {
	case !NonEmpty(in.Email):
		return apperror.NewValidationError("Email is required")
	case !EmailShape(in.Email):
		return apperror.NewValidationError("Email address is not valid")
	case !NonEmpty(in.Password):
		return apperror.NewValidationError("Password is required")
	}
	return nil
}

// ForgotPasswordInput requests a reset token for an email.
type ForgotPasswordInput struct {
	Email string `json:"email"`
}

func (in ForgotPasswordInput) Validate() error {
	switch {
	case !NonEmpty(in.Email):
		return apperror.NewValidationError("Email is required")
	case !EmailShape(in.Email):
		return apperror.NewValidationError("Email address is not valid")
	}
	return nil
}

// ResetPasswordInput consumes a reset token and sets a new password.
type ResetPasswordInput struct {
	Token           string `json:"token"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (in ResetPasswordInput) Validate() error {
	switch {
	case !NonEmpty(in.Token):
		return apperror.NewValidationError("Reset token is required")
	case !MinLen(in.NewPassword, 6):
		return apperror.NewValidationError("Password must be at least 6 characters")
	case !Equals(in.NewPassword, in.ConfirmPassword):
		return apperror.NewValidationError("Passwords do not match")
	}
	return nil
}

// JournalInput carries the fields for creating or editing a journal entry.
type JournalInput struct {
	Content string `json:"content"`
	Mood    string `json:"mood"`
}

func (in JournalInput) Validate() error {
	switch {
	case !NonEmpty(in.Content):
		return apperror.NewValidationError("Content is required")
	case !NonEmpty(in.Mood):
		return apperror.NewValidationError("Mood is required")
	case !MaxLen(in.Mood, 50):
		return apperror.NewValidationError("Mood must be at most 50 characters")
	}
	return nil
}

// ReflectionInput carries the three daily reflection prompts.
type ReflectionInput struct {
	SmileToday    string `json:"smile_today"`
	DrainedToday  string `json:"drained_today"`
	GratefulToday string `json:"grateful_today"`
}

func (in ReflectionInput) Validate() error {
	switch {
	case !NonEmpty(in.SmileToday):
		return apperror.NewValidationError("What made you smile today is required")
	case !NonEmpty(in.DrainedToday):
		return apperror.NewValidationError("What drained you today is required")
	case !NonEmpty(in.GratefulToday):
		return apperror.NewValidationError("One thing you're grateful for is required")
	}
	return nil
}

// MoodLogInput carries a mood check-in with its emotion tags.
type MoodLogInput struct {
	Mood     string   `json:"mood"`
	Emotions []string `json:"emotions"`
}

func (in MoodLogInput) Validate() error {
	switch {
	case !NonEmpty(in.Mood):
		return apperror.NewValidationError("Mood is required")
	case !MaxLen(in.Mood, 50):
		return apperror.NewValidationError("Mood must be at most 50 characters")
	}
	for _, e := range in.Emotions {
		if !NonEmpty(e) {
			return apperror.NewValidationError("Emotion tags must not be empty")
		}
	}
	return nil
}
