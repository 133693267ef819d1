package store

import (
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/mindhaven/mindhaven-backend/internal/apperror"
	"github.com/mindhaven/mindhaven-backend/internal/database"
	"github.com/mindhaven/mindhaven-backend/internal/models"
	"github.com/mindhaven/mindhaven-backend/pkg/utils"
)

// ResetTokenTTL is how long a password reset token stays valid.
const ResetTokenTTL = 1 * time.Hour

// Register creates a new account. Fails with EmailTaken if the email is
// already registered.
func Register(username, email, password string) (models.Account, error) {
	var existingEmail string
	err := database.PostgresDB.QueryRow("SELECT email FROM users WHERE email = $1", email).Scan(&existingEmail)
	if err == nil {
		return models.Account{}, apperror.NewEmailTaken("Email already registered")
	} else if err != sql.ErrNoRows {
		return models.Account{}, apperror.NewInternalError("Database error", err)
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return models.Account{}, apperror.NewInternalError("Failed to hash password", err)
	}

	account := models.Account{
		ID:        uuid.New(),
		Username:  username,
		Email:     email,
		ImageFile: models.DefaultImageFile,
		CreatedAt: time.Now().UTC(),
	}

	_, err = database.PostgresDB.Exec(`
		INSERT INTO users (id, username, email, password_hash, image_file, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, account.ID, account.Username, account.Email, hashedPassword, account.ImageFile, account.CreatedAt)
	if err != nil {
		// Two concurrent signups can both pass the SELECT; the UNIQUE
		// constraint on users.email catches the loser here.
		if isUniqueViolation(err) {
			return models.Account{}, apperror.NewEmailTaken("Email already registered")
		}
		return models.Account{}, apperror.NewInternalError("Failed to create account", err)
	}

	return account, nil
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (class 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// Authenticate looks an account up by email and verifies the password.
// The failure message is identical whether the email or the password was
// wrong, so callers cannot probe which emails are registered.
func Authenticate(email, password string) (models.Account, error) {
	var account models.Account
	var passwordHash string

	err := database.PostgresDB.QueryRow(`
		SELECT id, username, email, password_hash, image_file, created_at
		FROM users WHERE email = $1
	`, email).Scan(&account.ID, &account.Username, &account.Email, &passwordHash, &account.ImageFile, &account.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Account{}, apperror.NewInvalidCredentials("Invalid email or password")
		}
		return models.Account{}, apperror.NewInternalError("Database error", err)
	}

	valid, err := utils.VerifyPassword(password, passwordHash)
	if err != nil || !valid {
		return models.Account{}, apperror.NewInvalidCredentials("Invalid email or password")
	}

	return account, nil
}

// GetAccountByID fetches an account by id.
func GetAccountByID(id uuid.UUID) (models.Account, error) {
	var account models.Account
	err := database.PostgresDB.QueryRow(`
		SELECT id, username, email, image_file, created_at
		FROM users WHERE id = $1
	`, id).Scan(&account.ID, &account.Username, &account.Email, &account.ImageFile, &account.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Account{}, apperror.NewNotFound("Account not found")
		}
		return models.Account{}, apperror.NewInternalError("Database error", err)
	}
	return account, nil
}

// UpdateAccountImage sets the profile image reference for an account.
func UpdateAccountImage(id uuid.UUID, imageFile string) error {
	res, err := database.PostgresDB.Exec(`UPDATE users SET image_file = $1 WHERE id = $2`, imageFile, id)
	if err != nil {
		return apperror.NewInternalError("Failed to update profile image", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperror.NewNotFound("Account not found")
	}
	return nil
}

// ResetPassword replaces an account's password. The new password and its
// confirmation must match; the old password is not required here because
// callers reach this only through a verified reset token.
func ResetPassword(email, newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		return apperror.NewPasswordMismatch("Passwords do not match")
	}

	var userID uuid.UUID
	err := database.PostgresDB.QueryRow("SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return apperror.NewNoSuchAccount("No account found with that email")
		}
		return apperror.NewInternalError("Database error", err)
	}

	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		return apperror.NewInternalError("Failed to hash password", err)
	}

	_, err = database.PostgresDB.Exec(`UPDATE users SET password_hash = $1 WHERE id = $2`, hashedPassword, userID)
	if err != nil {
		return apperror.NewInternalError("Failed to update password", err)
	}
	return nil
}

// CreateResetToken issues a single-use reset token for the account with the
// given email. The token would be delivered out of band (email) in production.
func CreateResetToken(email string) (string, error) {
	var userID uuid.UUID
	err := database.PostgresDB.QueryRow("SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", apperror.NewNoSuchAccount("No account found with that email")
		}
		return "", apperror.NewInternalError("Database error", err)
	}

	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", apperror.NewInternalError("Failed to generate token", err)
	}
	token := base64.URLEncoding.EncodeToString(tokenBytes)

	_, err = database.PostgresDB.Exec(`
		INSERT INTO password_reset_tokens (id, user_id, token, expires_at, used, created_at)
		VALUES (gen_random_uuid(), $1, $2, $3, FALSE, NOW())
	`, userID, token, time.Now().UTC().Add(ResetTokenTTL))
	if err != nil {
		return "", apperror.NewInternalError("Failed to store reset token", err)
	}

	return token, nil
}

// ConsumeResetToken validates an unused, unexpired token, marks it used, and
// returns the email of the account it belongs to.
func ConsumeResetToken(token string) (string, error) {
	var tokenID uuid.UUID
	var email string

	err := database.PostgresDB.QueryRow(`
		SELECT t.id, u.email
		FROM password_reset_tokens t
		JOIN users u ON u.id = t.user_id
		WHERE t.token = $1 AND t.used = FALSE AND t.expires_at > NOW()
	`, token).Scan(&tokenID, &email)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", apperror.NewNotFound("Invalid or expired reset token")
		}
		return "", apperror.NewInternalError("Database error", err)
	}

	_, err = database.PostgresDB.Exec(`UPDATE password_reset_tokens SET used = TRUE WHERE id = $1`, tokenID)
	if err != nil {
		return "", apperror.NewInternalError("Failed to consume reset token", err)
	}

	return email, nil
}
