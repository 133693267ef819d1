package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mindhaven/mindhaven-backend/internal/forms"
	"github.com/mindhaven/mindhaven-backend/internal/middleware"
	"github.com/mindhaven/mindhaven-backend/internal/services"
	"github.com/mindhaven/mindhaven-backend/internal/store"
)

// AuthResponse is the JSON envelope for auth endpoints.
type AuthResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	User    map[string]interface{} `json:"user,omitempty"`
	Token   string                 `json:"token,omitempty"`
}

// Signup handles account registration.
func Signup(w http.ResponseWriter, r *http.Request) {
	var in forms.SignupInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}

	if err := in.Validate(); err != nil {
		writeError(w, err)
		return
	}

	account, err := store.Register(in.Username, in.Email, in.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, AuthResponse{
		Success: true,
		Message: "Signup successful! Please login.",
		User: map[string]interface{}{
			"id":         account.ID.String(),
			"username":   account.Username,
			"email":      account.Email,
			"image_file": account.ImageFile,
			"created_at": account.CreatedAt,
		},
	})
}

// Login authenticates and establishes a session.
func Login(w http.ResponseWriter, r *http.Request) {
	var in forms.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}

	if err := in.Validate(); err != nil {
		writeError(w, err)
		return
	}

	account, err := store.Authenticate(in.Email, in.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	token, err := services.CreateSession(account.ID)
	if err != nil {
		writeBadRequest(w, "Failed to create session")
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Success: true,
		Message: "Login successful!",
		Token:   token,
		User: map[string]interface{}{
			"id":         account.ID.String(),
			"username":   account.Username,
			"email":      account.Email,
			"image_file": account.ImageFile,
			"created_at": account.CreatedAt,
		},
	})
}

// Logout ends the current session.
func Logout(w http.ResponseWriter, r *http.Request) {
	token := middleware.ExtractBearerToken(r.Header.Get("Authorization"))
	services.InvalidateSession(token)

	writeJSON(w, http.StatusOK, AuthResponse{
		Success: true,
		Message: "Logged out.",
	})
}

// ForgotPassword issues a single-use reset token for the account. In
// production the token is delivered by email; it is never applied without
// the follow-up /reset-password call.
func ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var in forms.ForgotPasswordInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}

	if err := in.Validate(); err != nil {
		writeError(w, err)
		return
	}

	token, err := store.CreateResetToken(in.Email)
	if err != nil {
		writeError(w, err)
		return
	}

	// TODO: deliver the token by email once an email provider is wired up.
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"message":     "Password reset token issued.",
		"reset_token": token,
	})
}

// ResetPassword consumes a reset token and sets the new password.
func ResetPassword(w http.ResponseWriter, r *http.Request) {
	var in forms.ResetPasswordInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadRequest(w, "Invalid request body")
		return
	}

	if err := in.Validate(); err != nil {
		writeError(w, err)
		return
	}

	email, err := store.ConsumeResetToken(in.Token)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := store.ResetPassword(email, in.NewPassword, in.ConfirmPassword); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Success: true,
		Message: "Password updated. Please log in.",
	})
}

// GetMe returns the authenticated account.
func GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, AuthResponse{Success: false, Message: "Authentication required"})
		return
	}

	account, err := store.GetAccountByID(userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Success: true,
		Message: "OK",
		User: map[string]interface{}{
			"id":         account.ID.String(),
			"username":   account.Username,
			"email":      account.Email,
			"image_file": account.ImageFile,
			"created_at": account.CreatedAt,
		},
	})
}
