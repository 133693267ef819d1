package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/mindhaven/mindhaven-backend/internal/middleware"
	"github.com/mindhaven/mindhaven-backend/internal/services"
	"github.com/mindhaven/mindhaven-backend/internal/store"
)

// maxProfileImageSize limits profile uploads to 5 MB.
const maxProfileImageSize = 5 << 20

// ProfileHandler serves profile endpoints that need the Cloudinary client.
type ProfileHandler struct {
	Cloudinary *services.CloudinaryService
}

func NewProfileHandler(cloudinary *services.CloudinaryService) *ProfileHandler {
	return &ProfileHandler{Cloudinary: cloudinary}
}

// UploadImage replaces the authenticated user's profile image.
func (h *ProfileHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, AuthResponse{Success: false, Message: "Authentication required"})
		return
	}

	if h.Cloudinary == nil {
		writeJSON(w, http.StatusServiceUnavailable, AuthResponse{Success: false, Message: "Image uploads are not configured"})
		return
	}

	if err := r.ParseMultipartForm(maxProfileImageSize); err != nil {
		writeBadRequest(w, "Invalid multipart form")
		return
	}

	fileHeader := firstFileHeader(r, "image")
	if fileHeader == nil {
		writeBadRequest(w, "An image file is required")
		return
	}

	imageURL, err := h.Cloudinary.UploadFileFromHeader(r.Context(), fileHeader, "profile_images")
	if err != nil {
		writeJSON(w, http.StatusBadGateway, AuthResponse{Success: false, Message: "Image upload failed"})
		return
	}

	if err := store.UpdateAccountImage(userID, imageURL); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"message":    "Profile image updated.",
		"image_file": imageURL,
	})
}

func firstFileHeader(r *http.Request, field string) *multipart.FileHeader {
	if r.MultipartForm == nil {
		return nil
	}
	headers := r.MultipartForm.File[field]
	if len(headers) == 0 {
		return nil
	}
	return headers[0]
}
