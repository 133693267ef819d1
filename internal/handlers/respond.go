package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/mindhaven/mindhaven-backend/internal/apperror"
)

// writeJSON renders v with the given status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps an error through the apperror taxonomy to a
// {success:false, message} response. Unauthorized responses deliberately
// carry no record content. Unexpected errors are logged and collapsed to
// a generic message.
func writeError(w http.ResponseWriter, err error) {
	if appErr, ok := apperror.FromError(err); ok {
		if appErr.Type == apperror.InternalError {
			log.Printf("internal error: %v", appErr)
			writeJSON(w, appErr.StatusCode(), map[string]interface{}{
				"success": false,
				"message": "Something went wrong",
			})
			return
		}
		writeJSON(w, appErr.StatusCode(), map[string]interface{}{
			"success": false,
			"message": appErr.Message,
		})
		return
	}

	log.Printf("unhandled error: %v", err)
	writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
		"success": false,
		"message": "Something went wrong",
	})
}

// writeBadRequest reports a malformed request body.
func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, map[string]interface{}{
		"success": false,
		"message": message,
	})
}
