package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"teammate-feedback/internal/models"
)

// writeError sends the standard JSON error envelope
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(models.NewErrorResponse(code, message)); err != nil {
		slog.Error("Failed to write error response", "error", err)
	}
}
