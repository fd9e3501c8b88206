package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"

	"teammate-feedback/internal/models"
)

// Recovery converts handler panics into the JSON error envelope instead of
// letting net/http kill the connection. Outside production the response
// carries the stack trace; the log always does.
func Recovery(env string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				stack := string(debug.Stack())
				slog.Error("Panic recovered",
					"error", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", stack,
				)

				resp := models.NewErrorResponse("INTERNAL_SERVER_ERROR", "An unexpected error occurred")
				if env != "production" {
					resp.Error.Details.Stack = stack
				}

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				if err := json.NewEncoder(w).Encode(resp); err != nil {
					slog.Error("Failed to write panic response", "error", err)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
