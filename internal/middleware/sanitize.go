package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"teammate-feedback/internal/sanitize"
)

// SanitizeBody escapes and trims every string in a JSON request body before
// the handler sees it. The body itself decides: anything that parses as JSON
// is sanitized no matter what Content-Type the client declared, so a header
// cannot smuggle raw strings past the escaping. Bodies that are not JSON pass
// through untouched; handlers report their own decode errors.
func SanitizeBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || !hasBody(r) {
			next.ServeHTTP(w, r)
			return
		}

		raw, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Unable to read request body")
			return
		}
		_ = r.Body.Close()

		if len(bytes.TrimSpace(raw)) == 0 {
			r.Body = io.NopCloser(bytes.NewReader(raw))
			next.ServeHTTP(w, r)
			return
		}

		var decoded interface{}
		if err := json.Unmarshal(raw, &decoded); err != nil {
			// Leave malformed JSON to the handler's decoder
			r.Body = io.NopCloser(bytes.NewReader(raw))
			next.ServeHTTP(w, r)
			return
		}

		clean, err := json.Marshal(sanitize.Value(decoded))
		if err != nil {
			writeError(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Failed to sanitize request body")
			return
		}

		r.Body = io.NopCloser(bytes.NewReader(clean))
		r.ContentLength = int64(len(clean))
		next.ServeHTTP(w, r)
	})
}

func hasBody(r *http.Request) bool {
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	default:
		return false
	}
}
