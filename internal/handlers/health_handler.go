package handlers

import (
	"net/http"
	"time"

	"teammate-feedback/internal/database"
)

// HealthHandler reports service and database health
type HealthHandler struct {
	db  *database.Database
	env string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *database.Database, env string) *HealthHandler {
	return &HealthHandler{db: db, env: env}
}

// Check returns the current service health
// @Summary Health check
// @Description Check service and database availability
// @Tags Health
// @Produce json
// @Success 200 {object} models.SuccessResponse
// @Failure 503 {object} models.ErrorResponse "Service unavailable"
// @Router /health [get]
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.db.HealthCheck(); err != nil {
		respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Database is not reachable")
		return
	}

	respondData(w, http.StatusOK, map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": h.env,
	})
}
