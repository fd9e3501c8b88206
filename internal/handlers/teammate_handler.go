package handlers

import (
	"net/http"

	"teammate-feedback/internal/models"
	"teammate-feedback/internal/service"
)

// TeammateHandler handles teammate registry requests
type TeammateHandler struct {
	teammateService *service.TeammateService
}

// NewTeammateHandler creates a new teammate handler
func NewTeammateHandler(teammateService *service.TeammateService) *TeammateHandler {
	return &TeammateHandler{teammateService: teammateService}
}

// Create creates a new teammate
// @Summary Create teammate
// @Description Create a new teammate to collect feedback on
// @Tags Teammates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body models.CreateTeammateRequest true "Teammate data"
// @Success 201 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse "Validation error"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /teammates [post]
func (h *TeammateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTeammateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	teammate, err := h.teammateService.Create(req.Teammate.Name)
	if err != nil {
		respondError(w, http.StatusBadRequest, "CREATE_TEAMMATE_ERROR", err.Error())
		return
	}

	respondData(w, http.StatusCreated, map[string]interface{}{
		"teammate": teammate,
	})
}

// List retrieves all teammates
// @Summary List teammates
// @Description Get all teammates ordered by name
// @Tags Teammates
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.SuccessResponse
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /teammates [get]
func (h *TeammateHandler) List(w http.ResponseWriter, r *http.Request) {
	teammates, err := h.teammateService.List()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "GET_TEAMMATES_ERROR", err.Error())
		return
	}

	respondData(w, http.StatusOK, map[string]interface{}{
		"teammates": teammates,
	})
}
