package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"teammate-feedback/internal/middleware"
	"teammate-feedback/internal/models"
	"teammate-feedback/internal/service"
)

// FeedbackHandler handles the feedback review workflow requests
type FeedbackHandler struct {
	feedbackService *service.FeedbackService
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(feedbackService *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// Get retrieves the feedback form for a teammate
// @Summary Get feedback form
// @Description Get all categories and questions for a teammate, merged with existing answers when a review is resolved
// @Tags Feedback
// @Produce json
// @Security BearerAuth
// @Param teammateId path int true "Teammate ID"
// @Param reviewId query int false "Review ID to load answers from"
// @Success 200 {object} models.SuccessResponse
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Teammate not found"
// @Router /feedback/{teammateId} [get]
func (h *FeedbackHandler) Get(w http.ResponseWriter, r *http.Request) {
	teammateID, ok := pathID(w, r, "teammateId", "Invalid teammate id")
	if !ok {
		return
	}

	var reviewID *int
	if raw := r.URL.Query().Get("reviewId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			respondValidationError(w, "Invalid query parameters", []models.FieldError{
				{Field: "reviewId", Message: "Must be a positive integer"},
			})
			return
		}
		reviewID = &id
	}

	userID, _ := middleware.GetUserID(r)

	form, err := h.feedbackService.GetForm(teammateID, reviewID, userID)
	if err != nil {
		if errors.Is(err, service.ErrTeammateNotFound) {
			respondError(w, http.StatusNotFound, "TEAMMATE_NOT_FOUND", "Teammate not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "GET_FEEDBACK_ERROR", err.Error())
		return
	}

	respondData(w, http.StatusOK, form)
}

// Submit creates a new review with answers for a teammate
// @Summary Submit feedback
// @Description Create a review with the submitted answers in one transaction
// @Tags Feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param teammateId path int true "Teammate ID"
// @Param body body models.SubmitFeedbackRequest true "Feedback data"
// @Success 201 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse "Validation error"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Teammate not found"
// @Router /feedback/{teammateId} [post]
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	teammateID, ok := pathID(w, r, "teammateId", "Invalid teammate id")
	if !ok {
		return
	}

	var req models.SubmitFeedbackRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	userID, _ := middleware.GetUserID(r)

	reviewID, err := h.feedbackService.Submit(teammateID, userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrTeammateNotFound) {
			respondError(w, http.StatusNotFound, "TEAMMATE_NOT_FOUND", "Teammate not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "SUBMIT_FEEDBACK_ERROR", err.Error())
		return
	}

	respondData(w, http.StatusCreated, map[string]interface{}{
		"reviewId": reviewID,
	})
}

// Update replaces every answer of an existing review
// @Summary Update feedback
// @Description Replace the answer set of an owned review in one transaction
// @Tags Feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param teammateId path int true "Teammate ID"
// @Param reviewId path int true "Review ID"
// @Param body body models.SubmitFeedbackRequest true "Feedback data"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse "Validation error"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Review not found"
// @Router /feedback/{teammateId}/{reviewId} [put]
func (h *FeedbackHandler) Update(w http.ResponseWriter, r *http.Request) {
	teammateID, ok := pathID(w, r, "teammateId", "Invalid teammate id")
	if !ok {
		return
	}
	reviewID, ok := pathID(w, r, "reviewId", "Invalid review id")
	if !ok {
		return
	}

	var req models.SubmitFeedbackRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	userID, _ := middleware.GetUserID(r)

	if err := h.feedbackService.Update(teammateID, reviewID, userID, &req); err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			respondError(w, http.StatusNotFound, "REVIEW_NOT_FOUND", "Feedback not found or unauthorized")
			return
		}
		respondError(w, http.StatusInternalServerError, "UPDATE_FEEDBACK_ERROR", err.Error())
		return
	}

	respondData(w, http.StatusOK, map[string]interface{}{
		"reviewId": reviewID,
	})
}

// Delete removes a review and its answers
// @Summary Delete feedback
// @Description Delete an owned review and all of its answers in one transaction
// @Tags Feedback
// @Produce json
// @Security BearerAuth
// @Param teammateId path int true "Teammate ID"
// @Param reviewId path int true "Review ID"
// @Success 200 {object} models.SuccessResponse
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Review not found"
// @Router /feedback/{teammateId}/{reviewId} [delete]
func (h *FeedbackHandler) Delete(w http.ResponseWriter, r *http.Request) {
	teammateID, ok := pathID(w, r, "teammateId", "Invalid teammate id")
	if !ok {
		return
	}
	reviewID, ok := pathID(w, r, "reviewId", "Invalid review id")
	if !ok {
		return
	}

	userID, _ := middleware.GetUserID(r)

	if err := h.feedbackService.Delete(teammateID, reviewID, userID); err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			respondError(w, http.StatusNotFound, "REVIEW_NOT_FOUND", "Feedback not found or unauthorized")
			return
		}
		respondError(w, http.StatusInternalServerError, "DELETE_FEEDBACK_ERROR", err.Error())
		return
	}

	respondMessage(w, http.StatusOK, "Feedback deleted successfully")
}

// pathID parses a positive integer path value, writing a validation error on
// failure
func pathID(w http.ResponseWriter, r *http.Request, name, message string) (int, bool) {
	id, err := strconv.Atoi(r.PathValue(name))
	if err != nil || id <= 0 {
		respondValidationError(w, message, []models.FieldError{
			{Field: name, Message: "Must be a positive integer"},
		})
		return 0, false
	}
	return id, true
}
