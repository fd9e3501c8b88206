package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"teammate-feedback/internal/models"
)

// validate holds the shared validator instance. Field names in error paths
// come from json tags so clients see "teammate.name", not "Teammate.Name".
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to write response", "error", err)
	}
}

// respondData sends the success envelope with a data payload
func respondData(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, models.SuccessResponse{Success: true, Data: data})
}

// respondMessage sends the success envelope with a confirmation message
func respondMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.SuccessResponse{Success: true, Message: message})
}

// respondError sends the error envelope
func respondError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, models.NewErrorResponse(code, message))
}

// respondValidationError sends a 400 VALIDATION_ERROR with field-level errors
func respondValidationError(w http.ResponseWriter, message string, fieldErrors []models.FieldError) {
	writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
		Success: false,
		Error: models.ErrorBody{
			Code: "VALIDATION_ERROR",
			Details: models.ErrorDetails{
				Message: message,
				Errors:  fieldErrors,
			},
		},
	})
}

// decodeAndValidate decodes the request body into dst and validates it.
// On failure it writes the validation error response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			respondValidationError(w, "Invalid request data", []models.FieldError{
				{Field: typeErr.Field, Message: fmt.Sprintf("Expected %s", typeErr.Type)},
			})
			return false
		}
		respondValidationError(w, "Invalid request data", nil)
		return false
	}

	if err := validate.Struct(dst); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			fieldErrors := make([]models.FieldError, 0, len(validationErrs))
			for _, fe := range validationErrs {
				fieldErrors = append(fieldErrors, models.FieldError{
					Field:   fieldPath(fe),
					Message: fieldMessage(fe),
				})
			}
			respondValidationError(w, "Invalid request data", fieldErrors)
			return false
		}
		respondValidationError(w, "Validation failed", nil)
		return false
	}

	return true
}

// fieldPath strips the root struct name from the validator namespace,
// yielding paths like "teammate.name" or "feedback[0].categoryId"
func fieldPath(fe validator.FieldError) string {
	if _, path, ok := strings.Cut(fe.Namespace(), "."); ok {
		return path
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return fmt.Sprintf("At least %s entry is required", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("Failed %s validation", fe.Tag())
	}
}
