package models

// SuccessResponse is the envelope for successful API responses
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorResponse is the envelope for failed API responses
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

// ErrorBody carries the machine-readable error code and its details
type ErrorBody struct {
	Code    string       `json:"code"`
	Details ErrorDetails `json:"details"`
}

// ErrorDetails holds the human-readable message and optional field errors
type ErrorDetails struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
	Stack   string       `json:"stack,omitempty"` // non-production only
}

// FieldError identifies a single invalid field in a request body
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewErrorResponse builds an error envelope with the given code and message
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error: ErrorBody{
			Code:    code,
			Details: ErrorDetails{Message: message},
		},
	}
}
