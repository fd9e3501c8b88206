package models

// CreateTeammateRequest is the body of POST /api/teammates
type CreateTeammateRequest struct {
	Teammate TeammateInput `json:"teammate" validate:"required"`
}

// TeammateInput carries the fields of a new teammate
type TeammateInput struct {
	Name string `json:"name" validate:"required,max=255"`
}

// SubmitFeedbackRequest is the body of feedback submit and update calls
type SubmitFeedbackRequest struct {
	Feedback []CategoryFeedbackInput `json:"feedback" validate:"required,min=1,dive"`
}

// CategoryFeedbackInput groups the submitted answers of one category. The
// questions key must be present; an empty list is fine.
type CategoryFeedbackInput struct {
	CategoryID int                     `json:"categoryId" validate:"required,gt=0"`
	Questions  []QuestionFeedbackInput `json:"questions" validate:"required,dive"`
}

// QuestionFeedbackInput is one question entry; entries without an answer are
// skipped on write
type QuestionFeedbackInput struct {
	ID     int          `json:"id" validate:"required,gt=0"`
	Answer *AnswerInput `json:"answer,omitempty"`
}

// AnswerInput is a submitted answer. Value is the closed enum {-1, 0, 1} and
// must be sent explicitly; a pointer keeps a missing value distinguishable
// from a legitimate 0 ("not sure").
type AnswerInput struct {
	Value   *int   `json:"value" validate:"required,oneof=-1 0 1"`
	Comment string `json:"comment" validate:"required"`
}
