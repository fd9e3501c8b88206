package models

import (
	"time"
)

// Answer values form a closed enum: yes / not sure / no.
const (
	AnswerNo      = -1
	AnswerNotSure = 0
	AnswerYes     = 1
)

// Teammate represents a person being reviewed
type Teammate struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"-" db:"created_at"`
	UpdatedAt time.Time `json:"-" db:"updated_at"`
}

// Category groups related questions (e.g. Communication)
type Category struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"-" db:"created_at"`
	UpdatedAt time.Time `json:"-" db:"updated_at"`
}

// Question is a fixed, seeded prompt belonging to one category
type Question struct {
	ID         int       `json:"id" db:"id"`
	Text       string    `json:"text" db:"question_text"`
	CategoryID *int      `json:"categoryId,omitempty" db:"category_id"`
	CreatedAt  time.Time `json:"-" db:"created_at"`
	UpdatedAt  time.Time `json:"-" db:"updated_at"`
}

// Review is one feedback pass by one user on one teammate for one period
type Review struct {
	ID              int       `json:"id" db:"id"`
	CapturingUserID string    `json:"capturingUserId" db:"capturing_user_id"`
	Period          string    `json:"period" db:"period"` // YYYY-MM
	TeammateID      *int      `json:"teammateId,omitempty" db:"teammate_id"`
	CreatedAt       time.Time `json:"-" db:"created_at"`
	UpdatedAt       time.Time `json:"-" db:"updated_at"`
}

// Answer is one question's response within a review
type Answer struct {
	ID          int       `json:"id" db:"id"`
	Value       int       `json:"value" db:"answer"`
	CommentText string    `json:"comment" db:"comment_text"`
	ReviewID    *int      `json:"reviewId,omitempty" db:"review_id"`
	QuestionID  *int      `json:"questionId,omitempty" db:"question_id"`
	CreatedAt   time.Time `json:"-" db:"created_at"`
	UpdatedAt   time.Time `json:"-" db:"updated_at"`
}

// CategoryWithQuestions is one node of the question catalog tree
type CategoryWithQuestions struct {
	Category  Category
	Questions []Question
}

// FeedbackAnswer is the answer payload inside a feedback form response
type FeedbackAnswer struct {
	Value   int    `json:"value"`
	Comment string `json:"comment"`
}

// FeedbackQuestion is one question in a feedback form, with the caller's
// existing answer when one exists
type FeedbackQuestion struct {
	ID     int             `json:"id"`
	Text   string          `json:"text"`
	Answer *FeedbackAnswer `json:"answer,omitempty"`
}

// FeedbackGroup is one category's slice of a feedback form
type FeedbackGroup struct {
	Category  Category           `json:"category"`
	Questions []FeedbackQuestion `json:"questions"`
}

// FeedbackForm is the full feedback form for a teammate, merged with the
// answers of a resolved review when one was found
type FeedbackForm struct {
	Teammate Teammate        `json:"teammate"`
	Feedback []FeedbackGroup `json:"feedback"`
	ReviewID *int            `json:"reviewId,omitempty"`
}
