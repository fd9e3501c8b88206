package service

import "errors"

var (
	// ErrTeammateNotFound means the referenced teammate does not exist
	ErrTeammateNotFound = errors.New("teammate not found")

	// ErrReviewNotFound means no review matched the id, teammate and calling
	// user. Callers cannot tell a missing review from someone else's review;
	// that ambiguity is deliberate.
	ErrReviewNotFound = errors.New("feedback not found or unauthorized")
)
