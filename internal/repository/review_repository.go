package repository

import (
	"database/sql"
	"errors"

	"teammate-feedback/internal/models"
)

// ReviewRepository handles database operations for reviews and their answers.
// Write operations take the transaction they must run in; the feedback
// workflow owns transaction boundaries.
type ReviewRepository struct {
	db *sql.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create inserts a new review inside the given transaction
func (r *ReviewRepository) Create(tx *sql.Tx, review *models.Review) error {
	query := `
		INSERT INTO reviews (capturing_user_id, period, teammate_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	return tx.QueryRow(query, review.CapturingUserID, review.Period, review.TeammateID).Scan(
		&review.ID,
		&review.CreatedAt,
		&review.UpdatedAt,
	)
}

// GetOwned retrieves a review by id scoped to a teammate and the capturing
// user, inside the given transaction. Returns nil when no such review exists —
// whether because the id is wrong, the teammate doesn't match, or the review
// belongs to someone else.
func (r *ReviewRepository) GetOwned(tx *sql.Tx, id, teammateID int, userID string) (*models.Review, error) {
	query := `
		SELECT id, capturing_user_id, period, teammate_id, created_at, updated_at
		FROM reviews
		WHERE id = $1 AND teammate_id = $2 AND capturing_user_id = $3
	`

	review := &models.Review{}
	err := tx.QueryRow(query, id, teammateID, userID).Scan(
		&review.ID,
		&review.CapturingUserID,
		&review.Period,
		&review.TeammateID,
		&review.CreatedAt,
		&review.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	return review, err
}

// GetLatestForUser retrieves the most recent review the given user captured
// for a teammate, or nil when none exists.
func (r *ReviewRepository) GetLatestForUser(teammateID int, userID string) (*models.Review, error) {
	query := `
		SELECT id, capturing_user_id, period, teammate_id, created_at, updated_at
		FROM reviews
		WHERE teammate_id = $1 AND capturing_user_id = $2
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`

	review := &models.Review{}
	err := r.db.QueryRow(query, teammateID, userID).Scan(
		&review.ID,
		&review.CapturingUserID,
		&review.Period,
		&review.TeammateID,
		&review.CreatedAt,
		&review.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	return review, err
}

// Delete removes a review inside the given transaction. Answers must be
// deleted first; the caller owns the ordering.
func (r *ReviewRepository) Delete(tx *sql.Tx, reviewID int) error {
	_, err := tx.Exec(`DELETE FROM reviews WHERE id = $1`, reviewID)
	return err
}

// CreateAnswer inserts one answer inside the given transaction
func (r *ReviewRepository) CreateAnswer(tx *sql.Tx, answer *models.Answer) error {
	query := `
		INSERT INTO answers (answer, comment_text, review_id, question_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	return tx.QueryRow(query, answer.Value, answer.CommentText, answer.ReviewID, answer.QuestionID).Scan(
		&answer.ID,
		&answer.CreatedAt,
		&answer.UpdatedAt,
	)
}

// DeleteAnswers removes every answer of a review inside the given transaction
func (r *ReviewRepository) DeleteAnswers(tx *sql.Tx, reviewID int) error {
	_, err := tx.Exec(`DELETE FROM answers WHERE review_id = $1`, reviewID)
	return err
}

// GetAnswers retrieves all answers of a review
func (r *ReviewRepository) GetAnswers(reviewID int) ([]models.Answer, error) {
	query := `
		SELECT id, answer, comment_text, review_id, question_id, created_at, updated_at
		FROM answers
		WHERE review_id = $1
		ORDER BY id ASC
	`

	rows, err := r.db.Query(query, reviewID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	answers := []models.Answer{}
	for rows.Next() {
		var answer models.Answer
		err := rows.Scan(
			&answer.ID,
			&answer.Value,
			&answer.CommentText,
			&answer.ReviewID,
			&answer.QuestionID,
			&answer.CreatedAt,
			&answer.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		answers = append(answers, answer)
	}

	return answers, rows.Err()
}
