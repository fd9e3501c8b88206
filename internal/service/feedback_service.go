package service

import (
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"teammate-feedback/internal/models"
	"teammate-feedback/internal/repository"
)

// AnonymousUserID is recorded as the capturing user when a submission reaches
// the workflow without an authenticated caller.
const AnonymousUserID = "anonymous"

// FeedbackService orchestrates the feedback review workflow: merging the
// question catalog with existing answers on read, and the transactional
// review+answers writes with ownership checks on update and delete.
type FeedbackService struct {
	db           *sql.DB
	teammateRepo *repository.TeammateRepository
	catalogRepo  *repository.CatalogRepository
	reviewRepo   *repository.ReviewRepository
}

// NewFeedbackService creates a new feedback service
func NewFeedbackService(
	db *sql.DB,
	teammateRepo *repository.TeammateRepository,
	catalogRepo *repository.CatalogRepository,
	reviewRepo *repository.ReviewRepository,
) *FeedbackService {
	return &FeedbackService{
		db:           db,
		teammateRepo: teammateRepo,
		catalogRepo:  catalogRepo,
		reviewRepo:   reviewRepo,
	}
}

// GetForm builds the feedback form for a teammate: every category with its
// questions, merged with the answers of a resolved review. The review is
// resolved from the explicit reviewID when given, otherwise from the caller's
// latest review for this teammate. Without either, every answer is absent.
func (s *FeedbackService) GetForm(teammateID int, reviewID *int, userID string) (*models.FeedbackForm, error) {
	teammate, err := s.teammateRepo.GetByID(teammateID)
	if err != nil {
		return nil, err
	}
	if teammate == nil {
		return nil, ErrTeammateNotFound
	}

	catalog, err := s.catalogRepo.GetCategoriesWithQuestions()
	if err != nil {
		return nil, err
	}

	var resolvedID *int
	switch {
	case reviewID != nil:
		resolvedID = reviewID
	case userID != "":
		latest, err := s.reviewRepo.GetLatestForUser(teammateID, userID)
		if err != nil {
			return nil, err
		}
		if latest != nil {
			resolvedID = &latest.ID
		}
	}

	answersByQuestion := map[int]models.Answer{}
	if resolvedID != nil {
		answers, err := s.reviewRepo.GetAnswers(*resolvedID)
		if err != nil {
			return nil, err
		}
		for _, answer := range answers {
			if answer.QuestionID != nil {
				answersByQuestion[*answer.QuestionID] = answer
			}
		}
	}

	form := &models.FeedbackForm{
		Teammate: *teammate,
		Feedback: []models.FeedbackGroup{},
		ReviewID: resolvedID,
	}

	for _, node := range catalog {
		group := models.FeedbackGroup{
			Category:  node.Category,
			Questions: []models.FeedbackQuestion{},
		}
		for _, question := range node.Questions {
			fq := models.FeedbackQuestion{
				ID:   question.ID,
				Text: question.Text,
			}
			if answer, ok := answersByQuestion[question.ID]; ok {
				fq.Answer = &models.FeedbackAnswer{
					Value:   answer.Value,
					Comment: answer.CommentText,
				}
			}
			group.Questions = append(group.Questions, fq)
		}
		form.Feedback = append(form.Feedback, group)
	}

	return form, nil
}

// Submit creates a new review with its answers in one transaction and returns
// the new review's id. Question entries without an answer are skipped.
func (s *FeedbackService) Submit(teammateID int, userID string, req *models.SubmitFeedbackRequest) (int, error) {
	if userID == "" {
		userID = AnonymousUserID
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer rollback(tx)

	exists, err := s.teammateRepo.Exists(tx, teammateID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, ErrTeammateNotFound
	}

	review := &models.Review{
		CapturingUserID: userID,
		Period:          currentPeriod(),
		TeammateID:      &teammateID,
	}
	if err := s.reviewRepo.Create(tx, review); err != nil {
		return 0, err
	}

	if err := s.insertAnswers(tx, review.ID, req); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return review.ID, nil
}

// Update replaces every answer of an owned review in one transaction. The
// existing answer set is deleted and the submitted set inserted; answers are
// never merged.
func (s *FeedbackService) Update(teammateID, reviewID int, userID string, req *models.SubmitFeedbackRequest) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer rollback(tx)

	review, err := s.reviewRepo.GetOwned(tx, reviewID, teammateID, userID)
	if err != nil {
		return err
	}
	if review == nil {
		return ErrReviewNotFound
	}

	if err := s.reviewRepo.DeleteAnswers(tx, review.ID); err != nil {
		return err
	}

	if err := s.insertAnswers(tx, review.ID, req); err != nil {
		return err
	}

	return tx.Commit()
}

// Delete removes an owned review and its answers in one transaction
func (s *FeedbackService) Delete(teammateID, reviewID int, userID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer rollback(tx)

	review, err := s.reviewRepo.GetOwned(tx, reviewID, teammateID, userID)
	if err != nil {
		return err
	}
	if review == nil {
		return ErrReviewNotFound
	}

	// Answers first, then the review
	if err := s.reviewRepo.DeleteAnswers(tx, review.ID); err != nil {
		return err
	}
	if err := s.reviewRepo.Delete(tx, review.ID); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *FeedbackService) insertAnswers(tx *sql.Tx, reviewID int, req *models.SubmitFeedbackRequest) error {
	for _, group := range req.Feedback {
		for _, question := range group.Questions {
			if question.Answer == nil {
				continue
			}
			questionID := question.ID
			answer := &models.Answer{
				Value:       *question.Answer.Value,
				CommentText: question.Answer.Comment,
				ReviewID:    &reviewID,
				QuestionID:  &questionID,
			}
			if err := s.reviewRepo.CreateAnswer(tx, answer); err != nil {
				return err
			}
		}
	}
	return nil
}

// currentPeriod returns the current year-month, e.g. "2026-09"
func currentPeriod() string {
	return time.Now().Format("2006-01")
}

// rollback is a no-op once the transaction committed
func rollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		slog.Error("Failed to rollback transaction", "error", err)
	}
}
