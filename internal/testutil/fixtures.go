package testutil

import (
	"database/sql"
	"testing"

	"teammate-feedback/internal/models"
)

// Fixtures holds test data
type Fixtures struct {
	DB         *sql.DB
	Teammate   *models.Teammate
	Categories []models.CategoryWithQuestions
}

// SetupFixtures creates a teammate and loads the seeded question catalog
func SetupFixtures(t *testing.T, db *sql.DB) *Fixtures {
	t.Helper()

	fixtures := &Fixtures{
		DB: db,
	}

	fixtures.Teammate = createTeammate(t, db, "Alice Example")
	fixtures.Categories = loadCatalog(t, db)

	return fixtures
}

// Cleanup removes review data created during a test, keeping the seeded catalog
func (f *Fixtures) Cleanup(t *testing.T) {
	t.Helper()

	if _, err := f.DB.Exec("DELETE FROM answers"); err != nil {
		t.Errorf("Failed to clean up answers: %v", err)
	}
	if _, err := f.DB.Exec("DELETE FROM reviews"); err != nil {
		t.Errorf("Failed to clean up reviews: %v", err)
	}
}

// CreateTeammate creates an additional teammate for a test
func (f *Fixtures) CreateTeammate(t *testing.T, name string) *models.Teammate {
	t.Helper()
	return createTeammate(t, f.DB, name)
}

// CreateReview inserts a review directly for tests that need existing data
func (f *Fixtures) CreateReview(t *testing.T, teammateID int, userID, period string) *models.Review {
	t.Helper()

	var review models.Review
	err := f.DB.QueryRow(`
		INSERT INTO reviews (capturing_user_id, period, teammate_id)
		VALUES ($1, $2, $3)
		RETURNING id, capturing_user_id, period, teammate_id, created_at, updated_at
	`, userID, period, teammateID).Scan(
		&review.ID, &review.CapturingUserID, &review.Period,
		&review.TeammateID, &review.CreatedAt, &review.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("Failed to create review: %v", err)
	}

	return &review
}

// CreateAnswer inserts an answer row for an existing review
func (f *Fixtures) CreateAnswer(t *testing.T, reviewID, questionID, value int, comment string) *models.Answer {
	t.Helper()

	var answer models.Answer
	err := f.DB.QueryRow(`
		INSERT INTO answers (answer, comment_text, review_id, question_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, answer, comment_text, review_id, question_id, created_at, updated_at
	`, value, comment, reviewID, questionID).Scan(
		&answer.ID, &answer.Value, &answer.CommentText,
		&answer.ReviewID, &answer.QuestionID, &answer.CreatedAt, &answer.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("Failed to create answer: %v", err)
	}

	return &answer
}

// CountAnswers returns the number of answer rows for a review
func (f *Fixtures) CountAnswers(t *testing.T, reviewID int) int {
	t.Helper()

	var count int
	if err := f.DB.QueryRow("SELECT COUNT(*) FROM answers WHERE review_id = $1", reviewID).Scan(&count); err != nil {
		t.Fatalf("Failed to count answers: %v", err)
	}

	return count
}

// createTeammate creates a teammate in the database
func createTeammate(t *testing.T, db *sql.DB, name string) *models.Teammate {
	t.Helper()

	var teammate models.Teammate
	err := db.QueryRow(`
		INSERT INTO teammates (name)
		VALUES ($1)
		RETURNING id, name, created_at, updated_at
	`, name).Scan(&teammate.ID, &teammate.Name, &teammate.CreatedAt, &teammate.UpdatedAt)
	if err != nil {
		t.Fatalf("Failed to create teammate %s: %v", name, err)
	}

	return &teammate
}

// loadCatalog reads the seeded categories and questions
func loadCatalog(t *testing.T, db *sql.DB) []models.CategoryWithQuestions {
	t.Helper()

	rows, err := db.Query(`
		SELECT c.id, c.name, q.id, q.question_text
		FROM categories c
		LEFT JOIN questions q ON q.category_id = c.id
		ORDER BY c.id, q.id
	`)
	if err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}
	defer rows.Close()

	categories := []models.CategoryWithQuestions{}
	var current *models.CategoryWithQuestions

	for rows.Next() {
		var categoryID int
		var categoryName string
		var questionID sql.NullInt64
		var questionText sql.NullString

		if err := rows.Scan(&categoryID, &categoryName, &questionID, &questionText); err != nil {
			t.Fatalf("Failed to scan catalog row: %v", err)
		}

		if current == nil || current.Category.ID != categoryID {
			categories = append(categories, models.CategoryWithQuestions{
				Category:  models.Category{ID: categoryID, Name: categoryName},
				Questions: []models.Question{},
			})
			current = &categories[len(categories)-1]
		}

		if questionID.Valid {
			catID := categoryID
			current.Questions = append(current.Questions, models.Question{
				ID:         int(questionID.Int64),
				Text:       questionText.String,
				CategoryID: &catID,
			})
		}
	}

	if err := rows.Err(); err != nil {
		t.Fatalf("Failed to iterate catalog rows: %v", err)
	}

	return categories
}
