package repository

import (
	"database/sql"

	"teammate-feedback/internal/models"
)

// CatalogRepository reads the seeded question catalog (categories and their
// questions). The catalog is static reference data; nothing here writes.
type CatalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// GetCategoriesWithQuestions retrieves the full catalog tree, ordered by
// category then question.
func (r *CatalogRepository) GetCategoriesWithQuestions() ([]models.CategoryWithQuestions, error) {
	query := `
		SELECT c.id, c.name, q.id, q.question_text
		FROM categories c
		LEFT JOIN questions q ON q.category_id = c.id
		ORDER BY c.id ASC, q.id ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	catalog := []models.CategoryWithQuestions{}
	var current *models.CategoryWithQuestions

	for rows.Next() {
		var (
			categoryID   int
			categoryName string
			questionID   sql.NullInt64
			questionText sql.NullString
		)
		if err := rows.Scan(&categoryID, &categoryName, &questionID, &questionText); err != nil {
			return nil, err
		}

		if current == nil || current.Category.ID != categoryID {
			catalog = append(catalog, models.CategoryWithQuestions{
				Category:  models.Category{ID: categoryID, Name: categoryName},
				Questions: []models.Question{},
			})
			current = &catalog[len(catalog)-1]
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

	return catalog, rows.Err()
}
