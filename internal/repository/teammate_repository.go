package repository

import (
	"database/sql"
	"errors"

	"teammate-feedback/internal/models"
)

// TeammateRepository handles database operations for teammates
type TeammateRepository struct {
	db *sql.DB
}

// NewTeammateRepository creates a new teammate repository
func NewTeammateRepository(db *sql.DB) *TeammateRepository {
	return &TeammateRepository{db: db}
}

// Create persists a new teammate
func (r *TeammateRepository) Create(teammate *models.Teammate) error {
	query := `
		INSERT INTO teammates (name)
		VALUES ($1)
		RETURNING id, created_at, updated_at
	`

	return r.db.QueryRow(query, teammate.Name).Scan(
		&teammate.ID,
		&teammate.CreatedAt,
		&teammate.UpdatedAt,
	)
}

// GetByID retrieves a teammate by ID, or nil when none exists
func (r *TeammateRepository) GetByID(id int) (*models.Teammate, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM teammates
		WHERE id = $1
	`

	teammate := &models.Teammate{}
	err := r.db.QueryRow(query, id).Scan(
		&teammate.ID,
		&teammate.Name,
		&teammate.CreatedAt,
		&teammate.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	return teammate, err
}

// Exists reports whether a teammate exists, inside the given transaction
func (r *TeammateRepository) Exists(tx *sql.Tx, id int) (bool, error) {
	var exists bool
	err := tx.QueryRow(`SELECT EXISTS (SELECT 1 FROM teammates WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

// GetAll retrieves all teammates ordered by name
func (r *TeammateRepository) GetAll() ([]models.Teammate, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM teammates
		ORDER BY name ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teammates := []models.Teammate{} // Initialize to empty slice instead of nil
	for rows.Next() {
		var teammate models.Teammate
		err := rows.Scan(
			&teammate.ID,
			&teammate.Name,
			&teammate.CreatedAt,
			&teammate.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		teammates = append(teammates, teammate)
	}

	return teammates, rows.Err()
}
