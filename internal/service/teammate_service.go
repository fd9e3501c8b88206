package service

import (
	"fmt"

	"teammate-feedback/internal/models"
	"teammate-feedback/internal/repository"
)

// TeammateService handles the teammate registry
type TeammateService struct {
	teammateRepo *repository.TeammateRepository
}

// NewTeammateService creates a new teammate service
func NewTeammateService(teammateRepo *repository.TeammateRepository) *TeammateService {
	return &TeammateService{teammateRepo: teammateRepo}
}

// Create persists a new teammate. Teammates are immutable once created; there
// is no update or delete.
func (s *TeammateService) Create(name string) (*models.Teammate, error) {
	if name == "" {
		return nil, fmt.Errorf("teammate name is required")
	}

	teammate := &models.Teammate{Name: name}
	if err := s.teammateRepo.Create(teammate); err != nil {
		return nil, err
	}

	return teammate, nil
}

// List retrieves all teammates ordered by name
func (s *TeammateService) List() ([]models.Teammate, error) {
	return s.teammateRepo.GetAll()
}
