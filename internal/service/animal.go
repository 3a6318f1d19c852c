package service

import (
	"fmt"
	"time"

	"pawbase-backend/internal/auth"
	"pawbase-backend/internal/database/models"
	apperrors "pawbase-backend/internal/errors"
	"pawbase-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// AnimalService handles business logic for animals. Writes and tenant reads
// are guarded by the caller's shelter scope; the public search is the one
// unauthenticated read and only ever exposes available animals.
type AnimalService struct {
	repo      repository.AnimalRepositoryInterface
	scopes    *auth.ScopeResolver
	validator *validator.Validate
}

// NewAnimalService creates a new animal service
func NewAnimalService(repo repository.AnimalRepositoryInterface, scopes *auth.ScopeResolver, validator *validator.Validate) *AnimalService {
	return &AnimalService{
		repo:      repo,
		scopes:    scopes,
		validator: validator,
	}
}

// CreateAnimalRequest represents the request to register an animal
type CreateAnimalRequest struct {
	ShelterID   uuid.UUID             `json:"shelter_id" validate:"required"`
	Name        string                `json:"name" validate:"required,min=1,max=100"`
	Species     string                `json:"species" validate:"required,max=50"`
	BreedName   string                `json:"breed_name,omitempty" validate:"omitempty,max=100"`
	BirthDate   *time.Time            `json:"birth_date,omitempty"`
	Status      models.AdoptionStatus `json:"status,omitempty" validate:"omitempty,oneof=Available Pending Adopted Quarantine"`
	Description string                `json:"description,omitempty"`
}

// UpdateAnimalRequest represents the request to update an animal
type UpdateAnimalRequest struct {
	Name        string                `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Species     string                `json:"species,omitempty" validate:"omitempty,max=50"`
	BreedName   string                `json:"breed_name,omitempty" validate:"omitempty,max=100"`
	BirthDate   *time.Time            `json:"birth_date,omitempty"`
	Status      models.AdoptionStatus `json:"status,omitempty" validate:"omitempty,oneof=Available Pending Adopted Quarantine"`
	Description string                `json:"description,omitempty"`
}

// AnimalResponse represents the response for animal operations
type AnimalResponse struct {
	ID          uuid.UUID             `json:"id"`
	ShelterID   uuid.UUID             `json:"shelter_id"`
	Name        string                `json:"name"`
	Species     string                `json:"species"`
	BreedName   string                `json:"breed_name,omitempty"`
	BirthDate   *time.Time            `json:"birth_date,omitempty"`
	Status      models.AdoptionStatus `json:"status"`
	Description string                `json:"description,omitempty"`
	CreatedAt   string                `json:"created_at"`
	UpdatedAt   string                `json:"updated_at"`
}

// AnimalListResponse represents a paginated list of animals
type AnimalListResponse struct {
	Animals  []AnimalResponse `json:"animals"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Create registers an animal in one of the caller's accessible shelters
func (s *AnimalService) Create(scope auth.ShelterIDSet, req *CreateAnimalRequest) (*AnimalResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !scope.Contains(req.ShelterID) {
		return nil, apperrors.ErrOutOfScope
	}

	status := req.Status
	if status == "" {
		status = models.AdoptionStatusAvailable
	}

	animal := &models.Animal{
		ShelterID:   req.ShelterID,
		Name:        req.Name,
		Species:     req.Species,
		BreedName:   req.BreedName,
		BirthDate:   req.BirthDate,
		Status:      status,
		Description: req.Description,
	}

	if err := s.repo.Create(animal); err != nil {
		return nil, fmt.Errorf("failed to create animal: %w", err)
	}

	return s.toResponse(animal), nil
}

// List returns animals across the caller's accessible shelters with optional
// species/breed/status filters.
func (s *AnimalService) List(scope auth.ShelterIDSet, filter repository.AnimalFilter, page, pageSize int) (*AnimalListResponse, error) {
	page, pageSize = clampPage(page, pageSize)

	offset := (page - 1) * pageSize
	animals, total, err := s.repo.GetByShelterIDs(scope.IDs(), filter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list animals: %w", err)
	}

	return s.toListResponse(animals, total, page, pageSize), nil
}

// SearchAvailable is the public adoption search: available animals only,
// with optional species and breed filters. No tenant context is involved.
func (s *AnimalService) SearchAvailable(species, breed string, page, pageSize int) (*AnimalListResponse, error) {
	page, pageSize = clampPage(page, pageSize)

	offset := (page - 1) * pageSize
	animals, total, err := s.repo.SearchAvailable(species, breed, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to search animals: %w", err)
	}

	return s.toListResponse(animals, total, page, pageSize), nil
}

// GetByID retrieves an animal, enforcing existence before scope
func (s *AnimalService) GetByID(scope auth.ShelterIDSet, id uuid.UUID) (*AnimalResponse, error) {
	animal, err := s.scopes.GuardAnimal(scope, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(animal), nil
}

// Update updates an animal within the caller's scope. Moving an animal to a
// different shelter is not supported.
func (s *AnimalService) Update(scope auth.ShelterIDSet, id uuid.UUID, req *UpdateAnimalRequest) (*AnimalResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	animal, err := s.scopes.GuardAnimal(scope, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		animal.Name = req.Name
	}
	if req.Species != "" {
		animal.Species = req.Species
	}
	if req.BreedName != "" {
		animal.BreedName = req.BreedName
	}
	if req.BirthDate != nil {
		animal.BirthDate = req.BirthDate
	}
	if req.Status != "" {
		animal.Status = req.Status
	}
	if req.Description != "" {
		animal.Description = req.Description
	}

	if err := s.repo.Update(animal); err != nil {
		return nil, fmt.Errorf("failed to update animal: %w", err)
	}

	return s.toResponse(animal), nil
}

// Delete removes an animal within the caller's scope
func (s *AnimalService) Delete(scope auth.ShelterIDSet, id uuid.UUID) error {
	if _, err := s.scopes.GuardAnimal(scope, id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete animal: %w", err)
	}
	return nil
}

func (s *AnimalService) toResponse(animal *models.Animal) *AnimalResponse {
	return &AnimalResponse{
		ID:          animal.ID,
		ShelterID:   animal.ShelterID,
		Name:        animal.Name,
		Species:     animal.Species,
		BreedName:   animal.BreedName,
		BirthDate:   animal.BirthDate,
		Status:      animal.Status,
		Description: animal.Description,
		CreatedAt:   animal.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   animal.UpdatedAt.Format(time.RFC3339),
	}
}

func (s *AnimalService) toListResponse(animals []models.Animal, total int64, page, pageSize int) *AnimalListResponse {
	responses := make([]AnimalResponse, len(animals))
	for i := range animals {
		responses[i] = *s.toResponse(&animals[i])
	}
	return &AnimalListResponse{
		Animals:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}
