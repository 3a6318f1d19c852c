package service

import (
	"errors"
	"fmt"
	"time"

	"pawbase-backend/internal/auth"
	"pawbase-backend/internal/database/models"
	apperrors "pawbase-backend/internal/errors"
	"pawbase-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VaccinationService handles vaccination records, guarded through the owning
// animal's shelter. Each record is stamped with the acting user.
type VaccinationService struct {
	repo      repository.VaccinationRepositoryInterface
	scopes    *auth.ScopeResolver
	validator *validator.Validate
}

// NewVaccinationService creates a new vaccination service
func NewVaccinationService(repo repository.VaccinationRepositoryInterface, scopes *auth.ScopeResolver, validator *validator.Validate) *VaccinationService {
	return &VaccinationService{
		repo:      repo,
		scopes:    scopes,
		validator: validator,
	}
}

// CreateVaccinationRequest represents the request to record a vaccination
type CreateVaccinationRequest struct {
	AnimalID         uuid.UUID  `json:"animal_id" validate:"required"`
	VaccineName      string     `json:"vaccine_name" validate:"required,max=100"`
	DateAdministered time.Time  `json:"date_administered" validate:"required"`
	NextDueDate      *time.Time `json:"next_due_date,omitempty"`
}

// UpdateVaccinationRequest represents the request to update a vaccination
type UpdateVaccinationRequest struct {
	VaccineName      string     `json:"vaccine_name,omitempty" validate:"omitempty,max=100"`
	DateAdministered *time.Time `json:"date_administered,omitempty"`
	NextDueDate      *time.Time `json:"next_due_date,omitempty"`
}

// VaccinationResponse represents the response for vaccination operations
type VaccinationResponse struct {
	ID               uuid.UUID  `json:"id"`
	AnimalID         uuid.UUID  `json:"animal_id"`
	StaffUserID      uuid.UUID  `json:"staff_user_id"`
	VaccineName      string     `json:"vaccine_name"`
	DateAdministered time.Time  `json:"date_administered"`
	NextDueDate      *time.Time `json:"next_due_date,omitempty"`
	CreatedAt        string     `json:"created_at"`
	UpdatedAt        string     `json:"updated_at"`
}

// VaccinationListResponse represents a paginated list of vaccinations
type VaccinationListResponse struct {
	Vaccinations []VaccinationResponse `json:"vaccinations"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"page_size"`
}

// Create records a vaccination for an animal in the caller's scope, stamped
// with the acting user's id.
func (s *VaccinationService) Create(actor *models.User, scope auth.ShelterIDSet, req *CreateVaccinationRequest) (*VaccinationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.scopes.GuardAnimal(scope, req.AnimalID); err != nil {
		return nil, err
	}

	vaccination := &models.Vaccination{
		AnimalID:         req.AnimalID,
		StaffUserID:      actor.ID,
		VaccineName:      req.VaccineName,
		DateAdministered: req.DateAdministered,
		NextDueDate:      req.NextDueDate,
	}

	if err := s.repo.Create(vaccination); err != nil {
		return nil, fmt.Errorf("failed to create vaccination: %w", err)
	}

	return s.toResponse(vaccination), nil
}

// ListByAnimal returns the vaccinations of an animal in the caller's scope
func (s *VaccinationService) ListByAnimal(scope auth.ShelterIDSet, animalID uuid.UUID) ([]VaccinationResponse, error) {
	if _, err := s.scopes.GuardAnimal(scope, animalID); err != nil {
		return nil, err
	}

	vaccinations, err := s.repo.GetByAnimalID(animalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vaccinations: %w", err)
	}

	responses := make([]VaccinationResponse, len(vaccinations))
	for i := range vaccinations {
		responses[i] = *s.toResponse(&vaccinations[i])
	}
	return responses, nil
}

// List returns vaccinations across the caller's accessible shelters
func (s *VaccinationService) List(scope auth.ShelterIDSet, page, pageSize int) (*VaccinationListResponse, error) {
	page, pageSize = clampPage(page, pageSize)

	offset := (page - 1) * pageSize
	vaccinations, total, err := s.repo.GetByShelterIDs(scope.IDs(), pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list vaccinations: %w", err)
	}

	responses := make([]VaccinationResponse, len(vaccinations))
	for i := range vaccinations {
		responses[i] = *s.toResponse(&vaccinations[i])
	}

	return &VaccinationListResponse{
		Vaccinations: responses,
		Total:        total,
		Page:         page,
		PageSize:     pageSize,
	}, nil
}

// GetByID retrieves a vaccination, enforcing existence before scope
func (s *VaccinationService) GetByID(scope auth.ShelterIDSet, id uuid.UUID) (*VaccinationResponse, error) {
	vaccination, err := s.guard(scope, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(vaccination), nil
}

// Update updates a vaccination within the caller's scope
func (s *VaccinationService) Update(scope auth.ShelterIDSet, id uuid.UUID, req *UpdateVaccinationRequest) (*VaccinationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	vaccination, err := s.guard(scope, id)
	if err != nil {
		return nil, err
	}

	if req.VaccineName != "" {
		vaccination.VaccineName = req.VaccineName
	}
	if req.DateAdministered != nil {
		vaccination.DateAdministered = *req.DateAdministered
	}
	if req.NextDueDate != nil {
		vaccination.NextDueDate = req.NextDueDate
	}

	if err := s.repo.Update(vaccination); err != nil {
		return nil, fmt.Errorf("failed to update vaccination: %w", err)
	}

	return s.toResponse(vaccination), nil
}

// Delete removes a vaccination within the caller's scope
func (s *VaccinationService) Delete(scope auth.ShelterIDSet, id uuid.UUID) error {
	if _, err := s.guard(scope, id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete vaccination: %w", err)
	}
	return nil
}

// guard loads a vaccination (404) and then checks its animal's shelter (403)
func (s *VaccinationService) guard(scope auth.ShelterIDSet, id uuid.UUID) (*models.Vaccination, error) {
	vaccination, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVaccinationNotFound
		}
		return nil, fmt.Errorf("failed to get vaccination: %w", err)
	}
	if _, err := s.scopes.GuardAnimal(scope, vaccination.AnimalID); err != nil {
		return nil, err
	}
	return vaccination, nil
}

func (s *VaccinationService) toResponse(v *models.Vaccination) *VaccinationResponse {
	return &VaccinationResponse{
		ID:               v.ID,
		AnimalID:         v.AnimalID,
		StaffUserID:      v.StaffUserID,
		VaccineName:      v.VaccineName,
		DateAdministered: v.DateAdministered,
		NextDueDate:      v.NextDueDate,
		CreatedAt:        v.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        v.UpdatedAt.Format(time.RFC3339),
	}
}
