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

// ShelterService handles business logic for shelters. Every operation runs
// inside the caller's tenant: creates are pinned to the tenant organization,
// reads and writes go through the shelter scope guard.
type ShelterService struct {
	repo      repository.ShelterRepositoryInterface
	scopes    *auth.ScopeResolver
	validator *validator.Validate
}

// NewShelterService creates a new shelter service
func NewShelterService(repo repository.ShelterRepositoryInterface, scopes *auth.ScopeResolver, validator *validator.Validate) *ShelterService {
	return &ShelterService{
		repo:      repo,
		scopes:    scopes,
		validator: validator,
	}
}

// CreateShelterRequest represents the request to create a shelter
type CreateShelterRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=100"`
	City         string `json:"city" validate:"required,min=1,max=100"`
	Address      string `json:"address,omitempty" validate:"omitempty,max=255"`
	Phone        string `json:"phone,omitempty" validate:"omitempty,max=30"`
	ContactEmail string `json:"contact_email,omitempty" validate:"omitempty,email"`
}

// UpdateShelterRequest represents the request to update a shelter
type UpdateShelterRequest struct {
	Name         string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	City         string `json:"city,omitempty" validate:"omitempty,min=1,max=100"`
	Address      string `json:"address,omitempty" validate:"omitempty,max=255"`
	Phone        string `json:"phone,omitempty" validate:"omitempty,max=30"`
	ContactEmail string `json:"contact_email,omitempty" validate:"omitempty,email"`
}

// ShelterResponse represents the response for shelter operations
type ShelterResponse struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Name           string    `json:"name"`
	City           string    `json:"city"`
	Address        string    `json:"address,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	ContactEmail   string    `json:"contact_email,omitempty"`
	CreatedAt      string    `json:"created_at"`
	UpdatedAt      string    `json:"updated_at"`
}

// ShelterListResponse represents a list of shelters within the tenant
type ShelterListResponse struct {
	Shelters []ShelterResponse `json:"shelters"`
	Total    int               `json:"total"`
}

// Create creates a shelter inside the caller's tenant organization. The
// organization id comes from tenant resolution, never from the request body.
func (s *ShelterService) Create(org *models.Organization, req *CreateShelterRequest) (*ShelterResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByNameInOrganization(org.ID, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing shelter: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrShelterExists
	}

	shelter := &models.Shelter{
		OrganizationID: org.ID,
		Name:           req.Name,
		City:           req.City,
		Address:        req.Address,
		Phone:          req.Phone,
		ContactEmail:   req.ContactEmail,
	}

	if err := s.repo.Create(shelter); err != nil {
		return nil, fmt.Errorf("failed to create shelter: %w", err)
	}

	return s.toResponse(shelter), nil
}

// List returns the shelters in the caller's scope: all org shelters for the
// admin, only assigned shelters for staff.
func (s *ShelterService) List(org *models.Organization, scope auth.ShelterIDSet) (*ShelterListResponse, error) {
	shelters, err := s.repo.GetByOrganizationID(org.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shelters: %w", err)
	}

	responses := make([]ShelterResponse, 0, len(shelters))
	for i := range shelters {
		if !scope.Contains(shelters[i].ID) {
			continue
		}
		responses = append(responses, *s.toResponse(&shelters[i]))
	}

	return &ShelterListResponse{
		Shelters: responses,
		Total:    len(responses),
	}, nil
}

// GetByID retrieves a shelter, enforcing existence before scope
func (s *ShelterService) GetByID(org *models.Organization, scope auth.ShelterIDSet, id uuid.UUID) (*ShelterResponse, error) {
	shelter, err := s.scopes.GuardShelter(org, scope, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(shelter), nil
}

// Update updates a shelter within the caller's scope
func (s *ShelterService) Update(org *models.Organization, scope auth.ShelterIDSet, id uuid.UUID, req *UpdateShelterRequest) (*ShelterResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	shelter, err := s.scopes.GuardShelter(org, scope, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" && req.Name != shelter.Name {
		existing, err := s.repo.GetByNameInOrganization(org.ID, req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing shelter: %w", err)
		}
		if existing != nil {
			return nil, apperrors.ErrShelterExists
		}
		shelter.Name = req.Name
	}
	if req.City != "" {
		shelter.City = req.City
	}
	if req.Address != "" {
		shelter.Address = req.Address
	}
	if req.Phone != "" {
		shelter.Phone = req.Phone
	}
	if req.ContactEmail != "" {
		shelter.ContactEmail = req.ContactEmail
	}

	if err := s.repo.Update(shelter); err != nil {
		return nil, fmt.Errorf("failed to update shelter: %w", err)
	}

	return s.toResponse(shelter), nil
}

// Delete removes a shelter within the caller's scope
func (s *ShelterService) Delete(org *models.Organization, scope auth.ShelterIDSet, id uuid.UUID) error {
	if _, err := s.scopes.GuardShelter(org, scope, id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete shelter: %w", err)
	}
	return nil
}

func (s *ShelterService) toResponse(shelter *models.Shelter) *ShelterResponse {
	return &ShelterResponse{
		ID:             shelter.ID,
		OrganizationID: shelter.OrganizationID,
		Name:           shelter.Name,
		City:           shelter.City,
		Address:        shelter.Address,
		Phone:          shelter.Phone,
		ContactEmail:   shelter.ContactEmail,
		CreatedAt:      shelter.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      shelter.UpdatedAt.Format(time.RFC3339),
	}
}
