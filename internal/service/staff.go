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

// StaffService handles staff membership assignments inside a tenant
type StaffService struct {
	repo      repository.StaffMembershipRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	scopes    *auth.ScopeResolver
	validator *validator.Validate
}

// NewStaffService creates a new staff service
func NewStaffService(repo repository.StaffMembershipRepositoryInterface, userRepo repository.UserRepositoryInterface, scopes *auth.ScopeResolver, validator *validator.Validate) *StaffService {
	return &StaffService{
		repo:      repo,
		userRepo:  userRepo,
		scopes:    scopes,
		validator: validator,
	}
}

// AssignStaffRequest represents the request to assign a staff user to a shelter
type AssignStaffRequest struct {
	UserID    uuid.UUID `json:"user_id" validate:"required"`
	ShelterID uuid.UUID `json:"shelter_id" validate:"required"`
}

// StaffMembershipResponse represents the response for staff membership operations
type StaffMembershipResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	ShelterID uuid.UUID `json:"shelter_id"`
	CreatedAt string    `json:"created_at"`
}

// StaffMembershipListResponse represents a list of staff memberships
type StaffMembershipListResponse struct {
	Memberships []StaffMembershipResponse `json:"memberships"`
	Total       int                       `json:"total"`
}

// Assign links a staff user to a shelter in the caller's scope. The shelter
// is guarded first, then the user is checked to exist with role staff, then
// the pair is checked for duplicates.
func (s *StaffService) Assign(org *models.Organization, scope auth.ShelterIDSet, req *AssignStaffRequest) (*StaffMembershipResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.scopes.GuardShelter(org, scope, req.ShelterID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotStaffUser
		}
		return nil, fmt.Errorf("failed to verify staff user: %w", err)
	}
	if user.Role != models.RoleStaff {
		return nil, apperrors.ErrNotStaffUser
	}

	existing, err := s.repo.GetByUserAndShelter(req.UserID, req.ShelterID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing membership: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrStaffExists
	}

	membership := &models.StaffMembership{
		UserID:    req.UserID,
		ShelterID: req.ShelterID,
	}

	if err := s.repo.Create(membership); err != nil {
		return nil, fmt.Errorf("failed to create membership: %w", err)
	}

	return s.toResponse(membership), nil
}

// List returns the memberships visible to the caller: the admin sees every
// membership across the org's shelters, staff see their own records.
func (s *StaffService) List(user *models.User, scope auth.ShelterIDSet) (*StaffMembershipListResponse, error) {
	var (
		memberships []models.StaffMembership
		err         error
	)

	if user.Role == models.RoleOrgAdmin {
		memberships, err = s.repo.GetByShelterIDs(scope.IDs())
	} else {
		memberships, err = s.repo.GetByUserID(user.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	responses := make([]StaffMembershipResponse, len(memberships))
	for i := range memberships {
		responses[i] = *s.toResponse(&memberships[i])
	}

	return &StaffMembershipListResponse{
		Memberships: responses,
		Total:       len(responses),
	}, nil
}

// GetByID retrieves a membership, requiring its shelter to be in scope
func (s *StaffService) GetByID(scope auth.ShelterIDSet, id uuid.UUID) (*StaffMembershipResponse, error) {
	membership, err := s.guard(scope, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(membership), nil
}

// Delete unassigns a staff user from a shelter within the caller's scope
func (s *StaffService) Delete(scope auth.ShelterIDSet, id uuid.UUID) error {
	if _, err := s.guard(scope, id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete membership: %w", err)
	}
	return nil
}

// guard enforces existence before scope for a single membership row
func (s *StaffService) guard(scope auth.ShelterIDSet, id uuid.UUID) (*models.StaffMembership, error) {
	membership, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	if !scope.Contains(membership.ShelterID) {
		return nil, apperrors.ErrOutOfScope
	}
	return membership, nil
}

func (s *StaffService) toResponse(m *models.StaffMembership) *StaffMembershipResponse {
	return &StaffMembershipResponse{
		ID:        m.ID,
		UserID:    m.UserID,
		ShelterID: m.ShelterID,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
}
