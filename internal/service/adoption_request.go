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

// AdoptionRequestService handles the adoption workflow: adopters submit
// requests for available animals, staff and admins decide them within their
// shelter scope.
type AdoptionRequestService struct {
	repo       repository.AdoptionRequestRepositoryInterface
	animalRepo repository.AnimalRepositoryInterface
	scopes     *auth.ScopeResolver
	validator  *validator.Validate
}

// NewAdoptionRequestService creates a new adoption request service
func NewAdoptionRequestService(repo repository.AdoptionRequestRepositoryInterface, animalRepo repository.AnimalRepositoryInterface, scopes *auth.ScopeResolver, validator *validator.Validate) *AdoptionRequestService {
	return &AdoptionRequestService{
		repo:       repo,
		animalRepo: animalRepo,
		scopes:     scopes,
		validator:  validator,
	}
}

// SubmitAdoptionRequest represents an adopter's request for an animal
type SubmitAdoptionRequest struct {
	AnimalID uuid.UUID `json:"animal_id" validate:"required"`
}

// DecideAdoptionRequest represents a staff/admin decision on a request
type DecideAdoptionRequest struct {
	Status     models.RequestStatus `json:"status" validate:"required,oneof=Approved Rejected"`
	StaffNotes string               `json:"staff_notes,omitempty"`
}

// AdoptionRequestResponse represents the response for adoption request operations
type AdoptionRequestResponse struct {
	ID            uuid.UUID            `json:"id"`
	AnimalID      uuid.UUID            `json:"animal_id"`
	AdopterUserID uuid.UUID            `json:"adopter_user_id"`
	Status        models.RequestStatus `json:"status"`
	StaffNotes    string               `json:"staff_notes,omitempty"`
	CreatedAt     string               `json:"created_at"`
	UpdatedAt     string               `json:"updated_at"`
}

// AdoptionRequestListResponse represents a paginated list of adoption requests
type AdoptionRequestListResponse struct {
	Requests []AdoptionRequestResponse `json:"requests"`
	Total    int64                     `json:"total"`
	Page     int                       `json:"page"`
	PageSize int                       `json:"page_size"`
}

// Submit files an adoption request for an available animal. The adopter id
// comes from the authenticated caller, never from the request body.
func (s *AdoptionRequestService) Submit(adopter *models.User, req *SubmitAdoptionRequest) (*AdoptionRequestResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	animal, err := s.animalRepo.GetByID(req.AnimalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAnimalNotFound
		}
		return nil, fmt.Errorf("failed to get animal: %w", err)
	}
	if animal.Status != models.AdoptionStatusAvailable {
		return nil, apperrors.ErrAnimalNotAvailable
	}

	request := &models.AdoptionRequest{
		AnimalID:      req.AnimalID,
		AdopterUserID: adopter.ID,
		Status:        models.RequestStatusSubmitted,
	}

	if err := s.repo.Create(request); err != nil {
		return nil, fmt.Errorf("failed to create adoption request: %w", err)
	}

	return s.toResponse(request), nil
}

// ListOwn returns the caller's own adoption requests
func (s *AdoptionRequestService) ListOwn(adopter *models.User, page, pageSize int) (*AdoptionRequestListResponse, error) {
	page, pageSize = clampPage(page, pageSize)

	offset := (page - 1) * pageSize
	requests, total, err := s.repo.GetByAdopterID(adopter.ID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list adoption requests: %w", err)
	}

	return s.toListResponse(requests, total, page, pageSize), nil
}

// ListForScope returns requests for animals in the caller's accessible
// shelters, for staff and admin review.
func (s *AdoptionRequestService) ListForScope(scope auth.ShelterIDSet, page, pageSize int) (*AdoptionRequestListResponse, error) {
	page, pageSize = clampPage(page, pageSize)

	offset := (page - 1) * pageSize
	requests, total, err := s.repo.GetByShelterIDs(scope.IDs(), pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list adoption requests: %w", err)
	}

	return s.toListResponse(requests, total, page, pageSize), nil
}

// GetByID retrieves a request, enforcing existence before scope
func (s *AdoptionRequestService) GetByID(scope auth.ShelterIDSet, id uuid.UUID) (*AdoptionRequestResponse, error) {
	request, err := s.guard(scope, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(request), nil
}

// GetOwnByID retrieves one of the caller's own requests. A request belonging
// to another adopter is reported as not found.
func (s *AdoptionRequestService) GetOwnByID(adopter *models.User, id uuid.UUID) (*AdoptionRequestResponse, error) {
	request, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAdoptionRequestNotFound
		}
		return nil, fmt.Errorf("failed to get adoption request: %w", err)
	}
	if request.AdopterUserID != adopter.ID {
		return nil, apperrors.ErrAdoptionRequestNotFound
	}
	return s.toResponse(request), nil
}

// Decide approves or rejects a submitted request within the caller's scope.
// Approval marks the animal Adopted; a decided request cannot be decided
// again.
func (s *AdoptionRequestService) Decide(scope auth.ShelterIDSet, id uuid.UUID, req *DecideAdoptionRequest) (*AdoptionRequestResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	request, err := s.guard(scope, id)
	if err != nil {
		return nil, err
	}

	if request.Status != models.RequestStatusSubmitted {
		return nil, apperrors.ErrRequestAlreadyDecided
	}

	request.Status = req.Status
	if req.StaffNotes != "" {
		request.StaffNotes = req.StaffNotes
	}

	if req.Status == models.RequestStatusApproved {
		animal, err := s.animalRepo.GetByID(request.AnimalID)
		if err != nil {
			return nil, fmt.Errorf("failed to get animal: %w", err)
		}
		animal.Status = models.AdoptionStatusAdopted
		if err := s.animalRepo.Update(animal); err != nil {
			return nil, fmt.Errorf("failed to update animal status: %w", err)
		}
	}

	if err := s.repo.Update(request); err != nil {
		return nil, fmt.Errorf("failed to update adoption request: %w", err)
	}

	return s.toResponse(request), nil
}

// guard loads a request (404) and then checks its animal's shelter (403)
func (s *AdoptionRequestService) guard(scope auth.ShelterIDSet, id uuid.UUID) (*models.AdoptionRequest, error) {
	request, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAdoptionRequestNotFound
		}
		return nil, fmt.Errorf("failed to get adoption request: %w", err)
	}
	if _, err := s.scopes.GuardAnimal(scope, request.AnimalID); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *AdoptionRequestService) toResponse(r *models.AdoptionRequest) *AdoptionRequestResponse {
	return &AdoptionRequestResponse{
		ID:            r.ID,
		AnimalID:      r.AnimalID,
		AdopterUserID: r.AdopterUserID,
		Status:        r.Status,
		StaffNotes:    r.StaffNotes,
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     r.UpdatedAt.Format(time.RFC3339),
	}
}

func (s *AdoptionRequestService) toListResponse(requests []models.AdoptionRequest, total int64, page, pageSize int) *AdoptionRequestListResponse {
	responses := make([]AdoptionRequestResponse, len(requests))
	for i := range requests {
		responses[i] = *s.toResponse(&requests[i])
	}
	return &AdoptionRequestListResponse{
		Requests: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}
