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

// MedicalRecordService handles medical histories. Every operation is guarded
// through the owning animal's shelter.
type MedicalRecordService struct {
	repo      repository.MedicalRecordRepositoryInterface
	scopes    *auth.ScopeResolver
	validator *validator.Validate
}

// NewMedicalRecordService creates a new medical record service
func NewMedicalRecordService(repo repository.MedicalRecordRepositoryInterface, scopes *auth.ScopeResolver, validator *validator.Validate) *MedicalRecordService {
	return &MedicalRecordService{
		repo:      repo,
		scopes:    scopes,
		validator: validator,
	}
}

// CreateMedicalRecordRequest represents the request to add a medical record
type CreateMedicalRecordRequest struct {
	AnimalID  uuid.UUID `json:"animal_id" validate:"required"`
	VisitDate time.Time `json:"visit_date" validate:"required"`
	Diagnosis string    `json:"diagnosis" validate:"required"`
	Treatment string    `json:"treatment,omitempty"`
	VetName   string    `json:"vet_name,omitempty" validate:"omitempty,max=100"`
}

// UpdateMedicalRecordRequest represents the request to update a medical record
type UpdateMedicalRecordRequest struct {
	VisitDate *time.Time `json:"visit_date,omitempty"`
	Diagnosis string     `json:"diagnosis,omitempty"`
	Treatment string     `json:"treatment,omitempty"`
	VetName   string     `json:"vet_name,omitempty" validate:"omitempty,max=100"`
}

// MedicalRecordResponse represents the response for medical record operations
type MedicalRecordResponse struct {
	ID        uuid.UUID `json:"id"`
	AnimalID  uuid.UUID `json:"animal_id"`
	VisitDate time.Time `json:"visit_date"`
	Diagnosis string    `json:"diagnosis"`
	Treatment string    `json:"treatment,omitempty"`
	VetName   string    `json:"vet_name,omitempty"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// MedicalRecordListResponse represents a paginated list of medical records
type MedicalRecordListResponse struct {
	Records  []MedicalRecordResponse `json:"records"`
	Total    int64                   `json:"total"`
	Page     int                     `json:"page"`
	PageSize int                     `json:"page_size"`
}

// Create adds a medical record to an animal in the caller's scope
func (s *MedicalRecordService) Create(scope auth.ShelterIDSet, req *CreateMedicalRecordRequest) (*MedicalRecordResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.scopes.GuardAnimal(scope, req.AnimalID); err != nil {
		return nil, err
	}

	record := &models.MedicalRecord{
		AnimalID:  req.AnimalID,
		VisitDate: req.VisitDate,
		Diagnosis: req.Diagnosis,
		Treatment: req.Treatment,
		VetName:   req.VetName,
	}

	if err := s.repo.Create(record); err != nil {
		return nil, fmt.Errorf("failed to create medical record: %w", err)
	}

	return s.toResponse(record), nil
}

// ListByAnimal returns the medical history of an animal in the caller's scope
func (s *MedicalRecordService) ListByAnimal(scope auth.ShelterIDSet, animalID uuid.UUID) ([]MedicalRecordResponse, error) {
	if _, err := s.scopes.GuardAnimal(scope, animalID); err != nil {
		return nil, err
	}

	records, err := s.repo.GetByAnimalID(animalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list medical records: %w", err)
	}

	responses := make([]MedicalRecordResponse, len(records))
	for i := range records {
		responses[i] = *s.toResponse(&records[i])
	}
	return responses, nil
}

// List returns medical records across the caller's accessible shelters
func (s *MedicalRecordService) List(scope auth.ShelterIDSet, page, pageSize int) (*MedicalRecordListResponse, error) {
	page, pageSize = clampPage(page, pageSize)

	offset := (page - 1) * pageSize
	records, total, err := s.repo.GetByShelterIDs(scope.IDs(), pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list medical records: %w", err)
	}

	responses := make([]MedicalRecordResponse, len(records))
	for i := range records {
		responses[i] = *s.toResponse(&records[i])
	}

	return &MedicalRecordListResponse{
		Records:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetByID retrieves a medical record, enforcing existence before scope
func (s *MedicalRecordService) GetByID(scope auth.ShelterIDSet, id uuid.UUID) (*MedicalRecordResponse, error) {
	record, err := s.guard(scope, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(record), nil
}

// Update updates a medical record within the caller's scope
func (s *MedicalRecordService) Update(scope auth.ShelterIDSet, id uuid.UUID, req *UpdateMedicalRecordRequest) (*MedicalRecordResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	record, err := s.guard(scope, id)
	if err != nil {
		return nil, err
	}

	if req.VisitDate != nil {
		record.VisitDate = *req.VisitDate
	}
	if req.Diagnosis != "" {
		record.Diagnosis = req.Diagnosis
	}
	if req.Treatment != "" {
		record.Treatment = req.Treatment
	}
	if req.VetName != "" {
		record.VetName = req.VetName
	}

	if err := s.repo.Update(record); err != nil {
		return nil, fmt.Errorf("failed to update medical record: %w", err)
	}

	return s.toResponse(record), nil
}

// Delete removes a medical record within the caller's scope
func (s *MedicalRecordService) Delete(scope auth.ShelterIDSet, id uuid.UUID) error {
	if _, err := s.guard(scope, id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete medical record: %w", err)
	}
	return nil
}

// guard loads a record (404) and then checks its animal's shelter (403)
func (s *MedicalRecordService) guard(scope auth.ShelterIDSet, id uuid.UUID) (*models.MedicalRecord, error) {
	record, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMedicalRecordNotFound
		}
		return nil, fmt.Errorf("failed to get medical record: %w", err)
	}
	if _, err := s.scopes.GuardAnimal(scope, record.AnimalID); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *MedicalRecordService) toResponse(record *models.MedicalRecord) *MedicalRecordResponse {
	return &MedicalRecordResponse{
		ID:        record.ID,
		AnimalID:  record.AnimalID,
		VisitDate: record.VisitDate,
		Diagnosis: record.Diagnosis,
		Treatment: record.Treatment,
		VetName:   record.VetName,
		CreatedAt: record.CreatedAt.Format(time.RFC3339),
		UpdatedAt: record.UpdatedAt.Format(time.RFC3339),
	}
}
