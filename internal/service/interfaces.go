package service

import (
	"pawbase-backend/internal/auth"
	"pawbase-backend/internal/database/models"
	"pawbase-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	Signup(req *SignupRequest) (*UserResponse, error)
	GetByID(id uuid.UUID) (*UserResponse, error)
	List(page, pageSize int) (*UserListResponse, error)
	Update(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
	Delete(id uuid.UUID) error
}

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	Create(req *CreateOrganizationRequest) (*OrganizationResponse, error)
	GetByID(id uuid.UUID) (*OrganizationResponse, error)
	List(page, pageSize int) (*OrganizationListResponse, error)
	Update(id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error)
	Delete(id uuid.UUID) error
}

// ShelterServiceInterface defines the interface for shelter service
type ShelterServiceInterface interface {
	Create(org *models.Organization, req *CreateShelterRequest) (*ShelterResponse, error)
	List(org *models.Organization, scope auth.ShelterIDSet) (*ShelterListResponse, error)
	GetByID(org *models.Organization, scope auth.ShelterIDSet, id uuid.UUID) (*ShelterResponse, error)
	Update(org *models.Organization, scope auth.ShelterIDSet, id uuid.UUID, req *UpdateShelterRequest) (*ShelterResponse, error)
	Delete(org *models.Organization, scope auth.ShelterIDSet, id uuid.UUID) error
}

// StaffServiceInterface defines the interface for staff membership service
type StaffServiceInterface interface {
	Assign(org *models.Organization, scope auth.ShelterIDSet, req *AssignStaffRequest) (*StaffMembershipResponse, error)
	List(user *models.User, scope auth.ShelterIDSet) (*StaffMembershipListResponse, error)
	GetByID(scope auth.ShelterIDSet, id uuid.UUID) (*StaffMembershipResponse, error)
	Delete(scope auth.ShelterIDSet, id uuid.UUID) error
}

// AnimalServiceInterface defines the interface for animal service
type AnimalServiceInterface interface {
	Create(scope auth.ShelterIDSet, req *CreateAnimalRequest) (*AnimalResponse, error)
	List(scope auth.ShelterIDSet, filter repository.AnimalFilter, page, pageSize int) (*AnimalListResponse, error)
	SearchAvailable(species, breed string, page, pageSize int) (*AnimalListResponse, error)
	GetByID(scope auth.ShelterIDSet, id uuid.UUID) (*AnimalResponse, error)
	Update(scope auth.ShelterIDSet, id uuid.UUID, req *UpdateAnimalRequest) (*AnimalResponse, error)
	Delete(scope auth.ShelterIDSet, id uuid.UUID) error
}

// MedicalRecordServiceInterface defines the interface for medical record service
type MedicalRecordServiceInterface interface {
	Create(scope auth.ShelterIDSet, req *CreateMedicalRecordRequest) (*MedicalRecordResponse, error)
	ListByAnimal(scope auth.ShelterIDSet, animalID uuid.UUID) ([]MedicalRecordResponse, error)
	List(scope auth.ShelterIDSet, page, pageSize int) (*MedicalRecordListResponse, error)
	GetByID(scope auth.ShelterIDSet, id uuid.UUID) (*MedicalRecordResponse, error)
	Update(scope auth.ShelterIDSet, id uuid.UUID, req *UpdateMedicalRecordRequest) (*MedicalRecordResponse, error)
	Delete(scope auth.ShelterIDSet, id uuid.UUID) error
}

// VaccinationServiceInterface defines the interface for vaccination service
type VaccinationServiceInterface interface {
	Create(actor *models.User, scope auth.ShelterIDSet, req *CreateVaccinationRequest) (*VaccinationResponse, error)
	ListByAnimal(scope auth.ShelterIDSet, animalID uuid.UUID) ([]VaccinationResponse, error)
	List(scope auth.ShelterIDSet, page, pageSize int) (*VaccinationListResponse, error)
	GetByID(scope auth.ShelterIDSet, id uuid.UUID) (*VaccinationResponse, error)
	Update(scope auth.ShelterIDSet, id uuid.UUID, req *UpdateVaccinationRequest) (*VaccinationResponse, error)
	Delete(scope auth.ShelterIDSet, id uuid.UUID) error
}

// AdoptionRequestServiceInterface defines the interface for adoption request service
type AdoptionRequestServiceInterface interface {
	Submit(adopter *models.User, req *SubmitAdoptionRequest) (*AdoptionRequestResponse, error)
	ListOwn(adopter *models.User, page, pageSize int) (*AdoptionRequestListResponse, error)
	ListForScope(scope auth.ShelterIDSet, page, pageSize int) (*AdoptionRequestListResponse, error)
	GetByID(scope auth.ShelterIDSet, id uuid.UUID) (*AdoptionRequestResponse, error)
	GetOwnByID(adopter *models.User, id uuid.UUID) (*AdoptionRequestResponse, error)
	Decide(scope auth.ShelterIDSet, id uuid.UUID, req *DecideAdoptionRequest) (*AdoptionRequestResponse, error)
}

// AnalyticsServiceInterface defines the interface for analytics service
type AnalyticsServiceInterface interface {
	Overview(org *models.Organization) (*AnalyticsResponse, error)
}
