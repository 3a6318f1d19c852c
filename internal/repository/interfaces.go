package repository

import (
	"pawbase-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the lookup shapes the identity resolver
// and user service consume.
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll(limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// OrganizationRepositoryInterface defines organization lookups; GetByAdminID
// is the admin-ownership path of tenant resolution.
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetByName(name string) (*models.Organization, error)
	GetByAdminID(adminID uuid.UUID) (*models.Organization, error)
	GetAll(limit, offset int) ([]models.Organization, int64, error)
	Update(org *models.Organization) error
	Delete(id uuid.UUID) error
}

// ShelterRepositoryInterface defines shelter lookups; GetIDsByOrganizationID
// feeds the org_admin scope computation.
type ShelterRepositoryInterface interface {
	Create(shelter *models.Shelter) error
	GetByID(id uuid.UUID) (*models.Shelter, error)
	GetByOrganizationID(orgID uuid.UUID) ([]models.Shelter, error)
	GetIDsByOrganizationID(orgID uuid.UUID) ([]uuid.UUID, error)
	GetByNameInOrganization(orgID uuid.UUID, name string) (*models.Shelter, error)
	Update(shelter *models.Shelter) error
	Delete(id uuid.UUID) error
}

// StaffMembershipRepositoryInterface defines membership lookups; GetByUserID
// feeds both the staff tenant path and the staff scope computation.
type StaffMembershipRepositoryInterface interface {
	Create(m *models.StaffMembership) error
	GetByID(id uuid.UUID) (*models.StaffMembership, error)
	GetByUserID(userID uuid.UUID) ([]models.StaffMembership, error)
	GetByUserAndShelter(userID, shelterID uuid.UUID) (*models.StaffMembership, error)
	GetByShelterIDs(shelterIDs []uuid.UUID) ([]models.StaffMembership, error)
	Update(m *models.StaffMembership) error
	Delete(id uuid.UUID) error
}

// AnimalFilter narrows animal listings.
type AnimalFilter struct {
	Species string
	Breed   string
	Status  models.AdoptionStatus
}

// AnimalRepositoryInterface defines animal lookups by id and by shelter set.
type AnimalRepositoryInterface interface {
	Create(animal *models.Animal) error
	GetByID(id uuid.UUID) (*models.Animal, error)
	GetByShelterIDs(shelterIDs []uuid.UUID, filter AnimalFilter, limit, offset int) ([]models.Animal, int64, error)
	SearchAvailable(species, breed string, limit, offset int) ([]models.Animal, int64, error)
	Update(animal *models.Animal) error
	Delete(id uuid.UUID) error
}

// MedicalRecordRepositoryInterface defines medical record lookups; shelter
// scoping goes through the owning animal.
type MedicalRecordRepositoryInterface interface {
	Create(record *models.MedicalRecord) error
	GetByID(id uuid.UUID) (*models.MedicalRecord, error)
	GetByAnimalID(animalID uuid.UUID) ([]models.MedicalRecord, error)
	GetByShelterIDs(shelterIDs []uuid.UUID, limit, offset int) ([]models.MedicalRecord, int64, error)
	Update(record *models.MedicalRecord) error
	Delete(id uuid.UUID) error
}

// VaccinationRepositoryInterface defines vaccination lookups; shelter scoping
// goes through the owning animal.
type VaccinationRepositoryInterface interface {
	Create(v *models.Vaccination) error
	GetByID(id uuid.UUID) (*models.Vaccination, error)
	GetByAnimalID(animalID uuid.UUID) ([]models.Vaccination, error)
	GetByShelterIDs(shelterIDs []uuid.UUID, limit, offset int) ([]models.Vaccination, int64, error)
	Update(v *models.Vaccination) error
	Delete(id uuid.UUID) error
}

// AdoptionRequestRepositoryInterface defines adoption request lookups for
// adopters (own requests) and shelter scopes (staff/admin review).
type AdoptionRequestRepositoryInterface interface {
	Create(r *models.AdoptionRequest) error
	GetByID(id uuid.UUID) (*models.AdoptionRequest, error)
	GetByAdopterID(adopterID uuid.UUID, limit, offset int) ([]models.AdoptionRequest, int64, error)
	GetByShelterIDs(shelterIDs []uuid.UUID, limit, offset int) ([]models.AdoptionRequest, int64, error)
	Update(r *models.AdoptionRequest) error
	Delete(id uuid.UUID) error
}

// ShelterAdoptionStats aggregates adoption outcomes for one shelter.
type ShelterAdoptionStats struct {
	ShelterName      string  `json:"shelter_name"`
	TotalRequests    int64   `json:"total_requests"`
	ApprovedRequests int64   `json:"approved_requests"`
	SuccessRate      float64 `json:"success_rate"`
}

// BreedAdoptionCount is one entry of the top-adopted-breeds report.
type BreedAdoptionCount struct {
	BreedName string `json:"breed_name"`
	Adoptions int64  `json:"adoptions"`
}

// AnalyticsRepositoryInterface defines the tenant-wide aggregations used by
// the org admin analytics endpoint.
type AnalyticsRepositoryInterface interface {
	AdoptionSuccessByShelter(orgID uuid.UUID) ([]ShelterAdoptionStats, error)
	TopAdoptedBreeds(orgID uuid.UUID, limit int) ([]BreedAdoptionCount, error)
}
