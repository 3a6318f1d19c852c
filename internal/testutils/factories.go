package testutils

import (
	"fmt"
	"time"

	"pawbase-backend/internal/database/models"

	"github.com/google/uuid"
)

// Factories produce valid model instances for tests. Each Create() returns a
// distinct record; WithX helpers override the interesting field.

// FactorySet bundles all factories for convenient access in suites.
type FactorySet struct {
	User            *UserFactory
	Organization    *OrganizationFactory
	Shelter         *ShelterFactory
	StaffMembership *StaffMembershipFactory
	Animal          *AnimalFactory
	MedicalRecord   *MedicalRecordFactory
	Vaccination     *VaccinationFactory
	AdoptionRequest *AdoptionRequestFactory
}

// NewFactorySet creates a FactorySet with all factories initialized.
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:            &UserFactory{},
		Organization:    &OrganizationFactory{},
		Shelter:         &ShelterFactory{},
		StaffMembership: &StaffMembershipFactory{},
		Animal:          &AnimalFactory{},
		MedicalRecord:   &MedicalRecordFactory{},
		Vaccination:     &VaccinationFactory{},
		AdoptionRequest: &AdoptionRequestFactory{},
	}
}

// UserFactory creates test users
type UserFactory struct{}

func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email: fmt.Sprintf("user-%s@example.com", id.String()[:8]),
		// opaque placeholder; hash real passwords with auth.Hasher when a
		// test needs to log in
		PasswordHash: fmt.Sprintf("not-a-real-hash-%s", id.String()[:8]),
		FullName:     "Test User",
		Role:         models.RoleAdopter,
	}
}

func (f *UserFactory) CreateWithRole(role models.UserRole) *models.User {
	u := f.Create()
	u.Role = role
	return u
}

func (f *UserFactory) CreateWithEmail(email string) *models.User {
	u := f.Create()
	u.Email = email
	return u
}

// OrganizationFactory creates test organizations
type OrganizationFactory struct{}

func (f *OrganizationFactory) Create(adminID uuid.UUID) *models.Organization {
	id := uuid.New()
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         fmt.Sprintf("Org %s", id.String()[:8]),
		ContactEmail: fmt.Sprintf("org-%s@example.com", id.String()[:8]),
		AdminID:      adminID,
	}
}

func (f *OrganizationFactory) CreateWithName(adminID uuid.UUID, name string) *models.Organization {
	o := f.Create(adminID)
	o.Name = name
	return o
}

// ShelterFactory creates test shelters
type ShelterFactory struct{}

func (f *ShelterFactory) Create(orgID uuid.UUID) *models.Shelter {
	id := uuid.New()
	return &models.Shelter{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		Name:           fmt.Sprintf("Shelter %s", id.String()[:8]),
		City:           "Haifa",
		Address:        "12 Harbor St",
	}
}

func (f *ShelterFactory) CreateWithName(orgID uuid.UUID, name string) *models.Shelter {
	s := f.Create(orgID)
	s.Name = name
	return s
}

// StaffMembershipFactory creates test staff memberships
type StaffMembershipFactory struct{}

func (f *StaffMembershipFactory) Create(userID, shelterID uuid.UUID) *models.StaffMembership {
	return &models.StaffMembership{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:    userID,
		ShelterID: shelterID,
	}
}

// AnimalFactory creates test animals
type AnimalFactory struct{}

func (f *AnimalFactory) Create(shelterID uuid.UUID) *models.Animal {
	id := uuid.New()
	return &models.Animal{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ShelterID: shelterID,
		Name:      fmt.Sprintf("Animal %s", id.String()[:8]),
		Species:   "dog",
		BreedName: "mixed",
		Status:    models.AdoptionStatusAvailable,
	}
}

func (f *AnimalFactory) CreateWithStatus(shelterID uuid.UUID, status models.AdoptionStatus) *models.Animal {
	a := f.Create(shelterID)
	a.Status = status
	return a
}

// MedicalRecordFactory creates test medical records
type MedicalRecordFactory struct{}

func (f *MedicalRecordFactory) Create(animalID uuid.UUID) *models.MedicalRecord {
	return &models.MedicalRecord{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		AnimalID:  animalID,
		VisitDate: time.Now().AddDate(0, 0, -7),
		Diagnosis: "routine checkup",
		VetName:   "Dr. Levy",
	}
}

// VaccinationFactory creates test vaccinations
type VaccinationFactory struct{}

func (f *VaccinationFactory) Create(animalID, staffUserID uuid.UUID) *models.Vaccination {
	next := time.Now().AddDate(1, 0, 0)
	return &models.Vaccination{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		AnimalID:         animalID,
		StaffUserID:      staffUserID,
		VaccineName:      "rabies",
		DateAdministered: time.Now().AddDate(0, 0, -1),
		NextDueDate:      &next,
	}
}

// AdoptionRequestFactory creates test adoption requests
type AdoptionRequestFactory struct{}

func (f *AdoptionRequestFactory) Create(animalID, adopterID uuid.UUID) *models.AdoptionRequest {
	return &models.AdoptionRequest{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		AnimalID:      animalID,
		AdopterUserID: adopterID,
		Status:        models.RequestStatusSubmitted,
	}
}

func (f *AdoptionRequestFactory) CreateWithStatus(animalID, adopterID uuid.UUID, status models.RequestStatus) *models.AdoptionRequest {
	r := f.Create(animalID, adopterID)
	r.Status = status
	return r
}
