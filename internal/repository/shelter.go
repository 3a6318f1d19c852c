package repository

import (
	"pawbase-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShelterRepository handles database operations for shelters
type ShelterRepository struct {
	db *gorm.DB
}

// NewShelterRepository creates a new shelter repository
func NewShelterRepository(db *gorm.DB) *ShelterRepository {
	return &ShelterRepository{db: db}
}

// Create creates a new shelter
func (r *ShelterRepository) Create(shelter *models.Shelter) error {
	return r.db.Create(shelter).Error
}

// GetByID retrieves a shelter by ID
func (r *ShelterRepository) GetByID(id uuid.UUID) (*models.Shelter, error) {
	var shelter models.Shelter
	err := r.db.First(&shelter, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &shelter, nil
}

// GetByOrganizationID retrieves all shelters owned by an organization
func (r *ShelterRepository) GetByOrganizationID(orgID uuid.UUID) ([]models.Shelter, error) {
	var shelters []models.Shelter
	err := r.db.Where("organization_id = ?", orgID).Find(&shelters).Error
	if err != nil {
		return nil, err
	}
	return shelters, nil
}

// GetIDsByOrganizationID retrieves only the shelter ids of an organization.
// This is the org_admin scope computation.
func (r *ShelterRepository) GetIDsByOrganizationID(orgID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.Shelter{}).
		Where("organization_id = ?", orgID).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// GetByNameInOrganization retrieves a shelter by name within one organization
func (r *ShelterRepository) GetByNameInOrganization(orgID uuid.UUID, name string) (*models.Shelter, error) {
	var shelter models.Shelter
	err := r.db.First(&shelter, "organization_id = ? AND name = ?", orgID, name).Error
	if err != nil {
		return nil, err
	}
	return &shelter, nil
}

// Update updates a shelter
func (r *ShelterRepository) Update(shelter *models.Shelter) error {
	return r.db.Save(shelter).Error
}

// Delete deletes a shelter
func (r *ShelterRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Shelter{}, "id = ?", id).Error
}
