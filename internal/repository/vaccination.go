package repository

import (
	"pawbase-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VaccinationRepository handles database operations for vaccinations
type VaccinationRepository struct {
	db *gorm.DB
}

// NewVaccinationRepository creates a new vaccination repository
func NewVaccinationRepository(db *gorm.DB) *VaccinationRepository {
	return &VaccinationRepository{db: db}
}

// Create creates a new vaccination
func (r *VaccinationRepository) Create(v *models.Vaccination) error {
	return r.db.Create(v).Error
}

// GetByID retrieves a vaccination by ID
func (r *VaccinationRepository) GetByID(id uuid.UUID) (*models.Vaccination, error) {
	var v models.Vaccination
	err := r.db.First(&v, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// GetByAnimalID retrieves all vaccinations of an animal
func (r *VaccinationRepository) GetByAnimalID(animalID uuid.UUID) ([]models.Vaccination, error) {
	var vaccinations []models.Vaccination
	err := r.db.Where("animal_id = ?", animalID).Order("date_administered DESC").Find(&vaccinations).Error
	if err != nil {
		return nil, err
	}
	return vaccinations, nil
}

// GetByShelterIDs retrieves vaccinations for animals within the shelter set
func (r *VaccinationRepository) GetByShelterIDs(shelterIDs []uuid.UUID, limit, offset int) ([]models.Vaccination, int64, error) {
	if len(shelterIDs) == 0 {
		return []models.Vaccination{}, 0, nil
	}

	query := r.db.Model(&models.Vaccination{}).
		Joins("JOIN animals ON animals.id = vaccinations.animal_id").
		Where("animals.shelter_id IN ?", shelterIDs)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var vaccinations []models.Vaccination
	if err := query.Limit(limit).Offset(offset).Find(&vaccinations).Error; err != nil {
		return nil, 0, err
	}

	return vaccinations, total, nil
}

// Update updates a vaccination
func (r *VaccinationRepository) Update(v *models.Vaccination) error {
	return r.db.Save(v).Error
}

// Delete deletes a vaccination
func (r *VaccinationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Vaccination{}, "id = ?", id).Error
}
