package repository

import (
	"pawbase-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnimalRepository handles database operations for animals
type AnimalRepository struct {
	db *gorm.DB
}

// NewAnimalRepository creates a new animal repository
func NewAnimalRepository(db *gorm.DB) *AnimalRepository {
	return &AnimalRepository{db: db}
}

// Create creates a new animal
func (r *AnimalRepository) Create(animal *models.Animal) error {
	return r.db.Create(animal).Error
}

// GetByID retrieves an animal by ID
func (r *AnimalRepository) GetByID(id uuid.UUID) (*models.Animal, error) {
	var animal models.Animal
	err := r.db.First(&animal, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &animal, nil
}

// GetByShelterIDs retrieves animals within the given shelter set with
// optional filters and pagination
func (r *AnimalRepository) GetByShelterIDs(shelterIDs []uuid.UUID, filter AnimalFilter, limit, offset int) ([]models.Animal, int64, error) {
	if len(shelterIDs) == 0 {
		return []models.Animal{}, 0, nil
	}

	query := r.db.Model(&models.Animal{}).Where("shelter_id IN ?", shelterIDs)
	if filter.Species != "" {
		query = query.Where("species = ?", filter.Species)
	}
	if filter.Breed != "" {
		query = query.Where("breed_name ILIKE ?", "%"+filter.Breed+"%")
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var animals []models.Animal
	if err := query.Limit(limit).Offset(offset).Find(&animals).Error; err != nil {
		return nil, 0, err
	}

	return animals, total, nil
}

// SearchAvailable retrieves available animals across all shelters for the
// public listing
func (r *AnimalRepository) SearchAvailable(species, breed string, limit, offset int) ([]models.Animal, int64, error) {
	query := r.db.Model(&models.Animal{}).Where("status = ?", models.AdoptionStatusAvailable)
	if species != "" {
		query = query.Where("species = ?", species)
	}
	if breed != "" {
		query = query.Where("breed_name ILIKE ?", "%"+breed+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var animals []models.Animal
	if err := query.Limit(limit).Offset(offset).Find(&animals).Error; err != nil {
		return nil, 0, err
	}

	return animals, total, nil
}

// Update updates an animal
func (r *AnimalRepository) Update(animal *models.Animal) error {
	return r.db.Save(animal).Error
}

// Delete deletes an animal
func (r *AnimalRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Animal{}, "id = ?", id).Error
}
