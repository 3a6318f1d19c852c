package repository

import (
	"pawbase-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdoptionRequestRepository handles database operations for adoption requests
type AdoptionRequestRepository struct {
	db *gorm.DB
}

// NewAdoptionRequestRepository creates a new adoption request repository
func NewAdoptionRequestRepository(db *gorm.DB) *AdoptionRequestRepository {
	return &AdoptionRequestRepository{db: db}
}

// Create creates a new adoption request
func (r *AdoptionRequestRepository) Create(req *models.AdoptionRequest) error {
	return r.db.Create(req).Error
}

// GetByID retrieves an adoption request by ID
func (r *AdoptionRequestRepository) GetByID(id uuid.UUID) (*models.AdoptionRequest, error) {
	var req models.AdoptionRequest
	err := r.db.First(&req, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// GetByAdopterID retrieves the requests submitted by one adopter
func (r *AdoptionRequestRepository) GetByAdopterID(adopterID uuid.UUID, limit, offset int) ([]models.AdoptionRequest, int64, error) {
	query := r.db.Model(&models.AdoptionRequest{}).Where("adopter_user_id = ?", adopterID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var requests []models.AdoptionRequest
	if err := query.Limit(limit).Offset(offset).Find(&requests).Error; err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

// GetByShelterIDs retrieves requests for animals within the shelter set
func (r *AdoptionRequestRepository) GetByShelterIDs(shelterIDs []uuid.UUID, limit, offset int) ([]models.AdoptionRequest, int64, error) {
	if len(shelterIDs) == 0 {
		return []models.AdoptionRequest{}, 0, nil
	}

	query := r.db.Model(&models.AdoptionRequest{}).
		Joins("JOIN animals ON animals.id = adoption_requests.animal_id").
		Where("animals.shelter_id IN ?", shelterIDs)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var requests []models.AdoptionRequest
	if err := query.Limit(limit).Offset(offset).Find(&requests).Error; err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

// Update updates an adoption request
func (r *AdoptionRequestRepository) Update(req *models.AdoptionRequest) error {
	return r.db.Save(req).Error
}

// Delete deletes an adoption request
func (r *AdoptionRequestRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.AdoptionRequest{}, "id = ?", id).Error
}
