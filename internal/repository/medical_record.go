package repository

import (
	"pawbase-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MedicalRecordRepository handles database operations for medical records
type MedicalRecordRepository struct {
	db *gorm.DB
}

// NewMedicalRecordRepository creates a new medical record repository
func NewMedicalRecordRepository(db *gorm.DB) *MedicalRecordRepository {
	return &MedicalRecordRepository{db: db}
}

// Create creates a new medical record
func (r *MedicalRecordRepository) Create(record *models.MedicalRecord) error {
	return r.db.Create(record).Error
}

// GetByID retrieves a medical record by ID
func (r *MedicalRecordRepository) GetByID(id uuid.UUID) (*models.MedicalRecord, error) {
	var record models.MedicalRecord
	err := r.db.First(&record, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetByAnimalID retrieves all medical records of an animal
func (r *MedicalRecordRepository) GetByAnimalID(animalID uuid.UUID) ([]models.MedicalRecord, error) {
	var records []models.MedicalRecord
	err := r.db.Where("animal_id = ?", animalID).Order("visit_date DESC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// GetByShelterIDs retrieves medical records for animals within the shelter set
func (r *MedicalRecordRepository) GetByShelterIDs(shelterIDs []uuid.UUID, limit, offset int) ([]models.MedicalRecord, int64, error) {
	if len(shelterIDs) == 0 {
		return []models.MedicalRecord{}, 0, nil
	}

	query := r.db.Model(&models.MedicalRecord{}).
		Joins("JOIN animals ON animals.id = medical_records.animal_id").
		Where("animals.shelter_id IN ?", shelterIDs)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []models.MedicalRecord
	if err := query.Limit(limit).Offset(offset).Find(&records).Error; err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// Update updates a medical record
func (r *MedicalRecordRepository) Update(record *models.MedicalRecord) error {
	return r.db.Save(record).Error
}

// Delete deletes a medical record
func (r *MedicalRecordRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.MedicalRecord{}, "id = ?", id).Error
}
