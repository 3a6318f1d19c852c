package repository

import (
	"pawbase-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StaffMembershipRepository handles database operations for staff memberships
type StaffMembershipRepository struct {
	db *gorm.DB
}

// NewStaffMembershipRepository creates a new staff membership repository
func NewStaffMembershipRepository(db *gorm.DB) *StaffMembershipRepository {
	return &StaffMembershipRepository{db: db}
}

// Create creates a new staff membership
func (r *StaffMembershipRepository) Create(m *models.StaffMembership) error {
	return r.db.Create(m).Error
}

// GetByID retrieves a staff membership by ID
func (r *StaffMembershipRepository) GetByID(id uuid.UUID) (*models.StaffMembership, error) {
	var m models.StaffMembership
	err := r.db.First(&m, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetByUserID retrieves all memberships of a user, oldest first so the
// tenant resolver's "first membership" is deterministic.
func (r *StaffMembershipRepository) GetByUserID(userID uuid.UUID) ([]models.StaffMembership, error) {
	var memberships []models.StaffMembership
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&memberships).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}

// GetByUserAndShelter retrieves the membership linking a user to a shelter
func (r *StaffMembershipRepository) GetByUserAndShelter(userID, shelterID uuid.UUID) (*models.StaffMembership, error) {
	var m models.StaffMembership
	err := r.db.First(&m, "user_id = ? AND shelter_id = ?", userID, shelterID).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetByShelterIDs retrieves all memberships for the given shelters
func (r *StaffMembershipRepository) GetByShelterIDs(shelterIDs []uuid.UUID) ([]models.StaffMembership, error) {
	if len(shelterIDs) == 0 {
		return []models.StaffMembership{}, nil
	}
	var memberships []models.StaffMembership
	err := r.db.Where("shelter_id IN ?", shelterIDs).Find(&memberships).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}

// Update updates a staff membership
func (r *StaffMembershipRepository) Update(m *models.StaffMembership) error {
	return r.db.Save(m).Error
}

// Delete deletes a staff membership
func (r *StaffMembershipRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.StaffMembership{}, "id = ?", id).Error
}
