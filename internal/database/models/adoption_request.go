package models

import "github.com/google/uuid"

// AdoptionRequest is submitted by an adopter for an animal and decided by
// shelter staff or the org admin. Scoped through the animal's shelter.
type AdoptionRequest struct {
	BaseModel
	AnimalID      uuid.UUID     `json:"animal_id" gorm:"type:uuid;not null;index" validate:"required"`
	AdopterUserID uuid.UUID     `json:"adopter_user_id" gorm:"type:uuid;not null;index" validate:"required"`
	Status        RequestStatus `json:"status" gorm:"type:varchar(20);not null;default:'Submitted'"`
	StaffNotes    string        `json:"staff_notes,omitempty" gorm:"type:text"`

	Animal *Animal `json:"animal,omitempty" gorm:"foreignKey:AnimalID"`
}

// TableName returns the table name for AdoptionRequest
func (AdoptionRequest) TableName() string {
	return "adoption_requests"
}
