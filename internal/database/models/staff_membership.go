package models

import "github.com/google/uuid"

// StaffMembership links a user with role staff to one shelter. The pair is
// unique; a staff user may exist without any membership until an org admin
// assigns them.
type StaffMembership struct {
	BaseModel
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_staff_user_shelter" validate:"required"`
	ShelterID uuid.UUID `json:"shelter_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_staff_user_shelter" validate:"required"`

	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Shelter *Shelter `json:"shelter,omitempty" gorm:"foreignKey:ShelterID"`
}

// TableName returns the table name for StaffMembership
func (StaffMembership) TableName() string {
	return "staff_memberships"
}
