package models

import "github.com/google/uuid"

// Shelter belongs to exactly one organization for its lifetime and is the
// unit of resource scoping: every access-controlled record is transitively
// owned by exactly one shelter.
type Shelter struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name           string    `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	City           string    `json:"city,omitempty" gorm:"size:100"`
	Address        string    `json:"address,omitempty" gorm:"size:255"`
	Phone          string    `json:"phone,omitempty" gorm:"size:30"`
	ContactEmail   string    `json:"contact_email,omitempty" gorm:"size:255" validate:"omitempty,email"`

	// Relationships
	StaffMemberships []StaffMembership `json:"staff_memberships,omitempty" gorm:"foreignKey:ShelterID;constraint:OnDelete:CASCADE"`
	Animals          []Animal          `json:"animals,omitempty" gorm:"foreignKey:ShelterID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Shelter
func (Shelter) TableName() string {
	return "shelters"
}
