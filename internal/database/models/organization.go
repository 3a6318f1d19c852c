package models

import "github.com/google/uuid"

// Organization is the root entity for multi-tenancy. Every organization has
// exactly one admin user (AdminID); an admin manages at most one organization.
type Organization struct {
	BaseModel
	Name         string    `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	ContactEmail string    `json:"contact_email,omitempty" gorm:"size:255" validate:"omitempty,email,max=255"`
	AdminID      uuid.UUID `json:"admin_id" gorm:"type:uuid;uniqueIndex;not null" validate:"required"`

	// Relationships
	Shelters []Shelter `json:"shelters,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
