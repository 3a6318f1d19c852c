package models

import (
	"time"

	"github.com/google/uuid"
)

// Animal is a scoped resource; shelter_id decides which callers may see it.
type Animal struct {
	BaseModel
	ShelterID   uuid.UUID      `json:"shelter_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name        string         `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Species     string         `json:"species" gorm:"not null;size:50" validate:"required,max=50"`
	BreedName   string         `json:"breed_name,omitempty" gorm:"size:100"`
	BirthDate   *time.Time     `json:"birth_date,omitempty"`
	Status      AdoptionStatus `json:"status" gorm:"type:varchar(20);not null;default:'Available'"`
	Description string         `json:"description,omitempty" gorm:"type:text"`

	// Relationships
	MedicalRecords []MedicalRecord `json:"medical_records,omitempty" gorm:"foreignKey:AnimalID;constraint:OnDelete:CASCADE"`
	Vaccinations   []Vaccination   `json:"vaccinations,omitempty" gorm:"foreignKey:AnimalID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Animal
func (Animal) TableName() string {
	return "animals"
}
