package models

import (
	"time"

	"github.com/google/uuid"
)

// MedicalRecord is scoped through its animal's shelter.
type MedicalRecord struct {
	BaseModel
	AnimalID  uuid.UUID `json:"animal_id" gorm:"type:uuid;not null;index" validate:"required"`
	VisitDate time.Time `json:"visit_date" gorm:"not null" validate:"required"`
	Diagnosis string    `json:"diagnosis" gorm:"type:text;not null" validate:"required"`
	Treatment string    `json:"treatment,omitempty" gorm:"type:text"`
	VetName   string    `json:"vet_name,omitempty" gorm:"size:100"`
}

// TableName returns the table name for MedicalRecord
func (MedicalRecord) TableName() string {
	return "medical_records"
}
