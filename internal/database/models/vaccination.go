package models

import (
	"time"

	"github.com/google/uuid"
)

// Vaccination is scoped through its animal's shelter. StaffUserID records
// who administered it.
type Vaccination struct {
	BaseModel
	AnimalID         uuid.UUID  `json:"animal_id" gorm:"type:uuid;not null;index" validate:"required"`
	StaffUserID      uuid.UUID  `json:"staff_user_id" gorm:"type:uuid;not null;index"`
	VaccineName      string     `json:"vaccine_name" gorm:"not null;size:100" validate:"required,max=100"`
	DateAdministered time.Time  `json:"date_administered" gorm:"not null" validate:"required"`
	NextDueDate      *time.Time `json:"next_due_date,omitempty"`
}

// TableName returns the table name for Vaccination
func (Vaccination) TableName() string {
	return "vaccinations"
}
