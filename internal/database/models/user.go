package models

// User is an authenticated account: an organization admin, a shelter staff
// member, or an adopter. Role is the primary axis for authorization checks.
type User struct {
	BaseModel
	Email        string   `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string   `json:"-" gorm:"column:password_hash;not null;size:255"`
	FullName     string   `json:"full_name" gorm:"size:200"`
	Role         UserRole `json:"role" gorm:"type:varchar(20);not null;default:'adopter'" validate:"required"`
	AvatarURL    string   `json:"avatar_url,omitempty" gorm:"size:500"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
