package models

// User represents a registered account that can own short URLs
type User struct {
	BaseModel
	Username     string `json:"username" gorm:"size:50;not null" validate:"required,min=3,max=50"`
	Email        string `json:"email" gorm:"uniqueIndex;size:255;not null" validate:"required,email,max=255"`
	PasswordHash string `json:"-" gorm:"size:100;not null"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
