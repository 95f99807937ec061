package models

import (
	"time"

	"github.com/google/uuid"
)

// ShortURL maps a short identifier to its original URL.
//
// ShortID is either generator-produced or a caller-supplied alias; uniqueness
// is enforced by the database index, not by the application. OwnerID is a weak
// reference to a user: NULL means the link was created anonymously, and
// deleting a user never cascades to their links. The record is immutable after
// creation except for Clicks, which only the atomic increment touches.
type ShortURL struct {
	BaseModel
	ShortID     string     `json:"short_id" gorm:"size:20;uniqueIndex;not null" validate:"required,min=3,max=20"`
	OriginalURL string     `json:"original_url" gorm:"size:2000;not null" validate:"required,url,max=2000"`
	OwnerID     *uuid.UUID `json:"owner_id,omitempty" gorm:"type:uuid;index"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	Clicks      int64      `json:"clicks" gorm:"not null;default:0"`
	IsCustom    bool       `json:"is_custom" gorm:"not null;default:false"`
}

// TableName returns the table name for ShortURL
func (ShortURL) TableName() string {
	return "short_urls"
}
