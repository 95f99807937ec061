package testutils

import (
	"time"

	"shortlink-backend/internal/database/models"

	"github.com/google/uuid"
)

// ShortURLFactory provides methods to create test ShortURL data
type ShortURLFactory struct{}

// NewShortURLFactory creates a new ShortURLFactory
func NewShortURLFactory() *ShortURLFactory {
	return &ShortURLFactory{}
}

// Create creates a test ShortURL with default values. The short id is derived
// from the record id so factory output never collides on the unique index.
func (f *ShortURLFactory) Create() *models.ShortURL {
	id := uuid.New()
	return &models.ShortURL{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
		},
		ShortID:     "t" + id.String()[:6],
		OriginalURL: "https://example.com/articles/" + id.String()[:8],
		Clicks:      0,
	}
}

// WithShortID sets a custom short id
func (f *ShortURLFactory) WithShortID(shortID string) *models.ShortURL {
	url := f.Create()
	url.ShortID = shortID
	return url
}

// WithOwner sets the owner for the short URL
func (f *ShortURLFactory) WithOwner(ownerID uuid.UUID) *models.ShortURL {
	url := f.Create()
	url.OwnerID = &ownerID
	return url
}

// WithExpiry sets the expiration deadline
func (f *ShortURLFactory) WithExpiry(expiresAt time.Time) *models.ShortURL {
	url := f.Create()
	url.ExpiresAt = &expiresAt
	return url
}

// Expired creates a short URL whose deadline has already passed
func (f *ShortURLFactory) Expired() *models.ShortURL {
	return f.WithExpiry(time.Now().Add(-time.Hour))
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. The email is derived from
// the record id so factory output never collides on the unique index.
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
		},
		Username: "user_" + id.String()[:6],
		Email:    id.String()[:8] + "@test.com",
		// bcrypt hash of "password123"
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMye1VdLz7.Ue9l8ZIW8N2ZqBOSS6W1eVJW",
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}
