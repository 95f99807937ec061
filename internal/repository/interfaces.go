package repository

import (
	"time"

	"shortlink-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ShortURLRepositoryInterface defines the interface for short URL repository operations
type ShortURLRepositoryInterface interface {
	// Create inserts the record only if no existing row shares its short id.
	// Returns gorm.ErrDuplicatedKey when the short id is already taken.
	Create(url *models.ShortURL) error
	GetByID(id uuid.UUID) (*models.ShortURL, error)
	GetByShortID(shortID string) (*models.ShortURL, error)
	// IncrementClicks bumps the click counter in a single UPDATE and returns
	// the updated row. Concurrent calls must not lose updates.
	IncrementClicks(shortID string) (*models.ShortURL, error)
	GetByOwner(ownerID uuid.UUID) ([]models.ShortURL, error)
	Delete(id uuid.UUID) error
	PurgeExpired(now time.Time) (int64, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}
