package repository

import (
	"time"

	"shortlink-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ShortURLRepository handles database operations for short URLs
type ShortURLRepository struct {
	db *gorm.DB
}

// Ensure ShortURLRepository implements ShortURLRepositoryInterface
var _ ShortURLRepositoryInterface = (*ShortURLRepository)(nil)

// NewShortURLRepository creates a new short URL repository
func NewShortURLRepository(db *gorm.DB) *ShortURLRepository {
	return &ShortURLRepository{db: db}
}

// Create inserts a new short URL, relying on the unique index on short_id to
// close the check-then-insert race: ON CONFLICT DO NOTHING turns a concurrent
// duplicate into zero affected rows instead of a partial failure.
func (r *ShortURLRepository) Create(url *models.ShortURL) error {
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "short_id"}},
		DoNothing: true,
	}).Create(url)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrDuplicatedKey
	}
	return nil
}

// GetByID retrieves a short URL by its record UUID
func (r *ShortURLRepository) GetByID(id uuid.UUID) (*models.ShortURL, error) {
	var url models.ShortURL
	if err := r.db.Where("id = ?", id).First(&url).Error; err != nil {
		return nil, err
	}
	return &url, nil
}

// GetByShortID retrieves a short URL by its short identifier
func (r *ShortURLRepository) GetByShortID(shortID string) (*models.ShortURL, error) {
	var url models.ShortURL
	if err := r.db.Where("short_id = ?", shortID).First(&url).Error; err != nil {
		return nil, err
	}
	return &url, nil
}

// IncrementClicks bumps the click counter atomically in the database and
// returns the updated record. A single UPDATE ... RETURNING serializes
// concurrent increments, so none are lost.
func (r *ShortURLRepository) IncrementClicks(shortID string) (*models.ShortURL, error) {
	var url models.ShortURL
	result := r.db.Model(&url).
		Clauses(clause.Returning{}).
		Where("short_id = ?", shortID).
		UpdateColumn("clicks", gorm.Expr("clicks + 1"))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &url, nil
}

// GetByOwner retrieves all short URLs owned by the given user, newest first
func (r *ShortURLRepository) GetByOwner(ownerID uuid.UUID) ([]models.ShortURL, error) {
	var urls []models.ShortURL
	if err := r.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&urls).Error; err != nil {
		return nil, err
	}
	return urls, nil
}

// Delete removes a short URL by record UUID
func (r *ShortURLRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.ShortURL{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// PurgeExpired deletes records whose deadline is strictly in the past and
// returns the number removed. Resolution never calls this; it exists for
// operator-driven cleanup.
func (r *ShortURLRepository) PurgeExpired(now time.Time) (int64, error) {
	result := r.db.Where("expires_at IS NOT NULL AND expires_at < ?", now).Delete(&models.ShortURL{})
	return result.RowsAffected, result.Error
}
