package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shortlink-backend/internal/database/models"
	apperrors "shortlink-backend/internal/errors"
	"shortlink-backend/internal/expiry"
	"shortlink-backend/internal/logger"
	"shortlink-backend/internal/repository"
	"shortlink-backend/internal/shortid"
	"shortlink-backend/internal/shorturl"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// maxGenerateAttempts bounds the retry loop when a generated id collides with
// an existing record. With a 64-char alphabet and 7-char ids a collision is
// already rare; exhausting five is a server fault, not a user error.
const maxGenerateAttempts = 5

// ShortURLService handles the short link lifecycle: create, resolve, list, delete
type ShortURLService struct {
	repo      repository.ShortURLRepositoryInterface
	generator IDGenerator
	builder   *shorturl.Builder
	encoder   shorturl.Encoder
	validator *validator.Validate
}

// Ensure ShortURLService implements ShortURLServiceInterface
var _ ShortURLServiceInterface = (*ShortURLService)(nil)

// NewShortURLService creates a new short URL service
func NewShortURLService(
	repo repository.ShortURLRepositoryInterface,
	generator IDGenerator,
	builder *shorturl.Builder,
	encoder shorturl.Encoder,
	validator *validator.Validate,
) *ShortURLService {
	return &ShortURLService{
		repo:      repo,
		generator: generator,
		builder:   builder,
		encoder:   encoder,
		validator: validator,
	}
}

// CreateShortURLRequest represents the request to shorten a URL
type CreateShortURLRequest struct {
	OriginalURL  string `json:"original_url" validate:"required,url,max=2000"`
	CustomAlias  string `json:"custom_alias,omitempty"`
	ExpiryOption string `json:"expiry_option,omitempty"`
}

// ShortURLResponse represents a short URL in API responses
type ShortURLResponse struct {
	ID          uuid.UUID  `json:"id"`
	ShortID     string     `json:"short_id"`
	ShortURL    string     `json:"short_url"`
	OriginalURL string     `json:"original_url"`
	OwnerID     *uuid.UUID `json:"owner_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	Clicks      int64      `json:"clicks"`
	IsCustom    bool       `json:"is_custom"`
	QRCode      string     `json:"qr_code,omitempty"`
}

// ShortURLListResponse represents the caller's short URLs
type ShortURLListResponse struct {
	URLs  []ShortURLResponse `json:"urls"`
	Total int                `json:"total"`
}

// Create validates the request, resolves a short id (caller alias or generated)
// and persists the record. A taken alias fails immediately with ErrAliasTaken;
// a generated-id collision is retried with fresh ids up to maxGenerateAttempts
// before giving up with ErrGenerationExhausted.
func (s *ShortURLService) Create(req *CreateShortURLRequest, ownerID *uuid.UUID) (*ShortURLResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("original_url", "must be a valid URL of at most 2000 characters")
	}

	alias := strings.TrimSpace(req.CustomAlias)
	if alias != "" && !shortid.ValidateAlias(alias) {
		return nil, apperrors.NewValidationError("custom_alias",
			"must be 3-20 characters and contain only letters, numbers, hyphens, and underscores")
	}

	if !expiry.KnownOption(req.ExpiryOption) {
		return nil, apperrors.NewValidationError("expiry_option", "must be one of: never, 1h, 1d, 7d, 30d")
	}
	expiresAt := expiry.ResolveOption(req.ExpiryOption, time.Now())

	url := &models.ShortURL{
		OriginalURL: req.OriginalURL,
		OwnerID:     ownerID,
		ExpiresAt:   expiresAt,
	}

	if alias != "" {
		url.ShortID = alias
		url.IsCustom = true
		if err := s.repo.Create(url); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, apperrors.ErrAliasTaken
			}
			return nil, apperrors.NewTransientError("create short url", err)
		}
		resp := s.toResponse(url)
		return &resp, nil
	}

	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		id, err := s.generator.NewID()
		if err != nil {
			return nil, fmt.Errorf("failed to generate short id: %w", err)
		}
		url.ShortID = id

		err = s.repo.Create(url)
		if err == nil {
			resp := s.toResponse(url)
			return &resp, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewTransientError("create short url", err)
		}
		logger.New().WithShortID(id).Warnf("Generated short id collided, retrying (%d/%d)", attempt+1, maxGenerateAttempts)
	}

	return nil, apperrors.ErrGenerationExhausted
}

// Resolve returns the original URL for a short id and counts the click.
// An unknown id maps to ErrShortURLNotFound and an expired one to
// ErrShortURLExpired; expired records are kept and their counter untouched.
func (s *ShortURLService) Resolve(shortID string) (string, error) {
	url, err := s.repo.GetByShortID(shortID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrShortURLNotFound
		}
		return "", apperrors.NewTransientError("resolve short url", err)
	}

	if expiry.Expired(url.ExpiresAt, time.Now()) {
		return "", apperrors.ErrShortURLExpired
	}

	updated, err := s.repo.IncrementClicks(shortID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrShortURLNotFound
		}
		return "", apperrors.NewTransientError("count click", err)
	}

	return updated.OriginalURL, nil
}

// ListByOwner returns the caller's short URLs, most recently created first
func (s *ShortURLService) ListByOwner(ownerID uuid.UUID) (*ShortURLListResponse, error) {
	urls, err := s.repo.GetByOwner(ownerID)
	if err != nil {
		return nil, apperrors.NewTransientError("list short urls", err)
	}

	responses := make([]ShortURLResponse, len(urls))
	for i, u := range urls {
		responses[i] = s.toResponse(&u)
	}

	return &ShortURLListResponse{
		URLs:  responses,
		Total: len(responses),
	}, nil
}

// Delete removes a short URL iff it is owned by the acting principal.
// Anonymous records have no owner and therefore no delete path.
func (s *ShortURLService) Delete(id uuid.UUID, ownerID uuid.UUID) error {
	url, err := s.getOwned(id, ownerID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(url.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrShortURLNotFound
		}
		return apperrors.NewTransientError("delete short url", err)
	}
	return nil
}

// QRCode renders the QR data URL for an owned short URL
func (s *ShortURLService) QRCode(id uuid.UUID, ownerID uuid.UUID) (string, error) {
	url, err := s.getOwned(id, ownerID)
	if err != nil {
		return "", err
	}

	dataURL, err := s.encoder.DataURL(s.builder.ShortURL(url.ShortID))
	if err != nil {
		return "", fmt.Errorf("failed to render qr code: %w", err)
	}
	return dataURL, nil
}

// getOwned fetches a record and enforces the ownership rule: permitted iff
// owner equals the acting principal. A NULL owner never matches.
func (s *ShortURLService) getOwned(id uuid.UUID, ownerID uuid.UUID) (*models.ShortURL, error) {
	url, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShortURLNotFound
		}
		return nil, apperrors.NewTransientError("get short url", err)
	}

	if url.OwnerID == nil || *url.OwnerID != ownerID {
		return nil, apperrors.ErrNotAuthorized
	}
	return url, nil
}

// toResponse converts a ShortURL model to an API response. The QR code is
// best effort; a failed render leaves the field empty rather than failing
// the whole response.
func (s *ShortURLService) toResponse(u *models.ShortURL) ShortURLResponse {
	external := s.builder.ShortURL(u.ShortID)

	resp := ShortURLResponse{
		ID:          u.ID,
		ShortID:     u.ShortID,
		ShortURL:    external,
		OriginalURL: u.OriginalURL,
		OwnerID:     u.OwnerID,
		CreatedAt:   u.CreatedAt,
		ExpiresAt:   u.ExpiresAt,
		Clicks:      u.Clicks,
		IsCustom:    u.IsCustom,
	}
	if s.encoder != nil {
		if qr, err := s.encoder.DataURL(external); err == nil {
			resp.QRCode = qr
		}
	}
	return resp
}
