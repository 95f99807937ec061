package service

import "github.com/google/uuid"

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// IDGenerator produces random short ids. Uniqueness is the caller's problem:
// the service retries against the store on collision.
type IDGenerator interface {
	NewID() (string, error)
}

// ShortURLServiceInterface defines the interface for short URL business logic
type ShortURLServiceInterface interface {
	Create(req *CreateShortURLRequest, ownerID *uuid.UUID) (*ShortURLResponse, error)
	Resolve(shortID string) (string, error)
	ListByOwner(ownerID uuid.UUID) (*ShortURLListResponse, error)
	Delete(id uuid.UUID, ownerID uuid.UUID) error
	QRCode(id uuid.UUID, ownerID uuid.UUID) (string, error)
}
