package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "short url"}
		assert.Equal(t, "short url not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "short url"}
		err2 := &NotFoundError{Entity: "short url"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "short url"}
		err2 := &NotFoundError{Entity: "user"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrShortURLNotFound, ErrShortURLNotFound))
		assert.False(t, errors.Is(ErrShortURLNotFound, ErrUserNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrShortURLNotFound))
		assert.False(t, IsNotFound(ErrAliasTaken))
	})

	t.Run("NewNotFoundError constructor", func(t *testing.T) {
		err := NewNotFoundError("api key")
		assert.Equal(t, "api key not found", err.Error())
		assert.True(t, IsNotFound(err))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "alias", Context: "for another short url"}
		assert.Equal(t, "alias already exists for another short url", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "alias"}
		assert.Equal(t, "alias already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "alias", Context: "for another short url"}
		assert.True(t, errors.Is(err1, ErrAliasTaken))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrAliasTaken))
		assert.True(t, IsAlreadyExists(ErrUserExists))
		assert.False(t, IsAlreadyExists(ErrShortURLNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "custom_alias", Message: "too short"}
		assert.Equal(t, "validation error: custom_alias - too short", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "too short"}
		assert.Equal(t, "validation error: too short", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("custom_alias", "too short")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrShortURLNotFound))
	})
}

func TestAuthErrors(t *testing.T) {
	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrInvalidCredentials))
		assert.False(t, IsAuthentication(ErrNotAuthorized))
	})

	t.Run("IsAuthorization helper", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrNotAuthorized))
		assert.False(t, IsAuthorization(ErrInvalidCredentials))
	})

	t.Run("NewAuthorizationError constructor", func(t *testing.T) {
		err := NewAuthorizationError("you do not own this short url")
		assert.Equal(t, "you do not own this short url", err.Error())
		assert.True(t, IsAuthorization(err))
		assert.False(t, IsAuthentication(err))
	})
}

func TestTransientError(t *testing.T) {
	t.Run("Error message carries the operation", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := NewTransientError("create short url", cause)
		assert.Equal(t, "create short url: connection refused", err.Error())
	})

	t.Run("Unwrap exposes the cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := NewTransientError("create short url", cause)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("IsTransient helper", func(t *testing.T) {
		err := NewTransientError("create short url", errors.New("connection refused"))
		assert.True(t, IsTransient(err))
		assert.False(t, IsTransient(ErrShortURLNotFound))
	})

	t.Run("IsTransient sees through wrapping", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", NewTransientError("op", errors.New("inner")))
		assert.True(t, IsTransient(err))
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("expired and exhausted are distinct sentinels", func(t *testing.T) {
		assert.False(t, errors.Is(ErrShortURLExpired, ErrGenerationExhausted))
		assert.True(t, errors.Is(fmt.Errorf("wrap: %w", ErrShortURLExpired), ErrShortURLExpired))
	})
}
