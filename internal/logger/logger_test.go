package logger_test

import (
	"context"
	"testing"

	"shortlink-backend/internal/logger"

	"github.com/stretchr/testify/assert"
)

func TestWithContextCarriesPrincipal(t *testing.T) {
	ctx := context.WithValue(context.Background(), "user_id", "user-123")

	log := logger.WithContext(ctx)

	assert.Equal(t, "user-123", log.Data["user"])
}

func TestWithContextDefaultsToAnonymous(t *testing.T) {
	log := logger.WithContext(context.Background())

	assert.Equal(t, "anonymous", log.Data["user"])
}

func TestWithFields(t *testing.T) {
	log := logger.New().WithFields(map[string]interface{}{
		"short_id": "abc1234",
		"clicks":   int64(3),
	})

	assert.Equal(t, "abc1234", log.Data["short_id"])
	assert.Equal(t, int64(3), log.Data["clicks"])
}

func TestWithShortID(t *testing.T) {
	log := logger.New().WithShortID("abc1234")

	assert.Equal(t, "abc1234", log.Data["short_id"])
}
