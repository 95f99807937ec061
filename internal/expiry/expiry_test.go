package expiry_test

import (
	"testing"
	"time"

	"shortlink-backend/internal/expiry"

	"github.com/stretchr/testify/assert"
)

var base = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestResolveOption(t *testing.T) {
	tests := []struct {
		option string
		want   *time.Time
	}{
		{"1h", timePtr(base.Add(time.Hour))},
		{"1d", timePtr(base.Add(24 * time.Hour))},
		{"7d", timePtr(base.Add(7 * 24 * time.Hour))},
		{"30d", timePtr(base.Add(30 * 24 * time.Hour))},
		{"never", nil},
		{"", nil},
		{"2h", nil},
		{"forever", nil},
	}

	for _, tt := range tests {
		t.Run("option "+tt.option, func(t *testing.T) {
			got := expiry.ResolveOption(tt.option, base)
			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				assert.NotNil(t, got)
				assert.True(t, tt.want.Equal(*got))
			}
		})
	}
}

func TestResolveOption_PureInNow(t *testing.T) {
	later := base.Add(3 * time.Hour)

	first := expiry.ResolveOption("1h", base)
	second := expiry.ResolveOption("1h", later)

	assert.True(t, first.Equal(base.Add(time.Hour)))
	assert.True(t, second.Equal(later.Add(time.Hour)))
}

func TestKnownOption(t *testing.T) {
	for _, option := range []string{"", "never", "1h", "1d", "7d", "30d"} {
		assert.True(t, expiry.KnownOption(option), "option %q should be known", option)
	}
	for _, option := range []string{"2h", "1w", "always", "Never", " 1h"} {
		assert.False(t, expiry.KnownOption(option), "option %q should be unknown", option)
	}
}

func TestExpired(t *testing.T) {
	deadline := base

	// Strict inequality: live at the deadline, expired the instant after.
	assert.False(t, expiry.Expired(&deadline, base.Add(-time.Second)))
	assert.False(t, expiry.Expired(&deadline, base))
	assert.True(t, expiry.Expired(&deadline, base.Add(time.Nanosecond)))
	assert.True(t, expiry.Expired(&deadline, base.Add(48*time.Hour)))
}

func TestExpired_NilDeadlineNeverExpires(t *testing.T) {
	assert.False(t, expiry.Expired(nil, base))
	assert.False(t, expiry.Expired(nil, base.Add(1000*24*time.Hour)))
}

func timePtr(t time.Time) *time.Time { return &t }
