package shortid_test

import (
	"strings"
	"testing"

	"shortlink-backend/internal/shortid"

	"github.com/stretchr/testify/assert"
)

func TestNewID_LengthAndAlphabet(t *testing.T) {
	gen := shortid.NewGenerator(7)

	for i := 0; i < 100; i++ {
		id, err := gen.NewID()
		assert.NoError(t, err)
		assert.Len(t, id, 7)
		for _, r := range id {
			assert.True(t, strings.ContainsRune(shortid.Alphabet, r), "unexpected character %q in id %q", r, id)
		}
	}
}

func TestNewID_GeneratedIDsPassAliasValidation(t *testing.T) {
	gen := shortid.NewGenerator(7)

	id, err := gen.NewID()
	assert.NoError(t, err)
	assert.True(t, shortid.ValidateAlias(id))
}

func TestNewGenerator_OutOfRangeLengthFallsBackToDefault(t *testing.T) {
	assert.Equal(t, shortid.DefaultLength, shortid.NewGenerator(0).Length())
	assert.Equal(t, shortid.DefaultLength, shortid.NewGenerator(-3).Length())
	assert.Equal(t, shortid.DefaultLength, shortid.NewGenerator(21).Length())
	assert.Equal(t, 10, shortid.NewGenerator(10).Length())
}

func TestNewID_NoObviousRepeats(t *testing.T) {
	gen := shortid.NewGenerator(7)

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id, err := gen.NewID()
		assert.NoError(t, err)
		assert.False(t, seen[id], "duplicate id %q after %d draws", id, i)
		seen[id] = true
	}
}

func TestValidateAlias(t *testing.T) {
	tests := []struct {
		name  string
		alias string
		want  bool
	}{
		{"simple word", "promo", true},
		{"minimum length", "abc", true},
		{"maximum length", strings.Repeat("a", 20), true},
		{"hyphen and underscore", "my-link_2024", true},
		{"digits only", "12345", true},
		{"too short", "ab", false},
		{"too long", strings.Repeat("a", 21), false},
		{"empty", "", false},
		{"space", "my link", false},
		{"slash", "a/b/c", false},
		{"unicode", "promö", false},
		{"dot", "a.b.c", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shortid.ValidateAlias(tt.alias))
		})
	}
}
