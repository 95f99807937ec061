package shortid

import (
	"crypto/rand"
	"fmt"
	"regexp"
)

// Alphabet is the URL-safe charset for short ids. 64 characters, so a random
// byte masked to 6 bits indexes it uniformly.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-"

const (
	// MinAliasLength and MaxAliasLength bound caller-supplied aliases.
	MinAliasLength = 3
	MaxAliasLength = 20

	// DefaultLength is the length of generated ids.
	DefaultLength = 7
)

var aliasPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Generator produces fixed-length random short ids. It gives no uniqueness
// guarantee; callers must verify against the store and retry on collision.
type Generator struct {
	length int
}

// NewGenerator creates a generator with the given id length (default 7 if out of range)
func NewGenerator(length int) *Generator {
	if length < MinAliasLength || length > MaxAliasLength {
		length = DefaultLength
	}
	return &Generator{length: length}
}

// NewID returns a random id of the configured length over Alphabet
func (g *Generator) NewID() (string, error) {
	buf := make([]byte, g.length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	for i, b := range buf {
		buf[i] = Alphabet[b&63]
	}
	return string(buf), nil
}

// Length returns the length of ids this generator produces
func (g *Generator) Length() int {
	return g.length
}

// ValidateAlias reports whether alias is a legal caller-supplied short id:
// 3-20 characters from [A-Za-z0-9_-]. Pure function, no I/O.
func ValidateAlias(alias string) bool {
	if len(alias) < MinAliasLength || len(alias) > MaxAliasLength {
		return false
	}
	return aliasPattern.MatchString(alias)
}
