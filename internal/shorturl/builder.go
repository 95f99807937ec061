// Package shorturl formats external short URL strings and renders them as QR
// data URLs for API responses.
package shorturl

import "strings"

// Builder formats public short URLs from a configured base URL.
type Builder struct {
	baseURL string
}

// NewBuilder creates a builder; a trailing slash on baseURL is tolerated.
func NewBuilder(baseURL string) *Builder {
	return &Builder{baseURL: strings.TrimRight(baseURL, "/")}
}

// ShortURL returns the external form of a short id: base_url + "/" + shortId
func (b *Builder) ShortURL(shortID string) string {
	return b.baseURL + "/" + shortID
}
