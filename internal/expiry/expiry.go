// Package expiry converts symbolic expiration options into absolute instants
// and decides whether a record is past its deadline. Both functions are pure
// in the passed-in clock value.
package expiry

import "time"

// Expiration options accepted on create requests.
const (
	OptionNever = "never"
	Option1h    = "1h"
	Option1d    = "1d"
	Option7d    = "7d"
	Option30d   = "30d"
)

// ResolveOption returns the absolute expiry for a symbolic option, relative to
// now. Empty, "never" and unrecognized options all resolve to nil (no expiry).
func ResolveOption(option string, now time.Time) *time.Time {
	var d time.Duration
	switch option {
	case Option1h:
		d = time.Hour
	case Option1d:
		d = 24 * time.Hour
	case Option7d:
		d = 7 * 24 * time.Hour
	case Option30d:
		d = 30 * 24 * time.Hour
	default:
		return nil
	}
	at := now.Add(d)
	return &at
}

// KnownOption reports whether option is a recognized expiry symbol. Empty is
// allowed and means never.
func KnownOption(option string) bool {
	switch option {
	case "", OptionNever, Option1h, Option1d, Option7d, Option30d:
		return true
	}
	return false
}

// Expired reports whether a record with the given deadline is expired at now.
// A nil deadline never expires; the comparison is strict, so a record is still
// live at the exact deadline instant.
func Expired(expiresAt *time.Time, now time.Time) bool {
	if expiresAt == nil {
		return false
	}
	return now.After(*expiresAt)
}
