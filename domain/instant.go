// Package domain contains the core concepts of pqdate.
// This file defines the Instant value and its construction rules.
// Instants are immutable: nothing in this module mutates one in place.
package domain

import "time"

// MaxUnixMilli bounds the representable range on both sides of the epoch
// (100,000,000 days).
const MaxUnixMilli int64 = 8_640_000_000_000_000

// Instant is a UTC-anchored point in time with millisecond precision.
// The zero value is not a valid instant.
type Instant struct {
	ms    int64
	valid bool
}

// FromUnixMilli returns the instant ms milliseconds after the Unix epoch.
// Counts outside [-MaxUnixMilli, MaxUnixMilli] yield an invalid instant.
func FromUnixMilli(ms int64) Instant {
	if ms < -MaxUnixMilli || ms > MaxUnixMilli {
		return Instant{}
	}
	return Instant{ms: ms, valid: true}
}

// FromTime truncates t to the millisecond (towards the past).
func FromTime(t time.Time) Instant {
	if t.Year() > 300000 || t.Year() < -300000 {
		return Instant{}
	}
	return FromUnixMilli(t.UnixMilli())
}

// Invalid returns an instant that represents no moment at all.
func Invalid() Instant {
	return Instant{}
}

// Valid reports whether i represents a real moment.
func (i Instant) Valid() bool {
	return i.valid
}

// UnixMilli returns the milliseconds since the Unix epoch. Meaningless when i is invalid.
func (i Instant) UnixMilli() int64 {
	return i.ms
}

// UTC returns the UTC projection used by every calendar computation.
func (i Instant) UTC() time.Time {
	return time.UnixMilli(i.ms).UTC()
}

// In returns the wall-clock projection of i in loc.
func (i Instant) In(loc *time.Location) time.Time {
	return time.UnixMilli(i.ms).In(loc)
}
