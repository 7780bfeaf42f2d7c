package core

import (
	"pqdate/domain"
	"pqdate/errors"
	"time"
)

// ToLocal relabels i: the result's wall clock in time.Local shows the
// numbers i shows in UTC. 2025-01-31T12:34:56Z becomes 12:34:56 local time.
//
// This is not a zone conversion. Read back in UTC the result is generally a
// different moment; it exists to display UTC numbers as local numbers.
func ToLocal(i domain.Instant) (domain.Instant, error) {
	return ToLocalIn(i, time.Local)
}

// ToLocalIn is ToLocal against an explicit location.
func ToLocalIn(i domain.Instant, loc *time.Location) (domain.Instant, error) {
	if err := AssertValid(i); err != nil {
		return domain.Invalid(), err
	}
	if loc == nil {
		return domain.Invalid(), errors.ErrInvalidLocation
	}
	u := i.UTC()
	r := domain.FromTime(time.Date(u.Year(), u.Month(), u.Day(),
		u.Hour(), u.Minute(), u.Second(), u.Nanosecond(), loc))
	if !r.Valid() {
		return domain.Invalid(), errors.ErrOutOfRange
	}
	return r, nil
}
