package core

import (
	"pqdate/domain"
	"pqdate/errors"
	"time"

	"github.com/samber/lo"
)

const (
	msPerSecond int64 = 1000
	msPerMinute       = 60 * msPerSecond
	msPerHour         = 60 * msPerMinute
	msPerDay          = 24 * msPerHour
)

// Add applies d to i in a fixed order: years, months, days, then the combined
// hour/minute/second delta. Month and year steps clamp the day of month to the
// target month's length, so Jan 31 + 1 month is the last day of February.
// Day and clock steps are plain millisecond offsets.
func Add(i domain.Instant, d *domain.Duration) (domain.Instant, error) {
	if err := AssertValid(i); err != nil {
		return domain.Invalid(), err
	}
	if d == nil {
		return domain.Invalid(), errors.ErrInvalidDuration
	}
	if err := d.Validate(); err != nil {
		return domain.Invalid(), errors.Wrap(errors.ErrInvalidDuration, err)
	}

	r := i
	if years := lo.FromPtr(d.Years); years != 0 {
		r = addMonths(r, years*12)
	}
	if months := lo.FromPtr(d.Months); months != 0 && r.Valid() {
		r = addMonths(r, months)
	}
	if days := lo.FromPtr(d.Days); days != 0 && r.Valid() {
		r = shift(r, int64(days)*msPerDay)
	}
	hours, minutes, seconds := lo.FromPtr(d.Hours), lo.FromPtr(d.Minutes), lo.FromPtr(d.Seconds)
	if (hours != 0 || minutes != 0 || seconds != 0) && r.Valid() {
		r = shift(r, int64(hours)*msPerHour+int64(minutes)*msPerMinute+int64(seconds)*msPerSecond)
	}

	if !r.Valid() {
		return domain.Invalid(), errors.ErrOutOfRange
	}
	return r, nil
}

// Sub is Add with every present field of d negated.
func Sub(i domain.Instant, d *domain.Duration) (domain.Instant, error) {
	if d == nil {
		return Add(i, nil)
	}
	return Add(i, lo.ToPtr(d.Negate()))
}

// StartOf truncates i to the first millisecond of its UTC day, month or year.
func StartOf(i domain.Instant, unit domain.Unit) (domain.Instant, error) {
	if err := AssertValid(i); err != nil {
		return domain.Invalid(), err
	}
	t := i.UTC()
	switch unit {
	case domain.Day:
		return utcInstant(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0)
	case domain.Month:
		return utcInstant(t.Year(), t.Month(), 1, 0, 0, 0, 0)
	case domain.Year:
		return utcInstant(t.Year(), time.January, 1, 0, 0, 0, 0)
	}
	return domain.Invalid(), errors.ErrInvalidUnit
}

// EndOf returns the last millisecond of i's UTC day, month or year.
func EndOf(i domain.Instant, unit domain.Unit) (domain.Instant, error) {
	if err := AssertValid(i); err != nil {
		return domain.Invalid(), err
	}
	t := i.UTC()
	switch unit {
	case domain.Day:
		return utcInstant(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999)
	case domain.Month:
		return utcInstant(t.Year(), t.Month(), DaysInMonth(t.Year(), t.Month()), 23, 59, 59, 999)
	case domain.Year:
		return utcInstant(t.Year(), time.December, 31, 23, 59, 59, 999)
	}
	return domain.Invalid(), errors.ErrInvalidUnit
}

// DaysInMonth steps back one day from the first millisecond of the following month.
func DaysInMonth(year int, month time.Month) int {
	nextYear, nextMonth := year, month+1
	if month == time.December {
		nextYear, nextMonth = year+1, time.January
	}
	firstNext := time.Date(nextYear, nextMonth, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	return time.UnixMilli(firstNext - msPerDay).UTC().Day()
}

func addMonths(i domain.Instant, months int) domain.Instant {
	t := i.UTC()
	total := int(t.Month()-time.January) + months
	targetYear := t.Year() + floorDiv(total, 12)
	targetMonth := time.Month(floorMod(total, 12)) + time.January
	day := min(t.Day(), DaysInMonth(targetYear, targetMonth))
	return domain.FromTime(time.Date(targetYear, targetMonth, day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC))
}

func shift(i domain.Instant, deltaMs int64) domain.Instant {
	return domain.FromUnixMilli(i.UnixMilli() + deltaMs)
}

// utcInstant fails with ErrOutOfRange when the boundary falls past the
// representable range, e.g. the end of the last representable year.
func utcInstant(year int, month time.Month, day, hour, minute, second, millisecond int) (domain.Instant, error) {
	i := domain.FromTime(time.Date(year, month, day, hour, minute, second,
		millisecond*int(time.Millisecond), time.UTC))
	if !i.Valid() {
		return domain.Invalid(), errors.ErrOutOfRange
	}
	return i, nil
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return ((a % b) + b) % b
}
