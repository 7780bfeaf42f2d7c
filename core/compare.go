package core

import (
	"math"
	"pqdate/domain"
	"pqdate/errors"
)

func IsBefore(a, b domain.Instant) (bool, error) {
	if err := assertAll(a, b); err != nil {
		return false, err
	}
	return a.UnixMilli() < b.UnixMilli(), nil
}

func IsAfter(a, b domain.Instant) (bool, error) {
	if err := assertAll(a, b); err != nil {
		return false, err
	}
	return a.UnixMilli() > b.UnixMilli(), nil
}

// IsSame reports whether a and b fall in the same UTC day, month or year.
func IsSame(a, b domain.Instant, unit domain.Unit) (bool, error) {
	if err := assertAll(a, b); err != nil {
		return false, err
	}
	sa, err := StartOf(a, unit)
	if err != nil {
		return false, err
	}
	sb, err := StartOf(b, unit)
	if err != nil {
		return false, err
	}
	return sa.UnixMilli() == sb.UnixMilli(), nil
}

// DifferenceInDays counts calendar days from b to a: both are truncated to
// their UTC day before subtracting, so 23:59 and 00:01 on the next day are
// one day apart. Positive when a is after b.
func DifferenceInDays(a, b domain.Instant) (int, error) {
	if err := assertAll(a, b); err != nil {
		return 0, err
	}
	sa, err := StartOf(a, domain.Day)
	if err != nil {
		return 0, err
	}
	sb, err := StartOf(b, domain.Day)
	if err != nil {
		return 0, err
	}
	diff := float64(sa.UnixMilli()-sb.UnixMilli()) / float64(msPerDay)
	return int(math.Round(diff)), nil
}

// IsWithinInterval checks Start <= i <= End. An interval whose start is after
// its end is an error, not an empty range.
func IsWithinInterval(i domain.Instant, itv domain.Interval) (bool, error) {
	if err := assertAll(i, itv.Start, itv.End); err != nil {
		return false, err
	}
	start, end := itv.Start.UnixMilli(), itv.End.UnixMilli()
	if start > end {
		return false, errors.ErrIntervalRange
	}
	t := i.UnixMilli()
	return t >= start && t <= end, nil
}
