// Package rules holds date rules derived from the core arithmetic.
package rules

import (
	"pqdate/core"
	"pqdate/domain"
	"time"

	"github.com/samber/lo"
)

// IsBusinessDay reports whether i falls on a UTC Monday to Friday.
func IsBusinessDay(i domain.Instant) (bool, error) {
	if err := core.AssertValid(i); err != nil {
		return false, err
	}
	switch i.UTC().Weekday() {
	case time.Saturday, time.Sunday:
		return false, nil
	}
	return true, nil
}

// LastBusinessDayOfMonth returns 00:00 UTC of the last Monday to Friday day
// in i's UTC month. A month ending on a weekend steps back at most two days.
func LastBusinessDayOfMonth(i domain.Instant) (domain.Instant, error) {
	if err := core.AssertValid(i); err != nil {
		return domain.Invalid(), err
	}
	monthEnd, err := core.EndOf(i, domain.Month)
	if err != nil {
		return domain.Invalid(), err
	}
	cur, err := core.StartOf(monthEnd, domain.Day)
	if err != nil {
		return domain.Invalid(), err
	}

	oneDay := &domain.Duration{Days: lo.ToPtr(1)}
	for {
		ok, err := IsBusinessDay(cur)
		if err != nil {
			return domain.Invalid(), err
		}
		if ok {
			return cur, nil
		}
		if cur, err = core.Sub(cur, oneDay); err != nil {
			return domain.Invalid(), err
		}
	}
}
