// Package domain contains the core concepts of pqdate.
// This file defines the sparse Duration record applied by calendar arithmetic.
package domain

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var validate = validator.New()

// Duration is a sparse set of calendar and clock deltas. A nil field is
// absent and contributes nothing. The bounds keep every present field
// applicable to a millisecond count without overflow.
type Duration struct {
	Years   *int `validate:"omitempty,min=-275000,max=275000"`
	Months  *int `validate:"omitempty,min=-3300000,max=3300000"`
	Days    *int `validate:"omitempty,min=-100000000,max=100000000"`
	Hours   *int `validate:"omitempty,min=-2400000000,max=2400000000"`
	Minutes *int `validate:"omitempty,min=-144000000000,max=144000000000"`
	Seconds *int `validate:"omitempty,min=-8640000000000,max=8640000000000"`
}

// Validate checks every present field against its bounds.
func (d Duration) Validate() error {
	return validate.Struct(d)
}

// Negate flips the sign of every present field. Absent fields stay absent.
func (d Duration) Negate() Duration {
	return Duration{
		Years:   negate(d.Years),
		Months:  negate(d.Months),
		Days:    negate(d.Days),
		Hours:   negate(d.Hours),
		Minutes: negate(d.Minutes),
		Seconds: negate(d.Seconds),
	}
}

func negate(v *int) *int {
	if v == nil {
		return nil
	}
	return lo.ToPtr(-*v)
}

// IsZero reports whether applying d would change nothing.
func (d Duration) IsZero() bool {
	return lo.EveryBy([]*int{d.Years, d.Months, d.Days, d.Hours, d.Minutes, d.Seconds}, func(v *int) bool {
		return lo.FromPtr(v) == 0
	})
}

// String renders d in ISO 8601 duration notation, e.g. P1Y2MT3H.
// Absent and zero fields are omitted.
func (d Duration) String() string {
	var b strings.Builder
	b.WriteString("P")
	writeField(&b, d.Years, 'Y')
	writeField(&b, d.Months, 'M')
	writeField(&b, d.Days, 'D')
	if lo.FromPtr(d.Hours) != 0 || lo.FromPtr(d.Minutes) != 0 || lo.FromPtr(d.Seconds) != 0 {
		b.WriteString("T")
		writeField(&b, d.Hours, 'H')
		writeField(&b, d.Minutes, 'M')
		writeField(&b, d.Seconds, 'S')
	}
	if b.Len() == 1 {
		return "PT0S"
	}
	return b.String()
}

func writeField(b *strings.Builder, v *int, designator byte) {
	if n := lo.FromPtr(v); n != 0 {
		b.WriteString(strconv.Itoa(n))
		b.WriteByte(designator)
	}
}
