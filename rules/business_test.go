package rules

import (
	"pqdate/core"
	"pqdate/domain"
	"pqdate/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLastBusinessDayOfMonth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "month ending on saturday steps back to friday", input: "2020-10-15T00:00:00Z", expected: "2020-10-30T00:00:00.000Z"},
		{name: "any day of that month gives the same answer", input: "2020-10-31T23:59:59Z", expected: "2020-10-30T00:00:00.000Z"},
		{name: "month ending on sunday steps back two days", input: "2025-08-01T00:00:00Z", expected: "2025-08-29T00:00:00.000Z"},
		{name: "month ending on a weekday is returned as is", input: "2025-03-01T00:00:00Z", expected: "2025-03-31T00:00:00.000Z"},
		{name: "leap february", input: "2024-02-10T08:00:00Z", expected: "2024-02-29T00:00:00.000Z"},
		{name: "december", input: "2022-12-05T00:00:00Z", expected: "2022-12-30T00:00:00.000Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			d, err := core.ParseISO(tt.input)
			req.NoError(err)

			lbd, err := LastBusinessDayOfMonth(d)
			req.NoError(err)

			s, err := core.FormatISO(lbd)
			req.NoError(err)
			req.Equal(tt.expected, s)
		})
	}
}

func TestLastBusinessDayOfMonth_InvalidInstant(t *testing.T) {
	_, err := LastBusinessDayOfMonth(domain.Invalid())
	require.ErrorIs(t, err, errors.ErrInvalidDate)
}

func TestIsBusinessDay(t *testing.T) {
	req := require.New(t)

	for input, expected := range map[string]bool{
		"2020-10-30T23:59:59Z": true,  // Friday
		"2020-10-31T00:00:00Z": false, // Saturday
		"2020-11-01T12:00:00Z": false, // Sunday
		"2020-11-02T00:00:00Z": true,  // Monday
		// Saturday 01:00 in UTC+2 is still Friday in UTC
		"2020-10-31T01:00:00+02:00": true,
	} {
		d, err := core.ParseISO(input)
		req.NoError(err)
		ok, err := IsBusinessDay(d)
		req.NoError(err)
		req.Equal(expected, ok, input)
	}

	_, err := IsBusinessDay(domain.Invalid())
	req.ErrorIs(err, errors.ErrInvalidDate)
}
