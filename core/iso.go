package core

import (
	"fmt"
	"pqdate/domain"
	"pqdate/errors"
	"regexp"
	"time"
)

var (
	dateOnlyShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dateTimeShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}`)
)

// Accepted decodings once the shape check passed. A missing offset reads as UTC.
// Fractional seconds are accepted after the seconds field by time.Parse itself.
var isoLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
	"2006-01-02T15:04",
}

const isoFormatLayout = "2006-01-02T15:04:05.000Z"

// ParseISO decodes YYYY-MM-DD or YYYY-MM-DDTHH:MM[...] into an instant.
// Anything else, locale formats included, fails before decoding.
func ParseISO(input string) (domain.Instant, error) {
	if dateOnlyShape.MatchString(input) {
		t, err := time.Parse(time.DateOnly, input)
		if err != nil {
			return domain.Invalid(), errors.Wrap(errors.ErrInvalidDate, err)
		}
		return checked(domain.FromTime(t))
	}
	if !dateTimeShape.MatchString(input) {
		return domain.Invalid(), errors.ErrNotISO
	}

	var lastErr error
	for _, layout := range isoLayouts {
		t, err := time.Parse(layout, input)
		if err == nil {
			return checked(domain.FromTime(t))
		}
		lastErr = err
	}
	return domain.Invalid(), errors.Wrap(errors.ErrInvalidDate, lastErr)
}

// ParseValue is ParseISO for untyped values such as decoded JSON.
func ParseValue(v any) (domain.Instant, error) {
	s, ok := v.(string)
	if !ok {
		return domain.Invalid(), errors.Wrap(errors.ErrParseInput, fmt.Errorf("got %T", v))
	}
	return ParseISO(s)
}

// FormatISO renders i as 2025-01-31T00:00:00.000Z. Years outside 0..9999
// use the expanded six digit form with an explicit sign.
func FormatISO(i domain.Instant) (string, error) {
	if err := AssertValid(i); err != nil {
		return "", err
	}
	t := i.UTC()
	if y := t.Year(); y < 0 || y > 9999 {
		return fmt.Sprintf("%+07d", y) + t.Format(isoFormatLayout[4:]), nil
	}
	return t.Format(isoFormatLayout), nil
}

func checked(i domain.Instant) (domain.Instant, error) {
	if err := AssertValid(i); err != nil {
		return domain.Invalid(), err
	}
	return i, nil
}
