// Package intl renders instants for humans in a supported locale.
//
// Rendering is delegated to the CLDR data of go-playground/locales. The only
// check performed here is the instant validity; unknown option values fall
// back to their defaults.
package intl

import (
	"pqdate/core"
	"pqdate/domain"
	"strings"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/es_ES"
	ut "github.com/go-playground/universal-translator"
)

type Locale string

const (
	LocaleEnUS Locale = "en-US"
	LocaleEsES Locale = "es-ES"
)

type Style string

const (
	StyleShort  Style = "short"
	StyleMedium Style = "medium"
	StyleLong   Style = "long"
)

// Options mirrors the recognised display options. Zero values select the
// defaults: en-US, medium date, no time.
type Options struct {
	Locale    Locale
	DateStyle Style
	TimeStyle Style
}

// translators is built once and only read afterwards.
var translators = ut.New(en_US.New(), en_US.New(), es_ES.New())

// Formatter renders instants in a fixed location.
type Formatter struct {
	loc *time.Location
}

// NewFormatter returns a formatter rendering wall-clock values in loc.
// A nil loc means the process-local zone, read at format time.
func NewFormatter(loc *time.Location) *Formatter {
	return &Formatter{loc: loc}
}

var defaultFormatter = NewFormatter(nil)

// FormatLocal renders i in the process-local zone.
func FormatLocal(i domain.Instant, opts Options) (string, error) {
	return defaultFormatter.FormatLocal(i, opts)
}

func (f *Formatter) FormatLocal(i domain.Instant, opts Options) (string, error) {
	if err := core.AssertValid(i); err != nil {
		return "", err
	}
	loc := f.loc
	if loc == nil {
		loc = time.Local
	}
	t := i.In(loc)
	tr := translator(opts.Locale)

	out := formatDate(tr, opts.DateStyle, t)
	if timePart, ok := formatTime(tr, opts.TimeStyle, t); ok {
		out += ", " + timePart
	}
	return out, nil
}

// translator maps a BCP 47 tag onto the CLDR locale name, en_US when unknown.
func translator(l Locale) locales.Translator {
	switch l {
	case LocaleEsES:
		tr, _ := translators.GetTranslator("es_ES")
		return tr
	default:
		return translators.GetFallback()
	}
}

func formatDate(tr locales.Translator, style Style, t time.Time) string {
	switch style {
	case StyleShort:
		return tr.FmtDateShort(t)
	case StyleLong:
		return tr.FmtDateLong(t)
	default:
		return tr.FmtDateMedium(t)
	}
}

func formatTime(tr locales.Translator, style Style, t time.Time) (string, bool) {
	var s string
	switch style {
	case StyleShort:
		s = tr.FmtTimeShort(t)
	case StyleMedium:
		s = tr.FmtTimeMedium(t)
	case StyleLong:
		s = tr.FmtTimeLong(t)
	default:
		return "", false
	}
	return midnightHour(tr, t, s), true
}

// midnightHour shows the first hour of a 12-hour clock as 12, not 0.
func midnightHour(tr locales.Translator, t time.Time, s string) string {
	if tr.Locale() != "en_US" || t.Hour() != 0 {
		return s
	}
	if rest, ok := strings.CutPrefix(s, "0"); ok {
		return "12" + rest
	}
	return s
}
