package services

import (
	"fmt"
	"log/slog"
	"pqdate/contract"
	"pqdate/core"
	"pqdate/domain"
	"pqdate/intl"
	"pqdate/rules"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// Now is the date argument that explicitly asks for the clock.
const Now = "now"

var validate = validator.New()

type IDateService interface {
	Resolve(input string) (domain.Instant, error)
	Shift(input string, d domain.Duration, backwards bool) (domain.Instant, error)
	Bounds(input string, unit domain.Unit) (Bounds, error)
	Order(a, b string) (Comparison, error)
	Compare(a, b string, unit domain.Unit) (Comparison, error)
	DiffDays(a, b string) (int, error)
	Within(input, start, end string) (bool, error)
	Local(input string) (domain.Instant, error)
	LastBusinessDay(input string) (domain.Instant, error)
	Calendar(year int) ([]MonthSummary, error)
	Describe(i domain.Instant, opts intl.Options) (Description, error)
}

type Bounds struct {
	Start domain.Instant
	End   domain.Instant
}

type Comparison struct {
	Before bool
	After  bool
	Same   bool
}

type MonthSummary struct {
	Month           time.Month
	Start           domain.Instant
	End             domain.Instant
	LastBusinessDay domain.Instant
}

// Description is an instant rendered both ways.
type Description struct {
	ISO   string
	Local string
}

type DateService struct {
	log       *slog.Logger
	clock     contract.Clock
	formatter contract.LocalFormatter
}

func NewDateService(log *slog.Logger, clock contract.Clock, formatter contract.LocalFormatter) IDateService {
	return &DateService{log: log, clock: clock, formatter: formatter}
}

// Resolve parses an ISO argument. An empty argument or "now" reads the clock.
func (s *DateService) Resolve(input string) (domain.Instant, error) {
	input = strings.TrimSpace(input)
	if input == "" || strings.EqualFold(input, Now) {
		now := domain.FromTime(s.clock.Now())
		s.log.Debug("Resolved date from clock", "at", now.UnixMilli())
		return now, nil
	}
	i, err := core.ParseISO(input)
	if err != nil {
		return domain.Invalid(), fmt.Errorf("resolve %q: %w", input, err)
	}
	return i, nil
}

func (s *DateService) Shift(input string, d domain.Duration, backwards bool) (domain.Instant, error) {
	i, err := s.Resolve(input)
	if err != nil {
		return domain.Invalid(), err
	}
	op := lo.Ternary(backwards, core.Sub, core.Add)
	r, err := op(i, &d)
	if err != nil {
		return domain.Invalid(), fmt.Errorf("shift by %s: %w", d, err)
	}
	s.log.Debug("Shifted date", "duration", d.String(), "backwards", backwards)
	return r, nil
}

func (s *DateService) Bounds(input string, unit domain.Unit) (Bounds, error) {
	i, err := s.Resolve(input)
	if err != nil {
		return Bounds{}, err
	}
	start, err := core.StartOf(i, unit)
	if err != nil {
		return Bounds{}, fmt.Errorf("start of %s: %w", unit, err)
	}
	end, err := core.EndOf(i, unit)
	if err != nil {
		return Bounds{}, fmt.Errorf("end of %s: %w", unit, err)
	}
	return Bounds{Start: start, End: end}, nil
}

// Order fills Before and After only; Same is left false.
func (s *DateService) Order(a, b string) (Comparison, error) {
	ia, ib, err := s.resolvePair(a, b)
	if err != nil {
		return Comparison{}, err
	}
	return order(ia, ib)
}

func (s *DateService) Compare(a, b string, unit domain.Unit) (Comparison, error) {
	ia, ib, err := s.resolvePair(a, b)
	if err != nil {
		return Comparison{}, err
	}
	c, err := order(ia, ib)
	if err != nil {
		return Comparison{}, err
	}
	if c.Same, err = core.IsSame(ia, ib, unit); err != nil {
		return Comparison{}, fmt.Errorf("compare by %s: %w", unit, err)
	}
	return c, nil
}

func (s *DateService) DiffDays(a, b string) (int, error) {
	ia, ib, err := s.resolvePair(a, b)
	if err != nil {
		return 0, err
	}
	return core.DifferenceInDays(ia, ib)
}

func (s *DateService) Within(input, start, end string) (bool, error) {
	i, err := s.Resolve(input)
	if err != nil {
		return false, err
	}
	from, to, err := s.resolvePair(start, end)
	if err != nil {
		return false, err
	}
	within, err := core.IsWithinInterval(i, domain.Interval{Start: from, End: to})
	if err != nil {
		return false, fmt.Errorf("interval [%s, %s]: %w", start, end, err)
	}
	return within, nil
}

func (s *DateService) Local(input string) (domain.Instant, error) {
	i, err := s.Resolve(input)
	if err != nil {
		return domain.Invalid(), err
	}
	return core.ToLocal(i)
}

func (s *DateService) LastBusinessDay(input string) (domain.Instant, error) {
	i, err := s.Resolve(input)
	if err != nil {
		return domain.Invalid(), err
	}
	return rules.LastBusinessDayOfMonth(i)
}

// Calendar summarises every month of a four digit year.
func (s *DateService) Calendar(year int) ([]MonthSummary, error) {
	if err := validate.Var(year, "min=0,max=9999"); err != nil {
		return nil, fmt.Errorf("invalid year %d: %w", year, err)
	}
	months := make([]MonthSummary, 0, 12)
	for m := time.January; m <= time.December; m++ {
		first, err := core.ParseISO(fmt.Sprintf("%04d-%02d-01", year, m))
		if err != nil {
			return nil, err
		}
		end, err := core.EndOf(first, domain.Month)
		if err != nil {
			return nil, err
		}
		lbd, err := rules.LastBusinessDayOfMonth(first)
		if err != nil {
			return nil, err
		}
		months = append(months, MonthSummary{Month: m, Start: first, End: end, LastBusinessDay: lbd})
	}
	s.log.Debug("Built calendar", "year", year)
	return months, nil
}

func (s *DateService) Describe(i domain.Instant, opts intl.Options) (Description, error) {
	iso, err := core.FormatISO(i)
	if err != nil {
		return Description{}, err
	}
	local, err := s.formatter.FormatLocal(i, opts)
	if err != nil {
		return Description{}, fmt.Errorf("format %s for %s: %w", iso, opts.Locale, err)
	}
	return Description{ISO: iso, Local: local}, nil
}

func order(a, b domain.Instant) (Comparison, error) {
	var c Comparison
	var err error
	if c.Before, err = core.IsBefore(a, b); err != nil {
		return Comparison{}, err
	}
	if c.After, err = core.IsAfter(a, b); err != nil {
		return Comparison{}, err
	}
	return c, nil
}

func (s *DateService) resolvePair(a, b string) (domain.Instant, domain.Instant, error) {
	ia, err := s.Resolve(a)
	if err != nil {
		return domain.Invalid(), domain.Invalid(), err
	}
	ib, err := s.Resolve(b)
	if err != nil {
		return domain.Invalid(), domain.Invalid(), err
	}
	return ia, ib, nil
}
