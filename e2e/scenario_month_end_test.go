package e2e

import (
	"pqdate/errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type testMonthEndSuite struct {
	BaseCLISuite
}

func TestMonthEndSuite(t *testing.T) {
	suite.Run(t, &testMonthEndSuite{})
}

func (s *testMonthEndSuite) TestMonthEndClosingFlow() {
	var lbd string

	// --- STEP 1: CURRENT MONTH ---
	s.Run("Step 1: Resolve the last business day of the current month", func() {
		out, err := s.Exec("Last business day from the clock", "lbd")
		s.Require().NoError(err)
		lbd = strings.TrimSpace(out)
		s.Require().Equal("2020-10-30T00:00:00.000Z", lbd)
	})

	// --- STEP 2: CLOSING WINDOW ---
	s.Run("Step 2: Closing day lies in the month", func() {
		start, err := s.Exec("Start of month", "start", "month")
		s.Require().NoError(err)
		end, err := s.Exec("End of month", "end", "month")
		s.Require().NoError(err)
		s.Require().Equal("2020-10-01T00:00:00.000Z\n", start)
		s.Require().Equal("2020-10-31T23:59:59.999Z\n", end)

		out, err := s.Exec("Closing day within month", "within", lbd, strings.TrimSpace(start), strings.TrimSpace(end))
		s.Require().NoError(err)
		s.Require().Equal("true\n", out)
	})

	// --- STEP 3: COUNTDOWN ---
	s.Run("Step 3: Days left before closing", func() {
		out, err := s.Exec("Days until closing", "diff", lbd)
		s.Require().NoError(err)
		s.Require().Equal("15\n", out)
	})

	// --- STEP 4: NEXT MONTH ---
	s.Run("Step 4: Roll to the next closing", func() {
		next, err := s.Exec("One month later", "add", lbd, "--months", "1")
		s.Require().NoError(err)
		s.Require().Equal("2020-11-30T00:00:00.000Z\n", next)

		out, err := s.Exec("Last business day of November", "lbd", strings.TrimSpace(next))
		s.Require().NoError(err)
		s.Require().Equal("2020-11-30T00:00:00.000Z\n", out)
	})

	// --- STEP 5: LOCAL RENDERING ---
	s.Run("Step 5: Render the closing day for a Spanish reader", func() {
		out, err := s.Exec("Spanish long date", "parse", lbd, "-l", "--locale", "es-ES", "--date-style", "long")
		s.Require().NoError(err)
		s.Require().Equal("2020-10-30T00:00:00.000Z\t30 de octubre de 2020\n", out)
	})
}

func (s *testMonthEndSuite) TestRejectedInputs() {
	s.Run("Locale formatted dates are refused", func() {
		_, err := s.Exec("Slash date", "parse", "30/10/2020")
		s.Require().ErrorIs(err, errors.ErrNotISO)
		s.Require().True(errors.IsKind(err, errors.KindParseInvalid))
	})

	s.Run("Reversed intervals are refused", func() {
		_, err := s.Exec("Reversed interval", "within", "2020-10-15", "2020-10-31", "2020-10-01")
		s.Require().ErrorIs(err, errors.ErrIntervalRange)
	})

	s.Run("Results past the supported range are refused", func() {
		_, err := s.Exec("Overflow", "add", "9999-12-31", "--years", "275000")
		s.Require().ErrorIs(err, errors.ErrOutOfRange)
	})
}
