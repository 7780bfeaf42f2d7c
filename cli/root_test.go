package cli

import (
	"bytes"
	"fmt"
	"log/slog"
	"pqdate/errors"
	"pqdate/intl"
	"pqdate/mocks"
	"pqdate/services"
	"strings"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func execute(t *testing.T, clock *mocks.MockClock, args ...string) (string, error) {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	svc := services.NewDateService(log, clock, intl.NewFormatter(time.UTC))
	root := NewRootCommand(Dependencies{Log: log, Service: svc, Options: intl.Options{}, Colours: false})

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCommand_Outputs(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := mocks.NewMockClock(ctrl)

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "parse", args: []string{"parse", "2025-01-31T00:00:00Z"}, expected: "2025-01-31T00:00:00.000Z\n"},
		{name: "add clamps to end of month", args: []string{"add", "2025-01-31T00:00:00Z", "--months", "1"}, expected: "2025-02-28T00:00:00.000Z\n"},
		{name: "sub with shorthand flags", args: []string{"sub", "2025-03-31", "-M", "1", "-H", "1"}, expected: "2025-02-27T23:00:00.000Z\n"},
		{name: "start of month", args: []string{"start", "month", "2025-03-15T10:20:30Z"}, expected: "2025-03-01T00:00:00.000Z\n"},
		{name: "end of year", args: []string{"end", "year", "2025-03-15T10:20:30Z"}, expected: "2025-12-31T23:59:59.999Z\n"},
		{name: "before", args: []string{"before", "2025-01-01", "2025-01-02"}, expected: "true\n"},
		{name: "after", args: []string{"after", "2025-01-01", "2025-01-02"}, expected: "false\n"},
		{name: "after when later", args: []string{"after", "2025-01-02", "2025-01-01"}, expected: "true\n"},
		{name: "before is strict", args: []string{"before", "2025-01-01", "2025-01-01"}, expected: "false\n"},
		{name: "same month", args: []string{"same", "month", "2025-03-01", "2025-03-31T23:00:00Z"}, expected: "true\n"},
		{name: "diff truncates to days", args: []string{"diff", "2025-03-02T10:00:00Z", "2025-03-01T23:59:59Z"}, expected: "1\n"},
		{name: "within is inclusive", args: []string{"within", "2025-01-02", "2025-01-01", "2025-01-02"}, expected: "true\n"},
		{name: "last business day", args: []string{"lbd", "2020-10-15"}, expected: "2020-10-30T00:00:00.000Z\n"},
		{name: "show local in spanish", args: []string{"parse", "2025-01-31T00:00:00Z", "-l", "--locale", "es-ES", "--date-style", "short"},
			expected: "2025-01-31T00:00:00.000Z\t31/1/25\n"},
		{name: "show local with time", args: []string{"lbd", "2025-03-01", "--show-local", "--time-style", "short"},
			expected: "2025-03-31T00:00:00.000Z\tMar 31, 2025, 12:00 am\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, clock, tt.args...)
			require.NoError(t, err)
			require.Equal(t, tt.expected, out)
		})
	}
}

func TestRootCommand_ReadsClockWhenDateIsOmitted(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := mocks.NewMockClock(ctrl)

	t.Run("add without a date", func(t *testing.T) {
		req := require.New(t)
		clock.EXPECT().Now().Return(time.Date(2025, time.January, 31, 8, 0, 0, 0, time.UTC)).Times(1)

		out, err := execute(t, clock, "add", "--days", "1")
		req.NoError(err)
		req.Equal("2025-02-01T08:00:00.000Z\n", out)
	})

	t.Run("calendar of the current year", func(t *testing.T) {
		req := require.New(t)
		clock.EXPECT().Now().Return(time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC)).Times(1)

		out, err := execute(t, clock, "calendar")
		req.NoError(err)
		req.Contains(out, "October")
		req.Contains(out, "2020-10-30T00:00:00.000Z")
		req.Equal(13, strings.Count(strings.TrimSpace(out), "\n")+1)
	})
}

func TestRootCommand_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := mocks.NewMockClock(ctrl)

	t.Run("locale formatted input", func(t *testing.T) {
		_, err := execute(t, clock, "parse", "31/01/2025")
		require.ErrorIs(t, err, errors.ErrNotISO)
	})

	t.Run("unknown unit", func(t *testing.T) {
		_, err := execute(t, clock, "same", "week", "2025-01-01", "2025-01-02")
		require.ErrorIs(t, err, errors.ErrInvalidUnit)
	})

	t.Run("reversed interval", func(t *testing.T) {
		req := require.New(t)
		_, err := execute(t, clock, "within", "2025-01-01", "2025-01-02", "2025-01-01")
		req.ErrorIs(err, errors.ErrIntervalRange)
		req.True(errors.IsKind(err, errors.KindRange))
	})

	t.Run("unsupported locale flag", func(t *testing.T) {
		_, err := execute(t, clock, "parse", "2025-01-01", "--locale", "fr-FR")
		require.Error(t, err)
	})

	t.Run("year that is not a number", func(t *testing.T) {
		_, err := execute(t, clock, "calendar", "twenty")
		require.Error(t, err)
	})
}

func TestRenderError(t *testing.T) {
	err := fmt.Errorf("resolve %q: %w", "31/01/2025", errors.ErrNotISO)
	require.Equal(t, `Error: resolve "31/01/2025": E_PARSE_INVALID: Input must be ISO 8601`, RenderError(err, false))
}
