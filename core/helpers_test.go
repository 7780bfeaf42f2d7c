package core

import (
	"pqdate/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) domain.Instant {
	t.Helper()
	i, err := ParseISO(s)
	require.NoError(t, err)
	return i
}

func mustFormat(t *testing.T, i domain.Instant) string {
	t.Helper()
	s, err := FormatISO(i)
	require.NoError(t, err)
	return s
}

// withLocal swaps the process-local zone for the duration of the test.
// Tests using it must not run in parallel.
func withLocal(t *testing.T, loc *time.Location) {
	t.Helper()
	previous := time.Local
	time.Local = loc
	t.Cleanup(func() { time.Local = previous })
}
