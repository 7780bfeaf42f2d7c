package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnit_Valid(t *testing.T) {
	req := require.New(t)

	for _, u := range []Unit{Day, Month, Year} {
		req.True(u.Valid(), u)
	}
	req.False(Unit("week").Valid())
	req.False(Unit("").Valid())
}
