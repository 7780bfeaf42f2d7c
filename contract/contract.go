//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"pqdate/domain"
	"pqdate/intl"
	"time"
)

// Clock is the only source of "now" in pqdate. The core never reads it;
// the service layer does when a date argument is omitted.
type Clock interface {
	Now() time.Time
}

// LocalFormatter renders an instant for display.
type LocalFormatter interface {
	FormatLocal(i domain.Instant, opts intl.Options) (string, error)
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
