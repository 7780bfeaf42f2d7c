package domain

// Interval is the inclusive range [Start, End]. It is only meaningful when
// Start is not after End; the check happens where the interval is used.
type Interval struct {
	Start Instant
	End   Instant
}
