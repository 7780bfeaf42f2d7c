package domain

// Unit selects the truncation granularity of StartOf, EndOf and IsSame.
type Unit string

const (
	Day   Unit = "day"
	Month Unit = "month"
	Year  Unit = "year"
)

func (u Unit) Valid() bool {
	switch u {
	case Day, Month, Year:
		return true
	}
	return false
}
