package booking

import (
	"math"
	"time"
)

// NightsBetween counts the nights from check-in to checkout at day
// granularity. Zero or inverted spans yield 0 nights: "not yet a valid stay"
// is a display state, not an error.
func NightsBetween(from, to time.Time) int {
	if from.IsZero() || to.IsZero() {
		return 0
	}
	f := startOfDay(from)
	t := startOfDay(to)
	nights := int(math.Ceil(t.Sub(f).Hours() / 24))
	if nights < 0 {
		return 0
	}
	return nights
}

// TotalPrice multiplies the nightly rate by the night count. Rounding for
// currency display is the caller's concern.
func TotalPrice(nightlyRate float64, nights int) float64 {
	if nights <= 0 {
		return 0
	}
	return nightlyRate * float64(nights)
}
