//go:build unit

package booking_test

import (
	"testing"
	"time"

	"holidaze-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func TestNightsBetween(t *testing.T) {
	cases := []struct {
		name   string
		from   time.Time
		to     time.Time
		nights int
	}{
		{name: "same day is zero nights", from: day(2025, 6, 10), to: day(2025, 6, 10), nights: 0},
		{name: "next day is one night", from: day(2025, 6, 10), to: day(2025, 6, 11), nights: 1},
		{name: "three nights", from: day(2025, 6, 10), to: day(2025, 6, 13), nights: 3},
		{name: "inverted span is zero", from: day(2025, 6, 13), to: day(2025, 6, 10), nights: 0},
		{name: "zero inputs are zero", from: time.Time{}, to: day(2025, 6, 10), nights: 0},
		{name: "time-of-day does not add a night", from: time.Date(2025, 6, 10, 23, 0, 0, 0, time.UTC), to: time.Date(2025, 6, 11, 1, 0, 0, 0, time.UTC), nights: 1},
		{name: "across month boundary", from: day(2025, 6, 29), to: day(2025, 7, 2), nights: 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.nights, booking.NightsBetween(tc.from, tc.to))
		})
	}
}

func TestTotalPrice(t *testing.T) {
	t.Run("rate times nights", func(t *testing.T) {
		nights := booking.NightsBetween(day(2025, 6, 10), day(2025, 6, 13))
		assert.Equal(t, 3000.0, booking.TotalPrice(1000, nights))
	})

	t.Run("zero nights costs nothing", func(t *testing.T) {
		assert.Zero(t, booking.TotalPrice(1000, 0))
		assert.Zero(t, booking.TotalPrice(1000, -2))
	})

	t.Run("fractional rates are not rounded", func(t *testing.T) {
		assert.InDelta(t, 199.98, booking.TotalPrice(99.99, 2), 1e-9)
	})
}
