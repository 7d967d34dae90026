//go:build unit

package booking_test

import (
	"testing"
	"time"

	"holidaze-booking/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	v := testVenue(4)
	dates := mustRange(t, day(2025, 6, 10), day(2025, 6, 13))
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		id := uuid.New()
		b, err := booking.NewBooking(id, v, dates, 2, "guest@example.com", now)
		require.NoError(t, err)

		assert.Equal(t, id, b.ID())
		assert.Equal(t, "venue-1", b.VenueID())
		assert.Equal(t, 2, b.Guests())
		assert.Equal(t, "guest@example.com", b.Owner())
		assert.Equal(t, now, b.CreatedAt())
		assert.Equal(t, 3, b.Nights())
		assert.Equal(t, 3000.0, b.TotalPrice())
	})

	t.Run("rejects nil id", func(t *testing.T) {
		_, err := booking.NewBooking(uuid.Nil, v, dates, 2, "guest@example.com", now)
		assert.ErrorIs(t, err, booking.ErrMissingID)
	})

	t.Run("rejects zero range", func(t *testing.T) {
		_, err := booking.NewBooking(uuid.New(), v, booking.DateRange{}, 2, "guest@example.com", now)
		assert.ErrorIs(t, err, booking.ErrInvalidRange)
	})

	t.Run("rejects guest count above venue ceiling", func(t *testing.T) {
		_, err := booking.NewBooking(uuid.New(), v, dates, 5, "guest@example.com", now)
		assert.ErrorIs(t, err, booking.ErrGuestCountExceeded)
	})

	t.Run("rejects missing owner", func(t *testing.T) {
		_, err := booking.NewBooking(uuid.New(), v, dates, 2, "", now)
		assert.ErrorIs(t, err, booking.ErrMissingOwner)
	})
}

func TestReconstructBooking(t *testing.T) {
	v := testVenue(4)
	dates := mustRange(t, day(2025, 6, 10), day(2025, 6, 13))
	id := uuid.New()
	created := time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC)

	b := booking.ReconstructBooking(id, v, dates, 3, "guest@example.com", created)

	assert.Equal(t, id, b.ID())
	assert.Equal(t, created, b.CreatedAt())
	assert.Equal(t, booking.Span{From: dates.Start(), To: dates.End()}, b.Span())
}
