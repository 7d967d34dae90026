//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"holidaze-booking/internal/domain/booking"
	"holidaze-booking/internal/domain/venue"
	"holidaze-booking/internal/infra/repository"
	"holidaze-booking/internal/infra/store"
	"holidaze-booking/internal/pkg/errs"
	"holidaze-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedBooking(t *testing.T, repo *repository.BookingRepository, owner string, from, to time.Time) *booking.Booking {
	t.Helper()
	v := venue.Venue{ID: "venue-1", Name: "Seaside Cabin", NightlyPrice: 1000, MaxGuests: 4}
	dates, err := booking.NewDateRange(from, to)
	require.NoError(t, err)
	b, err := booking.NewBooking(uuid.New(), v, dates, 2, owner, day(2025, 6, 1))
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), b))
	return b
}

func TestBookingQueriesListByUser(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewBookingRepository(store.NewMemoryStore())
	q := queries.NewBookingQueries(repo)

	seeded := seedBooking(t, repo, "guest@example.com", day(2025, 6, 16), day(2025, 6, 19))
	seedBooking(t, repo, "other@example.com", day(2025, 7, 1), day(2025, 7, 3))

	t.Run("returns only the user's bookings as views", func(t *testing.T) {
		result, err := q.ListByUser(ctx, "guest@example.com")
		require.NoError(t, err)
		assert.Zero(t, result.SkippedCorrupt)
		require.Len(t, result.Bookings, 1)

		view := result.Bookings[0]
		assert.Equal(t, seeded.ID(), view.ID)
		assert.Equal(t, "Seaside Cabin", view.VenueName)
		assert.Equal(t, 3, view.Nights)
		assert.Equal(t, 3000.0, view.TotalPrice)
	})

	t.Run("requires an authenticated owner", func(t *testing.T) {
		_, err := q.ListByUser(ctx, "")
		assert.ErrorIs(t, err, errs.ErrAuthenticationRequired)
	})

	t.Run("returns an empty listing for an unknown user", func(t *testing.T) {
		result, err := q.ListByUser(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Empty(t, result.Bookings)
	})
}

func TestBookingQueriesListByVenue(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewBookingRepository(store.NewMemoryStore())
	q := queries.NewBookingQueries(repo)

	seedBooking(t, repo, "a@example.com", day(2025, 6, 16), day(2025, 6, 19))
	seedBooking(t, repo, "b@example.com", day(2025, 7, 1), day(2025, 7, 3))

	result, err := q.ListByVenue(ctx, "venue-1")
	require.NoError(t, err)
	require.Len(t, result.Bookings, 2)
	assert.True(t, result.Bookings[0].DateFrom.After(result.Bookings[1].DateFrom))
}
