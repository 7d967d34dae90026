//go:build unit

package catalog_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"holidaze-booking/internal/catalog"
	"holidaze-booking/internal/domain/booking"
	"holidaze-booking/internal/domain/venue"
	"holidaze-booking/internal/pkg/bus"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type stubProvider struct {
	v   venue.Venue
	err error
}

func (p *stubProvider) FetchVenue(_ context.Context, _ string) (venue.Venue, error) {
	return p.v, p.err
}

// gatedProvider parks each fetch until the test releases it, so resolution
// order can be forced independently of call order.
type gatedProvider struct {
	mu      sync.Mutex
	calls   int
	started chan int
	gates   []chan venue.Venue
}

func newGatedProvider(n int) *gatedProvider {
	p := &gatedProvider{started: make(chan int, n)}
	for i := 0; i < n; i++ {
		p.gates = append(p.gates, make(chan venue.Venue))
	}
	return p
}

func (p *gatedProvider) FetchVenue(_ context.Context, _ string) (venue.Venue, error) {
	p.mu.Lock()
	idx := p.calls
	p.calls++
	p.mu.Unlock()

	p.started <- idx
	return <-p.gates[idx], nil
}

type stubLister struct {
	bookings []*booking.Booking
	skipped  int
}

func (l *stubLister) ListByVenue(_ context.Context, _ string) ([]*booking.Booking, int, error) {
	return l.bookings, l.skipped, nil
}

func sessionVenue(name string) venue.Venue {
	return venue.Venue{
		ID:           "venue-1",
		Name:         name,
		NightlyPrice: 1000,
		MaxGuests:    4,
		BookedSpans: []venue.BookedSpan{
			{From: day(2025, 6, 10), To: day(2025, 6, 15), Guests: 2},
		},
	}
}

func TestSessionLoad(t *testing.T) {
	t.Run("builds the index from upstream spans and local bookings", func(t *testing.T) {
		provider := &stubProvider{v: sessionVenue("Seaside Cabin")}

		dates, err := booking.NewDateRange(day(2025, 7, 1), day(2025, 7, 3))
		require.NoError(t, err)
		local := booking.ReconstructBooking(
			uuid.New(), provider.v, dates, 2, "guest@example.com", day(2025, 5, 1),
		)
		session := catalog.NewSession(provider, &stubLister{bookings: []*booking.Booking{local}, skipped: 1})

		view, err := session.Load(context.Background(), "venue-1")
		require.NoError(t, err)

		assert.Equal(t, "Seaside Cabin", view.Venue.Name)
		assert.Equal(t, 2, view.Index.Len())
		assert.True(t, view.Index.IsDayBooked(day(2025, 6, 12)))
		assert.True(t, view.Index.IsDayBooked(day(2025, 7, 2)))
		assert.Equal(t, 1, view.SkippedRecords)
		assert.Zero(t, view.SkippedSpans)
	})

	t.Run("counts unparsable upstream spans", func(t *testing.T) {
		v := sessionVenue("Seaside Cabin")
		v.BookedSpans = append(v.BookedSpans, venue.BookedSpan{From: day(2025, 8, 5), To: day(2025, 8, 1)})
		session := catalog.NewSession(&stubProvider{v: v}, &stubLister{})

		view, err := session.Load(context.Background(), "venue-1")
		require.NoError(t, err)

		assert.Equal(t, 1, view.SkippedSpans)
		assert.Equal(t, 1, view.Index.Len())
	})

	t.Run("discards the result when the context is canceled", func(t *testing.T) {
		session := catalog.NewSession(&stubProvider{v: sessionVenue("Seaside Cabin")}, &stubLister{})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := session.Load(ctx, "venue-1")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSessionLastInitiatedLoadWins(t *testing.T) {
	provider := newGatedProvider(2)
	session := catalog.NewSession(provider, &stubLister{})

	type result struct {
		view *catalog.VenueView
		err  error
	}
	results := make(chan result, 2)
	load := func() {
		view, err := session.Load(context.Background(), "venue-1")
		results <- result{view, err}
	}

	go load()
	first := <-provider.started

	go load()
	second := <-provider.started

	// the second-initiated load resolves first and is applied
	provider.gates[second] <- sessionVenue("fresh")
	fresh := <-results
	require.NoError(t, fresh.err)
	assert.Equal(t, "fresh", fresh.view.Venue.Name)

	// the first-initiated load resolves late; its result is discarded and
	// the applied fresher view is served instead
	provider.gates[first] <- sessionVenue("stale")
	late := <-results
	require.NoError(t, late.err)
	assert.Equal(t, "fresh", late.view.Venue.Name)
}

func TestSessionConfirmAndForget(t *testing.T) {
	provider := &stubProvider{v: sessionVenue("Seaside Cabin")}
	session := catalog.NewSession(provider, &stubLister{})
	b := bus.New()
	session.Bind(b)

	view, err := session.Load(context.Background(), "venue-1")
	require.NoError(t, err)
	require.Equal(t, 1, view.Index.Len())

	dates, err := booking.NewDateRange(day(2025, 7, 1), day(2025, 7, 3))
	require.NoError(t, err)

	t.Run("created event appends to the cached index", func(t *testing.T) {
		b.Publish(bus.Event{Topic: booking.TopicCreated, Payload: booking.CreatedEvent{
			VenueID: "venue-1",
			Dates:   dates,
		}})

		// the view handed out earlier is unchanged; the cached copy grew
		assert.Equal(t, 1, view.Index.Len())

		cached := session.View("venue-1")
		require.NotNil(t, cached)
		assert.Equal(t, 2, cached.Index.Len())
		assert.True(t, cached.Index.IsDayBooked(day(2025, 7, 2)))
	})

	t.Run("deleted event drops the cached view", func(t *testing.T) {
		b.Publish(bus.Event{Topic: booking.TopicDeleted, Payload: booking.DeletedEvent{
			VenueID: "venue-1",
		}})
		assert.Nil(t, session.View("venue-1"))
	})
}

func TestSessionConfirmExtendsCachedView(t *testing.T) {
	provider := &stubProvider{v: sessionVenue("Seaside Cabin")}
	session := catalog.NewSession(provider, &stubLister{})

	_, err := session.Load(context.Background(), "venue-1")
	require.NoError(t, err)

	dates, err := booking.NewDateRange(day(2025, 7, 1), day(2025, 7, 3))
	require.NoError(t, err)
	session.Confirm("venue-1", dates)

	view := session.View("venue-1")
	require.NotNil(t, view)
	assert.Equal(t, 2, view.Index.Len())
	assert.True(t, view.Index.IsDayBooked(day(2025, 7, 2)))
}
