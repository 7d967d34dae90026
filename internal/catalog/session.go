package catalog

import (
	"context"
	"sync"

	"holidaze-booking/internal/domain/booking"
	"holidaze-booking/internal/domain/venue"
	"holidaze-booking/internal/pkg/bus"
	"holidaze-booking/internal/pkg/errs"
)

// VenueView is the assembled venue-detail state: the catalog record plus the
// availability index derived from upstream spans and locally stored bookings.
// The view is session state, rebuilt on load and appended to on confirmation.
type VenueView struct {
	Venue venue.Venue
	Index booking.AvailabilityIndex

	// SkippedSpans counts spans excluded for unparsable dates,
	// SkippedRecords counts store records that failed to decode. Both are
	// reported, not fatal.
	SkippedSpans   int
	SkippedRecords int
}

type VenueProvider interface {
	FetchVenue(ctx context.Context, id string) (venue.Venue, error)
}

type BookingLister interface {
	ListByVenue(ctx context.Context, venueID string) ([]*booking.Booking, int, error)
}

// Session guards venue loads against out-of-order resolution. Every load is
// tagged with a monotonic per-venue sequence number; a result that resolves
// after a newer load has already been applied is discarded instead of
// clobbering the fresher state. The source system had no such guard, which
// let a slow stale fetch win.
type Session struct {
	provider VenueProvider
	bookings BookingLister

	mu      sync.Mutex
	issued  map[string]uint64
	applied map[string]uint64
	views   map[string]*VenueView
}

func NewSession(provider VenueProvider, bookings BookingLister) *Session {
	return &Session{
		provider: provider,
		bookings: bookings,
		issued:   make(map[string]uint64),
		applied:  make(map[string]uint64),
		views:    make(map[string]*VenueView),
	}
}

// Bind subscribes the session to booking lifecycle events so confirmed
// bookings extend the cached index without a refetch and deletions force a
// rebuild on the next load.
func (s *Session) Bind(b *bus.Bus) {
	b.Subscribe(booking.TopicCreated, func(ev bus.Event) {
		if payload, ok := ev.Payload.(booking.CreatedEvent); ok {
			s.Confirm(payload.VenueID, payload.Dates)
		}
	})
	b.Subscribe(booking.TopicDeleted, func(ev bus.Event) {
		if payload, ok := ev.Payload.(booking.DeletedEvent); ok {
			s.Forget(payload.VenueID)
		}
	})
}

// Load fetches the venue and its bookings and assembles the view. If the
// calling context is canceled mid-flight the result is discarded. If a
// younger load finished first, this result is likewise discarded and the
// younger applied view is returned: the most recently initiated load wins.
func (s *Session) Load(ctx context.Context, venueID string) (*VenueView, error) {
	s.mu.Lock()
	s.issued[venueID]++
	seq := s.issued[venueID]
	s.mu.Unlock()

	v, err := s.provider.FetchVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}

	local, skippedRecords, err := s.bookings.ListByVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}

	if ctx.Err() != nil {
		// view torn down while the fetch was in flight
		return nil, ctx.Err()
	}

	spans := make([]booking.Span, 0, len(v.BookedSpans)+len(local))
	for _, bs := range v.BookedSpans {
		spans = append(spans, booking.Span{From: bs.From, To: bs.To})
	}
	for _, b := range local {
		spans = append(spans, b.Span())
	}
	idx, skippedSpans := booking.BuildIndex(spans)

	view := &VenueView{
		Venue:          v,
		Index:          idx,
		SkippedSpans:   skippedSpans,
		SkippedRecords: skippedRecords,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.applied[venueID] {
		if fresher, ok := s.views[venueID]; ok {
			return fresher, nil
		}
		return nil, errs.ErrStaleLoad
	}
	s.applied[venueID] = seq
	s.views[venueID] = view
	return view, nil
}

// Confirm extends the cached index with a freshly booked range so the view
// reflects the new unavailability without re-fetching.
func (s *Session) Confirm(venueID string, r booking.DateRange) {
	s.mu.Lock()
	defer s.mu.Unlock()

	view, ok := s.views[venueID]
	if !ok {
		return
	}
	updated := *view
	updated.Index = view.Index.Append(r)
	s.views[venueID] = &updated
}

// View returns the currently applied view for a venue, or nil when none has
// been loaded this session.
func (s *Session) View(venueID string) *VenueView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.views[venueID]
}

// Forget drops the cached view so the next load rebuilds from scratch.
func (s *Session) Forget(venueID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.views, venueID)
}
