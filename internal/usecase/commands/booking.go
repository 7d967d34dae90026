package commands

import (
	"context"
	"log/slog"
	"time"

	"holidaze-booking/internal/domain/booking"
	"holidaze-booking/internal/domain/venue"
	"holidaze-booking/internal/infra"
	"holidaze-booking/internal/pkg/bus"
	"holidaze-booking/internal/pkg/clock"
	"holidaze-booking/internal/pkg/errs"
	"holidaze-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateBookingInput struct {
	VenueID  string
	DateFrom time.Time
	DateTo   time.Time
	Guests   int
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, input CreateBookingInput, owner string) (*queries.BookingView, error)
	DeleteBooking(ctx context.Context, id uuid.UUID, owner string) error
}

type BookingRepository interface {
	ListByVenue(ctx context.Context, venueID string) ([]*booking.Booking, int, error)
	Create(ctx context.Context, b *booking.Booking) error
	Delete(ctx context.Context, id uuid.UUID, owner string) (*booking.Booking, error)
}

type VenueProvider interface {
	FetchVenue(ctx context.Context, venueID string) (venue.Venue, error)
}

type bookingCommandsImpl struct {
	repo   BookingRepository
	venues VenueProvider
	clock  clock.Clock
	events *bus.Bus
}

func NewBookingCommands(repo BookingRepository, venues VenueProvider, clk clock.Clock, events *bus.Bus) BookingCommands {
	return &bookingCommandsImpl{repo: repo, venues: venues, clock: clk, events: events}
}

func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, input CreateBookingInput, owner string) (*queries.BookingView, error) {
	if owner == "" {
		return nil, errs.ErrAuthenticationRequired
	}

	v, err := c.venues.FetchVenue(ctx, input.VenueID)
	if err != nil {
		return nil, err
	}

	existing, _, err := c.repo.ListByVenue(ctx, input.VenueID)
	if err != nil {
		return nil, mapRepoErr(err)
	}

	spans := make([]booking.Span, 0, len(v.BookedSpans))
	for _, s := range v.BookedSpans {
		spans = append(spans, booking.Span{From: s.From, To: s.To})
	}
	idx, skipped := booking.BuildIndex(spans)
	if skipped > 0 {
		slog.Warn("ignoring unparsable booked spans", "venue_id", input.VenueID, "skipped", skipped)
	}
	for _, b := range existing {
		idx = idx.Append(b.Dates())
	}

	dates, err := booking.CheckAvailability(idx, input.DateFrom, input.DateTo, input.Guests, v)
	if err != nil {
		return nil, err
	}

	b, err := booking.NewBooking(uuid.New(), v, dates, input.Guests, owner, c.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := c.repo.Create(ctx, b); err != nil {
		return nil, mapRepoErr(err)
	}

	c.events.Publish(bus.Event{Topic: booking.TopicCreated, Payload: booking.CreatedEvent{
		BookingID: b.ID(),
		VenueID:   b.VenueID(),
		Dates:     b.Dates(),
	}})

	return queries.FromBooking(b), nil
}

func (c *bookingCommandsImpl) DeleteBooking(ctx context.Context, id uuid.UUID, owner string) error {
	if owner == "" {
		return errs.ErrAuthenticationRequired
	}

	removed, err := c.repo.Delete(ctx, id, owner)
	if err != nil {
		return mapRepoErr(err)
	}

	c.events.Publish(bus.Event{Topic: booking.TopicDeleted, Payload: booking.DeletedEvent{
		BookingID: removed.ID(),
		VenueID:   removed.VenueID(),
	}})
	return nil
}

func mapRepoErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrBookingNotFound)
	case infra.IsKind(err, infra.KindCorrupt):
		return errs.Mark(err, errs.ErrDataCorrupt)
	default:
		return errs.Mark(err, errs.ErrStoreFailure)
	}
}
