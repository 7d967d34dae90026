package queries

import (
	"context"
	"time"

	"holidaze-booking/internal/domain/booking"
	"holidaze-booking/internal/infra"
	"holidaze-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID         uuid.UUID `json:"id"`
	VenueID    string    `json:"venue_id"`
	VenueName  string    `json:"venue_name"`
	DateFrom   time.Time `json:"date_from"`
	DateTo     time.Time `json:"date_to"`
	Guests     int       `json:"guests"`
	Nights     int       `json:"nights"`
	TotalPrice float64   `json:"total_price"`
	Owner      string    `json:"owner"`
	Created    time.Time `json:"created"`
}

// BookingListResult carries a listing plus the count of stored records that
// were skipped as corrupt, so callers can surface the condition.
type BookingListResult struct {
	Bookings       []*BookingView `json:"bookings"`
	SkippedCorrupt int            `json:"skipped_corrupt"`
}

type BookingQueries interface {
	ListByUser(ctx context.Context, owner string) (*BookingListResult, error)
	ListByVenue(ctx context.Context, venueID string) (*BookingListResult, error)
}

type BookingReadRepo interface {
	ListByUser(ctx context.Context, owner string) ([]*booking.Booking, int, error)
	ListByVenue(ctx context.Context, venueID string) ([]*booking.Booking, int, error)
}

type bookingQueriesImpl struct {
	repo BookingReadRepo
}

func NewBookingQueries(repo BookingReadRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, owner string) (*BookingListResult, error) {
	if owner == "" {
		return nil, errs.ErrAuthenticationRequired
	}
	bookings, skipped, err := q.repo.ListByUser(ctx, owner)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return toListResult(bookings, skipped), nil
}

func (q *bookingQueriesImpl) ListByVenue(ctx context.Context, venueID string) (*BookingListResult, error) {
	bookings, skipped, err := q.repo.ListByVenue(ctx, venueID)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return toListResult(bookings, skipped), nil
}

func toListResult(bookings []*booking.Booking, skipped int) *BookingListResult {
	views := make([]*BookingView, len(bookings))
	for i, b := range bookings {
		views[i] = FromBooking(b)
	}
	return &BookingListResult{Bookings: views, SkippedCorrupt: skipped}
}

func FromBooking(b *booking.Booking) *BookingView {
	return &BookingView{
		ID:         b.ID(),
		VenueID:    b.VenueID(),
		VenueName:  b.Venue().Name,
		DateFrom:   b.Dates().Start(),
		DateTo:     b.Dates().End(),
		Guests:     b.Guests(),
		Nights:     b.Nights(),
		TotalPrice: b.TotalPrice(),
		Owner:      b.Owner(),
		Created:    b.CreatedAt(),
	}
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
