package queries

import (
	"context"
	"strings"
	"time"

	"holidaze-booking/internal/catalog"
	"holidaze-booking/internal/domain/venue"
	"holidaze-booking/internal/pkg/errs"
)

type VenueDetail struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	NightlyPrice   float64         `json:"nightly_price"`
	MaxGuests      int             `json:"max_guests"`
	Rating         float64         `json:"rating"`
	Media          []venue.Media   `json:"media"`
	Location       venue.Location  `json:"location"`
	Amenities      venue.Amenities `json:"amenities"`
	OwnerName      string          `json:"owner_name"`
	BookedDays     []time.Time     `json:"booked_days"`
	SkippedSpans   int             `json:"skipped_spans"`
	SkippedRecords int             `json:"skipped_records"`
}

type VenueQueries interface {
	GetVenueDetail(ctx context.Context, venueID string) (*VenueDetail, error)
	ListVenueBookings(ctx context.Context, venueID string, managerEmail string) (*BookingListResult, error)
}

type VenueSession interface {
	Load(ctx context.Context, venueID string) (*catalog.VenueView, error)
}

type venueQueriesImpl struct {
	session VenueSession
	repo    BookingReadRepo
}

func NewVenueQueries(session VenueSession, repo BookingReadRepo) VenueQueries {
	return &venueQueriesImpl{session: session, repo: repo}
}

func (q *venueQueriesImpl) GetVenueDetail(ctx context.Context, venueID string) (*VenueDetail, error) {
	view, err := q.session.Load(ctx, venueID)
	if err != nil {
		return nil, err
	}
	v := view.Venue
	return &VenueDetail{
		ID:             v.ID,
		Name:           v.Name,
		Description:    v.Description,
		NightlyPrice:   v.NightlyPrice,
		MaxGuests:      v.MaxGuests,
		Rating:         v.Rating,
		Media:          v.Media,
		Location:       v.Location,
		Amenities:      v.Amenities,
		OwnerName:      v.Owner.Name(),
		BookedDays:     view.Index.BookedDays(),
		SkippedSpans:   view.SkippedSpans,
		SkippedRecords: view.SkippedRecords,
	}, nil
}

// ListVenueBookings returns the bookings held against a venue, but only for
// the manager whose profile owns it. Venues whose catalog record carries a
// name-only owner cannot prove ownership, so access is denied.
func (q *venueQueriesImpl) ListVenueBookings(ctx context.Context, venueID string, managerEmail string) (*BookingListResult, error) {
	if managerEmail == "" {
		return nil, errs.ErrAuthenticationRequired
	}
	view, err := q.session.Load(ctx, venueID)
	if err != nil {
		return nil, err
	}
	owner := view.Venue.Owner
	if !owner.IsFull() || !strings.EqualFold(owner.Email(), managerEmail) {
		return nil, errs.ErrVenueAccessDenied
	}
	bookings, skipped, err := q.repo.ListByVenue(ctx, venueID)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return toListResult(bookings, skipped), nil
}
