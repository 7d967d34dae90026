package booking

import (
	"errors"
	"time"

	"holidaze-booking/internal/domain/venue"

	"github.com/google/uuid"
)

var (
	ErrMissingOwner = errors.New("booking owner is required")
	ErrMissingID    = errors.New("booking id is required")
)

// Booking is a confirmed reservation. It is created once after a successful
// conflict check and never mutated; deletion is the only lifecycle event and
// is always scoped to the owning user.
type Booking struct {
	id        uuid.UUID
	venue     venue.Venue
	dates     DateRange
	guests    int
	owner     string
	createdAt time.Time
}

// NewBooking validates the invariants the store must never hold a violation
// of: a usable range, a guest count within the venue ceiling, and an owner.
func NewBooking(id uuid.UUID, v venue.Venue, dates DateRange, guests int, owner string, createdAt time.Time) (*Booking, error) {
	if id == uuid.Nil {
		return nil, ErrMissingID
	}
	if dates.IsZero() {
		return nil, ErrInvalidRange
	}
	if guests < 1 || guests > v.MaxGuests {
		return nil, ErrGuestCountExceeded
	}
	if owner == "" {
		return nil, ErrMissingOwner
	}
	return &Booking{
		id:        id,
		venue:     v,
		dates:     dates,
		guests:    guests,
		owner:     owner,
		createdAt: createdAt,
	}, nil
}

// ReconstructBooking hydrates a record from the store without re-running
// creation validation. Stored records that fail to parse at all are the
// repository's concern, not this constructor's.
func ReconstructBooking(id uuid.UUID, v venue.Venue, dates DateRange, guests int, owner string, createdAt time.Time) *Booking {
	return &Booking{
		id:        id,
		venue:     v,
		dates:     dates,
		guests:    guests,
		owner:     owner,
		createdAt: createdAt,
	}
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) Venue() venue.Venue   { return b.venue }
func (b *Booking) VenueID() string      { return b.venue.ID }
func (b *Booking) Dates() DateRange     { return b.dates }
func (b *Booking) Guests() int          { return b.guests }
func (b *Booking) Owner() string        { return b.owner }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

func (b *Booking) Span() Span {
	return Span{From: b.dates.Start(), To: b.dates.End()}
}

func (b *Booking) Nights() int {
	return b.dates.Nights()
}

func (b *Booking) TotalPrice() float64 {
	return TotalPrice(b.venue.NightlyPrice, b.Nights())
}
