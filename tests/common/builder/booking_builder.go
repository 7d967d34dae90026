//go:build unit

package builder

import (
	"time"

	reqdto "holidaze-booking/internal/handler/dto/request"
	"holidaze-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID        uuid.UUID
	VenueID   string
	VenueName string
	DateFrom  time.Time
	DateTo    time.Time
	Guests    int
	Owner     string
	Created   time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:        uuid.New(),
		VenueID:   "venue-1",
		VenueName: "Seaside Cabin",
		DateFrom:  time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		DateTo:    time.Date(2025, 6, 19, 0, 0, 0, 0, time.UTC),
		Guests:    2,
		Owner:     "guest@example.com",
		Created:   time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		VenueID:  b.VenueID,
		DateFrom: b.DateFrom.Format("2006-01-02"),
		DateTo:   b.DateTo.Format("2006-01-02"),
		Guests:   b.Guests,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	nights := int(b.DateTo.Sub(b.DateFrom).Hours() / 24)
	return &queries.BookingView{
		ID:         b.ID,
		VenueID:    b.VenueID,
		VenueName:  b.VenueName,
		DateFrom:   b.DateFrom,
		DateTo:     b.DateTo,
		Guests:     b.Guests,
		Nights:     nights,
		TotalPrice: float64(nights) * 1000,
		Owner:      b.Owner,
		Created:    b.Created,
	}
}

func (b *BookingBuilder) BuildListResult() *queries.BookingListResult {
	return &queries.BookingListResult{
		Bookings: []*queries.BookingView{b.BuildView()},
	}
}
