package response

import (
	"time"

	"holidaze-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID         uuid.UUID `json:"id"`
	VenueID    string    `json:"venueId"`
	VenueName  string    `json:"venueName"`
	DateFrom   time.Time `json:"dateFrom"`
	DateTo     time.Time `json:"dateTo"`
	Guests     int       `json:"guests"`
	Nights     int       `json:"nights"`
	TotalPrice float64   `json:"totalPrice"`
	Created    time.Time `json:"created"`
}

type BookingListResponse struct {
	Bookings       []*BookingResponse `json:"bookings"`
	SkippedCorrupt int                `json:"skippedCorrupt,omitempty"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:         view.ID,
		VenueID:    view.VenueID,
		VenueName:  view.VenueName,
		DateFrom:   view.DateFrom,
		DateTo:     view.DateTo,
		Guests:     view.Guests,
		Nights:     view.Nights,
		TotalPrice: view.TotalPrice,
		Created:    view.Created,
	}
}

func FromBookingListResult(result *queries.BookingListResult) *BookingListResponse {
	bookings := make([]*BookingResponse, len(result.Bookings))
	for i, view := range result.Bookings {
		bookings[i] = FromBookingView(view)
	}
	return &BookingListResponse{
		Bookings:       bookings,
		SkippedCorrupt: result.SkippedCorrupt,
	}
}
