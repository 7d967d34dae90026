package request

import (
	"errors"
	"time"
)

var ErrInvalidDateFormat = errors.New("dates must be RFC 3339 timestamps or YYYY-MM-DD")

// Dates arrive from calendar pickers as plain days and from API clients as
// full timestamps; both are accepted.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

type CreateBookingRequest struct {
	VenueID  string `json:"venueId" binding:"required"`
	DateFrom string `json:"dateFrom" binding:"required"`
	DateTo   string `json:"dateTo" binding:"required"`
	Guests   int    `json:"guests"`
}

func (r CreateBookingRequest) ParseDates() (time.Time, time.Time, error) {
	from, err := parseDate(r.DateFrom)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := parseDate(r.DateTo)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}

// GuestCount defaults an omitted guests field to a single traveler.
func (r CreateBookingRequest) GuestCount() int {
	if r.Guests == 0 {
		return 1
	}
	return r.Guests
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDateFormat
}
