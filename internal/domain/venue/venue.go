package venue

import (
	"errors"
	"time"
)

var (
	ErrNegativePrice    = errors.New("nightly price cannot be negative")
	ErrInvalidMaxGuests = errors.New("max guests must be positive")
	ErrInvalidRating    = errors.New("rating must be between 0 and 5")
)

type Media struct {
	URL string
	Alt string
}

type Location struct {
	Address   string
	City      string
	Zip       string
	Country   string
	Continent string
	Lat       float64
	Lng       float64
}

type Amenities struct {
	Wifi      bool
	Parking   bool
	Breakfast bool
	Pets      bool
}

// BookedSpan is a date span already reserved on the venue as reported by the
// upstream catalog. It is deliberately not the booking entity: embedded spans
// carry no owner and only feed availability computation.
type BookedSpan struct {
	From   time.Time
	To     time.Time
	Guests int
}

// Venue is a catalog record. It is created and owned by the upstream
// provider; this service reads it and only ever grows its view of the booked
// spans within a session.
type Venue struct {
	ID           string
	Name         string
	Description  string
	NightlyPrice float64
	MaxGuests    int
	Rating       float64
	Media        []Media
	Location     Location
	Amenities    Amenities
	Owner        Owner
	BookedSpans  []BookedSpan
}

// Validate rejects catalog records that cannot host a booking at all.
// Records failing validation are surfaced as upstream data errors.
func (v Venue) Validate() error {
	if v.NightlyPrice < 0 {
		return ErrNegativePrice
	}
	if v.MaxGuests < 1 {
		return ErrInvalidMaxGuests
	}
	if v.Rating < 0 || v.Rating > 5 {
		return ErrInvalidRating
	}
	return nil
}
