package repository

import (
	"encoding/json"
	"time"

	"holidaze-booking/internal/domain/booking"
	"holidaze-booking/internal/domain/venue"

	"github.com/google/uuid"
)

// Stored shapes mirror the source system's implicit JSON schema: bookings are
// kept under a single "bookings" document as an array, each record embedding
// a snapshot of its venue.

type storedMedia struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

type storedLocation struct {
	Address   string  `json:"address"`
	City      string  `json:"city"`
	Zip       string  `json:"zip"`
	Country   string  `json:"country"`
	Continent string  `json:"continent"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
}

type storedMeta struct {
	Wifi      bool `json:"wifi"`
	Parking   bool `json:"parking"`
	Breakfast bool `json:"breakfast"`
	Pets      bool `json:"pets"`
}

type storedOwner struct {
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

type storedVenue struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       float64        `json:"price"`
	MaxGuests   int            `json:"maxGuests"`
	Rating      float64        `json:"rating"`
	Media       []storedMedia  `json:"media,omitempty"`
	Location    storedLocation `json:"location"`
	Meta        storedMeta     `json:"meta"`
	Owner       *storedOwner   `json:"owner,omitempty"`
}

type storedBooking struct {
	ID       string      `json:"id"`
	DateFrom time.Time   `json:"dateFrom"`
	DateTo   time.Time   `json:"dateTo"`
	Guests   int         `json:"guests"`
	Created  time.Time   `json:"created"`
	Owner    string      `json:"owner"`
	Venue    storedVenue `json:"venue"`
}

func venueToStored(v venue.Venue) storedVenue {
	sv := storedVenue{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Price:       v.NightlyPrice,
		MaxGuests:   v.MaxGuests,
		Rating:      v.Rating,
		Location: storedLocation{
			Address:   v.Location.Address,
			City:      v.Location.City,
			Zip:       v.Location.Zip,
			Country:   v.Location.Country,
			Continent: v.Location.Continent,
			Lat:       v.Location.Lat,
			Lng:       v.Location.Lng,
		},
		Meta: storedMeta{
			Wifi:      v.Amenities.Wifi,
			Parking:   v.Amenities.Parking,
			Breakfast: v.Amenities.Breakfast,
			Pets:      v.Amenities.Pets,
		},
	}
	for _, m := range v.Media {
		sv.Media = append(sv.Media, storedMedia{URL: m.URL, Alt: m.Alt})
	}
	if !v.Owner.IsZero() {
		o := storedOwner{Name: v.Owner.Name()}
		if v.Owner.IsFull() {
			o.Email = v.Owner.Email()
			o.Avatar = v.Owner.Avatar()
		}
		sv.Owner = &o
	}
	return sv
}

func venueFromStored(sv storedVenue) venue.Venue {
	v := venue.Venue{
		ID:           sv.ID,
		Name:         sv.Name,
		Description:  sv.Description,
		NightlyPrice: sv.Price,
		MaxGuests:    sv.MaxGuests,
		Rating:       sv.Rating,
		Location: venue.Location{
			Address:   sv.Location.Address,
			City:      sv.Location.City,
			Zip:       sv.Location.Zip,
			Country:   sv.Location.Country,
			Continent: sv.Location.Continent,
			Lat:       sv.Location.Lat,
			Lng:       sv.Location.Lng,
		},
		Amenities: venue.Amenities{
			Wifi:      sv.Meta.Wifi,
			Parking:   sv.Meta.Parking,
			Breakfast: sv.Meta.Breakfast,
			Pets:      sv.Meta.Pets,
		},
	}
	for _, m := range sv.Media {
		v.Media = append(v.Media, venue.Media{URL: m.URL, Alt: m.Alt})
	}
	if sv.Owner != nil {
		if sv.Owner.Email != "" || sv.Owner.Avatar != "" {
			v.Owner = venue.NewOwnerFull(sv.Owner.Name, sv.Owner.Email, sv.Owner.Avatar)
		} else {
			v.Owner = venue.NewOwnerName(sv.Owner.Name)
		}
	}
	return v
}

func bookingToStored(b *booking.Booking) storedBooking {
	return storedBooking{
		ID:       b.ID().String(),
		DateFrom: b.Dates().Start(),
		DateTo:   b.Dates().End(),
		Guests:   b.Guests(),
		Created:  b.CreatedAt(),
		Owner:    b.Owner(),
		Venue:    venueToStored(b.Venue()),
	}
}

// decodeStored turns one raw record into a domain booking. A record that
// cannot be decoded is reported as unusable, not fatal.
func decodeStored(raw json.RawMessage) (*booking.Booking, bool) {
	var sb storedBooking
	if err := json.Unmarshal(raw, &sb); err != nil {
		return nil, false
	}
	id, err := uuid.Parse(sb.ID)
	if err != nil {
		return nil, false
	}
	dates, err := booking.NewDateRange(sb.DateFrom, sb.DateTo)
	if err != nil {
		return nil, false
	}
	if sb.Owner == "" {
		return nil, false
	}
	return booking.ReconstructBooking(id, venueFromStored(sb.Venue), dates, sb.Guests, sb.Owner, sb.Created), true
}
