// Package catalog talks to the upstream venue catalog, the third-party REST
// API that owns every venue record. Bookings made through this service are
// not written back upstream; the catalog is read-only from here.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"holidaze-booking/internal/domain/booking"
	"holidaze-booking/internal/domain/venue"
	"holidaze-booking/internal/pkg/config"
	"holidaze-booking/internal/pkg/errs"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg config.CatalogConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http: &http.Client{
			// the source had no timeout policy; one is required here so a
			// dead upstream cannot stall a request forever
			Timeout: cfg.Timeout,
		},
	}
}

// FetchVenue loads one venue with its booked spans and owner, normalized
// into the domain shape.
func (c *Client) FetchVenue(ctx context.Context, id string) (venue.Venue, error) {
	url := fmt.Sprintf("%s/venues/%s?_bookings=true&_owner=true", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return venue.Venue{}, errs.Mark(err, errs.ErrUpstreamFailure)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return venue.Venue{}, errs.Mark(err, errs.ErrUpstreamFailure)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return venue.Venue{}, errs.ErrVenueNotFound
	case resp.StatusCode != http.StatusOK:
		return venue.Venue{}, errs.Mark(
			errs.Newf("catalog returned status %d for venue %s", resp.StatusCode, id),
			errs.ErrUpstreamFailure,
		)
	}

	var doc venueDoc
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return venue.Venue{}, errs.Mark(errs.Wrap(err, "decode venue"), errs.ErrUpstreamFailure)
	}

	v := doc.toDomain()
	if err := v.Validate(); err != nil {
		return venue.Venue{}, errs.Mark(errs.Wrap(err, "invalid catalog record"), errs.ErrUpstreamFailure)
	}
	return v, nil
}

// FetchVenueBookings returns the upstream booked spans for a venue.
func (c *Client) FetchVenueBookings(ctx context.Context, id string) ([]booking.Span, error) {
	v, err := c.FetchVenue(ctx, id)
	if err != nil {
		return nil, err
	}
	spans := make([]booking.Span, 0, len(v.BookedSpans))
	for _, s := range v.BookedSpans {
		spans = append(spans, booking.Span{From: s.From, To: s.To})
	}
	return spans, nil
}

// ---- wire shapes ----

type mediaDoc struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

type locationDoc struct {
	Address   string  `json:"address"`
	City      string  `json:"city"`
	Zip       string  `json:"zip"`
	Country   string  `json:"country"`
	Continent string  `json:"continent"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
}

type metaDoc struct {
	Wifi      bool `json:"wifi"`
	Parking   bool `json:"parking"`
	Breakfast bool `json:"breakfast"`
	Pets      bool `json:"pets"`
}

type bookingDoc struct {
	DateFrom time.Time `json:"dateFrom"`
	DateTo   time.Time `json:"dateTo"`
	Guests   int       `json:"guests"`
}

// ownerDoc tolerates the upstream's two serializations of an owner: a bare
// display-name string or a full profile object.
type ownerDoc struct {
	Name   string
	Email  string
	Avatar string
	full   bool
}

func (o *ownerDoc) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*o = ownerDoc{Name: name}
		return nil
	}

	var obj struct {
		Name   string `json:"name"`
		Email  string `json:"email"`
		Avatar string `json:"avatar"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*o = ownerDoc{Name: obj.Name, Email: obj.Email, Avatar: obj.Avatar, full: true}
	return nil
}

type venueDoc struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       float64      `json:"price"`
	MaxGuests   int          `json:"maxGuests"`
	Rating      float64      `json:"rating"`
	Media       []mediaDoc   `json:"media"`
	Location    locationDoc  `json:"location"`
	Meta        metaDoc      `json:"meta"`
	Owner       *ownerDoc    `json:"owner"`
	Bookings    []bookingDoc `json:"bookings"`
}

func (d venueDoc) toDomain() venue.Venue {
	v := venue.Venue{
		ID:           d.ID,
		Name:         d.Name,
		Description:  d.Description,
		NightlyPrice: d.Price,
		MaxGuests:    d.MaxGuests,
		Rating:       d.Rating,
		Location: venue.Location{
			Address:   d.Location.Address,
			City:      d.Location.City,
			Zip:       d.Location.Zip,
			Country:   d.Location.Country,
			Continent: d.Location.Continent,
			Lat:       d.Location.Lat,
			Lng:       d.Location.Lng,
		},
		Amenities: venue.Amenities{
			Wifi:      d.Meta.Wifi,
			Parking:   d.Meta.Parking,
			Breakfast: d.Meta.Breakfast,
			Pets:      d.Meta.Pets,
		},
	}
	for _, m := range d.Media {
		v.Media = append(v.Media, venue.Media{URL: m.URL, Alt: m.Alt})
	}
	if d.Owner != nil {
		if d.Owner.full {
			v.Owner = venue.NewOwnerFull(d.Owner.Name, d.Owner.Email, d.Owner.Avatar)
		} else {
			v.Owner = venue.NewOwnerName(d.Owner.Name)
		}
	}
	for _, b := range d.Bookings {
		v.BookedSpans = append(v.BookedSpans, venue.BookedSpan{
			From:   b.DateFrom,
			To:     b.DateTo,
			Guests: b.Guests,
		})
	}
	return v
}
