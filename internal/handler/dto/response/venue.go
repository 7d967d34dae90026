package response

import (
	"time"

	"holidaze-booking/internal/usecase/queries"
)

type MediaResponse struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

type LocationResponse struct {
	Address   string  `json:"address"`
	City      string  `json:"city"`
	Zip       string  `json:"zip"`
	Country   string  `json:"country"`
	Continent string  `json:"continent"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
}

type AmenitiesResponse struct {
	Wifi      bool `json:"wifi"`
	Parking   bool `json:"parking"`
	Breakfast bool `json:"breakfast"`
	Pets      bool `json:"pets"`
}

type VenueDetailResponse struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	NightlyPrice float64           `json:"nightlyPrice"`
	MaxGuests    int               `json:"maxGuests"`
	Rating       float64           `json:"rating"`
	Media        []MediaResponse   `json:"media"`
	Location     LocationResponse  `json:"location"`
	Amenities    AmenitiesResponse `json:"amenities"`
	OwnerName    string            `json:"ownerName"`

	// Booked days are day-start timestamps for calendar exclusion.
	BookedDays     []time.Time `json:"bookedDays"`
	SkippedSpans   int         `json:"skippedSpans,omitempty"`
	SkippedRecords int         `json:"skippedRecords,omitempty"`
}

func FromVenueDetail(detail *queries.VenueDetail) *VenueDetailResponse {
	media := make([]MediaResponse, len(detail.Media))
	for i, m := range detail.Media {
		media[i] = MediaResponse{URL: m.URL, Alt: m.Alt}
	}
	return &VenueDetailResponse{
		ID:           detail.ID,
		Name:         detail.Name,
		Description:  detail.Description,
		NightlyPrice: detail.NightlyPrice,
		MaxGuests:    detail.MaxGuests,
		Rating:       detail.Rating,
		Media:        media,
		Location: LocationResponse{
			Address:   detail.Location.Address,
			City:      detail.Location.City,
			Zip:       detail.Location.Zip,
			Country:   detail.Location.Country,
			Continent: detail.Location.Continent,
			Lat:       detail.Location.Lat,
			Lng:       detail.Location.Lng,
		},
		Amenities: AmenitiesResponse{
			Wifi:      detail.Amenities.Wifi,
			Parking:   detail.Amenities.Parking,
			Breakfast: detail.Amenities.Breakfast,
			Pets:      detail.Amenities.Pets,
		},
		OwnerName:      detail.OwnerName,
		BookedDays:     detail.BookedDays,
		SkippedSpans:   detail.SkippedSpans,
		SkippedRecords: detail.SkippedRecords,
	}
}
