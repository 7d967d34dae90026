//go:build unit

package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"holidaze-booking/internal/catalog"
	"holidaze-booking/internal/pkg/config"
	"holidaze-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *catalog.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return catalog.NewClient(config.CatalogConfig{
		BaseURL: srv.URL,
		Timeout: 2 * time.Second,
	})
}

const venueJSON = `{
	"id": "venue-1",
	"name": "Seaside Cabin",
	"description": "A cabin by the sea",
	"price": 1000,
	"maxGuests": 4,
	"rating": 4.5,
	"media": [{"url": "https://img.example.com/1.jpg", "alt": "front"}],
	"location": {"address": "Strandveien 1", "city": "Bergen", "zip": "5003", "country": "Norway", "continent": "Europe", "lat": 60.39, "lng": 5.32},
	"meta": {"wifi": true, "parking": false, "breakfast": true, "pets": false},
	"owner": {"name": "Kari", "email": "kari@example.com", "avatar": "https://img.example.com/kari.jpg"},
	"bookings": [
		{"dateFrom": "2025-06-10T00:00:00Z", "dateTo": "2025-06-15T00:00:00Z", "guests": 2}
	]
}`

func TestClientFetchVenue(t *testing.T) {
	t.Run("decodes a full record", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/venues/venue-1", r.URL.Path)
			assert.Equal(t, "true", r.URL.Query().Get("_bookings"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(venueJSON))
		})

		v, err := client.FetchVenue(context.Background(), "venue-1")
		require.NoError(t, err)

		assert.Equal(t, "Seaside Cabin", v.Name)
		assert.Equal(t, 1000.0, v.NightlyPrice)
		assert.Equal(t, 4, v.MaxGuests)
		assert.True(t, v.Amenities.Wifi)
		assert.False(t, v.Amenities.Pets)
		assert.Equal(t, "Bergen", v.Location.City)
		require.Len(t, v.Media, 1)

		require.True(t, v.Owner.IsFull())
		assert.Equal(t, "Kari", v.Owner.Name())
		assert.Equal(t, "kari@example.com", v.Owner.Email())

		require.Len(t, v.BookedSpans, 1)
		assert.Equal(t, 2, v.BookedSpans[0].Guests)
	})

	t.Run("normalizes a bare string owner", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"id":"v","name":"n","price":10,"maxGuests":2,"rating":0,"owner":"Ola"}`))
		})

		v, err := client.FetchVenue(context.Background(), "v")
		require.NoError(t, err)

		assert.False(t, v.Owner.IsFull())
		assert.Equal(t, "Ola", v.Owner.Name())
		assert.Empty(t, v.Owner.Email())
	})

	t.Run("missing venue", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := client.FetchVenue(context.Background(), "nope")
		assert.ErrorIs(t, err, errs.ErrVenueNotFound)
	})

	t.Run("upstream failure status", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := client.FetchVenue(context.Background(), "venue-1")
		assert.ErrorIs(t, err, errs.ErrUpstreamFailure)
	})

	t.Run("record failing validation is an upstream error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"id":"v","name":"n","price":10,"maxGuests":0,"rating":0}`))
		})

		_, err := client.FetchVenue(context.Background(), "v")
		assert.ErrorIs(t, err, errs.ErrUpstreamFailure)
	})

	t.Run("malformed body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"id": "v"`))
		})

		_, err := client.FetchVenue(context.Background(), "v")
		assert.ErrorIs(t, err, errs.ErrUpstreamFailure)
	})
}

func TestClientFetchVenueBookings(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(venueJSON))
	})

	spans, err := client.FetchVenueBookings(context.Background(), "venue-1")
	require.NoError(t, err)
	require.Len(t, spans, 1)
	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), spans[0].From)
}
