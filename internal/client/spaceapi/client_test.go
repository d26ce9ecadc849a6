package spaceapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spaceBooker/internal/lib/logger/handlers/slogdiscard"
	"spaceBooker/internal/models"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()

	r.Get("/destinations", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1,"name":"Lunar Gateway Station","type":"Space Station",
			"travel_time":"3 days","base_price":1200000,"image_url":"/images/lunar-gateway.jpg",
			"next_launch":"March 15, 2025","created_at":"2025-01-01T00:00:00"}]`))
	})

	r.Get("/destinations/{id}/seat-classes", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "id") != "1" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`[{"id":2,"destination_id":1,"name":"Luxury Cabin","price":2100000,
			"features":["Private cabin"]}]`))
	})

	r.Get("/destinations/{id}/accommodations", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id":5,"destination_id":1,"name":"Comfort Suite","price_per_night":30000,
			"features":[],"rating":4.2}]`))
	})

	r.Post("/bookings", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
		if body["seat_class_id"] != float64(2) || body["user_id"] != float64(9) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
		_, _ = w.Write([]byte(`{"id":77,"user_id":9,"destination_id":1,"seat_class_id":2,"accommodation_id":5,
			"departure_date":"2025-03-15T00:00:00","return_date":"2025-03-22T00:00:00","passengers":2,
			"total_price":4410000,"status":"Confirmed","booking_date":"2025-02-01T10:30:00.123456"}`))
	})

	r.Get("/users/{id}/bookings", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id":101,"user_id":9,"destination":{"id":1,"name":"Lunar Gateway Station"},
			"seat_class":{"id":2,"name":"Luxury Cabin","price":2100000},
			"accommodation":{"id":2,"name":"Comfort Suite","pricePerNight":30000},
			"departure_date":"2025-04-01T00:00:00Z","return_date":"2025-04-16T00:00:00Z",
			"passengers":2,"total_price":2500000,"status":"Pending","booking_date":"2025-03-01T00:00:00Z"}]`))
	})

	r.Get("/users/{id}", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":9,"username":"astro_explorer","full_name":"Alex Astronaut","traveler_level":3}`))
	})

	r.Get("/space-travel-tips", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`["Stay hydrated!"]`))
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return srv
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	c, err := New(slogdiscard.NewDiscardLogger(), baseURL, WithTimeout(2*time.Second), WithRateLimit(100))
	require.NoError(t, err)

	return c
}

func TestClientCatalog(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	c := newTestClient(t, srv.URL)
	ctx := context.Background()

	dests, err := c.Destinations(ctx)
	require.NoError(t, err)
	require.Len(t, dests, 1)
	assert.Equal(t, "3 days", dests[0].TravelTime)
	assert.Equal(t, models.Money(1200000), dests[0].BasePrice)
	assert.Equal(t, "/images/lunar-gateway.jpg", dests[0].ImageURL)
	assert.Equal(t, "March 15, 2025", dests[0].NextLaunch)

	seats, err := c.SeatClasses(ctx, 1)
	require.NoError(t, err)
	require.Len(t, seats, 1)
	assert.Equal(t, int64(1), seats[0].DestinationID)
	assert.Equal(t, models.Money(2100000), seats[0].Price)

	accs, err := c.Accommodations(ctx, 1)
	require.NoError(t, err)
	require.Len(t, accs, 1)
	assert.Equal(t, models.Money(30000), accs[0].PricePerNight)
	assert.InDelta(t, 4.2, accs[0].Rating, 0.0001)
}

func TestClientStatusError(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	c := newTestClient(t, srv.URL)

	_, err := c.SeatClasses(context.Background(), 42)
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.Code)
}

func TestClientCreateBooking(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	c := newTestClient(t, srv.URL)

	b, err := c.CreateBooking(context.Background(), models.BookingRequest{
		UserID:          9,
		DestinationID:   1,
		SeatClassID:     2,
		AccommodationID: 5,
		DepartureDate:   time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		ReturnDate:      time.Date(2025, 3, 22, 0, 0, 0, 0, time.UTC),
		Passengers:      2,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(77), b.ID)
	assert.Equal(t, models.StatusConfirmed, b.Status)
	assert.Equal(t, models.Money(4410000), b.TotalPrice)
	assert.Equal(t, models.OriginLive, b.Origin)
	assert.Equal(t, time.Date(2025, 3, 22, 0, 0, 0, 0, time.UTC), b.ReturnDate)
	assert.Equal(t, 2025, b.BookingDate.Year())
}

func TestClientDashboardReads(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	c := newTestClient(t, srv.URL)
	ctx := context.Background()

	bookings, err := c.UserBookings(ctx, 9)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, int64(1), bookings[0].DestinationID)
	assert.Equal(t, int64(2), bookings[0].SeatClassID)
	assert.Equal(t, models.Money(30000), bookings[0].Accommodation.PricePerNight)
	assert.Equal(t, models.StatusPending, bookings[0].Status)

	profile, err := c.UserProfile(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, "Alex Astronaut", profile.FullName)
	assert.Equal(t, 3, profile.TravelerLevel)

	tips, err := c.TravelTips(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Stay hydrated!"}, tips)
}

func TestClientTransportFailure(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	url := srv.URL
	srv.Close()

	c := newTestClient(t, url)

	_, err := c.Destinations(context.Background())
	assert.Error(t, err)
}

func TestNewRejectsRelativeURL(t *testing.T) {
	t.Parallel()

	_, err := New(slogdiscard.NewDiscardLogger(), "/relative")
	assert.Error(t, err)
}
