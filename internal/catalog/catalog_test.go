package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"spaceBooker/internal/catalog/mocks"
	"spaceBooker/internal/lib/logger/handlers/slogdiscard"
	"spaceBooker/internal/models"
)

var errUnreachable = errors.New("dial tcp: connection refused")

var fixedNow = time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)

func newService(upstream Upstream, opts ...Option) *Service {
	opts = append(opts, WithClock(func() time.Time { return fixedNow }))
	return New(slogdiscard.NewDiscardLogger(), upstream, opts...)
}

func TestDestinations(t *testing.T) {
	t.Parallel()

	live := []models.Destination{{ID: 9, Name: "Venus Cloud Observatory"}}

	testCases := []struct {
		name       string
		offline    bool
		mockSetup  func(m *mocks.Upstream)
		wantOrigin models.Origin
		wantFirst  string
		wantErr    bool
	}{
		{
			name: "Live",
			mockSetup: func(m *mocks.Upstream) {
				m.On("Destinations", mock.Anything).Return(live, nil)
			},
			wantOrigin: models.OriginLive,
			wantFirst:  "Venus Cloud Observatory",
		},
		{
			name:    "Offline fallback",
			offline: true,
			mockSetup: func(m *mocks.Upstream) {
				m.On("Destinations", mock.Anything).Return(nil, errUnreachable)
			},
			wantOrigin: models.OriginFallback,
			wantFirst:  "Lunar Gateway Station",
		},
		{
			name: "Online failure surfaces",
			mockSetup: func(m *mocks.Upstream) {
				m.On("Destinations", mock.Anything).Return(nil, errUnreachable)
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			upstream := mocks.NewUpstream(t)
			tc.mockSetup(upstream)

			svc := newService(upstream, WithOfflineMode(tc.offline))

			dests, origin, err := svc.Destinations(context.Background())
			if tc.wantErr {
				assert.ErrorIs(t, err, errUnreachable)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantOrigin, origin)
			assert.Equal(t, tc.wantFirst, dests[0].Name)
		})
	}
}

func TestOptionListsFallback(t *testing.T) {
	t.Parallel()

	upstream := mocks.NewUpstream(t)
	upstream.On("SeatClasses", mock.Anything, int64(1)).Return(nil, errUnreachable)
	upstream.On("Accommodations", mock.Anything, int64(1)).Return(nil, errUnreachable)

	svc := newService(upstream, WithOfflineMode(true))

	seats, origin, err := svc.SeatClasses(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.OriginFallback, origin)
	assert.Equal(t, models.Money(2100000), seats[1].Price)

	accs, origin, err := svc.Accommodations(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.OriginFallback, origin)
	assert.Equal(t, models.Money(30000), accs[1].PricePerNight)
}

func testDraft() models.Draft {
	return models.Draft{
		DepartureDate: fixedNow.AddDate(0, 0, 30),
		ReturnDate:    fixedNow.AddDate(0, 0, 37),
		Passengers:    2,
		Destination:   &models.Destination{ID: 1, Name: "Lunar Gateway Station"},
		SeatClass:     &models.SeatClass{ID: 2, Price: 2100000},
		Accommodation: &models.Accommodation{ID: 2, PricePerNight: 30000},
		TotalPrice:    4410000,
	}
}

func testRequest(d models.Draft) models.BookingRequest {
	return models.BookingRequest{
		UserID:          5,
		DestinationID:   d.Destination.ID,
		SeatClassID:     d.SeatClass.ID,
		AccommodationID: d.Accommodation.ID,
		DepartureDate:   d.DepartureDate,
		ReturnDate:      d.ReturnDate,
		Passengers:      d.Passengers,
	}
}

func TestCreateBookingOfflineFallback(t *testing.T) {
	t.Parallel()

	draft := testDraft()
	req := testRequest(draft)

	upstream := mocks.NewUpstream(t)
	upstream.On("CreateBooking", mock.Anything, req).Return(nil, errUnreachable)

	journal := mocks.NewJournal(t)
	journal.On("SaveBooking", mock.Anything, mock.MatchedBy(func(b models.ConfirmedBooking) bool {
		return b.Origin == models.OriginFallback && b.UserID == 5
	})).Return(nil)

	svc := newService(upstream, WithOfflineMode(true), WithJournal(journal))

	b, err := svc.CreateBooking(context.Background(), req, draft)
	require.NoError(t, err)

	assert.NotZero(t, b.ID)
	assert.Equal(t, models.StatusConfirmed, b.Status)
	assert.Equal(t, fixedNow, b.BookingDate)
	assert.Equal(t, models.OriginFallback, b.Origin)
	assert.Equal(t, models.Money(4410000), b.TotalPrice)
	assert.Equal(t, "Lunar Gateway Station", b.Destination.Name)
}

func TestCreateBookingLive(t *testing.T) {
	t.Parallel()

	draft := testDraft()
	req := testRequest(draft)
	confirmed := &models.ConfirmedBooking{ID: 77, Status: models.StatusPending, Origin: models.OriginLive}

	upstream := mocks.NewUpstream(t)
	upstream.On("CreateBooking", mock.Anything, req).Return(confirmed, nil)

	journal := mocks.NewJournal(t)
	journal.On("SaveBooking", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	svc := newService(upstream, WithJournal(journal))

	b, err := svc.CreateBooking(context.Background(), req, draft)
	require.NoError(t, err, "journal failures do not fail the booking")

	assert.Equal(t, int64(77), b.ID)
	assert.Equal(t, models.OriginLive, b.Origin)
	assert.Equal(t, draft.SeatClass, b.SeatClass)
}

func TestCreateBookingOnlineFailure(t *testing.T) {
	t.Parallel()

	draft := testDraft()
	req := testRequest(draft)

	upstream := mocks.NewUpstream(t)
	upstream.On("CreateBooking", mock.Anything, req).Return(nil, errUnreachable)

	svc := newService(upstream)

	_, err := svc.CreateBooking(context.Background(), req, draft)
	assert.ErrorIs(t, err, errUnreachable)
}

func TestDashboard(t *testing.T) {
	t.Parallel()

	t.Run("Live", func(t *testing.T) {
		t.Parallel()

		upstream := mocks.NewUpstream(t)
		upstream.On("UserProfile", mock.Anything, int64(3)).Return(&models.UserProfile{ID: 3, Username: "cosmic_voyager"}, nil)
		upstream.On("UserBookings", mock.Anything, int64(3)).Return([]models.ConfirmedBooking{{ID: 1}}, nil)
		upstream.On("TravelTips", mock.Anything).Return([]string{"tip"}, nil)

		d, err := newService(upstream).Dashboard(context.Background(), 3)
		require.NoError(t, err)

		assert.Equal(t, models.OriginLive, d.Origin)
		assert.Equal(t, "cosmic_voyager", d.Profile.Username)
		assert.Len(t, d.Bookings, 1)
		assert.Equal(t, []string{"tip"}, d.Tips)
	})

	t.Run("Offline uses journal", func(t *testing.T) {
		t.Parallel()

		upstream := mocks.NewUpstream(t)
		upstream.On("UserProfile", mock.Anything, int64(3)).Return(nil, errUnreachable)
		upstream.On("UserBookings", mock.Anything, int64(3)).Return(nil, errUnreachable)
		upstream.On("TravelTips", mock.Anything).Return(nil, errUnreachable)

		journal := mocks.NewJournal(t)
		journal.On("UserBookings", mock.Anything, int64(3)).Return([]models.ConfirmedBooking{{ID: 640}}, nil)

		d, err := newService(upstream, WithOfflineMode(true), WithJournal(journal)).Dashboard(context.Background(), 3)
		require.NoError(t, err)

		assert.Equal(t, models.OriginFallback, d.Origin)
		assert.Equal(t, int64(3), d.Profile.ID)
		require.Len(t, d.Bookings, 1)
		assert.Equal(t, int64(640), d.Bookings[0].ID)
		assert.Len(t, d.Tips, 5)
	})

	t.Run("Offline without journal", func(t *testing.T) {
		t.Parallel()

		upstream := mocks.NewUpstream(t)
		upstream.On("UserProfile", mock.Anything, int64(3)).Return(&models.UserProfile{ID: 3}, nil)
		upstream.On("UserBookings", mock.Anything, int64(3)).Return(nil, errUnreachable)
		upstream.On("TravelTips", mock.Anything).Return([]string{"tip"}, nil)

		d, err := newService(upstream, WithOfflineMode(true)).Dashboard(context.Background(), 3)
		require.NoError(t, err)

		assert.Equal(t, models.OriginFallback, d.Origin)
		require.Len(t, d.Bookings, 2)
		assert.Equal(t, fixedNow.Add(45*24*time.Hour), d.Bookings[0].DepartureDate)
	})

	t.Run("Online failure surfaces", func(t *testing.T) {
		t.Parallel()

		upstream := mocks.NewUpstream(t)
		upstream.On("UserProfile", mock.Anything, int64(3)).Return(nil, errUnreachable)

		_, err := newService(upstream).Dashboard(context.Background(), 3)
		assert.ErrorIs(t, err, errUnreachable)
	})
}
