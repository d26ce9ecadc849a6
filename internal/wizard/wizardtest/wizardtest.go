// Package wizardtest builds wizards backed by the offline catalog for handler tests.
package wizardtest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"spaceBooker/internal/catalog/fallback"
	"spaceBooker/internal/lib/logger/handlers/slogdiscard"
	"spaceBooker/internal/models"
	"spaceBooker/internal/wizard"
	"spaceBooker/internal/wizard/mocks"
)

var Now = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

// New returns a wizard for userID with the destination catalog loaded.
func New(t *testing.T, id string, userID int64) *wizard.Wizard {
	t.Helper()

	backend := mocks.NewBackend(t)
	backend.On("Destinations", mock.Anything).
		Return(fallback.Destinations(), models.OriginFallback, nil).Maybe()
	backend.On("SeatClasses", mock.Anything, mock.AnythingOfType("int64")).
		Return(func(_ context.Context, destID int64) ([]models.SeatClass, models.Origin, error) {
			return fallback.SeatClasses(destID), models.OriginFallback, nil
		}).Maybe()
	backend.On("Accommodations", mock.Anything, mock.AnythingOfType("int64")).
		Return(func(_ context.Context, destID int64) ([]models.Accommodation, models.Origin, error) {
			return fallback.Accommodations(destID), models.OriginFallback, nil
		}).Maybe()
	backend.On("CreateBooking", mock.Anything, mock.Anything, mock.Anything).
		Return(func(ctx context.Context, req models.BookingRequest, d models.Draft) (*models.ConfirmedBooking, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return fallback.Booking(req, d, Now), nil
		}).Maybe()

	w := wizard.New(slogdiscard.NewDiscardLogger(), backend, wizard.Session{ID: id, UserID: userID}, Now)
	require.NoError(t, w.LoadDestinations(context.Background()))

	return w
}

// AtReview walks w to ReviewAndCheckout with the Lunar Gateway selections.
func AtReview(t *testing.T, w *wizard.Wizard) {
	t.Helper()

	ctx := context.Background()

	require.NoError(t, w.SelectDestination(ctx, 1))
	require.NoError(t, w.Advance(ctx))
	require.NoError(t, w.SelectSeatClass(2))
	require.NoError(t, w.Advance(ctx))
	require.NoError(t, w.SelectAccommodation(2))
	require.NoError(t, w.Advance(ctx))
}
