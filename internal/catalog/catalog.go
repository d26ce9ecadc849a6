// Package catalog fronts the upstream API for the wizard and the dashboard.
// It owns the fallback policy: with offline mode enabled, a failed upstream
// call is answered once from built-in data and tagged OriginFallback;
// otherwise the error is returned to the caller.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"spaceBooker/internal/catalog/fallback"
	"spaceBooker/internal/lib/logger/sl"
	"spaceBooker/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Upstream
type Upstream interface {
	Destinations(ctx context.Context) ([]models.Destination, error)
	SeatClasses(ctx context.Context, destinationID int64) ([]models.SeatClass, error)
	Accommodations(ctx context.Context, destinationID int64) ([]models.Accommodation, error)
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.ConfirmedBooking, error)
	UserBookings(ctx context.Context, userID int64) ([]models.ConfirmedBooking, error)
	UserProfile(ctx context.Context, userID int64) (*models.UserProfile, error)
	TravelTips(ctx context.Context) ([]string, error)
}

// Journal keeps a local record of every booking the service confirmed.
//
//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Journal
type Journal interface {
	SaveBooking(ctx context.Context, b models.ConfirmedBooking) error
	UserBookings(ctx context.Context, userID int64) ([]models.ConfirmedBooking, error)
}

type Service struct {
	log      *slog.Logger
	upstream Upstream
	journal  Journal
	offline  bool
	now      func() time.Time
}

type Option func(*Service)

// WithOfflineMode enables the static fallback on upstream failure.
func WithOfflineMode(enabled bool) Option {
	return func(s *Service) {
		s.offline = enabled
	}
}

// WithJournal records confirmed bookings and serves them to the dashboard when offline.
func WithJournal(j Journal) Option {
	return func(s *Service) {
		s.journal = j
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(log *slog.Logger, upstream Upstream, opts ...Option) *Service {
	s := &Service{
		log:      log.With(slog.String("component", "catalog")),
		upstream: upstream,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) OfflineMode() bool {
	return s.offline
}

func (s *Service) Destinations(ctx context.Context) ([]models.Destination, models.Origin, error) {
	const op = "catalog.Destinations"

	dests, err := s.upstream.Destinations(ctx)
	if err == nil {
		return dests, models.OriginLive, nil
	}

	if !s.offline {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	s.log.Warn("serving built-in destinations", slog.String("op", op), sl.Err(err))

	return fallback.Destinations(), models.OriginFallback, nil
}

func (s *Service) SeatClasses(ctx context.Context, destinationID int64) ([]models.SeatClass, models.Origin, error) {
	const op = "catalog.SeatClasses"

	seats, err := s.upstream.SeatClasses(ctx, destinationID)
	if err == nil {
		return seats, models.OriginLive, nil
	}

	if !s.offline {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	s.log.Warn("serving built-in seat classes",
		slog.String("op", op),
		slog.Int64("destination_id", destinationID),
		sl.Err(err),
	)

	return fallback.SeatClasses(destinationID), models.OriginFallback, nil
}

func (s *Service) Accommodations(ctx context.Context, destinationID int64) ([]models.Accommodation, models.Origin, error) {
	const op = "catalog.Accommodations"

	accs, err := s.upstream.Accommodations(ctx, destinationID)
	if err == nil {
		return accs, models.OriginLive, nil
	}

	if !s.offline {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	s.log.Warn("serving built-in accommodations",
		slog.String("op", op),
		slog.Int64("destination_id", destinationID),
		sl.Err(err),
	)

	return fallback.Accommodations(destinationID), models.OriginFallback, nil
}

// CreateBooking submits req upstream. draft supplies the selections and total
// for a synthesized booking when the upstream is unreachable in offline mode.
func (s *Service) CreateBooking(ctx context.Context, req models.BookingRequest, draft models.Draft) (*models.ConfirmedBooking, error) {
	const op = "catalog.CreateBooking"

	log := s.log.With(slog.String("op", op), slog.Int64("user_id", req.UserID))

	b, err := s.upstream.CreateBooking(ctx, req)
	if err != nil {
		if !s.offline {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		log.Warn("confirming booking locally", sl.Err(err))

		b = fallback.Booking(req, draft, s.now())
	}

	if b.Destination == nil {
		b.Destination = draft.Destination
	}
	if b.SeatClass == nil {
		b.SeatClass = draft.SeatClass
	}
	if b.Accommodation == nil {
		b.Accommodation = draft.Accommodation
	}

	if s.journal != nil {
		if err = s.journal.SaveBooking(ctx, *b); err != nil {
			log.Error("failed to journal booking", slog.Int64("booking_id", b.ID), sl.Err(err))
		}
	}

	log.Info("booking created", slog.Int64("booking_id", b.ID), slog.String("origin", string(b.Origin)))

	return b, nil
}

// Dashboard gathers profile, bookings and tips for a user. The result is
// OriginFallback if any part had to be substituted.
func (s *Service) Dashboard(ctx context.Context, userID int64) (*models.Dashboard, error) {
	const op = "catalog.Dashboard"

	log := s.log.With(slog.String("op", op), slog.Int64("user_id", userID))

	d := &models.Dashboard{Origin: models.OriginLive}

	profile, err := s.upstream.UserProfile(ctx, userID)
	if err != nil {
		if !s.offline {
			return nil, fmt.Errorf("%s: profile: %w", op, err)
		}
		log.Warn("serving built-in profile", sl.Err(err))
		profile = fallback.UserProfile(userID)
		d.Origin = models.OriginFallback
	}
	d.Profile = *profile

	bookings, err := s.upstream.UserBookings(ctx, userID)
	if err != nil {
		if !s.offline {
			return nil, fmt.Errorf("%s: bookings: %w", op, err)
		}
		log.Warn("serving local bookings", sl.Err(err))
		bookings = s.localBookings(ctx, userID)
		d.Origin = models.OriginFallback
	}
	d.Bookings = bookings

	tips, err := s.upstream.TravelTips(ctx)
	if err != nil {
		if !s.offline {
			return nil, fmt.Errorf("%s: tips: %w", op, err)
		}
		log.Warn("serving built-in tips", sl.Err(err))
		tips = fallback.TravelTips()
		d.Origin = models.OriginFallback
	}
	d.Tips = tips

	return d, nil
}

func (s *Service) localBookings(ctx context.Context, userID int64) []models.ConfirmedBooking {
	if s.journal != nil {
		bookings, err := s.journal.UserBookings(ctx, userID)
		if err != nil {
			s.log.Error("failed to read journal", slog.Int64("user_id", userID), sl.Err(err))
		} else if len(bookings) > 0 {
			return bookings
		}
	}

	return fallback.UserBookings(userID, s.now())
}
