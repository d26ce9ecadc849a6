// Package wizard implements the multi-step booking flow:
//
//	SelectingDestination -> SelectingSeatClass -> SelectingAccommodation -> ReviewAndCheckout -> Confirmed
//
// A Wizard owns exactly one draft. Option lists are fetched without holding
// the lock; each fetch is tagged with the generation and destination it was
// issued for and is dropped if the destination changed in the meantime.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"spaceBooker/internal/lib/logger/sl"
	"spaceBooker/internal/models"
)

var (
	ErrInvalidPassengers = errors.New("passenger count must be at least 1")
	ErrInvalidDateRange  = errors.New("return date must be after departure date")
	ErrUnknownOption     = errors.New("option is not available")
	ErrStepIncomplete    = errors.New("current step is incomplete")
	ErrWrongStep         = errors.New("operation is not allowed at the current step")
	ErrNoPreviousStep    = errors.New("already at the first step")
	ErrFinalized         = errors.New("booking is already confirmed")
	ErrBusy              = errors.New("booking submission in progress")
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Backend
type Backend interface {
	Destinations(ctx context.Context) ([]models.Destination, models.Origin, error)
	SeatClasses(ctx context.Context, destinationID int64) ([]models.SeatClass, models.Origin, error)
	Accommodations(ctx context.Context, destinationID int64) ([]models.Accommodation, models.Origin, error)
	CreateBooking(ctx context.Context, req models.BookingRequest, draft models.Draft) (*models.ConfirmedBooking, error)
}

// Session identifies who the wizard books for.
type Session struct {
	ID     string
	UserID int64
}

type Wizard struct {
	mu      sync.Mutex
	log     *slog.Logger
	backend Backend
	session Session

	step       Step
	draft      models.Draft
	gen        uint64
	submitting bool

	destinations   []models.Destination
	seatClasses    []models.SeatClass
	accommodations []models.Accommodation
	origins        map[string]models.Origin

	booking *models.ConfirmedBooking
}

// New starts a wizard with one passenger, departing in 30 days and returning in 60.
func New(log *slog.Logger, backend Backend, session Session, now time.Time) *Wizard {
	return &Wizard{
		log: log.With(
			slog.String("component", "wizard"),
			slog.String("session_id", session.ID),
		),
		backend: backend,
		session: session,
		draft: models.Draft{
			DepartureDate: now.Add(30 * day),
			ReturnDate:    now.Add(60 * day),
			Passengers:    1,
		},
		origins: make(map[string]models.Origin),
	}
}

func (w *Wizard) Session() Session {
	return w.session
}

func (w *Wizard) LoadDestinations(ctx context.Context) error {
	const op = "wizard.LoadDestinations"

	dests, origin, err := w.backend.Destinations(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.destinations = dests
	w.origins["destinations"] = origin

	return nil
}

// SelectDestination picks a destination from the loaded catalog. Seat class
// and accommodation lists and selections are cleared, since both are priced
// per destination, and reloaded for the new destination.
func (w *Wizard) SelectDestination(ctx context.Context, destinationID int64) error {
	const op = "wizard.SelectDestination"

	w.mu.Lock()

	if err := w.checkStep(StepSelectingDestination); err != nil {
		w.mu.Unlock()
		return fmt.Errorf("%s: %w", op, err)
	}

	i := slices.IndexFunc(w.destinations, func(d models.Destination) bool { return d.ID == destinationID })
	if i < 0 {
		w.mu.Unlock()
		return fmt.Errorf("%s: destination %d: %w", op, destinationID, ErrUnknownOption)
	}

	d := w.destinations[i]

	next := w.draft
	next.Destination = &d
	next.SeatClass = nil
	next.Accommodation = nil

	if err := w.commit(next); err != nil {
		w.mu.Unlock()
		return fmt.Errorf("%s: %w", op, err)
	}

	w.gen++
	gen := w.gen
	w.seatClasses = nil
	w.accommodations = nil
	delete(w.origins, "seat_classes")
	delete(w.origins, "accommodations")

	w.mu.Unlock()

	w.log.Debug("destination selected", slog.Int64("destination_id", destinationID))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return w.loadSeatClasses(gctx, destinationID, gen) })
	g.Go(func() error { return w.loadAccommodations(gctx, destinationID, gen) })

	if err := g.Wait(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// LoadSeatClasses fetches seat classes for the current destination. A result
// that arrives after the destination changed is discarded silently.
func (w *Wizard) LoadSeatClasses(ctx context.Context) error {
	const op = "wizard.LoadSeatClasses"

	destID, gen, err := w.fetchTag()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return w.loadSeatClasses(ctx, destID, gen)
}

func (w *Wizard) loadSeatClasses(ctx context.Context, destID int64, gen uint64) error {
	const op = "wizard.LoadSeatClasses"

	seats, origin, err := w.backend.SeatClasses(ctx, destID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.current(destID, gen) {
		w.log.Debug("discarding stale seat classes", slog.Int64("destination_id", destID))
		return nil
	}

	w.seatClasses = seats
	w.origins["seat_classes"] = origin

	return nil
}

// LoadAccommodations behaves like LoadSeatClasses for accommodations.
func (w *Wizard) LoadAccommodations(ctx context.Context) error {
	const op = "wizard.LoadAccommodations"

	destID, gen, err := w.fetchTag()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return w.loadAccommodations(ctx, destID, gen)
}

func (w *Wizard) loadAccommodations(ctx context.Context, destID int64, gen uint64) error {
	const op = "wizard.LoadAccommodations"

	accs, origin, err := w.backend.Accommodations(ctx, destID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.current(destID, gen) {
		w.log.Debug("discarding stale accommodations", slog.Int64("destination_id", destID))
		return nil
	}

	w.accommodations = accs
	w.origins["accommodations"] = origin

	return nil
}

func (w *Wizard) fetchTag() (int64, uint64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.draft.Destination == nil {
		return 0, 0, ErrStepIncomplete
	}

	return w.draft.Destination.ID, w.gen, nil
}

func (w *Wizard) current(destID int64, gen uint64) bool {
	return w.gen == gen && w.draft.Destination != nil && w.draft.Destination.ID == destID
}

func (w *Wizard) SelectSeatClass(seatClassID int64) error {
	const op = "wizard.SelectSeatClass"

	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.checkStep(StepSelectingSeatClass); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	i := slices.IndexFunc(w.seatClasses, func(s models.SeatClass) bool { return s.ID == seatClassID })
	if i < 0 {
		return fmt.Errorf("%s: seat class %d: %w", op, seatClassID, ErrUnknownOption)
	}

	s := w.seatClasses[i]

	next := w.draft
	next.SeatClass = &s

	if err := w.commit(next); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (w *Wizard) SelectAccommodation(accommodationID int64) error {
	const op = "wizard.SelectAccommodation"

	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.checkStep(StepSelectingAccommodation); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	i := slices.IndexFunc(w.accommodations, func(a models.Accommodation) bool { return a.ID == accommodationID })
	if i < 0 {
		return fmt.Errorf("%s: accommodation %d: %w", op, accommodationID, ErrUnknownOption)
	}

	a := w.accommodations[i]

	next := w.draft
	next.Accommodation = &a

	if err := w.commit(next); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// SetPassengers rejects counts below one and leaves the draft unchanged.
func (w *Wizard) SetPassengers(n int) error {
	const op = "wizard.SetPassengers"

	if n < 1 {
		return fmt.Errorf("%s: %d: %w", op, n, ErrInvalidPassengers)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.checkMutable(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	next := w.draft
	next.Passengers = n

	if err := w.commit(next); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// SetDates requires the return to come strictly after the departure.
func (w *Wizard) SetDates(departure, ret time.Time) error {
	const op = "wizard.SetDates"

	if !ret.After(departure) {
		return fmt.Errorf("%s: %w", op, ErrInvalidDateRange)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.checkMutable(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	next := w.draft
	next.DepartureDate = departure
	next.ReturnDate = ret

	if err := w.commit(next); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// SetTrip applies a passenger count and a date range together. Either may be
// nil. Both are checked and the total recomputed once, so a rejected update
// leaves the draft unchanged.
func (w *Wizard) SetTrip(passengers *int, departure, ret *time.Time) error {
	const op = "wizard.SetTrip"

	if passengers != nil && *passengers < 1 {
		return fmt.Errorf("%s: %d: %w", op, *passengers, ErrInvalidPassengers)
	}
	if (departure == nil) != (ret == nil) {
		return fmt.Errorf("%s: %w", op, ErrInvalidDateRange)
	}
	if departure != nil && !ret.After(*departure) {
		return fmt.Errorf("%s: %w", op, ErrInvalidDateRange)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.checkMutable(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	next := w.draft
	if passengers != nil {
		next.Passengers = *passengers
	}
	if departure != nil {
		next.DepartureDate = *departure
		next.ReturnDate = *ret
	}

	if err := w.commit(next); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// commit recomputes the total for next and installs it. On error the draft is
// left untouched. Callers hold w.mu.
func (w *Wizard) commit(next models.Draft) error {
	total, err := Total(next)
	if err != nil {
		return err
	}

	next.TotalPrice = total
	w.draft = next

	return nil
}

func (w *Wizard) checkMutable() error {
	if w.step == StepConfirmed {
		return ErrFinalized
	}
	if w.submitting {
		return ErrBusy
	}
	return nil
}

func (w *Wizard) checkStep(want Step) error {
	if err := w.checkMutable(); err != nil {
		return err
	}
	if w.step != want {
		return ErrWrongStep
	}
	return nil
}

// complete reports whether the selection required by the current step is made.
func (w *Wizard) complete() bool {
	switch w.step {
	case StepSelectingDestination:
		return w.draft.Destination != nil
	case StepSelectingSeatClass:
		return w.draft.SeatClass != nil
	case StepSelectingAccommodation:
		return w.draft.Accommodation != nil
	case StepReviewAndCheckout:
		return w.draft.Destination != nil && w.draft.SeatClass != nil && w.draft.Accommodation != nil
	default:
		return false
	}
}

// Advance moves to the next step once the current one is complete. From
// ReviewAndCheckout it submits the booking.
func (w *Wizard) Advance(ctx context.Context) error {
	const op = "wizard.Advance"

	w.mu.Lock()

	if err := w.checkMutable(); err != nil {
		w.mu.Unlock()
		return fmt.Errorf("%s: %w", op, err)
	}

	if w.step == StepReviewAndCheckout {
		w.mu.Unlock()
		return w.Submit(ctx)
	}

	defer w.mu.Unlock()

	if !w.complete() {
		return fmt.Errorf("%s: %s: %w", op, w.step, ErrStepIncomplete)
	}

	w.step++

	w.log.Debug("advanced", slog.String("step", w.step.String()))

	return nil
}

// Retreat moves one step back and keeps every selection made so far.
func (w *Wizard) Retreat() error {
	const op = "wizard.Retreat"

	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.checkMutable(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if w.step == StepSelectingDestination {
		return fmt.Errorf("%s: %w", op, ErrNoPreviousStep)
	}

	w.step--

	return nil
}

// Submit sends the draft to the booking backend. On success the wizard moves
// to Confirmed; on failure it stays at ReviewAndCheckout.
func (w *Wizard) Submit(ctx context.Context) error {
	const op = "wizard.Submit"

	w.mu.Lock()

	if err := w.checkStep(StepReviewAndCheckout); err != nil {
		w.mu.Unlock()
		return fmt.Errorf("%s: %w", op, err)
	}

	if !w.complete() {
		w.mu.Unlock()
		return fmt.Errorf("%s: %w", op, ErrStepIncomplete)
	}

	draft := w.draft
	req := models.BookingRequest{
		UserID:          w.session.UserID,
		DestinationID:   draft.Destination.ID,
		SeatClassID:     draft.SeatClass.ID,
		AccommodationID: draft.Accommodation.ID,
		DepartureDate:   draft.DepartureDate,
		ReturnDate:      draft.ReturnDate,
		Passengers:      draft.Passengers,
	}

	w.submitting = true
	w.mu.Unlock()

	b, err := w.backend.CreateBooking(ctx, req, draft)

	w.mu.Lock()
	defer w.mu.Unlock()

	w.submitting = false

	if err != nil {
		w.log.Error("booking submission failed", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	w.booking = b
	w.step = StepConfirmed

	w.log.Info("booking confirmed",
		slog.Int64("booking_id", b.ID),
		slog.String("origin", string(b.Origin)),
	)

	return nil
}
