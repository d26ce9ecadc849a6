package wizard

import (
	"slices"

	"spaceBooker/internal/models"
)

// State is a point-in-time copy of a wizard for rendering.
type State struct {
	SessionID      string                   `json:"sessionId"`
	UserID         int64                    `json:"userId"`
	Step           Step                     `json:"step"`
	Draft          models.Draft             `json:"draft"`
	Nights         int64                    `json:"nights"`
	CanAdvance     bool                     `json:"canAdvance"`
	CanRetreat     bool                     `json:"canRetreat"`
	Submitting     bool                     `json:"submitting"`
	Destinations   []models.Destination     `json:"destinations"`
	SeatClasses    []models.SeatClass       `json:"seatClasses"`
	Accommodations []models.Accommodation   `json:"accommodations"`
	CatalogOrigin  models.Origin            `json:"catalogOrigin"`
	Booking        *models.ConfirmedBooking `json:"booking,omitempty"`
}

func (w *Wizard) Snapshot() State {
	w.mu.Lock()
	defer w.mu.Unlock()

	s := State{
		SessionID:      w.session.ID,
		UserID:         w.session.UserID,
		Step:           w.step,
		Draft:          cloneDraft(w.draft),
		Nights:         Nights(w.draft.DepartureDate, w.draft.ReturnDate),
		CanAdvance:     !w.submitting && w.complete(),
		CanRetreat:     !w.submitting && w.step != StepSelectingDestination && w.step != StepConfirmed,
		Submitting:     w.submitting,
		Destinations:   slices.Clone(w.destinations),
		SeatClasses:    slices.Clone(w.seatClasses),
		Accommodations: slices.Clone(w.accommodations),
		CatalogOrigin:  models.OriginLive,
	}

	for _, o := range w.origins {
		if o == models.OriginFallback {
			s.CatalogOrigin = models.OriginFallback
		}
	}

	if w.booking != nil {
		b := *w.booking
		s.Booking = &b
	}

	return s
}

func cloneDraft(d models.Draft) models.Draft {
	if d.Destination != nil {
		v := *d.Destination
		d.Destination = &v
	}
	if d.SeatClass != nil {
		v := *d.SeatClass
		v.Features = slices.Clone(v.Features)
		d.SeatClass = &v
	}
	if d.Accommodation != nil {
		v := *d.Accommodation
		v.Features = slices.Clone(v.Features)
		d.Accommodation = &v
	}
	return d
}
