package navigate

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"spaceBooker/internal/lib/api/failure"
	"spaceBooker/internal/lib/api/response"
	"spaceBooker/internal/lib/logger/sl"
	"spaceBooker/internal/wizard"
)

const (
	DirectionAdvance = "advance"
	DirectionRetreat = "retreat"
)

type NavigateResponse struct {
	response.Response
	Wizard wizard.State `json:"wizard"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=WizardGetter
type WizardGetter interface {
	Get(id string) (*wizard.Wizard, error)
}

// New serves POST /wizards/{id}/{direction}. Advancing from review submits the booking.
func New(log *slog.Logger, sessions WizardGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.wizard.navigate.New"

		log := log.With(slog.String("op", op))

		id := chi.URLParam(r, "id")
		if id == "" {
			log.Error("session id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("session id is required"))
			return
		}

		direction := chi.URLParam(r, "direction")

		log = log.With(slog.String("session_id", id), slog.String("direction", direction))

		if direction != DirectionAdvance && direction != DirectionRetreat {
			log.Error("unknown direction")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("unknown direction"))
			return
		}

		wz, err := sessions.Get(id)
		if err == nil {
			if direction == DirectionAdvance {
				// Submission outlives a disconnected client;
				// the API client timeout still bounds it.
				err = wz.Advance(context.WithoutCancel(r.Context()))
			} else {
				err = wz.Retreat()
			}
		}
		if err != nil {
			log.Error("failed to move wizard", sl.Err(err))
			code, msg := failure.Status(err)
			render.Status(r, code)
			render.JSON(w, r, response.Error(msg))
			return
		}

		state := wz.Snapshot()

		if state.Booking != nil {
			log.Info("booking confirmed",
				slog.Int64("booking_id", state.Booking.ID),
				slog.String("origin", string(state.Booking.Origin)),
			)
		}

		log.Info("wizard moved", slog.String("step", state.Step.String()))

		responseOK(w, r, state)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, state wizard.State) {
	render.JSON(w, r, NavigateResponse{
		Response: response.OK(),
		Wizard:   state,
	})
}
