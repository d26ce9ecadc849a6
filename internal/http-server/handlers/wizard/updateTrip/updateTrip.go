package updateTrip

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"spaceBooker/internal/lib/api/failure"
	"spaceBooker/internal/lib/api/response"
	"spaceBooker/internal/lib/logger/sl"
	"spaceBooker/internal/wizard"
)

// TripRequest changes the passenger count, the travel dates, or both.
// Dates are only accepted as a pair.
type TripRequest struct {
	Passengers    *int       `json:"passengers" validate:"omitempty,min=1"`
	DepartureDate *time.Time `json:"departure_date" validate:"required_with=ReturnDate"`
	ReturnDate    *time.Time `json:"return_date" validate:"required_with=DepartureDate"`
}

type TripResponse struct {
	response.Response
	Wizard wizard.State `json:"wizard"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=WizardGetter
type WizardGetter interface {
	Get(id string) (*wizard.Wizard, error)
}

func New(log *slog.Logger, sessions WizardGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.wizard.updateTrip.New"

		log := log.With(slog.String("op", op))

		id := chi.URLParam(r, "id")
		if id == "" {
			log.Error("session id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("session id is required"))
			return
		}

		log = log.With(slog.String("session_id", id))

		var req TripRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.InvalidRequest(err))
			return
		}

		if req.Passengers == nil && req.DepartureDate == nil {
			log.Error("nothing to update")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("passengers or dates are required"))
			return
		}

		wz, err := sessions.Get(id)
		if err == nil {
			err = wz.SetTrip(req.Passengers, req.DepartureDate, req.ReturnDate)
		}
		if err != nil {
			log.Error("failed to update trip", sl.Err(err))
			code, msg := failure.Status(err)
			render.Status(r, code)
			render.JSON(w, r, response.Error(msg))
			return
		}

		state := wz.Snapshot()

		log.Info("trip updated", slog.Int64("total_price", int64(state.Draft.TotalPrice)))

		responseOK(w, r, state)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, state wizard.State) {
	render.JSON(w, r, TripResponse{
		Response: response.OK(),
		Wizard:   state,
	})
}
