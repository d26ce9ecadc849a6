package selectOption

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"spaceBooker/internal/lib/api/failure"
	"spaceBooker/internal/lib/api/response"
	"spaceBooker/internal/lib/logger/sl"
	"spaceBooker/internal/wizard"
)

const (
	KindDestination   = "destination"
	KindSeatClass     = "seat-class"
	KindAccommodation = "accommodation"
)

type SelectRequest struct {
	OptionID int64 `json:"option_id" validate:"required,min=1"`
}

type SelectResponse struct {
	response.Response
	Wizard wizard.State `json:"wizard"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=WizardGetter
type WizardGetter interface {
	Get(id string) (*wizard.Wizard, error)
}

// New serves POST /wizards/{id}/{kind}, where kind names the selection being made.
func New(log *slog.Logger, sessions WizardGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.wizard.selectOption.New"

		log := log.With(slog.String("op", op))

		id := chi.URLParam(r, "id")
		kind := chi.URLParam(r, "kind")
		if id == "" {
			log.Error("session id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("session id is required"))
			return
		}

		log = log.With(slog.String("session_id", id), slog.String("kind", kind))

		if !knownKind(kind) {
			log.Error("unknown selection kind")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("unknown selection kind"))
			return
		}

		var req SelectRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.InvalidRequest(err))
			return
		}

		wz, err := sessions.Get(id)
		if err == nil {
			err = apply(r, wz, kind, req.OptionID)
		}
		if err != nil {
			log.Error("failed to select option", sl.Err(err), slog.Int64("option_id", req.OptionID))
			code, msg := failure.Status(err)
			render.Status(r, code)
			render.JSON(w, r, response.Error(msg))
			return
		}

		log.Info("option selected", slog.Int64("option_id", req.OptionID))

		responseOK(w, r, wz.Snapshot())
	}
}

func knownKind(kind string) bool {
	return kind == KindDestination || kind == KindSeatClass || kind == KindAccommodation
}

func apply(r *http.Request, wz *wizard.Wizard, kind string, optionID int64) error {
	switch kind {
	case KindDestination:
		return wz.SelectDestination(r.Context(), optionID)
	case KindSeatClass:
		return wz.SelectSeatClass(optionID)
	default:
		return wz.SelectAccommodation(optionID)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, state wizard.State) {
	render.JSON(w, r, SelectResponse{
		Response: response.OK(),
		Wizard:   state,
	})
}
