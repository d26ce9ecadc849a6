package getWizard

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"spaceBooker/internal/lib/api/failure"
	"spaceBooker/internal/lib/api/response"
	"spaceBooker/internal/lib/logger/sl"
	"spaceBooker/internal/wizard"
)

type WizardResponse struct {
	response.Response
	Wizard wizard.State `json:"wizard"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=WizardGetter
type WizardGetter interface {
	Get(id string) (*wizard.Wizard, error)
}

func New(log *slog.Logger, sessions WizardGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.wizard.getWizard.New"

		log := log.With(slog.String("op", op))

		id := chi.URLParam(r, "id")
		if id == "" {
			log.Error("session id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("session id is required"))
			return
		}

		log = log.With(slog.String("session_id", id))

		wz, err := sessions.Get(id)
		if err != nil {
			log.Error("failed to get wizard", sl.Err(err))
			code, msg := failure.Status(err)
			render.Status(r, code)
			render.JSON(w, r, response.Error(msg))
			return
		}

		responseOK(w, r, wz.Snapshot())
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, state wizard.State) {
	render.JSON(w, r, WizardResponse{
		Response: response.OK(),
		Wizard:   state,
	})
}
