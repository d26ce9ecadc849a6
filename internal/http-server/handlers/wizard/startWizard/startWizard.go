package startWizard

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"spaceBooker/internal/lib/api/failure"
	"spaceBooker/internal/lib/api/response"
	"spaceBooker/internal/lib/logger/sl"
	"spaceBooker/internal/wizard"
)

type StartRequest struct {
	UserID int64 `json:"user_id" validate:"required,min=1"`
}

type StartResponse struct {
	response.Response
	Wizard wizard.State `json:"wizard"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=WizardStarter
type WizardStarter interface {
	Start(ctx context.Context, userID int64) (*wizard.Wizard, error)
}

func New(log *slog.Logger, starter WizardStarter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.wizard.startWizard.New"

		log := log.With(slog.String("op", op))

		var req StartRequest

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

		wz, err := starter.Start(r.Context(), req.UserID)
		if err != nil {
			log.Error("failed to start wizard", sl.Err(err))
			code, msg := failure.Status(err)
			render.Status(r, code)
			render.JSON(w, r, response.Error(msg))

			return
		}

		state := wz.Snapshot()

		log.Info("wizard started", slog.String("session_id", state.SessionID))

		render.Status(r, http.StatusCreated)
		responseOK(w, r, state)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, state wizard.State) {
	render.JSON(w, r, StartResponse{
		Response: response.OK(),
		Wizard:   state,
	})
}
