package getDashboard

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"spaceBooker/internal/lib/api/response"
	"spaceBooker/internal/lib/logger/sl"
	"spaceBooker/internal/models"
)

type DashboardResponse struct {
	response.Response
	Dashboard *models.Dashboard `json:"dashboard,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=DashboardGetter
type DashboardGetter interface {
	Dashboard(ctx context.Context, userID int64) (*models.Dashboard, error)
}

func New(log *slog.Logger, dashboards DashboardGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.dashboard.getDashboard.New"

		log := log.With(slog.String("op", op))

		userIDStr := chi.URLParam(r, "id")
		if userIDStr == "" {
			log.Error("user id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("user id is required"))
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID < 1 {
			log.Error("invalid user id format", slog.String("user_id", userIDStr))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid user id format"))
			return
		}

		log = log.With(slog.Int64("user_id", userID))

		d, err := dashboards.Dashboard(r.Context(), userID)
		if err != nil {
			log.Error("failed to get dashboard", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to get dashboard"))
			return
		}

		log.Info("dashboard retrieved",
			slog.Int("bookings", len(d.Bookings)),
			slog.String("origin", string(d.Origin)),
		)

		responseOK(w, r, d)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, d *models.Dashboard) {
	render.JSON(w, r, DashboardResponse{
		Response:  response.OK(),
		Dashboard: d,
	})
}
