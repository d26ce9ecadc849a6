package getDestinations

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"spaceBooker/internal/lib/api/response"
	"spaceBooker/internal/lib/logger/sl"
	"spaceBooker/internal/models"
)

type DestinationsResponse struct {
	response.Response
	Destinations []models.Destination `json:"destinations"`
	Origin       models.Origin        `json:"origin,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=DestinationsGetter
type DestinationsGetter interface {
	Destinations(ctx context.Context) ([]models.Destination, models.Origin, error)
}

func New(log *slog.Logger, catalog DestinationsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.catalog.getDestinations.New"

		log := log.With(slog.String("op", op))

		dests, origin, err := catalog.Destinations(r.Context())
		if err != nil {
			log.Error("failed to get destinations", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to get destinations"))
			return
		}

		log.Info("destinations retrieved", slog.Int("count", len(dests)), slog.String("origin", string(origin)))

		responseOK(w, r, dests, origin)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, dests []models.Destination, origin models.Origin) {
	render.JSON(w, r, DestinationsResponse{
		Response:     response.OK(),
		Destinations: dests,
		Origin:       origin,
	})
}
