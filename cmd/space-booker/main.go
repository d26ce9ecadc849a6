package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"spaceBooker/internal/catalog"
	"spaceBooker/internal/client/spaceapi"
	"spaceBooker/internal/config"
	"spaceBooker/internal/http-server/handlers/catalog/getDestinations"
	"spaceBooker/internal/http-server/handlers/dashboard/getDashboard"
	"spaceBooker/internal/http-server/handlers/wizard/getWizard"
	"spaceBooker/internal/http-server/handlers/wizard/navigate"
	"spaceBooker/internal/http-server/handlers/wizard/selectOption"
	"spaceBooker/internal/http-server/handlers/wizard/startWizard"
	"spaceBooker/internal/http-server/handlers/wizard/updateTrip"
	"spaceBooker/internal/http-server/middleware/mwlogger"
	"spaceBooker/internal/lib/logger/handlers/slogpretty"
	"spaceBooker/internal/lib/logger/sl"
	"spaceBooker/internal/session"
	"spaceBooker/internal/storage/postgres"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting space booker",
		slog.String("env", cfg.Env),
		slog.Bool("offline_mode", cfg.Backend.OfflineMode),
	)
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	api, err := spaceapi.New(log, cfg.Backend.BaseURL,
		spaceapi.WithTimeout(cfg.Backend.Timeout),
		spaceapi.WithRateLimit(cfg.Backend.RPS),
	)
	if err != nil {
		log.Error("failed to init space api client", sl.Err(err))
		os.Exit(1)
	}

	catalogService := catalog.New(log, api,
		catalog.WithOfflineMode(cfg.Backend.OfflineMode),
		catalog.WithJournal(storage),
	)

	sessions := session.New(log, catalogService, cfg.Session.TTL)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Get("/destinations", getDestinations.New(log, catalogService))
	router.Get("/users/{id}/dashboard", getDashboard.New(log, catalogService))

	router.Route("/wizards", func(r chi.Router) {
		r.Post("/", startWizard.New(log, sessions))
		r.Get("/{id}", getWizard.New(log, sessions))
		r.Post("/{id}/trip", updateTrip.New(log, sessions))
		r.Post("/{id}/{kind:destination|seat-class|accommodation}", selectOption.New(log, sessions))
		r.Post("/{id}/{direction:advance|retreat}", navigate.New(log, sessions))
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				sessions.PurgeExpired()
			case <-done:
				return
			}
		}
	}()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop
	close(done)

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
