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

	"eventspace/internal/config"
	"eventspace/internal/http-server/handlers/coworking/createBooking"
	"eventspace/internal/http-server/handlers/coworking/createSpace"
	"eventspace/internal/http-server/handlers/coworking/deleteSpace"
	"eventspace/internal/http-server/handlers/coworking/getAllSpaces"
	"eventspace/internal/http-server/handlers/coworking/getSpace"
	"eventspace/internal/http-server/handlers/event/createEvent"
	"eventspace/internal/http-server/handlers/event/deleteEvent"
	"eventspace/internal/http-server/handlers/event/getAllEvents"
	"eventspace/internal/http-server/handlers/event/getEvent"
	"eventspace/internal/http-server/handlers/event/registerParticipant"
	"eventspace/internal/http-server/middleware/mwlogger"
	"eventspace/internal/lib/logger/handlers/slogpretty"
	"eventspace/internal/lib/logger/sl"
	"eventspace/internal/service/coworking"
	"eventspace/internal/service/event"
	"eventspace/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting eventspace", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	if err = storage.Migrate(cfg.MigrationsPath); err != nil {
		log.Error("failed to apply migrations", sl.Err(err))
		os.Exit(1)
	}

	eventService := event.New(log, storage, storage)
	coworkingService := coworking.New(log, storage)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	fs := http.FileServer(http.Dir("./static/"))
	router.Handle("/static/*", http.StripPrefix("/static/", fs))

	router.Route("/events", func(r chi.Router) {
		r.Get("/", getAllEvents.New(log, eventService))
		r.Post("/", createEvent.New(log, eventService))
		r.Get("/{id}", getEvent.New(log, eventService))
		r.Delete("/{id}", deleteEvent.New(log, eventService))
		r.Post("/{id}/register", registerParticipant.New(log, eventService))
	})

	router.Route("/coworking", func(r chi.Router) {
		r.Get("/", getAllSpaces.New(log, coworkingService))
		r.Post("/", createSpace.New(log, coworkingService))
		r.Get("/{id}", getSpace.New(log, coworkingService))
		r.Delete("/{id}", deleteSpace.New(log, coworkingService))
		r.Post("/{id}/booking", createBooking.New(log, coworkingService))
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

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
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
