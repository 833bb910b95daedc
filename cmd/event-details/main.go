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

	"eventDetails/internal/config"
	"eventDetails/internal/eventsapi"
	"eventDetails/internal/http-server/handlers/event/bookEvent"
	"eventDetails/internal/http-server/handlers/event/eventPage"
	"eventDetails/internal/http-server/handlers/health"
	"eventDetails/internal/http-server/middleware/mwlogger"
	"eventDetails/internal/lib/logger/handlers/slogpretty"
	"eventDetails/internal/lib/logger/sl"
	"eventDetails/internal/storage/memory"
	"eventDetails/internal/storage/redis"
	"eventDetails/internal/view"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

type responseCache interface {
	eventsapi.ResponseCache
	health.Pinger
	Close() error
}

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting event details", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	done := make(chan struct{})

	cache, err := setupCache(cfg, log, done)
	if err != nil {
		log.Error("failed to init cache", sl.Err(err))
		os.Exit(1)
	}

	events := eventsapi.New(log, cfg.EventsAPI.BaseURL,
		eventsapi.WithHTTPClient(&http.Client{Timeout: cfg.EventsAPI.Timeout}),
		eventsapi.WithCache(cache, cfg.EventsAPI.Revalidate),
	)

	renderer, err := view.NewRenderer()
	if err != nil {
		log.Error("failed to parse templates", sl.Err(err))
		os.Exit(1)
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)

	router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(view.Static()))))

	router.Get("/healthz", health.New(log, cache))

	router.Get("/events/{slug}", eventPage.New(log, events, renderer, eventPage.Settings{
		Bookings:               cfg.Booking.PlaceholderCount,
		DistinguishFetchErrors: cfg.EventsAPI.DistinguishFetchErrors,
	}))
	router.Post("/events/{slug}/book", bookEvent.New(log, renderer, cfg.Booking.SubmitDelay))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	// WriteTimeout must outlive the booking submit delay.
	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout + cfg.Booking.SubmitDelay,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

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

	if err = cache.Close(); err != nil {
		log.Error("failed to close cache", sl.Err(err))
	}

	log.Info("cache closed")
}

func setupCache(cfg *config.Config, log *slog.Logger, done <-chan struct{}) (responseCache, error) {
	if cfg.Cache.Driver == config.CacheDriverRedis {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		storage, err := redis.New(ctx, &cfg.Cache.Redis)
		if err != nil {
			return nil, err
		}

		log.Info("redis cache connected", slog.String("address", cfg.Cache.Redis.Address))

		return storage, nil
	}

	cache := memory.New()

	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if n := cache.DeleteExpired(); n > 0 {
					log.Debug("expired cached responses removed", slog.Int("count", n))
				}
			case <-done:
				return
			}
		}
	}()

	return cache, nil
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
