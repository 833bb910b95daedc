package health

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"eventDetails/internal/lib/logger/sl"
)

const pingTimeout = 2 * time.Second

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Pinger
type Pinger interface {
	Ping(ctx context.Context) error
}

// New answers "ok" while the response cache is reachable.
func New(log *slog.Logger, cache Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.health.New"

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")

		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		if err := cache.Ping(ctx); err != nil {
			log.With(slog.String("op", op)).Error("cache is unreachable", sl.Err(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("cache unavailable"))
			return
		}

		_, _ = w.Write([]byte("ok"))
	}
}
