package eventPage

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"eventDetails/internal/booking"
	"eventDetails/internal/eventsapi"
	"eventDetails/internal/lib/api/response"
	"eventDetails/internal/lib/logger/sl"
	"eventDetails/internal/view"

	"github.com/go-chi/chi/v5"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventFetcher
type EventFetcher interface {
	FetchEvent(ctx context.Context, slug string) eventsapi.Lookup
}

// BookedParam marks a page shown right after a booking submission; the
// widget is drawn in its thank-you state.
const BookedParam = "booked"

type Settings struct {
	// Bookings is the count shown on the booking panel.
	Bookings int
	// DistinguishFetchErrors renders failed fetches as 502 "unavailable"
	// instead of the not-found page.
	DistinguishFetchErrors bool
}

func New(log *slog.Logger, fetcher EventFetcher, renderer response.Renderer, settings Settings) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.eventPage.New"

		log := log.With(slog.String("op", op))

		slug := chi.URLParam(r, "slug")
		if slug == "" {
			log.Info("event slug is empty")
			respond(w, log, renderer, http.StatusNotFound, view.PageNotFound, nil)
			return
		}

		log = log.With(slog.String("slug", slug))

		lookup := fetcher.FetchEvent(r.Context(), slug)

		switch {
		case lookup.Outcome == eventsapi.OutcomeFound && lookup.Event != nil:
		case lookup.Outcome == eventsapi.OutcomeNotFound:
			log.Info("event not found")
			respond(w, log, renderer, http.StatusNotFound, view.PageNotFound, nil)
			return
		default:
			fetchErr := lookup.Err
			if fetchErr == nil {
				fetchErr = fmt.Errorf("%w: outcome %s", eventsapi.ErrNoOutcome, lookup.Outcome)
			}

			log.Error("failed to fetch event", sl.Err(fetchErr))
			if settings.DistinguishFetchErrors {
				respond(w, log, renderer, http.StatusBadGateway, view.PageUnavailable, nil)
				return
			}
			respond(w, log, renderer, http.StatusNotFound, view.PageNotFound, nil)
			return
		}

		page, err := view.NewPage(slug, lookup.Event, settings.Bookings)
		if err != nil {
			log.Error("failed to build event page", sl.Err(err))
			respond(w, log, renderer, http.StatusInternalServerError, view.PageError, nil)
			return
		}

		if r.URL.Query().Get(BookedParam) == "1" {
			page.Booking.Widget = view.NewWidgetView(slug, booking.State{Submitted: true})
		}

		if err = response.HTML(w, http.StatusOK, renderer, view.PageEvent, page); err != nil {
			log.Error("failed to render event page", sl.Err(err))
			respond(w, log, renderer, http.StatusInternalServerError, view.PageError, nil)
			return
		}

		log.Info("event page rendered")
	}
}

func respond(w http.ResponseWriter, log *slog.Logger, renderer response.Renderer, status int, name string, data any) {
	if err := response.HTML(w, status, renderer, name, data); err != nil {
		log.Error("failed to render page", slog.String("page", name), sl.Err(err))
		http.Error(w, http.StatusText(status), status)
	}
}
