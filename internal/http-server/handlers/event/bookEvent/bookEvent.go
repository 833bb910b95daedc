package bookEvent

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"eventDetails/internal/booking"
	"eventDetails/internal/lib/api/response"
	"eventDetails/internal/lib/logger/sl"
	"eventDetails/internal/models"
	"eventDetails/internal/view"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type BookingResponse struct {
	response.Response
	Submitted bool   `json:"submitted"`
	Message   string `json:"message"`
}

// New handles a sign-up widget submission. The e-mail is accepted as typed
// and never leaves the widget; the response arrives after submitDelay.
func New(log *slog.Logger, renderer response.Renderer, submitDelay time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.bookEvent.New"

		log := log.With(slog.String("op", op))

		slug := chi.URLParam(r, "slug")
		if slug == "" {
			log.Error("event slug is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event slug is required"))
			return
		}

		log = log.With(slog.String("slug", slug))

		asJSON := render.GetRequestContentType(r) == render.ContentTypeJSON

		var req models.BookingRequest

		if asJSON {
			if err := render.DecodeJSON(r.Body, &req); err != nil {
				log.Error("failed to decode request body", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("failed to decode request"))
				return
			}
		} else {
			if err := r.ParseForm(); err != nil {
				log.Error("failed to parse form", sl.Err(err))
				http.Error(w, "failed to decode request", http.StatusBadRequest)
				return
			}
			req.Email = r.PostForm.Get("email")
		}

		widget := booking.NewWidget(submitDelay)
		defer widget.Close()

		log = log.With(slog.String("widget_id", widget.ID))

		widget.SetEmail(req.Email)
		widget.Submit()

		if err := widget.Wait(r.Context()); err != nil {
			log.Info("client left before submission was accepted", sl.Err(err))
			return
		}

		log.Info("booking submission accepted")

		if asJSON {
			render.JSON(w, r, BookingResponse{
				Response:  response.OK(),
				Submitted: true,
				Message:   booking.ThankYouMessage,
			})
			return
		}

		// In-page requests swap the widget in place; a plain form post goes
		// back to the full event page.
		if r.Header.Get("HX-Request") != "true" {
			http.Redirect(w, r, bookedPageURL(slug), http.StatusSeeOther)
			return
		}

		err := response.HTML(w, http.StatusOK, renderer, view.FragmentBooking, view.NewWidgetView(slug, widget.State()))
		if err != nil {
			log.Error("failed to render booking widget", sl.Err(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}
}

func bookedPageURL(slug string) string {
	return "/events/" + url.PathEscape(slug) + "?booked=1"
}
