package view

import (
	"fmt"
	"net/url"

	"eventDetails/internal/booking"
	"eventDetails/internal/lib/nestedjson"
	"eventDetails/internal/models"
)

const iconsPath = "/static/icons/"

type DetailItem struct {
	Icon  string
	Alt   string
	Label string
}

// BookingPanel is the right-hand "Book Your Spot" card.
type BookingPanel struct {
	Bookings int
	Widget   WidgetView
}

func (p BookingPanel) Message() string {
	if p.Bookings > 0 {
		return fmt.Sprintf("Join %d People who have already booked their Spots!", p.Bookings)
	}

	return "Be the First to Book Your Spot!"
}

// WidgetView is what the book-event fragment needs to draw the form or the
// thank-you message.
type WidgetView struct {
	Action    string
	Email     string
	Submitted bool
}

func NewWidgetView(slug string, state booking.State) WidgetView {
	return WidgetView{
		Action:    "/events/" + url.PathEscape(slug) + "/book",
		Email:     state.Email,
		Submitted: state.Submitted,
	}
}

type Page struct {
	Title       string
	Description string
	Image       string
	Overview    string
	Details     []DetailItem
	Agenda      []string
	Organizer   string
	Tags        []string
	Booking     BookingPanel
}

// NewPage lays out event for rendering. Fields are copied as they are; only
// agenda and tags are decoded, and a decode failure is returned.
func NewPage(slug string, event *models.Event, bookings int) (*Page, error) {
	const op = "view.NewPage"

	agenda, err := nestedjson.DecodeStrings(event.Agenda)
	if err != nil {
		return nil, fmt.Errorf("%s: agenda: %w", op, err)
	}

	tags, err := nestedjson.DecodeStrings(event.Tags)
	if err != nil {
		return nil, fmt.Errorf("%s: tags: %w", op, err)
	}

	return &Page{
		Title:       event.Title,
		Description: event.Description,
		Image:       event.Image,
		Overview:    event.Overview,
		Details: []DetailItem{
			{Icon: iconsPath + "calendar.svg", Alt: "calendar", Label: event.Date},
			{Icon: iconsPath + "clock.svg", Alt: "clock", Label: event.Time},
			{Icon: iconsPath + "pin.svg", Alt: "location", Label: event.Location},
			{Icon: iconsPath + "mode.svg", Alt: "mode", Label: event.Mode},
			{Icon: iconsPath + "audience.svg", Alt: "audience", Label: event.Audience},
		},
		Agenda:    agenda,
		Organizer: event.Organizer,
		Tags:      tags,
		Booking: BookingPanel{
			Bookings: bookings,
			Widget:   NewWidgetView(slug, booking.State{}),
		},
	}, nil
}
