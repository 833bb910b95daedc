package models

// Event is the record served by the events API. Agenda and Tags hold a single
// element with a JSON-encoded array of strings.
type Event struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Overview    string   `json:"overview"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Location    string   `json:"location"`
	Mode        string   `json:"mode"`
	Audience    string   `json:"audience"`
	Agenda      []string `json:"agenda"`
	Tags        []string `json:"tags"`
	Organizer   string   `json:"organizer"`
}
