package eventsapi

import (
	"errors"

	"eventDetails/internal/models"
)

var ErrNoOutcome = errors.New("lookup has no outcome")

type Outcome int

// The zero Outcome is unknown so an empty Lookup is never taken as found.
const (
	OutcomeUnknown Outcome = iota
	OutcomeFound
	OutcomeNotFound
	OutcomeFetchError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUnknown:
		return "unknown"
	case OutcomeFound:
		return "found"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeFetchError:
		return "fetch_error"
	default:
		return "unknown"
	}
}

// Lookup is the result of fetching one event. Event is set only for
// OutcomeFound and Err only for OutcomeFetchError.
type Lookup struct {
	Outcome Outcome
	Event   *models.Event
	Err     error
}

func Found(event *models.Event) Lookup {
	return Lookup{Outcome: OutcomeFound, Event: event}
}

func NotFound() Lookup {
	return Lookup{Outcome: OutcomeNotFound}
}

func FetchError(err error) Lookup {
	return Lookup{Outcome: OutcomeFetchError, Err: err}
}
