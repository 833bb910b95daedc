package eventsapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"eventDetails/internal/lib/logger/handlers/slogdiscard"
	"eventDetails/internal/storage/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eventBody = `{"event":{
	"title":"Go Meetup",
	"description":"Monthly gophers",
	"image":"https://img.example.com/go.png",
	"date":"2025-03-01",
	"agenda":["[\"Intro\",\"Q&A\"]"],
	"tags":["[\"AI\",\"Networking\"]"],
	"organizer":"Gopher Club"
}}`

func TestFetchEvent(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name            string
		status          int
		body            string
		expectedOutcome Outcome
		checkLookup     func(t *testing.T, lookup Lookup)
	}{
		{
			name:            "Found",
			status:          http.StatusOK,
			body:            eventBody,
			expectedOutcome: OutcomeFound,
			checkLookup: func(t *testing.T, lookup Lookup) {
				require.NotNil(t, lookup.Event)
				assert.Equal(t, "Go Meetup", lookup.Event.Title)
				assert.Equal(t, []string{`["Intro","Q&A"]`}, lookup.Event.Agenda)
				assert.Equal(t, "", lookup.Event.Location)
				assert.NoError(t, lookup.Err)
			},
		},
		{
			name:            "API returns 404",
			status:          http.StatusNotFound,
			body:            `{"message":"Event not found"}`,
			expectedOutcome: OutcomeNotFound,
		},
		{
			name:            "Event is null",
			status:          http.StatusOK,
			body:            `{"event":null}`,
			expectedOutcome: OutcomeNotFound,
		},
		{
			name:            "Event field is missing",
			status:          http.StatusOK,
			body:            `{"message":"ok"}`,
			expectedOutcome: OutcomeNotFound,
		},
		{
			name:            "Server error",
			status:          http.StatusInternalServerError,
			body:            `{"message":"boom"}`,
			expectedOutcome: OutcomeFetchError,
			checkLookup: func(t *testing.T, lookup Lookup) {
				var statusErr *StatusError
				require.True(t, errors.As(lookup.Err, &statusErr))
				assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
				assert.Contains(t, lookup.Err.Error(), "500 Internal Server Error")
			},
		},
		{
			name:            "Body is not json",
			status:          http.StatusOK,
			body:            `<html>oops</html>`,
			expectedOutcome: OutcomeFetchError,
		},
		{
			name:            "Empty body",
			status:          http.StatusOK,
			body:            ``,
			expectedOutcome: OutcomeFetchError,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/events/go-meetup", r.URL.Path)
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := New(slogdiscard.NewDiscardLogger(), srv.URL+"/api/")

			lookup := client.FetchEvent(context.Background(), "go-meetup")

			assert.Equal(t, tc.expectedOutcome, lookup.Outcome, lookup.Outcome.String())
			if tc.expectedOutcome != OutcomeFound {
				assert.Nil(t, lookup.Event)
			}
			if tc.expectedOutcome == OutcomeFetchError {
				assert.Error(t, lookup.Err)
			}
			if tc.checkLookup != nil {
				tc.checkLookup(t, lookup)
			}
		})
	}
}

func TestFetchEventNetworkError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	lookup := New(slogdiscard.NewDiscardLogger(), baseURL).FetchEvent(context.Background(), "go-meetup")

	assert.Equal(t, OutcomeFetchError, lookup.Outcome)
	assert.Error(t, lookup.Err)
}

func TestFetchEventEscapesSlug(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events/a%2Fb", r.URL.EscapedPath())
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	lookup := New(slogdiscard.NewDiscardLogger(), srv.URL).FetchEvent(context.Background(), "a/b")

	assert.Equal(t, OutcomeNotFound, lookup.Outcome)
}

func TestFetchEventRevalidationWindow(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Path == "/events/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(eventBody))
	}))
	defer srv.Close()

	client := New(slogdiscard.NewDiscardLogger(), srv.URL, WithCache(memory.New(), time.Minute))

	for i := 0; i < 3; i++ {
		lookup := client.FetchEvent(context.Background(), "go-meetup")
		require.Equal(t, OutcomeFound, lookup.Outcome)
		assert.Equal(t, "Go Meetup", lookup.Event.Title)
	}
	assert.Equal(t, int32(1), hits.Load())

	for i := 0; i < 2; i++ {
		lookup := client.FetchEvent(context.Background(), "missing")
		require.Equal(t, OutcomeNotFound, lookup.Outcome)
	}
	assert.Equal(t, int32(3), hits.Load(), "misses are not cached")
}

func TestFetchEventCancelledContext(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(eventBody))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	lookup := New(slogdiscard.NewDiscardLogger(), srv.URL).FetchEvent(ctx, "go-meetup")

	assert.Equal(t, OutcomeFetchError, lookup.Outcome)
	assert.ErrorIs(t, lookup.Err, context.Canceled)
}
