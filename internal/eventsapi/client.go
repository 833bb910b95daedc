package eventsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"eventDetails/internal/lib/logger/sl"
	"eventDetails/internal/models"
	"eventDetails/internal/storage"
)

const maxBodySize = 1 << 20

// StatusError is returned for non-OK responses other than 404.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed to fetch event: %s", e.Status)
}

type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type eventEnvelope struct {
	Event *models.Event `json:"event"`
}

type Client struct {
	log        *slog.Logger
	baseURL    string
	httpClient *http.Client
	cache      ResponseCache
	revalidate time.Duration
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithCache reuses successful responses for the revalidate window.
func WithCache(cache ResponseCache, revalidate time.Duration) Option {
	return func(c *Client) {
		c.cache = cache
		c.revalidate = revalidate
	}
}

func New(log *slog.Logger, baseURL string, opts ...Option) *Client {
	c := &Client{
		log:        log.With(slog.String("component", "eventsapi")),
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// FetchEvent resolves GET {baseURL}/events/{slug}.
func (c *Client) FetchEvent(ctx context.Context, slug string) Lookup {
	const op = "eventsapi.Client.FetchEvent"

	log := c.log.With(slog.String("op", op), slog.String("slug", slug))
	key := "event:" + slug

	body, cached := c.cached(ctx, log, key)
	if !cached {
		var lookup Lookup
		body, lookup = c.get(ctx, slug)
		if body == nil {
			return lookup
		}
	}

	var envelope eventEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return FetchError(fmt.Errorf("%s: failed to decode response: %w", op, err))
	}

	if envelope.Event == nil {
		return NotFound()
	}

	if !cached && c.cache != nil {
		if err := c.cache.Set(ctx, key, body, c.revalidate); err != nil {
			log.Warn("failed to cache event response", sl.Err(err))
		}
	}

	return Found(envelope.Event)
}

func (c *Client) cached(ctx context.Context, log *slog.Logger, key string) ([]byte, bool) {
	if c.cache == nil {
		return nil, false
	}

	body, err := c.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrCacheMiss) {
			log.Warn("failed to read cached event response", sl.Err(err))
		}
		return nil, false
	}

	log.Debug("event response served from cache")

	return body, true
}

// get returns the response body, or nil and the lookup to hand back.
func (c *Client) get(ctx context.Context, slug string) ([]byte, Lookup) {
	const op = "eventsapi.Client.get"

	endpoint := c.baseURL + "/events/" + url.PathEscape(slug)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, FetchError(fmt.Errorf("%s: %w", op, err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, FetchError(fmt.Errorf("%s: %w", op, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, NotFound()
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, FetchError(fmt.Errorf("%s: %w", op, &StatusError{
			Code:   resp.StatusCode,
			Status: resp.Status,
		}))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, FetchError(fmt.Errorf("%s: failed to read response: %w", op, err))
	}

	return body, Lookup{}
}
