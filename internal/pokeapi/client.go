package pokeapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/carlmjohnson/requests"
	"github.com/goccy/go-json"
)

// Catalog defines the read-only lookups dexter performs against the catalog.
// This interface is implemented by *Client and can be replaced in tests.
type Catalog interface {
	FetchSummary(ctx context.Context, idOrName string) (Summary, error)
	FetchDetail(ctx context.Context, name string) (*Detail, error)
}

// Ensure Client implements Catalog at compile time.
var _ Catalog = (*Client)(nil)

// ErrNotFound reports that the catalog answered with a non-success status.
var ErrNotFound = errors.New("not found")

// StatusError carries the HTTP status of a rejected lookup.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}

// Is lets errors.Is(err, ErrNotFound) match any status failure.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound
}

// Client talks to the PokeAPI REST catalog.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	DefaultBaseURL        = "https://pokeapi.co/api/v2/"
	DefaultRequestTimeout = 10 * time.Second
	defaultUserAgent      = "dexter/0.1"
)

// NewClient builds a Client rooted at baseURL. A zero timeout uses DefaultRequestTimeout.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// BaseURL returns the normalized catalog root.
func (c *Client) BaseURL() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.String()
}

// FetchSummary retrieves the identity fields of one entry by numeric id or name.
func (c *Client) FetchSummary(ctx context.Context, idOrName string) (Summary, error) {
	if c == nil {
		return Summary{}, fmt.Errorf("client is nil")
	}
	var payload Summary
	if err := c.fetchPokemon(ctx, idOrName, &payload); err != nil {
		return Summary{}, err
	}
	return payload, nil
}

// FetchDetail retrieves the forms and sprites for one entry.
func (c *Client) FetchDetail(ctx context.Context, name string) (*Detail, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload Detail
	if err := c.fetchPokemon(ctx, name, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) fetchPokemon(ctx context.Context, ident string, dest any) error {
	ident = strings.TrimSpace(ident)
	if ident == "" {
		return fmt.Errorf("identifier required")
	}
	err := requests.
		URL(c.pokemonURL(ident)).
		Client(c.http).
		Accept("application/json").
		UserAgent(c.userAgent).
		AddValidator(checkStatus).
		Handle(decodeJSON(dest)).
		Fetch(ctx)
	if err != nil {
		return fmt.Errorf("pokemon %s: %w", ident, err)
	}
	return nil
}

// pokemonURL escapes ident as a single path segment. requests' Path treats
// its argument as already decoded, so the escaped form is set here instead.
func (c *Client) pokemonURL(ident string) string {
	u := *c.baseURL
	u.Path = c.baseURL.Path + "pokemon/" + ident
	u.RawPath = c.baseURL.EscapedPath() + "pokemon/" + url.PathEscape(ident)
	return u.String()
}

func checkStatus(res *http.Response) error {
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &StatusError{Code: res.StatusCode}
	}
	return nil
}

func decodeJSON(dest any) requests.ResponseHandler {
	return func(res *http.Response) error {
		if dest == nil {
			return nil
		}
		if err := json.NewDecoder(res.Body).Decode(dest); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base_url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse base_url %q: missing host", raw)
	}
	// Relative lookups resolve against the last path segment, so keep a trailing slash.
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
