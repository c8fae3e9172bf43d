// Package images searches stock-photo providers and merges their results
// into one provider-agnostic list.
package images

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"editorial-cms/config"
	"editorial-cms/httpclient"
	"editorial-cms/models"
)

const (
	DefaultPerPage = 12
	MaxPerPage     = 30
)

type Orientation string

const (
	OrientationAny       Orientation = ""
	OrientationLandscape Orientation = "landscape"
	OrientationPortrait  Orientation = "portrait"
	OrientationSquare    Orientation = "square"
)

// Query is one provider-level search.
type Query struct {
	Text        string
	Orientation Orientation
	Page        int
	PerPage     int
}

func (q Query) normalized() Query {
	q.Text = strings.TrimSpace(q.Text)
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = DefaultPerPage
	}
	if q.PerPage > MaxPerPage {
		q.PerPage = MaxPerPage
	}
	switch q.Orientation {
	case OrientationLandscape, OrientationPortrait, OrientationSquare:
	default:
		q.Orientation = OrientationAny
	}
	return q
}

type Page struct {
	Images  []models.NormalizedImage
	HasMore bool
}

type Provider interface {
	Name() models.ImageProvider
	// Configured is false when the provider is disabled or has no key.
	Configured() bool
	Search(ctx context.Context, q Query) (Page, error)
}

// ProviderError is a failed call to one provider.
type ProviderError struct {
	Provider   models.ImageProvider
	StatusCode int
	Message    string
	Err        error
}

func (e *ProviderError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: status %d: %s", e.Provider, e.StatusCode, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Provider, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Provider, e.Message)
	}
}

func (e *ProviderError) Unwrap() error { return e.Err }

// client is the HTTP plumbing shared by the providers.
type client struct {
	name    models.ImageProvider
	base    *httpclient.BaseClient
	apiKey  string
	enabled bool
	limiter *rate.Limiter
}

func newClient(name models.ImageProvider, cfg config.ImageProviderConfig, hc *http.Client) client {
	c := client{
		name:    name,
		base:    httpclient.NewBaseClientWithClient(hc, cfg.BaseURL),
		apiKey:  strings.TrimSpace(cfg.APIKey),
		enabled: cfg.IsEnabled(),
	}
	if rpm := cfg.RequestsPerMinute; rpm > 0 {
		c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), max(1, rpm/10))
	}
	return c
}

func (c client) Name() models.ImageProvider { return c.name }

func (c client) Configured() bool { return c.enabled && c.apiKey != "" }

// getJSON waits for the limiter, sends GET relPath and decodes the body into out.
func (c client) getJSON(ctx context.Context, relPath string, query url.Values, header http.Header, out any) error {
	if !c.Configured() {
		return &ProviderError{Provider: c.name, Message: "not configured"}
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return &ProviderError{Provider: c.name, Err: fmt.Errorf("rate limit: %w", err)}
		}
	}

	req, err := c.base.NewRequest(ctx, http.MethodGet, relPath, query, nil)
	if err != nil {
		return &ProviderError{Provider: c.name, Err: err}
	}
	for k, v := range header {
		req.Header[k] = v
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.base.Do(req)
	if err != nil {
		return &ProviderError{Provider: c.name, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		msg := strings.TrimSpace(string(b))
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &ProviderError{Provider: c.name, StatusCode: resp.StatusCode, Message: msg}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ProviderError{Provider: c.name, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// FromConfig builds every provider in aggregation order. Unconfigured
// providers are included and report Configured() == false.
func FromConfig(cfg config.ImagesConfig, hc *http.Client) []Provider {
	return []Provider{
		NewPexels(cfg.Pexels, hc),
		NewUnsplash(cfg.Unsplash, hc),
		NewPixabay(cfg.Pixabay, hc),
	}
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
