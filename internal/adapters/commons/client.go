// Package commons implements the Wikimedia Commons media search client.
package commons

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/flamesblue/omsk-gallery/internal/domain/model"
	"github.com/flamesblue/omsk-gallery/pkg/metrics"
)

// Default client parameters.
const (
	defaultBaseURL   = "https://commons.wikimedia.org/w/api.php"
	defaultUserAgent = "Flames.Blue Omsk Gallery/1.0"
	defaultTimeout   = 10 * time.Second

	// The generator=search module refuses gsrlimit above 50.
	maxPerQuery = 50
)

// Client queries the MediaWiki action API for pages with thumbnails.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	timeout    time.Duration
}

// New creates a Client with the default endpoint, timeout and User-Agent.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:   defaultBaseURL,
		userAgent: defaultUserAgent,
		timeout:   defaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}

	return c
}

// queryResponse mirrors the subset of the action API response we read.
// query.pages is kept raw because its key order carries the result order.
type queryResponse struct {
	Query struct {
		Pages json.RawMessage `json:"pages"`
	} `json:"query"`
}

type page struct {
	PageID    int        `json:"pageid"`
	Title     string     `json:"title"`
	FullURL   string     `json:"fullurl"`
	Thumbnail *thumbnail `json:"thumbnail"`
}

type thumbnail struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Search issues one generator-search request for query and returns the
// pages that carry a thumbnail, in response order. limit is capped at
// the service's per-request maximum of 50.
func (c *Client) Search(ctx context.Context, query string, limit, thumbSize int) ([]model.Image, error) {
	if limit > maxPerQuery {
		limit = maxPerQuery
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("generator", "search")
	params.Set("gsrsearch", query)
	params.Set("gsrlimit", strconv.Itoa(limit))
	params.Set("prop", "pageimages|info")
	params.Set("inprop", "url")
	params.Set("pithumbsize", strconv.Itoa(thumbSize))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	metrics.RecordSearchRequest()
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search %q: %w: %s", query, ErrUnexpectedStatus, resp.Status)
	}

	var decoded queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode search response for %q: %w", query, err)
	}

	metrics.RecordSearchLatency(float64(time.Since(start).Milliseconds()))

	pages, err := decodePages(decoded.Query.Pages)
	if err != nil {
		return nil, fmt.Errorf("decode search pages for %q: %w", query, err)
	}

	images := make([]model.Image, 0, len(pages))
	for _, p := range pages {
		if p.Thumbnail == nil {
			metrics.RecordPageSkipped()
			continue
		}
		images = append(images, model.Image{
			ID:        p.PageID,
			Title:     p.Title,
			PageURL:   p.FullURL,
			Thumbnail: p.Thumbnail.Source,
			Width:     p.Thumbnail.Width,
			Height:    p.Thumbnail.Height,
			Source:    model.SourceLabel,
			License:   model.LicenseNote,
		})
	}

	return images, nil
}

// decodePages walks the query.pages object as a token stream. The object
// is keyed by string-encoded page id; its key order follows the service's
// response and drives result order, which a plain map decode would lose.
func decodePages(raw json.RawMessage) ([]page, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: pages is not an object", ErrMalformedResponse)
	}

	var pages []page
	for dec.More() {
		// Object key: the string-encoded page id. The id is also present
		// as the pageid field, so the key itself is discarded.
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		var p page
		if err := dec.Decode(&p); err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}

	return pages, nil
}
