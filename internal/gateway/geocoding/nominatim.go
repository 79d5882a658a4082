// Package geocoding turns free-text addresses into coordinates through a
// Nominatim-compatible search API.
package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"logistics-backoffice/internal/domain"
	"logistics-backoffice/internal/gateway/retry"
)

const userAgent = "logistics-backoffice/1.0"

// Client is a Nominatim search client.
type Client struct {
	base    string
	country string
	http    *http.Client
}

// NewClient creates a client. country restricts results to an ISO 3166-1
// alpha-2 code; empty means worldwide.
func NewClient(baseURL, country string, hc *http.Client) (*Client, error) {
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("geocoding: parse base url: %w", err)
	}
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{base: strings.TrimRight(baseURL, "/"), country: strings.ToLower(country), http: hc}, nil
}

type place struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Search returns the best match for q, or nil when nothing matches.
func (c *Client) Search(ctx context.Context, q string) (*domain.Point, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("limit", "1")
	params.Set("q", q)
	if c.country != "" {
		params.Set("countrycodes", c.country)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("geocoding: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding: search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &retry.StatusError{Service: "geocoding", Code: resp.StatusCode}
	}

	var places []place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, fmt.Errorf("geocoding: decode: %w", err)
	}
	if len(places) == 0 {
		return nil, nil
	}
	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("geocoding: lat %q: %w", places[0].Lat, err)
	}
	lng, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("geocoding: lon %q: %w", places[0].Lon, err)
	}
	return &domain.Point{Lat: lat, Lng: lng}, nil
}
