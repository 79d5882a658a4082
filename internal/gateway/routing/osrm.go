// Package routing computes driving routes through an OSRM-compatible API.
package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"logistics-backoffice/internal/domain"
	"logistics-backoffice/internal/gateway/retry"
)

// ErrNoRoute is returned when the router finds no path between the points.
var ErrNoRoute = errors.New("routing: no route")

// Route is a driving route between two points.
type Route struct {
	DistanceMeters float64        `json:"distance_m"`
	Duration       time.Duration  `json:"-"`
	Path           []domain.Point `json:"path"`
}

// DistanceLabel formats the distance in kilometres with one decimal.
func (r Route) DistanceLabel() string {
	return strconv.FormatFloat(r.DistanceMeters/1000, 'f', 1, 64) + " km"
}

// DurationLabel formats the duration as "1h 5min" or "42min".
func (r Route) DurationLabel() string {
	total := int(math.Round(r.Duration.Minutes()))
	if h := total / 60; h > 0 {
		return fmt.Sprintf("%dh %dmin", h, total%60)
	}
	return fmt.Sprintf("%dmin", total)
}

// Client is an OSRM route client.
type Client struct {
	base    string
	profile string
	http    *http.Client
	policy  *retry.Policy
}

// NewClient creates a client for the driving profile. policy may be nil.
func NewClient(baseURL string, hc *http.Client, policy *retry.Policy) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	if policy == nil {
		policy = retry.NewPolicy("routing", retry.Config{MaxAttempts: 1}, nil, nil)
	}
	return &Client{base: strings.TrimRight(baseURL, "/"), profile: "driving", http: hc, policy: policy}
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Geometry struct {
			Coordinates [][2]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"routes"`
}

func coord(p domain.Point) string {
	return strconv.FormatFloat(p.Lng, 'f', 6, 64) + "," + strconv.FormatFloat(p.Lat, 'f', 6, 64)
}

// Route returns the fastest driving route from a to b.
func (c *Client) Route(ctx context.Context, a, b domain.Point) (*Route, error) {
	var out *Route
	err := c.policy.Do(ctx, "Route", func(ctx context.Context) error {
		var err error
		out, err = c.route(ctx, a, b)
		return err
	})
	return out, err
}

func (c *Client) route(ctx context.Context, a, b domain.Point) (*Route, error) {
	endpoint := fmt.Sprintf("%s/route/v1/%s/%s;%s?overview=full&geometries=geojson",
		c.base, c.profile, coord(a), coord(b))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("routing: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("routing: route: %w", err)
	}
	defer resp.Body.Close()

	var body osrmResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&body)
	if resp.StatusCode == http.StatusBadRequest && body.Code == "NoRoute" {
		return nil, ErrNoRoute
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &retry.StatusError{Service: "routing", Code: resp.StatusCode}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("routing: decode: %w", decodeErr)
	}
	if body.Code != "Ok" || len(body.Routes) == 0 {
		return nil, ErrNoRoute
	}

	r := body.Routes[0]
	path := make([]domain.Point, 0, len(r.Geometry.Coordinates))
	for _, c := range r.Geometry.Coordinates {
		path = append(path, domain.Point{Lat: c[1], Lng: c[0]})
	}
	return &Route{
		DistanceMeters: r.Distance,
		Duration:       time.Duration(r.Duration * float64(time.Second)),
		Path:           path,
	}, nil
}
