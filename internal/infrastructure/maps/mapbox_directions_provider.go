// Package maps implements the external routing provider on top of the
// Mapbox Directions API (driving profile).
package maps

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/paulmach/orb"

	"github.com/halya-h/MovieMapUA/internal/domain/model"
)

const (
	defaultBaseURL = "https://api.mapbox.com/directions/v5/mapbox/driving"

	// maxWaypoints is the provider's waypoint ceiling; the clusterer caps
	// segments at the same number.
	maxWaypoints = 25
)

// MapboxDirectionsProvider fetches a driving-route summary for a sequence of
// waypoints. It never exposes the turn-by-turn path, only the digest the
// itinerary view needs.
type MapboxDirectionsProvider struct {
	accessToken string
	baseURL     string
	httpClient  *http.Client
}

// NewMapboxDirectionsProvider constructs a provider with the given token.
func NewMapboxDirectionsProvider(accessToken string) *MapboxDirectionsProvider {
	return NewMapboxDirectionsProviderWithURL(defaultBaseURL, accessToken)
}

// NewMapboxDirectionsProviderWithURL constructs a provider pointing at a
// custom base URL (for tests).
func NewMapboxDirectionsProviderWithURL(baseURL, accessToken string) *MapboxDirectionsProvider {
	return &MapboxDirectionsProvider{
		accessToken: accessToken,
		baseURL:     baseURL,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

type mapboxResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		DistanceMeters  float64 `json:"distance"`
		DurationSeconds float64 `json:"duration"`
	} `json:"routes"`
}

// GetDrivingRoute requests a driving route through the waypoints in order
// and returns its distance/duration summary with a padded bounding box.
func (p *MapboxDirectionsProvider) GetDrivingRoute(ctx context.Context, waypoints []model.GeoPoint) (*model.RouteSummary, error) {
	if len(waypoints) < 2 {
		return nil, errors.New("a driving route needs at least 2 waypoints")
	}
	if len(waypoints) > maxWaypoints {
		return nil, fmt.Errorf("too many waypoints: %d exceeds the provider limit of %d", len(waypoints), maxWaypoints)
	}

	coords := make([]string, len(waypoints))
	for i, wp := range waypoints {
		coords[i] = fmt.Sprintf("%f,%f", wp.Lng, wp.Lat)
	}

	params := url.Values{}
	params.Set("access_token", p.accessToken)
	params.Set("overview", "false")
	params.Set("language", "uk")

	reqURL := fmt.Sprintf("%s/%s?%s", p.baseURL, strings.Join(coords, ";"), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating directions request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directions request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &model.ProviderError{Provider: "mapbox directions", StatusCode: resp.StatusCode}
	}

	var decoded mapboxResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding directions response: %w", err)
	}

	if decoded.Code != "Ok" || len(decoded.Routes) == 0 {
		return nil, fmt.Errorf("directions returned no route (code %q)", decoded.Code)
	}

	route := decoded.Routes[0]
	duration := time.Duration(route.DurationSeconds) * time.Second

	return &model.RouteSummary{
		DistanceMeters: int(route.DistanceMeters),
		Duration:       duration,
		DurationSec:    int(route.DurationSeconds),
		Bounds:         boundsForWaypoints(waypoints),
	}, nil
}

// boundsForWaypoints builds a bounding box over the waypoints, padded a
// little so the map view does not clip markers at the edge.
func boundsForWaypoints(waypoints []model.GeoPoint) *model.GeoBounds {
	bound := orb.Bound{
		Min: orb.Point{waypoints[0].Lng, waypoints[0].Lat},
		Max: orb.Point{waypoints[0].Lng, waypoints[0].Lat},
	}
	for _, wp := range waypoints[1:] {
		bound = bound.Extend(orb.Point{wp.Lng, wp.Lat})
	}

	padding := 0.001 // roughly 100m
	bound = bound.Pad(padding)

	return &model.GeoBounds{
		SouthWest: model.GeoPoint{Lat: bound.Min.Lat(), Lng: bound.Min.Lon()},
		NorthEast: model.GeoPoint{Lat: bound.Max.Lat(), Lng: bound.Max.Lon()},
	}
}
