package model

import (
	"fmt"
	"strings"
	"time"
)

// IdentitySeparator joins member location ids into a segment's external id.
// The identity is order-sensitive: the same stops in a different order form
// a different route.
const IdentitySeparator = "_"

// SegmentIdentity derives the content-addressed external id of a route
// segment from its member ids, in member order.
func SegmentIdentity(members []*Location) string {
	ids := make([]string, len(members))
	for i, loc := range members {
		ids[i] = loc.ID
	}
	return strings.Join(ids, IdentitySeparator)
}

// RouteSegment is an ordered group of locations intended to form one
// drivable route. Segments are recomputed on every clustering pass and are
// never persisted directly; a favorite stores a snapshot instead.
type RouteSegment struct {
	Members    []*Location `json:"members"`
	ExternalID string      `json:"external_id"`
}

// NewRouteSegment builds a segment and derives its external id.
func NewRouteSegment(members []*Location) *RouteSegment {
	return &RouteSegment{
		Members:    members,
		ExternalID: SegmentIdentity(members),
	}
}

// Anchor returns the representative coordinate used for nearby-POI queries:
// the first member's coordinates.
func (s *RouteSegment) Anchor() GeoPoint {
	if len(s.Members) == 0 {
		return GeoPoint{}
	}
	return s.Members[0].Coordinates
}

// Routable reports whether the segment has enough stops to be routed.
func (s *RouteSegment) Routable() bool {
	return len(s.Members) >= 2
}

// DisplayName builds the user-facing route name from the first and last stop.
func (s *RouteSegment) DisplayName() string {
	if len(s.Members) == 0 {
		return "Route"
	}
	first := s.Members[0].Title
	last := s.Members[len(s.Members)-1].Title
	return fmt.Sprintf("Route %s - %s", first, last)
}

// Waypoints returns the member coordinates in segment order.
func (s *RouteSegment) Waypoints() []GeoPoint {
	points := make([]GeoPoint, len(s.Members))
	for i, loc := range s.Members {
		points[i] = loc.Coordinates
	}
	return points
}

// RouteSummary is the distance/duration digest returned by the external
// routing provider, plus a bounding box for map fitting. The engine never
// computes the road path itself.
type RouteSummary struct {
	DistanceMeters int           `json:"distance_meters"`
	Duration       time.Duration `json:"-"`
	DurationSec    int           `json:"duration_seconds"`
	Bounds         *GeoBounds    `json:"bounds,omitempty"`
}

// GeoBounds is a lat/lng bounding box around a route.
type GeoBounds struct {
	SouthWest GeoPoint `json:"south_west"`
	NorthEast GeoPoint `json:"north_east"`
}

// ItinerarySegment is a clustered segment decorated for display: favorite
// membership plus an optional driving summary.
type ItinerarySegment struct {
	ExternalID string        `json:"external_id"`
	Name       string        `json:"name"`
	Members    []*Location   `json:"members"`
	IsFavorite bool          `json:"is_favorite"`
	Summary    *RouteSummary `json:"summary,omitempty"`
}
