package service

import (
	"log"

	"github.com/halya-h/MovieMapUA/internal/domain/helper"
	"github.com/halya-h/MovieMapUA/internal/domain/model"
)

// Clustering defaults: 500 km keeps a group within a day's drive, 25 stops
// is the routing provider's waypoint ceiling.
const (
	DefaultClusterRadiusKm = 500.0
	DefaultMaxStops        = 25
)

// RouteClusterer partitions an unordered set of locations into drivable
// route segments. The algorithm is a greedy single pass: each location joins
// the first group whose first member is within RadiusKm, otherwise it opens
// a new group. Deterministic given input order, not globally optimal.
type RouteClusterer struct {
	RadiusKm float64
	MaxStops int
}

// NewRouteClusterer creates a clusterer with the default radius and stop cap.
func NewRouteClusterer() *RouteClusterer {
	return &RouteClusterer{
		RadiusKm: DefaultClusterRadiusKm,
		MaxStops: DefaultMaxStops,
	}
}

// Cluster groups locations into route segments. Groups larger than MaxStops
// are split into consecutive fixed-size chunks preserving encounter order;
// groups with fewer than two members are dropped since a route needs at
// least two stops. Empty input yields empty output; this never errors.
func (c *RouteClusterer) Cluster(locations []*model.Location) []*model.RouteSegment {
	var groups [][]*model.Location

	for _, loc := range locations {
		added := false
		for i := range groups {
			if helper.HaversineDistance(groups[i][0].Coordinates, loc.Coordinates) <= c.RadiusKm {
				groups[i] = append(groups[i], loc)
				added = true
				break
			}
		}
		if !added {
			groups = append(groups, []*model.Location{loc})
		}
	}

	var limited [][]*model.Location
	for _, group := range groups {
		if len(group) > c.MaxStops {
			limited = append(limited, splitIntoChunks(group, c.MaxStops)...)
		} else {
			limited = append(limited, group)
		}
	}

	var segments []*model.RouteSegment
	for _, group := range limited {
		if len(group) < 2 {
			log.Printf("route clusterer: dropping group of %d location(s), a route needs at least 2 stops", len(group))
			continue
		}
		segments = append(segments, model.NewRouteSegment(group))
	}

	return segments
}

// splitIntoChunks cuts a slice into consecutive chunks of at most chunkSize.
func splitIntoChunks(locations []*model.Location, chunkSize int) [][]*model.Location {
	var chunks [][]*model.Location
	for i := 0; i < len(locations); i += chunkSize {
		end := i + chunkSize
		if end > len(locations) {
			end = len(locations)
		}
		chunks = append(chunks, locations[i:end])
	}
	return chunks
}
