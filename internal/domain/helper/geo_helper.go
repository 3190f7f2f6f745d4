package helper

import (
	"math"
	"sort"

	"github.com/halya-h/MovieMapUA/internal/domain/model"
)

const earthRadiusKm = 6371.0

// HaversineDistance computes the great-circle distance between two points in
// kilometers. Pure and total: out-of-range or NaN coordinates propagate NaN,
// they are not trapped here.
func HaversineDistance(p1, p2 model.GeoPoint) float64 {
	lat1 := p1.Lat * math.Pi / 180
	lng1 := p1.Lng * math.Pi / 180
	lat2 := p2.Lat * math.Pi / 180
	lng2 := p2.Lng * math.Pi / 180
	dLat := lat2 - lat1
	dLng := lng2 - lng1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// HaversineDistanceLocation computes the distance between two locations (km).
func HaversineDistanceLocation(l1, l2 *model.Location) float64 {
	return HaversineDistance(l1.Coordinates, l2.Coordinates)
}

// SortByReviewCount sorts search hits by review count, highest first. The
// sort is stable so hits with equal counts keep the provider's order.
func SortByReviewCount(hits []model.SearchHit) {
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].ReviewCount > hits[j].ReviewCount
	})
}
