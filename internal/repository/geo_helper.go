package repository

import (
	"github.com/paulmach/orb"

	"github.com/halya-h/MovieMapUA/internal/domain/model"
)

// GeoJSONPoint is the PostGIS POINT JSON representation used in the
// locations table. GeoJSON orders coordinates [lng, lat].
type GeoJSONPoint struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// PointToGeoJSON converts a model.GeoPoint into the PostGIS POINT shape.
func PointToGeoJSON(p model.GeoPoint) *GeoJSONPoint {
	point := orb.Point{p.Lng, p.Lat}
	return &GeoJSONPoint{
		Type:        "Point",
		Coordinates: []float64{point.Lon(), point.Lat()},
	}
}

// GeoJSONToPoint converts a PostGIS POINT into a model.GeoPoint.
func GeoJSONToPoint(g *GeoJSONPoint) model.GeoPoint {
	if g == nil || len(g.Coordinates) < 2 {
		return model.GeoPoint{}
	}
	point := orb.Point{g.Coordinates[0], g.Coordinates[1]}
	return model.GeoPoint{Lat: point.Lat(), Lng: point.Lon()}
}
