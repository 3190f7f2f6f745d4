package repository

import (
	"context"

	"github.com/halya-h/MovieMapUA/internal/domain/model"
)

// LocationsRepository supplies the filming locations of movies. The routing
// engine only reads locations; creation and editing belong to the movie
// management surface.
type LocationsRepository interface {
	GetByID(ctx context.Context, id string) (*model.Location, error)
	GetByMovieID(ctx context.Context, movieID string) ([]*model.Location, error)
	Create(ctx context.Context, location *model.Location) error
	Update(ctx context.Context, location *model.Location) error
	Delete(ctx context.Context, id string) error
}

// NearbyLocationsRepository is the radius-query path backed by PostGIS.
type NearbyLocationsRepository interface {
	GetNearby(ctx context.Context, center model.GeoPoint, radiusKm float64) ([]*model.Location, error)
}
