package repository

import (
	"context"
	"fmt"

	"github.com/halya-h/MovieMapUA/internal/domain/model"
	"github.com/halya-h/MovieMapUA/internal/domain/repository"
	"github.com/halya-h/MovieMapUA/internal/infrastructure/database"
)

// PostgresLocationsRepository is the direct-SQL path for queries the REST
// API cannot express, currently the PostGIS radius search.
type PostgresLocationsRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresLocationsRepository(client *database.PostgreSQLClient) repository.NearbyLocationsRepository {
	return &PostgresLocationsRepository{client: client}
}

// GetNearby returns locations within radiusKm of center, nearest first.
func (r *PostgresLocationsRepository) GetNearby(ctx context.Context, center model.GeoPoint, radiusKm float64) ([]*model.Location, error) {
	query := `
		SELECT id, movie_id, title,
		       ST_Y(location::geometry) AS lat,
		       ST_X(location::geometry) AS lng
		FROM locations
		WHERE ST_DWithin(
			location::geography,
			ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
			$3
		)
		ORDER BY location::geography <-> ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography`

	rows, err := r.client.DB.QueryContext(ctx, query, center.Lng, center.Lat, radiusKm*1000)
	if err != nil {
		return nil, fmt.Errorf("querying nearby locations: %w", err)
	}
	defer rows.Close()

	var locations []*model.Location
	for rows.Next() {
		loc := &model.Location{}
		if err := rows.Scan(&loc.ID, &loc.MovieID, &loc.Title, &loc.Coordinates.Lat, &loc.Coordinates.Lng); err != nil {
			return nil, fmt.Errorf("scanning location row: %w", err)
		}
		locations = append(locations, loc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating location rows: %w", err)
	}

	return locations, nil
}
