package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/halya-h/MovieMapUA/internal/domain/model"
	"github.com/halya-h/MovieMapUA/internal/domain/repository"
	"github.com/halya-h/MovieMapUA/internal/infrastructure/database"
)

// locationRow mirrors the locations table: coordinates live in a PostGIS
// GEOMETRY column serialized as GeoJSON.
type locationRow struct {
	ID       string        `json:"id,omitempty"`
	MovieID  string        `json:"movie_id"`
	Title    string        `json:"title"`
	Location *GeoJSONPoint `json:"location"`
}

func (row *locationRow) toModel() *model.Location {
	return &model.Location{
		ID:          row.ID,
		MovieID:     row.MovieID,
		Title:       row.Title,
		Coordinates: GeoJSONToPoint(row.Location),
	}
}

func locationToRow(loc *model.Location) *locationRow {
	return &locationRow{
		ID:       loc.ID,
		MovieID:  loc.MovieID,
		Title:    loc.Title,
		Location: PointToGeoJSON(loc.Coordinates),
	}
}

type SupabaseLocationsRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseLocationsRepository(client *database.SupabaseClient) repository.LocationsRepository {
	return &SupabaseLocationsRepository{client: client}
}

func (r *SupabaseLocationsRepository) GetByID(ctx context.Context, id string) (*model.Location, error) {
	var rows []locationRow
	data, count, err := r.client.GetClient().From("locations").Select("*", "exact", false).Eq("id", id).Execute()
	if err != nil {
		return nil, fmt.Errorf("fetching location %s: %w", id, err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil, fmt.Errorf("unmarshaling location %s: %w", id, err)
	}

	if len(rows) == 0 {
		return nil, model.ErrLocationNotFound
	}

	return rows[0].toModel(), nil
}

func (r *SupabaseLocationsRepository) GetByMovieID(ctx context.Context, movieID string) ([]*model.Location, error) {
	var rows []locationRow
	data, count, err := r.client.GetClient().From("locations").Select("*", "exact", false).Eq("movie_id", movieID).Execute()
	if err != nil {
		return nil, fmt.Errorf("fetching locations for movie %s: %w", movieID, err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil, fmt.Errorf("unmarshaling locations for movie %s: %w", movieID, err)
	}

	locations := make([]*model.Location, 0, len(rows))
	for i := range rows {
		locations = append(locations, rows[i].toModel())
	}

	return locations, nil
}

func (r *SupabaseLocationsRepository) Create(ctx context.Context, location *model.Location) error {
	data, err := json.Marshal(locationToRow(location))
	if err != nil {
		return fmt.Errorf("marshaling location: %w", err)
	}

	_, _, err = r.client.GetClient().From("locations").Insert(string(data), false, "", "", "").Execute()
	if err != nil {
		return fmt.Errorf("creating location: %w", err)
	}

	return nil
}

func (r *SupabaseLocationsRepository) Update(ctx context.Context, location *model.Location) error {
	data, err := json.Marshal(locationToRow(location))
	if err != nil {
		return fmt.Errorf("marshaling location: %w", err)
	}

	_, _, err = r.client.GetClient().From("locations").Update(string(data), "", "").Eq("id", location.ID).Execute()
	if err != nil {
		return fmt.Errorf("updating location %s: %w", location.ID, err)
	}

	return nil
}

func (r *SupabaseLocationsRepository) Delete(ctx context.Context, id string) error {
	_, _, err := r.client.GetClient().From("locations").Delete("", "").Eq("id", id).Execute()
	if err != nil {
		return fmt.Errorf("deleting location %s: %w", id, err)
	}

	return nil
}
