package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/halya-h/MovieMapUA/internal/domain/model"
	"github.com/halya-h/MovieMapUA/internal/domain/repository"
	"github.com/halya-h/MovieMapUA/internal/infrastructure/database"
)

type SupabaseMoviesRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseMoviesRepository(client *database.SupabaseClient) repository.MoviesRepository {
	return &SupabaseMoviesRepository{client: client}
}

func (r *SupabaseMoviesRepository) List(ctx context.Context) ([]model.Movie, error) {
	var movies []model.Movie
	data, count, err := r.client.GetClient().From("movies").Select("*", "exact", false).Execute()
	if err != nil {
		return nil, fmt.Errorf("fetching movies: %w", err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &movies); err != nil {
		return nil, fmt.Errorf("unmarshaling movies: %w", err)
	}

	return movies, nil
}

func (r *SupabaseMoviesRepository) GetByID(ctx context.Context, id string) (*model.Movie, error) {
	var movies []model.Movie
	data, count, err := r.client.GetClient().From("movies").Select("*", "exact", false).Eq("id", id).Execute()
	if err != nil {
		return nil, fmt.Errorf("fetching movie %s: %w", id, err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &movies); err != nil {
		return nil, fmt.Errorf("unmarshaling movie %s: %w", id, err)
	}

	if len(movies) == 0 {
		return nil, model.ErrMovieNotFound
	}

	return &movies[0], nil
}

func (r *SupabaseMoviesRepository) SearchByTitle(ctx context.Context, query string) ([]model.Movie, error) {
	var movies []model.Movie
	data, count, err := r.client.GetClient().From("movies").
		Select("*", "exact", false).
		Filter("title", "ilike", "%"+query+"%").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("searching movies by title %q: %w", query, err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &movies); err != nil {
		return nil, fmt.Errorf("unmarshaling movie search results: %w", err)
	}

	return movies, nil
}

func (r *SupabaseMoviesRepository) Create(ctx context.Context, movie *model.Movie) error {
	data, err := json.Marshal(movie)
	if err != nil {
		return fmt.Errorf("marshaling movie: %w", err)
	}

	_, _, err = r.client.GetClient().From("movies").Insert(string(data), false, "", "", "").Execute()
	if err != nil {
		return fmt.Errorf("creating movie: %w", err)
	}

	return nil
}

func (r *SupabaseMoviesRepository) Update(ctx context.Context, movie *model.Movie) error {
	data, err := json.Marshal(movie)
	if err != nil {
		return fmt.Errorf("marshaling movie: %w", err)
	}

	_, _, err = r.client.GetClient().From("movies").Update(string(data), "", "").Eq("id", movie.ID).Execute()
	if err != nil {
		return fmt.Errorf("updating movie %s: %w", movie.ID, err)
	}

	return nil
}

func (r *SupabaseMoviesRepository) Delete(ctx context.Context, id string) error {
	_, _, err := r.client.GetClient().From("movies").Delete("", "").Eq("id", id).Execute()
	if err != nil {
		return fmt.Errorf("deleting movie %s: %w", id, err)
	}

	return nil
}
