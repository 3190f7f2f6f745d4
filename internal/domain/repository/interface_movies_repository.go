package repository

import (
	"context"

	"github.com/halya-h/MovieMapUA/internal/domain/model"
)

// MoviesRepository provides access to the movie catalogue.
type MoviesRepository interface {
	List(ctx context.Context) ([]model.Movie, error)
	GetByID(ctx context.Context, id string) (*model.Movie, error)
	SearchByTitle(ctx context.Context, query string) ([]model.Movie, error)
	Create(ctx context.Context, movie *model.Movie) error
	Update(ctx context.Context, movie *model.Movie) error
	Delete(ctx context.Context, id string) error
}
