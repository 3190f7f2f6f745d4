package repository

import (
	"context"

	"github.com/halya-h/MovieMapUA/internal/domain/model"
)

// CommentsRepository stores user comments on movies.
type CommentsRepository interface {
	ListByMovie(ctx context.Context, movieID string) ([]model.Comment, error)
	Add(ctx context.Context, comment *model.Comment) error
	Delete(ctx context.Context, id string) error
}
