package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/halya-h/MovieMapUA/internal/domain/model"
	"github.com/halya-h/MovieMapUA/internal/domain/repository"
	"github.com/halya-h/MovieMapUA/internal/infrastructure/database"
)

type SupabaseCommentsRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseCommentsRepository(client *database.SupabaseClient) repository.CommentsRepository {
	return &SupabaseCommentsRepository{client: client}
}

func (r *SupabaseCommentsRepository) ListByMovie(ctx context.Context, movieID string) ([]model.Comment, error) {
	var comments []model.Comment
	data, count, err := r.client.GetClient().From("comments").
		Select("*", "exact", false).
		Eq("movie_id", movieID).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("fetching comments for movie %s: %w", movieID, err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &comments); err != nil {
		return nil, fmt.Errorf("unmarshaling comments for movie %s: %w", movieID, err)
	}

	return comments, nil
}

func (r *SupabaseCommentsRepository) Add(ctx context.Context, comment *model.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}

	data, err := json.Marshal(comment)
	if err != nil {
		return fmt.Errorf("marshaling comment: %w", err)
	}

	_, _, err = r.client.GetClient().From("comments").Insert(string(data), false, "", "", "").Execute()
	if err != nil {
		return fmt.Errorf("creating comment: %w", err)
	}

	return nil
}

func (r *SupabaseCommentsRepository) Delete(ctx context.Context, id string) error {
	_, _, err := r.client.GetClient().From("comments").Delete("", "").Eq("id", id).Execute()
	if err != nil {
		return fmt.Errorf("deleting comment %s: %w", id, err)
	}

	return nil
}
