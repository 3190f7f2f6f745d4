package repository

import (
	"context"

	"github.com/halya-h/MovieMapUA/internal/domain/model"
)

// FavoritesRepository persists per-user bookmarks. Implementations must
// enforce the uniqueness invariant: at most one favorite per (type, key) per
// user, where the key is movieId for movies and externalId otherwise.
// Add returns model.ErrFavoriteConflict on a duplicate key and Remove
// returns model.ErrFavoriteNotFound when nothing matches.
type FavoritesRepository interface {
	Exists(ctx context.Context, userID, favType, key string) (bool, error)
	Add(ctx context.Context, userID string, record *model.FavoriteRecord) (*model.FavoriteRecord, error)
	Remove(ctx context.Context, userID, favType, key string) error
	ListByUser(ctx context.Context, userID string) ([]*model.FavoriteRecord, error)
	ListRouteExternalIDs(ctx context.Context, userID string) ([]string, error)
}
