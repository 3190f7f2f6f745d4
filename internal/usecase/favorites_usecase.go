package usecase

import (
	"context"
	"fmt"

	"github.com/halya-h/MovieMapUA/internal/domain/model"
	"github.com/halya-h/MovieMapUA/internal/domain/repository"
	"github.com/halya-h/MovieMapUA/internal/domain/service"
)

type FavoritesUseCase interface {
	// Add bookmarks an item for the user. Duplicate (type, key) pairs yield
	// model.ErrFavoriteConflict.
	Add(ctx context.Context, userID string, req *model.AddFavoriteRequest) (*model.FavoriteRecord, error)

	// Remove deletes a bookmark. A missing bookmark yields
	// model.ErrFavoriteNotFound.
	Remove(ctx context.Context, userID string, req *model.RemoveFavoriteRequest) error

	// List returns all of the user's bookmarks, oldest first.
	List(ctx context.Context, userID string) ([]*model.FavoriteRecord, error)
}

type favoritesUseCaseImpl struct {
	movies       repository.MoviesRepository
	favorites    repository.FavoritesRepository
	routeService service.FavoriteRouteService
}

func NewFavoritesUseCase(
	movies repository.MoviesRepository,
	favorites repository.FavoritesRepository,
	routeService service.FavoriteRouteService,
) FavoritesUseCase {
	return &favoritesUseCaseImpl{
		movies:       movies,
		favorites:    favorites,
		routeService: routeService,
	}
}

func (u *favoritesUseCaseImpl) Add(ctx context.Context, userID string, req *model.AddFavoriteRequest) (*model.FavoriteRecord, error) {
	if !model.ValidFavoriteType(req.Type) {
		return nil, fmt.Errorf("invalid favorite type %q", req.Type)
	}

	switch req.Type {
	case model.FavoriteTypeMovie:
		if req.MovieID == "" {
			return nil, fmt.Errorf("movie_id is required for movie favorites")
		}
		if _, err := u.movies.GetByID(ctx, req.MovieID); err != nil {
			return nil, err
		}
	case model.FavoriteTypeRoute:
		if len(req.Data) >= 2 {
			// The route path carries the clustering invariants (identity,
			// snapshot shape), so it goes through the route service.
			segment := model.NewRouteSegment(req.Data)
			return u.routeService.FavoriteSegment(ctx, userID, segment)
		}
		if req.ExternalID == "" {
			return nil, fmt.Errorf("external_id or at least 2 locations required for route favorites")
		}
	default:
		if req.ExternalID == "" {
			return nil, fmt.Errorf("external_id is required for %s favorites", req.Type)
		}
	}

	return u.favorites.Add(ctx, userID, req.ToRecord())
}

func (u *favoritesUseCaseImpl) Remove(ctx context.Context, userID string, req *model.RemoveFavoriteRequest) error {
	if !model.ValidFavoriteType(req.Type) {
		return fmt.Errorf("invalid favorite type %q", req.Type)
	}
	if req.Key() == "" {
		return fmt.Errorf("missing favorite key for type %s", req.Type)
	}

	if req.Type == model.FavoriteTypeRoute {
		return u.routeService.UnfavoriteSegment(ctx, userID, req.ExternalID)
	}
	return u.favorites.Remove(ctx, userID, req.Type, req.Key())
}

func (u *favoritesUseCaseImpl) List(ctx context.Context, userID string) ([]*model.FavoriteRecord, error) {
	return u.favorites.ListByUser(ctx, userID)
}
