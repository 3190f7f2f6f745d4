package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/halya-h/MovieMapUA/internal/domain/model"
	"github.com/halya-h/MovieMapUA/internal/domain/repository"
	"github.com/halya-h/MovieMapUA/internal/domain/service"
)

type ItineraryUseCase interface {
	// BuildForMovie clusters a movie's filming locations into driving
	// segments, annotated with the user's favorite flags and route summaries.
	BuildForMovie(ctx context.Context, userID, movieID string) ([]*model.ItinerarySegment, error)

	// RecommendationsForRoute returns hotel and attraction suggestions around
	// a favorited route, keyed by category.
	RecommendationsForRoute(ctx context.Context, userID, externalID string, limit int, language string) (map[string][]model.POIRecord, error)
}

type itineraryUseCaseImpl struct {
	movies       repository.MoviesRepository
	locations    repository.LocationsRepository
	favorites    repository.FavoritesRepository
	routeService service.FavoriteRouteService
}

func NewItineraryUseCase(
	movies repository.MoviesRepository,
	locations repository.LocationsRepository,
	favorites repository.FavoritesRepository,
	routeService service.FavoriteRouteService,
) ItineraryUseCase {
	return &itineraryUseCaseImpl{
		movies:       movies,
		locations:    locations,
		favorites:    favorites,
		routeService: routeService,
	}
}

func (u *itineraryUseCaseImpl) BuildForMovie(ctx context.Context, userID, movieID string) ([]*model.ItinerarySegment, error) {
	if _, err := u.movies.GetByID(ctx, movieID); err != nil {
		return nil, err
	}

	locations, err := u.locations.GetByMovieID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("loading locations for movie %s: %w", movieID, err)
	}

	segments, err := u.routeService.BuildItinerary(ctx, userID, locations)
	if err != nil {
		return nil, err
	}

	log.Printf("itinerary: movie %s produced %d segment(s) from %d location(s)", movieID, len(segments), len(locations))
	return segments, nil
}

func (u *itineraryUseCaseImpl) RecommendationsForRoute(ctx context.Context, userID, externalID string, limit int, language string) (map[string][]model.POIRecord, error) {
	segment, err := u.favoritedSegment(ctx, userID, externalID)
	if err != nil {
		return nil, err
	}

	return u.routeService.RecommendForSegment(ctx, segment, limit, language)
}

// favoritedSegment reconstructs a route segment from the user's favorite
// snapshot. Only favorited routes get recommendations.
func (u *itineraryUseCaseImpl) favoritedSegment(ctx context.Context, userID, externalID string) (*model.RouteSegment, error) {
	records, err := u.favorites.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading favorites for user %s: %w", userID, err)
	}

	for _, record := range records {
		if record.Type != model.FavoriteTypeRoute || record.ExternalID != externalID {
			continue
		}
		if len(record.Data) == 0 {
			return nil, fmt.Errorf("favorite route %s has no location snapshot", externalID)
		}
		return &model.RouteSegment{Members: record.Data, ExternalID: record.ExternalID}, nil
	}

	return nil, model.ErrFavoriteNotFound
}
