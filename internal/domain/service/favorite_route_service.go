package service

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/halya-h/MovieMapUA/internal/domain/model"
	"github.com/halya-h/MovieMapUA/internal/domain/repository"
)

// FavoriteRouteService bridges clustering output to the favorites store and
// the suggestion pipeline.
type FavoriteRouteService interface {
	// BuildItinerary clusters the locations, marks each segment favorited if
	// its identity is among the user's route favorites, and attaches a
	// driving summary per segment. userID may be empty for anonymous users.
	BuildItinerary(ctx context.Context, userID string, locations []*model.Location) ([]*model.ItinerarySegment, error)

	// FavoriteSegment snapshots the segment as a (type="route", externalId)
	// favorite. A duplicate identity yields model.ErrFavoriteConflict.
	FavoriteSegment(ctx context.Context, userID string, segment *model.RouteSegment) (*model.FavoriteRecord, error)

	// UnfavoriteSegment removes the favorite by identity. The caller is
	// responsible for clearing any displayed suggestions for that identity.
	UnfavoriteSegment(ctx context.Context, userID, externalID string) error

	// RecommendForSegment fetches suggestions around the segment's anchor,
	// once per category, keyed by category in the result.
	RecommendForSegment(ctx context.Context, segment *model.RouteSegment, limit int, language string) (map[string][]model.POIRecord, error)
}

type favoriteRouteService struct {
	clusterer   *RouteClusterer
	favorites   repository.FavoritesRepository
	directions  repository.DirectionsProvider
	suggestions SuggestionService
}

// NewFavoriteRouteService creates the orchestrator over the clusterer, the
// favorites collaborator, the routing provider and the suggestion pipeline.
func NewFavoriteRouteService(
	clusterer *RouteClusterer,
	favorites repository.FavoritesRepository,
	directions repository.DirectionsProvider,
	suggestions SuggestionService,
) FavoriteRouteService {
	return &favoriteRouteService{
		clusterer:   clusterer,
		favorites:   favorites,
		directions:  directions,
		suggestions: suggestions,
	}
}

func (s *favoriteRouteService) BuildItinerary(ctx context.Context, userID string, locations []*model.Location) ([]*model.ItinerarySegment, error) {
	segments := s.clusterer.Cluster(locations)
	if len(segments) == 0 {
		return []*model.ItinerarySegment{}, nil
	}

	favoriteIDs := make(map[string]struct{})
	if userID != "" {
		ids, err := s.favorites.ListRouteExternalIDs(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("loading route favorites for user %s: %w", userID, err)
		}
		for _, id := range ids {
			favoriteIDs[id] = struct{}{}
		}
	}

	result := make([]*model.ItinerarySegment, len(segments))
	var wg sync.WaitGroup

	for i, segment := range segments {
		_, isFavorite := favoriteIDs[segment.ExternalID]
		entry := &model.ItinerarySegment{
			ExternalID: segment.ExternalID,
			Name:       segment.DisplayName(),
			Members:    segment.Members,
			IsFavorite: isFavorite,
		}
		result[i] = entry

		wg.Add(1)
		go func(seg *model.RouteSegment, target *model.ItinerarySegment) {
			defer wg.Done()
			summary, err := s.directions.GetDrivingRoute(ctx, seg.Waypoints())
			if err != nil {
				// A segment without a driving summary is still displayable.
				log.Printf("itinerary: route summary failed for %s: %v", seg.ExternalID, err)
				return
			}
			target.Summary = summary
		}(segment, entry)
	}
	wg.Wait()

	return result, nil
}

func (s *favoriteRouteService) FavoriteSegment(ctx context.Context, userID string, segment *model.RouteSegment) (*model.FavoriteRecord, error) {
	if !segment.Routable() {
		return nil, fmt.Errorf("segment %s has fewer than 2 stops", segment.ExternalID)
	}

	record, err := s.favorites.Add(ctx, userID, model.NewRouteFavorite(segment))
	if err != nil {
		return nil, err
	}

	log.Printf("favorites: route %s saved for user %s", record.ExternalID, userID)
	return record, nil
}

func (s *favoriteRouteService) UnfavoriteSegment(ctx context.Context, userID, externalID string) error {
	if err := s.favorites.Remove(ctx, userID, model.FavoriteTypeRoute, externalID); err != nil {
		return err
	}
	log.Printf("favorites: route %s removed for user %s", externalID, userID)
	return nil
}

func (s *favoriteRouteService) RecommendForSegment(ctx context.Context, segment *model.RouteSegment, limit int, language string) (map[string][]model.POIRecord, error) {
	categories := []string{model.CategoryHotels, model.CategoryAttractions}

	type categoryResult struct {
		category string
		records  []model.POIRecord
		err      error
	}

	resultsChan := make(chan categoryResult, len(categories))
	var wg sync.WaitGroup

	for _, category := range categories {
		wg.Add(1)
		go func(cat string) {
			defer wg.Done()
			records, err := s.suggestions.Suggest(ctx, &model.SuggestionRequest{
				Anchor:   segment.Anchor(),
				Category: cat,
				Limit:    limit,
				Language: language,
			})
			resultsChan <- categoryResult{category: cat, records: records, err: err}
		}(category)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	recommendations := make(map[string][]model.POIRecord, len(categories))
	var firstErr error
	for result := range resultsChan {
		if result.err != nil {
			if firstErr == nil {
				firstErr = result.err
			}
			continue
		}
		recommendations[result.category] = result.records
	}

	// Surface the error only when every category failed; a degraded result
	// set is acceptable.
	if len(recommendations) == 0 && firstErr != nil {
		return nil, firstErr
	}

	return recommendations, nil
}
