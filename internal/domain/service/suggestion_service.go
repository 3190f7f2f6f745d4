package service

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/halya-h/MovieMapUA/internal/cache"
	"github.com/halya-h/MovieMapUA/internal/domain/helper"
	"github.com/halya-h/MovieMapUA/internal/domain/model"
	"github.com/halya-h/MovieMapUA/internal/domain/repository"
)

// maxEnrichmentConcurrency bounds the provider fan-out per request.
const maxEnrichmentConcurrency = 5

// SuggestionService assembles enriched, localized POI suggestions around an
// anchor point: nearby search, cached detail enrichment, display filtering,
// ranking, translation and photo lookup.
type SuggestionService interface {
	Suggest(ctx context.Context, req *model.SuggestionRequest) ([]model.POIRecord, error)
}

type suggestionService struct {
	places       repository.PlaceProvider
	translator   repository.TranslationProvider
	details      cache.DetailStore
	translations cache.TranslationStore
}

// NewSuggestionService wires the suggestion pipeline. The caches are shared
// across all invocations and are injected so tests can use fresh instances.
func NewSuggestionService(
	places repository.PlaceProvider,
	translator repository.TranslationProvider,
	details cache.DetailStore,
	translations cache.TranslationStore,
) SuggestionService {
	return &suggestionService{
		places:       places,
		translator:   translator,
		details:      details,
		translations: translations,
	}
}

// Suggest runs the aggregation pipeline. Only the initial nearby search can
// fail the whole request; every later enrichment step degrades per item.
// The returned records keep the review-count rank order, contain no
// duplicate provider ids, and never exceed req.Limit.
func (s *suggestionService) Suggest(ctx context.Context, req *model.SuggestionRequest) ([]model.POIRecord, error) {
	req.Normalize()

	hits, err := s.places.NearbySearch(ctx, req.Anchor, req.Category, req.RadiusKm, "en")
	if err != nil {
		return nil, fmt.Errorf("nearby search failed: %w", err)
	}

	ranked := make([]model.SearchHit, 0, len(hits))
	for _, hit := range hits {
		if hit.LocationID == "" {
			continue
		}
		ranked = append(ranked, hit)
	}
	helper.SortByReviewCount(ranked)

	details := s.fetchDetails(ctx, ranked)

	// Rank order survives the unordered fan-out because details are gathered
	// by original index, then filtered in that order.
	seen := make(map[string]struct{}, len(ranked))
	type rankedDetail struct {
		detail      *model.PlaceDetail
		reviewCount int
	}
	var survivors []rankedDetail
	for i, detail := range details {
		if !detail.Displayable() {
			continue
		}
		if _, dup := seen[detail.LocationID]; dup {
			continue
		}
		seen[detail.LocationID] = struct{}{}
		survivors = append(survivors, rankedDetail{detail: detail, reviewCount: ranked[i].ReviewCount})
		if len(survivors) == req.Limit {
			break
		}
	}

	records := make([]model.POIRecord, len(survivors))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxEnrichmentConcurrency)

	for i, item := range survivors {
		g.Go(func() error {
			detail := item.detail

			name := s.translateText(gCtx, detail.Name, req.Language)
			address := s.translateText(gCtx, detail.AddressText, req.Language)

			photoURL, photoErr := s.places.FirstLargePhotoURL(gCtx, detail.LocationID)
			if photoErr != nil {
				log.Printf("suggestion: photo lookup failed for %s: %v", detail.LocationID, photoErr)
				photoURL = nil
			}

			records[i] = model.POIRecord{
				ExternalID:  detail.LocationID,
				Name:        name,
				AddressText: address,
				PhotoURL:    photoURL,
				Rating:      detail.Rating,
				ReviewCount: item.reviewCount,
				DetailURL:   detail.WebURL,
			}
			return nil
		})
	}
	_ = g.Wait()

	return records, nil
}

// fetchDetails resolves the detail payload for every hit concurrently,
// recombining results by original index. Cache misses populate the shared
// detail cache unconditionally, even across categories; a failed fetch
// leaves a nil placeholder rather than failing the request.
func (s *suggestionService) fetchDetails(ctx context.Context, hits []model.SearchHit) []*model.PlaceDetail {
	details := make([]*model.PlaceDetail, len(hits))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxEnrichmentConcurrency)

	for i, hit := range hits {
		g.Go(func() error {
			cached, err := s.details.Get(gCtx, hit.LocationID)
			if err != nil {
				log.Printf("suggestion: detail cache read failed for %s: %v", hit.LocationID, err)
			}
			if cached != nil {
				details[i] = cached
				return nil
			}

			detail, err := s.places.Details(gCtx, hit.LocationID, "en")
			if err != nil {
				log.Printf("suggestion: detail fetch failed for %s: %v", hit.LocationID, err)
				return nil
			}

			if err := s.details.Set(gCtx, hit.LocationID, detail); err != nil {
				log.Printf("suggestion: detail cache write failed for %s: %v", hit.LocationID, err)
			}
			details[i] = detail
			return nil
		})
	}
	_ = g.Wait()

	return details
}

// translateText translates via the shared (language, text) cache. Empty
// source text short-circuits; any provider failure falls back to the source
// text so localization never drops an item.
func (s *suggestionService) translateText(ctx context.Context, text, targetLang string) string {
	if text == "" {
		return ""
	}

	if cached, ok, err := s.translations.Get(ctx, targetLang, text); err != nil {
		log.Printf("suggestion: translation cache read failed: %v", err)
	} else if ok {
		return cached
	}

	translated, err := s.translator.Translate(ctx, text, targetLang)
	if err != nil {
		log.Printf("suggestion: translation failed, keeping source text: %v", err)
		return text
	}

	if err := s.translations.Set(ctx, targetLang, text, translated); err != nil {
		log.Printf("suggestion: translation cache write failed: %v", err)
	}
	return translated
}
