package repository

import (
	"context"

	"github.com/halya-h/MovieMapUA/internal/domain/model"
)

// PlaceProvider is the external geodata API consumed by the suggestion
// pipeline. NearbySearch failing is a hard error (*model.ProviderError);
// Details and FirstLargePhotoURL failures are soft, per-item.
type PlaceProvider interface {
	NearbySearch(ctx context.Context, anchor model.GeoPoint, category string, radiusKm float64, language string) ([]model.SearchHit, error)
	Details(ctx context.Context, locationID, language string) (*model.PlaceDetail, error)
	FirstLargePhotoURL(ctx context.Context, locationID string) (*string, error)
}

// TranslationProvider translates display text into the target language.
type TranslationProvider interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}
