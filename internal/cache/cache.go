// Package cache holds the shared memoization stores used by the suggestion
// pipeline: place details by provider id and translations by language and
// source text. Both are append-only; a concurrent miss race may fetch twice
// and the last writer wins, which only costs a duplicate provider call.
package cache

import (
	"context"

	"github.com/halya-h/MovieMapUA/internal/domain/model"
)

// DetailStore memoizes detail-provider payloads by provider location id.
// Get returns nil, nil on a cache miss (not an error).
type DetailStore interface {
	Get(ctx context.Context, locationID string) (*model.PlaceDetail, error)
	Set(ctx context.Context, locationID string, detail *model.PlaceDetail) error
}

// TranslationStore memoizes translations keyed by (language, source text).
type TranslationStore interface {
	Get(ctx context.Context, lang, text string) (string, bool, error)
	Set(ctx context.Context, lang, text, translated string) error
}

func translationKey(lang, text string) string {
	return lang + ":" + text
}
