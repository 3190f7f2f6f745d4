package model

import (
	"errors"
	"fmt"
)

var (
	// ErrFavoriteConflict means the (type, key) pair is already bookmarked.
	ErrFavoriteConflict = errors.New("item already in favorites")

	// ErrFavoriteNotFound means no favorite exists for the (type, key) pair.
	ErrFavoriteNotFound = errors.New("favorite not found")

	ErrMovieNotFound    = errors.New("movie not found")
	ErrLocationNotFound = errors.New("location not found")
)

// ProviderError is a hard failure of an external provider call. Only the
// initial nearby-search can abort a whole suggestion request with it; all
// later enrichment steps degrade per item instead.
type ProviderError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", e.Provider, e.StatusCode, e.Body)
}
