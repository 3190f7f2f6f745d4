package model

import "time"

// Favorite types. A favorite is keyed by (type, movieId) for movies and by
// (type, externalId) for everything else; at most one favorite may exist per
// distinct key per user.
const (
	FavoriteTypeMovie      = "movie"
	FavoriteTypeHotel      = "hotel"
	FavoriteTypeRoute      = "route"
	FavoriteTypeAttraction = "attraction"
)

// ValidFavoriteType reports whether t is one of the known favorite types.
func ValidFavoriteType(t string) bool {
	switch t {
	case FavoriteTypeMovie, FavoriteTypeHotel, FavoriteTypeRoute, FavoriteTypeAttraction:
		return true
	}
	return false
}

// FavoriteRecord is one bookmarked item of a user. Type discriminates which
// fields are populated: movie favorites carry MovieID only, the rest carry
// the external snapshot fields.
type FavoriteRecord struct {
	ID         string      `json:"id" firestore:"id"`
	Type       string      `json:"type" firestore:"type"`
	MovieID    string      `json:"movie_id,omitempty" firestore:"movie_id,omitempty"`
	ExternalID string      `json:"external_id,omitempty" firestore:"external_id,omitempty"`
	Name       string      `json:"name,omitempty" firestore:"name,omitempty"`
	Location   *GeoPoint   `json:"location,omitempty" firestore:"location,omitempty"`
	Data       []*Location `json:"data,omitempty" firestore:"data,omitempty"`
	CreatedAt  time.Time   `json:"created_at" firestore:"created_at"`
}

// Key returns the uniqueness key for the record's type.
func (f *FavoriteRecord) Key() string {
	if f.Type == FavoriteTypeMovie {
		return f.MovieID
	}
	return f.ExternalID
}

// NewRouteFavorite snapshots a route segment as a favorite. The snapshot
// carries the member locations so the route survives later re-clustering.
func NewRouteFavorite(segment *RouteSegment) *FavoriteRecord {
	anchor := segment.Anchor()
	return &FavoriteRecord{
		Type:       FavoriteTypeRoute,
		ExternalID: segment.ExternalID,
		Name:       segment.DisplayName(),
		Location:   &anchor,
		Data:       segment.Members,
	}
}

// AddFavoriteRequest is the payload for bookmarking an item.
type AddFavoriteRequest struct {
	Type       string      `json:"type" validate:"required,oneof=movie hotel route attraction"`
	MovieID    string      `json:"movie_id,omitempty"`
	ExternalID string      `json:"external_id,omitempty"`
	Name       string      `json:"name,omitempty"`
	Location   *GeoPoint   `json:"location,omitempty"`
	Data       []*Location `json:"data,omitempty"`
}

// ToRecord converts the request into an unsaved favorite record.
func (r *AddFavoriteRequest) ToRecord() *FavoriteRecord {
	return &FavoriteRecord{
		Type:       r.Type,
		MovieID:    r.MovieID,
		ExternalID: r.ExternalID,
		Name:       r.Name,
		Location:   r.Location,
		Data:       r.Data,
	}
}

// RemoveFavoriteRequest is the payload for removing a bookmark.
type RemoveFavoriteRequest struct {
	Type       string `json:"type" validate:"required,oneof=movie hotel route attraction"`
	MovieID    string `json:"movie_id,omitempty"`
	ExternalID string `json:"external_id,omitempty"`
}

// Key returns the uniqueness key for the request's type.
func (r *RemoveFavoriteRequest) Key() string {
	if r.Type == FavoriteTypeMovie {
		return r.MovieID
	}
	return r.ExternalID
}
