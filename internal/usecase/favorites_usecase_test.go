package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halya-h/MovieMapUA/internal/domain/model"
	"github.com/halya-h/MovieMapUA/internal/usecase"
)

// fakeMovies serves a fixed catalog keyed by id.
type fakeMovies struct {
	byID map[string]*model.Movie
}

func (f *fakeMovies) List(ctx context.Context) ([]model.Movie, error) { return nil, nil }
func (f *fakeMovies) GetByID(ctx context.Context, id string) (*model.Movie, error) {
	if m, ok := f.byID[id]; ok {
		return m, nil
	}
	return nil, model.ErrMovieNotFound
}
func (f *fakeMovies) SearchByTitle(ctx context.Context, q string) ([]model.Movie, error) {
	return nil, nil
}
func (f *fakeMovies) Create(ctx context.Context, m *model.Movie) error { return nil }
func (f *fakeMovies) Update(ctx context.Context, m *model.Movie) error { return nil }
func (f *fakeMovies) Delete(ctx context.Context, id string) error      { return nil }

// fakeFavorites enforces (type, key) uniqueness in memory.
type fakeFavorites struct {
	records []*model.FavoriteRecord
}

func (f *fakeFavorites) Exists(ctx context.Context, userID, favType, key string) (bool, error) {
	for _, r := range f.records {
		if r.Type == favType && r.Key() == key {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeFavorites) Add(ctx context.Context, userID string, record *model.FavoriteRecord) (*model.FavoriteRecord, error) {
	if ok, _ := f.Exists(ctx, userID, record.Type, record.Key()); ok {
		return nil, model.ErrFavoriteConflict
	}
	f.records = append(f.records, record)
	return record, nil
}

func (f *fakeFavorites) Remove(ctx context.Context, userID, favType, key string) error {
	for i, r := range f.records {
		if r.Type == favType && r.Key() == key {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return model.ErrFavoriteNotFound
}

func (f *fakeFavorites) ListByUser(ctx context.Context, userID string) ([]*model.FavoriteRecord, error) {
	return f.records, nil
}

func (f *fakeFavorites) ListRouteExternalIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	for _, r := range f.records {
		if r.Type == model.FavoriteTypeRoute {
			ids = append(ids, r.ExternalID)
		}
	}
	return ids, nil
}

// fakeRouteService records FavoriteSegment/UnfavoriteSegment calls, backed by
// the same favorites store the usecase uses.
type fakeRouteService struct {
	favorites *fakeFavorites
}

func (f *fakeRouteService) BuildItinerary(ctx context.Context, userID string, locations []*model.Location) ([]*model.ItinerarySegment, error) {
	return nil, nil
}

func (f *fakeRouteService) FavoriteSegment(ctx context.Context, userID string, segment *model.RouteSegment) (*model.FavoriteRecord, error) {
	return f.favorites.Add(ctx, userID, model.NewRouteFavorite(segment))
}

func (f *fakeRouteService) UnfavoriteSegment(ctx context.Context, userID, externalID string) error {
	return f.favorites.Remove(ctx, userID, model.FavoriteTypeRoute, externalID)
}

func (f *fakeRouteService) RecommendForSegment(ctx context.Context, segment *model.RouteSegment, limit int, language string) (map[string][]model.POIRecord, error) {
	return nil, nil
}

func newFavoritesFixture() (usecase.FavoritesUseCase, *fakeFavorites) {
	favorites := &fakeFavorites{}
	movies := &fakeMovies{byID: map[string]*model.Movie{
		"m1": {ID: "m1", Title: "Shadows of Forgotten Ancestors"},
	}}
	return usecase.NewFavoritesUseCase(movies, favorites, &fakeRouteService{favorites: favorites}), favorites
}

func routeRequest() *model.AddFavoriteRequest {
	return &model.AddFavoriteRequest{
		Type: model.FavoriteTypeRoute,
		Data: []*model.Location{
			{ID: "a", Title: "A", Coordinates: model.GeoPoint{Lat: 50.45, Lng: 30.52}},
			{ID: "b", Title: "B", Coordinates: model.GeoPoint{Lat: 50.46, Lng: 30.53}},
		},
	}
}

func TestAdd_MovieFavorite(t *testing.T) {
	uc, favorites := newFavoritesFixture()

	record, err := uc.Add(context.Background(), "user-1", &model.AddFavoriteRequest{
		Type:    model.FavoriteTypeMovie,
		MovieID: "m1",
	})

	require.NoError(t, err)
	assert.Equal(t, "m1", record.Key())
	assert.Len(t, favorites.records, 1)
}

func TestAdd_MovieFavoriteRequiresExistingMovie(t *testing.T) {
	uc, _ := newFavoritesFixture()

	_, err := uc.Add(context.Background(), "user-1", &model.AddFavoriteRequest{
		Type:    model.FavoriteTypeMovie,
		MovieID: "missing",
	})

	assert.ErrorIs(t, err, model.ErrMovieNotFound)
}

func TestAdd_RouteFavoriteDerivesIdentityFromSnapshot(t *testing.T) {
	uc, _ := newFavoritesFixture()

	record, err := uc.Add(context.Background(), "user-1", routeRequest())

	require.NoError(t, err)
	assert.Equal(t, "a_b", record.ExternalID)
	assert.Len(t, record.Data, 2)
}

func TestAdd_DuplicateYieldsConflict(t *testing.T) {
	uc, _ := newFavoritesFixture()
	ctx := context.Background()

	_, err := uc.Add(ctx, "user-1", routeRequest())
	require.NoError(t, err)

	_, err = uc.Add(ctx, "user-1", routeRequest())
	assert.ErrorIs(t, err, model.ErrFavoriteConflict)
}

func TestAdd_HotelFavoriteRequiresExternalID(t *testing.T) {
	uc, _ := newFavoritesFixture()

	_, err := uc.Add(context.Background(), "user-1", &model.AddFavoriteRequest{
		Type: model.FavoriteTypeHotel,
		Name: "Hotel One",
	})

	require.Error(t, err)
}

func TestRemove_RouteFavorite(t *testing.T) {
	uc, _ := newFavoritesFixture()
	ctx := context.Background()

	_, err := uc.Add(ctx, "user-1", routeRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Remove(ctx, "user-1", &model.RemoveFavoriteRequest{
		Type:       model.FavoriteTypeRoute,
		ExternalID: "a_b",
	}))

	err = uc.Remove(ctx, "user-1", &model.RemoveFavoriteRequest{
		Type:       model.FavoriteTypeRoute,
		ExternalID: "a_b",
	})
	assert.ErrorIs(t, err, model.ErrFavoriteNotFound)
}
