package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halya-h/MovieMapUA/internal/domain/model"
	"github.com/halya-h/MovieMapUA/internal/handler"
)

type stubItineraryUseCase struct {
	buildErr   error
	segments   []*model.ItinerarySegment
	gotUserID  string
	gotMovieID string
	gotLimit   int
	gotLang    string
}

func (s *stubItineraryUseCase) BuildForMovie(ctx context.Context, userID, movieID string) ([]*model.ItinerarySegment, error) {
	s.gotUserID = userID
	s.gotMovieID = movieID
	if s.buildErr != nil {
		return nil, s.buildErr
	}
	return s.segments, nil
}

func (s *stubItineraryUseCase) RecommendationsForRoute(ctx context.Context, userID, externalID string, limit int, language string) (map[string][]model.POIRecord, error) {
	s.gotUserID = userID
	s.gotLimit = limit
	s.gotLang = language
	return map[string][]model.POIRecord{
		model.CategoryHotels:      {},
		model.CategoryAttractions: {},
	}, nil
}

func itineraryRouter(uc *stubItineraryUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewItineraryHandler(uc)
	r.GET("/movies/:id/itinerary", h.GetItinerary)
	r.GET("/routes/:externalId/suggestions", h.GetRouteSuggestions)
	return r
}

func TestGetItinerary(t *testing.T) {
	uc := &stubItineraryUseCase{
		segments: []*model.ItinerarySegment{{ExternalID: "a_b", Name: "Route A - B"}},
	}
	r := itineraryRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/movies/m1/itinerary", nil)
	req.Header.Set("X-User-ID", "user-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "m1", uc.gotMovieID)
	assert.Equal(t, "user-1", uc.gotUserID)
	assert.Contains(t, w.Body.String(), `"external_id":"a_b"`)
}

func TestGetItinerary_AnonymousAllowed(t *testing.T) {
	uc := &stubItineraryUseCase{segments: []*model.ItinerarySegment{}}
	r := itineraryRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/movies/m1/itinerary", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, uc.gotUserID)
}

func TestGetItinerary_UnknownMovieMapsTo404(t *testing.T) {
	r := itineraryRouter(&stubItineraryUseCase{buildErr: model.ErrMovieNotFound})

	req := httptest.NewRequest(http.MethodGet, "/movies/unknown/itinerary", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRouteSuggestions_Defaults(t *testing.T) {
	uc := &stubItineraryUseCase{}
	r := itineraryRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/routes/a_b/suggestions", nil)
	req.Header.Set("X-User-ID", "user-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.DefaultSuggestionLimit, uc.gotLimit)
	assert.Equal(t, model.DefaultSuggestionLang, uc.gotLang)
}

func TestGetRouteSuggestions_RequiresUser(t *testing.T) {
	r := itineraryRouter(&stubItineraryUseCase{})

	req := httptest.NewRequest(http.MethodGet, "/routes/a_b/suggestions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetRouteSuggestions_InvalidLimit(t *testing.T) {
	r := itineraryRouter(&stubItineraryUseCase{})

	req := httptest.NewRequest(http.MethodGet, "/routes/a_b/suggestions?limit=zero", nil)
	req.Header.Set("X-User-ID", "user-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
