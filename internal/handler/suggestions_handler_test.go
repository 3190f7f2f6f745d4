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

type stubSuggestionService struct {
	err     error
	records []model.POIRecord
	gotReq  *model.SuggestionRequest
}

func (s *stubSuggestionService) Suggest(ctx context.Context, req *model.SuggestionRequest) ([]model.POIRecord, error) {
	s.gotReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

func suggestionsRouter(svc *stubSuggestionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/suggestions", handler.NewSuggestionsHandler(svc).GetSuggestions)
	return r
}

func TestGetSuggestions(t *testing.T) {
	svc := &stubSuggestionService{
		records: []model.POIRecord{{ExternalID: "p1", Name: "Готель"}},
	}
	r := suggestionsRouter(svc)

	req := httptest.NewRequest(http.MethodGet,
		"/suggestions?lat=50.45&lng=30.52&category=attractions&radius_km=10&limit=5&lang=uk", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.gotReq)
	assert.Equal(t, model.CategoryAttractions, svc.gotReq.Category)
	assert.Equal(t, 10.0, svc.gotReq.RadiusKm)
	assert.Equal(t, 5, svc.gotReq.Limit)
	assert.Equal(t, "uk", svc.gotReq.Language)
	assert.Contains(t, w.Body.String(), `"external_id":"p1"`)
}

func TestGetSuggestions_MissingCoordinates(t *testing.T) {
	r := suggestionsRouter(&stubSuggestionService{})

	req := httptest.NewRequest(http.MethodGet, "/suggestions?category=hotels", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSuggestions_CoordinatesOutOfRange(t *testing.T) {
	r := suggestionsRouter(&stubSuggestionService{})

	req := httptest.NewRequest(http.MethodGet, "/suggestions?lat=95&lng=30.52", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSuggestions_UnknownCategory(t *testing.T) {
	r := suggestionsRouter(&stubSuggestionService{})

	req := httptest.NewRequest(http.MethodGet, "/suggestions?lat=50.45&lng=30.52&category=museums", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSuggestions_ProviderErrorMapsTo502(t *testing.T) {
	svc := &stubSuggestionService{
		err: &model.ProviderError{Provider: "tripadvisor nearby_search", StatusCode: 503},
	}
	r := suggestionsRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/suggestions?lat=50.45&lng=30.52", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
