package tripadvisor_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halya-h/MovieMapUA/internal/domain/model"
	"github.com/halya-h/MovieMapUA/internal/infrastructure/tripadvisor"
)

func TestNearbySearch(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/location/nearby_search", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-TripAdvisor-API-Key"))
		gotQuery = map[string]string{
			"latLong":    r.URL.Query().Get("latLong"),
			"radius":     r.URL.Query().Get("radius"),
			"radiusUnit": r.URL.Query().Get("radiusUnit"),
			"category":   r.URL.Query().Get("category"),
		}
		w.Write([]byte(`{"data":[
			{"location_id":"123","name":"Hotel One","num_reviews":"42"},
			{"location_id":"456","name":"Hotel Two","num_reviews":""}
		]}`))
	}))
	defer server.Close()

	client := tripadvisor.NewClientWithURL(server.URL, "test-key")
	hits, err := client.NearbySearch(context.Background(),
		model.GeoPoint{Lat: 50.4501, Lng: 30.5234}, "hotels", 5, "en")

	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Equal(t, model.SearchHit{LocationID: "123", Name: "Hotel One", ReviewCount: 42}, hits[0])
	assert.Equal(t, 0, hits[1].ReviewCount, "a missing review count ranks as zero")

	assert.Equal(t, "50.450100,30.523400", gotQuery["latLong"])
	assert.Equal(t, "5", gotQuery["radius"])
	assert.Equal(t, "km", gotQuery["radiusUnit"])
	assert.Equal(t, "hotels", gotQuery["category"])
}

func TestNearbySearch_ErrorStatusYieldsProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := tripadvisor.NewClientWithURL(server.URL, "test-key")
	_, err := client.NearbySearch(context.Background(), model.GeoPoint{Lat: 50, Lng: 30}, "hotels", 5, "en")

	var provErr *model.ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, http.StatusTooManyRequests, provErr.StatusCode)
	assert.Contains(t, provErr.Body, "rate limited")
}

func TestDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/location/123/details", r.URL.Path)
		w.Write([]byte(`{
			"location_id":"123",
			"name":"Hotel One",
			"rating":"4.5",
			"num_reviews":"42",
			"web_url":"https://ta.example.com/123",
			"address_obj":{"address_string":"Khreshchatyk St 1, Kyiv"}
		}`))
	}))
	defer server.Close()

	client := tripadvisor.NewClientWithURL(server.URL, "test-key")
	detail, err := client.Details(context.Background(), "123", "en")

	require.NoError(t, err)
	assert.Equal(t, "123", detail.LocationID)
	assert.Equal(t, "Hotel One", detail.Name)
	assert.Equal(t, 4.5, detail.Rating)
	assert.Equal(t, 42, detail.ReviewCount)
	assert.Equal(t, "https://ta.example.com/123", detail.WebURL)
	assert.Equal(t, "Khreshchatyk St 1, Kyiv", detail.AddressText)
	assert.True(t, detail.Displayable())
}

func TestFirstLargePhotoURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/location/123/photos", r.URL.Path)
		w.Write([]byte(`{"data":[
			{"images":{"large":{"url":"https://img.example.com/first.jpg"}}},
			{"images":{"large":{"url":"https://img.example.com/second.jpg"}}}
		]}`))
	}))
	defer server.Close()

	client := tripadvisor.NewClientWithURL(server.URL, "test-key")
	photoURL, err := client.FirstLargePhotoURL(context.Background(), "123")

	require.NoError(t, err)
	require.NotNil(t, photoURL)
	assert.Equal(t, "https://img.example.com/first.jpg", *photoURL)
}

func TestFirstLargePhotoURL_NoPhotos(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client := tripadvisor.NewClientWithURL(server.URL, "test-key")
	photoURL, err := client.FirstLargePhotoURL(context.Background(), "123")

	require.NoError(t, err)
	assert.Nil(t, photoURL)
}
