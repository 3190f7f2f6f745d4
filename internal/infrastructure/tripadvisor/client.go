// Package tripadvisor implements the nearby-search, detail and photo
// providers on top of the TripAdvisor content API.
package tripadvisor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/halya-h/MovieMapUA/internal/domain/model"
)

const defaultBaseURL = "https://api.content.tripadvisor.com/api/v1"

// Client calls the TripAdvisor content API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a client with the given API key.
func NewClient(apiKey string) *Client {
	return NewClientWithURL(defaultBaseURL, apiKey)
}

// NewClientWithURL constructs a client pointing at a custom base URL (for tests).
func NewClientWithURL(baseURL, apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// --- wire structs; the API serializes numbers as strings ---

type nearbyResponse struct {
	Data []nearbyHit `json:"data"`
}

type nearbyHit struct {
	LocationID string `json:"location_id"`
	Name       string `json:"name"`
	NumReviews string `json:"num_reviews"`
}

type detailResponse struct {
	LocationID string `json:"location_id"`
	Name       string `json:"name"`
	Rating     string `json:"rating"`
	NumReviews string `json:"num_reviews"`
	WebURL     string `json:"web_url"`
	AddressObj struct {
		AddressString string `json:"address_string"`
	} `json:"address_obj"`
}

type photosResponse struct {
	Data []struct {
		Images struct {
			Large struct {
				URL string `json:"url"`
			} `json:"large"`
		} `json:"images"`
	} `json:"data"`
}

// NearbySearch lists places of the category around the anchor point.
// A non-2xx response is a hard failure surfaced as *model.ProviderError.
func (c *Client) NearbySearch(ctx context.Context, anchor model.GeoPoint, category string, radiusKm float64, language string) ([]model.SearchHit, error) {
	params := url.Values{}
	params.Set("latLong", fmt.Sprintf("%.6f,%.6f", anchor.Lat, anchor.Lng))
	params.Set("radius", strconv.FormatFloat(radiusKm, 'f', -1, 64))
	params.Set("radiusUnit", "km")
	params.Set("category", category)
	params.Set("language", language)
	params.Set("key", c.apiKey)

	body, err := c.get(ctx, fmt.Sprintf("%s/location/nearby_search?%s", c.baseURL, params.Encode()), "tripadvisor nearby_search")
	if err != nil {
		return nil, err
	}

	var resp nearbyResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding nearby_search response: %w", err)
	}

	hits := make([]model.SearchHit, 0, len(resp.Data))
	for _, hit := range resp.Data {
		reviews, _ := strconv.Atoi(hit.NumReviews) // missing count ranks as zero
		hits = append(hits, model.SearchHit{
			LocationID:  hit.LocationID,
			Name:        hit.Name,
			ReviewCount: reviews,
		})
	}
	return hits, nil
}

// Details fetches the detail payload for one place.
func (c *Client) Details(ctx context.Context, locationID, language string) (*model.PlaceDetail, error) {
	params := url.Values{}
	params.Set("language", language)
	params.Set("key", c.apiKey)

	body, err := c.get(ctx, fmt.Sprintf("%s/location/%s/details?%s", c.baseURL, locationID, params.Encode()), "tripadvisor details")
	if err != nil {
		return nil, err
	}

	var resp detailResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding details response for %s: %w", locationID, err)
	}

	rating, _ := strconv.ParseFloat(resp.Rating, 64)
	reviews, _ := strconv.Atoi(resp.NumReviews)

	return &model.PlaceDetail{
		LocationID:  resp.LocationID,
		Name:        resp.Name,
		AddressText: resp.AddressObj.AddressString,
		Rating:      rating,
		ReviewCount: reviews,
		WebURL:      resp.WebURL,
	}, nil
}

// FirstLargePhotoURL returns the first large photo URL for a place, or nil
// when the place has no photos.
func (c *Client) FirstLargePhotoURL(ctx context.Context, locationID string) (*string, error) {
	params := url.Values{}
	params.Set("language", "en")
	params.Set("key", c.apiKey)

	body, err := c.get(ctx, fmt.Sprintf("%s/location/%s/photos?%s", c.baseURL, locationID, params.Encode()), "tripadvisor photos")
	if err != nil {
		return nil, err
	}

	var resp photosResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding photos response for %s: %w", locationID, err)
	}

	if len(resp.Data) == 0 || resp.Data[0].Images.Large.URL == "" {
		return nil, nil
	}
	photoURL := resp.Data[0].Images.Large.URL
	return &photoURL, nil
}

func (c *Client) get(ctx context.Context, rawURL, provider string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating %s request: %w", provider, err)
	}
	req.Header.Set("X-TripAdvisor-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", provider, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", provider, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &model.ProviderError{
			Provider:   provider,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return body, nil
}
