package model

// Suggestion categories understood by the nearby-search provider.
const (
	CategoryHotels      = "hotels"
	CategoryAttractions = "attractions"
)

// ValidCategory reports whether c is a supported suggestion category.
func ValidCategory(c string) bool {
	return c == CategoryHotels || c == CategoryAttractions
}

// Defaults for a suggestion request. Limits are caller-configurable: the
// inline route panel asks for 3, the dedicated recommendations panel for 5.
const (
	DefaultSuggestionRadiusKm = 5.0
	DefaultSuggestionLimit    = 3
	DefaultSuggestionLang     = "uk"
)

// SuggestionRequest asks for enriched POIs around a single anchor point.
type SuggestionRequest struct {
	Anchor   GeoPoint `json:"anchor"`
	Category string   `json:"category"`
	RadiusKm float64  `json:"radius_km"`
	Limit    int      `json:"limit"`
	Language string   `json:"language"`
}

// Normalize fills unset fields with the defaults.
func (r *SuggestionRequest) Normalize() {
	if r.Category == "" {
		r.Category = CategoryHotels
	}
	if r.RadiusKm <= 0 {
		r.RadiusKm = DefaultSuggestionRadiusKm
	}
	if r.Limit <= 0 {
		r.Limit = DefaultSuggestionLimit
	}
	if r.Language == "" {
		r.Language = DefaultSuggestionLang
	}
}

// SearchHit is one raw result of the nearby-search provider.
type SearchHit struct {
	LocationID  string `json:"location_id"`
	Name        string `json:"name"`
	ReviewCount int    `json:"num_reviews"`
}

// PlaceDetail is the detail-provider payload for one place. Name, Rating and
// WebURL are mandatory for display; records missing any of them are dropped.
type PlaceDetail struct {
	LocationID  string  `json:"location_id"`
	Name        string  `json:"name"`
	AddressText string  `json:"address_text"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"num_reviews"`
	WebURL      string  `json:"web_url"`
}

// Displayable reports whether the detail has all mandatory display fields.
func (d *PlaceDetail) Displayable() bool {
	return d != nil && d.Name != "" && d.Rating != 0 && d.WebURL != ""
}

// POIRecord is one fully enriched, localized suggestion. Ephemeral: rebuilt
// on every request, never persisted by the engine.
type POIRecord struct {
	ExternalID  string  `json:"external_id"`
	Name        string  `json:"name"`
	AddressText string  `json:"address_text"`
	PhotoURL    *string `json:"photo_url,omitempty"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
	DetailURL   string  `json:"detail_url"`
}
