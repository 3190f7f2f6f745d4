package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/halya-h/MovieMapUA/internal/domain/model"
	"github.com/halya-h/MovieMapUA/internal/domain/service"
)

// SuggestionsHandler exposes the POI pipeline directly, for callers that
// want suggestions around an arbitrary point rather than a saved route.
type SuggestionsHandler struct {
	suggestions service.SuggestionService
}

func NewSuggestionsHandler(suggestions service.SuggestionService) *SuggestionsHandler {
	return &SuggestionsHandler{suggestions: suggestions}
}

// GetSuggestions GET /suggestions?lat=..&lng=..&category=hotels&radius_km=..&limit=..&lang=..
func (h *SuggestionsHandler) GetSuggestions(c *gin.Context) {
	anchor, ok := parseLatLng(c)
	if !ok {
		return
	}

	category := c.DefaultQuery("category", model.CategoryHotels)
	if !model.ValidCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "category must be 'hotels' or 'attractions'",
		})
		return
	}

	req := &model.SuggestionRequest{
		Anchor:   anchor,
		Category: category,
		Language: c.Query("lang"),
	}

	if raw := c.Query("radius_km"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_parameter",
				"message": "radius_km must be a positive number",
			})
			return
		}
		req.RadiusKm = parsed
	}

	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_parameter",
				"message": "limit must be a positive integer",
			})
			return
		}
		req.Limit = parsed
	}

	records, err := h.suggestions.Suggest(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to fetch suggestions")
		return
	}

	if records == nil {
		records = []model.POIRecord{}
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": records})
}
