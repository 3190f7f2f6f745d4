package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/halya-h/MovieMapUA/internal/domain/model"
	"github.com/halya-h/MovieMapUA/internal/usecase"
)

// ItineraryHandler serves route clustering output and the recommendations
// attached to favorited routes.
type ItineraryHandler struct {
	itineraryUseCase usecase.ItineraryUseCase
}

func NewItineraryHandler(itineraryUseCase usecase.ItineraryUseCase) *ItineraryHandler {
	return &ItineraryHandler{itineraryUseCase: itineraryUseCase}
}

// GetItinerary GET /movies/:id/itinerary - driving segments for a movie's
// locations. Anonymous callers get segments without favorite flags.
func (h *ItineraryHandler) GetItinerary(c *gin.Context) {
	segments, err := h.itineraryUseCase.BuildForMovie(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to build itinerary")
		return
	}

	c.JSON(http.StatusOK, gin.H{"segments": segments})
}

// GetRouteSuggestions GET /routes/:externalId/suggestions - hotels and
// attractions around a favorited route, keyed by category.
func (h *ItineraryHandler) GetRouteSuggestions(c *gin.Context) {
	id, ok := requireUserID(c)
	if !ok {
		return
	}

	limit := model.DefaultSuggestionLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_parameter",
				"message": "limit must be a positive integer",
			})
			return
		}
		limit = parsed
	}

	language := c.DefaultQuery("lang", model.DefaultSuggestionLang)

	recommendations, err := h.itineraryUseCase.RecommendationsForRoute(
		c.Request.Context(), id, c.Param("externalId"), limit, language)
	if err != nil {
		respondError(c, err, "Failed to fetch route suggestions")
		return
	}

	c.JSON(http.StatusOK, recommendations)
}
