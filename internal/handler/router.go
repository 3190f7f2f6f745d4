package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handlers bundles every HTTP handler for route registration.
type Handlers struct {
	Movies      *MoviesHandler
	Locations   *LocationsHandler
	Comments    *CommentsHandler
	Favorites   *FavoritesHandler
	Itinerary   *ItineraryHandler
	Suggestions *SuggestionsHandler
}

// RegisterRoutes attaches all API routes to the router.
func RegisterRoutes(r *gin.Engine, h *Handlers) {
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "MovieMapUA"})
	})

	api := r.Group("/api")

	api.GET("/movies", h.Movies.ListMovies)
	api.POST("/movies", h.Movies.CreateMovie)
	api.GET("/movies/:id", h.Movies.GetMovie)
	api.PUT("/movies/:id", h.Movies.UpdateMovie)
	api.DELETE("/movies/:id", h.Movies.DeleteMovie)

	api.GET("/movies/:id/locations", h.Locations.ListByMovie)
	api.POST("/movies/:id/locations", h.Locations.CreateLocation)
	api.GET("/locations/nearby", h.Locations.GetNearby)
	api.GET("/locations/:id", h.Locations.GetLocation)
	api.PUT("/locations/:id", h.Locations.UpdateLocation)
	api.DELETE("/locations/:id", h.Locations.DeleteLocation)

	api.GET("/movies/:id/comments", h.Comments.ListByMovie)
	api.POST("/movies/:id/comments", h.Comments.AddComment)
	api.DELETE("/comments/:id", h.Comments.DeleteComment)

	api.GET("/favorites", h.Favorites.ListFavorites)
	api.POST("/favorites", h.Favorites.AddFavorite)
	api.DELETE("/favorites", h.Favorites.RemoveFavorite)

	api.GET("/movies/:id/itinerary", h.Itinerary.GetItinerary)
	api.GET("/routes/:externalId/suggestions", h.Itinerary.GetRouteSuggestions)

	api.GET("/suggestions", h.Suggestions.GetSuggestions)
}
