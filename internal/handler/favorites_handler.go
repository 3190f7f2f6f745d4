package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/halya-h/MovieMapUA/internal/domain/model"
	"github.com/halya-h/MovieMapUA/internal/usecase"
)

// FavoritesHandler serves the per-user bookmark endpoints. All of them
// identify the caller through the X-User-ID header.
type FavoritesHandler struct {
	favoritesUseCase usecase.FavoritesUseCase
}

func NewFavoritesHandler(favoritesUseCase usecase.FavoritesUseCase) *FavoritesHandler {
	return &FavoritesHandler{favoritesUseCase: favoritesUseCase}
}

// ListFavorites GET /favorites
func (h *FavoritesHandler) ListFavorites(c *gin.Context) {
	id, ok := requireUserID(c)
	if !ok {
		return
	}

	favorites, err := h.favoritesUseCase.List(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to list favorites")
		return
	}

	if favorites == nil {
		favorites = []*model.FavoriteRecord{}
	}
	c.JSON(http.StatusOK, favorites)
}

// AddFavorite POST /favorites
func (h *FavoritesHandler) AddFavorite(c *gin.Context) {
	id, ok := requireUserID(c)
	if !ok {
		return
	}

	var req model.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	if !model.ValidFavoriteType(req.Type) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "type must be one of: movie, hotel, route, attraction",
		})
		return
	}

	record, err := h.favoritesUseCase.Add(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "Failed to add favorite")
		return
	}

	c.JSON(http.StatusCreated, record)
}

// RemoveFavorite DELETE /favorites
func (h *FavoritesHandler) RemoveFavorite(c *gin.Context) {
	id, ok := requireUserID(c)
	if !ok {
		return
	}

	var req model.RemoveFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	if !model.ValidFavoriteType(req.Type) || req.Key() == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "a valid type and its key (movie_id or external_id) are required",
		})
		return
	}

	if err := h.favoritesUseCase.Remove(c.Request.Context(), id, &req); err != nil {
		respondError(c, err, "Failed to remove favorite")
		return
	}

	c.Status(http.StatusNoContent)
}
