package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/halya-h/MovieMapUA/internal/domain/model"
)

// respondError maps domain errors onto HTTP statuses. Unknown errors become
// 500s so callers never see raw provider bodies by accident.
func respondError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, model.ErrMovieNotFound),
		errors.Is(err, model.ErrLocationNotFound),
		errors.Is(err, model.ErrFavoriteNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not_found",
			"message": err.Error(),
		})
	case errors.Is(err, model.ErrFavoriteConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error":   "conflict",
			"message": err.Error(),
		})
	default:
		var provErr *model.ProviderError
		if errors.As(err, &provErr) {
			c.JSON(http.StatusBadGateway, gin.H{
				"error":   "upstream_error",
				"message": message + ": " + err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": message + ": " + err.Error(),
		})
	}
}

// userID extracts the caller identity from the X-User-ID header. An empty
// value means the request is anonymous.
func userID(c *gin.Context) string {
	return c.GetHeader("X-User-ID")
}

// requireUserID is userID for endpoints that cannot serve anonymous callers.
func requireUserID(c *gin.Context) (string, bool) {
	id := userID(c)
	if id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "missing_user",
			"message": "X-User-ID header is required",
		})
		return "", false
	}
	return id, true
}
