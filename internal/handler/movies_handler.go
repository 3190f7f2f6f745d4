package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/halya-h/MovieMapUA/internal/domain/model"
	"github.com/halya-h/MovieMapUA/internal/domain/repository"
)

// MoviesHandler serves the movie catalog endpoints.
type MoviesHandler struct {
	movies repository.MoviesRepository
}

func NewMoviesHandler(movies repository.MoviesRepository) *MoviesHandler {
	return &MoviesHandler{movies: movies}
}

// ListMovies GET /movies - full catalog, or title search with ?q=
func (h *MoviesHandler) ListMovies(c *gin.Context) {
	query := c.Query("q")

	var (
		movies []model.Movie
		err    error
	)
	if query != "" {
		movies, err = h.movies.SearchByTitle(c.Request.Context(), query)
	} else {
		movies, err = h.movies.List(c.Request.Context())
	}
	if err != nil {
		respondError(c, err, "Failed to list movies")
		return
	}

	c.JSON(http.StatusOK, movies)
}

// GetMovie GET /movies/:id
func (h *MoviesHandler) GetMovie(c *gin.Context) {
	movie, err := h.movies.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch movie")
		return
	}

	c.JSON(http.StatusOK, movie)
}

// CreateMovie POST /movies
func (h *MoviesHandler) CreateMovie(c *gin.Context) {
	var movie model.Movie
	if err := c.ShouldBindJSON(&movie); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	if movie.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "title is required",
		})
		return
	}

	movie.UserID = userID(c)
	if err := h.movies.Create(c.Request.Context(), &movie); err != nil {
		respondError(c, err, "Failed to create movie")
		return
	}

	c.JSON(http.StatusCreated, movie)
}

// UpdateMovie PUT /movies/:id
func (h *MoviesHandler) UpdateMovie(c *gin.Context) {
	var movie model.Movie
	if err := c.ShouldBindJSON(&movie); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	movie.ID = c.Param("id")
	if _, err := h.movies.GetByID(c.Request.Context(), movie.ID); err != nil {
		respondError(c, err, "Failed to fetch movie")
		return
	}

	if err := h.movies.Update(c.Request.Context(), &movie); err != nil {
		respondError(c, err, "Failed to update movie")
		return
	}

	c.JSON(http.StatusOK, movie)
}

// DeleteMovie DELETE /movies/:id
func (h *MoviesHandler) DeleteMovie(c *gin.Context) {
	if err := h.movies.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete movie")
		return
	}

	c.Status(http.StatusNoContent)
}
