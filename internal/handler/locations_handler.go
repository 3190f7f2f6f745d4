package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/halya-h/MovieMapUA/internal/domain/model"
	"github.com/halya-h/MovieMapUA/internal/domain/repository"
)

// LocationsHandler serves filming location endpoints, including the PostGIS
// radius search.
type LocationsHandler struct {
	locations repository.LocationsRepository
	nearby    repository.NearbyLocationsRepository
}

func NewLocationsHandler(locations repository.LocationsRepository, nearby repository.NearbyLocationsRepository) *LocationsHandler {
	return &LocationsHandler{locations: locations, nearby: nearby}
}

// ListByMovie GET /movies/:id/locations
func (h *LocationsHandler) ListByMovie(c *gin.Context) {
	locations, err := h.locations.GetByMovieID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list locations")
		return
	}

	c.JSON(http.StatusOK, locations)
}

// GetLocation GET /locations/:id
func (h *LocationsHandler) GetLocation(c *gin.Context) {
	location, err := h.locations.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch location")
		return
	}

	c.JSON(http.StatusOK, location)
}

// GetNearby GET /locations/nearby?lat=..&lng=..&radius_km=..
func (h *LocationsHandler) GetNearby(c *gin.Context) {
	if h.nearby == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "unavailable",
			"message": "nearby search requires a direct database connection",
		})
		return
	}

	center, ok := parseLatLng(c)
	if !ok {
		return
	}

	radiusKm := 50.0
	if raw := c.Query("radius_km"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_parameter",
				"message": "radius_km must be a positive number",
			})
			return
		}
		radiusKm = parsed
	}

	locations, err := h.nearby.GetNearby(c.Request.Context(), center, radiusKm)
	if err != nil {
		respondError(c, err, "Failed to search nearby locations")
		return
	}

	c.JSON(http.StatusOK, locations)
}

// CreateLocation POST /movies/:id/locations
func (h *LocationsHandler) CreateLocation(c *gin.Context) {
	var location model.Location
	if err := c.ShouldBindJSON(&location); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	location.MovieID = c.Param("id")
	if location.Title == "" || !location.Coordinates.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "title and valid coordinates are required",
		})
		return
	}

	if err := h.locations.Create(c.Request.Context(), &location); err != nil {
		respondError(c, err, "Failed to create location")
		return
	}

	c.JSON(http.StatusCreated, location)
}

// UpdateLocation PUT /locations/:id
func (h *LocationsHandler) UpdateLocation(c *gin.Context) {
	var location model.Location
	if err := c.ShouldBindJSON(&location); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}

	location.ID = c.Param("id")
	if _, err := h.locations.GetByID(c.Request.Context(), location.ID); err != nil {
		respondError(c, err, "Failed to fetch location")
		return
	}

	if err := h.locations.Update(c.Request.Context(), &location); err != nil {
		respondError(c, err, "Failed to update location")
		return
	}

	c.JSON(http.StatusOK, location)
}

// DeleteLocation DELETE /locations/:id
func (h *LocationsHandler) DeleteLocation(c *gin.Context) {
	if err := h.locations.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete location")
		return
	}

	c.Status(http.StatusNoContent)
}

// parseLatLng reads the lat/lng query pair shared by the geo endpoints.
func parseLatLng(c *gin.Context) (model.GeoPoint, bool) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "lat and lng query parameters are required numbers",
		})
		return model.GeoPoint{}, false
	}

	point := model.GeoPoint{Lat: lat, Lng: lng}
	if !point.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_parameter",
			"message": "lat must be in [-90, 90] and lng in [-180, 180]",
		})
		return model.GeoPoint{}, false
	}

	return point, true
}
