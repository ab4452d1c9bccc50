package main

import (
	"errors"
	"net/http"

	"thermaglobe/internal/boundary"
	"thermaglobe/internal/geometry"

	"github.com/gin-gonic/gin"
)

// ResolveLocationInput defines the query parameters for the resolve endpoint.
// Pointers so "required" still accepts 0 (the equator and the prime meridian
// are valid coordinates).
type ResolveLocationInput struct {
	Latitude  *float64 `form:"latitude" binding:"required"`  // Latitude in decimal degrees
	Longitude *float64 `form:"longitude" binding:"required"` // Longitude in decimal degrees
}

// ResolveLocationResponse is the resolved place for a coordinate. Country
// is omitted over open ocean; Label then carries the ocean sentinel.
type ResolveLocationResponse struct {
	Country   string  `json:"country,omitempty"`
	Label     string  `json:"label"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone,omitempty"`
}

// handleResolveLocation godoc
// @Summary Resolve a coordinate to a place name
// @Description Map a latitude/longitude to a country name (and "{State}, USA" label for US coordinates) by offline polygon containment, enriched with the IANA timezone
// @Tags location
// @Accept json
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(46.0)
// @Param longitude query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(2.0)
// @Success 200 {object} ResolveLocationResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /location/resolve [get]
func (app *App) handleResolveLocation(c *gin.Context) {
	var input ResolveLocationInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Delegate to business layer
	res, err := app.geocoderService.ResolveLocation(*input.Latitude, *input.Longitude)
	if err != nil {
		// Non-finite coordinates are a caller error
		if errors.Is(err, geometry.ErrNonFiniteCoordinate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Both local and remote dataset fetches failed; the client is
		// expected to degrade its display rather than crash.
		if errors.Is(err, boundary.ErrLoadFailed) {
			app.logger.Error("boundary dataset unavailable",
				"latitude", *input.Latitude,
				"longitude", *input.Longitude,
				"error", err,
			)
			c.JSON(http.StatusBadGateway, gin.H{"error": "unable to load map data"})
			return
		}

		app.logger.Error("failed to resolve location",
			"latitude", *input.Latitude,
			"longitude", *input.Longitude,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve location"})
		return
	}

	c.JSON(http.StatusOK, ResolveLocationResponse{
		Country:   res.Country,
		Label:     res.Label,
		Latitude:  res.Latitude,
		Longitude: res.Longitude,
		Timezone:  app.timezoneService.GetTimezone(res.Latitude, res.Longitude),
	})
}
