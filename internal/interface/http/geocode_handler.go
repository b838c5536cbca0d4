package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/h0m10/citypulse-api/internal/domain/geocode"
)

// GeocodeReverse resolves a coordinate pair to a city and country.
func (h *Handler) GeocodeReverse(c *gin.Context) {
	lat, lon, err := pathCoordinates(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	resp, err := h.geocodeSvc.Reverse(c.Request.Context(), geocode.ReverseQuery{
		Lat:     lat,
		Lon:     lon,
		LatText: c.Param("lat"),
		LonText: c.Param("lon"),
	})
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GeocodeSearch lists up to five places matching the query.
func (h *Handler) GeocodeSearch(c *gin.Context) {
	resp, err := h.geocodeSvc.Search(c.Request.Context(), c.Param("query"))
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}
