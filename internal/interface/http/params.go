package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const maxPerPage = 100

func queryString(c *gin.Context, key, fallback string) string {
	if v := strings.TrimSpace(c.Query(key)); v != "" {
		return v
	}
	return fallback
}

// queryPositiveInt falls back when the value is missing, malformed or below 1.
func queryPositiveInt(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(c.Query(key)))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}

func queryPerPage(c *gin.Context, fallback int) int {
	v := queryPositiveInt(c, "per_page", fallback)
	if v > maxPerPage {
		return maxPerPage
	}
	return v
}

// pathCoordinates parses :lat and :lon and checks their ranges.
func pathCoordinates(c *gin.Context) (float64, float64, error) {
	lat, err := strconv.ParseFloat(c.Param("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		return 0, 0, invalidCoordinates(fmt.Sprintf("latitud %q fuera de rango [-90, 90]", c.Param("lat")))
	}
	lon, err := strconv.ParseFloat(c.Param("lon"), 64)
	if err != nil || lon < -180 || lon > 180 {
		return 0, 0, invalidCoordinates(fmt.Sprintf("longitud %q fuera de rango [-180, 180]", c.Param("lon")))
	}
	return lat, lon, nil
}

func invalidCoordinates(details string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, "invalid_coordinates", "Coordenadas inválidas", details, nil)
}
