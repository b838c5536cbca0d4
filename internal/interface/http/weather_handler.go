package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/h0m10/citypulse-api/internal/domain/weather"
)

const (
	defaultUnits       = "metric"
	defaultWeatherLang = "es"
)

// WeatherByCity serves current conditions for a named city.
func (h *Handler) WeatherByCity(c *gin.Context) {
	resp, err := h.weatherSvc.CurrentByCity(c.Request.Context(), weather.CityQuery{
		City:  c.Param("city"),
		Units: queryString(c, "units", defaultUnits),
		Lang:  queryString(c, "lang", defaultWeatherLang),
	})
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// WeatherByCoords serves current conditions for a coordinate pair.
func (h *Handler) WeatherByCoords(c *gin.Context) {
	lat, lon, err := pathCoordinates(c)
	if err != nil {
		abortWithError(c, err)
		return
	}
	resp, err := h.weatherSvc.CurrentByCoords(c.Request.Context(), weather.CoordsQuery{
		Lat:   lat,
		Lon:   lon,
		Units: queryString(c, "units", defaultUnits),
		Lang:  queryString(c, "lang", defaultWeatherLang),
	})
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// WeatherForecast serves the five-day sampled forecast.
func (h *Handler) WeatherForecast(c *gin.Context) {
	resp, err := h.weatherSvc.Forecast(c.Request.Context(), weather.CityQuery{
		City:  c.Param("city"),
		Units: queryString(c, "units", defaultUnits),
		Lang:  queryString(c, "lang", defaultWeatherLang),
	})
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}
	c.JSON(http.StatusOK, resp)
}
