package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/h0m10/citypulse-api/internal/domain/geocode"
	"github.com/h0m10/citypulse-api/internal/domain/github"
	"github.com/h0m10/citypulse-api/internal/domain/movies"
	"github.com/h0m10/citypulse-api/internal/domain/weather"
	"github.com/h0m10/citypulse-api/internal/infra/config"
	"github.com/h0m10/citypulse-api/pkg/util"
)

const apiVersion = "1.0.0"

var documentedEndpoints = []string{
	"GET /api/health",
	"GET /api/weather/:city",
	"GET /api/weather/coords/:lat/:lon",
	"GET /api/github/users/:location",
	"GET /api/github/repos/:location",
	"GET /api/movies/search/:query",
	"GET /api/movies/popular",
	"GET /api/geocode/reverse/:lat/:lon",
	"GET /api/geocode/search/:query",
}

// Handler wires the HTTP transport to domain services.
type Handler struct {
	weatherSvc  weather.Service
	githubSvc   github.Service
	moviesSvc   movies.Service
	geocodeSvc  geocode.Service
	credentials config.Credentials
	logger      *slog.Logger
	now         func() time.Time
}

// NewHandler constructs the root HTTP handler.
func NewHandler(weatherSvc weather.Service, githubSvc github.Service, moviesSvc movies.Service, geocodeSvc geocode.Service, credentials config.Credentials, logger *slog.Logger) *Handler {
	return &Handler{
		weatherSvc:  weatherSvc,
		githubSvc:   githubSvc,
		moviesSvc:   moviesSvc,
		geocodeSvc:  geocodeSvc,
		credentials: credentials,
		logger:      logger.With("component", "http.handler"),
		now:         util.NowUTC,
	}
}

// Health reports liveness and which upstream credentials are configured.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "✅ CityPulse API funcionando",
		"version":   apiVersion,
		"timestamp": util.FormatISO(h.now()),
		"apis":      h.credentials,
	})
}

// Index describes the API.
func (h *Handler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        "CityPulse API",
		"description": "Backend proxy para la aplicación CityPulse",
		"endpoints":   documentedEndpoints,
	})
}

// NotFound echoes the unmatched request URI.
func (h *Handler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error": "Ruta no encontrada",
		"path":  c.Request.RequestURI,
	})
}
