package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/h0m10/citypulse-api/internal/infra/config"
	"github.com/h0m10/citypulse-api/internal/infra/ratelimit"
)

const metricsPath = "/metrics"

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, limiter ratelimit.Limiter) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	if err := router.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		handler.logger.Warn("invalid trusted proxies, trusting none", "error", err)
		_ = router.SetTrustedProxies(nil)
	}

	router.Use(
		recoveryMiddleware(handler.logger),
		requestIDMiddleware(),
		requestLogger(handler.logger),
		metricsMiddleware(),
		securityHeaders(),
		gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{metricsPath})),
		corsMiddleware(cfg.HTTP.CORS),
		bodyLimitMiddleware(cfg.HTTP.BodyLimit),
		rateLimitMiddleware(cfg.HTTP.RateLimit, limiter, handler.logger),
		errorHandlingMiddleware(handler.logger),
	)

	router.GET("/", handler.Index)
	router.GET(metricsPath, gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/health", handler.Health)

		api.GET("/weather/:city", handler.WeatherByCity)
		api.GET("/weather/coords/:lat/:lon", handler.WeatherByCoords)
		api.GET("/weather/forecast/:city", handler.WeatherForecast)

		api.GET("/github/users/:location", handler.GitHubUsers)
		api.GET("/github/repos/:location", handler.GitHubRepos)
		api.GET("/github/user/:username", handler.GitHubUser)

		api.GET("/movies/search/:query", handler.MovieSearch)
		api.GET("/movies/popular", handler.MoviePopular)
		api.GET("/movies/detail/:id", handler.MovieDetail)

		api.GET("/geocode/reverse/:lat/:lon", handler.GeocodeReverse)
		api.GET("/geocode/search/:query", handler.GeocodeSearch)
	}
	router.NoRoute(handler.NotFound)

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}

func securityHeaders() gin.HandlerFunc {
	return secure.New(secure.Config{
		SSLRedirect:             false,
		STSSeconds:              15552000,
		STSIncludeSubdomains:    true,
		CustomFrameOptionsValue: "SAMEORIGIN",
		ContentTypeNosniff:      true,
		ContentSecurityPolicy:   "default-src 'self'",
		ReferrerPolicy:          "no-referrer",
		IENoOpen:                true,
	})
}

func corsMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     cfg.AllowedMethods,
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", requestIDHeader},
		ExposeHeaders:    []string{"RateLimit-Limit", "RateLimit-Remaining", "RateLimit-Reset", "RateLimit-Policy", "Retry-After", requestIDHeader},
		AllowCredentials: cfg.AllowCredentials,
	})
}
