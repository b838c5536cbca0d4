package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/h0m10/citypulse-api/internal/domain/github"
	"github.com/h0m10/citypulse-api/internal/domain/movies"
	"github.com/h0m10/citypulse-api/internal/infra/config"
	"github.com/h0m10/citypulse-api/internal/infra/githubapi"
	"github.com/h0m10/citypulse-api/internal/infra/mapbox"
	"github.com/h0m10/citypulse-api/internal/infra/openweather"
	"github.com/h0m10/citypulse-api/internal/infra/ratelimit"
	"github.com/h0m10/citypulse-api/internal/infra/tmdb"
)

func provideWeatherClient(cfg *config.Config) *openweather.Client {
	return openweather.NewClient(cfg.Weather.APIKey, cfg.Weather.BaseURL, cfg.Upstream.Timeout)
}

func provideGitHubClient(cfg *config.Config) *githubapi.Client {
	return githubapi.NewClient(cfg.GitHub.Token, cfg.GitHub.BaseURL, cfg.Upstream.UserAgent, cfg.Upstream.Timeout)
}

func provideMoviesClient(cfg *config.Config) *tmdb.Client {
	return tmdb.NewClient(cfg.Movies.APIKey, cfg.Movies.BaseURL, cfg.Upstream.Timeout)
}

func provideGeocodeClient(cfg *config.Config) *mapbox.Client {
	return mapbox.NewClient(cfg.Geocode.AccessToken, cfg.Geocode.BaseURL, cfg.Upstream.Timeout)
}

func provideGitHubConfig(cfg *config.Config) github.Config {
	return github.Config{EnrichLimit: cfg.GitHub.EnrichLimit}
}

func provideMoviesConfig(cfg *config.Config) movies.Config {
	return movies.Config{ImageBaseURL: cfg.Movies.ImageBaseURL}
}

func provideCredentials(cfg *config.Config) config.Credentials {
	return cfg.Credentials()
}

func provideRateLimiter(cfg *config.Config, logger *slog.Logger) ratelimit.Limiter {
	rl := cfg.HTTP.RateLimit
	fallback := ratelimit.NewMemoryLimiter(rl.MaxRequests, rl.Window)
	if !rl.Valkey.Enabled {
		return fallback
	}
	opt, err := buildValkeyOptions(rl.Valkey.Addr)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory limiter", "error", err)
		return fallback
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory limiter", "error", err)
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory limiter", "error", err)
		client.Close()
		return fallback
	}
	logger.Info("valkey rate limiter enabled", "addr", rl.Valkey.Addr)
	return ratelimit.NewValkeyLimiter(client, rl.Valkey.Prefix, rl.MaxRequests, rl.Window)
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}
