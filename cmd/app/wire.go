//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/h0m10/citypulse-api/internal/bootstrap"
	"github.com/h0m10/citypulse-api/internal/domain/geocode"
	"github.com/h0m10/citypulse-api/internal/domain/github"
	"github.com/h0m10/citypulse-api/internal/domain/movies"
	"github.com/h0m10/citypulse-api/internal/domain/weather"
	"github.com/h0m10/citypulse-api/internal/infra/config"
	"github.com/h0m10/citypulse-api/internal/infra/githubapi"
	"github.com/h0m10/citypulse-api/internal/infra/mapbox"
	"github.com/h0m10/citypulse-api/internal/infra/openweather"
	"github.com/h0m10/citypulse-api/internal/infra/tmdb"
	httpiface "github.com/h0m10/citypulse-api/internal/interface/http"
	"github.com/h0m10/citypulse-api/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideWeatherClient,
		provideGitHubClient,
		provideMoviesClient,
		provideGeocodeClient,
		provideGitHubConfig,
		provideMoviesConfig,
		provideCredentials,
		provideRateLimiter,
		weather.NewService,
		github.NewService,
		movies.NewService,
		geocode.NewService,
		wire.Bind(new(weather.Client), new(*openweather.Client)),
		wire.Bind(new(github.Client), new(*githubapi.Client)),
		wire.Bind(new(movies.Client), new(*tmdb.Client)),
		wire.Bind(new(geocode.Client), new(*mapbox.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
