package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/valkey-io/valkey-go/mock"
	"go.uber.org/mock/gomock"

	"github.com/h0m10/citypulse-api/internal/domain/geocode"
	"github.com/h0m10/citypulse-api/internal/domain/github"
	"github.com/h0m10/citypulse-api/internal/domain/movies"
	"github.com/h0m10/citypulse-api/internal/domain/weather"
	"github.com/h0m10/citypulse-api/internal/infra/config"
	"github.com/h0m10/citypulse-api/internal/infra/ratelimit"
	apperrors "github.com/h0m10/citypulse-api/pkg/errors"
)

func TestRouter_UnknownRoute(t *testing.T) {
	rec := performRequest(http.MethodGet, "/api/nothing?x=1", newRouterUnderTest(t, &stubServices{}))
	require.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeBody(t, rec.Body.Bytes())
	require.Equal(t, "Ruta no encontrada", body["error"])
	require.Equal(t, "/api/nothing?x=1", body["path"])
}

func TestRouter_Health(t *testing.T) {
	rec := performRequest(http.MethodGet, "/api/health", newRouterUnderTest(t, &stubServices{}))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec.Body.Bytes())
	require.Equal(t, "✅ CityPulse API funcionando", body["status"])
	require.Equal(t, "1.0.0", body["version"])
	require.Equal(t, "2024-05-01T12:00:00.000Z", body["timestamp"])
	require.Equal(t, map[string]any{"openweather": true, "tmdb": false, "github": false, "mapbox": true}, body["apis"])
}

func TestRouter_Index(t *testing.T) {
	rec := performRequest(http.MethodGet, "/", newRouterUnderTest(t, &stubServices{}))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec.Body.Bytes())
	require.Equal(t, "CityPulse API", body["name"])
	require.Len(t, body["endpoints"], 9)
}

func TestRouter_WeatherDefaults(t *testing.T) {
	svc := &stubServices{
		cityFn: func(ctx context.Context, q weather.CityQuery) (weather.Report, error) {
			require.Equal(t, "Madrid", q.City)
			require.Equal(t, "metric", q.Units)
			require.Equal(t, "es", q.Lang)
			return weather.Report{City: "Madrid", Country: "ES", Temperature: 19}, nil
		},
	}

	rec := performRequest(http.MethodGet, "/api/weather/Madrid", newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec.Body.Bytes())
	require.Equal(t, "Madrid", body["city"])
	require.EqualValues(t, 19, body["temperature"])
}

func TestRouter_WeatherForwardsDomainError(t *testing.T) {
	svc := &stubServices{
		cityFn: func(ctx context.Context, q weather.CityQuery) (weather.Report, error) {
			return weather.Report{}, apperrors.Upstream("city_not_found", `Ciudad "Atlantis" no encontrada`, http.StatusNotFound, "city not found", nil)
		},
	}

	rec := performRequest(http.MethodGet, "/api/weather/Atlantis", newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeBody(t, rec.Body.Bytes())
	require.Equal(t, `Ciudad "Atlantis" no encontrada`, body["error"])
	require.Equal(t, "city not found", body["details"])
}

func TestRouter_InvalidCoordinates(t *testing.T) {
	svc := &stubServices{}
	server := newRouterUnderTest(t, svc)

	for _, path := range []string{"/api/weather/coords/abc/1", "/api/weather/coords/91/0", "/api/geocode/reverse/0/181"} {
		rec := performRequest(http.MethodGet, path, server)
		require.Equal(t, http.StatusBadRequest, rec.Code, path)
		require.Equal(t, "Coordenadas inválidas", decodeBody(t, rec.Body.Bytes())["error"])
	}
	require.False(t, svc.called)
}

func TestRouter_GitHubQueryDefaults(t *testing.T) {
	svc := &stubServices{
		usersFn: func(ctx context.Context, q github.SearchQuery) (github.UserSearchResult, error) {
			require.Equal(t, "Madrid", q.Location)
			require.Equal(t, "followers", q.Sort)
			require.Equal(t, 1, q.Page)
			require.Equal(t, 100, q.PerPage)
			return github.UserSearchResult{
				Location: q.Location,
				Users:    []github.Profile{{Login: "a", Followers: 10}, {Login: "b", Followers: 5}, {Login: "c"}},
			}, nil
		},
	}

	rec := performRequest(http.MethodGet, "/api/github/users/Madrid?page=-3&per_page=500", newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Users []map[string]any `json:"users"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Users, 3)
	require.EqualValues(t, 0, body.Users[2]["followers"])
	require.Nil(t, body.Users[2]["company"])
}

func TestRouter_MovieSearchNullPoster(t *testing.T) {
	svc := &stubServices{
		searchFn: func(ctx context.Context, q movies.SearchQuery) (movies.SearchResult, error) {
			require.Equal(t, "es-ES", q.Lang)
			require.Equal(t, 2, q.Page)
			return movies.SearchResult{Query: q.Query, Movies: []movies.Summary{{ID: 1, Title: "Paris"}}}, nil
		},
	}

	rec := performRequest(http.MethodGet, "/api/movies/search/paris?page=2", newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Movies []map[string]any `json:"movies"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	value, ok := body.Movies[0]["poster_url"]
	require.True(t, ok)
	require.Nil(t, value)
}

func TestRouter_MovieDetailRejectsBadID(t *testing.T) {
	svc := &stubServices{}
	rec := performRequest(http.MethodGet, "/api/movies/detail/abc", newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Identificador de película inválido", decodeBody(t, rec.Body.Bytes())["error"])
	require.False(t, svc.called)
}

func TestRouter_GeocodeSearchError(t *testing.T) {
	svc := &stubServices{
		geoSearchFn: func(ctx context.Context, query string) (geocode.SearchResult, error) {
			return geocode.SearchResult{}, apperrors.Upstream("geocode_search_failed", "Error al buscar ubicación", http.StatusInternalServerError, "Not Authorized - Invalid Token", nil)
		},
	}

	rec := performRequest(http.MethodGet, "/api/geocode/search/valencia", newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec.Body.Bytes())
	require.Equal(t, "Error al buscar ubicación", body["error"])
	require.Equal(t, "Not Authorized - Invalid Token", body["details"])
}

func TestRouter_GeocodeReverseFallbackEchoesPath(t *testing.T) {
	logger := newTestLogger()
	geocoder := geocode.NewService(emptyGeocodeClient{}, logger)
	svc := &stubServices{}
	handler := NewHandler(svc, svc, svc, geocoder, config.Credentials{}, logger)

	rec := performRequest(http.MethodGet, "/api/geocode/reverse/40.40/-3.70", NewRouter(testConfig(), handler, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec.Body.Bytes())
	require.Equal(t, "Desconocido", body["city"])
	require.Equal(t, "40.40, -3.70", body["full_name"])
	require.Equal(t, map[string]any{"lat": 40.4, "lon": -3.7}, body["coordinates"])
}

func TestRouter_RecoversFromPanic(t *testing.T) {
	svc := &stubServices{
		reverseFn: func(ctx context.Context, q geocode.ReverseQuery) (geocode.ReverseResult, error) {
			panic("boom")
		},
	}

	rec := performRequest(http.MethodGet, "/api/geocode/reverse/1/2", newRouterUnderTest(t, svc))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec.Body.Bytes())
	require.Equal(t, "Error interno del servidor", body["error"])
	require.EqualValues(t, 500, body["status"])
}

func TestRouter_RateLimit(t *testing.T) {
	server := newRouterWithLimit(t, &stubServices{}, 2)

	for i := 0; i < 2; i++ {
		rec := performRequest(http.MethodGet, "/api/health", server)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "2", rec.Header().Get("RateLimit-Limit"))
		require.Equal(t, "2;w=900", rec.Header().Get("RateLimit-Policy"))
	}

	rec := performRequest(http.MethodGet, "/api/health", server)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, "0", rec.Header().Get("RateLimit-Remaining"))
	require.NotEmpty(t, rec.Header().Get("Retry-After"))

	body := decodeBody(t, rec.Body.Bytes())
	require.Equal(t, "Demasiadas solicitudes, intenta de nuevo en 15 minutos", body["error"])
	require.Equal(t, "15 minutos", body["retryAfter"])
}

func TestRouter_RateLimitKeysOnForwardedClientBehindTrustedProxy(t *testing.T) {
	cfg := testConfig()
	cfg.HTTP.TrustedProxies = []string{"10.0.0.0/8"}
	cfg.HTTP.RateLimit = config.RateLimitConfig{Enabled: true, Window: 15 * time.Minute, MaxRequests: 1}
	server := NewRouter(cfg, newTestHandler(&stubServices{}), ratelimit.NewMemoryLimiter(1, 15*time.Minute))

	forwarded := func(client string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.RemoteAddr = "10.1.2.3:4567"
		req.Header.Set("X-Forwarded-For", client)
		rec := httptest.NewRecorder()
		server.Handler.ServeHTTP(rec, req)
		return rec
	}

	require.Equal(t, http.StatusOK, forwarded("203.0.113.7").Code)
	require.Equal(t, http.StatusOK, forwarded("198.51.100.9").Code)
	require.Equal(t, http.StatusTooManyRequests, forwarded("203.0.113.7").Code)
}

func TestRouter_RateLimitFailsOpen(t *testing.T) {
	cfg := testConfig()
	cfg.HTTP.RateLimit = config.RateLimitConfig{Enabled: true, Window: time.Minute, MaxRequests: 1}
	server := NewRouter(cfg, newTestHandler(&stubServices{}), failingLimiter{})

	rec := performRequest(http.MethodGet, "/api/health", server)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, rec.Header().Get("RateLimit-Limit"))
}

func TestRouter_RateLimitFailsOpenWhenValkeyIsDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewClient(ctrl)
	client.EXPECT().Do(gomock.Any(), mock.Match("INCR", "citypulse:ratelimit:192.0.2.1")).Return(mock.ErrorResult(errors.New("connection refused")))

	cfg := testConfig()
	cfg.HTTP.RateLimit = config.RateLimitConfig{Enabled: true, Window: 15 * time.Minute, MaxRequests: 200}
	limiter := ratelimit.NewValkeyLimiter(client, "citypulse:ratelimit", 200, 15*time.Minute)

	rec := performRequest(http.MethodGet, "/api/health", NewRouter(cfg, newTestHandler(&stubServices{}), limiter))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, rec.Header().Get("RateLimit-Remaining"))
}

func TestRouter_CORS(t *testing.T) {
	server := newRouterUnderTest(t, &stubServices{})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_SecurityHeadersAndGzip(t *testing.T) {
	server := newRouterUnderTest(t, &stubServices{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	require.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	require.Equal(t, "SAMEORIGIN", rec.Header().Get("X-Frame-Options"))
	require.Equal(t, "no-referrer", rec.Header().Get("Referrer-Policy"))
	require.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	rec := performRequest(http.MethodGet, "/metrics", newRouterUnderTest(t, &stubServices{}))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "citypulse_")
}

func performRequest(method, path string, server *http.Server) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func newRouterUnderTest(t *testing.T, svc *stubServices) *http.Server {
	t.Helper()
	return NewRouter(testConfig(), newTestHandler(svc), nil)
}

func newRouterWithLimit(t *testing.T, svc *stubServices, limit int) *http.Server {
	t.Helper()
	cfg := testConfig()
	cfg.HTTP.RateLimit = config.RateLimitConfig{Enabled: true, Window: 15 * time.Minute, MaxRequests: limit}
	return NewRouter(cfg, newTestHandler(svc), ratelimit.NewMemoryLimiter(limit, 15*time.Minute))
}

func testConfig() *config.Config {
	return &config.Config{
		HTTP: config.HTTPConfig{
			Address:      ":0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
			BodyLimit:    100 << 10,
			CORS: config.CORSConfig{
				AllowedOrigins:   []string{"https://h0m10.github.io", "http://localhost:5173", "http://localhost:4173"},
				AllowedMethods:   []string{"GET", "POST"},
				AllowCredentials: true,
			},
		},
	}
}

func newTestHandler(svc *stubServices) *Handler {
	creds := config.Credentials{OpenWeather: true, Mapbox: true}
	handler := NewHandler(svc, svc, svc, stubGeocoder{s: svc}, creds, newTestLogger())
	handler.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return handler
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

func decodeBody(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

type emptyGeocodeClient struct{}

func (emptyGeocodeClient) Reverse(ctx context.Context, lat, lon float64) (geocode.FeatureCollection, error) {
	return geocode.FeatureCollection{}, nil
}

func (emptyGeocodeClient) Search(ctx context.Context, query string, limit int) (geocode.FeatureCollection, error) {
	return geocode.FeatureCollection{}, nil
}

type failingLimiter struct{}

func (failingLimiter) Allow(ctx context.Context, key string) (ratelimit.Result, error) {
	return ratelimit.Result{}, context.DeadlineExceeded
}

// stubServices implements the weather, github and movies services; unset funcs return zero values.
type stubServices struct {
	called      bool
	cityFn      func(ctx context.Context, q weather.CityQuery) (weather.Report, error)
	usersFn     func(ctx context.Context, q github.SearchQuery) (github.UserSearchResult, error)
	searchFn    func(ctx context.Context, q movies.SearchQuery) (movies.SearchResult, error)
	reverseFn   func(ctx context.Context, q geocode.ReverseQuery) (geocode.ReverseResult, error)
	geoSearchFn func(ctx context.Context, query string) (geocode.SearchResult, error)
}

func (s *stubServices) CurrentByCity(ctx context.Context, q weather.CityQuery) (weather.Report, error) {
	s.called = true
	if s.cityFn != nil {
		return s.cityFn(ctx, q)
	}
	return weather.Report{}, nil
}

func (s *stubServices) CurrentByCoords(ctx context.Context, q weather.CoordsQuery) (weather.Report, error) {
	s.called = true
	return weather.Report{}, nil
}

func (s *stubServices) Forecast(ctx context.Context, q weather.CityQuery) (weather.Forecast, error) {
	s.called = true
	return weather.Forecast{}, nil
}

func (s *stubServices) SearchUsers(ctx context.Context, q github.SearchQuery) (github.UserSearchResult, error) {
	s.called = true
	if s.usersFn != nil {
		return s.usersFn(ctx, q)
	}
	return github.UserSearchResult{}, nil
}

func (s *stubServices) SearchRepos(ctx context.Context, q github.SearchQuery) (github.RepoSearchResult, error) {
	s.called = true
	return github.RepoSearchResult{}, nil
}

func (s *stubServices) GetUser(ctx context.Context, login string) (github.UserDetail, error) {
	s.called = true
	return github.UserDetail{}, nil
}

func (s *stubServices) Search(ctx context.Context, q movies.SearchQuery) (movies.SearchResult, error) {
	s.called = true
	if s.searchFn != nil {
		return s.searchFn(ctx, q)
	}
	return movies.SearchResult{}, nil
}

func (s *stubServices) Popular(ctx context.Context, q movies.PopularQuery) (movies.PopularResult, error) {
	s.called = true
	return movies.PopularResult{}, nil
}

func (s *stubServices) Detail(ctx context.Context, q movies.DetailQuery) (movies.Detail, error) {
	s.called = true
	return movies.Detail{}, nil
}

// stubGeocoder is split out because geocode.Service and movies.Service both declare Search.
type stubGeocoder struct {
	s *stubServices
}

func (g stubGeocoder) Reverse(ctx context.Context, q geocode.ReverseQuery) (geocode.ReverseResult, error) {
	g.s.called = true
	if g.s.reverseFn != nil {
		return g.s.reverseFn(ctx, q)
	}
	return geocode.ReverseResult{}, nil
}

func (g stubGeocoder) Search(ctx context.Context, query string) (geocode.SearchResult, error) {
	g.s.called = true
	if g.s.geoSearchFn != nil {
		return g.s.geoSearchFn(ctx, query)
	}
	return geocode.SearchResult{}, nil
}
