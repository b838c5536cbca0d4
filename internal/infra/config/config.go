package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Weather  WeatherConfig  `yaml:"weather"`
	GitHub   GitHubConfig   `yaml:"github"`
	Movies   MoviesConfig   `yaml:"movies"`
	Geocode  GeocodeConfig  `yaml:"geocode"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address         string          `yaml:"address"`
	ReadTimeout     time.Duration   `yaml:"readTimeout"`
	WriteTimeout    time.Duration   `yaml:"writeTimeout"`
	ShutdownTimeout time.Duration   `yaml:"shutdownTimeout"`
	TrustedProxies  []string        `yaml:"trustedProxies"`
	BodyLimit       int64           `yaml:"bodyLimit"`
	CORS            CORSConfig      `yaml:"cors"`
	RateLimit       RateLimitConfig `yaml:"rateLimit"`
}

// CORSConfig restricts cross-origin callers.
type CORSConfig struct {
	AllowedOrigins   []string `yaml:"allowedOrigins"`
	AllowedMethods   []string `yaml:"allowedMethods"`
	AllowCredentials bool     `yaml:"allowCredentials"`
}

// RateLimitConfig drives the fixed-window request limiter.
type RateLimitConfig struct {
	Enabled     bool          `yaml:"enabled"`
	Window      time.Duration `yaml:"window"`
	MaxRequests int           `yaml:"maxRequests"`
	Valkey      ValkeyConfig  `yaml:"valkey"`
}

// ValkeyConfig points the limiter at a shared counter store.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
	Prefix  string `yaml:"prefix"`
}

// UpstreamConfig applies to every third-party client.
type UpstreamConfig struct {
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"userAgent"`
}

// WeatherConfig holds OpenWeatherMap settings.
type WeatherConfig struct {
	APIKey  string `yaml:"apiKey"`
	BaseURL string `yaml:"baseUrl"`
}

// GitHubConfig holds GitHub REST settings. Token is optional.
type GitHubConfig struct {
	Token       string `yaml:"token"`
	BaseURL     string `yaml:"baseUrl"`
	EnrichLimit int    `yaml:"enrichLimit"`
}

// MoviesConfig holds TMDB settings.
type MoviesConfig struct {
	APIKey       string `yaml:"apiKey"`
	BaseURL      string `yaml:"baseUrl"`
	ImageBaseURL string `yaml:"imageBaseUrl"`
}

// GeocodeConfig holds Mapbox geocoding settings.
type GeocodeConfig struct {
	AccessToken string `yaml:"accessToken"`
	BaseURL     string `yaml:"baseUrl"`
}

// Credentials reports which upstream secrets are configured, never their values.
type Credentials struct {
	OpenWeather bool `json:"openweather"`
	TMDB        bool `json:"tmdb"`
	GitHub      bool `json:"github"`
	Mapbox      bool `json:"mapbox"`
}

// Credentials summarises secret presence for the health endpoint.
func (c *Config) Credentials() Credentials {
	return Credentials{
		OpenWeather: strings.TrimSpace(c.Weather.APIKey) != "",
		TMDB:        strings.TrimSpace(c.Movies.APIKey) != "",
		GitHub:      strings.TrimSpace(c.GitHub.Token) != "",
		Mapbox:      strings.TrimSpace(c.Geocode.AccessToken) != "",
	}
}

// Load reads configuration from a YAML file, a .env file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	// A missing .env is the normal production case.
	_ = godotenv.Load()
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.HTTP.Address = ":" + v
	}
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_TRUSTED_PROXIES"); v != "" {
		cfg.HTTP.TrustedProxies = splitList(v)
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.CORS.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_WINDOW"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.RateLimit.Window = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_MAX"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.MaxRequests = parsed
		}
	}
	if v := os.Getenv("RATE_LIMIT_VALKEY_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Valkey.Enabled = parseBool(v)
	}
	if v := os.Getenv("RATE_LIMIT_VALKEY_ADDR"); v != "" {
		cfg.HTTP.RateLimit.Valkey.Addr = v
	}
	if v := os.Getenv("UPSTREAM_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Upstream.Timeout = parsed
		}
	}
	if v := os.Getenv("OPENWEATHER_API_KEY"); v != "" {
		cfg.Weather.APIKey = v
	}
	if v := os.Getenv("OPENWEATHER_BASE_URL"); v != "" {
		cfg.Weather.BaseURL = v
	}
	if v := os.Getenv("GITHUB_TOKEN"); v != "" {
		cfg.GitHub.Token = v
	}
	if v := os.Getenv("GITHUB_BASE_URL"); v != "" {
		cfg.GitHub.BaseURL = v
	}
	if v := os.Getenv("TMDB_API_KEY"); v != "" {
		cfg.Movies.APIKey = v
	}
	if v := os.Getenv("TMDB_BASE_URL"); v != "" {
		cfg.Movies.BaseURL = v
	}
	if v := os.Getenv("TMDB_IMAGE_BASE_URL"); v != "" {
		cfg.Movies.ImageBaseURL = v
	}
	if v := os.Getenv("MAPBOX_TOKEN"); v != "" {
		cfg.Geocode.AccessToken = v
	}
	if v := os.Getenv("MAPBOX_BASE_URL"); v != "" {
		cfg.Geocode.BaseURL = v
	}
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:         ":3001",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			BodyLimit:       100 << 10,
			CORS: CORSConfig{
				AllowedOrigins: []string{
					"https://h0m10.github.io",
					"http://localhost:5173",
					"http://localhost:4173",
				},
				AllowedMethods:   []string{"GET", "POST"},
				AllowCredentials: true,
			},
			RateLimit: RateLimitConfig{
				Enabled:     true,
				Window:      15 * time.Minute,
				MaxRequests: 200,
				Valkey: ValkeyConfig{
					Prefix: "citypulse:ratelimit",
				},
			},
		},
		Upstream: UpstreamConfig{
			Timeout:   10 * time.Second,
			UserAgent: "citypulse-api/1.0",
		},
		Weather: WeatherConfig{
			BaseURL: "https://api.openweathermap.org/data/2.5",
		},
		GitHub: GitHubConfig{
			BaseURL:     "https://api.github.com",
			EnrichLimit: 12,
		},
		Movies: MoviesConfig{
			BaseURL:      "https://api.themoviedb.org/3",
			ImageBaseURL: "https://image.tmdb.org/t/p",
		},
		Geocode: GeocodeConfig{
			BaseURL: "https://api.mapbox.com/geocoding/v5/mapbox.places",
		},
	}
}

// Validate ensures the configuration is safe to use. Missing credentials are
// allowed; the health endpoint reports them.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.BodyLimit <= 0 {
		return errors.New("http.bodyLimit must be positive")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.Window <= 0 {
			return errors.New("http.rateLimit.window must be positive")
		}
		if c.HTTP.RateLimit.MaxRequests <= 0 {
			return errors.New("http.rateLimit.maxRequests must be positive")
		}
		if c.HTTP.RateLimit.Valkey.Enabled && strings.TrimSpace(c.HTTP.RateLimit.Valkey.Addr) == "" {
			return errors.New("http.rateLimit.valkey.addr cannot be empty when valkey is enabled")
		}
	}
	if c.Upstream.Timeout <= 0 {
		return errors.New("upstream.timeout must be positive")
	}
	if c.GitHub.EnrichLimit <= 0 {
		return errors.New("github.enrichLimit must be positive")
	}
	for name, base := range map[string]string{
		"weather.baseUrl":     c.Weather.BaseURL,
		"github.baseUrl":      c.GitHub.BaseURL,
		"movies.baseUrl":      c.Movies.BaseURL,
		"movies.imageBaseUrl": c.Movies.ImageBaseURL,
		"geocode.baseUrl":     c.Geocode.BaseURL,
	} {
		if strings.TrimSpace(base) == "" {
			return fmt.Errorf("%s cannot be empty", name)
		}
	}
	return nil
}
