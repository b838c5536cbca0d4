package geocode

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	apperrors "github.com/h0m10/citypulse-api/pkg/errors"
	"github.com/h0m10/citypulse-api/pkg/upstream"
)

const (
	unknownCity = "Desconocido"
	searchLimit = 5
)

// Service exposes forward and reverse geocoding.
type Service interface {
	Reverse(ctx context.Context, q ReverseQuery) (ReverseResult, error)
	Search(ctx context.Context, query string) (SearchResult, error)
}

// Client talks to the geocoding provider.
type Client interface {
	Reverse(ctx context.Context, lat, lon float64) (FeatureCollection, error)
	Search(ctx context.Context, query string, limit int) (FeatureCollection, error)
}

type service struct {
	client Client
	logger *slog.Logger
}

// NewService wires up the geocoding domain.
func NewService(client Client, logger *slog.Logger) Service {
	return &service{
		client: client,
		logger: logger.With("component", "geocode.service"),
	}
}

// Reverse never forwards the upstream status: every failure is a 500.
func (s *service) Reverse(ctx context.Context, q ReverseQuery) (ReverseResult, error) {
	fc, err := s.client.Reverse(ctx, q.Lat, q.Lon)
	if err != nil {
		return ReverseResult{}, apperrors.Upstream("reverse_geocode_failed", "Error en geocodificación inversa", http.StatusInternalServerError, upstream.DetailOf(err), err)
	}

	place, hasPlace := findFeature(fc.Features, "place")
	country, hasCountry := findFeature(fc.Features, "country")

	res := ReverseResult{
		City:        unknownCity,
		FullName:    fallbackName(q),
		Coordinates: Coordinates{Lat: q.Lat, Lon: q.Lon},
	}
	if hasPlace {
		if place.Text != "" {
			res.City = place.Text
		}
		if place.PlaceName != "" {
			res.FullName = place.PlaceName
		}
	}
	if hasCountry {
		res.Country = country.Text
		res.CountryCode = upperCode(country.Properties.ShortCode)
	}
	return res, nil
}

func (s *service) Search(ctx context.Context, query string) (SearchResult, error) {
	fc, err := s.client.Search(ctx, query, searchLimit)
	if err != nil {
		return SearchResult{}, apperrors.Upstream("geocode_search_failed", "Error al buscar ubicación", http.StatusInternalServerError, upstream.DetailOf(err), err)
	}

	features := fc.Features
	if len(features) > searchLimit {
		features = features[:searchLimit]
	}
	results := make([]Place, 0, len(features))
	for _, f := range features {
		p := Place{Name: f.Text, FullName: f.PlaceName}
		if len(f.Center) >= 2 {
			p.Coordinates = Coordinates{Lon: f.Center[0], Lat: f.Center[1]}
		}
		if c, ok := countryContext(f.Context); ok {
			p.Country = c.Text
			p.CountryCode = upperCode(c.ShortCode)
		}
		results = append(results, p)
	}
	s.logger.Debug("geocode search", "query", query, "results", len(results))
	return SearchResult{Query: query, Results: results}, nil
}

func findFeature(features []Feature, placeType string) (Feature, bool) {
	for _, f := range features {
		if f.HasType(placeType) {
			return f, true
		}
	}
	return Feature{}, false
}

func countryContext(entries []ContextEntry) (ContextEntry, bool) {
	for _, c := range entries {
		if strings.HasPrefix(c.ID, "country") {
			return c, true
		}
	}
	return ContextEntry{}, false
}

func upperCode(code *string) string {
	if code == nil {
		return ""
	}
	return strings.ToUpper(*code)
}

func fallbackName(q ReverseQuery) string {
	lat, lon := q.LatText, q.LonText
	if lat == "" {
		lat = formatCoord(q.Lat)
	}
	if lon == "" {
		lon = formatCoord(q.Lon)
	}
	return lat + ", " + lon
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
