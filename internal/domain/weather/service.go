package weather

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	apperrors "github.com/h0m10/citypulse-api/pkg/errors"
	"github.com/h0m10/citypulse-api/pkg/upstream"
	"github.com/h0m10/citypulse-api/pkg/util"
)

const (
	iconURLTemplate = "https://openweathermap.org/img/wn/%s@%s.png"
	forecastCount   = 40
	forecastStride  = 8
)

// Service exposes current conditions and the daily forecast.
type Service interface {
	CurrentByCity(ctx context.Context, q CityQuery) (Report, error)
	CurrentByCoords(ctx context.Context, q CoordsQuery) (Report, error)
	Forecast(ctx context.Context, q CityQuery) (Forecast, error)
}

// Client fetches raw payloads from the weather provider.
type Client interface {
	Current(ctx context.Context, lookup Lookup) (CurrentPayload, error)
	Forecast(ctx context.Context, lookup Lookup) (ForecastPayload, error)
}

type service struct {
	client Client
	logger *slog.Logger
	now    func() time.Time
}

// NewService wires up the weather domain.
func NewService(client Client, logger *slog.Logger) Service {
	return &service{
		client: client,
		logger: logger.With("component", "weather.service"),
		now:    util.NowUTC,
	}
}

func (s *service) CurrentByCity(ctx context.Context, q CityQuery) (Report, error) {
	payload, err := s.client.Current(ctx, Lookup{City: q.City, Units: q.Units, Lang: q.Lang})
	if err != nil {
		status := upstream.StatusOf(err)
		if status == http.StatusNotFound {
			return Report{}, apperrors.Upstream("city_not_found", fmt.Sprintf("Ciudad \"%s\" no encontrada", q.City), status, upstream.DetailOf(err), err)
		}
		return Report{}, apperrors.Upstream("weather_error", "Error al obtener datos del clima", status, upstream.DetailOf(err), err)
	}
	report := s.toReport(payload)
	report.Coordinates = Coordinates{Lat: payload.Coord.Lat, Lon: payload.Coord.Lon}
	return report, nil
}

func (s *service) CurrentByCoords(ctx context.Context, q CoordsQuery) (Report, error) {
	lat, lon := q.Lat, q.Lon
	payload, err := s.client.Current(ctx, Lookup{Lat: &lat, Lon: &lon, Units: q.Units, Lang: q.Lang})
	if err != nil {
		return Report{}, apperrors.Upstream("weather_error", "Error al obtener datos del clima por coordenadas", upstream.StatusOf(err), upstream.DetailOf(err), err)
	}
	report := s.toReport(payload)
	report.Coordinates = Coordinates{Lat: q.Lat, Lon: q.Lon}
	return report, nil
}

func (s *service) Forecast(ctx context.Context, q CityQuery) (Forecast, error) {
	payload, err := s.client.Forecast(ctx, Lookup{City: q.City, Units: q.Units, Lang: q.Lang, Count: forecastCount})
	if err != nil {
		return Forecast{}, apperrors.Upstream("forecast_error", "Error al obtener pronóstico", upstream.StatusOf(err), upstream.DetailOf(err), err)
	}

	entries := sampleDaily(payload.List)
	s.logger.Debug("forecast sampled", "city", payload.City.Name, "intervals", len(payload.List), "days", len(entries))
	return Forecast{
		City:      payload.City.Name,
		Country:   payload.City.Country,
		Forecasts: entries,
	}, nil
}

func (s *service) toReport(p CurrentPayload) Report {
	cond := firstCondition(p.Weather)
	return Report{
		City:        p.Name,
		Country:     p.Sys.Country,
		Temperature: roundTemp(p.Main.Temp),
		FeelsLike:   roundTemp(p.Main.FeelsLike),
		TempMin:     roundTemp(p.Main.TempMin),
		TempMax:     roundTemp(p.Main.TempMax),
		Humidity:    p.Main.Humidity,
		Pressure:    p.Main.Pressure,
		Description: cond.Description,
		Icon:        cond.Icon,
		IconURL:     iconURL(cond.Icon, "4x"),
		WindSpeed:   p.Wind.Speed,
		WindDeg:     p.Wind.Deg,
		Clouds:      p.Clouds.All,
		Visibility:  p.Visibility,
		Sunrise:     util.FromUnix(p.Sys.Sunrise),
		Sunset:      util.FromUnix(p.Sys.Sunset),
		Timestamp:   util.FormatISO(s.now()),
	}
}

// sampleDaily keeps every 8th 3-hour interval, one per day.
func sampleDaily(items []ForecastItem) []ForecastEntry {
	entries := make([]ForecastEntry, 0, (len(items)+forecastStride-1)/forecastStride)
	for i := 0; i < len(items); i += forecastStride {
		item := items[i]
		cond := firstCondition(item.Weather)
		entries = append(entries, ForecastEntry{
			Date:        item.DtTxt,
			Temperature: roundTemp(item.Main.Temp),
			TempMin:     roundTemp(item.Main.TempMin),
			TempMax:     roundTemp(item.Main.TempMax),
			Description: cond.Description,
			Icon:        cond.Icon,
			IconURL:     iconURL(cond.Icon, "2x"),
			Humidity:    item.Main.Humidity,
			WindSpeed:   item.Wind.Speed,
		})
	}
	return entries
}

func firstCondition(conds []Condition) Condition {
	if len(conds) == 0 {
		return Condition{}
	}
	return conds[0]
}

func iconURL(icon, scale string) string {
	return fmt.Sprintf(iconURLTemplate, icon, scale)
}

// roundTemp rounds half up, so -2.5 becomes -2 rather than -3.
func roundTemp(v float64) int {
	return int(math.Floor(v + 0.5))
}
