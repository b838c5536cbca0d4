package movies

import (
	"context"
	"log/slog"
	"strings"

	apperrors "github.com/h0m10/citypulse-api/pkg/errors"
	"github.com/h0m10/citypulse-api/pkg/upstream"
)

const (
	defaultImageBaseURL = "https://image.tmdb.org/t/p"
	trailerURLPrefix    = "https://www.youtube.com/watch?v="
	overviewLimit       = 200
	searchLimit         = 12
	castLimit           = 10
)

// Image size tiers understood by the TMDB image CDN.
const (
	tierPoster         = "w342"
	tierBackdrop       = "w780"
	tierDetailPoster   = "w500"
	tierDetailBackdrop = "original"
	tierProfile        = "w185"
)

// Service exposes movie discovery.
type Service interface {
	Search(ctx context.Context, q SearchQuery) (SearchResult, error)
	Popular(ctx context.Context, q PopularQuery) (PopularResult, error)
	Detail(ctx context.Context, q DetailQuery) (Detail, error)
}

// Client talks to TMDB.
type Client interface {
	SearchMovies(ctx context.Context, q SearchQuery) (ListPayload, error)
	PopularMovies(ctx context.Context, q PopularQuery) (ListPayload, error)
	MovieDetail(ctx context.Context, q DetailQuery) (DetailPayload, error)
}

type service struct {
	imageBase string
	client    Client
	logger    *slog.Logger
}

// NewService wires up the movies domain.
func NewService(cfg Config, client Client, logger *slog.Logger) Service {
	base := strings.TrimRight(strings.TrimSpace(cfg.ImageBaseURL), "/")
	if base == "" {
		base = defaultImageBaseURL
	}
	return &service{
		imageBase: base,
		client:    client,
		logger:    logger.With("component", "movies.service"),
	}
}

func (s *service) Search(ctx context.Context, q SearchQuery) (SearchResult, error) {
	payload, err := s.client.SearchMovies(ctx, q)
	if err != nil {
		return SearchResult{}, apperrors.Upstream("movie_search_failed", "Error al buscar películas", upstream.StatusOf(err), upstream.DetailOf(err), err)
	}
	results := payload.Results
	if len(results) > searchLimit {
		results = results[:searchLimit]
	}
	return SearchResult{
		TotalResults: payload.TotalResults,
		Query:        q.Query,
		Movies:       s.summaries(results),
		Page:         payload.Page,
		TotalPages:   payload.TotalPages,
	}, nil
}

func (s *service) Popular(ctx context.Context, q PopularQuery) (PopularResult, error) {
	payload, err := s.client.PopularMovies(ctx, q)
	if err != nil {
		return PopularResult{}, apperrors.Upstream("movie_popular_failed", "Error al obtener películas populares", upstream.StatusOf(err), upstream.DetailOf(err), err)
	}
	return PopularResult{
		Movies:     s.summaries(payload.Results),
		Page:       payload.Page,
		TotalPages: payload.TotalPages,
	}, nil
}

func (s *service) Detail(ctx context.Context, q DetailQuery) (Detail, error) {
	m, err := s.client.MovieDetail(ctx, q)
	if err != nil {
		return Detail{}, apperrors.Upstream("movie_detail_failed", "Error al obtener detalles de la película", upstream.StatusOf(err), upstream.DetailOf(err), err)
	}

	var cast []CastMember
	if m.Credits != nil {
		entries := m.Credits.Cast
		if len(entries) > castLimit {
			entries = entries[:castLimit]
		}
		cast = make([]CastMember, 0, len(entries))
		for _, c := range entries {
			cast = append(cast, CastMember{
				Name:       c.Name,
				Character:  c.Character,
				ProfileURL: s.imageURL(tierProfile, c.ProfilePath),
			})
		}
	}

	return Detail{
		ID:                  m.ID,
		Title:               m.Title,
		OriginalTitle:       m.OriginalTitle,
		Tagline:             m.Tagline,
		Overview:            m.Overview,
		PosterURL:           s.imageURL(tierDetailPoster, m.PosterPath),
		BackdropURL:         s.imageURL(tierDetailBackdrop, m.BackdropPath),
		ReleaseDate:         m.ReleaseDate,
		Runtime:             m.Runtime,
		Budget:              m.Budget,
		Revenue:             m.Revenue,
		VoteAverage:         m.VoteAverage,
		VoteCount:           m.VoteCount,
		Genres:              m.Genres,
		ProductionCountries: m.ProductionCountries,
		SpokenLanguages:     m.SpokenLanguages,
		Cast:                cast,
		Trailer:             trailerURL(m.Videos),
	}, nil
}

func (s *service) summaries(results []MoviePayload) []Summary {
	out := make([]Summary, 0, len(results))
	for _, m := range results {
		out = append(out, Summary{
			ID:            m.ID,
			Title:         m.Title,
			OriginalTitle: m.OriginalTitle,
			Overview:      truncateOverview(m.Overview),
			PosterURL:     s.imageURL(tierPoster, m.PosterPath),
			BackdropURL:   s.imageURL(tierBackdrop, m.BackdropPath),
			ReleaseDate:   m.ReleaseDate,
			VoteAverage:   m.VoteAverage,
			VoteCount:     m.VoteCount,
			Popularity:    m.Popularity,
			GenreIDs:      m.GenreIDs,
		})
	}
	return out
}

// imageURL joins base, tier and fragment; nil or empty fragments yield nil.
func (s *service) imageURL(tier string, path *string) *string {
	if path == nil || *path == "" {
		return nil
	}
	u := s.imageBase + "/" + tier + *path
	return &u
}

// truncateOverview cuts to overviewLimit characters and marks the cut.
func truncateOverview(overview *string) *string {
	if overview == nil {
		return nil
	}
	runes := []rune(*overview)
	if len(runes) <= overviewLimit {
		out := *overview
		return &out
	}
	out := string(runes[:overviewLimit]) + "..."
	return &out
}

func trailerURL(videos *Videos) *string {
	if videos == nil {
		return nil
	}
	for _, v := range videos.Results {
		if v.Type == "Trailer" && v.Site == "YouTube" {
			u := trailerURLPrefix + v.Key
			return &u
		}
	}
	return nil
}
