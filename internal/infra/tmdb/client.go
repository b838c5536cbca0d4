package tmdb

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/h0m10/citypulse-api/internal/domain/movies"
	"github.com/h0m10/citypulse-api/pkg/upstream"
)

const defaultBaseURL = "https://api.themoviedb.org/3"

// Client is the TMDB API client.
type Client struct {
	apiKey string
	api    *upstream.Client
}

// NewClient creates a new TMDB API client.
func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey: apiKey,
		api: upstream.New("tmdb", baseURL,
			upstream.WithTimeout(timeout),
			upstream.WithMessageField("status_message"),
		),
	}
}

// SearchMovies calls /search/movie.
func (c *Client) SearchMovies(ctx context.Context, q movies.SearchQuery) (movies.ListPayload, error) {
	params := c.params(q.Lang)
	params.Set("query", q.Query)
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("include_adult", "false")

	var out movies.ListPayload
	if err := c.api.GetJSON(ctx, "/search/movie", params, &out); err != nil {
		return movies.ListPayload{}, err
	}
	return out, nil
}

// PopularMovies calls /movie/popular.
func (c *Client) PopularMovies(ctx context.Context, q movies.PopularQuery) (movies.ListPayload, error) {
	params := c.params(q.Lang)
	params.Set("page", strconv.Itoa(q.Page))

	var out movies.ListPayload
	if err := c.api.GetJSON(ctx, "/movie/popular", params, &out); err != nil {
		return movies.ListPayload{}, err
	}
	return out, nil
}

// MovieDetail calls /movie/{id} with credits and videos in the same round trip.
func (c *Client) MovieDetail(ctx context.Context, q movies.DetailQuery) (movies.DetailPayload, error) {
	params := c.params(q.Lang)
	params.Set("append_to_response", "credits,videos")

	var out movies.DetailPayload
	path := "/movie/" + strconv.FormatInt(q.ID, 10)
	if err := c.api.GetJSON(ctx, path, params, &out); err != nil {
		return movies.DetailPayload{}, err
	}
	return out, nil
}

func (c *Client) params(lang string) url.Values {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	if lang != "" {
		params.Set("language", lang)
	}
	return params
}

var _ movies.Client = (*Client)(nil)
