package githubapi

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/h0m10/citypulse-api/internal/domain/github"
	"github.com/h0m10/citypulse-api/pkg/upstream"
)

const defaultBaseURL = "https://api.github.com"

// Client calls the GitHub REST API. Requests are unauthenticated, and
// therefore more tightly rate limited upstream, when no token is set.
type Client struct {
	api *upstream.Client
}

// NewClient builds an API client.
func NewClient(token, baseURL, userAgent string, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	opts := []upstream.Option{
		upstream.WithTimeout(timeout),
		upstream.WithHeader("Accept", "application/vnd.github.v3+json"),
	}
	if userAgent != "" {
		opts = append(opts, upstream.WithHeader("User-Agent", userAgent))
	}
	if token = strings.TrimSpace(token); token != "" {
		opts = append(opts, upstream.WithHeader("Authorization", "token "+token))
	}
	return &Client{api: upstream.New("github", baseURL, opts...)}
}

// SearchUsers calls /search/users.
func (c *Client) SearchUsers(ctx context.Context, params github.SearchParams) (github.UserSearchPayload, error) {
	var out github.UserSearchPayload
	if err := c.api.GetJSON(ctx, "/search/users", searchQuery(params), &out); err != nil {
		return github.UserSearchPayload{}, err
	}
	return out, nil
}

// SearchRepositories calls /search/repositories.
func (c *Client) SearchRepositories(ctx context.Context, params github.SearchParams) (github.RepoSearchPayload, error) {
	var out github.RepoSearchPayload
	if err := c.api.GetJSON(ctx, "/search/repositories", searchQuery(params), &out); err != nil {
		return github.RepoSearchPayload{}, err
	}
	return out, nil
}

// GetUser calls /users/{login}.
func (c *Client) GetUser(ctx context.Context, login string) (github.UserPayload, error) {
	var out github.UserPayload
	if err := c.api.GetJSON(ctx, "/users/"+url.PathEscape(login), nil, &out); err != nil {
		return github.UserPayload{}, err
	}
	return out, nil
}

func searchQuery(params github.SearchParams) url.Values {
	q := url.Values{}
	q.Set("q", params.Query)
	if params.Sort != "" {
		q.Set("sort", params.Sort)
	}
	if params.Order != "" {
		q.Set("order", params.Order)
	}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(params.PerPage))
	}
	return q
}

var _ github.Client = (*Client)(nil)
