package github

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/h0m10/citypulse-api/pkg/errors"
	"github.com/h0m10/citypulse-api/pkg/metrics"
	"github.com/h0m10/citypulse-api/pkg/upstream"
)

const defaultEnrichLimit = 12

// Service exposes developer and repository discovery.
type Service interface {
	SearchUsers(ctx context.Context, q SearchQuery) (UserSearchResult, error)
	SearchRepos(ctx context.Context, q SearchQuery) (RepoSearchResult, error)
	GetUser(ctx context.Context, login string) (UserDetail, error)
}

// Client talks to the GitHub REST API.
type Client interface {
	SearchUsers(ctx context.Context, params SearchParams) (UserSearchPayload, error)
	SearchRepositories(ctx context.Context, params SearchParams) (RepoSearchPayload, error)
	GetUser(ctx context.Context, login string) (UserPayload, error)
}

type service struct {
	cfg    Config
	client Client
	logger *slog.Logger
}

// NewService wires up the GitHub domain.
func NewService(cfg Config, client Client, logger *slog.Logger) Service {
	if cfg.EnrichLimit <= 0 {
		cfg.EnrichLimit = defaultEnrichLimit
	}
	return &service{
		cfg:    cfg,
		client: client,
		logger: logger.With("component", "github.service"),
	}
}

func (s *service) SearchUsers(ctx context.Context, q SearchQuery) (UserSearchResult, error) {
	payload, err := s.client.SearchUsers(ctx, SearchParams{
		Query:   "location:" + q.Location,
		Sort:    q.Sort,
		Order:   "desc",
		Page:    q.Page,
		PerPage: q.PerPage,
	})
	if err != nil {
		return UserSearchResult{}, apperrors.Upstream("github_users_failed", "Error al buscar usuarios de GitHub", upstream.StatusOf(err), upstream.DetailOf(err), err)
	}

	items := payload.Items
	if len(items) > s.cfg.EnrichLimit {
		items = items[:s.cfg.EnrichLimit]
	}
	return UserSearchResult{
		TotalCount: payload.TotalCount,
		Location:   q.Location,
		Users:      s.enrich(ctx, items),
		Page:       q.Page,
		PerPage:    q.PerPage,
	}, nil
}

// enrich looks up every hit concurrently. Tasks never return an error, so the
// group never cancels siblings; a failed lookup leaves a partial record.
func (s *service) enrich(ctx context.Context, items []UserSummary) []Profile {
	profiles := make([]Profile, len(items))
	var g errgroup.Group
	g.SetLimit(s.cfg.EnrichLimit)
	for i, item := range items {
		g.Go(func() error {
			detail, err := s.client.GetUser(ctx, item.Login)
			if err != nil {
				metrics.EnrichmentFailures.Inc()
				s.logger.Warn("github user enrichment failed", "login", item.Login, "error", err)
				profiles[i] = partialProfile(item)
				return nil
			}
			profiles[i] = enrichedProfile(item, detail)
			return nil
		})
	}
	_ = g.Wait()
	return profiles
}

func (s *service) SearchRepos(ctx context.Context, q SearchQuery) (RepoSearchResult, error) {
	payload, err := s.client.SearchRepositories(ctx, SearchParams{
		Query:   q.Location + " in:description,readme",
		Sort:    q.Sort,
		Order:   "desc",
		Page:    q.Page,
		PerPage: q.PerPage,
	})
	if err != nil {
		return RepoSearchResult{}, apperrors.Upstream("github_repos_failed", "Error al buscar repositorios", upstream.StatusOf(err), upstream.DetailOf(err), err)
	}

	repos := make([]Repository, 0, len(payload.Items))
	for _, item := range payload.Items {
		repos = append(repos, toRepository(item))
	}
	return RepoSearchResult{
		TotalCount: payload.TotalCount,
		Location:   q.Location,
		Repos:      repos,
		Page:       q.Page,
		PerPage:    q.PerPage,
	}, nil
}

func (s *service) GetUser(ctx context.Context, login string) (UserDetail, error) {
	user, err := s.client.GetUser(ctx, login)
	if err != nil {
		return UserDetail{}, apperrors.Upstream("github_user_failed", fmt.Sprintf("Error al obtener usuario \"%s\"", login), upstream.StatusOf(err), upstream.DetailOf(err), err)
	}
	return UserDetail{
		ID:          user.ID,
		Login:       user.Login,
		Name:        user.Name,
		AvatarURL:   user.AvatarURL,
		HTMLURL:     user.HTMLURL,
		Bio:         user.Bio,
		Company:     user.Company,
		Location:    user.Location,
		Email:       user.Email,
		Blog:        user.Blog,
		PublicRepos: user.PublicRepos,
		PublicGists: user.PublicGists,
		Followers:   user.Followers,
		Following:   user.Following,
		CreatedAt:   user.CreatedAt,
	}, nil
}

func partialProfile(item UserSummary) Profile {
	return Profile{
		ID:        item.ID,
		Login:     item.Login,
		AvatarURL: item.AvatarURL,
		HTMLURL:   item.HTMLURL,
	}
}

func enrichedProfile(item UserSummary, detail UserPayload) Profile {
	p := partialProfile(item)
	p.Name = detail.Name
	p.Bio = detail.Bio
	p.Company = detail.Company
	p.Location = detail.Location
	p.PublicRepos = detail.PublicRepos
	p.Followers = detail.Followers
	p.Following = detail.Following
	return p
}

func toRepository(item RepoPayload) Repository {
	return Repository{
		ID:              item.ID,
		Name:            item.Name,
		FullName:        item.FullName,
		Description:     item.Description,
		HTMLURL:         item.HTMLURL,
		Homepage:        item.Homepage,
		Language:        item.Language,
		StargazersCount: item.StargazersCount,
		ForksCount:      item.ForksCount,
		WatchersCount:   item.WatchersCount,
		OpenIssuesCount: item.OpenIssuesCount,
		Topics:          item.Topics,
		Owner:           Owner{Login: item.Owner.Login, AvatarURL: item.Owner.AvatarURL},
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}
