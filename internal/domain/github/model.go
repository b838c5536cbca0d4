package github

// SearchQuery is the inbound search request after defaults are applied.
type SearchQuery struct {
	Location string
	Sort     string
	Page     int
	PerPage  int
}

// Profile is a developer in a location search. Enrichment fields are nil and
// counts are zero when the per-user lookup failed.
type Profile struct {
	ID          int64   `json:"id"`
	Login       string  `json:"login"`
	AvatarURL   string  `json:"avatar_url"`
	HTMLURL     string  `json:"html_url"`
	Name        *string `json:"name"`
	Bio         *string `json:"bio"`
	Company     *string `json:"company"`
	Location    *string `json:"location"`
	PublicRepos int     `json:"public_repos"`
	Followers   int     `json:"followers"`
	Following   int     `json:"following"`
}

// UserSearchResult is the payload of the user search route.
type UserSearchResult struct {
	TotalCount int       `json:"total_count"`
	Location   string    `json:"location"`
	Users      []Profile `json:"users"`
	Page       int       `json:"page"`
	PerPage    int       `json:"per_page"`
}

// Owner identifies a repository owner.
type Owner struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}

// Repository is a curated projection of a repository search hit.
type Repository struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	FullName        string   `json:"full_name"`
	Description     *string  `json:"description"`
	HTMLURL         string   `json:"html_url"`
	Homepage        *string  `json:"homepage"`
	Language        *string  `json:"language"`
	StargazersCount int      `json:"stargazers_count"`
	ForksCount      int      `json:"forks_count"`
	WatchersCount   int      `json:"watchers_count"`
	OpenIssuesCount int      `json:"open_issues_count"`
	Topics          []string `json:"topics"`
	Owner           Owner    `json:"owner"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
}

// RepoSearchResult is the payload of the repository search route.
type RepoSearchResult struct {
	TotalCount int          `json:"total_count"`
	Location   string       `json:"location"`
	Repos      []Repository `json:"repos"`
	Page       int          `json:"page"`
	PerPage    int          `json:"per_page"`
}

// UserDetail is the full profile of a single user.
type UserDetail struct {
	ID          int64   `json:"id"`
	Login       string  `json:"login"`
	Name        *string `json:"name"`
	AvatarURL   string  `json:"avatar_url"`
	HTMLURL     string  `json:"html_url"`
	Bio         *string `json:"bio"`
	Company     *string `json:"company"`
	Location    *string `json:"location"`
	Email       *string `json:"email"`
	Blog        *string `json:"blog"`
	PublicRepos int     `json:"public_repos"`
	PublicGists int     `json:"public_gists"`
	Followers   int     `json:"followers"`
	Following   int     `json:"following"`
	CreatedAt   string  `json:"created_at"`
}

// Config tunes the GitHub domain.
type Config struct {
	// EnrichLimit caps how many search hits get a detail lookup.
	EnrichLimit int
}
