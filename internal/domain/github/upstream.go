package github

// SearchParams is the upstream search request.
type SearchParams struct {
	Query   string
	Sort    string
	Order   string
	Page    int
	PerPage int
}

// UserSearchPayload mirrors GET /search/users.
type UserSearchPayload struct {
	TotalCount int           `json:"total_count"`
	Items      []UserSummary `json:"items"`
}

// UserSummary is a user search hit.
type UserSummary struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url"`
}

// RepoSearchPayload mirrors GET /search/repositories.
type RepoSearchPayload struct {
	TotalCount int           `json:"total_count"`
	Items      []RepoPayload `json:"items"`
}

// RepoPayload is a repository search hit.
type RepoPayload struct {
	ID              int64       `json:"id"`
	Name            string      `json:"name"`
	FullName        string      `json:"full_name"`
	Description     *string     `json:"description"`
	HTMLURL         string      `json:"html_url"`
	Homepage        *string     `json:"homepage"`
	Language        *string     `json:"language"`
	StargazersCount int         `json:"stargazers_count"`
	ForksCount      int         `json:"forks_count"`
	WatchersCount   int         `json:"watchers_count"`
	OpenIssuesCount int         `json:"open_issues_count"`
	Topics          []string    `json:"topics"`
	Owner           UserSummary `json:"owner"`
	CreatedAt       string      `json:"created_at"`
	UpdatedAt       string      `json:"updated_at"`
}

// UserPayload mirrors GET /users/{login}.
type UserPayload struct {
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
