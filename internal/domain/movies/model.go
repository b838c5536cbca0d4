package movies

// SearchQuery is a title search.
type SearchQuery struct {
	Query string
	Page  int
	Lang  string
}

// PopularQuery pages through the popular list.
type PopularQuery struct {
	Page int
	Lang string
}

// DetailQuery selects a single movie.
type DetailQuery struct {
	ID   int64
	Lang string
}

// Summary is a movie card.
type Summary struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Overview      *string `json:"overview"`
	PosterURL     *string `json:"poster_url"`
	BackdropURL   *string `json:"backdrop_url"`
	ReleaseDate   string  `json:"release_date"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int     `json:"vote_count"`
	Popularity    float64 `json:"popularity"`
	GenreIDs      []int   `json:"genre_ids"`
}

// SearchResult is the payload of the search route.
type SearchResult struct {
	TotalResults int       `json:"total_results"`
	Query        string    `json:"query"`
	Movies       []Summary `json:"movies"`
	Page         int       `json:"page"`
	TotalPages   int       `json:"total_pages"`
}

// PopularResult is the payload of the popular route.
type PopularResult struct {
	Movies     []Summary `json:"movies"`
	Page       int       `json:"page"`
	TotalPages int       `json:"total_pages"`
}

// CastMember is a billed actor.
type CastMember struct {
	Name       string  `json:"name"`
	Character  string  `json:"character"`
	ProfileURL *string `json:"profile_url"`
}

// Detail is the full movie page.
type Detail struct {
	ID                  int64             `json:"id"`
	Title               string            `json:"title"`
	OriginalTitle       string            `json:"original_title"`
	Tagline             *string           `json:"tagline"`
	Overview            *string           `json:"overview"`
	PosterURL           *string           `json:"poster_url"`
	BackdropURL         *string           `json:"backdrop_url"`
	ReleaseDate         string            `json:"release_date"`
	Runtime             *int              `json:"runtime"`
	Budget              int64             `json:"budget"`
	Revenue             int64             `json:"revenue"`
	VoteAverage         float64           `json:"vote_average"`
	VoteCount           int               `json:"vote_count"`
	Genres              []Genre           `json:"genres"`
	ProductionCountries []ProductionPlace `json:"production_countries"`
	SpokenLanguages     []SpokenLanguage  `json:"spoken_languages"`
	Cast                []CastMember      `json:"cast"`
	Trailer             *string           `json:"trailer"`
}

// Config tunes the movies domain.
type Config struct {
	ImageBaseURL string
}
