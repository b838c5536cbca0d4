package movies

// ListPayload mirrors TMDB paged movie lists (search and popular).
type ListPayload struct {
	Page         int            `json:"page"`
	Results      []MoviePayload `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

// MoviePayload is a list entry.
type MoviePayload struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Overview      *string `json:"overview"`
	PosterPath    *string `json:"poster_path"`
	BackdropPath  *string `json:"backdrop_path"`
	ReleaseDate   string  `json:"release_date"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int     `json:"vote_count"`
	Popularity    float64 `json:"popularity"`
	GenreIDs      []int   `json:"genre_ids"`
}

// DetailPayload mirrors /movie/{id} with credits and videos appended.
type DetailPayload struct {
	ID                  int64             `json:"id"`
	Title               string            `json:"title"`
	OriginalTitle       string            `json:"original_title"`
	Tagline             *string           `json:"tagline"`
	Overview            *string           `json:"overview"`
	PosterPath          *string           `json:"poster_path"`
	BackdropPath        *string           `json:"backdrop_path"`
	ReleaseDate         string            `json:"release_date"`
	Runtime             *int              `json:"runtime"`
	Budget              int64             `json:"budget"`
	Revenue             int64             `json:"revenue"`
	VoteAverage         float64           `json:"vote_average"`
	VoteCount           int               `json:"vote_count"`
	Genres              []Genre           `json:"genres"`
	ProductionCountries []ProductionPlace `json:"production_countries"`
	SpokenLanguages     []SpokenLanguage  `json:"spoken_languages"`
	Credits             *Credits          `json:"credits"`
	Videos              *Videos           `json:"videos"`
}

// Genre is a TMDB genre reference.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ProductionPlace is a production country.
type ProductionPlace struct {
	ISO31661 string `json:"iso_3166_1"`
	Name     string `json:"name"`
}

// SpokenLanguage is a language spoken in the movie.
type SpokenLanguage struct {
	EnglishName string `json:"english_name"`
	ISO6391     string `json:"iso_639_1"`
	Name        string `json:"name"`
}

// Credits holds the appended cast list.
type Credits struct {
	Cast []CastPayload `json:"cast"`
}

// CastPayload is a cast entry.
type CastPayload struct {
	Name        string  `json:"name"`
	Character   string  `json:"character"`
	ProfilePath *string `json:"profile_path"`
}

// Videos holds the appended video list.
type Videos struct {
	Results []Video `json:"results"`
}

// Video is an embedded video reference.
type Video struct {
	Key  string `json:"key"`
	Site string `json:"site"`
	Type string `json:"type"`
}
