package geocode

// ReverseQuery resolves coordinates to a place. LatText and LonText keep the
// coordinates as the caller wrote them for the fallback display name.
type ReverseQuery struct {
	Lat     float64
	Lon     float64
	LatText string
	LonText string
}

// Coordinates is a lat/lon pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ReverseResult is the place found at a coordinate.
type ReverseResult struct {
	City        string      `json:"city"`
	Country     string      `json:"country"`
	CountryCode string      `json:"country_code"`
	FullName    string      `json:"full_name"`
	Coordinates Coordinates `json:"coordinates"`
}

// Place is a search candidate.
type Place struct {
	Name        string      `json:"name"`
	FullName    string      `json:"full_name"`
	Coordinates Coordinates `json:"coordinates"`
	Country     string      `json:"country"`
	CountryCode string      `json:"country_code"`
}

// SearchResult lists the candidates for a query.
type SearchResult struct {
	Query   string  `json:"query"`
	Results []Place `json:"results"`
}
