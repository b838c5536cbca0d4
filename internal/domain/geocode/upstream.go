package geocode

// FeatureCollection mirrors the Mapbox geocoding v5 response.
type FeatureCollection struct {
	Features []Feature `json:"features"`
}

// Feature is a single geocoded result.
type Feature struct {
	ID         string            `json:"id"`
	Text       string            `json:"text"`
	PlaceName  string            `json:"place_name"`
	PlaceType  []string          `json:"place_type"`
	Center     []float64         `json:"center"`
	Properties FeatureProperties `json:"properties"`
	Context    []ContextEntry    `json:"context"`
}

// FeatureProperties carries the optional ISO short code.
type FeatureProperties struct {
	ShortCode *string `json:"short_code"`
}

// ContextEntry is a parent region of a feature.
type ContextEntry struct {
	ID        string  `json:"id"`
	Text      string  `json:"text"`
	ShortCode *string `json:"short_code"`
}

// HasType reports whether the feature is of place type t.
func (f Feature) HasType(t string) bool {
	for _, pt := range f.PlaceType {
		if pt == t {
			return true
		}
	}
	return false
}
