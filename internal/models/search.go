package models

// SearchRequest is the state of the page's sidebar widgets.
type SearchRequest struct {
	HealthPlan string
	Category   string
	Specialty  string
	Zip        string
	Radius     int
	// Focus narrows the table to providers with these display names.
	Focus []string
	// Selected holds row indexes into the focused table.
	Selected []int
}

// MapView is the initial camera of the map: the bounding box of the plotted
// providers, its center and a zoom level that fits it.
type MapView struct {
	MinLatitude  float64 `json:"min_latitude"`
	MaxLatitude  float64 `json:"max_latitude"`
	MinLongitude float64 `json:"min_longitude"`
	MaxLongitude float64 `json:"max_longitude"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Zoom         float64 `json:"zoom"`
}

// SearchResult is everything the page renders for one search.
type SearchResult struct {
	Origin    Coordinates   `json:"origin"`
	Names     []string      `json:"names"`
	Providers []ProviderRow `json:"providers"`
	Selected  []ProviderRow `json:"selected"`
	View      *MapView      `json:"view,omitempty"`
	Message   string        `json:"message,omitempty"`
}
