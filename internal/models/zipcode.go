package models

// Coordinates is a point on the map in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ZipCode is the centroid of a US postal code together with the place it names.
type ZipCode struct {
	PostalCode string  `json:"postal_code"`
	PlaceName  string  `json:"place_name,omitempty"`
	State      string  `json:"state,omitempty"`
	StateCode  string  `json:"state_code,omitempty"`
	County     string  `json:"county,omitempty"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

// Coordinates returns the centroid of the zip code.
func (z ZipCode) Coordinates() Coordinates {
	return Coordinates{Latitude: z.Latitude, Longitude: z.Longitude}
}
