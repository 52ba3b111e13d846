package models

// Specialty is a medical sub-specialty offered under a category.
type Specialty struct {
	Name        string `json:"Name"`
	Description string `json:"Description"`
}

// Category groups the specialties a user can search within.
type Category struct {
	Name        string      `json:"name"`
	Specialties []Specialty `json:"specialties"`
}
