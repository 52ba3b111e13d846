// Package catalog holds the medical categories and the specialties that can
// be searched under each of them.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"epo-browser/internal/models"
)

//go:embed categories_specialties.json
var embedded []byte

// defaultCategoryIndex is the category pre-selected in the sidebar.
const defaultCategoryIndex = 2

// Catalog maps category names to their specialties.
type Catalog struct {
	categories  []string
	specialties map[string][]models.Specialty
}

// Default returns the catalog bundled with the binary.
func Default() (*Catalog, error) {
	return Parse(embedded)
}

// Load reads a catalog from a JSON file. An empty path loads the bundled one.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a JSON object of category name to specialty list. Categories
// keep the order they appear in the file; a repeated name keeps its first
// position and its last specialty list.
func Parse(data []byte) (*Catalog, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to decode categories: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("catalog: failed to decode categories: expected an object")
	}

	var names []string
	specialties := make(map[string][]models.Specialty)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("catalog: failed to decode categories: %w", err)
		}
		name := tok.(string)

		var list []models.Specialty
		if err := dec.Decode(&list); err != nil {
			return nil, fmt.Errorf("catalog: failed to decode category %s: %w", name, err)
		}
		if _, seen := specialties[name]; !seen {
			names = append(names, name)
		}
		specialties[name] = list
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("catalog: failed to decode categories: %w", err)
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("catalog: no categories defined")
	}

	return &Catalog{categories: names, specialties: specialties}, nil
}

// Categories returns the category names in file order.
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.categories...)
}

// Specialties returns the specialties of a category in file order.
func (c *Catalog) Specialties(category string) []models.Specialty {
	return append([]models.Specialty(nil), c.specialties[category]...)
}

// Lookup finds a specialty by name within a category.
func (c *Catalog) Lookup(category, specialty string) (models.Specialty, bool) {
	for _, s := range c.specialties[category] {
		if s.Name == specialty {
			return s, true
		}
	}
	return models.Specialty{}, false
}

// HasCategory reports whether the category exists.
func (c *Catalog) HasCategory(category string) bool {
	_, ok := c.specialties[category]
	return ok
}

// DefaultCategory is the third category when there are at least three,
// otherwise the first.
func (c *Catalog) DefaultCategory() string {
	if len(c.categories) > defaultCategoryIndex {
		return c.categories[defaultCategoryIndex]
	}
	return c.categories[0]
}

// All returns every category with its specialties, in category order.
func (c *Catalog) All() []models.Category {
	out := make([]models.Category, 0, len(c.categories))
	for _, name := range c.categories {
		out = append(out, models.Category{Name: name, Specialties: c.Specialties(name)})
	}
	return out
}
