package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []string{"ALLIED HEALTH", "ANCILLARY", "BEHAVIORAL HEALTH", "FACILITIES", "PHYSICIANS"}, c.Categories())
	assert.Equal(t, "BEHAVIORAL HEALTH", c.DefaultCategory())

	s, ok := c.Lookup("BEHAVIORAL HEALTH", "PSYCHOLOGISTS")
	require.True(t, ok)
	assert.NotEmpty(t, s.Description)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		expectError bool
		categories  []string
		defaultCat  string
	}{
		{
			name:       "file order kept",
			data:       `{"C":[{"Name":"c1"}],"A":[{"Name":"a1"}],"B":[{"Name":"b1"}],"D":[]}`,
			categories: []string{"C", "A", "B", "D"},
			defaultCat: "B",
		},
		{
			name:       "repeated category keeps first position",
			data:       `{"A":[{"Name":"old"}],"B":[],"A":[{"Name":"new"}],"C":[]}`,
			categories: []string{"A", "B", "C"},
			defaultCat: "C",
		},
		{
			name:       "fewer than three categories",
			data:       `{"ONLY":[{"Name":"x","Description":"y"}]}`,
			categories: []string{"ONLY"},
			defaultCat: "ONLY",
		},
		{
			name:        "empty object",
			data:        `{}`,
			expectError: true,
		},
		{
			name:        "invalid json",
			data:        `[`,
			expectError: true,
		},
		{
			name:        "top level array",
			data:        `[{"A":[]}]`,
			expectError: true,
		},
		{
			name:        "category is not a list",
			data:        `{"A":"x"}`,
			expectError: true,
		},
		{
			name:        "truncated object",
			data:        `{"A":[]`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse([]byte(tt.data))
			if tt.expectError {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.categories, c.Categories())
			assert.Equal(t, tt.defaultCat, c.DefaultCategory())
		})
	}
}

func TestSpecialtiesKeepFileOrder(t *testing.T) {
	c, err := Parse([]byte(`{"X":[{"Name":"zeta"},{"Name":"alpha"}]}`))
	require.NoError(t, err)

	specialties := c.Specialties("X")
	require.Len(t, specialties, 2)
	assert.Equal(t, "zeta", specialties[0].Name)
	assert.Equal(t, "alpha", specialties[1].Name)

	assert.Empty(t, c.Specialties("missing"))
	_, ok := c.Lookup("X", "beta")
	assert.False(t, ok)
	assert.True(t, c.HasCategory("X"))
	assert.False(t, c.HasCategory("Y"))
}

func TestLoad(t *testing.T) {
	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "categories.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"X":[{"Name":"one"}]}`), 0o600))

		c, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"X"}, c.Categories())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "catalog: failed to read")
	})

	t.Run("empty path uses bundled catalog", func(t *testing.T) {
		c, err := Load("")
		require.NoError(t, err)
		assert.Len(t, c.All(), len(c.Categories()))
	})
}
