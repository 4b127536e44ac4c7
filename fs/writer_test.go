package fs_test

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cragdex/cragdex"
	"github.com/cragdex/cragdex/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoute() *cragdex.Route {
	lat := 37.7341
	lon := -119.6379
	return &cragdex.Route{
		Name:        "The Nose",
		Difficulty:  "5.14a",
		Description: "Célèbre voie — the most famous rock climb in the world.",
		AccessInfo:  "Approach via the El Cap trail.",
		UserRatings: []cragdex.Rating{
			{Stars: 3, User: "alice", Comment: "Unforgettable."},
			{Stars: 5},
		},
		Location: cragdex.Location{
			Latitude:      &lat,
			Longitude:     &lon,
			AreaHierarchy: []string{"California", "Yosemite", "El Capitan"},
			Elevation:     "7569",
		},
		Images: []string{
			"https://example.com/photos/nose-1.jpg",
			"https://example.com/photos/nose-2.jpg",
		},
		URL: "https://example.com/route/1/the-nose",
	}
}

func TestJSONExporter_Export(t *testing.T) {
	t.Parallel()

	t.Run("round-trips field values and ordering", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "routes.json")
		exporter := &fs.JSONExporter{Path: path}
		want := testRoute()

		require.NoError(t, exporter.Export([]*cragdex.Route{want}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var got []*cragdex.Route
		require.NoError(t, json.Unmarshal(data, &got))
		require.Len(t, got, 1)
		assert.Equal(t, want, got[0])
	})

	t.Run("preserves non-ASCII characters unescaped", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "routes.json")
		exporter := &fs.JSONExporter{Path: path}

		require.NoError(t, exporter.Export([]*cragdex.Route{testRoute()}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "Célèbre voie")
		assert.NotContains(t, string(data), `\u`)
	})

	t.Run("uses schema field names", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "routes.json")
		exporter := &fs.JSONExporter{Path: path}

		require.NoError(t, exporter.Export([]*cragdex.Route{testRoute()}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		for _, field := range []string{"access_info", "user_ratings", "area_hierarchy", "difficulty"} {
			assert.Contains(t, string(data), `"`+field+`"`)
		}
	})

	t.Run("writes empty array for no routes", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "routes.json")
		exporter := &fs.JSONExporter{Path: path}

		require.NoError(t, exporter.Export(nil))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[]", strings.TrimSpace(string(data)))
	})
}

func TestCSVExporter_Export(t *testing.T) {
	t.Parallel()

	readRows := func(t *testing.T, path string) [][]string {
		t.Helper()
		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()
		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		return rows
	}

	t.Run("writes header and computed summary fields", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "routes.csv")
		exporter := &fs.CSVExporter{Path: path}

		require.NoError(t, exporter.Export([]*cragdex.Route{testRoute()}))

		rows := readRows(t, path)
		require.Len(t, rows, 2)
		assert.Equal(t, []string{
			"name", "difficulty", "description", "access_info",
			"rating_count", "avg_rating", "location_area",
			"latitude", "longitude", "elevation", "image_count", "url",
		}, rows[0])

		row := rows[1]
		assert.Equal(t, "The Nose", row[0])
		assert.Equal(t, "2", row[4])
		assert.Equal(t, "4.0", row[5])
		assert.Equal(t, "California, Yosemite, El Capitan", row[6])
		assert.Equal(t, "37.7341", row[7])
		assert.Equal(t, "-119.6379", row[8])
		assert.Equal(t, "7569", row[9])
		assert.Equal(t, "2", row[10])
	})

	t.Run("renders missing optional fields as N/A", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "routes.csv")
		exporter := &fs.CSVExporter{Path: path}
		route := &cragdex.Route{
			Name:       "Unknown",
			Difficulty: "N/A",
			URL:        "https://example.com/route/2/unknown",
		}

		require.NoError(t, exporter.Export([]*cragdex.Route{route}))

		rows := readRows(t, path)
		require.Len(t, rows, 2)
		row := rows[1]
		assert.Equal(t, "0", row[4])
		assert.Equal(t, "N/A", row[5])
		assert.Equal(t, "", row[6])
		assert.Equal(t, "N/A", row[7])
		assert.Equal(t, "N/A", row[8])
		assert.Equal(t, "N/A", row[9])
	})

	t.Run("truncates long text with ellipsis", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "routes.csv")
		exporter := &fs.CSVExporter{Path: path}
		route := testRoute()
		route.Description = strings.Repeat("d", 600)
		route.AccessInfo = strings.Repeat("a", 400)

		require.NoError(t, exporter.Export([]*cragdex.Route{route}))

		rows := readRows(t, path)
		row := rows[1]
		assert.Len(t, row[2], 503)
		assert.True(t, strings.HasSuffix(row[2], "..."))
		assert.Len(t, row[3], 303)
		assert.True(t, strings.HasSuffix(row[3], "..."))
	})
}
