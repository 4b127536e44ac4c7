// Package fs provides file-based exporters for route collections.
package fs

import (
	"encoding/csv"
	"encoding/json"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cragdex/cragdex"
)

// Ensure exporters implement cragdex.Exporter at compile time.
var (
	_ cragdex.Exporter = (*JSONExporter)(nil)
	_ cragdex.Exporter = (*CSVExporter)(nil)
)

// JSONExporter writes a route collection as an indented JSON array with
// field names matching the route schema. Non-ASCII characters are written
// unescaped.
type JSONExporter struct {
	Path string
}

// Export writes the routes to the configured path, overwriting any
// existing file.
func (e *JSONExporter) Export(routes []*cragdex.Route) error {
	if routes == nil {
		routes = []*cragdex.Route{}
	}

	f, err := os.Create(e.Path)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(routes); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// csvHeader is the flattened tabular schema, one row per route.
var csvHeader = []string{
	"name", "difficulty", "description", "access_info",
	"rating_count", "avg_rating", "location_area",
	"latitude", "longitude", "elevation", "image_count", "url",
}

// Free-text columns are capped to keep rows spreadsheet-friendly.
const (
	descriptionLimit = 500
	accessInfoLimit  = 300
)

// CSVExporter writes a route collection as a flattened table with computed
// summary columns (rating count, average rating, joined area hierarchy).
// Missing optional fields render as "N/A".
type CSVExporter struct {
	Path string
}

// Export writes the routes to the configured path, overwriting any
// existing file.
func (e *CSVExporter) Export(routes []*cragdex.Route) error {
	f, err := os.Create(e.Path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		f.Close()
		return err
	}
	for _, route := range routes {
		if err := w.Write(csvRow(route)); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// csvRow flattens one route into the tabular schema.
func csvRow(route *cragdex.Route) []string {
	avg := "N/A"
	if mean, ok := route.AvgStars(); ok {
		avg = strconv.FormatFloat(math.Round(mean*10)/10, 'f', 1, 64)
	}

	return []string{
		route.Name,
		route.Difficulty,
		truncate(route.Description, descriptionLimit),
		truncate(route.AccessInfo, accessInfoLimit),
		strconv.Itoa(len(route.UserRatings)),
		avg,
		strings.Join(route.Location.AreaHierarchy, ", "),
		formatCoord(route.Location.Latitude),
		formatCoord(route.Location.Longitude),
		orNA(route.Location.Elevation),
		strconv.Itoa(len(route.Images)),
		route.URL,
	}
}

func formatCoord(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// truncate caps s at limit runes, marking longer values with a trailing
// ellipsis.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
