package cragdex

import "context"

// Fallback values used when a facet is absent from a page. Absence is
// routine, not an error.
const (
	FallbackName        = "N/A"
	FallbackDifficulty  = "N/A"
	FallbackDescription = "No description available"
	FallbackAccessInfo  = "No access information available"
)

// Route represents one climbing route's extracted facts. A Route is
// constructed once per page fetch and never mutated afterwards.
type Route struct {
	Name        string   `json:"name"`
	Difficulty  string   `json:"difficulty"`
	Description string   `json:"description"`
	AccessInfo  string   `json:"access_info"`
	UserRatings []Rating `json:"user_ratings"`
	Location    Location `json:"location"`
	Images      []string `json:"images"`

	// URL is the canonical source URL and acts as the record's identity key.
	URL string `json:"url"`
}

// Validate returns an error if the route contains invalid fields.
func (r *Route) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "route URL required")
	}
	return nil
}

// AvgStars returns the mean star rating and true, or 0 and false when the
// route has no ratings.
func (r *Route) AvgStars() (float64, bool) {
	if len(r.UserRatings) == 0 {
		return 0, false
	}
	sum := 0
	for _, rating := range r.UserRatings {
		sum += rating.Stars
	}
	return float64(sum) / float64(len(r.UserRatings)), true
}

// Rating represents one discovered star-rating widget. Widgets with zero
// filled stars are never emitted; User and Comment are best-effort and may
// be absent independently.
type Rating struct {
	Stars   int    `json:"stars"`
	User    string `json:"user,omitempty"`
	Comment string `json:"comment,omitempty"`
}

// Location represents a route's geospatial and hierarchical placement.
// All fields are optional and independent, except that Latitude and
// Longitude are set together or not at all.
type Location struct {
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	AreaHierarchy []string `json:"area_hierarchy,omitempty"`

	// Elevation preserves the captured numeric text; units are not normalized.
	Elevation string `json:"elevation,omitempty"`
}

// RouteStore persists route records.
type RouteStore interface {
	// CreateRoute saves a route, replacing any existing record with the
	// same URL.
	CreateRoute(ctx context.Context, route *Route) error

	// FindRouteByURL retrieves a route by its source URL.
	// Returns ENOTFOUND if no route exists.
	FindRouteByURL(ctx context.Context, url string) (*Route, error)

	// FindRoutes retrieves routes matching the filter.
	FindRoutes(ctx context.Context, filter RouteFilter) ([]*Route, error)

	// DeleteRouteByURL permanently removes a route.
	// Returns ENOTFOUND if no route exists.
	DeleteRouteByURL(ctx context.Context, url string) error
}

// RouteFilter represents a filter for FindRoutes.
type RouteFilter struct {
	URL        *string
	Difficulty *string

	Offset int
	Limit  int
}

// Exporter serializes an assembled route collection.
type Exporter interface {
	Export(routes []*Route) error
}
