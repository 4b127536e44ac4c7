package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/cragdex/cragdex"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ cragdex.RouteStore = (*RouteService)(nil)

// RouteService implements cragdex.RouteStore using SQLite. Ratings,
// location, and images are stored as JSON columns; each row also carries a
// content hash so repeat scrapes can detect page changes between runs.
type RouteService struct {
	db *DB
}

// NewRouteService creates a new RouteService.
func NewRouteService(db *DB) *RouteService {
	return &RouteService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateRoute saves a route, replacing any existing record with the same URL.
func (s *RouteService) CreateRoute(ctx context.Context, route *cragdex.Route) error {
	if err := route.Validate(); err != nil {
		return err
	}

	ratings, err := json.Marshal(route.UserRatings)
	if err != nil {
		return fmt.Errorf("failed to encode ratings: %w", err)
	}
	location, err := json.Marshal(route.Location)
	if err != nil {
		return fmt.Errorf("failed to encode location: %w", err)
	}
	images, err := json.Marshal(route.Images)
	if err != nil {
		return fmt.Errorf("failed to encode images: %w", err)
	}

	hash := hashContent(route.Name + route.Difficulty + route.Description +
		route.AccessInfo + string(ratings) + string(location) + string(images))

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO routes (id, url, name, difficulty, description, access_info, user_ratings, location, images, content_hash, scraped_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			name = excluded.name,
			difficulty = excluded.difficulty,
			description = excluded.description,
			access_info = excluded.access_info,
			user_ratings = excluded.user_ratings,
			location = excluded.location,
			images = excluded.images,
			content_hash = excluded.content_hash,
			scraped_at = excluded.scraped_at
	`, uuid.New().String(), route.URL, route.Name, route.Difficulty, route.Description,
		route.AccessInfo, string(ratings), string(location), string(images),
		hash, time.Now().UTC().Format(time.RFC3339))

	return err
}

// FindRouteByURL retrieves a route by its source URL.
func (s *RouteService) FindRouteByURL(ctx context.Context, url string) (*cragdex.Route, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT url, name, difficulty, description, access_info, user_ratings, location, images
		FROM routes
		WHERE url = ?
	`, url)

	route, err := scanRoute(row.Scan)
	if err == sql.ErrNoRows {
		return nil, cragdex.Errorf(cragdex.ENOTFOUND, "route not found")
	}
	if err != nil {
		return nil, err
	}
	return route, nil
}

// FindRoutes retrieves routes matching the filter, most recently scraped
// first.
func (s *RouteService) FindRoutes(ctx context.Context, filter cragdex.RouteFilter) ([]*cragdex.Route, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT url, name, difficulty, description, access_info, user_ratings, location, images FROM routes WHERE 1=1")

	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.Difficulty != nil {
		query.WriteString(" AND difficulty = ?")
		args = append(args, *filter.Difficulty)
	}

	query.WriteString(" ORDER BY scraped_at DESC, url ASC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var routes []*cragdex.Route
	for rows.Next() {
		route, err := scanRoute(rows.Scan)
		if err != nil {
			return nil, err
		}
		routes = append(routes, route)
	}

	return routes, rows.Err()
}

// DeleteRouteByURL permanently removes a route.
func (s *RouteService) DeleteRouteByURL(ctx context.Context, url string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM routes WHERE url = ?`, url)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return cragdex.Errorf(cragdex.ENOTFOUND, "route not found")
	}
	return nil
}

// scanRoute reconstructs a route from one row's columns.
func scanRoute(scan func(dest ...any) error) (*cragdex.Route, error) {
	var route cragdex.Route
	var ratings, location, images string

	if err := scan(&route.URL, &route.Name, &route.Difficulty, &route.Description,
		&route.AccessInfo, &ratings, &location, &images); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(ratings), &route.UserRatings); err != nil {
		return nil, fmt.Errorf("failed to decode ratings: %w", err)
	}
	if err := json.Unmarshal([]byte(location), &route.Location); err != nil {
		return nil, fmt.Errorf("failed to decode location: %w", err)
	}
	if err := json.Unmarshal([]byte(images), &route.Images); err != nil {
		return nil, fmt.Errorf("failed to decode images: %w", err)
	}

	return &route, nil
}
