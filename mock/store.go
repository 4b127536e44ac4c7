package mock

import (
	"context"

	"github.com/cragdex/cragdex"
)

var _ cragdex.RouteStore = (*RouteStore)(nil)

// RouteStore is a mock implementation of cragdex.RouteStore.
type RouteStore struct {
	CreateRouteFn      func(ctx context.Context, route *cragdex.Route) error
	FindRouteByURLFn   func(ctx context.Context, url string) (*cragdex.Route, error)
	FindRoutesFn       func(ctx context.Context, filter cragdex.RouteFilter) ([]*cragdex.Route, error)
	DeleteRouteByURLFn func(ctx context.Context, url string) error
}

func (s *RouteStore) CreateRoute(ctx context.Context, route *cragdex.Route) error {
	return s.CreateRouteFn(ctx, route)
}

func (s *RouteStore) FindRouteByURL(ctx context.Context, url string) (*cragdex.Route, error) {
	return s.FindRouteByURLFn(ctx, url)
}

func (s *RouteStore) FindRoutes(ctx context.Context, filter cragdex.RouteFilter) ([]*cragdex.Route, error) {
	return s.FindRoutesFn(ctx, filter)
}

func (s *RouteStore) DeleteRouteByURL(ctx context.Context, url string) error {
	return s.DeleteRouteByURLFn(ctx, url)
}
