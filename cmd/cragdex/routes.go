package main

import (
	"fmt"
	"strings"

	"github.com/cragdex/cragdex"
)

// Run executes the routes command.
func (c *RoutesCmd) Run(deps *Dependencies) error {
	routes := deps.Scraper.ScrapeRoutes(deps.Ctx, c.URLs)
	return writeResults(deps, routes)
}

// writeResults persists and exports a scraped collection, then prints a
// run summary.
func writeResults(deps *Dependencies, routes []*cragdex.Route) error {
	if deps.Store != nil {
		for _, route := range routes {
			if err := deps.Store.CreateRoute(deps.Ctx, route); err != nil {
				return fmt.Errorf("failed to save %s: %w", route.URL, err)
			}
		}
	}

	for _, exporter := range deps.Exporters {
		if err := exporter.Export(routes); err != nil {
			return err
		}
	}

	printSummary(deps, routes)
	return nil
}

func printSummary(deps *Dependencies, routes []*cragdex.Route) {
	fmt.Fprintf(deps.Stdout, "Total routes scraped: %d\n", len(routes))
	for _, route := range routes {
		area := "Unknown"
		if len(route.Location.AreaHierarchy) > 0 {
			area = strings.Join(route.Location.AreaHierarchy, ", ")
		}
		fmt.Fprintf(deps.Stdout, "- %s (%s)\n", route.Name, route.Difficulty)
		fmt.Fprintf(deps.Stdout, "  Location: %s\n", area)
		fmt.Fprintf(deps.Stdout, "  Ratings: %d user ratings\n", len(route.UserRatings))
		fmt.Fprintf(deps.Stdout, "  Images: %d images\n", len(route.Images))
	}
}
