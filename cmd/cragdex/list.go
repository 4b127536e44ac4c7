package main

import (
	"fmt"

	"github.com/cragdex/cragdex"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	if deps.Store == nil {
		return fmt.Errorf("list requires --db")
	}

	filter := cragdex.RouteFilter{}
	if c.Difficulty != "" {
		filter.Difficulty = &c.Difficulty
	}

	routes, err := deps.Store.FindRoutes(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cragdex.ErrorMessage(err))
		return err
	}

	if len(routes) == 0 {
		fmt.Fprintln(deps.Stdout, "No routes found. Use 'cragdex routes' or 'cragdex area' to scrape some.")
		return nil
	}

	for _, route := range routes {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", route.Difficulty, route.Name, route.URL)
	}

	return nil
}
