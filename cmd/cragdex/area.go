package main

import "github.com/cragdex/cragdex"

// Run executes the area command.
func (c *AreaCmd) Run(deps *Dependencies) error {
	var routes []*cragdex.Route
	for _, areaURL := range c.URLs {
		urls, err := deps.Scraper.DiscoverRoutes(deps.Ctx, areaURL, c.Max)
		if err != nil {
			// A dead listing page shortens the run; it never aborts it.
			deps.Logger.Warn("skipping area", "url", areaURL, "err", err)
			continue
		}
		routes = append(routes, deps.Scraper.ScrapeRoutes(deps.Ctx, urls)...)
	}
	return writeResults(deps, routes)
}
