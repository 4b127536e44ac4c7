// Package scrape orchestrates route scraping: it fetches pages through a
// politeness throttle, runs the facet extractors against each parsed
// document, and drives strictly sequential batches in which one bad page
// never aborts the run.
package scrape

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/cragdex/cragdex"
	"github.com/cragdex/cragdex/goquery"
)

// Scraper assembles route records from fetched pages.
type Scraper struct {
	Fetcher cragdex.Fetcher

	// Limiter, when set, is awaited before every fetch.
	Limiter cragdex.Limiter

	// Seen, when set, suppresses route URLs already discovered in this
	// run across multiple area-listing pages.
	Seen cragdex.SeenFilter

	// Logger receives skip diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// ScrapeRoute fetches one route page and composes an immutable route
// record from it. Every facet is best-effort; only fetch and parse
// failures produce an error.
func (s *Scraper) ScrapeRoute(ctx context.Context, routeURL string) (*cragdex.Route, error) {
	html, err := s.fetch(ctx, routeURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.Parse(html)
	if err != nil {
		return nil, err
	}

	name, difficulty := goquery.ExtractBasicInfo(doc)
	route := &cragdex.Route{
		Name:        name,
		Difficulty:  difficulty,
		Description: goquery.ExtractDescription(doc),
		AccessInfo:  goquery.ExtractAccessInfo(doc),
		UserRatings: goquery.ExtractRatings(doc),
		Location:    goquery.ExtractLocation(doc),
		Images:      goquery.ExtractImages(doc, siteBase(routeURL)),
		URL:         routeURL,
	}

	return route, nil
}

// ScrapeRoutes processes URLs strictly sequentially, preserving caller
// order in the output. Failing URLs are logged and skipped; the batch
// never aborts. Stops early only when the context is canceled.
func (s *Scraper) ScrapeRoutes(ctx context.Context, urls []string) []*cragdex.Route {
	routes := make([]*cragdex.Route, 0, len(urls))
	for _, u := range urls {
		if ctx.Err() != nil {
			break
		}
		route, err := s.ScrapeRoute(ctx, u)
		if err != nil {
			s.logger().Warn("skipping route", "url", u, "err", err)
			continue
		}
		routes = append(routes, route)
	}
	return routes
}

// DiscoverRoutes finds route-page URLs on an area-listing page. When a
// seen filter is configured, URLs discovered by earlier calls in the same
// run are dropped. A max of 0 means no limit.
func (s *Scraper) DiscoverRoutes(ctx context.Context, areaURL string, max int) ([]string, error) {
	html, err := s.fetch(ctx, areaURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.Parse(html)
	if err != nil {
		return nil, err
	}

	links, err := goquery.DiscoverRouteLinks(doc, areaURL, 0)
	if err != nil {
		return nil, err
	}

	if s.Seen != nil {
		kept := links[:0]
		for _, link := range links {
			if s.Seen.Test(link) {
				continue
			}
			kept = append(kept, link)
		}
		links = kept
	}

	if max > 0 && len(links) > max {
		links = links[:max]
	}

	if s.Seen != nil {
		for _, link := range links {
			s.Seen.Add(link)
		}
	}

	return links, nil
}

func (s *Scraper) fetch(ctx context.Context, u string) (string, error) {
	if s.Limiter != nil {
		if err := s.Limiter.Wait(ctx); err != nil {
			return "", err
		}
	}
	return s.Fetcher.Fetch(ctx, u)
}

func (s *Scraper) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// siteBase reduces a page URL to its scheme://host origin, the base
// against which the page's relative image paths resolve.
func siteBase(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Scheme + "://" + u.Host
}
