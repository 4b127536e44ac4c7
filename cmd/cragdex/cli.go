package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/cragdex/cragdex"
	"github.com/cragdex/cragdex/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Scraper   *scrape.Scraper
	Store     cragdex.RouteStore
	Exporters []cragdex.Exporter
	Logger    *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool          `short:"v" help:"Enable debug logging"`
	Delay   time.Duration `default:"1s" help:"Politeness delay before each request"`
	Timeout time.Duration `short:"t" default:"10s" help:"HTTP request timeout"`
	JSON    string        `help:"Write scraped routes to a JSON file" type:"path"`
	CSV     string        `help:"Write scraped routes to a CSV file" type:"path"`
	DB      string        `help:"Save scraped routes to a SQLite database" type:"path"`

	Routes RoutesCmd `cmd:"" help:"Scrape explicit route page URLs"`
	Area   AreaCmd   `cmd:"" help:"Discover routes on area-listing pages and scrape them"`
	List   ListCmd   `cmd:"" help:"List routes saved in the database"`
}

// RoutesCmd is the "routes" subcommand.
type RoutesCmd struct {
	URLs []string `arg:"" help:"Route page URLs"`
}

// AreaCmd is the "area" subcommand.
type AreaCmd struct {
	URLs []string `arg:"" help:"Area-listing page URLs"`
	Max  int      `help:"Maximum routes per area page (0 = no limit)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Difficulty string `help:"Filter by difficulty grade"`
}
