package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/cragdex/cragdex/bloom"
	"github.com/cragdex/cragdex/fs"
	"github.com/cragdex/cragdex/resty"
	"github.com/cragdex/cragdex/scrape"
	cragslog "github.com/cragdex/cragdex/slog"
	"github.com/cragdex/cragdex/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()
	defer m.Close()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database, open only when --db is set.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("cragdex"),
		kong.Description("Scrape climbing-route records from route database pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'cragdex --help' to see available commands")
	}
	if len(args) == 1 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	fetcher := cragslog.NewLoggingFetcher(
		resty.NewFetcher(resty.WithTimeout(cli.Timeout)),
		deps.Logger,
	)
	defer fetcher.Close()

	deps.Scraper = &scrape.Scraper{
		Fetcher: fetcher,
		Limiter: scrape.NewThrottle(cli.Delay),
		Seen:    bloom.NewFilter(100000, 0.001),
		Logger:  deps.Logger,
	}

	if cli.DB != "" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()
		deps.Store = sqlite.NewRouteService(m.DB)
	}

	if cli.JSON != "" {
		deps.Exporters = append(deps.Exporters, &fs.JSONExporter{Path: cli.JSON})
	}
	if cli.CSV != "" {
		deps.Exporters = append(deps.Exporters, &fs.CSVExporter{Path: cli.CSV})
	}

	return kongCtx.Run(deps)
}
