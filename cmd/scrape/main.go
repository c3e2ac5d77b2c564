package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/scrape"
	"github.com/fwojciec/scrape/goquery"
	"github.com/fwojciec/scrape/htmltomarkdown"
	scrapehttp "github.com/fwojciec/scrape/http"
	"github.com/fwojciec/scrape/readability"
	scrapeslog "github.com/fwojciec/scrape/slog"
	"github.com/fwojciec/scrape/sqlite"
	"github.com/fwojciec/scrape/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by archive commands.
	DB *sqlite.DB

	// Page service for end-to-end testing.
	PageService scrape.PageService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
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
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("scrape"),
		kong.Description("Fetch webpages, query them with CSS selectors, and archive them as markdown"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'scrape --help' to see available commands")
	}
	if len(args) == 1 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Request headers from global flags. A nil map means the default
	// user-agent applies.
	var headers map[string]string
	if cli.UserAgent != "" || len(cli.Header) > 0 {
		headers = make(map[string]string, len(cli.Header)+1)
		for k, v := range cli.Header {
			headers[k] = v
		}
		if cli.UserAgent != "" {
			headers["user-agent"] = cli.UserAgent
		}
	}
	deps.Headers = headers

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	// Wire the fetch pipeline
	var opts []scrapehttp.Option
	if cli.Timeout > 0 {
		opts = append(opts, scrapehttp.WithTimeout(cli.Timeout))
	}
	if cli.CloudflareBypass {
		opts = append(opts, scrapehttp.WithCloudflareBypass())
	}

	var fetcher scrape.Fetcher = scrapehttp.NewFetcher(opts...)
	if logger != nil {
		fetcher = scrapeslog.NewLoggingFetcher(fetcher, logger)
	}

	deps.Fetcher = fetcher
	deps.Parser = goquery.NewParser()
	deps.Extractors = map[string]scrape.Extractor{
		engineTrafilatura: trafilatura.NewExtractor(),
		engineReadability: readability.NewExtractor(),
	}
	deps.Converter = htmltomarkdown.NewConverter()

	// Open the database only for commands that touch the archive
	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")
	switch cmd {
	case "save", "pages", "delete", "export":
		if cli.DB != "" {
			m.DBPath = cli.DB
		}

		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set SCRAPE_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		var pages scrape.PageService = sqlite.NewPageService(m.DB)
		if logger != nil {
			pages = scrapeslog.NewLoggingPageService(pages, logger)
		}
		m.PageService = pages
		deps.DB = m.DB
		deps.Pages = pages
	}

	if cmd == "save" {
		deps.Limiter = NewDomainLimiter(cli.Save.RPS)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("SCRAPE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "scrape.db"
	}
	dir := filepath.Join(home, ".scrape")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "scrape.db")
}
