package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/scrape"
	"github.com/fwojciec/scrape/sqlite"
)

// Extraction engines accepted by the markdown command.
const (
	engineTrafilatura = "trafilatura"
	engineReadability = "readability"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	DB         *sqlite.DB
	Fetcher    scrape.Fetcher
	Parser     scrape.Parser
	Extractors map[string]scrape.Extractor
	Converter  scrape.Converter
	Pages      scrape.PageService
	Writer     scrape.PageWriter
	Limiter    *DomainLimiter
	Headers    map[string]string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Timeout          time.Duration     `short:"t" default:"10s" help:"HTTP timeout per request"`
	UserAgent        string            `help:"Value for the user-agent request header"`
	Header           map[string]string `short:"H" help:"Additional request header (key=value, repeatable)"`
	CloudflareBypass bool              `help:"Send browser-like headers to pass Cloudflare checks"`
	Verbose          bool              `short:"v" help:"Log fetch and archive operations to stderr"`
	DB               string            `help:"Archive database path (default $SCRAPE_DB or ~/.scrape/scrape.db)" placeholder:"PATH"`

	Text     TextCmd     `cmd:"" help:"Print the text of elements matching a CSS selector"`
	Attr     AttrCmd     `cmd:"" help:"Print an attribute of elements matching a CSS selector"`
	Title    TitleCmd    `cmd:"" help:"Print the page title"`
	Markdown MarkdownCmd `cmd:"" help:"Convert the main content of a page to markdown"`
	Save     SaveCmd     `cmd:"" help:"Fetch pages and save them to the archive"`
	Pages    PagesCmd    `cmd:"" help:"List archived pages"`
	Delete   DeleteCmd   `cmd:"" help:"Delete a page from the archive"`
	Export   ExportCmd   `cmd:"" help:"Export archived pages as markdown files"`
}

// TextCmd is the "text" subcommand.
type TextCmd struct {
	URL      string `arg:"" help:"Page URL"`
	Selector string `arg:"" help:"CSS selector"`
}

// AttrCmd is the "attr" subcommand.
type AttrCmd struct {
	URL      string `arg:"" help:"Page URL"`
	Selector string `arg:"" help:"CSS selector"`
	Name     string `arg:"" help:"Attribute name"`
}

// TitleCmd is the "title" subcommand.
type TitleCmd struct {
	URL string `arg:"" help:"Page URL"`
}

// MarkdownCmd is the "markdown" subcommand.
type MarkdownCmd struct {
	URL    string `arg:"" help:"Page URL"`
	Engine string `default:"trafilatura" enum:"trafilatura,readability" help:"Content extraction engine"`
}

// SaveCmd is the "save" subcommand.
type SaveCmd struct {
	URLs        []string `arg:"" name:"url" help:"Page URLs"`
	Concurrency int      `short:"c" default:"3" help:"Concurrent fetch limit"`
	RPS         float64  `default:"1" help:"Max requests per second per domain"`
}

// PagesCmd is the "pages" subcommand.
type PagesCmd struct {
	Full bool `help:"Show full page content"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	URL string `arg:"" help:"Page URL"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir string `arg:"" optional:"" default:"." help:"Directory to write files to"`
}
