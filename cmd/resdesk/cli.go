package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/resdesk"
)

// Dependencies holds all services and configuration for command execution.
// The session components are built once per run.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Store     resdesk.KeyValueStore
	Surface   resdesk.DisplaySurface
	History   *resdesk.History
	Responder *resdesk.Responder
	Search    *resdesk.LiteratureSearch
	Posts     *resdesk.PostIndex
	Reader    *resdesk.PostReader
	Vibes     *resdesk.VibeRotator
	Cache     resdesk.AssetCache
	Pages     resdesk.AssetSource
	Opener    resdesk.Opener

	// Resolve returns the URL of a site page.
	Resolve func(path string) (string, error)

	// After defaults to time.After.
	After func(d time.Duration) <-chan time.Time
}

// wait blocks for d or until the context is done.
func (d *Dependencies) wait(delay time.Duration) error {
	after := d.After
	if after == nil {
		after = time.After
	}
	select {
	case <-d.Ctx.Done():
		return d.Ctx.Err()
	case <-after(delay):
		return nil
	}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB        string  `env:"RESDESK_DB" default:"${db_path}" help:"SQLite database path"`
	Site      string  `env:"RESDESK_SITE" default:"${site_root}" help:"Blog directory or http(s) base URL"`
	CacheDir  string  `env:"RESDESK_CACHE_DIR" default:"${cache_dir}" help:"Offline cache directory"`
	RateLimit float64 `name:"rate" default:"2" help:"Requests per second against a remote site"`
	NoBrowser bool    `help:"Print URLs without opening a browser"`
	Verbose   bool    `short:"v" help:"Log operations to stderr"`

	Search  SearchCmd  `cmd:"" help:"Search the research literature"`
	History HistoryCmd `cmd:"" help:"Show recent literature searches"`
	Ask     AskCmd     `cmd:"" help:"Ask the research assistant what to do next"`
	Cite    CiteCmd    `cmd:"" help:"Format a citation"`
	Posts   PostsCmd   `cmd:"" help:"Search and read blog posts"`
	Vibe    VibeCmd    `cmd:"" help:"Show research writing reminders"`
	Cache   CacheCmd   `cmd:"" help:"Manage the offline asset cache"`
	Render  RenderCmd  `cmd:"" help:"Render a blog page with the current session state"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Provider string   `short:"p" enum:"scholar,semantic,arxiv,ieee" default:"scholar" help:"Search provider (scholar, semantic, arxiv, ieee)"`
	Query    []string `arg:"" help:"Search terms"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Clear bool `help:"Forget all recent searches"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Request  []string `arg:"" help:"What you want to do"`
	NoFollow bool     `help:"Do not act on the response"`
}

// CiteCmd is the "cite" subcommand.
type CiteCmd struct {
	Style  string `short:"s" enum:"ieee,apa" default:"ieee" help:"Citation style (ieee, apa)"`
	Author string `arg:"" help:"Authors"`
	Title  string `arg:"" help:"Title"`
	Venue  string `arg:"" help:"Journal or conference"`
	Year   string `arg:"" help:"Publication year"`
}

// PostsCmd groups the post subcommands.
type PostsCmd struct {
	Find PostsFindCmd `cmd:"" help:"Find blog posts by keyword"`
	Show PostsShowCmd `cmd:"" help:"Print a blog post as Markdown"`
}

// PostsFindCmd is the "posts find" subcommand.
type PostsFindCmd struct {
	Text []string `arg:"" optional:"" help:"Search text"`
}

// PostsShowCmd is the "posts show" subcommand.
type PostsShowCmd struct {
	Path    string `arg:"" help:"Post path, e.g. posts/ai-adaptive-learning.html"`
	Offline bool   `help:"Read from the offline cache"`
	Outline bool   `help:"Print only the section headings"`
}

// VibeCmd is the "vibe" subcommand.
type VibeCmd struct {
	Count    int           `short:"n" default:"1" help:"Number of reminders to show"`
	Interval time.Duration `default:"9s" help:"Time between reminders"`
}

// CacheCmd groups the cache subcommands.
type CacheCmd struct {
	Install  CacheInstallCmd  `cmd:"" help:"Download the site assets into a named cache"`
	Activate CacheActivateCmd `cmd:"" help:"Delete every cache except the current one"`
	List     CacheListCmd     `cmd:"" help:"List installed caches"`
	Verify   CacheVerifyCmd   `cmd:"" help:"Check cached assets against their checksums"`
}

// CacheInstallCmd is the "cache install" subcommand.
type CacheInstallCmd struct {
	Name        string   `default:"research-blog" help:"Cache name"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
	Discover    bool     `short:"d" help:"Also cache assets referenced by the home page"`
	Paths       []string `arg:"" optional:"" help:"Asset paths (default: the blog's offline assets)"`
}

// CacheActivateCmd is the "cache activate" subcommand.
type CacheActivateCmd struct {
	Keep string `default:"research-blog" help:"Cache to keep"`
}

// CacheListCmd is the "cache list" subcommand.
type CacheListCmd struct{}

// CacheVerifyCmd is the "cache verify" subcommand.
type CacheVerifyCmd struct {
	Name string `arg:"" optional:"" default:"research-blog" help:"Cache name"`
}

// RenderCmd is the "render" subcommand.
type RenderCmd struct {
	Page string `arg:"" optional:"" default:"index.html" help:"Page to render"`
	Out  string `short:"o" help:"Write to file instead of stdout"`
}
