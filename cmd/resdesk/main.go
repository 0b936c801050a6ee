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
	"github.com/fwojciec/resdesk"
	"github.com/fwojciec/resdesk/fs"
	"github.com/fwojciec/resdesk/htmltomarkdown"
	reshttp "github.com/fwojciec/resdesk/http"
	"github.com/fwojciec/resdesk/readability"
	"github.com/fwojciec/resdesk/rod"
	resslog "github.com/fwojciec/resdesk/slog"
	"github.com/fwojciec/resdesk/sqlite"
	"github.com/fwojciec/resdesk/trafilatura"
	"github.com/google/uuid"
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
	// Default paths. Flags and environment variables override them.
	DBPath   string
	SiteRoot string
	CacheDir string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Opener replaces the browser opener when set. Used in end-to-end tests.
	Opener resdesk.Opener
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:   defaultDBPath(),
		SiteRoot: ".",
		CacheDir: defaultCacheDir(),
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
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("resdesk"),
		kong.Description("Research desk for the blog: literature search, citations, posts and offline cache"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars{
			"db_path":   m.DBPath,
			"site_root": m.SiteRoot,
			"cache_dir": m.CacheDir,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'resdesk --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := kongCtx.Command()

	logger := newLogger(stderr, cli.Verbose)
	deps.Logger = logger

	if err := os.MkdirAll(filepath.Dir(cli.DB), 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	m.DB = sqlite.NewDB(cli.DB)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set RESDESK_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
	}
	defer m.Close()

	deps.Store = resslog.NewLoggingKeyValueStore(sqlite.NewKeyValueStore(m.DB), logger)
	deps.Surface = NewTerminal(stdout)

	site, err := openSite(cli.Site, cli.RateLimit)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: --site takes a directory or an http(s) URL")
		return err
	}
	deps.Pages = resslog.NewLoggingAssetSource(site, logger)
	deps.Resolve = site.Resolve

	cache := fs.NewAssetCache(cli.CacheDir, deps.Pages, fs.WithConcurrency(cli.Cache.Install.Concurrency))
	deps.Cache = resslog.NewLoggingAssetCache(cache, logger)

	opener := m.Opener
	if opener == nil {
		opener = rod.NewOpener()
		if cli.NoBrowser {
			opener = nopOpener{}
		}
	}
	deps.Opener = resslog.NewLoggingOpener(opener, logger)

	deps.History = resdesk.NewHistory(ctx, deps.Store, deps.Surface)
	deps.Responder = resdesk.NewResponder(nil)
	deps.Search = &resdesk.LiteratureSearch{History: deps.History, Opener: deps.Opener}
	deps.Posts = resdesk.NewPostIndex(nil)
	deps.Vibes = resdesk.NewVibeRotator(deps.Surface)

	if strings.HasPrefix(cmd, "posts show") {
		var source resdesk.AssetSource = deps.Pages
		if cli.Posts.Show.Offline {
			source = resslog.NewLoggingAssetSource(fs.NewSiteDir(cache.Dir(resdesk.CacheName)), logger)
		}
		deps.Reader = &resdesk.PostReader{
			Source:    source,
			Extractor: resdesk.ExtractorChain{trafilatura.NewExtractor(), readability.NewExtractor()},
			Converter: newConverter(cli.Site),
		}
	}

	return kongCtx.Run(deps)
}

// siteSource is a blog the commands read pages from.
type siteSource interface {
	resdesk.AssetSource
	Resolve(path string) (string, error)
}

// openSite returns a remote site for http(s) URLs and a local one otherwise.
func openSite(root string, rps float64) (siteSource, error) {
	if isRemote(root) {
		fetcher := reshttp.NewFetcher(reshttp.WithRateLimit(rps))
		source, err := reshttp.NewAssetSource(root, fetcher)
		if err != nil {
			return nil, err
		}
		return source, nil
	}
	return fs.NewSiteDir(root), nil
}

func newConverter(root string) *htmltomarkdown.Converter {
	if isRemote(root) {
		return htmltomarkdown.NewConverter(htmltomarkdown.WithSiteURL(root))
	}
	return htmltomarkdown.NewConverter()
}

func isRemote(root string) bool {
	return strings.HasPrefix(root, "http://") || strings.HasPrefix(root, "https://")
}

// newLogger returns a text logger tagged with a per-run session id.
// Logs are discarded unless verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler).With("session", uuid.NewString())
}

// nopOpener leaves URLs for the user to open.
type nopOpener struct{}

func (nopOpener) Open(context.Context, string) error { return nil }

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "resdesk.db"
	}
	return filepath.Join(home, ".resdesk", "resdesk.db")
}

func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "resdesk-cache"
	}
	return filepath.Join(home, ".resdesk", "cache")
}
