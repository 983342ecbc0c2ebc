package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/clipvault"
	"github.com/fwojciec/clipvault/capture"
	"github.com/fwojciec/clipvault/fs"
	"github.com/fwojciec/clipvault/goquery"
	"github.com/fwojciec/clipvault/htmltomarkdown"
	cvhttp "github.com/fwojciec/clipvault/http"
	"github.com/fwojciec/clipvault/readability"
	"github.com/fwojciec/clipvault/rod"
	cvslog "github.com/fwojciec/clipvault/slog"
	"github.com/fwojciec/clipvault/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// ConfigPaths are JSON files whose keys provide flag defaults.
	// Missing files are ignored.
	ConfigPaths []string

	// Stdin is read by "extract -".
	Stdin io.Reader

	// Fetcher replaces the HTTP or browser fetcher. Used by tests.
	Fetcher clipvault.Fetcher

	// Now returns the note creation time. Defaults to time.Now.
	Now func() time.Time
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPaths: defaultConfigPaths(),
		Stdin:       os.Stdin,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("clipvault"),
		kong.Description("Capture web pages and notes into a Markdown vault"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Configuration(kong.JSON, m.ConfigPaths...),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'clipvault --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	deps.Config = cli.config()
	deps.Articles = newArticleExtractor(cli.Engine)
	deps.Videos = goquery.NewVideoExtractor()
	if logger != nil {
		deps.Articles = cvslog.NewLoggingArticleExtractor(deps.Articles, logger)
		deps.Videos = cvslog.NewLoggingVideoExtractor(deps.Videos, logger)
	}

	switch cmd := strings.Fields(kongCtx.Command())[0]; cmd {
	case "capture", "note":
		uriOnly := cli.Capture.URI
		if cmd == "note" {
			uriOnly = cli.Note.URI
		}
		if err := deps.Config.Validate(); err != nil {
			fmt.Fprintf(stderr, "error: %s\n", clipvault.ErrorMessage(err))
			fmt.Fprintln(stderr, "Hint: set --vault or CLIPVAULT_VAULT, or --vault-dir to use its name")
			return err
		}

		capturer := &capture.Capturer{
			Articles:    deps.Articles,
			Videos:      deps.Videos,
			Converter:   htmltomarkdown.NewConverter(),
			RateLimiter: capture.NewDomainLimiter(1.0),
			Config:      deps.Config,
			Concurrency: cli.Capture.Concurrency,
			Logger:      logger,
			Now:         m.Now,
		}

		if !uriOnly {
			if cli.VaultDir == "" {
				err := clipvault.Errorf(clipvault.EINVALID, "vault directory required to save notes")
				fmt.Fprintf(stderr, "error: %s\n", clipvault.ErrorMessage(err))
				fmt.Fprintln(stderr, "Hint: set --vault-dir or CLIPVAULT_VAULT_DIR, or print a URI with --uri")
				return err
			}
			capturer.Writer = fs.NewVaultWriter(cli.VaultDir)
		}

		if cmd == "capture" {
			fetcher, err := m.newFetcher(&cli.Capture, cli.Timeout)
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
				return err
			}
			defer fetcher.Close()
			if logger != nil {
				fetcher = cvslog.NewLoggingFetcher(fetcher, logger)
			}
			capturer.Fetcher = fetcher
		}

		deps.Capturer = capturer
	}

	return kongCtx.Run(deps)
}

// newFetcher returns the test fetcher if set, a browser fetcher when asked
// for one, and a plain HTTP fetcher otherwise.
func (m *Main) newFetcher(cmd *CaptureCmd, timeout time.Duration) (clipvault.Fetcher, error) {
	if m.Fetcher != nil {
		return m.Fetcher, nil
	}
	if cmd.Browser {
		var browserOpts []rod.ManagerOption
		if cmd.ChromeBin != "" {
			browserOpts = append(browserOpts, rod.WithBin(cmd.ChromeBin))
		}
		if cmd.Headful {
			browserOpts = append(browserOpts, rod.WithHeadful())
		}
		f, err := rod.NewFetcher(rod.WithFetchTimeout(timeout), rod.WithBrowserOptions(browserOpts...))
		if err != nil {
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		return f, nil
	}
	return cvhttp.NewFetcher(cvhttp.WithTimeout(timeout)), nil
}

// newArticleExtractor returns the extractor for the named engine.
func newArticleExtractor(engine string) clipvault.ArticleExtractor {
	switch engine {
	case engineTrafilatura:
		return trafilatura.NewExtractor()
	default:
		return readability.NewExtractor()
	}
}

// defaultConfigPaths returns the JSON config files consulted for defaults:
// $CLIPVAULT_CONFIG if set, then the user config directory.
func defaultConfigPaths() []string {
	var paths []string
	if path := os.Getenv("CLIPVAULT_CONFIG"); path != "" {
		paths = append(paths, path)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "clipvault", "config.json"))
	}
	return paths
}
