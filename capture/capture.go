// Package capture turns a URL or a manual entry into a vault note. It
// coordinates fetching, classification, extraction, Markdown conversion,
// rendering and storage.
package capture

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/clipvault"
	"github.com/fwojciec/clipvault/bloom"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of URLs captured at once by CaptureAll.
const DefaultConcurrency = 4

// dedupFalsePositiveRate is the Bloom filter error rate used by CaptureAll.
const dedupFalsePositiveRate = 0.001

// Request describes one capture.
type Request struct {
	// URL is the page to capture. Empty means a manual note.
	URL string

	What string
	Who  string
	Why  string

	// Markdown renders article bodies from the cleaned HTML instead of the
	// plain text content.
	Markdown bool
}

// Result holds the outcome of one capture.
type Result struct {
	// ID correlates log lines for this capture.
	ID   string
	URL  string
	Kind clipvault.PageKind

	// Article or Video is set when extraction found something.
	Article *clipvault.ArticleContent
	Video   *clipvault.VideoContent

	Note *clipvault.Note
	File *clipvault.NoteFile

	// URI opens the note in the vault application.
	URI string

	// Path is where the note was written; empty without a Writer.
	Path string

	// Duplicate is set by CaptureAll for a URL that appeared earlier in
	// the batch. Nothing else is filled in.
	Duplicate bool

	// Err is set by CaptureAll when this capture failed.
	Err error
}

// ProgressEvent reports progress during CaptureAll.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressSkipped
	ProgressFinished
)

// ProgressFunc is a callback for reporting capture progress.
type ProgressFunc func(event ProgressEvent)

// Capturer orchestrates captures. Fetcher, Articles and Videos are required
// for URL captures; the other dependencies are optional.
type Capturer struct {
	Fetcher     clipvault.Fetcher
	Articles    clipvault.ArticleExtractor
	Videos      clipvault.VideoExtractor
	Converter   clipvault.Converter
	Writer      clipvault.NoteWriter
	RateLimiter clipvault.DomainLimiter
	Config      clipvault.Config
	Concurrency int
	RetryDelays []time.Duration
	Logger      *slog.Logger

	// Now returns the creation time for notes. Defaults to time.Now.
	Now func() time.Time
}

// Capture runs a single capture. Failing to extract anything from a page
// is not an error: the note is then built from the manual fields alone.
func (c *Capturer) Capture(ctx context.Context, req Request) (*Result, error) {
	result := &Result{
		ID:  uuid.NewString(),
		URL: strings.TrimSpace(req.URL),
	}
	logger := c.logger().With("capture", result.ID)

	if result.URL == "" {
		if strings.TrimSpace(req.What) == "" {
			return nil, clipvault.Errorf(clipvault.EINVALID, "a manual note needs a what")
		}
		logger.Debug("manual note")
		return c.finish(ctx, result, req, "", "", logger)
	}

	u, err := url.Parse(result.URL)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, clipvault.Errorf(clipvault.EINVALID, "invalid capture URL %q", result.URL)
	}

	if c.RateLimiter != nil {
		if err := c.RateLimiter.Wait(ctx, u.Host); err != nil {
			return nil, err
		}
	}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, result.URL, c.Fetcher.Fetch, logger, delays)
	if err != nil {
		return nil, err
	}

	page := &clipvault.Page{URL: result.URL, HTML: html}
	result.Kind = page.Kind()

	var title, body string
	switch result.Kind {
	case clipvault.PageVideo:
		result.Video = c.Videos.ExtractVideo(page.HTML)
		if result.Video != nil {
			title = result.Video.Title
			body = clipvault.VideoBody(result.Video)
		}
	default:
		result.Article = c.Articles.ExtractArticle(page.HTML, page.URL)
		if result.Article != nil {
			title = strings.TrimSpace(result.Article.Title)
			body = c.articleBody(result.Article, req.Markdown, page.URL, logger)
		}
	}
	logger.Debug("extracted",
		"url", page.URL,
		"kind", result.Kind.String(),
		"found", body != "",
	)

	return c.finish(ctx, result, req, title, body, logger)
}

// articleBody renders the article, converting its HTML to Markdown when
// asked to. A failed conversion falls back to the plain text.
func (c *Capturer) articleBody(a *clipvault.ArticleContent, markdown bool, pageURL string, logger *slog.Logger) string {
	if !markdown || c.Converter == nil || a.ContentHTML == "" {
		return clipvault.ArticleBody(a, "")
	}

	md, err := c.Converter.Convert(a.ContentHTML, pageURL)
	if err != nil {
		logger.Warn("markdown conversion failed", "url", pageURL, "err", err)
		return clipvault.ArticleBody(a, "")
	}

	converted := *a
	converted.TextContent = md
	return clipvault.ArticleBody(&converted, "")
}

// finish builds, renders and optionally writes the note.
func (c *Capturer) finish(ctx context.Context, result *Result, req Request, title, body string, logger *slog.Logger) (*Result, error) {
	what := strings.TrimSpace(req.What)
	if what == "" {
		what = result.URL
	}

	created := c.now()
	note := &clipvault.Note{
		What:    what,
		Who:     strings.TrimSpace(req.Who),
		Why:     strings.TrimSpace(req.Why),
		Props:   c.Config.Props,
		Body:    body,
		URL:     result.URL,
		Created: created,
	}
	result.Note = note

	slugSource := title
	if slugSource == "" {
		slugSource, _, _ = strings.Cut(what, "\n")
	}

	var content string
	if c.Config.Canvas {
		linkURL := result.URL
		if linkURL == "" {
			linkURL = clipvault.FirstURL(what)
		}
		var err error
		content, err = clipvault.BuildCanvas(linkURL, note.CanvasText()).JSON()
		if err != nil {
			return nil, clipvault.Errorf(clipvault.EINTERNAL, "rendering canvas: %v", err)
		}
	} else {
		content = note.Markdown()
	}

	result.File = &clipvault.NoteFile{
		Folder:   c.Config.Folder,
		Filename: clipvault.Filename(slugSource, created, c.Config.Canvas),
		Content:  content,
	}
	result.URI = clipvault.ObsidianURI(c.Config.Vault, c.Config.Folder, result.File.Filename, content)

	if c.Writer != nil {
		path, err := c.Writer.WriteNote(ctx, result.File)
		if err != nil {
			return nil, err
		}
		result.Path = path
		logger.Info("note written", "path", path)
	}

	return result, nil
}

// CaptureAll captures every request, running up to Concurrency captures at
// once. Results are returned in request order. Repeated URLs are captured
// once; later occurrences are marked Duplicate. Individual failures are
// reported on the Result and through progress; the returned error is only
// set when ctx ends the batch.
func (c *Capturer) CaptureAll(ctx context.Context, reqs []Request, progress ProgressFunc) ([]*Result, error) {
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(reqs)
	results := make([]*Result, total)
	seen := bloom.NewFilter(uint(total), dedupFalsePositiveRate)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	// progress is called from one goroutine at a time.
	var mu sync.Mutex
	completed := 0
	report := func(ev ProgressEvent) {
		mu.Lock()
		defer mu.Unlock()
		completed++
		ev.Completed = completed
		ev.Total = total
		if progress != nil {
			progress(ev)
		}
	}

	// Deduplicate before starting so the first occurrence always wins.
	for i, req := range reqs {
		u := strings.TrimSpace(req.URL)
		if u != "" && seen.Seen(u) {
			results[i] = &Result{URL: u, Duplicate: true}
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, req := range reqs {
		if results[i] != nil {
			report(ProgressEvent{Type: ProgressSkipped, URL: results[i].URL})
			continue
		}
		g.Go(func() error {
			res, err := c.Capture(gctx, req)
			if err != nil {
				res = &Result{URL: strings.TrimSpace(req.URL), Err: err}
				report(ProgressEvent{Type: ProgressFailed, URL: res.URL, Error: err})
			} else {
				report(ProgressEvent{Type: ProgressCompleted, URL: res.URL})
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}

func (c *Capturer) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func (c *Capturer) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}
