package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/clipvault"
)

// Ensure LoggingArticleExtractor implements clipvault.ArticleExtractor.
var _ clipvault.ArticleExtractor = (*LoggingArticleExtractor)(nil)

// LoggingArticleExtractor wraps an ArticleExtractor with logging.
type LoggingArticleExtractor struct {
	next   clipvault.ArticleExtractor
	logger *slog.Logger
}

// NewLoggingArticleExtractor creates a new LoggingArticleExtractor.
func NewLoggingArticleExtractor(next clipvault.ArticleExtractor, logger *slog.Logger) *LoggingArticleExtractor {
	return &LoggingArticleExtractor{next: next, logger: logger}
}

// ExtractArticle logs the outcome of the wrapped extraction.
func (e *LoggingArticleExtractor) ExtractArticle(html, sourceURL string) (a *clipvault.ArticleContent) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", sourceURL,
			"bytes", len(html),
			"duration", time.Since(begin),
			"found", a != nil,
		}
		if a != nil {
			attrs = append(attrs, "title", a.Title, "chars", len(a.TextContent))
		}
		e.logger.Info("extract article", attrs...)
	}(time.Now())
	return e.next.ExtractArticle(html, sourceURL)
}

// Ensure LoggingVideoExtractor implements clipvault.VideoExtractor.
var _ clipvault.VideoExtractor = (*LoggingVideoExtractor)(nil)

// LoggingVideoExtractor wraps a VideoExtractor with logging.
type LoggingVideoExtractor struct {
	next   clipvault.VideoExtractor
	logger *slog.Logger
}

// NewLoggingVideoExtractor creates a new LoggingVideoExtractor.
func NewLoggingVideoExtractor(next clipvault.VideoExtractor, logger *slog.Logger) *LoggingVideoExtractor {
	return &LoggingVideoExtractor{next: next, logger: logger}
}

// ExtractVideo logs the outcome of the wrapped extraction.
func (e *LoggingVideoExtractor) ExtractVideo(html string) (v *clipvault.VideoContent) {
	defer func(begin time.Time) {
		attrs := []any{
			"bytes", len(html),
			"duration", time.Since(begin),
			"found", v != nil,
		}
		if v != nil {
			attrs = append(attrs, "title", v.Title, "channel", v.Channel)
		}
		e.logger.Info("extract video", attrs...)
	}(time.Now())
	return e.next.ExtractVideo(html)
}
