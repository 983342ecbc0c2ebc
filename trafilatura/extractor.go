package trafilatura

import (
	"bytes"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/clipvault"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements clipvault.ArticleExtractor at compile time.
var _ clipvault.ArticleExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract the main content of an article.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractArticle processes raw HTML and returns the article content, or nil
// when trafilatura finds no main content.
func (e *Extractor) ExtractArticle(rawHTML, sourceURL string) *clipvault.ArticleContent {
	if strings.TrimSpace(rawHTML) == "" {
		return nil
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if u, err := url.Parse(sourceURL); err == nil && u.IsAbs() {
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil || result == nil {
		return nil
	}

	text := clipvault.NormalizeText(result.ContentText)
	if text == "" {
		return nil
	}

	var contentHTML string
	if result.ContentNode != nil {
		// A render failure only loses the optional Markdown body.
		contentHTML, _ = renderNode(result.ContentNode)
	}

	meta := result.Metadata
	var published string
	if !meta.Date.IsZero() {
		published = meta.Date.Format(time.RFC3339)
	}

	return &clipvault.ArticleContent{
		Title:         meta.Title,
		Excerpt:       meta.Description,
		Byline:        meta.Author,
		SiteName:      meta.Sitename,
		PublishedTime: published,
		TextContent:   text,
		ContentHTML:   contentHTML,
	}
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
