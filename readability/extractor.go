package readability

import (
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/clipvault"
	"github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Extractor implements clipvault.ArticleExtractor at compile time.
var _ clipvault.ArticleExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the main article from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractArticle parses rawHTML, points its <base> at sourceURL so relative
// links and images resolve, and runs readability over the document.
// It returns nil if the document cannot be parsed or has no article.
func (e *Extractor) ExtractArticle(rawHTML, sourceURL string) *clipvault.ArticleContent {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil || len(doc.Nodes) == 0 {
		return nil
	}

	// An unparsable source URL still lets readability run; links stay relative.
	pageURL, err := url.Parse(sourceURL)
	if err != nil || !pageURL.IsAbs() {
		pageURL = nil
	} else {
		InjectBase(doc, pageURL.String())
	}

	article, err := readability.FromDocument(doc.Nodes[0], pageURL)
	if err != nil {
		return nil
	}
	if strings.TrimSpace(article.TextContent) == "" {
		return nil
	}

	var published string
	if article.PublishedTime != nil && !article.PublishedTime.IsZero() {
		published = article.PublishedTime.Format(time.RFC3339)
	}

	return &clipvault.ArticleContent{
		Title:         article.Title,
		Excerpt:       article.Excerpt,
		Byline:        article.Byline,
		SiteName:      article.SiteName,
		PublishedTime: published,
		TextContent:   clipvault.NormalizeText(article.TextContent),
		ContentHTML:   article.Content,
	}
}

// InjectBase appends a <base href> element to the document head.
func InjectBase(doc *goquery.Document, href string) {
	head := doc.Find("head").First()
	if head.Length() == 0 {
		return
	}
	head.Nodes[0].AppendChild(&html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Base,
		Data:     "base",
		Attr:     []html.Attribute{{Key: "href", Val: href}},
	})
}
