package clipvault

// ArticleContent holds the readable content of a generic web page.
// Every field is optional; a missing value is the empty string.
type ArticleContent struct {
	Title         string `json:"title"`
	Excerpt       string `json:"excerpt"`
	Byline        string `json:"byline"`
	SiteName      string `json:"siteName"`
	PublishedTime string `json:"publishedTime"`

	// TextContent is the article text after NormalizeText.
	TextContent string `json:"textContent"`

	// ContentHTML is the cleaned article markup. It is only used to render
	// a Markdown note body and is never shown as-is.
	ContentHTML string `json:"-"`
}

// VideoContent holds what is worth keeping from a video watch page.
type VideoContent struct {
	Title   string `json:"title"`
	Channel string `json:"channel"`
	Subs    string `json:"subs"`

	// Description is the full, untruncated description after NormalizeText.
	Description string `json:"description"`
}

// ArticleExtractor isolates the main content of an arbitrary HTML document.
type ArticleExtractor interface {
	// ExtractArticle parses html fetched from sourceURL and returns its
	// article content. It returns nil when no article could be found;
	// malformed input is never reported as an error.
	ExtractArticle(html, sourceURL string) *ArticleContent
}

// VideoExtractor pulls structured data out of a video watch page.
type VideoExtractor interface {
	// ExtractVideo returns the video's title, channel, subscriber count and
	// description, or nil when the page yields none of the primary fields.
	ExtractVideo(html string) *VideoContent
}
