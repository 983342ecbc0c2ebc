package clipvault

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., ArticleContent.ContentHTML).
	// Relative links are resolved against sourceURL when it is not empty.
	Convert(html, sourceURL string) (string, error)
}
