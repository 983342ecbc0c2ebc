package clipvault

// Page is a retrieved web page as handed to the extractors.
type Page struct {
	URL  string
	HTML string
}

// Kind classifies the page by its URL.
func (p *Page) Kind() PageKind {
	return Classify(p.URL)
}
