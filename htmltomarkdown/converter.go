package htmltomarkdown

import (
	"net/url"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/clipvault"
)

// Ensure Converter implements clipvault.Converter at compile time.
var _ clipvault.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms an article's HTML into a Markdown note body. Relative
// links and images resolve against sourceURL when it is absolute.
func (c *Converter) Convert(html, sourceURL string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", clipvault.Errorf(clipvault.EINVALID, "empty HTML input")
	}

	var result string
	var err error
	if u, perr := url.Parse(sourceURL); perr == nil && u.IsAbs() {
		result, err = c.conv.ConvertString(html, converter.WithDomain(u.Scheme+"://"+u.Host))
	} else {
		result, err = c.conv.ConvertString(html)
	}
	if err != nil {
		return "", clipvault.Errorf(clipvault.EINTERNAL, "converting HTML to markdown: %v", err)
	}

	return strings.TrimSpace(result), nil
}
