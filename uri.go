package clipvault

import (
	"net/url"
	"regexp"
	"strings"
)

var urlPattern = regexp.MustCompile(`https?://\S+`)

// ObsidianURI builds an obsidian://new URI that creates filename inside folder
// of vault with the given content.
func ObsidianURI(vault, folder, filename, content string) string {
	file := filename
	if folder != "" {
		file = folder + "/" + filename
	}
	return "obsidian://new?vault=" + encodeComponent(vault) +
		"&file=" + encodeComponent(file) +
		"&content=" + encodeComponent(content)
}

// encodeComponent percent-encodes s, writing spaces as %20. Obsidian reads a
// literal '+' in the query as a plus sign, not a space.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// FirstURL returns the first http or https URL in text, or "".
func FirstURL(text string) string {
	return urlPattern.FindString(text)
}
