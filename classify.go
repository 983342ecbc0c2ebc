package clipvault

import (
	"net/url"
	"strings"
)

// PageKind selects the extraction pipeline for a page.
type PageKind int

// Page kinds.
const (
	PageArticle PageKind = iota
	PageVideo
)

// String returns the lowercase name of the kind.
func (k PageKind) String() string {
	switch k {
	case PageVideo:
		return "video"
	default:
		return "article"
	}
}

// videoHosts are the hostnames that serve watch pages.
var videoHosts = map[string]bool{
	"youtube.com":     true,
	"www.youtube.com": true,
	"m.youtube.com":   true,
}

// videoWatchPath is the only path on videoHosts that is a watch page.
const videoWatchPath = "/watch"

// IsVideoURL reports whether rawURL is a video watch page whose content should
// go through a VideoExtractor. Unparsable URLs are not video pages.
func IsVideoURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return videoHosts[strings.ToLower(u.Hostname())] && u.Path == videoWatchPath
}

// Classify returns the extraction pipeline for rawURL.
func Classify(rawURL string) PageKind {
	if IsVideoURL(rawURL) {
		return PageVideo
	}
	return PageArticle
}
