// Package goquery implements video watch-page extraction on top of goquery.
// The embedded initial-data blob is preferred; rendered markup is the fallback.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/clipvault"
)

// Ensure VideoExtractor implements clipvault.VideoExtractor at compile time.
var _ clipvault.VideoExtractor = (*VideoExtractor)(nil)

// VideoExtractor extracts video metadata from watch-page HTML.
type VideoExtractor struct{}

// NewVideoExtractor creates a new VideoExtractor.
func NewVideoExtractor() *VideoExtractor {
	return &VideoExtractor{}
}

// ExtractVideo reads the embedded initial data and falls back to DOM
// selectors when the blob is missing or holds neither title nor description.
func (e *VideoExtractor) ExtractVideo(html string) *clipvault.VideoContent {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	if data, ok := LocateEmbeddedJSON(doc, EmbeddedDataMarker); ok {
		if v := WalkVideoData(data); v != nil {
			return v
		}
	}

	return ExtractVideoFromDOM(doc)
}
