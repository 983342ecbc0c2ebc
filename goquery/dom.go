package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/clipvault"
)

// Selector candidates per field, newest watch-page markup first. They track a
// third-party page layout and go stale when it changes; a stale list only
// degrades to an empty field.
var (
	videoTitleSelectors = []string{
		"ytd-watch-metadata h1 yt-formatted-string",
		"ytd-video-primary-info-renderer h1 yt-formatted-string",
		"#video-title",
	}
	videoChannelSelectors = []string{
		"ytd-video-owner-renderer ytd-channel-name yt-formatted-string",
		"#channel-name yt-formatted-string",
		"#owner-name a",
	}
	videoSubsSelectors = []string{
		"#owner-sub-count",
	}
	videoDescriptionSelectors = []string{
		"ytd-expandable-video-description-body-renderer yt-attributed-string",
		"#attributed-snippet-text",
		"ytd-video-description-header-renderer yt-formatted-string#snippet-text",
		"#description-text",
	}
)

// ExtractVideoFromDOM reads video fields from the rendered watch-page markup.
// It returns nil when title, channel and description are all missing.
func ExtractVideoFromDOM(doc *goquery.Document) *clipvault.VideoContent {
	title := firstText(doc, videoTitleSelectors)
	channel := firstText(doc, videoChannelSelectors)
	subs := firstText(doc, videoSubsSelectors)
	description := firstText(doc, videoDescriptionSelectors)

	if title == "" && channel == "" && description == "" {
		return nil
	}

	return &clipvault.VideoContent{
		Title:       title,
		Channel:     channel,
		Subs:        subs,
		Description: clipvault.NormalizeText(description),
	}
}

// firstText returns the trimmed text of the first element matched by the
// first selector that yields non-empty text.
func firstText(doc *goquery.Document, selectors []string) string {
	for _, sel := range selectors {
		if text := strings.TrimSpace(doc.Find(sel).First().Text()); text != "" {
			return text
		}
	}
	return ""
}
