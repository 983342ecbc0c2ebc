package goquery_test

import (
	"testing"

	cvgoquery "github.com/fwojciec/clipvault/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractVideoFromDOM(t *testing.T) {
	t.Parallel()

	t.Run("reads current watch-page markup", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body>
<ytd-watch-metadata><h1><yt-formatted-string>  Current Title </yt-formatted-string></h1></ytd-watch-metadata>
<ytd-video-owner-renderer><ytd-channel-name><yt-formatted-string>Channel Name</yt-formatted-string></ytd-channel-name></ytd-video-owner-renderer>
<div id="owner-sub-count">10K subscribers</div>
<ytd-expandable-video-description-body-renderer><yt-attributed-string>
   Line one

   
   Line two
</yt-attributed-string></ytd-expandable-video-description-body-renderer>
</body></html>`)

		got := cvgoquery.ExtractVideoFromDOM(doc)

		require.NotNil(t, got)
		assert.Equal(t, "Current Title", got.Title)
		assert.Equal(t, "Channel Name", got.Channel)
		assert.Equal(t, "10K subscribers", got.Subs)
		assert.Equal(t, "Line one\n\nLine two", got.Description)
	})

	t.Run("falls through to older markup", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body>
<ytd-watch-metadata><h1><yt-formatted-string>   </yt-formatted-string></h1></ytd-watch-metadata>
<h1 id="video-title">Old Title</h1>
<div id="owner-name"><a href="/c/old">Old Channel</a></div>
<div id="description-text">Old description</div>
</body></html>`)

		got := cvgoquery.ExtractVideoFromDOM(doc)

		require.NotNil(t, got)
		assert.Equal(t, "Old Title", got.Title)
		assert.Equal(t, "Old Channel", got.Channel)
		assert.Empty(t, got.Subs)
		assert.Equal(t, "Old description", got.Description)
	})

	t.Run("prefers earlier candidate when several match", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<html><body>
<h1 id="video-title">Oldest</h1>
<ytd-video-primary-info-renderer><h1><yt-formatted-string>Middle</yt-formatted-string></h1></ytd-video-primary-info-renderer>
</body></html>`)

		got := cvgoquery.ExtractVideoFromDOM(doc)

		require.NotNil(t, got)
		assert.Equal(t, "Middle", got.Title)
	})

	t.Run("channel alone is enough", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<div id="channel-name"><yt-formatted-string>Only Channel</yt-formatted-string></div>`)

		got := cvgoquery.ExtractVideoFromDOM(doc)

		require.NotNil(t, got)
		assert.Equal(t, "Only Channel", got.Channel)
	})

	t.Run("subs alone is no result", func(t *testing.T) {
		t.Parallel()

		doc := parseDoc(t, `<div id="owner-sub-count">10K subscribers</div>`)

		assert.Nil(t, cvgoquery.ExtractVideoFromDOM(doc))
	})
}
