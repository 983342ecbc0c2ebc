package clipvault_test

import (
	"testing"

	"github.com/fwojciec/clipvault"
	"github.com/stretchr/testify/assert"
)

func TestIsVideoURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want bool
	}{
		{name: "www watch page", url: "https://www.youtube.com/watch?v=x", want: true},
		{name: "bare host watch page", url: "https://youtube.com/watch?v=abc", want: true},
		{name: "mobile watch page", url: "https://m.youtube.com/watch?v=abc&t=10s", want: true},
		{name: "uppercase host", url: "https://WWW.YouTube.com/watch?v=abc", want: true},
		{name: "channel page", url: "https://youtube.com/channel/x", want: false},
		{name: "watch prefix only", url: "https://www.youtube.com/watch/abc", want: false},
		{name: "other host", url: "https://example.com/watch", want: false},
		{name: "lookalike host", url: "https://youtube.com.evil.test/watch?v=x", want: false},
		{name: "short link host", url: "https://youtu.be/abc", want: false},
		{name: "invalid URL", url: "http://[::1", want: false},
		{name: "not a URL", url: "not a url at all", want: false},
		{name: "empty string", url: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, clipvault.IsVideoURL(tt.url))
		})
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	t.Run("watch page is video", func(t *testing.T) {
		t.Parallel()

		kind := clipvault.Classify("https://www.youtube.com/watch?v=x")

		assert.Equal(t, clipvault.PageVideo, kind)
		assert.Equal(t, "video", kind.String())
	})

	t.Run("anything else is article", func(t *testing.T) {
		t.Parallel()

		kind := clipvault.Classify("https://example.com/blog/post")

		assert.Equal(t, clipvault.PageArticle, kind)
		assert.Equal(t, "article", kind.String())
	})
}
