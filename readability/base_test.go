package readability_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/clipvault/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInjectBase(t *testing.T) {
	t.Parallel()

	t.Run("appends base to head", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<html><head><title>x</title></head><body></body></html>`))
		require.NoError(t, err)

		readability.InjectBase(doc, "https://example.com/a/b")

		href, ok := doc.Find("head > base").Attr("href")
		assert.True(t, ok)
		assert.Equal(t, "https://example.com/a/b", href)
	})

	t.Run("parser supplies a head for fragments", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<p>fragment</p>`))
		require.NoError(t, err)

		readability.InjectBase(doc, "https://example.com/")

		assert.Equal(t, 1, doc.Find("head base").Length())
	})
}
