package clipvault_test

import (
	"testing"
	"time"

	"github.com/fwojciec/clipvault"
	"github.com/stretchr/testify/assert"
)

var noteCreated = time.Date(2024, time.March, 5, 7, 8, 9, 0, time.UTC)

func TestNote_Markdown(t *testing.T) {
	t.Parallel()

	t.Run("renders full note", func(t *testing.T) {
		t.Parallel()

		note := &clipvault.Note{
			What:    "https://example.com/post",
			Who:     "Ada",
			Why:     "Worth rereading",
			Props:   []clipvault.Prop{{Key: "type", Value: "article"}, {Key: "", Value: "ignored"}},
			Body:    "# Post\n\nBody text.\n",
			URL:     "https://example.com/post",
			Created: noteCreated,
		}

		expected := "---\n" +
			"created: 2024-03-05T07:08:09\n" +
			"what: \"https://example.com/post\"\n" +
			"who: \"Ada\"\n" +
			"type: \"article\"\n" +
			"why: \"Worth rereading\"\n" +
			"---\n" +
			"\n" +
			"# Post\n\nBody text.\n" +
			"\n" +
			"Source: https://example.com/post"
		assert.Equal(t, expected, note.Markdown())
	})

	t.Run("omits optional fields", func(t *testing.T) {
		t.Parallel()

		note := &clipvault.Note{What: "just a thought", Created: noteCreated}

		expected := "---\ncreated: 2024-03-05T07:08:09\nwhat: \"just a thought\"\n---\n"
		assert.Equal(t, expected, note.Markdown())
	})

	t.Run("escapes quotes and newlines in frontmatter", func(t *testing.T) {
		t.Parallel()

		note := &clipvault.Note{What: "say \"hi\"\nthere", Created: noteCreated}

		assert.Contains(t, note.Markdown(), `what: "say \"hi\" there"`)
	})

	t.Run("writes created in UTC", func(t *testing.T) {
		t.Parallel()

		loc := time.FixedZone("UTC+2", 2*60*60)
		note := &clipvault.Note{What: "x", Created: time.Date(2024, 1, 1, 1, 0, 0, 0, loc)}

		assert.Contains(t, note.Markdown(), "created: 2023-12-31T23:00:00\n")
	})
}

func TestNote_CanvasText(t *testing.T) {
	t.Parallel()

	t.Run("renders fields as plain markdown", func(t *testing.T) {
		t.Parallel()

		note := &clipvault.Note{
			What: "Idea",
			Who:  "Ada",
			Why:  "Because",
			Body: "# Title",
			URL:  "https://example.com",
		}

		expected := "Idea\n\n**Who:** Ada\n**Why:** Because\n\n# Title\n\nSource: https://example.com"
		assert.Equal(t, expected, note.CanvasText())
	})

	t.Run("empty note renders nothing", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, (&clipvault.Note{}).CanvasText())
	})
}

func TestArticleBody(t *testing.T) {
	t.Parallel()

	t.Run("formats all parts", func(t *testing.T) {
		t.Parallel()

		a := &clipvault.ArticleContent{
			Title:         "Post",
			Byline:        "Ada",
			SiteName:      "Blog",
			PublishedTime: "2024-03-05T07:08:09Z",
			Excerpt:       "Short summary",
			TextContent:   "Para one.\n\nPara two.",
		}

		expected := "# Post\n\n" +
			"By: Ada · Site: Blog · Published: 2024-03-05T07:08:09Z\n\n" +
			"> Short summary\n\n" +
			"Para one.\n\nPara two."
		assert.Equal(t, expected, clipvault.ArticleBody(a, "fallback"))
	})

	t.Run("uses fallback title", func(t *testing.T) {
		t.Parallel()

		a := &clipvault.ArticleContent{TextContent: "Text."}

		assert.Equal(t, "# Page Title\n\nText.", clipvault.ArticleBody(a, " Page Title "))
	})

	t.Run("nil article yields empty body", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, clipvault.ArticleBody(nil, "title"))
	})
}

func TestVideoBody(t *testing.T) {
	t.Parallel()

	t.Run("formats channel line and description", func(t *testing.T) {
		t.Parallel()

		v := &clipvault.VideoContent{
			Title:       "Talk",
			Channel:     "Gophers",
			Subs:        "1.2K subscribers",
			Description: "Line one\n\nLine two",
		}

		expected := "# Talk\n\n**Channel:** Gophers · 1.2K subscribers\n\n**Description:**\n\nLine one\n\nLine two"
		assert.Equal(t, expected, clipvault.VideoBody(v))
	})

	t.Run("skips missing channel and description", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "# Talk", clipvault.VideoBody(&clipvault.VideoContent{Title: "Talk"}))
	})

	t.Run("channel line without subs", func(t *testing.T) {
		t.Parallel()

		v := &clipvault.VideoContent{Title: "Talk", Channel: "Gophers"}

		assert.Equal(t, "# Talk\n\n**Channel:** Gophers", clipvault.VideoBody(v))
	})
}
