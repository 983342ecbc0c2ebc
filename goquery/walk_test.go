package goquery_test

import (
	"testing"

	cvgoquery "github.com/fwojciec/clipvault/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// watchData is a trimmed-down watch page initial-data tree.
const watchData = `{
  "contents": {
    "twoColumnWatchNextResults": {
      "results": {
        "results": {
          "contents": [
            {
              "videoPrimaryInfoRenderer": {
                "title": {"runs": [{"text": "Go Concurrency "}, {"text": "Patterns"}]}
              }
            },
            {
              "videoSecondaryInfoRenderer": {
                "owner": {
                  "videoOwnerRenderer": {
                    "title": {"runs": [{"text": "Google for Developers"}]},
                    "subscriberCountText": {"simpleText": "2.4M subscribers"}
                  }
                },
                "description": {
                  "runs": [
                    {"text": "  First line\n\n\n\nSee "},
                    {"text": "https://go.dev", "navigationEndpoint": {"urlEndpoint": {"url": "https://go.dev"}}},
                    {"text": " for more.  "}
                  ]
                }
              }
            }
          ]
        }
      }
    }
  }
}`

func parseValue(t *testing.T, data string) cvgoquery.Value {
	t.Helper()
	v, err := cvgoquery.ParseValue([]byte(data))
	require.NoError(t, err)
	return v
}

func TestWalkVideoData(t *testing.T) {
	t.Parallel()

	t.Run("extracts every field", func(t *testing.T) {
		t.Parallel()

		got := cvgoquery.WalkVideoData(parseValue(t, watchData))

		require.NotNil(t, got)
		assert.Equal(t, "Go Concurrency Patterns", got.Title)
		assert.Equal(t, "Google for Developers", got.Channel)
		assert.Equal(t, "2.4M subscribers", got.Subs)
		assert.Equal(t, "First line\n\nSee https://go.dev for more.", got.Description)
	})

	t.Run("missing owner leaves channel and subs empty", func(t *testing.T) {
		t.Parallel()

		data := `{"contents":{"twoColumnWatchNextResults":{"results":{"results":{"contents":[
			{"videoPrimaryInfoRenderer":{"title":{"runs":[{"text":"Title"}]}}},
			{"videoSecondaryInfoRenderer":{"description":{"runs":[{"text":"Desc"}]}}}
		]}}}}}`

		got := cvgoquery.WalkVideoData(parseValue(t, data))

		require.NotNil(t, got)
		assert.Equal(t, "Title", got.Title)
		assert.Equal(t, "Desc", got.Description)
		assert.Empty(t, got.Channel)
		assert.Empty(t, got.Subs)
	})

	t.Run("falls back to attributed description", func(t *testing.T) {
		t.Parallel()

		data := `{"contents":{"twoColumnWatchNextResults":{"results":{"results":{"contents":[
			{"videoSecondaryInfoRenderer":{"attributedDescription":{"content":"Plain\n\n\ndescription"}}}
		]}}}}}`

		got := cvgoquery.WalkVideoData(parseValue(t, data))

		require.NotNil(t, got)
		assert.Empty(t, got.Title)
		assert.Equal(t, "Plain\n\ndescription", got.Description)
	})

	t.Run("prefers runs over attributed description", func(t *testing.T) {
		t.Parallel()

		data := `{"contents":{"twoColumnWatchNextResults":{"results":{"results":{"contents":[
			{"videoSecondaryInfoRenderer":{
				"description":{"runs":[{"text":"desc1"},{"text":"desc2"}]},
				"attributedDescription":{"content":"truncated…"}
			}}
		]}}}}}`

		got := cvgoquery.WalkVideoData(parseValue(t, data))

		require.NotNil(t, got)
		assert.Equal(t, "desc1desc2", got.Description)
	})

	t.Run("reconstructs subscriber count from runs", func(t *testing.T) {
		t.Parallel()

		data := `{"contents":{"twoColumnWatchNextResults":{"results":{"results":{"contents":[
			{"videoPrimaryInfoRenderer":{"title":{"runs":[{"text":"T"}]}}},
			{"videoSecondaryInfoRenderer":{"owner":{"videoOwnerRenderer":{
				"title":{"runs":[{"text":"Chan"}]},
				"subscriberCountText":{"runs":[{"text":"12K"},{"text":" subscribers"}]}
			}}}}
		]}}}}}`

		got := cvgoquery.WalkVideoData(parseValue(t, data))

		require.NotNil(t, got)
		assert.Equal(t, "Chan", got.Channel)
		assert.Equal(t, "12K subscribers", got.Subs)
	})

	t.Run("no title and no description is no result", func(t *testing.T) {
		t.Parallel()

		data := `{"contents":{"twoColumnWatchNextResults":{"results":{"results":{"contents":[
			{"videoPrimaryInfoRenderer":{"title":{"runs":[]}}},
			{"videoSecondaryInfoRenderer":{"owner":{"videoOwnerRenderer":{"title":{"runs":[{"text":"Chan"}]}}}}}
		]}}}}}`

		assert.Nil(t, cvgoquery.WalkVideoData(parseValue(t, data)))
	})

	t.Run("wrong types at any depth degrade to no result", func(t *testing.T) {
		t.Parallel()

		for _, data := range []string{
			`{}`,
			`[]`,
			`"string"`,
			`{"contents":"nope"}`,
			`{"contents":{"twoColumnWatchNextResults":{"results":{"results":{"contents":{"not":"an array"}}}}}}`,
			`{"contents":{"twoColumnWatchNextResults":{"results":{"results":{"contents":[1,"two",null,{"videoPrimaryInfoRenderer":5}]}}}}}`,
		} {
			assert.Nil(t, cvgoquery.WalkVideoData(parseValue(t, data)), "data %s", data)
		}
	})
}
