package goquery

import "github.com/fwojciec/clipvault"

// WalkVideoData reads title, channel, subscriber count and description from a
// decoded initial-data tree. The description comes from the run sequence when
// present because it holds the full text that the rendered page truncates;
// newer pages only carry attributedDescription.content.
//
// It returns nil when neither a title nor a description was found, which
// usually means the tree is not a watch page.
func WalkVideoData(data Value) *clipvault.VideoContent {
	contents := data.Get("contents", "twoColumnWatchNextResults", "results", "results", "contents").Array()

	var title, channel, subs, description string

	for _, item := range contents {
		if primary := item.Get("videoPrimaryInfoRenderer"); primary.Exists() {
			title = primary.Get("title", "runs").RunsText()
		}

		secondary := item.Get("videoSecondaryInfoRenderer")
		if !secondary.Exists() {
			continue
		}

		description = secondary.Get("description", "runs").RunsText()
		if description == "" {
			description = secondary.Get("attributedDescription", "content").Str()
		}

		if owner := secondary.Get("owner", "videoOwnerRenderer"); owner.Exists() {
			channel = owner.Get("title", "runs").RunsText()
			subs = owner.Get("subscriberCountText", "simpleText").Str()
			if subs == "" {
				subs = owner.Get("subscriberCountText", "runs").RunsText()
			}
		}
	}

	if title == "" && description == "" {
		return nil
	}

	return &clipvault.VideoContent{
		Title:       title,
		Channel:     channel,
		Subs:        subs,
		Description: clipvault.NormalizeText(description),
	}
}
