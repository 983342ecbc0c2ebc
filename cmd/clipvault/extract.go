package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/clipvault"
)

// extractOutput is the JSON printed by the extract command. Article and
// Video are null when nothing was found.
type extractOutput struct {
	URL     string                    `json:"url"`
	Kind    string                    `json:"kind"`
	Article *clipvault.ArticleContent `json:"article,omitempty"`
	Video   *clipvault.VideoContent   `json:"video,omitempty"`
	Found   bool                      `json:"found"`
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	html, err := c.read(deps.Stdin)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", clipvault.ErrorMessage(err))
		return err
	}

	page := &clipvault.Page{URL: c.URL, HTML: html}
	out := extractOutput{URL: page.URL, Kind: page.Kind().String()}
	switch page.Kind() {
	case clipvault.PageVideo:
		out.Video = deps.Videos.ExtractVideo(page.HTML)
		out.Found = out.Video != nil
	default:
		out.Article = deps.Articles.ExtractArticle(page.HTML, page.URL)
		out.Found = out.Article != nil
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}

func (c *ExtractCmd) read(stdin io.Reader) (string, error) {
	if c.File == "" || c.File == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", clipvault.Errorf(clipvault.EINTERNAL, "reading stdin: %v", err)
		}
		return string(b), nil
	}

	b, err := os.ReadFile(c.File)
	if os.IsNotExist(err) {
		return "", clipvault.Errorf(clipvault.ENOTFOUND, "file %s not found", c.File)
	} else if err != nil {
		return "", clipvault.Errorf(clipvault.EINTERNAL, "reading %s: %v", c.File, err)
	}
	return string(b), nil
}
