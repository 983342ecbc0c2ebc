package clipvault

import (
	"strings"
	"time"
)

// Note is a capture ready to be rendered into a vault file.
type Note struct {
	// What is the headline of the capture, usually the page URL.
	What string
	Who  string
	Why  string

	// Props are extra frontmatter properties, written in order.
	Props []Prop

	// Body is the extracted page content in Markdown.
	Body string

	// URL is the captured page, appended as a "Source:" line.
	URL string

	Created time.Time
}

// Markdown renders the note as frontmatter followed by the body and source.
func (n *Note) Markdown() string {
	lines := []string{"---"}
	lines = append(lines, "created: "+n.Created.UTC().Format("2006-01-02T15:04:05"))
	lines = append(lines, `what: "`+escapeFrontmatter(n.What)+`"`)
	if n.Who != "" {
		lines = append(lines, `who: "`+escapeFrontmatter(n.Who)+`"`)
	}
	for _, p := range n.Props {
		if p.Key != "" {
			lines = append(lines, p.Key+`: "`+escapeFrontmatter(p.Value)+`"`)
		}
	}
	if n.Why != "" {
		lines = append(lines, `why: "`+escapeFrontmatter(n.Why)+`"`)
	}
	lines = append(lines, "---", "")

	if body := strings.TrimSpace(n.Body); body != "" {
		lines = append(lines, body, "")
	}
	if n.URL != "" {
		lines = append(lines, "Source: "+n.URL)
	}
	return strings.Join(lines, "\n")
}

// CanvasText renders the note as plain Markdown for a canvas text node.
// Canvas text nodes do not render frontmatter, so the fields become lines.
func (n *Note) CanvasText() string {
	var parts []string
	if what := strings.TrimSpace(n.What); what != "" {
		parts = append(parts, what)
	}

	var meta []string
	if n.Who != "" {
		meta = append(meta, "**Who:** "+n.Who)
	}
	if n.Why != "" {
		meta = append(meta, "**Why:** "+n.Why)
	}
	if len(meta) > 0 {
		parts = append(parts, strings.Join(meta, "\n"))
	}

	if body := strings.TrimSpace(n.Body); body != "" {
		parts = append(parts, body)
	}
	if n.URL != "" {
		parts = append(parts, "Source: "+n.URL)
	}
	return strings.Join(parts, "\n\n")
}

// escapeFrontmatter makes s safe inside a double-quoted frontmatter value.
func escapeFrontmatter(s string) string {
	s = strings.ReplaceAll(s, `"`, `\"`)
	return strings.ReplaceAll(s, "\n", " ")
}

// ArticleBody formats extracted article content as a note body.
// fallbackTitle is used for the heading when the article has no title.
func ArticleBody(a *ArticleContent, fallbackTitle string) string {
	if a == nil {
		return ""
	}

	title := strings.TrimSpace(a.Title)
	if title == "" {
		title = strings.TrimSpace(fallbackTitle)
	}

	var meta []string
	if a.Byline != "" {
		meta = append(meta, "By: "+a.Byline)
	}
	if a.SiteName != "" {
		meta = append(meta, "Site: "+a.SiteName)
	}
	if a.PublishedTime != "" {
		meta = append(meta, "Published: "+a.PublishedTime)
	}

	parts := []string{"# " + title}
	if len(meta) > 0 {
		parts = append(parts, strings.Join(meta, " · "))
	}
	if a.Excerpt != "" {
		parts = append(parts, "> "+a.Excerpt)
	}
	if a.TextContent != "" {
		parts = append(parts, a.TextContent)
	}
	return strings.Join(parts, "\n\n")
}

// VideoBody formats extracted video content as a note body.
func VideoBody(v *VideoContent) string {
	if v == nil {
		return ""
	}

	parts := []string{"# " + v.Title}

	var channel []string
	for _, s := range []string{v.Channel, v.Subs} {
		if s != "" {
			channel = append(channel, s)
		}
	}
	if len(channel) > 0 {
		parts = append(parts, "**Channel:** "+strings.Join(channel, " · "))
	}
	if v.Description != "" {
		parts = append(parts, "**Description:**\n\n"+v.Description)
	}
	return strings.Join(parts, "\n\n")
}
