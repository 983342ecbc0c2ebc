package clipvault

import (
	"regexp"
	"strings"
	"time"
)

// maxSlugLen caps the slug part of a note filename.
const maxSlugLen = 40

var (
	slugInvalidRe = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaceRe   = regexp.MustCompile(`\s+`)
	slugHyphenRe  = regexp.MustCompile(`-+`)
)

// Slug turns a title into a short, lowercase, hyphenated filename fragment.
// Characters other than ASCII letters, digits, spaces and hyphens are dropped.
func Slug(title string) string {
	s := slugInvalidRe.ReplaceAllString(strings.ToLower(title), "")
	s = strings.TrimSpace(s)
	s = slugSpaceRe.ReplaceAllString(s, "-")
	s = slugHyphenRe.ReplaceAllString(s, "-")
	if len(s) > maxSlugLen {
		s = s[:maxSlugLen]
	}
	return strings.TrimSuffix(s, "-")
}

// Timestamp formats t as YYYYMMDDTHHmmss in t's location.
func Timestamp(t time.Time) string {
	return t.Format("20060102T150405")
}

// Filename builds the vault filename for a capture taken at t.
// An empty slug falls back to "capture".
func Filename(title string, t time.Time, canvas bool) string {
	slug := Slug(title)
	if slug == "" {
		slug = "capture"
	}
	ext := ".md"
	if canvas {
		ext = ".canvas"
	}
	return Timestamp(t) + "-" + slug + ext
}
