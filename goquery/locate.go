package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// EmbeddedDataMarker names the variable that holds the watch page's initial data.
const EmbeddedDataMarker = "ytInitialData"

// LocateEmbeddedJSON finds the first <script> whose text contains marker and
// whose first object literal after the marker decodes as JSON. Candidates that
// fail to balance or decode are skipped. The second result is false when no
// script qualifies.
func LocateEmbeddedJSON(doc *goquery.Document, marker string) (Value, bool) {
	var found Value
	var ok bool

	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := s.Text()
		at := strings.Index(text, marker)
		if at < 0 {
			return true
		}

		obj, balanced := ScanJSONObject(text, at+len(marker))
		if !balanced {
			return true
		}

		v, err := ParseValue([]byte(obj))
		if err != nil {
			return true
		}

		found, ok = v, true
		return false
	})

	return found, ok
}

// ScanJSONObject returns the object literal that starts at the first '{' at or
// after from, up to and including its matching '}'. Braces inside string
// literals are ignored, and a backslash inside a string escapes exactly one
// character. The second result is false if there is no '{' or it never balances.
func ScanJSONObject(text string, from int) (string, bool) {
	if from < 0 || from > len(text) {
		return "", false
	}
	rel := strings.IndexByte(text[from:], '{')
	if rel < 0 {
		return "", false
	}
	start := from + rel

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		ch := text[i]

		if escaped {
			escaped = false
			continue
		}
		if inString {
			switch ch {
			case '\\':
				escaped = true
			case '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}

	return "", false
}
