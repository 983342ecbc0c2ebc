package clipvault

import "strings"

// NormalizeText trims every line, collapses each run of blank lines into a
// single blank line and trims the result. It is idempotent.
func NormalizeText(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	prevBlank := false

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if !prevBlank {
				out = append(out, "")
			}
			prevBlank = true
			continue
		}
		out = append(out, line)
		prevBlank = false
	}

	return strings.TrimSpace(strings.Join(out, "\n"))
}
