package shared

import "strings"

// CenterContent pads content with blank lines so it sits vertically centered
// in height lines. Content taller than height is returned unchanged.
func CenterContent(content string, height int) string {
	content = strings.TrimRight(content, "\n")

	var contentLines []string
	if content != "" {
		contentLines = strings.Split(content, "\n")
	}

	if len(contentLines) >= height {
		return content
	}

	topPad := (height - len(contentLines)) / 2

	lines := make([]string, height)
	copy(lines[topPad:], contentLines)
	return strings.Join(lines, "\n")
}
