package parser

import "strings"

// ExtractSection isolates the heading-bounded section of text whose heading
// line contains name. It returns false when name does not occur or its first
// occurrence is not on a heading line.
//
// The section runs from the heading to the next heading of equal or higher
// level (exclusive); deeper subsections are part of the body. The result is
// the heading line, a blank line, and the trimmed body.
func ExtractSection(text, name string) (string, bool) {
	idx := strings.Index(text, name)
	if idx < 0 {
		return "", false
	}

	// Expand the match to its containing line.
	lineStart := strings.LastIndex(text[:idx], "\n") + 1
	lineEnd := strings.Index(text[idx:], "\n")

	var heading string
	var bodyStart int
	if lineEnd < 0 {
		heading = text[lineStart:]
		bodyStart = len(text)
	} else {
		lineEnd += idx
		heading = text[lineStart:lineEnd]
		bodyStart = lineEnd + 1
	}

	if !strings.HasPrefix(heading, "#") {
		return "", false
	}
	level := headingLevel(heading)

	// Scan forward for the next heading that closes this section.
	pos := bodyStart
	for {
		next := strings.Index(text[pos:], "\n#")
		if next < 0 {
			return heading + "\n\n" + strings.TrimSpace(text[bodyStart:]), true
		}
		next += pos

		candEnd := strings.Index(text[next+1:], "\n")
		if candEnd < 0 {
			candEnd = len(text)
		} else {
			candEnd += next + 1
		}

		if headingLevel(text[next+1:candEnd]) <= level {
			return heading + "\n\n" + strings.TrimSpace(text[bodyStart:next]), true
		}
		pos = candEnd
	}
}

// headingLevel counts the leading '#' markers of a heading line.
func headingLevel(line string) int {
	return len(line) - len(strings.TrimLeft(line, "#"))
}
