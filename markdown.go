package note2clip

import "strings"

// RenderMarkdown converts an outline tree to Markdown.
//
// Depth mapping:
//
//	depth 0  -> "# Heading"
//	depth 1  -> "**Section header**"
//	depth 2+ -> bullet, two spaces of indent per nesting level
//
// Blank markers are reproduced verbatim as empty lines. No escaping is
// performed; Markdown consumers handle the text as-is.
func RenderMarkdown(root *Node) string {
	var lines []string

	for _, l := range flatten(root) {
		switch {
		case l.blank:
			lines = append(lines, "")
		case l.depth == 0:
			lines = append(lines, "# "+l.text)
		case l.depth == 1:
			lines = append(lines, "**"+l.text+"**")
		default:
			indent := strings.Repeat("  ", l.depth-2)
			lines = append(lines, indent+"* "+l.text)
		}
	}

	return strings.Join(lines, "\n")
}

// normalizePlainText trims surrounding whitespace and ensures exactly
// one trailing newline, the shape plain-text paste targets expect.
func normalizePlainText(text string) string {
	return strings.TrimSpace(text) + "\n"
}
