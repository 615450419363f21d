package note2clip

import (
	"fmt"
	"strings"
)

// bulletIndentPx is the inline margin per bullet nesting level in the
// generic styled rendering.
const bulletIndentPx = 20

// htmlEscaper applies standard HTML escaping, quotes included.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// RenderStyledHTML converts an outline tree to a consumer-agnostic
// HTML fragment.
//
// Depth mapping: depth 0 -> <h1>, depth 1 -> <p><strong>, depth 2+ ->
// nested <ul>/<li> where each list carries an inline margin-left
// proportional to its nesting level. Standard HTML escaping applies
// uniformly, so the fragment pastes cleanly into any HTML-aware
// target.
func RenderStyledHTML(root *Node) string {
	var parts []string
	var listStack []int // open list nesting levels

	closeAllLists := func() {
		for range listStack {
			parts = append(parts, "</li></ul>")
		}
		listStack = nil
	}

	openList := func(nesting int) string {
		return fmt.Sprintf(`<ul style="margin-left:%dpx">`, nesting*bulletIndentPx)
	}

	for _, l := range flatten(root) {
		switch {
		case l.blank:
			closeAllLists()

		case l.depth == 0:
			closeAllLists()
			parts = append(parts, "<h1>"+htmlEscaper.Replace(l.text)+"</h1>")

		case l.depth == 1:
			closeAllLists()
			parts = append(parts, "<p><strong>"+htmlEscaper.Replace(l.text)+"</strong></p>")

		default:
			nesting := l.depth - 2
			content := htmlEscaper.Replace(l.text)

			switch {
			case len(listStack) == 0:
				parts = append(parts, openList(nesting), "<li>"+content)
				listStack = append(listStack, nesting)

			case nesting > listStack[len(listStack)-1]:
				for nesting > listStack[len(listStack)-1] {
					next := listStack[len(listStack)-1] + 1
					parts = append(parts, openList(next))
					if next == nesting {
						parts = append(parts, "<li>"+content)
					} else {
						parts = append(parts, "<li>")
					}
					listStack = append(listStack, next)
				}

			case nesting == listStack[len(listStack)-1]:
				parts = append(parts, "</li>", "<li>"+content)

			default:
				for len(listStack) > 0 && listStack[len(listStack)-1] > nesting {
					parts = append(parts, "</li></ul>")
					listStack = listStack[:len(listStack)-1]
				}
				parts = append(parts, "</li>", "<li>"+content)
			}
		}
	}

	closeAllLists()
	return strings.Join(parts, "\n")
}
