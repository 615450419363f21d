package note2clip

import (
	"fmt"
	"strings"
)

// Slack's rich-text editor recognizes pasted content by these markers,
// reverse-engineered from its own clipboard output. Its parser is
// whitespace-sensitive, so the rendering is a single minified string.
const (
	slackMeta      = `<meta charset="utf-8">`
	slackDivOpen   = `<div class="p-rich_text_section">`
	slackDivClose  = `</div>`
	slackBreak     = `<br aria-hidden="true">`
	slackParaBreak = `<span aria-label="&nbsp;" class="c-mrkdwn__br" data-stringify-type="paragraph-break"></span>`
)

// slackEscaper escapes HTML specials but leaves double quotes raw;
// Slack's paste handler expects unescaped quotes in content text.
var slackEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

func slackBold(content string) string {
	return `<b data-stringify-type="bold">` + content + `</b>`
}

func slackListOpen(indent int) string {
	return fmt.Sprintf(`<ul data-stringify-type="unordered-list" data-list-tree="true" `+
		`class="p-rich_text_list p-rich_text_list__bullet p-rich_text_list--nested" `+
		`data-indent="%d" data-border="0">`, indent)
}

func slackItemOpen(indent int) string {
	return fmt.Sprintf(`<li data-stringify-indent="%d" data-stringify-border="0">`, indent)
}

// RenderSlackHTML converts an outline tree to Slack's attribute-driven
// HTML dialect, the value stored under the slack/html type inside the
// Web Custom MIME Data clipboard entry.
//
// Depth mapping: depth 0 -> uppercased bold heading in a rich-text
// section div, depth 1 -> bold section header, depth 2+ -> nested
// lists where both the list and each item carry the nesting level as
// an explicit data-indent / data-stringify-indent attribute.
func RenderSlackHTML(root *Node) string {
	parts := []string{slackMeta}
	var listStack []int // open list indent levels
	divOpen := false
	firstHeading := true

	closeAllLists := func() {
		for range listStack {
			parts = append(parts, "</li></ul>")
		}
		listStack = nil
	}

	ensureDiv := func() {
		if !divOpen {
			parts = append(parts, slackDivOpen)
			divOpen = true
		}
	}

	closeDiv := func() {
		if divOpen {
			parts = append(parts, slackDivClose)
			divOpen = false
		}
	}

	for _, l := range flatten(root) {
		if l.blank {
			closeAllLists()
			continue
		}

		switch {
		case l.depth == 0:
			closeAllLists()
			// Uppercase before escaping so entity names stay intact.
			content := slackEscaper.Replace(strings.ToUpper(l.text))
			if !divOpen && !firstHeading {
				ensureDiv()
				parts = append(parts, slackParaBreak)
			} else {
				ensureDiv()
			}
			firstHeading = false
			parts = append(parts, slackBold(content))

		case l.depth == 1:
			closeAllLists()
			ensureDiv()
			parts = append(parts, slackParaBreak, slackBold(slackEscaper.Replace(l.text)), slackBreak)
			closeDiv()

		default:
			closeDiv()
			indent := l.depth - 2
			content := slackEscaper.Replace(l.text)

			switch {
			case len(listStack) == 0:
				parts = append(parts, slackListOpen(indent), slackItemOpen(indent)+content)
				listStack = append(listStack, indent)

			case indent > listStack[len(listStack)-1]:
				for indent > listStack[len(listStack)-1] {
					next := listStack[len(listStack)-1] + 1
					parts = append(parts, slackListOpen(next))
					if next == indent {
						parts = append(parts, slackItemOpen(indent)+content)
					} else {
						parts = append(parts, slackItemOpen(next))
					}
					listStack = append(listStack, next)
				}

			case indent == listStack[len(listStack)-1]:
				parts = append(parts, "</li>", slackItemOpen(indent)+content)

			default:
				for len(listStack) > 0 && listStack[len(listStack)-1] > indent {
					parts = append(parts, "</li></ul>")
					listStack = listStack[:len(listStack)-1]
				}
				parts = append(parts, "</li>", slackItemOpen(indent)+content)
			}
		}
	}

	closeAllLists()
	closeDiv()

	return strings.Join(parts, "")
}
