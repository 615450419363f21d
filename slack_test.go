package note2clip

import (
	"strings"
	"testing"
)

func TestRenderSlackHTML_Golden(t *testing.T) {
	t.Parallel()

	// Captured shape of what Slack's own copy handler produces for a
	// heading, a section header, and a two-item list.
	input := "Title\n\tHeader\n\t\tBullet one\n\t\tBullet two"
	want := `<meta charset="utf-8">` +
		`<div class="p-rich_text_section">` +
		`<b data-stringify-type="bold">TITLE</b>` +
		`<span aria-label="&nbsp;" class="c-mrkdwn__br" data-stringify-type="paragraph-break"></span>` +
		`<b data-stringify-type="bold">Header</b>` +
		`<br aria-hidden="true">` +
		`</div>` +
		`<ul data-stringify-type="unordered-list" data-list-tree="true" ` +
		`class="p-rich_text_list p-rich_text_list__bullet p-rich_text_list--nested" ` +
		`data-indent="0" data-border="0">` +
		`<li data-stringify-indent="0" data-stringify-border="0">Bullet one</li>` +
		`<li data-stringify-indent="0" data-stringify-border="0">Bullet two</li></ul>`

	got := RenderSlackHTML(ParseOutline(input))
	if got != want {
		t.Errorf("RenderSlackHTML() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderSlackHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		wantContains []string
		wantNot      []string
	}{
		{
			name:         "empty input keeps charset declaration",
			input:        "",
			wantContains: []string{`<meta charset="utf-8">`},
		},
		{
			name:         "heading is uppercased",
			input:        "roadmap review",
			wantContains: []string{">ROADMAP REVIEW</b>"},
			wantNot:      []string{">roadmap review"},
		},
		{
			name:  "escape all but quotes",
			input: "\t\tsaid \"hi\" & <left>",
			wantContains: []string{
				`said "hi" &amp; &lt;left&gt;`,
			},
			wantNot: []string{"&quot;"},
		},
		{
			name:  "uppercase before escaping keeps entities intact",
			input: "q&a",
			wantContains: []string{
				">Q&amp;A</b>",
			},
			wantNot: []string{"&AMP;"},
		},
		{
			name:  "nested list carries matching indents",
			input: "\t\tTop\n\t\t\tNested",
			wantContains: []string{
				`data-indent="0"`,
				`<li data-stringify-indent="0" data-stringify-border="0">Top`,
				`data-indent="1"`,
				`<li data-stringify-indent="1" data-stringify-border="0">Nested`,
				`data-list-tree="true"`,
			},
		},
		{
			name:  "paragraph break between headings",
			input: "First\nSecond",
			wantContains: []string{
				">FIRST</b>",
				`data-stringify-type="paragraph-break"`,
				">SECOND</b>",
			},
		},
		{
			name:  "section header gets break and closes its div",
			input: "\tStatus",
			wantContains: []string{
				`<b data-stringify-type="bold">Status</b><br aria-hidden="true"></div>`,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := RenderSlackHTML(ParseOutline(tt.input))

			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
			for _, not := range tt.wantNot {
				if strings.Contains(got, not) {
					t.Errorf("output must not contain %q:\n%s", not, got)
				}
			}
		})
	}
}

func TestRenderSlackHTML_Minified(t *testing.T) {
	t.Parallel()

	// Slack's parser is whitespace-sensitive between tags; the
	// rendering must be one unbroken string.
	got := RenderSlackHTML(ParseOutline("A\n\tS\n\t\tB1\n\t\t\tB2\n\t\tB3"))
	if strings.ContainsAny(got, "\n\t") {
		t.Errorf("rendering contains inter-tag whitespace:\n%q", got)
	}
	if !strings.HasPrefix(got, `<meta charset="utf-8">`) {
		t.Errorf("rendering must start with charset declaration:\n%q", got)
	}
}

func TestRenderSlackHTML_DeepDedent(t *testing.T) {
	t.Parallel()

	got := RenderSlackHTML(ParseOutline("\t\tA\n\t\t\tB\n\t\t\t\tC\n\t\tD"))

	if opens, closes := strings.Count(got, "<ul"), strings.Count(got, "</ul>"); opens != closes {
		t.Errorf("unbalanced lists: %d <ul> vs %d </ul>\n%s", opens, closes, got)
	}
	// D dedents from indent 2 back to 0 and must land in the outer list.
	if !strings.Contains(got, `</li></ul></li></ul></li><li data-stringify-indent="0" data-stringify-border="0">D`) {
		t.Errorf("dedent did not close intermediate lists:\n%s", got)
	}
}
