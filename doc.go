// Package note2clip converts tab-indented outline notes into
// multi-format clipboard payloads.
//
// # Quick Start
//
// Create a service with a publisher and copy a note:
//
//	svc := note2clip.New(note2clip.WithPublisher(pub))
//	err := svc.Copy(ctx, note2clip.TargetSlack, "Title\n\tHeader\n\t\tBullet")
//
// Or build the payload without publishing:
//
//	payload, err := svc.Build(note2clip.TargetSlack, text)
//	for _, f := range payload {
//	    fmt.Println(f.Name, len(f.Data))
//	}
//
// # Note Format
//
// Indentation is tabs, one level per tab:
//
//	Title Line              (0 tabs -> # Heading)
//		Section Header      (1 tab  -> **Bold section**)
//			Bullet point    (2 tabs -> * Bullet)
//				Nested      (3 tabs ->   * Nested bullet)
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Outline parsing into a depth-keyed node tree (ParseOutline)
//  2. Rendering: Markdown, styled HTML, or Slack's HTML dialect
//  3. Encoding: CF_HTML envelope, Chromium Web Custom MIME Data
//     container, UTF-16LE plain text
//  4. Atomic publish of all formats through an injected Publisher
//
// Each target yields the formats its consumers scan for:
//
//	TargetMarkdown  CF_UNICODETEXT
//	TargetRichText  HTML Format, CF_UNICODETEXT
//	TargetSlack     Chromium Web Custom MIME Data Format,
//	                HTML Format, CF_UNICODETEXT
//
// All formats for one conversion are handed to the publisher as one
// payload; a consumer that understands only one of them still gets
// correct content.
//
// # Reverse-Engineered Formats
//
// The Slack HTML dialect and the Web Custom MIME Data container are
// undocumented, externally imposed formats. They live behind narrow
// encode/decode functions (RenderSlackHTML, EncodeWebCustomData,
// DecodeWebCustomData, BuildCFHTML, ParseCFHTML) with golden-byte
// tests, so format drift shows up as a failing round-trip rather than
// a silently discarded paste.
//
// # Publishing
//
// The system clipboard is modeled as the injected Publisher interface
// rather than a process-wide singleton, so tests can substitute an
// in-memory fake and assert on exact byte buffers. Publish receives
// the whole payload in one call and must set it atomically; on
// failure the service retries once with the plain-text format alone,
// then gives up.
package note2clip
