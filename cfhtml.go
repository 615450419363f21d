package note2clip

import (
	"fmt"
	"strconv"
	"strings"
)

// CF_HTML envelope pieces. Offsets are zero-padded to a fixed ten
// digits so the header length is known before the offsets are
// computed, making the offset calculation a single pass.
const (
	cfHTMLHeaderFormat = "Version:0.9\r\n" +
		"StartHTML:%010d\r\n" +
		"EndHTML:%010d\r\n" +
		"StartFragment:%010d\r\n" +
		"EndFragment:%010d\r\n"

	cfHTMLPrefix = "<html><body>\r\n<!--StartFragment-->"
	cfHTMLSuffix = "<!--EndFragment-->\r\n</body></html>"
)

// BuildCFHTML wraps an HTML fragment in the CF_HTML clipboard
// envelope: ASCII header lines carrying exact byte offsets into the
// final UTF-8 buffer, plus fragment markers around the pasted content.
// Consumers slice the buffer by these offsets, so an off-by-one here
// truncates or corrupts the paste.
func BuildCFHTML(fragment string) []byte {
	headerLen := len(fmt.Sprintf(cfHTMLHeaderFormat, 0, 0, 0, 0))

	startHTML := headerLen
	startFragment := startHTML + len(cfHTMLPrefix)
	endFragment := startFragment + len(fragment)
	endHTML := endFragment + len(cfHTMLSuffix)

	header := fmt.Sprintf(cfHTMLHeaderFormat, startHTML, endHTML, startFragment, endFragment)
	return []byte(header + cfHTMLPrefix + fragment + cfHTMLSuffix)
}

// CFHTMLOffsets holds the byte offsets declared by a CF_HTML header.
type CFHTMLOffsets struct {
	StartHTML     int
	EndHTML       int
	StartFragment int
	EndFragment   int
}

// ParseCFHTML reads back the offsets and the fragment they delimit.
// Used by the diagnostic inspector and by tests; the production path
// only builds envelopes.
func ParseCFHTML(data []byte) (CFHTMLOffsets, string, error) {
	var off CFHTMLOffsets
	fields := map[string]*int{
		"StartHTML":     &off.StartHTML,
		"EndHTML":       &off.EndHTML,
		"StartFragment": &off.StartFragment,
		"EndFragment":   &off.EndFragment,
	}

	text := string(data)
	for name, dst := range fields {
		idx := strings.Index(text, name+":")
		if idx < 0 {
			return off, "", fmt.Errorf("%w: missing %s", ErrEnvelopeHeader, name)
		}
		rest := text[idx+len(name)+1:]
		end := strings.IndexAny(rest, "\r\n")
		if end < 0 {
			return off, "", fmt.Errorf("%w: unterminated %s", ErrEnvelopeHeader, name)
		}
		v, err := strconv.Atoi(rest[:end])
		if err != nil {
			return off, "", fmt.Errorf("%w: %s: %v", ErrEnvelopeHeader, name, err)
		}
		*dst = v
	}

	if off.StartFragment < 0 || off.EndFragment < off.StartFragment || off.EndFragment > len(data) {
		return off, "", fmt.Errorf("%w: fragment %d..%d in %d bytes", ErrEnvelopeOffsets, off.StartFragment, off.EndFragment, len(data))
	}

	return off, string(data[off.StartFragment:off.EndFragment]), nil
}
