package note2clip

import (
	"fmt"
	"unicode/utf16"
)

// Target selects the set of clipboard formats to assemble.
type Target string

// Conversion targets.
const (
	TargetMarkdown Target = "markdown" // plain-text Markdown only
	TargetRichText Target = "rich"     // CF_HTML plus plain-text fallback
	TargetSlack    Target = "slack"    // Slack custom data, CF_HTML, plain text
)

// ParseTarget maps a user-facing target name to a Target.
func ParseTarget(s string) (Target, error) {
	switch s {
	case "markdown", "md":
		return TargetMarkdown, nil
	case "rich", "richtext", "styled":
		return TargetRichText, nil
	case "slack", "chat":
		return TargetSlack, nil
	default:
		return "", fmt.Errorf("%w: %q (must be markdown, rich, or slack)", ErrUnknownTarget, s)
	}
}

// Clipboard format identifiers, matching the names the consumer
// applications register and scan for.
const (
	FormatUnicodeText   = "CF_UNICODETEXT"
	FormatHTML          = "HTML Format"
	FormatWebCustomData = "Chromium Web Custom MIME Data Format"
)

// DefaultSlackMIMEKey is the custom content type Slack reads from the
// Web Custom MIME Data container.
const DefaultSlackMIMEKey = "slack/html"

// Format is one (format identifier, byte buffer) clipboard pair.
type Format struct {
	Name string
	Data []byte
}

// Payload is the ordered set of formats for one conversion. Order is
// consumer priority; names are unique within a payload. A payload is
// published as one atomic unit, never format by format.
type Payload []Format

// Validate checks that the payload is non-empty with unique,
// non-empty format names.
func (p Payload) Validate() error {
	if len(p) == 0 {
		return ErrEmptyPayload
	}
	seen := make(map[string]bool, len(p))
	for _, f := range p {
		if f.Name == "" {
			return ErrEmptyFormatName
		}
		if seen[f.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateFormat, f.Name)
		}
		seen[f.Name] = true
	}
	return nil
}

// Get returns the buffer for a format name, if present.
func (p Payload) Get(name string) ([]byte, bool) {
	for _, f := range p {
		if f.Name == name {
			return f.Data, true
		}
	}
	return nil, false
}

// encodeUTF16LE converts a string to UTF-16 little-endian bytes
// without a byte order mark, the encoding CF_UNICODETEXT carries.
func encodeUTF16LE(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, 0, 2*len(units))
	for _, u := range units {
		out = append(out, byte(u), byte(u>>8))
	}
	return out
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	slackMIMEKey string
	formatNames  formatNames
}

// formatNames allows overriding the registered clipboard format
// identifiers, for platforms that name them differently.
type formatNames struct {
	text   string
	html   string
	custom string
}

// WithPublisher injects the clipboard publish collaborator.
func WithPublisher(p Publisher) Option {
	return func(s *Service) {
		s.publisher = p
	}
}

// WithSlackMIMEKey overrides the content type stored in the custom
// data container. Panics on an empty key (programmer error).
func WithSlackMIMEKey(key string) Option {
	if key == "" {
		panic("note2clip: WithSlackMIMEKey key must be non-empty")
	}
	return func(s *Service) {
		s.cfg.slackMIMEKey = key
	}
}

// WithFormatNames overrides the clipboard format identifiers. Empty
// strings keep the defaults.
func WithFormatNames(text, html, custom string) Option {
	return func(s *Service) {
		if text != "" {
			s.cfg.formatNames.text = text
		}
		if html != "" {
			s.cfg.formatNames.html = html
		}
		if custom != "" {
			s.cfg.formatNames.custom = custom
		}
	}
}
