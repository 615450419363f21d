package note2clip

import (
	"context"
	"fmt"
)

// Publisher is the external clipboard publish collaborator. Publish
// must set all formats as one atomic clipboard state: a reader never
// observes some formats from the payload without the others.
type Publisher interface {
	Publish(ctx context.Context, payload Payload) error
}

// PublisherFunc adapts a function to the Publisher interface.
type PublisherFunc func(ctx context.Context, payload Payload) error

// Publish calls f.
func (f PublisherFunc) Publish(ctx context.Context, payload Payload) error {
	return f(ctx, payload)
}

// Service orchestrates the outline-to-clipboard pipeline: parse the
// source once, render the target's encodings, and assemble them into
// one payload.
type Service struct {
	cfg       serviceConfig
	publisher Publisher
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithPublisher).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			slackMIMEKey: DefaultSlackMIMEKey,
			formatNames: formatNames{
				text:   FormatUnicodeText,
				html:   FormatHTML,
				custom: FormatWebCustomData,
			},
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Build converts source text into the payload for a target. Build is
// pure: same input, same bytes. Empty input produces an empty but
// well-formed payload (a custom data container with zero records, an
// envelope around an empty fragment), never an error.
func (s *Service) Build(target Target, text string) (Payload, error) {
	tree := ParseOutline(text)
	plain := encodeUTF16LE(normalizePlainText(RenderMarkdown(tree)))

	var payload Payload
	switch target {
	case TargetMarkdown:
		payload = Payload{
			{Name: s.cfg.formatNames.text, Data: plain},
		}

	case TargetRichText:
		payload = Payload{
			{Name: s.cfg.formatNames.html, Data: BuildCFHTML(RenderStyledHTML(tree))},
			{Name: s.cfg.formatNames.text, Data: plain},
		}

	case TargetSlack:
		var records []Record
		if !isEmptyOutline(tree) {
			records = []Record{{Key: s.cfg.slackMIMEKey, Value: RenderSlackHTML(tree)}}
		}
		payload = Payload{
			{Name: s.cfg.formatNames.custom, Data: EncodeWebCustomData(records)},
			{Name: s.cfg.formatNames.html, Data: BuildCFHTML(RenderStyledHTML(tree))},
			{Name: s.cfg.formatNames.text, Data: plain},
		}

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, target)
	}

	if err := payload.Validate(); err != nil {
		return nil, err
	}
	return payload, nil
}

// Copy builds the payload for a target and hands it to the publisher
// in a single call. If the publish fails, Copy retries exactly once
// with the plain-text format alone, the one documented fallback; any
// further failure is returned to the caller.
func (s *Service) Copy(ctx context.Context, target Target, text string) error {
	payload, err := s.Build(target, text)
	if err != nil {
		return err
	}

	if s.publisher == nil {
		return ErrNoPublisher
	}

	err = s.publisher.Publish(ctx, payload)
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	if plain, ok := payload.Get(s.cfg.formatNames.text); ok && len(payload) > 1 {
		narrow := Payload{{Name: s.cfg.formatNames.text, Data: plain}}
		if retryErr := s.publisher.Publish(ctx, narrow); retryErr == nil {
			return nil
		}
	}

	return fmt.Errorf("%w: %v", ErrPublish, err)
}
