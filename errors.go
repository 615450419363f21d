package note2clip

import "errors"

// Sentinel errors for library operations.
var (
	// Payload assembly errors.
	ErrUnknownTarget     = errors.New("unknown conversion target")
	ErrEmptyFormatName   = errors.New("clipboard format name cannot be empty")
	ErrDuplicateFormat   = errors.New("duplicate clipboard format in payload")
	ErrEmptyPayload      = errors.New("payload contains no formats")
	ErrEmptySlackMIMEKey = errors.New("slack MIME key cannot be empty")

	// Publish errors.
	ErrNoPublisher = errors.New("no clipboard publisher configured")
	ErrPublish     = errors.New("clipboard publish failed")

	// Web Custom MIME Data decode errors.
	ErrContainerTruncated = errors.New("custom data container truncated")
	ErrContainerSize      = errors.New("custom data container size field exceeds buffer")

	// CF_HTML envelope parse errors.
	ErrEnvelopeHeader  = errors.New("malformed CF_HTML header")
	ErrEnvelopeOffsets = errors.New("CF_HTML offsets out of range")

	// Preview errors.
	ErrPreviewConversion = errors.New("preview HTML conversion failed")
)
