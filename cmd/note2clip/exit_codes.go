package main

import (
	"errors"
	"os"

	note2clip "github.com/alnah/go-note2clip"
	"github.com/alnah/go-note2clip/internal/config"
)

// Exit codes for the note2clip CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitPublish = 4 // Clipboard publish failed after the fallback
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Publish errors (exit 4)
	if errors.Is(err, note2clip.ErrPublish) ||
		errors.Is(err, note2clip.ErrNoPublisher) {
		return ExitPublish
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, note2clip.ErrUnknownTarget) ||
		errors.Is(err, note2clip.ErrEmptyFormatName) ||
		errors.Is(err, note2clip.ErrDuplicateFormat) ||
		errors.Is(err, note2clip.ErrEmptyPayload) ||
		errors.Is(err, note2clip.ErrContainerTruncated) ||
		errors.Is(err, note2clip.ErrContainerSize) ||
		errors.Is(err, note2clip.ErrEnvelopeHeader) ||
		errors.Is(err, note2clip.ErrEnvelopeOffsets) {
		return ExitUsage
	}

	return ExitGeneral
}
