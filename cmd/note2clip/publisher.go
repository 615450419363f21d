package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	note2clip "github.com/alnah/go-note2clip"
	"github.com/rs/zerolog"
)

// dirPublisher implements note2clip.Publisher by writing each format's
// buffer to a file in a directory. The OS clipboard primitive itself
// is out of scope here; this publisher is the reference collaborator,
// and anything that can set real clipboard formats plugs into the same
// interface.
//
// To honor the atomicity contract without an OS-level transaction, all
// buffers are staged as temporary files first and renamed into place
// only after every write succeeded; a failed stage leaves no partial
// set behind.
type dirPublisher struct {
	dir string
	log zerolog.Logger
}

func (p *dirPublisher) Publish(ctx context.Context, payload note2clip.Payload) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := payload.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	// Stage every buffer before committing any of them.
	staged := make([]string, 0, len(payload))
	cleanup := func() {
		for _, tmp := range staged {
			_ = os.Remove(tmp)
		}
	}

	for _, f := range payload {
		tmp := filepath.Join(p.dir, sanitizeFormatName(f.Name)+".tmp")
		if err := os.WriteFile(tmp, f.Data, 0o644); err != nil {
			cleanup()
			return fmt.Errorf("%w: staging %s: %v", ErrWriteOutput, f.Name, err)
		}
		staged = append(staged, tmp)
	}

	for i, f := range payload {
		final := filepath.Join(p.dir, sanitizeFormatName(f.Name))
		if err := os.Rename(staged[i], final); err != nil {
			cleanup()
			return fmt.Errorf("%w: committing %s: %v", ErrWriteOutput, f.Name, err)
		}
		p.log.Debug().Str("format", f.Name).Int("bytes", len(f.Data)).Str("file", final).Msg("format written")
	}

	return nil
}
