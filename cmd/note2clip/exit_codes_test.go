package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	note2clip "github.com/alnah/go-note2clip"
	"github.com/alnah/go-note2clip/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"publish failure", fmt.Errorf("copy: %w", note2clip.ErrPublish), ExitPublish},
		{"no publisher", note2clip.ErrNoPublisher, ExitPublish},
		{"read input", fmt.Errorf("%w: no such file", ErrReadInput), ExitIO},
		{"write output", ErrWriteOutput, ExitIO},
		{"file not found", os.ErrNotExist, ExitIO},
		{"usage", ErrUsage, ExitUsage},
		{"unknown command", ErrUnknownCommand, ExitUsage},
		{"unknown target", note2clip.ErrUnknownTarget, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"truncated container", note2clip.ErrContainerTruncated, ExitUsage},
		{"envelope header", note2clip.ErrEnvelopeHeader, ExitUsage},
		{"unexpected", errors.New("boom"), ExitGeneral},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
