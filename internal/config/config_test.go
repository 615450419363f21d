package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "note2clip.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
target: slack
outputDir: /tmp/clip
slackMime: org/html
formats:
  text: CF_UNICODETEXT
  html: HTML Format
  custom: Chromium Web Custom MIME Data Format
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Target != "slack" || cfg.OutputDir != "/tmp/clip" || cfg.SlackMIME != "org/html" {
		t.Errorf("Load() = %+v", cfg)
	}
	if cfg.Formats.Custom != "Chromium Web Custom MIME Data Format" {
		t.Errorf("Formats.Custom = %q", cfg.Formats.Custom)
	}
}

func TestLoad_Missing(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("Load() error = %v, want %v", err, ErrConfigNotFound)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "unknown field",
			content: "target: slack\nbogus: true\n",
			wantErr: ErrConfigParse,
		},
		{
			name:    "unknown target",
			content: "target: pdf\n",
			wantErr: ErrConfigParse,
		},
		{
			name:    "oversized field",
			content: "slackMime: " + strings.Repeat("x", MaxMIMEKeyLength+1) + "\n",
			wantErr: ErrFieldTooLong,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(writeConfig(t, tt.content))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
