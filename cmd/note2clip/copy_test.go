package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	note2clip "github.com/alnah/go-note2clip"
)

func TestRunCopy_SlackTarget(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	deps, _, _ := testDeps("Title\n\tHeader\n\t\tBullet one\n\t\tBullet two")

	if err := runCopy([]string{"-t", "slack", "-o", dir}, deps); err != nil {
		t.Fatalf("runCopy() error: %v", err)
	}

	// All three formats land together.
	wantFiles := []string{
		"Chromium_Web_Custom_MIME_Data_Format.bin",
		"HTML_Format.bin",
		"CF_UNICODETEXT.bin",
	}
	for _, name := range wantFiles {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing published format file %s: %v", name, err)
		}
	}

	// The container decodes back to the slack/html record.
	data, err := os.ReadFile(filepath.Join(dir, "Chromium_Web_Custom_MIME_Data_Format.bin"))
	if err != nil {
		t.Fatal(err)
	}
	records, err := note2clip.DecodeWebCustomData(data)
	if err != nil {
		t.Fatalf("DecodeWebCustomData() error: %v", err)
	}
	if len(records) != 1 || records[0].Key != note2clip.DefaultSlackMIMEKey {
		t.Fatalf("records = %+v, want one slack/html record", records)
	}
	if !strings.Contains(records[0].Value, `data-stringify-type="bold"`) {
		t.Errorf("slack/html value missing bold attribute:\n%s", records[0].Value)
	}

	// No staging leftovers after a successful publish.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("staging file %s left behind", e.Name())
		}
	}
}

func TestRunCopy_MarkdownTarget(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	deps, _, _ := testDeps("Title\n\tHeader")

	if err := runCopy([]string{"-t", "markdown", "-o", dir}, deps); err != nil {
		t.Fatalf("runCopy() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "CF_UNICODETEXT.bin"))
	if err != nil {
		t.Fatal(err)
	}

	// UTF-16LE of "# Title\n**Header**\n".
	want := "# Title\n**Header**\n"
	if len(data) != 2*len(want) {
		t.Fatalf("plain text buffer is %d bytes, want %d", len(data), 2*len(want))
	}
	for i, r := range want {
		if data[2*i] != byte(r) || data[2*i+1] != 0 {
			t.Fatalf("byte pair %d = %x %x, want %x 00", i, data[2*i], data[2*i+1], byte(r))
		}
	}

	// Markdown target publishes exactly one format.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("published %d files, want 1", len(entries))
	}
}

func TestRunCopy_ConfigOverrides(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	cfg := "target: slack\nslackMime: org/html\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	outDir := filepath.Join(dir, "out")
	deps, _, _ := testDeps("Title")

	if err := runCopy([]string{"--config", cfgPath, "-o", outDir}, deps); err != nil {
		t.Fatalf("runCopy() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "Chromium_Web_Custom_MIME_Data_Format.bin"))
	if err != nil {
		t.Fatal(err)
	}
	records, err := note2clip.DecodeWebCustomData(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0].Key != "org/html" {
		t.Errorf("records = %+v, want one org/html record", records)
	}
}

func TestRunCopy_UnknownTarget(t *testing.T) {
	t.Parallel()

	deps, _, _ := testDeps("Title")
	err := runCopy([]string{"-t", "pdf", "-o", t.TempDir()}, deps)
	if !errors.Is(err, note2clip.ErrUnknownTarget) {
		t.Errorf("runCopy() error = %v, want %v", err, note2clip.ErrUnknownTarget)
	}
}

func TestRunCopy_MissingConfig(t *testing.T) {
	t.Parallel()

	deps, _, _ := testDeps("Title")
	err := runCopy([]string{"--config", "/nonexistent/config.yaml", "-o", t.TempDir()}, deps)
	if err == nil {
		t.Error("runCopy() with missing explicit config should fail")
	}
}
