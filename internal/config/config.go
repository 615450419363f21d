// Package config loads the note2clip CLI configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-note2clip/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrFieldTooLong   = errors.New("field exceeds maximum length")
)

// Field length limits; a config is hand-written, anything longer is a
// mistake.
const (
	MaxTargetLength     = 10   // "markdown", "rich", "slack"
	MaxPathLength       = 4096 // output directory
	MaxMIMEKeyLength    = 128  // "slack/html" and overrides
	MaxFormatNameLength = 128  // registered clipboard format names
)

// Config holds all configuration for the CLI.
type Config struct {
	Target    string        `yaml:"target"`    // default conversion target (empty = slack)
	OutputDir string        `yaml:"outputDir"` // default publish directory (empty = current dir)
	SlackMIME string        `yaml:"slackMime"` // custom data content type (empty = slack/html)
	Formats   FormatsConfig `yaml:"formats"`
}

// FormatsConfig overrides the registered clipboard format identifiers.
type FormatsConfig struct {
	Text   string `yaml:"text"`
	HTML   string `yaml:"html"`
	Custom string `yaml:"custom"`
}

// Load reads and validates a config file. A missing file is an error;
// callers decide whether a config is optional.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field lengths and the target name.
func (c *Config) Validate() error {
	checks := []struct {
		name  string
		value string
		max   int
	}{
		{"target", c.Target, MaxTargetLength},
		{"outputDir", c.OutputDir, MaxPathLength},
		{"slackMime", c.SlackMIME, MaxMIMEKeyLength},
		{"formats.text", c.Formats.Text, MaxFormatNameLength},
		{"formats.html", c.Formats.HTML, MaxFormatNameLength},
		{"formats.custom", c.Formats.Custom, MaxFormatNameLength},
	}

	for _, f := range checks {
		if len(f.value) > f.max {
			return fmt.Errorf("%w: %s is %d chars (max %d)", ErrFieldTooLong, f.name, len(f.value), f.max)
		}
	}

	switch c.Target {
	case "", "markdown", "md", "rich", "richtext", "styled", "slack", "chat":
		return nil
	default:
		return fmt.Errorf("%w: unknown target %q", ErrConfigParse, c.Target)
	}
}
