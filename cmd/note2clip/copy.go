package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	note2clip "github.com/alnah/go-note2clip"
	"github.com/alnah/go-note2clip/internal/config"
	flag "github.com/spf13/pflag"
)

// copyFlags holds flags for the copy command.
type copyFlags struct {
	target     string
	outputDir  string
	configPath string
	verbose    bool
}

// runCopy converts the note and publishes all formats for the target.
func runCopy(args []string, deps *Dependencies) error {
	flags := flag.NewFlagSet("copy", flag.ContinueOnError)
	flags.SetOutput(deps.Stderr)

	var cf copyFlags
	flags.StringVarP(&cf.target, "target", "t", "", "conversion target: markdown, rich, or slack")
	flags.StringVarP(&cf.outputDir, "output", "o", "", "directory the publisher writes format buffers to")
	flags.StringVar(&cf.configPath, "config", "", "path to YAML config file")
	flags.BoolVarP(&cf.verbose, "verbose", "v", false, "enable debug logging")

	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	log := newLogger(deps.Stderr, cf.verbose)

	cfg, err := loadConfig(cf.configPath)
	if err != nil {
		return err
	}

	target, err := resolveTarget(cf.target, cfg)
	if err != nil {
		return err
	}

	source, err := readSource(flags.Args(), deps)
	if err != nil {
		return err
	}

	outputDir := cf.outputDir
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}
	if outputDir == "" {
		outputDir = "."
	}

	opts := []note2clip.Option{
		note2clip.WithPublisher(&dirPublisher{dir: outputDir, log: log}),
	}
	if cfg.SlackMIME != "" {
		opts = append(opts, note2clip.WithSlackMIMEKey(cfg.SlackMIME))
	}
	if cfg.Formats != (config.FormatsConfig{}) {
		opts = append(opts, note2clip.WithFormatNames(cfg.Formats.Text, cfg.Formats.HTML, cfg.Formats.Custom))
	}

	log.Debug().
		Str("target", string(target)).
		Str("outputDir", outputDir).
		Int("sourceBytes", len(source)).
		Msg("converting note")

	svc := note2clip.New(opts...)
	if err := svc.Copy(context.Background(), target, source); err != nil {
		return err
	}

	log.Info().Str("target", string(target)).Msg("payload published")
	return nil
}

// loadConfig loads the explicit config path, or the default location
// if one exists there. A missing default config is not an error.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return &config.Config{}, nil
	}

	cfg, err := config.Load(filepath.Join(dir, "note2clip", "config.yaml"))
	if errors.Is(err, config.ErrConfigNotFound) {
		return &config.Config{}, nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveTarget applies flag > config > default precedence.
func resolveTarget(flagValue string, cfg *config.Config) (note2clip.Target, error) {
	name := flagValue
	if name == "" {
		name = cfg.Target
	}
	if name == "" {
		name = "slack"
	}
	return note2clip.ParseTarget(name)
}
