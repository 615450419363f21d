package main

import (
	"context"
	"fmt"

	note2clip "github.com/alnah/go-note2clip"
	flag "github.com/spf13/pflag"
)

// runPreview renders the note's Markdown as a standalone HTML document
// on stdout, for checking a conversion in a browser before pasting.
func runPreview(args []string, deps *Dependencies) error {
	flags := flag.NewFlagSet("preview", flag.ContinueOnError)
	flags.SetOutput(deps.Stderr)

	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	source, err := readSource(flags.Args(), deps)
	if err != nil {
		return err
	}

	markdown := note2clip.RenderMarkdown(note2clip.ParseOutline(source))
	html, err := note2clip.NewPreviewConverter().ToHTML(context.Background(), markdown)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(deps.Stdout, html); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
