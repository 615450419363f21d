package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage          = errors.New("usage: note2clip <copy|inspect|preview> [flags] [file]")
	ErrUnknownCommand = errors.New("unknown command")
	ErrReadInput      = errors.New("failed to read input")
	ErrWriteOutput    = errors.New("failed to write output")
)

const usageText = `note2clip converts tab-indented notes into multi-format clipboard payloads.

Usage:
  note2clip copy    [-t markdown|rich|slack] [-o dir] [--config file] [-v] [file]
  note2clip inspect [--cfhtml] [file]
  note2clip preview [file]
  note2clip version

Commands:
  copy      Convert a note and publish every clipboard format for the target.
  inspect   Decode a Web Custom MIME Data container (or, with --cfhtml, a
            CF_HTML envelope) captured from the clipboard.
  preview   Render the note's Markdown as a standalone HTML document on stdout.

With no file argument, commands read the note from stdin.
`

// run dispatches a subcommand. It returns an error the caller maps to
// an exit code; all user-facing output goes through deps.
func run(args []string, deps *Dependencies) error {
	if len(args) == 0 {
		return ErrUsage
	}

	switch args[0] {
	case "copy":
		return runCopy(args[1:], deps)
	case "inspect":
		return runInspect(args[1:], deps)
	case "preview":
		return runPreview(args[1:], deps)
	case "help", "-h", "--help":
		fmt.Fprint(deps.Stdout, usageText)
		return nil
	case "version", "--version":
		fmt.Fprintln(deps.Stdout, Version)
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}
}

// readSource returns the note text from the positional file argument,
// or from stdin when no file is given (or the file is "-").
func readSource(positional []string, deps *Dependencies) (string, error) {
	if len(positional) > 1 {
		return "", fmt.Errorf("%w: too many arguments", ErrUsage)
	}

	if len(positional) == 0 || positional[0] == "-" {
		data, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return "", fmt.Errorf("%w: stdin: %v", ErrReadInput, err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(positional[0])
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	return string(data), nil
}

// sanitizeFormatName turns a clipboard format identifier into a file
// name the dir publisher can use.
func sanitizeFormatName(name string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-', r == '.':
			return r
		default:
			return '_'
		}
	}, name)
	return mapped + ".bin"
}
