package main

import (
	"fmt"
	"unicode/utf16"

	note2clip "github.com/alnah/go-note2clip"
	flag "github.com/spf13/pflag"
)

// runInspect decodes a clipboard buffer captured to a file (or piped
// on stdin) and prints its structure. It is the development-time
// counterpart of the encoders: when a consumer silently discards a
// payload, this is how the bytes get checked.
func runInspect(args []string, deps *Dependencies) error {
	flags := flag.NewFlagSet("inspect", flag.ContinueOnError)
	flags.SetOutput(deps.Stderr)

	var cfhtml bool
	flags.BoolVar(&cfhtml, "cfhtml", false, "parse a CF_HTML envelope instead of a custom data container")

	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	raw, err := readSource(flags.Args(), deps)
	if err != nil {
		return err
	}

	if cfhtml {
		return inspectCFHTML([]byte(raw), deps)
	}
	return inspectCustomData([]byte(raw), deps)
}

func inspectCustomData(data []byte, deps *Dependencies) error {
	records, err := note2clip.DecodeWebCustomData(data)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Web Custom MIME Data: %d byte(s), %d record(s)\n", len(data), len(records))
	for i, r := range records {
		units := len(utf16.Encode([]rune(r.Value)))
		fmt.Fprintf(deps.Stdout, "[%d] %s (%d UTF-16 units)\n", i, r.Key, units)
		fmt.Fprintf(deps.Stdout, "    %s\n", r.Value)
	}
	return nil
}

func inspectCFHTML(data []byte, deps *Dependencies) error {
	off, fragment, err := note2clip.ParseCFHTML(data)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "CF_HTML: %d byte(s)\n", len(data))
	fmt.Fprintf(deps.Stdout, "StartHTML:     %d\n", off.StartHTML)
	fmt.Fprintf(deps.Stdout, "EndHTML:       %d\n", off.EndHTML)
	fmt.Fprintf(deps.Stdout, "StartFragment: %d\n", off.StartFragment)
	fmt.Fprintf(deps.Stdout, "EndFragment:   %d\n", off.EndFragment)
	fmt.Fprintf(deps.Stdout, "Fragment (%d bytes):\n%s\n", off.EndFragment-off.StartFragment, fragment)
	return nil
}
