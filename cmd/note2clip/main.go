package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	deps := DefaultDeps()
	if err := run(os.Args[1:], deps); err != nil {
		fmt.Fprintln(deps.Stderr, "note2clip:", err)
		os.Exit(exitCodeFor(err))
	}
}
