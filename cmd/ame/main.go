package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/lguedesdm/ai-metadata-enricher/internal/cli"
	"github.com/lguedesdm/ai-metadata-enricher/pkg/enricher"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(enricher.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(enricher.ExitCodeForError(err))
	}
}
