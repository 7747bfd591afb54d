// Package main provides the vrs-annotate command-line tool.
package main

import (
	"fmt"
	"os"
)

// Exit codes: 0 success, 2 CLI misuse (bad flags/arguments or
// unrepresentable/invalid input), 3 data-proxy unreachable, 4
// per-record failures exceed the configured tolerance.
const (
	ExitSuccess           = 0
	ExitUsageError        = 2
	ExitBackendError      = 3
	ExitToleranceExceeded = 4
)

func main() {
	os.Exit(run())
}

func run() int {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}
