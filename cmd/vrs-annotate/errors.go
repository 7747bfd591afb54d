package main

import (
	"errors"

	"github.com/ga4gh/vrs-go/internal/vrserr"
)

// exitCodeFor maps an error returned from a cobra RunE to one of the
// exit codes defined in main.go. Everything but a backend failure or
// an exceeded failure tolerance falls back to ExitUsageError -- CLI
// misuse and bad/unrepresentable input are both caller mistakes.
func exitCodeFor(err error) int {
	var (
		backendErr   *vrserr.BackendUnavailableError
		toleranceErr *vrserr.ToleranceExceededError
	)
	switch {
	case errors.As(err, &toleranceErr):
		return ExitToleranceExceeded
	case errors.As(err, &backendErr):
		return ExitBackendError
	default:
		return ExitUsageError
	}
}
