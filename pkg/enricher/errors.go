package enricher

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := changedetect.ComputeHash(asset)
//	if errors.Is(err, enricher.ErrMissingRequiredField) {
//	    // Reject the asset before hashing; do not skip or default the hash.
//	}
var (
	// ErrInvalidInput indicates an asset field has the wrong shape,
	// e.g. a collection-typed field that is not actually a sequence.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingRequiredField indicates a collection entry lacks its
	// identity key (a relationship without "id", a column without "name").
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrSerialization indicates a value could not be rendered as
	// canonical JSON.
	ErrSerialization = errors.New("canonical serialization failed")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrOutputRejected indicates enrichment output failed the output
	// contract (structural or semantic validation).
	ErrOutputRejected = errors.New("output rejected by contract validation")

	// ErrStateCorrupt indicates the fingerprint state file exists but
	// cannot be parsed.
	ErrStateCorrupt = errors.New("state file corrupt")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrMissingRequiredField),
		errors.Is(err, ErrSerialization):
		return ExitMalformedAsset
	case errors.Is(err, ErrOutputRejected):
		return ExitOutputRejected
	case errors.Is(err, ErrStateCorrupt):
		return ExitStateError
	}

	if isUsageError(err) {
		return ExitUsageError
	}

	return ExitGeneralError
}

// isUsageError recognizes the error strings cobra produces for misuse of the
// command line (bad flags, wrong argument counts). These carry no sentinel,
// so string matching is the only handle.
func isUsageError(err error) bool {
	msg := err.Error()
	for _, pattern := range []string{
		"unknown flag",
		"unknown shorthand flag",
		"unknown command",
		"invalid argument",
		"accepts 1 arg(s)",
		"accepts 2 arg(s)",
		"missing required argument",
		"requires exactly",
		"required flag",
	} {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}
