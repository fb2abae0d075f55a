package enricher

// Logger provides a pluggable logging interface for enricher tooling.
// Implementations must be safe for concurrent use by multiple goroutines.
//
// The change-detection core itself never logs; logging happens in the
// command layer around it.
type Logger interface {
	// Verbose logs detailed diagnostic information.
	// Only logged when verbose mode is enabled.
	Verbose(format string, args ...interface{})

	// Info logs informational messages about normal operations.
	// Always logged regardless of verbose mode.
	Info(format string, args ...interface{})

	// Error logs error messages.
	// Always logged regardless of verbose mode.
	Error(format string, args ...interface{})
}
