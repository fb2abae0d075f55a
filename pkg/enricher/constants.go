package enricher

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess        = 0  // Command completed successfully
	ExitGeneralError   = 1  // Unknown or unclassified error
	ExitUsageError     = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic          = 3  // Internal panic (unexpected crash)
	ExitConfigError    = 10 // Invalid configuration or parameters
	ExitMalformedAsset = 11 // Asset failed normalization or serialization
	ExitOutputRejected = 12 // Enrichment output failed contract validation
	ExitStateError     = 13 // Fingerprint state file unreadable or corrupt
)

const (
	// FingerprintLength is the length of a rendered fingerprint:
	// a SHA-256 digest as lowercase hexadecimal.
	FingerprintLength = 64

	// FieldAssetID is the asset field holding the stable entity identifier.
	// Scans key their fingerprint state by this field.
	FieldAssetID = "id"
)
