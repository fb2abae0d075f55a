package enricher_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lguedesdm/ai-metadata-enricher/pkg/enricher"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, enricher.ExitSuccess},
		{"general error", errors.New("something went wrong"), enricher.ExitGeneralError},
		{"invalid config", enricher.ErrInvalidConfig, enricher.ExitConfigError},
		{"invalid input", enricher.ErrInvalidInput, enricher.ExitMalformedAsset},
		{"missing required field", enricher.ErrMissingRequiredField, enricher.ExitMalformedAsset},
		{"serialization failure", enricher.ErrSerialization, enricher.ExitMalformedAsset},
		{"output rejected", enricher.ErrOutputRejected, enricher.ExitOutputRejected},
		{"corrupt state", enricher.ErrStateCorrupt, enricher.ExitStateError},
		{"wrapped sentinel", fmt.Errorf("asset file x.json: %w", enricher.ErrInvalidInput), enricher.ExitMalformedAsset},
		{"unknown flag", errors.New("unknown flag --foo"), enricher.ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x'"), enricher.ExitUsageError},
		{"accepts args", errors.New("accepts 1 arg(s), received 0"), enricher.ExitUsageError},
		{"missing argument", errors.New("missing required argument: <asset_file>"), enricher.ExitUsageError},
		{"invalid argument", errors.New("invalid argument \"abc\" for \"--json\""), enricher.ExitUsageError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := enricher.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
