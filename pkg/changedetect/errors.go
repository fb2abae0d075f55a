package changedetect

import (
	"fmt"

	"github.com/lguedesdm/ai-metadata-enricher/pkg/enricher"
)

// FieldError describes a deterministic validation failure for a single asset
// field. It wraps one of the enricher sentinel errors so callers can classify
// failures with errors.Is while still seeing which field (and, for
// collections, which element) was malformed.
type FieldError struct {
	// Field is the asset field that failed ("tags", "columns", ...).
	Field string

	// Index is the element index within a collection, or -1 when the
	// failure concerns the field as a whole.
	Index int

	// Message is the human-readable reason.
	Message string

	// Err is the sentinel classification (enricher.ErrInvalidInput or
	// enricher.ErrMissingRequiredField).
	Err error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s[%d]: %s", e.Field, e.Index, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap returns the sentinel classification for errors.Is/As support.
func (e *FieldError) Unwrap() error {
	return e.Err
}

func invalidField(field string, index int, format string, args ...interface{}) *FieldError {
	return &FieldError{
		Field:   field,
		Index:   index,
		Message: fmt.Sprintf(format, args...),
		Err:     enricher.ErrInvalidInput,
	}
}

func missingKey(field string, index int, key string) *FieldError {
	return &FieldError{
		Field:   field,
		Index:   index,
		Message: fmt.Sprintf("entry lacks required %q field", key),
		Err:     enricher.ErrMissingRequiredField,
	}
}
