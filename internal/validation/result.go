package validation

import (
	"fmt"
	"strings"
)

// Result is the validation outcome for a single enrichment output.
// A Result is valid only while both error lists are empty.
type Result struct {
	Valid            bool
	StructuralErrors []string
	SemanticErrors   []string
}

// NewResult returns a valid, empty result.
func NewResult() Result {
	return Result{Valid: true}
}

// AddStructural appends a structural rejection reason and marks the result
// as invalid.
func (r *Result) AddStructural(format string, args ...interface{}) {
	r.Valid = false
	r.StructuralErrors = append(r.StructuralErrors, fmt.Sprintf(format, args...))
}

// AddSemantic appends a semantic rejection reason and marks the result as
// invalid.
func (r *Result) AddSemantic(format string, args ...interface{}) {
	r.Valid = false
	r.SemanticErrors = append(r.SemanticErrors, fmt.Sprintf(format, args...))
}

// Errors returns all rejection reasons, structural first.
func (r *Result) Errors() []string {
	errs := make([]string, 0, len(r.StructuralErrors)+len(r.SemanticErrors))
	errs = append(errs, r.StructuralErrors...)
	errs = append(errs, r.SemanticErrors...)
	return errs
}

// ErrorString returns all rejection reasons joined with semicolons.
// Returns an empty string for a valid result.
func (r *Result) ErrorString() string {
	return strings.Join(r.Errors(), "; ")
}
