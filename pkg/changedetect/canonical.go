package changedetect

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/lguedesdm/ai-metadata-enricher/pkg/enricher"
)

// MarshalCanonical renders a value as canonical JSON: object keys in
// lexicographic order, no insignificant whitespace, UTF-8, no HTML escaping.
// Array order is emitted exactly as given, so collections sorted during
// normalization stay in their canonical order.
//
// Values that cannot be represented in JSON (functions, channels, NaN, ...)
// fail with an error matching enricher.ErrSerialization.
func MarshalCanonical(v any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return nil, fmt.Errorf("%w: %v", enricher.ErrSerialization, err)
	}
	// Encode appends a newline, which is insignificant whitespace here.
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
