package validation

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Output is the parsed enrichment output handed from the structural layer to
// the semantic layer. Fields absent from the document stay zero-valued.
type Output struct {
	SuggestedDescription string
	Confidence           string
	UsedSources          []string
	Warnings             []string
}

// expectedFieldOrder fixes both the permitted field set and the order fields
// must appear in. warnings is the only optional field.
var expectedFieldOrder = []string{
	"suggested_description",
	"confidence",
	"used_sources",
	"warnings",
}

var requiredFields = []string{
	"suggested_description",
	"confidence",
	"used_sources",
}

func isContractField(name string) bool {
	for _, field := range expectedFieldOrder {
		if field == name {
			return true
		}
	}
	return false
}

// ValidateStructural checks that the output text is exactly one flat YAML
// mapping conforming to the output contract: only defined fields, all
// mandatory fields, string or string-sequence values, contract field order,
// no comments, no duplicate keys, no nested structure.
//
// The parsed Output is returned for the semantic layer; it is meaningful
// only when the Result is valid.
func ValidateStructural(text string) (Output, Result) {
	result := NewResult()
	var out Output

	var root yaml.Node
	if err := yaml.Unmarshal([]byte(text), &root); err != nil {
		result.AddStructural("output is not valid YAML: %v", err)
		return out, result
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		result.AddStructural("output is empty")
		return out, result
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		result.AddStructural("output must be a single flat YAML mapping")
		return out, result
	}
	if hasComment(&root) {
		result.AddStructural("comments are not allowed in output")
	}

	seen := make(map[string]bool, len(expectedFieldOrder))
	var seenOrder []string
	for i := 0; i+1 < len(doc.Content); i += 2 {
		keyNode, valueNode := doc.Content[i], doc.Content[i+1]

		if keyNode.Kind != yaml.ScalarNode {
			result.AddStructural("mapping keys must be plain strings (line %d)", keyNode.Line)
			continue
		}
		key := keyNode.Value

		if seen[key] {
			result.AddStructural("duplicate key %q", key)
			continue
		}
		seen[key] = true

		if !isContractField(key) {
			result.AddStructural("unknown field %q not permitted by contract", key)
			continue
		}
		seenOrder = append(seenOrder, key)

		switch key {
		case "suggested_description":
			out.SuggestedDescription = scalarString(valueNode, key, &result)
		case "confidence":
			out.Confidence = scalarString(valueNode, key, &result)
		case "used_sources":
			out.UsedSources = stringSequence(valueNode, key, true, &result)
			if out.UsedSources != nil && len(out.UsedSources) == 0 {
				result.AddStructural("field %q must contain at least one item", key)
			}
		case "warnings":
			out.Warnings = stringSequence(valueNode, key, false, &result)
		}
	}

	for _, field := range requiredFields {
		if !seen[field] {
			result.AddStructural("missing required field %q", field)
		}
	}

	expected := make([]string, 0, len(expectedFieldOrder))
	for _, field := range expectedFieldOrder {
		if seen[field] {
			expected = append(expected, field)
		}
	}
	if !equalOrder(seenOrder, expected) {
		result.AddStructural("field order must be: %s", strings.Join(expectedFieldOrder, ", "))
	}

	return out, result
}

// scalarString extracts a plain string value, recording a structural error
// for any other shape (numbers, nulls, sequences, nested mappings).
func scalarString(node *yaml.Node, field string, result *Result) string {
	if node.Kind == yaml.MappingNode {
		result.AddStructural("field %q must not be a nested mapping", field)
		return ""
	}
	if node.Kind != yaml.ScalarNode || node.Tag != "!!str" {
		result.AddStructural("field %q must be a string", field)
		return ""
	}
	return node.Value
}

// stringSequence extracts a flat sequence of strings. With requireNonEmpty,
// each item must also be non-blank.
func stringSequence(node *yaml.Node, field string, requireNonEmpty bool, result *Result) []string {
	if node.Kind != yaml.SequenceNode {
		result.AddStructural("field %q must be an array", field)
		return nil
	}

	items := make([]string, 0, len(node.Content))
	for i, item := range node.Content {
		if item.Kind != yaml.ScalarNode || item.Tag != "!!str" {
			result.AddStructural("%s[%d] must be a string", field, i)
			continue
		}
		if requireNonEmpty && strings.TrimSpace(item.Value) == "" {
			result.AddStructural("%s[%d] must be a non-empty string", field, i)
			continue
		}
		items = append(items, item.Value)
	}
	return items
}

// hasComment reports whether any node in the tree carries a YAML comment.
func hasComment(node *yaml.Node) bool {
	if node.HeadComment != "" || node.LineComment != "" || node.FootComment != "" {
		return true
	}
	for _, child := range node.Content {
		if hasComment(child) {
			return true
		}
	}
	return false
}

func equalOrder(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
