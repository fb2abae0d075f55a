package changedetect

import (
	"sort"
	"strings"

	"github.com/lguedesdm/ai-metadata-enricher/pkg/enricher"
)

// Normalize reduces an asset to its canonical, comparison-ready form: a
// mapping containing only material fields that were present and non-nil in
// the input, with collections deduplicated and deterministically sorted.
//
// Rules, per field:
//
//   - tags: must be a sequence of strings. Deduplicated case-insensitively
//     (first occurrence wins, original casing preserved) and sorted by the
//     case-folded value.
//   - relationships: must be a sequence of mappings, each with a string "id".
//     Deduplicated by id (first occurrence wins) and sorted ascending by id.
//   - columns: same as relationships, keyed by "name".
//   - every other material field: copied verbatim.
//
// Absent and nil fields are omitted entirely. Empty collections are
// preserved as empty. Volatile and unrecognized fields are dropped without
// error (whitelist semantics).
//
// Normalize never mutates the asset. Relationship and column entries in the
// result share storage with the input; callers must not modify them.
func Normalize(asset enricher.Asset) (enricher.Asset, error) {
	normalized := make(enricher.Asset, len(materialFieldOrder))

	for _, field := range materialFieldOrder {
		value, ok := asset[field]
		if !ok || value == nil {
			continue
		}

		switch field {
		case "tags":
			tags, err := normalizeTags(value)
			if err != nil {
				return nil, err
			}
			normalized[field] = tags
		case "relationships":
			entries, err := normalizeEntries(value, field, "id")
			if err != nil {
				return nil, err
			}
			normalized[field] = entries
		case "columns":
			entries, err := normalizeEntries(value, field, "name")
			if err != nil {
				return nil, err
			}
			normalized[field] = entries
		default:
			normalized[field] = value
		}
	}

	return normalized, nil
}

// normalizeTags deduplicates and sorts a tag collection. Two tags differing
// only by case are duplicates; the first-seen representative survives with
// its original casing.
func normalizeTags(value any) ([]string, error) {
	var raw []string
	switch v := value.(type) {
	case []string:
		raw = v
	case []any:
		raw = make([]string, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, invalidField("tags", i, "tag must be a string, got %T", item)
			}
			raw[i] = s
		}
	default:
		return nil, invalidField("tags", -1, "must be a sequence of strings, got %T", value)
	}

	seen := make(map[string]bool, len(raw))
	tags := make([]string, 0, len(raw))
	for _, tag := range raw {
		folded := strings.ToLower(tag)
		if seen[folded] {
			continue
		}
		seen[folded] = true
		tags = append(tags, tag)
	}

	// Folded keys are unique after deduplication, so this order is total.
	sort.Slice(tags, func(i, j int) bool {
		return strings.ToLower(tags[i]) < strings.ToLower(tags[j])
	})
	return tags, nil
}

// normalizeEntries deduplicates and sorts a collection of mappings by its
// identity key. When two entries share a key but differ elsewhere, the first
// occurrence wins; later duplicates are dropped entirely.
func normalizeEntries(value any, field, key string) ([]map[string]any, error) {
	items, ok := sequenceItems(value)
	if !ok {
		return nil, invalidField(field, -1, "must be a sequence of mappings, got %T", value)
	}

	seen := make(map[string]bool, len(items))
	entries := make([]map[string]any, 0, len(items))
	for i, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			return nil, invalidField(field, i, "entry must be a mapping, got %T", item)
		}

		keyValue, ok := entry[key]
		if !ok || keyValue == nil {
			return nil, missingKey(field, i, key)
		}
		id, ok := keyValue.(string)
		if !ok {
			return nil, invalidField(field, i, "%q must be a string, got %T", key, keyValue)
		}

		if seen[id] {
			continue
		}
		seen[id] = true
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, _ := entries[i][key].(string)
		b, _ := entries[j][key].(string)
		return a < b
	})
	return entries, nil
}

// sequenceItems widens the supported slice shapes for record collections.
// JSON decoding yields []any; hand-built assets may use []map[string]any.
func sequenceItems(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case []map[string]any:
		items := make([]any, len(v))
		for i := range v {
			items[i] = v[i]
		}
		return items, true
	}
	return nil, false
}
