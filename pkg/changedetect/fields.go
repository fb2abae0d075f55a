package changedetect

import (
	"sort"
	"strings"
)

// ContractVersion identifies a revision of the material/volatile field
// contract. Fingerprints are comparable only within one contract version;
// the digest itself carries no version tag, so callers tracking stored
// fingerprints must record the version externally and invalidate on change.
type ContractVersion string

const (
	// V1 is the initial field contract.
	V1 ContractVersion = "1"

	// Latest is the contract version this package implements.
	Latest = V1
)

// materialFieldOrder lists the material fields in their documented contract
// order. It is the single source of truth: the lookup sets below and the
// Normalizer both derive from it, so the contract cannot drift between the
// introspection API and the normalization code.
var materialFieldOrder = []string{
	"id",
	"sourceSystem",
	"entityType",
	"entityName",
	"entityPath",
	"description",
	"businessMeaning",
	"domain",
	"tags",
	"content",
	"relationships",
	"columns",
	"dataType",
}

// volatileFieldNames enumerates fields explicitly excluded from
// fingerprinting. Underscore-prefixed fields are volatile as well; see
// IsVolatileField.
var volatileFieldNames = []string{
	"lastUpdated",
	"schemaVersion",
	"auditInfo",
	"scanId",
	"ingestionTime",
}

var (
	materialFieldSet = toSet(materialFieldOrder)
	volatileFieldSet = toSet(volatileFieldNames)
)

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}

// MaterialFields returns the names of all fields that contribute to the
// fingerprint, sorted alphabetically. The returned slice is a copy.
func MaterialFields() []string {
	fields := make([]string, len(materialFieldOrder))
	copy(fields, materialFieldOrder)
	sort.Strings(fields)
	return fields
}

// VolatileFields returns the names of the explicitly excluded fields, sorted
// alphabetically. Underscore-prefixed fields are volatile by rule and are
// not enumerable here. The returned slice is a copy.
func VolatileFields() []string {
	fields := make([]string, len(volatileFieldNames))
	copy(fields, volatileFieldNames)
	sort.Strings(fields)
	return fields
}

// IsMaterialField reports whether the named field contributes to the
// fingerprint.
func IsMaterialField(name string) bool {
	return materialFieldSet[name]
}

// IsVolatileField reports whether the named field is excluded from
// fingerprinting: either one of the enumerated volatile fields or any field
// whose name starts with an underscore.
func IsVolatileField(name string) bool {
	return volatileFieldSet[name] || strings.HasPrefix(name, "_")
}
