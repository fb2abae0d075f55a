// Package changedetect provides deterministic change-detection fingerprinting
// for metadata assets.
//
// # Overview
//
// Given an asset record exported from a source system, the package computes a
// stable content fingerprint that is identical for two logically-equivalent
// assets and different whenever any materially significant field changes.
// Downstream components (orchestrators, persistence layers, search indexing)
// compare fingerprints to decide whether an asset must be re-processed,
// without knowing how normalization or hashing works.
//
// The pipeline has two stages, used in strict sequence:
//
//	asset --Normalize--> normalized mapping --canonical JSON + SHA-256--> fingerprint
//
// # Field Contract
//
// Fields fall into two explicitly enumerated classes (see fields.go):
//
//   - Material fields contribute to the fingerprint: id, sourceSystem,
//     entityType, entityName, entityPath, description, businessMeaning,
//     domain, tags, content, relationships, columns, dataType.
//   - Volatile fields never do: lastUpdated, schemaVersion, auditInfo,
//     scanId, ingestionTime, and any field whose name starts with "_".
//
// The contract uses whitelist semantics: unrecognized fields are dropped, not
// rejected. Extending the material set is a versioned contract change
// (ContractVersion), never a runtime decision.
//
// # Equivalence Rules
//
// Normalization makes fingerprints insensitive to irrelevant variation:
//
//  1. Volatile and unrecognized fields are removed.
//  2. Absent and nil fields are omitted (no null placeholders); empty
//     collections are preserved as empty.
//  3. tags are deduplicated case-insensitively (first occurrence wins) and
//     sorted by their case-folded value.
//  4. relationships are deduplicated by "id" (first occurrence wins) and
//     sorted ascending by "id"; columns likewise by "name".
//  5. All other material fields are copied verbatim.
//
// # Determinism
//
// Identical normalized content yields a byte-identical canonical JSON
// serialization (lexicographically sorted object keys, no insignificant
// whitespace, UTF-8, collection order preserved from normalization) and
// therefore always the same SHA-256 digest, on any platform, in any process.
// Fingerprints carry no version tag; callers must invalidate stored
// fingerprints when the field contract changes.
//
// # Errors
//
// Malformed assets fail fast with errors matching the sentinels in
// pkg/enricher: enricher.ErrInvalidInput (wrong shape for a collection
// field), enricher.ErrMissingRequiredField (relationship/column without its
// identity key), enricher.ErrSerialization (value that cannot be canonically
// serialized). There is no transient-failure class: every error is a
// deterministic, reproducible consequence of the input.
//
// # Thread Safety
//
// All functions are pure: no I/O, no shared mutable state, no mutation of
// the input asset. Any number of calls may execute concurrently.
package changedetect
