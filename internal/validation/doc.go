// Package validation implements the deterministic output contract for
// enrichment results.
//
// # Overview
//
// Enrichment produces a small YAML document describing an asset:
//
//	suggested_description: "Annual sustainability report for 2024 ..."
//	confidence: high
//	used_sources:
//	  - "Document: sustainability-2024.pdf, Page 1"
//	warnings: []
//
// Before such a document is accepted, it passes two validation layers, in
// strict sequence:
//
//  1. Structural: the text must be a single flat YAML mapping with exactly
//     the contract fields, in the contract order, with string or
//     string-sequence values, no comments, no duplicate keys, no nested
//     mappings, and no surrounding prose.
//  2. Semantic: the field values must satisfy the grounding rules:
//     description length bounds, no trivially generic wording, no tooling
//     or provider concepts, no speculative phrasing, a closed confidence
//     vocabulary, and concrete source citations.
//
// Semantic validation runs only when structural validation passes. Both
// layers are pure functions: they never mutate or correct the input, and
// every rejection carries explicit reasons.
//
// # Determinism
//
// Validation is part of the change-detection boundary: a document either
// conforms or it does not, with no heuristics, retries, or model calls.
// The same input always produces the same Result.
package validation
