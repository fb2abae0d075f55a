// Package assets loads metadata asset records from JSON files and discovers
// asset files under source directories.
//
// # Overview
//
// An asset file holds exactly one JSON object: the raw record as exported by
// a source-system scanner. Loading preserves the document as-is; numbers are
// kept in their textual form (json.Number) so that fingerprinting is not
// affected by float formatting. Field filtering and collection normalization
// happen later, in the change-detection layer.
//
// # Discovery
//
// Discover walks a directory tree and returns every *.json file in sorted
// path order, so scan reports are stable across runs and platforms.
package assets
