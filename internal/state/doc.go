// Package state persists the fingerprint of the last processed version of
// each asset, keyed by asset ID.
//
// # Overview
//
// The store is a flat JSON file mapping asset IDs to 64-character hex
// fingerprints. A missing file is a valid empty store, so first runs need no
// setup. A file that exists but cannot be decoded is corrupt state and is
// never silently replaced; the caller decides whether to delete it.
//
// # Thread Safety
//
// Store is not safe for concurrent use. Scans load the store once, update
// it in memory and save it at the end.
package state
