// Package enricher defines the shared contract for the ai-metadata-enricher
// toolkit: the asset record shape, sentinel errors, semantic exit codes, and
// the pluggable Logger interface.
//
// The package contains no behavior of its own. The change-detection core
// lives in pkg/changedetect; command-line tooling lives under internal/.
package enricher

// Asset is a semi-structured metadata record describing one entity (a table,
// column, dataset, ...) exported from a source system such as Synergy or
// Zipline.
//
// Assets are received by value from upstream exporters and are never owned by
// this module: functions accepting an Asset must not mutate it. Field values
// are whatever encoding/json produces for a JSON document (string, bool,
// json.Number, nil, []any, map[string]any).
type Asset = map[string]any

// ScanResult summarizes the change-detection verdict for a single asset
// during a directory scan.
type ScanResult struct {
	// Path is the asset file that was scanned.
	Path string `json:"path"`

	// AssetID is the asset's "id" field.
	AssetID string `json:"assetId"`

	// Fingerprint is the computed content hash (64 lowercase hex chars).
	Fingerprint string `json:"fingerprint"`

	// Decision is "REPROCESS" or "SKIP".
	Decision string `json:"decision"`
}

// ScanReport is the aggregate outcome of scanning a directory of assets.
type ScanReport struct {
	// ScanID uniquely identifies this scan run. It is volatile by
	// definition and never contributes to any fingerprint.
	ScanID string `json:"scanId"`

	// Results holds one entry per scanned asset, in path order.
	Results []ScanResult `json:"results"`

	// Reprocess counts results with a REPROCESS decision.
	Reprocess int `json:"reprocess"`

	// Skip counts results with a SKIP decision.
	Skip int `json:"skip"`
}
