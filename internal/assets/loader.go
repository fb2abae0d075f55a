package assets

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lguedesdm/ai-metadata-enricher/pkg/enricher"
)

// ReadAsset loads a single asset record from a JSON file. The file must
// contain exactly one JSON object; anything else is reported as invalid
// input.
func ReadAsset(path string) (enricher.Asset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read asset file %s: %w", path, err)
	}
	asset, err := ParseAsset(data)
	if err != nil {
		return nil, fmt.Errorf("asset file %s: %w", path, err)
	}
	return asset, nil
}

// ParseAsset decodes a raw JSON document into an asset record. Numbers are
// decoded as json.Number so their textual form survives a round trip.
func ParseAsset(data []byte) (enricher.Asset, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: malformed JSON: %v", enricher.ErrInvalidInput, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing content after JSON document", enricher.ErrInvalidInput)
	}

	asset, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: asset document must be a JSON object", enricher.ErrInvalidInput)
	}
	return asset, nil
}

// Discover walks root recursively and returns the paths of all JSON asset
// files in sorted order.
func Discover(root string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("error walking %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".json") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return paths, nil
}
