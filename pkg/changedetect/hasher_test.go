package changedetect

import (
	"errors"
	"strings"
	"testing"

	"github.com/lguedesdm/ai-metadata-enricher/pkg/enricher"
)

func mustHash(t *testing.T, asset enricher.Asset) string {
	t.Helper()
	hash, err := ComputeHash(asset)
	if err != nil {
		t.Fatalf("ComputeHash() returned error: %v", err)
	}
	return hash
}

func TestComputeHash_Format(t *testing.T) {
	hash := mustHash(t, testAsset(nil))

	if len(hash) != enricher.FingerprintLength {
		t.Errorf("len(hash) = %d, expected %d", len(hash), enricher.FingerprintLength)
	}
	for _, c := range hash {
		if !strings.ContainsRune("0123456789abcdef", c) {
			t.Errorf("hash contains non-lowercase-hex character %q", c)
		}
	}
}

func TestComputeHash_IsDeterministic(t *testing.T) {
	asset := testAsset(enricher.Asset{"tags": []any{"customer", "sales"}})

	first := mustHash(t, asset)
	for i := 0; i < 5; i++ {
		if got := mustHash(t, asset); got != first {
			t.Fatalf("hash differs across runs: %s vs %s", got, first)
		}
	}
}

func TestComputeHash_OrderInsensitive(t *testing.T) {
	tests := []struct {
		name string
		a    enricher.Asset
		b    enricher.Asset
	}{
		{
			name: "reordered tags",
			a:    enricher.Asset{"tags": []any{"analytics", "customer", "sales"}},
			b:    enricher.Asset{"tags": []any{"sales", "analytics", "customer"}},
		},
		{
			name: "reordered relationships",
			a: enricher.Asset{"relationships": []any{
				map[string]any{"id": "rel.a", "type": "parent"},
				map[string]any{"id": "rel.b", "type": "child"},
			}},
			b: enricher.Asset{"relationships": []any{
				map[string]any{"id": "rel.b", "type": "child"},
				map[string]any{"id": "rel.a", "type": "parent"},
			}},
		},
		{
			name: "reordered columns",
			a: enricher.Asset{"columns": []any{
				map[string]any{"name": "a", "type": "int"},
				map[string]any{"name": "b", "type": "string"},
			}},
			b: enricher.Asset{"columns": []any{
				map[string]any{"name": "b", "type": "string"},
				map[string]any{"name": "a", "type": "int"},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashA := mustHash(t, testAsset(tt.a))
			hashB := mustHash(t, testAsset(tt.b))
			if hashA != hashB {
				t.Errorf("permuted collections changed the hash: %s vs %s", hashA, hashB)
			}
		})
	}
}

func TestComputeHash_VolatilityInsensitive(t *testing.T) {
	base := testAsset(nil)
	baseHash := mustHash(t, base)

	volatileOverrides := []enricher.Asset{
		{"lastUpdated": "2099-12-31T00:00:00Z"},
		{"schemaVersion": "9.9.9"},
		{"auditInfo": map[string]any{"scanner": "v2"}},
		{"scanId": "scan-other"},
		{"ingestionTime": "2099-12-31T00:00:01Z"},
		{"_trace": "internal"},
	}

	for _, override := range volatileOverrides {
		hash := mustHash(t, testAsset(override))
		if hash != baseHash {
			t.Errorf("volatile override %v changed the hash", override)
		}
	}
}

func TestComputeHash_MaterialitySensitive(t *testing.T) {
	base := testAsset(nil)
	baseHash := mustHash(t, base)

	materialOverrides := []enricher.Asset{
		{"id": "test.table.v2"},
		{"description": "changed description"},
		{"businessMeaning": "changed meaning"},
		{"content": "changed content"},
		{"dataType": "string"},
		{"tags": []any{"sales", "customer", "analytics"}},
		{"columns": []any{map[string]any{"name": "c1", "type": "int"}}},
		{"relationships": []any{map[string]any{"id": "rel.x"}}},
	}

	for _, override := range materialOverrides {
		hash := mustHash(t, testAsset(override))
		if hash == baseHash {
			t.Errorf("material override %v did not change the hash", override)
		}
	}
}

func TestComputeHash_DeduplicationAbsorbsCaseVariants(t *testing.T) {
	withDuplicate := mustHash(t, enricher.Asset{"tags": []any{"a", "A", "b"}})
	withoutDuplicate := mustHash(t, enricher.Asset{"tags": []any{"a", "b"}})

	if withDuplicate != withoutDuplicate {
		t.Errorf("case-variant duplicate tag changed the hash: %s vs %s", withDuplicate, withoutDuplicate)
	}
}

func TestComputeHash_Scenario_VolatileAndOrderChangesMatch(t *testing.T) {
	assetA := enricher.Asset{
		"id":           "t1",
		"sourceSystem": "synergy",
		"entityType":   "table",
		"tags":         []any{"b", "a"},
		"lastUpdated":  "2026-01-01T00:00:00Z",
	}
	assetB := enricher.Asset{
		"id":           "t1",
		"sourceSystem": "synergy",
		"entityType":   "table",
		"tags":         []any{"a", "b"},
		"lastUpdated":  "2099-12-31T00:00:00Z",
	}

	if mustHash(t, assetA) != mustHash(t, assetB) {
		t.Error("logically equivalent assets produced different hashes")
	}

	assetB["description"] = "now materially different"
	if mustHash(t, assetA) == mustHash(t, assetB) {
		t.Error("material description change did not change the hash")
	}
}

func TestComputeHash_SerializationFailure(t *testing.T) {
	asset := testAsset(enricher.Asset{"content": func() {}})

	_, err := ComputeHash(asset)
	if err == nil {
		t.Fatal("ComputeHash() = nil error for unserializable value")
	}
	if !errors.Is(err, enricher.ErrSerialization) {
		t.Errorf("ComputeHash() error = %v, expected to match ErrSerialization", err)
	}
}

func TestAreEqual(t *testing.T) {
	a := testAsset(enricher.Asset{"lastUpdated": "2026-01-20T10:00:00Z"})
	b := testAsset(enricher.Asset{"lastUpdated": "2026-01-24T14:00:00Z"})

	equal, err := AreEqual(a, b)
	if err != nil {
		t.Fatalf("AreEqual() returned error: %v", err)
	}
	if !equal {
		t.Error("AreEqual() = false for assets differing only in volatile fields")
	}

	b["description"] = "different"
	equal, err = AreEqual(a, b)
	if err != nil {
		t.Fatalf("AreEqual() returned error: %v", err)
	}
	if equal {
		t.Error("AreEqual() = true for materially different assets")
	}
}

func TestHashComponents_MatchesNormalization(t *testing.T) {
	asset := testAsset(enricher.Asset{
		"tags":        []any{"z", "a"},
		"lastUpdated": "2026-01-24T10:00:00Z",
	})

	components, err := HashComponents(asset)
	if err != nil {
		t.Fatalf("HashComponents() returned error: %v", err)
	}

	if _, ok := components["lastUpdated"]; ok {
		t.Error("HashComponents() retained a volatile field")
	}
	tags := components["tags"].([]string)
	if len(tags) != 2 || tags[0] != "a" || tags[1] != "z" {
		t.Errorf("HashComponents() tags = %v, expected sorted [a z]", tags)
	}

	// The components must serialize to exactly the bytes the hash covers.
	canonical, err := MarshalCanonical(components)
	if err != nil {
		t.Fatalf("MarshalCanonical() returned error: %v", err)
	}
	if len(canonical) == 0 {
		t.Error("canonical serialization is empty")
	}
}

func TestMarshalCanonical(t *testing.T) {
	t.Run("keys sorted and compact", func(t *testing.T) {
		got, err := MarshalCanonical(map[string]any{"b": "2", "a": "1"})
		if err != nil {
			t.Fatalf("MarshalCanonical() returned error: %v", err)
		}
		if string(got) != `{"a":"1","b":"2"}` {
			t.Errorf("MarshalCanonical() = %s", got)
		}
	})

	t.Run("no HTML escaping", func(t *testing.T) {
		got, err := MarshalCanonical(map[string]any{"content": "a<b&c>d"})
		if err != nil {
			t.Fatalf("MarshalCanonical() returned error: %v", err)
		}
		if string(got) != `{"content":"a<b&c>d"}` {
			t.Errorf("MarshalCanonical() escaped content: %s", got)
		}
	})

	t.Run("array order preserved", func(t *testing.T) {
		got, err := MarshalCanonical([]string{"z", "a"})
		if err != nil {
			t.Fatalf("MarshalCanonical() returned error: %v", err)
		}
		if string(got) != `["z","a"]` {
			t.Errorf("MarshalCanonical() reordered array: %s", got)
		}
	})

	t.Run("unsupported type fails", func(t *testing.T) {
		_, err := MarshalCanonical(map[string]any{"f": func() {}})
		if !errors.Is(err, enricher.ErrSerialization) {
			t.Errorf("MarshalCanonical() error = %v, expected ErrSerialization", err)
		}
	})
}
