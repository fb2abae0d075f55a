package changedetect

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/lguedesdm/ai-metadata-enricher/pkg/enricher"
)

// ComputeHash computes the deterministic content fingerprint of an asset:
// it normalizes the asset (see Normalize), serializes the result as
// canonical JSON, and returns the SHA-256 digest of those bytes as 64
// lowercase hexadecimal characters.
//
// Logically equivalent assets always produce identical fingerprints;
// reordering collections or changing volatile fields never changes the
// result. The asset does not need to be pre-normalized by the caller.
func ComputeHash(asset enricher.Asset) (string, error) {
	normalized, err := Normalize(asset)
	if err != nil {
		return "", err
	}

	canonical, err := MarshalCanonical(normalized)
	if err != nil {
		return "", err
	}

	digest := sha256.Sum256(canonical)
	return hex.EncodeToString(digest[:]), nil
}

// AreEqual reports whether two assets have the same material content by
// comparing their fingerprints.
func AreEqual(a, b enricher.Asset) (bool, error) {
	hashA, err := ComputeHash(a)
	if err != nil {
		return false, err
	}
	hashB, err := ComputeHash(b)
	if err != nil {
		return false, err
	}
	return hashA == hashB, nil
}

// HashComponents returns the normalized form an asset hashes as, for
// debugging and auditing. It uses the same normalization path as
// ComputeHash, so the returned mapping is exactly what the fingerprint
// covers.
func HashComponents(asset enricher.Asset) (enricher.Asset, error) {
	return Normalize(asset)
}
