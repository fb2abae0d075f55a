package changedetect

// Decision is the verdict of comparing an asset's current fingerprint
// against its previously recorded state.
type Decision string

const (
	// DecisionReprocess means the asset is new or has materially changed.
	DecisionReprocess Decision = "REPROCESS"

	// DecisionSkip means the asset is unchanged.
	DecisionSkip Decision = "SKIP"
)

// Decide compares a freshly computed fingerprint against a previously
// stored state and returns the reprocess-or-skip verdict.
//
// The previous state may come in several shapes, depending on which layer
// persisted it:
//
//   - nil: no prior state, the asset is new
//   - string: the previous fingerprint itself
//   - map[string]any: a state record carrying the previous fingerprint
//     under "hash" or, failing that, "previousHash"
//
// Any missing, empty, or unrecognizable previous fingerprint yields
// DecisionReprocess: when in doubt, reprocess. Decide performs no I/O and
// has no side effects.
func Decide(currentHash string, previous any) Decision {
	var previousHash string

	switch prev := previous.(type) {
	case nil:
		return DecisionReprocess
	case string:
		previousHash = prev
	case map[string]any:
		previousHash = stateHash(prev)
	default:
		return DecisionReprocess
	}

	if previousHash == "" {
		return DecisionReprocess
	}
	if previousHash == currentHash {
		return DecisionSkip
	}
	return DecisionReprocess
}

// stateHash extracts the previous fingerprint from a state record,
// ignoring non-string and empty values.
func stateHash(state map[string]any) string {
	if h, ok := state["hash"].(string); ok && h != "" {
		return h
	}
	if h, ok := state["previousHash"].(string); ok && h != "" {
		return h
	}
	return ""
}
