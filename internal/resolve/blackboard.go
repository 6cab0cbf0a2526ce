package resolve

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// IntermediateResults is the per-chain keyed blackboard shared by
// reference across every resolver pushed from the same resolution chain
// (spec §3/§9). It is backed by an order-preserving map so that Keys()
// and test assertions iterate deterministically
// regardless of Go map ordering, which matters once several windows
// (Duel rounds, per-target Barbarian Invasion sweeps) write keys in the
// same chain.
type IntermediateResults struct {
	m *orderedmap.OrderedMap[string, any]
}

// NewIntermediateResults creates an empty blackboard.
func NewIntermediateResults() *IntermediateResults {
	return &IntermediateResults{m: orderedmap.New[string, any]()}
}

// Set stores a value under key, overwriting any existing value.
func (ir *IntermediateResults) Set(key string, value any) {
	ir.m.Set(key, value)
}

// Get retrieves the value under key.
func (ir *IntermediateResults) Get(key string) (any, bool) {
	return ir.m.Get(key)
}

// MustGet retrieves the value under key, panicking with an InvalidState
// style message if it is absent — used by resolvers that rely on an
// earlier resolver in the same chain having written the key.
func (ir *IntermediateResults) MustGet(key string) any {
	v, ok := ir.m.Get(key)
	if !ok {
		panic("resolve: intermediate-results missing required key " + key)
	}
	return v
}

// Delete removes key, if present.
func (ir *IntermediateResults) Delete(key string) {
	ir.m.Delete(key)
}

// Has reports whether key is present.
func (ir *IntermediateResults) Has(key string) bool {
	_, ok := ir.m.Get(key)
	return ok
}

// Keys returns all keys in insertion order (useful for tests and
// diagnostics).
func (ir *IntermediateResults) Keys() []string {
	keys := make([]string, 0, ir.m.Len())
	for pair := ir.m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// GetInt is a typed convenience accessor returning 0 when absent or of
// the wrong type.
func (ir *IntermediateResults) GetInt(key string) int {
	v, ok := ir.Get(key)
	if !ok {
		return 0
	}
	n, _ := v.(int)
	return n
}

// GetBool is a typed convenience accessor returning false when absent or
// of the wrong type.
func (ir *IntermediateResults) GetBool(key string) bool {
	v, ok := ir.Get(key)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}
