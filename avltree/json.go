package avltree

import "encoding/json"

// jsonEntry represents one key/value pair in a tree's JSON encoding.
// A struct-array representation is used, rather than a JSON object
// keyed by K, because K need not satisfy encoding/json's map-key
// constraints (string, integer, or encoding.TextMarshaler) for every
// instantiation this package permits.
type jsonEntry[K, V any] struct {
	Key   K `json:"key"`
	Value V `json:"value"`
}

// MarshalJSON encodes every element in ascending key order as a JSON
// array of {key, value} objects.
func (t *Tree[K, V, S]) MarshalJSON() ([]byte, error) {
	entries := make([]jsonEntry[K, V], 0, t.Len())
	for it := t.Begin(); it.Valid(); it.Next() {
		entries = append(entries, jsonEntry[K, V]{Key: it.Key(), Value: it.Value()})
	}
	return json.Marshal(entries)
}

// UnmarshalJSON replaces the tree's contents with the entries decoded
// from a JSON array of {key, value} objects, in the order they appear.
func (t *Tree[K, V, S]) UnmarshalJSON(data []byte) error {
	var entries []jsonEntry[K, V]
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	t.Clear()
	for _, e := range entries {
		t.Put(e.Key, e.Value)
	}
	return nil
}
