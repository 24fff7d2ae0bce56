package types

// Record is an unordered mapping from string keys to arbitrary values.
// Values may themselves be Records. Records are the shape of every metadata
// view in the system and the subject of deep path access.
type Record map[string]any

// Clone returns a shallow copy of the record. Nested Records are shared,
// not copied; callers that mutate nested values must deep-copy themselves.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Overlay copies every key of src into r, overwriting existing keys.
// Returns r for chaining. Overlay order is the merge precedence: later
// overlays win on key collision.
func (r Record) Overlay(src Record) Record {
	for k, v := range src {
		r[k] = v
	}
	return r
}

// Keys returns the key set of the record in unspecified order.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	return keys
}

// AsRecord converts a value to a Record if it has a record shape.
// Both Record and plain map[string]any are accepted; anything else
// reports false.
func AsRecord(v any) (Record, bool) {
	switch m := v.(type) {
	case Record:
		return m, true
	case map[string]any:
		return Record(m), true
	default:
		return nil, false
	}
}
