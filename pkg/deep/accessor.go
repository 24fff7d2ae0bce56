package deep

import (
	"github.com/mesh-intelligence/margins/pkg/types"
)

// UpdateFunc computes a new terminal value from the previous one. Passing an
// UpdateFunc as the value to Set applies it to the current value at the path
// (nil when the path was just created).
type UpdateFunc func(prev any) any

// Result is the outcome of a deep lookup: either a value was found at the
// path, or some link along the way was missing.
type Result struct {
	Value any
	Found bool
}

// Or returns the looked-up value when found, otherwise the default.
// A default of type func() any is invoked lazily and its result returned;
// any other default is returned as a literal.
func (r Result) Or(def any) any {
	if r.Found {
		return r.Value
	}
	if f, ok := def.(func() any); ok {
		return f()
	}
	return def
}

// Match branches on the result. onFound receives the value; onMissing may be
// nil, in which case a missing result yields nil. Either handler's return
// value is passed through.
func (r Result) Match(onFound func(any) any, onMissing func() any) any {
	if r.Found {
		return onFound(r.Value)
	}
	if onMissing != nil {
		return onMissing()
	}
	return nil
}

// IfFound invokes f with the value when found and reports whether it did.
// This is the single-handler form of Match.
func (r Result) IfFound(f func(any)) bool {
	if !r.Found {
		return false
	}
	f(r.Value)
	return true
}

// Lookup walks record one key at a time through the path. The walk
// short-circuits with an empty Result the moment the current node is not a
// record or lacks the current key.
func Lookup(record types.Record, path Path) Result {
	if len(path) == 0 {
		return Result{}
	}
	var current any = record
	for _, key := range path {
		node, ok := types.AsRecord(current)
		if !ok {
			return Result{}
		}
		current, ok = node[key]
		if !ok {
			return Result{}
		}
	}
	return Result{Value: current, Found: true}
}

// Contains reports whether every key of the path resolves in record.
func Contains(record types.Record, path Path) bool {
	return Lookup(record, path).Found
}

// Get returns the value at the path and whether it was found.
func Get(record types.Record, path Path) (any, bool) {
	res := Lookup(record, path)
	return res.Value, res.Found
}

// GetOr returns the value at the path, or the default when the path does not
// resolve. Defaults of type func() any are invoked, mirroring Result.Or.
func GetOr(record types.Record, path Path, def any) any {
	return Lookup(record, path).Or(def)
}

// Set stores value at the path, creating an empty record at any missing
// intermediate key. An intermediate node that exists but is not a record
// fails with ErrNotAnObject; the record is left partially vivified up to
// that point. An UpdateFunc value is applied to the current terminal value
// and its result stored instead.
//
// The terminal node itself is the assignment target, symmetric with Get and
// Contains.
func Set(record types.Record, path Path, value any) error {
	if len(path) == 0 {
		return ErrInvalidPath
	}
	node := record
	for _, key := range path[:len(path)-1] {
		next, ok := node[key]
		if !ok {
			child := types.Record{}
			node[key] = child
			node = child
			continue
		}
		child, ok := types.AsRecord(next)
		if !ok {
			return ErrNotAnObject
		}
		node = child
	}

	last := path[len(path)-1]
	if update, ok := value.(UpdateFunc); ok {
		node[last] = update(node[last])
		return nil
	}
	if update, ok := value.(func(prev any) any); ok {
		node[last] = update(node[last])
		return nil
	}
	node[last] = value
	return nil
}
