package deep

import (
	"errors"
	"strings"
)

// Path addressing errors.
var (
	ErrInvalidPath = errors.New("invalid path expression")
	ErrNotAnObject = errors.New("intermediate path segment is not a record")
)

// Path is an ordered sequence of string keys addressing a location inside a
// nested record. A valid Path holds at least one non-empty key.
type Path []string

// ParsePath resolves a dot-joined path expression into a Path.
// Returns ErrInvalidPath if the expression is empty or contains an empty
// segment ("a..b", ".a", "a.").
func ParsePath(expr string) (Path, error) {
	if expr == "" {
		return nil, ErrInvalidPath
	}
	segments := strings.Split(expr, ".")
	for _, s := range segments {
		if s == "" {
			return nil, ErrInvalidPath
		}
	}
	return Path(segments), nil
}

// NewPath builds a Path from already-segmented keys. The keys are copied so
// later mutation of the argument slice cannot alias the Path.
// Returns ErrInvalidPath if no keys are given or any key is empty.
func NewPath(keys ...string) (Path, error) {
	if len(keys) == 0 {
		return nil, ErrInvalidPath
	}
	out := make(Path, len(keys))
	for i, k := range keys {
		if k == "" {
			return nil, ErrInvalidPath
		}
		out[i] = k
	}
	return out, nil
}

// String renders the path in its dot-joined form.
func (p Path) String() string {
	return strings.Join(p, ".")
}
