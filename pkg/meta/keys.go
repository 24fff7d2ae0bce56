package meta

import (
	"path"

	"github.com/mesh-intelligence/margins/pkg/types"
)

// Namespace selects one of the two configured identifier roots.
type Namespace int

const (
	// Prototypes is the namespace for prototype records.
	Prototypes Namespace = iota
	// Values is the namespace for value records.
	Values
)

// Redirect retargets a write or clear operation into a namespace. The zero
// value requests no redirect. Path optionally overrides the sub-path when no
// explicit note is given.
type Redirect struct {
	On   bool
	Path string
}

// RedirectTo requests a redirect with an explicit sub-path.
func RedirectTo(sub string) Redirect {
	return Redirect{On: true, Path: sub}
}

// Keys derives canonical and namespaced note identifiers from the configured
// namespace roots.
type Keys struct {
	PrototypesRoot string
	ValuesRoot     string
}

// NewKeys builds a Keys resolver from config, applying default roots.
func NewKeys(cfg types.Config) Keys {
	cfg = cfg.WithDefaults()
	return Keys{
		PrototypesRoot: cfg.PrototypesRoot,
		ValuesRoot:     cfg.ValuesRoot,
	}
}

// Namespaced prefixes sub with the configured root for the namespace.
func (k Keys) Namespaced(ns Namespace, sub string) string {
	root := k.PrototypesRoot
	if ns == Values {
		root = k.ValuesRoot
	}
	return path.Join(root, sub)
}

// Target resolves the identifier a write operation addresses.
//
// Requesting both redirects fails with ErrConflictingTarget. With a values
// redirect the target is the values-namespace path of: the explicit id when
// given, else the redirect's own path when set, else the current note's id.
// The prototype redirect is symmetric. Without a redirect the target is the
// explicit id, falling back to the current note's id.
//
// current is consulted only when needed; it supplies the active note's id
// and may fail with ErrNoActiveNote.
func (k Keys) Target(explicitID string, values, prototype Redirect, current func() (string, error)) (string, error) {
	if values.On && prototype.On {
		return "", types.ErrConflictingTarget
	}

	if values.On || prototype.On {
		ns, redirect := Values, values
		if prototype.On {
			ns, redirect = Prototypes, prototype
		}
		sub := explicitID
		if sub == "" {
			sub = redirect.Path
		}
		if sub == "" {
			id, err := current()
			if err != nil {
				return "", err
			}
			sub = id
		}
		return k.Namespaced(ns, sub), nil
	}

	if explicitID != "" {
		return explicitID, nil
	}
	return current()
}
