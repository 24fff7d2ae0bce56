package types

import (
	"strings"
	"time"
)

// Note is a handle to a storable entity in the vault: a single file with
// frontmatter and a body. Path is vault-relative and includes the extension.
type Note struct {
	Path    string    // vault-relative path, e.g. "projects/roadmap.md"
	Ext     string    // extension without the dot, e.g. "md"
	Name    string    // base name without extension
	Size    int64     // file size in bytes
	ModTime time.Time // last modification time
}

// ID returns the canonical identifier for the note: its path with the
// trailing extension stripped. A note without an extension is identified
// by its path unchanged.
func (n *Note) ID() string {
	if n == nil {
		return ""
	}
	if n.Ext != "" && strings.HasSuffix(n.Path, "."+n.Ext) {
		return strings.TrimSuffix(n.Path, "."+n.Ext)
	}
	return n.Path
}

// FileRecord returns the reserved file-metadata subrecord served under the
// "file" key of a combined page.
func (n *Note) FileRecord() Record {
	return Record{
		"name":  n.Name,
		"path":  n.Path,
		"ext":   n.Ext,
		"size":  n.Size,
		"mtime": n.ModTime,
	}
}
