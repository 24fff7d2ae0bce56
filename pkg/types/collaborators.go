package types

import "time"

// Storage resolves note identifiers and reads frontmatter. It is the narrow
// view of the vault the metadata core depends on.
type Storage interface {
	// Resolve returns the Note for the given identifier, or nil and
	// ErrNoteNotFound if no note exists. Identifiers are accepted with or
	// without extension.
	Resolve(id string) (*Note, error)

	// Frontmatter returns the note's frontmatter record. A note without a
	// frontmatter block yields an empty (non-nil) Record.
	Frontmatter(id string) (Record, error)
}

// PageProvider serves the combined metadata view of a note: frontmatter
// keys, inline computed fields, and the reserved "file" subrecord, merged
// into a single flat Record.
type PageProvider interface {
	Page(id string) (Record, error)
}

// FieldWriter writes a single top-level frontmatter field of a note.
type FieldWriter interface {
	Update(property string, value any, id string) error
}

// FieldRemover is an optional capability of a FieldWriter. Writers that can
// delete fields implement it; Clear on a writer without it fails with
// ErrUnimplemented.
type FieldRemover interface {
	Remove(property string, id string) error
}

// ActiveNoteProvider supplies the note the host currently has in focus.
// Implementations return ErrNoActiveNote when nothing is active.
type ActiveNoteProvider interface {
	Current() (*Note, error)
}

// Journal op kinds.
const (
	OpUpdate = "update"
	OpRemove = "remove"
)

// Op describes one field write performed through the patch collaborator.
type Op struct {
	OpID     string    // UUID v7, generated when the op is journaled
	Kind     string    // OpUpdate or OpRemove
	NoteID   string    // canonical target identifier
	Property string    // top-level field name
	At       time.Time // journaling time
}

// Journal records field writes for after-the-fact inspection. Journaling is
// best-effort observability; implementations must not fail the write.
type Journal interface {
	Append(op Op)
}
