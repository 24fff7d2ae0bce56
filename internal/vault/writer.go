package vault

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/margins/pkg/types"
)

// Update writes a single top-level frontmatter field of the note, rewriting
// the file in place and preserving the body. A note that does not exist yet
// is created (with intermediate directories) holding only the frontmatter
// block — namespace records come into being this way.
func (v *Vault) Update(property string, value any, id string) error {
	fm, body, abs, err := v.loadForWrite(id, true)
	if err != nil {
		return err
	}
	fm[property] = value
	return v.store(abs, fm, body, id, property, "update")
}

// Remove deletes a single top-level frontmatter field of the note. Removing
// a field the note does not carry is a no-op. A missing note yields
// ErrNoteNotFound.
func (v *Vault) Remove(property string, id string) error {
	fm, body, abs, err := v.loadForWrite(id, false)
	if err != nil {
		return err
	}
	if _, ok := fm[property]; !ok {
		return nil
	}
	delete(fm, property)
	return v.store(abs, fm, body, id, property, "remove")
}

// loadForWrite reads the note's frontmatter and body. When create is set, an
// identifier that resolves to nothing falls back to an empty note at the
// default path; otherwise the miss propagates.
func (v *Vault) loadForWrite(id string, create bool) (types.Record, []byte, string, error) {
	abs, rel, err := v.notePath(id)
	if err != nil {
		if !create || !errors.Is(err, types.ErrNoteNotFound) {
			return nil, nil, "", err
		}
		rel = id + "." + NoteExt
		abs, err = v.abs(rel)
		if err != nil {
			return nil, nil, "", err
		}
		return types.Record{}, nil, abs, nil
	}

	content, err := os.ReadFile(abs)
	if err != nil {
		return nil, nil, "", fmt.Errorf("read %s: %w", rel, err)
	}
	fm, body, err := parseNote(content)
	if err != nil {
		return nil, nil, "", fmt.Errorf("parse %s: %w", rel, err)
	}
	return fm, body, abs, nil
}

func (v *Vault) store(abs string, fm types.Record, body []byte, id, property, op string) error {
	content, err := renderNote(fm, body)
	if err != nil {
		return fmt.Errorf("render %s: %w", id, err)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return fmt.Errorf("create note dir: %w", err)
	}
	if err := os.WriteFile(abs, content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", id, err)
	}
	v.log.Debug().Str("note", id).Str("property", property).Str("op", op).Msg("frontmatter rewritten")
	return nil
}
