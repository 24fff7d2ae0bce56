package vault

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/margins/pkg/types"
)

// Active serves the configured active note. The CLI host has no editor
// focus, so "current note" is whatever the config points at.
type Active struct {
	vault *Vault
	note  string
}

// ActiveProvider returns an ActiveNoteProvider for the configured note path.
// An empty path means no note is ever active.
func (v *Vault) ActiveProvider(note string) types.ActiveNoteProvider {
	return &Active{vault: v, note: note}
}

// Current resolves the configured active note.
func (a *Active) Current() (*types.Note, error) {
	if a.note == "" {
		return nil, types.ErrNoActiveNote
	}
	n, err := a.vault.Resolve(a.note)
	if err != nil {
		if errors.Is(err, types.ErrNoteNotFound) {
			return nil, fmt.Errorf("active note %s: %w", a.note, types.ErrNoActiveNote)
		}
		return nil, err
	}
	return n, nil
}
