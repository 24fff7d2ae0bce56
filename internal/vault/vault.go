// Package vault implements the storage-side collaborators over a directory
// of Markdown notes: identifier resolution, frontmatter reads, field writes,
// and the active-note provider.
package vault

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/margins/pkg/types"
)

// ErrOutsideVault is returned for identifiers that escape the vault
// directory.
var ErrOutsideVault = errors.New("identifier escapes the vault directory")

// NoteExt is the extension tried when resolving an identifier without one.
const NoteExt = "md"

// Vault reads and writes notes under a single root directory. Identifiers
// are vault-relative slash paths, accepted with or without the extension.
type Vault struct {
	dir string
	log zerolog.Logger
}

// Open validates the configured vault directory and returns a Vault over it.
func Open(cfg types.Config, log zerolog.Logger) (*Vault, error) {
	if cfg.VaultDir == "" {
		return nil, types.ErrVaultDirEmpty
	}
	info, err := os.Stat(cfg.VaultDir)
	if err != nil {
		return nil, fmt.Errorf("stat vault dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("vault dir %s is not a directory", cfg.VaultDir)
	}
	return &Vault{dir: cfg.VaultDir, log: log}, nil
}

// Dir returns the vault root directory.
func (v *Vault) Dir() string {
	return v.dir
}

// abs maps a vault-relative identifier to an absolute path, rejecting
// escapes.
func (v *Vault) abs(rel string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(rel))
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) || filepath.IsAbs(clean) {
		return "", fmt.Errorf("%s: %w", rel, ErrOutsideVault)
	}
	return filepath.Join(v.dir, clean), nil
}

// notePath returns the on-disk path for an identifier, trying the id as
// given and then with the default extension appended. The second return is
// the vault-relative path of the match.
func (v *Vault) notePath(id string) (string, string, error) {
	for _, rel := range []string{id, id + "." + NoteExt} {
		abs, err := v.abs(rel)
		if err != nil {
			return "", "", err
		}
		info, err := os.Stat(abs)
		if err == nil && !info.IsDir() {
			return abs, rel, nil
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", "", fmt.Errorf("stat %s: %w", rel, err)
		}
	}
	return "", "", fmt.Errorf("%s: %w", id, types.ErrNoteNotFound)
}

// Resolve returns the Note handle for an identifier, or ErrNoteNotFound.
func (v *Vault) Resolve(id string) (*types.Note, error) {
	abs, rel, err := v.notePath(id)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", rel, err)
	}
	return noteFromInfo(rel, info), nil
}

// Frontmatter returns the note's frontmatter record. A missing frontmatter
// block yields an empty Record; a missing note yields ErrNoteNotFound.
func (v *Vault) Frontmatter(id string) (types.Record, error) {
	abs, rel, err := v.notePath(id)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rel, err)
	}
	fm, _, err := parseNote(content)
	if err != nil {
		return nil, fmt.Errorf("frontmatter %s: %w", rel, err)
	}
	return fm, nil
}

// Load resolves a note and returns its handle, frontmatter, and body in one
// read.
func (v *Vault) Load(id string) (*types.Note, types.Record, []byte, error) {
	abs, rel, err := v.notePath(id)
	if err != nil {
		return nil, nil, nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("stat %s: %w", rel, err)
	}
	content, err := os.ReadFile(abs)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("read %s: %w", rel, err)
	}
	fm, body, err := parseNote(content)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("parse %s: %w", rel, err)
	}
	return noteFromInfo(rel, info), fm, body, nil
}

// Walk visits every note in the vault. Files without the note extension and
// hidden directories are skipped.
func (v *Vault) Walk(fn func(n *types.Note) error) error {
	return filepath.WalkDir(v.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if name := d.Name(); name != "." && strings.HasPrefix(name, ".") && path != v.dir {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != "."+NoteExt {
			return nil
		}
		rel, err := filepath.Rel(v.dir, path)
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		return fn(noteFromInfo(rel, info))
	})
}

func noteFromInfo(rel string, info fs.FileInfo) *types.Note {
	slashed := filepath.ToSlash(rel)
	base := filepath.Base(rel)
	ext := strings.TrimPrefix(filepath.Ext(base), ".")
	return &types.Note{
		Path:    slashed,
		Ext:     ext,
		Name:    strings.TrimSuffix(base, filepath.Ext(base)),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}
}
