package index

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/margins/pkg/types"
)

// inlineFieldRe matches inline computed fields of the form "Key:: value"
// at the start of a line.
var inlineFieldRe = regexp.MustCompile(`^\s*([A-Za-z][A-Za-z0-9_-]*)\s*::\s*(.+?)\s*$`)

// ScanAll reindexes every note in the vault and returns the number of notes
// scanned.
func (ix *Index) ScanAll() (int, error) {
	count := 0
	err := ix.vault.Walk(func(n *types.Note) error {
		if err := ix.ScanNote(n.ID()); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return count, fmt.Errorf("scan vault: %w", err)
	}
	ix.log.Info().Int("notes", count).Msg("vault scanned")
	return count, nil
}

// ScanNote reads one note and replaces its index rows.
func (ix *Index) ScanNote(id string) error {
	note, fm, body, err := ix.vault.Load(id)
	if err != nil {
		return err
	}

	tx, err := ix.db.Begin()
	if err != nil {
		return fmt.Errorf("begin scan tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM fields WHERE note_id = ?", note.ID()); err != nil {
		return fmt.Errorf("clear fields %s: %w", note.ID(), err)
	}

	for key, value := range fm {
		if _, err := tx.Exec(
			"INSERT INTO fields (note_id, key, value, origin) VALUES (?, ?, ?, ?)",
			note.ID(), key, encodeValue(value), originFrontmatter,
		); err != nil {
			return fmt.Errorf("index frontmatter %s.%s: %w", note.ID(), key, err)
		}
	}
	for key, value := range inlineFields(body) {
		if _, err := tx.Exec(
			"INSERT INTO fields (note_id, key, value, origin) VALUES (?, ?, ?, ?)",
			note.ID(), key, encodeValue(value), originInline,
		); err != nil {
			return fmt.Errorf("index inline %s.%s: %w", note.ID(), key, err)
		}
	}

	if _, err := tx.Exec(
		`INSERT INTO notes (note_id, path, name, ext, size, mtime)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (note_id) DO UPDATE SET
		   path = excluded.path, name = excluded.name, ext = excluded.ext,
		   size = excluded.size, mtime = excluded.mtime`,
		note.ID(), note.Path, note.Name, note.Ext, note.Size, nanos(note.ModTime),
	); err != nil {
		return fmt.Errorf("index note %s: %w", note.ID(), err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit scan %s: %w", note.ID(), err)
	}
	ix.log.Debug().Str("note", note.ID()).Msg("note indexed")
	return nil
}

// inlineFields extracts "Key:: value" fields from a note body. A key
// repeated later in the body wins.
func inlineFields(body []byte) types.Record {
	out := types.Record{}
	scanner := bufio.NewScanner(bytes.NewReader(body))
	for scanner.Scan() {
		m := inlineFieldRe.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		out[m[1]] = coerceScalar(m[2])
	}
	return out
}

// coerceScalar narrows an inline field value to bool or a number when the
// text reads as one.
func coerceScalar(text string) any {
	switch strings.ToLower(text) {
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return f
	}
	return text
}
