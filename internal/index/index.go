// Package index implements the combined page provider: a SQLite-backed
// field index over frontmatter and inline computed fields, kept fresh by
// rescans and an optional fsnotify watcher, plus the write journal.
package index

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/margins/internal/vault"
	"github.com/mesh-intelligence/margins/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// Field origins, in overlay order: inline fields win over frontmatter on
// key collision within a page.
const (
	originFrontmatter = "frontmatter"
	originInline      = "inline"
)

// DBFileName is the index database file created under the data directory.
const DBFileName = "index.db"

// Index serves combined pages for vault notes.
type Index struct {
	vault *vault.Vault
	db    *sql.DB
	log   zerolog.Logger
}

// Open creates the data directory if needed, opens the index database, and
// initializes the schema.
func Open(v *vault.Vault, dataDir string, log zerolog.Logger) (*Index, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", filepath.Join(dataDir, DBFileName))
	if err != nil {
		return nil, fmt.Errorf("open index db: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("init index schema: %w", err)
	}
	return &Index{vault: v, db: db, log: log}, nil
}

// Close releases the database handle.
func (ix *Index) Close() error {
	return ix.db.Close()
}

// Page returns the note's combined record: frontmatter keys, inline fields
// overlaid on top, and the reserved "file" subrecord. A note that is missing
// from the index, or whose file changed since the last scan, is indexed on
// demand.
func (ix *Index) Page(id string) (types.Record, error) {
	note, err := ix.vault.Resolve(id)
	if err != nil {
		return nil, err
	}

	stale, err := ix.isStale(note)
	if err != nil {
		return nil, err
	}
	if stale {
		if err := ix.ScanNote(note.ID()); err != nil {
			return nil, err
		}
	}

	page := types.Record{}
	for _, origin := range []string{originFrontmatter, originInline} {
		fields, err := ix.fieldsFor(note.ID(), origin)
		if err != nil {
			return nil, err
		}
		page.Overlay(fields)
	}
	page[types.FileKey] = note.FileRecord()
	return page, nil
}

// isStale reports whether the stored row for the note is missing or older
// than the file on disk.
func (ix *Index) isStale(note *types.Note) (bool, error) {
	var mtime int64
	err := ix.db.QueryRow(
		"SELECT mtime FROM notes WHERE note_id = ?", note.ID(),
	).Scan(&mtime)
	if errors.Is(err, sql.ErrNoRows) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("index lookup %s: %w", note.ID(), err)
	}
	return mtime != note.ModTime.UnixNano(), nil
}

func (ix *Index) fieldsFor(id, origin string) (types.Record, error) {
	rows, err := ix.db.Query(
		"SELECT key, value FROM fields WHERE note_id = ? AND origin = ?", id, origin,
	)
	if err != nil {
		return nil, fmt.Errorf("query fields %s: %w", id, err)
	}
	defer rows.Close()

	out := types.Record{}
	for rows.Next() {
		var key, encoded string
		if err := rows.Scan(&key, &encoded); err != nil {
			return nil, fmt.Errorf("scan field row: %w", err)
		}
		var value any
		if err := json.Unmarshal([]byte(encoded), &value); err != nil {
			// Legacy or hand-edited rows; surface the raw text.
			value = encoded
		}
		out[key] = value
	}
	return out, rows.Err()
}

// Forget drops a note's rows, e.g. after its file was deleted.
func (ix *Index) Forget(id string) error {
	if _, err := ix.db.Exec("DELETE FROM fields WHERE note_id = ?", id); err != nil {
		return fmt.Errorf("forget fields %s: %w", id, err)
	}
	if _, err := ix.db.Exec("DELETE FROM notes WHERE note_id = ?", id); err != nil {
		return fmt.Errorf("forget note %s: %w", id, err)
	}
	return nil
}

func encodeValue(v any) string {
	encoded, err := json.Marshal(v)
	if err != nil {
		encoded, _ = json.Marshal(fmt.Sprint(v))
	}
	return string(encoded)
}

func nanos(t time.Time) int64 {
	return t.UnixNano()
}
