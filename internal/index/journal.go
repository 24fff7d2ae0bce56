package index

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/margins/pkg/types"
)

// Append records one field write in the journal table. Journaling is
// best-effort: failures are logged, never surfaced, so a broken journal
// cannot fail the write it describes.
func (ix *Index) Append(op types.Op) {
	opID, err := uuid.NewV7()
	if err != nil {
		ix.log.Warn().Err(err).Msg("journal op id generation failed")
		return
	}
	op.OpID = opID.String()
	op.At = time.Now()

	if _, err := ix.db.Exec(
		"INSERT INTO journal (op_id, kind, note_id, property, at) VALUES (?, ?, ?, ?, ?)",
		op.OpID, op.Kind, op.NoteID, op.Property, op.At.UnixNano(),
	); err != nil {
		ix.log.Warn().Err(err).Str("note", op.NoteID).Msg("journal append failed")
	}
}

// RecentOps returns the latest journaled ops, newest first.
func (ix *Index) RecentOps(limit int) ([]types.Op, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := ix.db.Query(
		"SELECT op_id, kind, note_id, property, at FROM journal ORDER BY at DESC, op_id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query journal: %w", err)
	}
	defer rows.Close()

	var ops []types.Op
	for rows.Next() {
		var op types.Op
		var at int64
		if err := rows.Scan(&op.OpID, &op.Kind, &op.NoteID, &op.Property, &at); err != nil {
			return nil, fmt.Errorf("scan journal row: %w", err)
		}
		op.At = time.Unix(0, at)
		ops = append(ops, op)
	}
	return ops, rows.Err()
}
