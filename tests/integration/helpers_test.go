// Package integration provides shared test helpers for integration tests.
package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/margins/pkg/margins"
	"github.com/mesh-intelligence/margins/pkg/types"
)

// setupApp creates a vault in an isolated temp directory, seeds it with the
// given notes (vault-relative path -> raw content), and opens the full
// application stack over it. Each test gets its own vault and index.
func setupApp(t *testing.T, notes map[string]string, active string) *margins.App {
	t.Helper()
	dir := t.TempDir()
	for rel, content := range notes {
		writeNote(t, dir, rel, content)
	}

	app, err := margins.Open(types.Config{
		VaultDir:   dir,
		DataDir:    filepath.Join(dir, ".margins-db"),
		ActiveNote: active,
	}, zerolog.Nop())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { app.Close() })
	return app
}

// writeNote writes raw note content at a vault-relative path, creating
// intermediate directories.
func writeNote(t *testing.T, vaultDir, rel, content string) {
	t.Helper()
	abs := filepath.Join(vaultDir, rel)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		t.Fatalf("MkdirAll %s: %v", rel, err)
	}
	if err := os.WriteFile(abs, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile %s: %v", rel, err)
	}
}

// mustScan reindexes the whole vault and checks the note count.
func mustScan(t *testing.T, app *margins.App, want int) {
	t.Helper()
	count, err := app.Index.ScanAll()
	if err != nil {
		t.Fatalf("ScanAll: %v", err)
	}
	if count != want {
		t.Fatalf("ScanAll indexed %d notes, want %d", count, want)
	}
}

// mustGet resolves the merged metadata view or fails the test.
func mustGet(t *testing.T, app *margins.App, id string, sources types.Sources) types.Record {
	t.Helper()
	record, err := app.Service.Get(id, sources)
	if err != nil {
		t.Fatalf("Get(%q): %v", id, err)
	}
	return record
}
