// Package margins is the composition root: it wires the vault, the page
// index, and the metadata service into one application context with an
// explicit open/close lifecycle.
package margins

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/margins/internal/index"
	"github.com/mesh-intelligence/margins/internal/vault"
	"github.com/mesh-intelligence/margins/pkg/meta"
	"github.com/mesh-intelligence/margins/pkg/types"
)

// Version is the margins release version.
const Version = "0.1.0"

// App owns the composed metadata stack. Obtain one with Open, pass it (or
// its Service) to whatever needs metadata access, and Close it when done.
type App struct {
	Config  types.Config
	Vault   *vault.Vault
	Index   *index.Index
	Service *meta.Service
}

// Open validates the config and builds the full stack: vault storage, the
// SQLite page index, and the metadata service over both.
func Open(cfg types.Config, log zerolog.Logger) (*App, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("margins config: %w", err)
	}

	v, err := vault.Open(cfg, log)
	if err != nil {
		return nil, err
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = filepath.Join(cfg.VaultDir, ".margins-db")
	}
	ix, err := index.Open(v, dataDir, log)
	if err != nil {
		return nil, err
	}

	svc := meta.New(cfg, meta.Deps{
		Storage: v,
		Pages:   ix,
		Writer:  v,
		Active:  v.ActiveProvider(cfg.ActiveNote),
		Journal: ix,
		Logger:  &log,
	})

	return &App{Config: cfg, Vault: v, Index: ix, Service: svc}, nil
}

// Close releases the index database handle.
func (a *App) Close() error {
	return a.Index.Close()
}
