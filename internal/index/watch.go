package index

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/mesh-intelligence/margins/internal/vault"
)

// Watch keeps the index in sync with the vault until ctx is cancelled.
// Created and modified notes are rescanned, removed notes are dropped, and
// newly created directories are added to the watch set.
func (ix *Index) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := addDirTree(watcher, ix.vault.Dir()); err != nil {
		return err
	}
	ix.log.Info().Str("dir", ix.vault.Dir()).Msg("watching vault")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			ix.handleEvent(watcher, event)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			ix.log.Warn().Err(err).Msg("watcher error")
		}
	}
}

func (ix *Index) handleEvent(watcher *fsnotify.Watcher, event fsnotify.Event) {
	if event.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := addDirTree(watcher, event.Name); err != nil {
				ix.log.Warn().Err(err).Str("dir", event.Name).Msg("watch new dir failed")
			}
			return
		}
	}

	if filepath.Ext(event.Name) != "."+vault.NoteExt {
		return
	}
	rel, err := filepath.Rel(ix.vault.Dir(), event.Name)
	if err != nil {
		return
	}
	id := strings.TrimSuffix(filepath.ToSlash(rel), "."+vault.NoteExt)

	switch {
	case event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename):
		if err := ix.Forget(id); err != nil {
			ix.log.Warn().Err(err).Str("note", id).Msg("drop removed note failed")
		}
	case event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Write):
		if err := ix.ScanNote(id); err != nil {
			ix.log.Warn().Err(err).Str("note", id).Msg("rescan failed")
		}
	}
}

func addDirTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if name := d.Name(); strings.HasPrefix(name, ".") && path != root {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}
