package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/margins/pkg/types"
)

// aggregateVault seeds a note with one frontmatter field, one inline field,
// and file metadata so every source contributes a distinguishable key.
func aggregateVault() *fakeVault {
	v := newFakeVault()
	v.fm["note"] = types.Record{"status": "open", "shared": "fm"}
	v.inline["note"] = types.Record{"rating": 5, "shared": "inline"}
	v.notes["note"] = &types.Note{Path: "note.md", Ext: "md", Name: "note"}
	return v
}

func TestResolveAllSources(t *testing.T) {
	v := aggregateVault()
	s := newTestService(v, nil)

	got, err := s.Resolve("note", types.AllSources)
	require.NoError(t, err)

	assert.Equal(t, "open", got["status"])
	assert.Equal(t, 5, got["rating"])
	assert.Equal(t, "inline", got["shared"], "inline overlays frontmatter in the combined page")
	assert.Contains(t, got, types.FileKey)
	assert.Equal(t, 1, v.pageCalls)
}

func TestResolveNoSources(t *testing.T) {
	v := aggregateVault()
	s := newTestService(v, nil)

	// Seed the cache; NoSources must ignore it.
	s.cache.Entry("note")["cached"] = true

	got, err := s.Resolve("note", types.NoSources)
	require.NoError(t, err)

	assert.Empty(t, got)
	assert.Equal(t, 0, v.pageCalls, "no source may be touched")
	assert.Equal(t, 0, v.frontmatterCalls)
}

func TestResolveFrontmatterOnly(t *testing.T) {
	v := aggregateVault()
	s := newTestService(v, nil)

	got, err := s.Resolve("note", types.Sources{Frontmatter: true})
	require.NoError(t, err)

	assert.Equal(t, types.Record{"status": "open", "shared": "fm"}, got)
	assert.Equal(t, 0, v.pageCalls, "frontmatter alone bypasses the page provider")
	assert.Equal(t, 1, v.frontmatterCalls)
}

func TestResolveStripsFileKey(t *testing.T) {
	v := aggregateVault()
	s := newTestService(v, nil)

	got, err := s.Resolve("note", types.Sources{Frontmatter: true, Inline: true})
	require.NoError(t, err)

	assert.NotContains(t, got, types.FileKey)
	assert.Equal(t, 5, got["rating"])
	assert.Equal(t, 1, v.pageCalls)
}

func TestResolveStripsInlineFields(t *testing.T) {
	v := aggregateVault()
	s := newTestService(v, nil)

	got, err := s.Resolve("note", types.Sources{FileMeta: true, Frontmatter: true})
	require.NoError(t, err)

	assert.NotContains(t, got, "rating", "inline-only keys are stripped")
	assert.Equal(t, "open", got["status"])
	assert.Contains(t, got, types.FileKey, "file key survives the inline strip")
	assert.Equal(t, "inline", got["shared"], "keys present in frontmatter keep the page value")
}

func TestResolveStripsFrontmatterFields(t *testing.T) {
	v := aggregateVault()
	s := newTestService(v, nil)

	got, err := s.Resolve("note", types.Sources{FileMeta: true, Inline: true})
	require.NoError(t, err)

	assert.NotContains(t, got, "status")
	assert.NotContains(t, got, "shared", "frontmatter keys are stripped even when the page included them")
	assert.Equal(t, 5, got["rating"])
	assert.Contains(t, got, types.FileKey)
}

func TestResolveFetchesFrontmatterOnce(t *testing.T) {
	v := aggregateVault()
	s := newTestService(v, nil)

	// Both the inline strip and the frontmatter strip need the frontmatter
	// record; it must be fetched a single time.
	_, err := s.Resolve("note", types.Sources{FileMeta: true})
	require.NoError(t, err)

	assert.Equal(t, 1, v.frontmatterCalls)
}

func TestResolveCachePrecedence(t *testing.T) {
	v := newFakeVault()
	v.fm["note"] = types.Record{"y": 3, "z": 4}
	s := newTestService(v, nil)

	entry := s.cache.Entry("note")
	entry["x"] = 1
	entry["y"] = 2

	got, err := s.Resolve("note", types.Sources{Frontmatter: true, Cache: true})
	require.NoError(t, err)

	// Live values win on collision; cache-only keys survive.
	assert.Equal(t, types.Record{"x": 1, "y": 3, "z": 4}, got)

	// The merged view is a copy, not the live entry.
	got["x"] = 99
	assert.Equal(t, 1, s.cache.Entry("note")["x"])
}

func TestResolveCacheOnly(t *testing.T) {
	v := aggregateVault()
	s := newTestService(v, nil)
	s.cache.Entry("note")["draft"] = true

	got, err := s.Resolve("note", types.Sources{Cache: true})
	require.NoError(t, err)

	assert.Equal(t, types.Record{"draft": true}, got)
	assert.Equal(t, 0, v.pageCalls)
	assert.Equal(t, 0, v.frontmatterCalls)
}

func TestResolveCreatesCacheEntryLazily(t *testing.T) {
	v := aggregateVault()
	s := newTestService(v, nil)

	_, err := s.Resolve("note", types.Sources{Frontmatter: true})
	require.NoError(t, err)
	assert.False(t, s.cache.Has("note"), "cache disabled leaves no entry behind")

	_, err = s.Resolve("note", types.AllSources)
	require.NoError(t, err)
	assert.True(t, s.cache.Has("note"))
}
