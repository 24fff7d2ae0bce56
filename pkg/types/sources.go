package types

// FileKey is the reserved key under which combined pages carry file-level
// metadata (name, path, size, modification time).
const FileKey = "file"

// Sources selects which contributors participate in a merged metadata view.
// Each flag toggles one source independently. The zero value consults
// nothing and yields an empty record.
type Sources struct {
	FileMeta    bool // reserved "file" subrecord from the combined page
	Frontmatter bool // keys read from the note's frontmatter block
	Inline      bool // inline computed fields extracted from the note body
	Cache       bool // process-lifetime side-cache entry for the note
}

// AllSources enables every contributor. Resolving with AllSources queries
// the combined page provider and overlays it on the side cache.
var AllSources = Sources{FileMeta: true, Frontmatter: true, Inline: true, Cache: true}

// NoSources disables every contributor. Resolving with NoSources returns an
// empty record without touching any source, the side cache included.
var NoSources = Sources{}

// LiveEnabled reports whether any live source (everything but the cache)
// participates.
func (s Sources) LiveEnabled() bool {
	return s.FileMeta || s.Frontmatter || s.Inline
}

// NeedsPage reports whether resolving requires the combined page provider.
// The provider is the only reader for inline and file-metadata fields, so it
// is queried whenever either flag is set; unwanted fields are stripped from
// its result afterwards.
func (s Sources) NeedsPage() bool {
	return s.Inline || s.FileMeta
}
