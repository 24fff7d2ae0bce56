package meta

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/margins/pkg/types"
)

// Deps are the collaborators a Service composes. Storage, Pages, and Writer
// are required for the corresponding operations; Active and Journal are
// optional. A nil Active makes every current-note operation fail with
// ErrNoActiveNote.
type Deps struct {
	Storage types.Storage
	Pages   types.PageProvider
	Writer  types.FieldWriter
	Active  types.ActiveNoteProvider
	Journal types.Journal
	Logger  *zerolog.Logger
}

// Service is the metadata facade. It is an explicit, injected object owned
// by the composition root; there is no package-level instance.
type Service struct {
	keys    Keys
	cache   *SideCache
	storage types.Storage
	pages   types.PageProvider
	writer  types.FieldWriter
	active  types.ActiveNoteProvider
	journal types.Journal
	log     zerolog.Logger
}

// New builds a Service over the given collaborators. Namespace roots missing
// from cfg are defaulted.
func New(cfg types.Config, deps Deps) *Service {
	log := zerolog.Nop()
	if deps.Logger != nil {
		log = *deps.Logger
	}
	return &Service{
		keys:    NewKeys(cfg),
		cache:   NewSideCache(),
		storage: deps.Storage,
		pages:   deps.Pages,
		writer:  deps.Writer,
		active:  deps.Active,
		journal: deps.Journal,
		log:     log,
	}
}

// Keys exposes the identifier resolver.
func (s *Service) Keys() Keys {
	return s.keys
}

// Current returns the note the host has in focus.
func (s *Service) Current() (*types.Note, error) {
	if s.active == nil {
		return nil, types.ErrNoActiveNote
	}
	return s.active.Current()
}

// CurrentID returns the canonical identifier of the current note.
func (s *Service) CurrentID() (string, error) {
	note, err := s.Current()
	if err != nil {
		return "", err
	}
	if note == nil {
		return "", types.ErrNoActiveNote
	}
	return note.ID(), nil
}

// resolveID substitutes the current note's id for an empty identifier.
func (s *Service) resolveID(id string) (string, error) {
	if id != "" {
		return id, nil
	}
	return s.CurrentID()
}

// Get returns the merged metadata view of the note. An empty id addresses
// the current note.
func (s *Service) Get(id string, sources types.Sources) (types.Record, error) {
	rid, err := s.resolveID(id)
	if err != nil {
		return nil, err
	}
	return s.Resolve(rid, sources)
}

// Frontmatter returns only the note's frontmatter record, bypassing the
// page provider and the cache. An empty id addresses the current note.
func (s *Service) Frontmatter(id string) (types.Record, error) {
	rid, err := s.resolveID(id)
	if err != nil {
		return nil, err
	}
	return s.storage.Frontmatter(rid)
}

// Cache returns the note's live side-cache entry, creating it on first
// access. An empty id addresses the current note.
func (s *Service) Cache(id string) (types.Record, error) {
	rid, err := s.resolveID(id)
	if err != nil {
		return nil, err
	}
	return s.cache.Entry(rid), nil
}

// Prototypes returns the frontmatter of the prototype record at sub.
func (s *Service) Prototypes(sub string) (types.Record, error) {
	return s.storage.Frontmatter(s.keys.Namespaced(Prototypes, sub))
}

// Values returns the frontmatter of the values record at sub.
func (s *Service) Values(sub string) (types.Record, error) {
	return s.storage.Frontmatter(s.keys.Namespaced(Values, sub))
}

// WriteOption adjusts a Patch, Set, or Clear operation.
type WriteOption func(*writeOptions)

type writeOptions struct {
	property  string
	values    Redirect
	prototype Redirect
}

// AsProperty writes the whole data record under the single named property
// instead of one field per top-level key.
func AsProperty(name string) WriteOption {
	return func(o *writeOptions) { o.property = name }
}

// ToValues redirects the operation into the values namespace.
func ToValues() WriteOption {
	return func(o *writeOptions) { o.values = Redirect{On: true} }
}

// ToValuesAt redirects the operation to the given sub-path of the values
// namespace.
func ToValuesAt(sub string) WriteOption {
	return func(o *writeOptions) { o.values = RedirectTo(sub) }
}

// ToPrototype redirects the operation into the prototypes namespace.
func ToPrototype() WriteOption {
	return func(o *writeOptions) { o.prototype = Redirect{On: true} }
}

// ToPrototypeAt redirects the operation to the given sub-path of the
// prototypes namespace.
func ToPrototypeAt(sub string) WriteOption {
	return func(o *writeOptions) { o.prototype = RedirectTo(sub) }
}

func (s *Service) target(id string, opts []WriteOption) (string, writeOptions, error) {
	var o writeOptions
	for _, opt := range opts {
		opt(&o)
	}
	target, err := s.keys.Target(id, o.values, o.prototype, s.CurrentID)
	return target, o, err
}

// Patch writes fields of data to the target note and returns its freshly
// resolved metadata. With AsProperty the whole record is stored under that
// one name; otherwise every top-level key becomes an individual field write.
func (s *Service) Patch(id string, data types.Record, opts ...WriteOption) (types.Record, error) {
	target, o, err := s.target(id, opts)
	if err != nil {
		return nil, err
	}

	if o.property != "" {
		if err := s.update(target, o.property, data); err != nil {
			return nil, err
		}
		return s.Resolve(target, types.AllSources)
	}

	for _, key := range sortedKeys(data) {
		if err := s.update(target, key, data[key]); err != nil {
			return nil, err
		}
	}
	return s.Resolve(target, types.AllSources)
}

// Set replaces the target note's fields: every existing frontmatter field is
// removed first, then every top-level key of data is written. A target that
// does not exist yet has nothing to clear; the writes then create it, like
// Patch.
func (s *Service) Set(id string, data types.Record, opts ...WriteOption) (types.Record, error) {
	target, _, err := s.target(id, opts)
	if err != nil {
		return nil, err
	}

	current, err := s.storage.Frontmatter(target)
	if err != nil && !errors.Is(err, types.ErrNoteNotFound) {
		return nil, err
	}
	if names := sortedKeys(current); len(names) > 0 {
		if err := s.removeAll(target, names); err != nil {
			return nil, err
		}
	}

	for _, key := range sortedKeys(data) {
		if err := s.update(target, key, data[key]); err != nil {
			return nil, err
		}
	}
	return s.Resolve(target, types.AllSources)
}

// Clear removes the named fields from the target note. A nil names slice
// removes every current frontmatter field. Callers clearing by record shape
// pass record.Keys().
//
// Removal requires the writer to implement FieldRemover; otherwise Clear
// fails with ErrUnimplemented before touching the note.
func (s *Service) Clear(id string, names []string, opts ...WriteOption) error {
	target, _, err := s.target(id, opts)
	if err != nil {
		return err
	}

	if names == nil {
		current, err := s.storage.Frontmatter(target)
		if err != nil {
			return err
		}
		names = sortedKeys(current)
	}
	return s.removeAll(target, names)
}

func (s *Service) update(target, property string, value any) error {
	if err := s.writer.Update(property, value, target); err != nil {
		return fmt.Errorf("update %s on %s: %w", property, target, err)
	}
	s.log.Debug().Str("note", target).Str("property", property).Msg("field updated")
	if s.journal != nil {
		s.journal.Append(types.Op{Kind: types.OpUpdate, NoteID: target, Property: property})
	}
	return nil
}

func (s *Service) removeAll(target string, names []string) error {
	remover, ok := s.writer.(types.FieldRemover)
	if !ok {
		return fmt.Errorf("clear %s: %w", target, types.ErrUnimplemented)
	}
	for _, name := range names {
		if err := remover.Remove(name, target); err != nil {
			return fmt.Errorf("remove %s from %s: %w", name, target, err)
		}
		s.log.Debug().Str("note", target).Str("property", name).Msg("field removed")
		if s.journal != nil {
			s.journal.Append(types.Op{Kind: types.OpRemove, NoteID: target, Property: name})
		}
	}
	return nil
}

func sortedKeys(r types.Record) []string {
	keys := r.Keys()
	sort.Strings(keys)
	return keys
}

// IsNotFound reports whether err wraps ErrNoteNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, types.ErrNoteNotFound)
}
