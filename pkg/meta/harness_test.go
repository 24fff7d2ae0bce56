package meta

import (
	"github.com/mesh-intelligence/margins/pkg/types"
)

// fakeVault implements Storage, PageProvider, FieldWriter, and FieldRemover
// over in-memory maps, counting calls so tests can assert which sources were
// consulted.
type fakeVault struct {
	fm     map[string]types.Record // frontmatter per note id
	inline map[string]types.Record // inline computed fields per note id
	notes  map[string]*types.Note

	pageCalls        int
	frontmatterCalls int
	updates          []string // "id/prop" in call order
	removals         []string
}

func newFakeVault() *fakeVault {
	return &fakeVault{
		fm:     make(map[string]types.Record),
		inline: make(map[string]types.Record),
		notes:  make(map[string]*types.Note),
	}
}

func (v *fakeVault) Resolve(id string) (*types.Note, error) {
	if n, ok := v.notes[id]; ok {
		return n, nil
	}
	return nil, types.ErrNoteNotFound
}

func (v *fakeVault) Frontmatter(id string) (types.Record, error) {
	v.frontmatterCalls++
	if fm, ok := v.fm[id]; ok {
		return fm.Clone(), nil
	}
	return types.Record{}, nil
}

func (v *fakeVault) Page(id string) (types.Record, error) {
	v.pageCalls++
	page := types.Record{}
	page.Overlay(v.fm[id]).Overlay(v.inline[id])
	if n, ok := v.notes[id]; ok {
		page[types.FileKey] = n.FileRecord()
	} else {
		page[types.FileKey] = types.Record{"path": id}
	}
	return page, nil
}

func (v *fakeVault) Update(property string, value any, id string) error {
	if v.fm[id] == nil {
		v.fm[id] = types.Record{}
	}
	v.fm[id][property] = value
	v.updates = append(v.updates, id+"/"+property)
	return nil
}

func (v *fakeVault) Remove(property string, id string) error {
	delete(v.fm[id], property)
	v.removals = append(v.removals, id+"/"+property)
	return nil
}

// strictStorage wraps fakeVault failing Frontmatter for unknown notes, the
// way the real vault does.
type strictStorage struct {
	v *fakeVault
}

func (s strictStorage) Resolve(id string) (*types.Note, error) {
	return s.v.Resolve(id)
}

func (s strictStorage) Frontmatter(id string) (types.Record, error) {
	if _, ok := s.v.fm[id]; !ok {
		return nil, types.ErrNoteNotFound
	}
	return s.v.Frontmatter(id)
}

// updateOnlyWriter wraps fakeVault hiding the Remove capability.
type updateOnlyWriter struct {
	v *fakeVault
}

func (w updateOnlyWriter) Update(property string, value any, id string) error {
	return w.v.Update(property, value, id)
}

// fakeActive serves a fixed current note.
type fakeActive struct {
	note *types.Note
}

func (a fakeActive) Current() (*types.Note, error) {
	if a.note == nil {
		return nil, types.ErrNoActiveNote
	}
	return a.note, nil
}

// fakeJournal collects appended ops.
type fakeJournal struct {
	ops []types.Op
}

func (j *fakeJournal) Append(op types.Op) {
	j.ops = append(j.ops, op)
}

func newTestService(v *fakeVault, active *types.Note) *Service {
	return New(types.Config{VaultDir: "unused"}, Deps{
		Storage: v,
		Pages:   v,
		Writer:  v,
		Active:  fakeActive{note: active},
	})
}
