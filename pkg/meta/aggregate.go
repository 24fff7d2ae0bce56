package meta

import (
	"fmt"

	"github.com/mesh-intelligence/margins/pkg/types"
)

// Resolve retrieves the note's metadata from every enabled source and merges
// it into a single flat record.
//
// With NoSources nothing is consulted, the side cache included, and an empty
// record is returned. Inline and file-metadata fields only exist in the
// combined page, so the page provider is queried whenever either flag is
// enabled and unwanted fields are stripped afterwards: the reserved "file"
// key when file metadata is off, every key absent from frontmatter when
// inline is off, and every frontmatter key when frontmatter is off. With
// only Frontmatter enabled the page provider is bypassed and frontmatter is
// read directly.
//
// Merge precedence is fixed: the side-cache entry is the base layer and live
// values overwrite it on key collision. Frontmatter is fetched at most once
// per call even when two strip rules need it.
func (s *Service) Resolve(id string, sources types.Sources) (types.Record, error) {
	if sources == types.NoSources {
		return types.Record{}, nil
	}

	var fm types.Record
	loadFrontmatter := func() (types.Record, error) {
		if fm != nil {
			return fm, nil
		}
		loaded, err := s.storage.Frontmatter(id)
		if err != nil {
			return nil, fmt.Errorf("read frontmatter %s: %w", id, err)
		}
		if loaded == nil {
			loaded = types.Record{}
		}
		fm = loaded
		return fm, nil
	}

	values := types.Record{}
	switch {
	case sources.NeedsPage():
		page, err := s.pages.Page(id)
		if err != nil {
			return nil, fmt.Errorf("page %s: %w", id, err)
		}
		values = page.Clone()

		if !sources.FileMeta {
			delete(values, types.FileKey)
		}
		if !sources.Inline {
			front, err := loadFrontmatter()
			if err != nil {
				return nil, err
			}
			for key := range values {
				if key == types.FileKey {
					continue
				}
				if _, ok := front[key]; !ok {
					delete(values, key)
				}
			}
		}
		if !sources.Frontmatter {
			front, err := loadFrontmatter()
			if err != nil {
				return nil, err
			}
			for key := range front {
				delete(values, key)
			}
		}

	case sources.Frontmatter:
		front, err := loadFrontmatter()
		if err != nil {
			return nil, err
		}
		values = front.Clone()
	}

	if !sources.Cache {
		return values, nil
	}
	return s.cache.Entry(id).Clone().Overlay(values), nil
}
