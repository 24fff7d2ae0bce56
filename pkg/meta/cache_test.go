package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/margins/pkg/types"
)

func TestSideCacheEntry(t *testing.T) {
	c := NewSideCache()

	t.Run("no entry before first access", func(t *testing.T) {
		assert.False(t, c.Has("a"))
		assert.Equal(t, 0, c.Len())
	})

	t.Run("lazy creation on first access", func(t *testing.T) {
		entry := c.Entry("a")
		assert.NotNil(t, entry)
		assert.Empty(t, entry)
		assert.True(t, c.Has("a"))
	})

	t.Run("same entry on repeat access", func(t *testing.T) {
		c.Entry("a")["x"] = 1
		assert.Equal(t, types.Record{"x": 1}, c.Entry("a"))
		assert.Equal(t, 1, c.Len())
	})

	t.Run("entries are independent per id", func(t *testing.T) {
		c.Entry("b")["y"] = 2
		assert.Equal(t, types.Record{"x": 1}, c.Entry("a"))
		assert.Equal(t, types.Record{"y": 2}, c.Entry("b"))
	})

	t.Run("clear removes a single entry", func(t *testing.T) {
		c.Clear("a")
		assert.False(t, c.Has("a"))
		assert.True(t, c.Has("b"))
	})
}
