package deep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		want    Path
		wantErr error
	}{
		{name: "single key", expr: "title", want: Path{"title"}},
		{name: "nested keys", expr: "a.b.c", want: Path{"a", "b", "c"}},
		{name: "empty expression", expr: "", wantErr: ErrInvalidPath},
		{name: "leading dot", expr: ".a", wantErr: ErrInvalidPath},
		{name: "trailing dot", expr: "a.", wantErr: ErrInvalidPath},
		{name: "double dot", expr: "a..b", wantErr: ErrInvalidPath},
		{name: "lone dot", expr: ".", wantErr: ErrInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePath(tt.expr)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewPath(t *testing.T) {
	t.Run("copies segments", func(t *testing.T) {
		keys := []string{"a", "b"}
		p, err := NewPath(keys...)
		require.NoError(t, err)

		keys[0] = "mutated"
		assert.Equal(t, Path{"a", "b"}, p)
	})

	t.Run("rejects no keys", func(t *testing.T) {
		_, err := NewPath()
		assert.ErrorIs(t, err, ErrInvalidPath)
	})

	t.Run("rejects empty key", func(t *testing.T) {
		_, err := NewPath("a", "", "c")
		assert.ErrorIs(t, err, ErrInvalidPath)
	})
}

func TestPathString(t *testing.T) {
	p, err := NewPath("a", "b", "c")
	require.NoError(t, err)
	assert.Equal(t, "a.b.c", p.String())
}
