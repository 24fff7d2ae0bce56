package vault

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/margins/pkg/types"
)

func TestParseNote(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantFM   types.Record
		wantBody string
	}{
		{
			name:     "frontmatter and body",
			content:  "---\ntitle: roadmap\ncount: 3\n---\n# Heading\n",
			wantFM:   types.Record{"title": "roadmap", "count": 3},
			wantBody: "# Heading\n",
		},
		{
			name:     "no frontmatter",
			content:  "# Just a heading\n",
			wantFM:   types.Record{},
			wantBody: "# Just a heading\n",
		},
		{
			name:     "empty frontmatter block",
			content:  "---\n---\nbody\n",
			wantFM:   types.Record{},
			wantBody: "body\n",
		},
		{
			name:     "unterminated block is body",
			content:  "---\ntitle: x\n",
			wantFM:   types.Record{},
			wantBody: "---\ntitle: x\n",
		},
		{
			name:     "nested mapping",
			content:  "---\nmeta:\n  owner: ops\n---\n",
			wantFM:   types.Record{"meta": map[string]any{"owner": "ops"}},
			wantBody: "",
		},
		{
			name:     "horizontal rule later in body is not frontmatter",
			content:  "intro\n---\nmore\n",
			wantFM:   types.Record{},
			wantBody: "intro\n---\nmore\n",
		},
		{
			name:     "crlf delimiters",
			content:  "---\r\ntitle: x\r\n---\r\nbody",
			wantFM:   types.Record{"title": "x"},
			wantBody: "body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, body, err := parseNote([]byte(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.wantFM, fm)
			assert.Equal(t, tt.wantBody, string(body))
		})
	}
}

func TestParseNoteBadYAML(t *testing.T) {
	_, _, err := parseNote([]byte("---\n\t{bad\n---\n"))
	assert.Error(t, err)
}

func TestRenderNoteRoundTrip(t *testing.T) {
	fm := types.Record{"title": "roadmap", "count": 3}
	body := []byte("# Heading\n")

	content, err := renderNote(fm, body)
	require.NoError(t, err)

	gotFM, gotBody, err := parseNote(content)
	require.NoError(t, err)
	assert.Equal(t, fm, gotFM)
	assert.Equal(t, body, gotBody)
}

func TestRenderNoteEmptyRecordDropsBlock(t *testing.T) {
	content, err := renderNote(types.Record{}, []byte("body\n"))
	require.NoError(t, err)
	assert.Equal(t, "body\n", string(content))
}
