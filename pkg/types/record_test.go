package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordClone(t *testing.T) {
	orig := Record{"a": 1, "b": Record{"c": 2}}
	clone := orig.Clone()

	clone["a"] = 99
	assert.Equal(t, 1, orig["a"], "clone must not share top-level keys")

	// Nested records are shared by design.
	clone["b"].(Record)["c"] = 42
	assert.Equal(t, 42, orig["b"].(Record)["c"])
}

func TestRecordOverlay(t *testing.T) {
	base := Record{"x": 1, "y": 2}
	got := base.Overlay(Record{"y": 3, "z": 4})

	assert.Equal(t, Record{"x": 1, "y": 3, "z": 4}, got)
	assert.Equal(t, base, got, "overlay mutates and returns the receiver")
}

func TestAsRecord(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		wantOK bool
	}{
		{name: "record", in: Record{"a": 1}, wantOK: true},
		{name: "plain map", in: map[string]any{"a": 1}, wantOK: true},
		{name: "string", in: "nope", wantOK: false},
		{name: "nil", in: nil, wantOK: false},
		{name: "typed map", in: map[string]int{"a": 1}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := AsRecord(tt.in)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestNoteID(t *testing.T) {
	tests := []struct {
		name string
		note *Note
		want string
	}{
		{
			name: "strips extension",
			note: &Note{Path: "projects/roadmap.md", Ext: "md"},
			want: "projects/roadmap",
		},
		{
			name: "no extension",
			note: &Note{Path: "projects/roadmap"},
			want: "projects/roadmap",
		},
		{
			name: "nil note",
			note: nil,
			want: "",
		},
		{
			name: "dot inside name survives",
			note: &Note{Path: "v1.2/notes.md", Ext: "md"},
			want: "v1.2/notes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.note.ID())
		})
	}
}
