package vault

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/margins/pkg/types"
)

var fmDelimiter = []byte("---")

// parseNote splits a note into its frontmatter record and body. A note
// without a leading frontmatter block yields an empty Record and the whole
// content as body.
func parseNote(content []byte) (types.Record, []byte, error) {
	fmBytes, body, ok := splitFrontmatter(content)
	if !ok {
		return types.Record{}, content, nil
	}

	var raw map[string]any
	if err := yaml.Unmarshal(fmBytes, &raw); err != nil {
		return nil, nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	if raw == nil {
		return types.Record{}, body, nil
	}
	return types.Record(raw), body, nil
}

// splitFrontmatter extracts the block between the leading "---" line and the
// next "---" line. Reports false when no well-formed block opens the note.
func splitFrontmatter(content []byte) (fm, body []byte, ok bool) {
	if !bytes.HasPrefix(content, fmDelimiter) {
		return nil, nil, false
	}
	rest := content[len(fmDelimiter):]
	if len(rest) == 0 || (rest[0] != '\n' && !bytes.HasPrefix(rest, []byte("\r\n"))) {
		return nil, nil, false
	}
	rest = rest[bytes.IndexByte(rest, '\n')+1:]

	for offset := 0; offset <= len(rest); {
		lineEnd := bytes.IndexByte(rest[offset:], '\n')
		var line []byte
		next := len(rest)
		if lineEnd >= 0 {
			line = rest[offset : offset+lineEnd]
			next = offset + lineEnd + 1
		} else {
			line = rest[offset:]
		}
		if bytes.Equal(bytes.TrimRight(line, "\r"), fmDelimiter) {
			return rest[:offset], rest[next:], true
		}
		if lineEnd < 0 {
			break
		}
		offset = next
	}
	return nil, nil, false
}

// renderNote serializes a frontmatter record and body back into note
// content. An empty record renders the body alone, dropping the block.
func renderNote(fm types.Record, body []byte) ([]byte, error) {
	if len(fm) == 0 {
		return body, nil
	}
	fmBytes, err := yaml.Marshal(map[string]any(fm))
	if err != nil {
		return nil, fmt.Errorf("render frontmatter: %w", err)
	}

	var buf bytes.Buffer
	buf.Write(fmDelimiter)
	buf.WriteByte('\n')
	buf.Write(fmBytes)
	buf.Write(fmDelimiter)
	buf.WriteByte('\n')
	buf.Write(body)
	return buf.Bytes(), nil
}
