// Package doccomment locates tagged sections inside raw documentation
// comment blocks and normalizes them into single-line prose.
package doccomment

import (
	"strings"

	"github.com/dotdoc-tools/dotdoc/internal/docmodel"
)

// Block is the raw content of one documentation comment run attached to a
// declaration, before any cleanup. The zero value is the empty block of a
// declaration with no documentation.
type Block struct {
	raw    string
	marker string
}

// NewBlock wraps raw documentation comment text whose lines may carry the
// given per-grammar line marker ("///" for C#, "'''" for VB).
func NewBlock(raw, marker string) Block {
	return Block{raw: raw, marker: marker}
}

// None reports whether the block holds no documentation at all.
func (b Block) None() bool {
	return strings.TrimSpace(b.raw) == ""
}

// Section returns the raw text of the tagged section, including its open and
// close markers, or false when the block has no complete section for the tag.
// An unclosed section counts as absent.
func (b Block) Section(tag string) (string, bool) {
	open := "<" + tag + ">"
	close := "</" + tag + ">"
	start := strings.Index(b.raw, open)
	if start < 0 {
		return "", false
	}
	rest := b.raw[start+len(open):]
	end := strings.Index(rest, close)
	if end < 0 {
		return "", false
	}
	return b.raw[start : start+len(open)+end+len(close)], true
}

// Text resolves the tagged section to cleaned prose, or the
// missing-documentation value when the block has no such section.
func (b Block) Text(tag string) docmodel.DocText {
	raw, ok := b.Section(tag)
	if !ok {
		return docmodel.NoDoc(tag)
	}
	return docmodel.Documented(Normalize(raw, tag, b.marker))
}

// Normalize flattens one raw tagged section into a single line: each line is
// trimmed, blank lines are dropped, the per-line comment marker and the
// literal tag delimiters are stripped, and the remaining lines are joined
// with single spaces. Markup other than the requested tag's own delimiters
// passes through as literal text.
func Normalize(raw, tag, marker string) string {
	open := "<" + tag + ">"
	close := "</" + tag + ">"

	var parts []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = strings.TrimPrefix(line, marker)
		line = strings.ReplaceAll(line, open, "")
		line = strings.ReplaceAll(line, close, "")
		line = strings.TrimSpace(line)
		if line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}
