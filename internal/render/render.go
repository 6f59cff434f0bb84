// Package render writes extracted documentation models in one of the
// supported output formats. Renderers must preserve two schema signals:
// the " NO <TAG> " placeholder text stands for missing documentation, and
// an absent member sequence means the section does not apply to the type.
package render

import (
	"fmt"
	"io"

	"github.com/dotdoc-tools/dotdoc/internal/docmodel"
)

// Renderer writes a set of source units to an output stream.
type Renderer interface {
	Render(w io.Writer, units []*docmodel.SourceUnit) error
}

// ForFormat selects a renderer by format name.
func ForFormat(format string) (Renderer, error) {
	switch format {
	case "json":
		return &JSONRenderer{}, nil
	case "yaml":
		return &YAMLRenderer{}, nil
	case "html":
		return NewHTMLRenderer()
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}
