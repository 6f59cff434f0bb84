package render

import (
	"encoding/json"
	"io"

	"github.com/dotdoc-tools/dotdoc/internal/docmodel"
)

// JSONRenderer writes indented JSON. Absent member sequences are omitted
// from the output entirely, distinguishing them from present-but-empty
// sequences.
type JSONRenderer struct{}

func (r *JSONRenderer) Render(w io.Writer, units []*docmodel.SourceUnit) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(units)
}
