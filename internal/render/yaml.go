package render

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dotdoc-tools/dotdoc/internal/docmodel"
)

// YAMLRenderer writes the documentation model as a YAML stream.
type YAMLRenderer struct{}

func (r *YAMLRenderer) Render(w io.Writer, units []*docmodel.SourceUnit) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(units)
}
