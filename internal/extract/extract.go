// Package extract turns parsed source trees into normalized documentation
// models. One Extractor exists per supported grammar; both produce the same
// SourceUnit schema, so callers treat them interchangeably.
package extract

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dotdoc-tools/dotdoc/internal/docmodel"
)

// Grammar identifiers.
const (
	GrammarCSharp = "csharp"
	GrammarVB     = "vbnet"
)

// Extractor is one grammar front end.
type Extractor interface {
	// Grammar names the source grammar this extractor handles.
	Grammar() string

	// ParseFile reads and extracts a single source file. A non-nil
	// SourceUnit may accompany a non-nil error; it then holds the
	// declarations collected before the failure.
	ParseFile(ctx context.Context, filePath string) (*docmodel.SourceUnit, error)

	// Parse extracts from in-memory source.
	Parse(filePath string, source []byte) (*docmodel.SourceUnit, error)
}

// ForFile selects the extractor for a file by extension. The second return
// is false for files in no supported grammar.
func ForFile(path string) (Extractor, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cs":
		return NewCSharpExtractor(), true
	case ".vb":
		return NewVBExtractor(), true
	}
	return nil, false
}

// Extensions lists the file extensions of all supported grammars.
func Extensions() []string {
	return []string{".cs", ".vb"}
}

// DeclError reports a single declaration the extractor could not introspect.
// Extraction of the rest of the source unit continues.
type DeclError struct {
	Path string
	Kind string
	Name string
}

func (e *DeclError) Error() string {
	name := e.Name
	if name == "" {
		name = "(unnamed)"
	}
	return fmt.Sprintf("%s: cannot extract %s %s", e.Path, e.Kind, name)
}
