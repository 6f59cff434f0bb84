// Package docmodel defines the normalized documentation model produced by
// the extraction engine, one SourceUnit per source file.
package docmodel

// Member describes one documented member of a type declaration: a field,
// property, method, or enum member.
type Member struct {
	Name string `json:"name" yaml:"name"`

	Summary DocText `json:"summary" yaml:"summary"`

	// TypeName is the type as written in source. Empty for enum members.
	TypeName string `json:"type,omitempty" yaml:"type,omitempty"`

	// Returns is the cleaned "returns" documentation. Methods only.
	Returns *DocText `json:"returns,omitempty" yaml:"returns,omitempty"`

	// IsPrimitive is derived from TypeName alone via the active grammar's
	// primitive table. Always false when TypeName is empty.
	IsPrimitive bool `json:"primitive" yaml:"primitive"`

	// Params holds each parameter's full written signature. Methods only,
	// nil when the method takes no parameters.
	Params []string `json:"params,omitempty" yaml:"params,omitempty"`
}

// AttachParams sets the written parameter signatures on a method member.
// Members are otherwise immutable once built.
func (m *Member) AttachParams(params []string) {
	if len(params) > 0 {
		m.Params = params
	}
}

// TypeDoc is the shared shape of class, interface, and struct documentation.
// A nil member slice means the type declared no members of that kind;
// renderers treat that differently from a present-but-empty slice.
type TypeDoc struct {
	Name       string   `json:"name" yaml:"name"`
	Summary    DocText  `json:"summary" yaml:"summary"`
	Properties []Member `json:"properties,omitempty" yaml:"properties,omitempty"`
	Fields     []Member `json:"fields,omitempty" yaml:"fields,omitempty"`
	Methods    []Member `json:"methods,omitempty" yaml:"methods,omitempty"`
}

// ClassDoc is a documented class. BaseTypes lists the written base-type
// clauses in declaration order, empty when none are declared.
type ClassDoc struct {
	TypeDoc   `yaml:",inline"`
	BaseTypes []string `json:"baseTypes" yaml:"baseTypes"`
}

// EnumDoc is a documented enum. Members is always present; enum members
// carry no type or returns information.
type EnumDoc struct {
	Name    string   `json:"name" yaml:"name"`
	Summary DocText  `json:"summary" yaml:"summary"`
	Members []Member `json:"members" yaml:"members"`
}

// SourceUnit aggregates everything extracted from one source file. Each
// sequence preserves encounter order in the source tree.
type SourceUnit struct {
	Path       string     `json:"path" yaml:"path"`
	Grammar    string     `json:"grammar" yaml:"grammar"`
	Classes    []ClassDoc `json:"classes" yaml:"classes"`
	Interfaces []TypeDoc  `json:"interfaces" yaml:"interfaces"`
	Structs    []TypeDoc  `json:"structs" yaml:"structs"`
	Enums      []EnumDoc  `json:"enums" yaml:"enums"`
}

// NewSourceUnit returns an empty result for the given file and grammar.
func NewSourceUnit(path, grammar string) *SourceUnit {
	return &SourceUnit{
		Path:       path,
		Grammar:    grammar,
		Classes:    []ClassDoc{},
		Interfaces: []TypeDoc{},
		Structs:    []TypeDoc{},
		Enums:      []EnumDoc{},
	}
}

// Empty reports whether nothing was extracted from the unit.
func (u *SourceUnit) Empty() bool {
	return len(u.Classes) == 0 && len(u.Interfaces) == 0 &&
		len(u.Structs) == 0 && len(u.Enums) == 0
}
