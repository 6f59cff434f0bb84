package extract

import "strings"

// primitiveTable is the fixed set of primitive type spellings for one
// grammar. Lookup is case-insensitive exact match; any other name,
// including generic, array, and qualified names, is composite.
type primitiveTable map[string]bool

func (t primitiveTable) primitive(typeName string) bool {
	if typeName == "" {
		return false
	}
	return t[strings.ToLower(typeName)]
}

var csharpPrimitives = primitiveTable{
	"bool":    true,
	"byte":    true,
	"sbyte":   true,
	"char":    true,
	"decimal": true,
	"double":  true,
	"float":   true,
	"int":     true,
	"uint":    true,
	"long":    true,
	"ulong":   true,
	"short":   true,
	"ushort":  true,
	"void":    true,
}

// VB spells its primitives differently; Nothing is the no-value marker.
var vbPrimitives = primitiveTable{
	"boolean":  true,
	"byte":     true,
	"sbyte":    true,
	"char":     true,
	"date":     true,
	"decimal":  true,
	"double":   true,
	"single":   true,
	"integer":  true,
	"uinteger": true,
	"long":     true,
	"ulong":    true,
	"short":    true,
	"ushort":   true,
	"nothing":  true,
}

// IsPrimitive classifies a written type name under the given grammar. It is
// a pure function of its two arguments.
func IsPrimitive(grammar, typeName string) bool {
	switch grammar {
	case GrammarCSharp:
		return csharpPrimitives.primitive(typeName)
	case GrammarVB:
		return vbPrimitives.primitive(typeName)
	}
	return false
}
