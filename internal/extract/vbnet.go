package extract

import (
	"context"
	"errors"
	"os"
	"regexp"
	"strings"

	"github.com/dotdoc-tools/dotdoc/internal/doccomment"
	"github.com/dotdoc-tools/dotdoc/internal/docmodel"
)

// vbDocMarker prefixes every line of a VB documentation comment.
const vbDocMarker = "'''"

// No tree-sitter grammar exists for VB.NET, so this adapter carries its own
// line-oriented front end. VB's block structure is line-delimited
// (Class ... End Class), which a scanner over logical lines captures
// faithfully for declaration-level extraction.
type vbExtractor struct{}

// NewVBExtractor creates the VB.NET grammar front end.
func NewVBExtractor() Extractor {
	return &vbExtractor{}
}

func (p *vbExtractor) Grammar() string { return GrammarVB }

var (
	vbModifiers = `(?:Public\s+|Private\s+|Protected\s+|Friend\s+|Shared\s+|Shadows\s+|Overridable\s+|Overrides\s+|MustOverride\s+|NotOverridable\s+|Overloads\s+|Partial\s+|MustInherit\s+|NotInheritable\s+|Async\s+|Iterator\s+|Default\s+|ReadOnly\s+|WriteOnly\s+|WithEvents\s+|Dim\s+|Const\s+)`

	vbNamespaceRe = regexp.MustCompile(`(?i)^Namespace\s+[\w.]+`)
	vbTypeRe      = regexp.MustCompile(`(?i)^` + vbModifiers + `*(Class|Interface|Structure|Enum)\s+(\w+)`)
	vbEndRe       = regexp.MustCompile(`(?i)^End\s+(\w+)`)
	vbInheritsRe  = regexp.MustCompile(`(?i)^Inherits\s+(.+)$`)
	vbImplRe      = regexp.MustCompile(`(?i)^Implements\s+(.+)$`)
	// Parameterized (indexer-style) properties fail the empty-parens
	// alternative and are skipped, like indexer declarations on the C# side.
	vbPropertyRe = regexp.MustCompile(`(?i)^` + vbModifiers + `*Property\s+(\w+)\s*(?:\(\s*\))?\s*As\s+(.+?)(?:\s*=.*)?\s*(?:Implements\s+.*)?$`)
	vbFunctionRe = regexp.MustCompile(`(?i)^` + vbModifiers + `*Function\s+(\w+)\s*\((.*?)\)\s*(?:As\s+(.+?))?\s*(?:Implements\s+.*)?$`)
	vbSubRe      = regexp.MustCompile(`(?i)^` + vbModifiers + `*Sub\s+(\w+)\s*\((.*?)\)\s*(?:Implements\s+.*)?$`)
	vbOperatorRe = regexp.MustCompile(`(?i)^` + vbModifiers + `*Operator\b`)
	vbFieldRe    = regexp.MustCompile(`(?i)^` + vbModifiers + `+(\w+(?:\s*,\s*\w+)*)\s+As\s+(.+?)(?:\s*=.*)?$`)
	vbEnumItemRe = regexp.MustCompile(`(?i)^(\w+)\s*(?:=.*)?$`)
	vbAccessorRe = regexp.MustCompile(`(?i)^(?:Public\s+|Private\s+|Protected\s+|Friend\s+)*(Get|Set)\b`)
)

// ParseFile parses a VB source file.
func (p *vbExtractor) ParseFile(ctx context.Context, filePath string) (*docmodel.SourceUnit, error) {
	source, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return p.Parse(filePath, source)
}

// Parse extracts documentation from in-memory VB source.
func (p *vbExtractor) Parse(filePath string, source []byte) (*docmodel.SourceUnit, error) {
	unit := docmodel.NewSourceUnit(filePath, GrammarVB)
	s := newVBScanner(string(source))
	err := p.walkContainer(s, unit, false)
	return unit, err
}

// walkContainer consumes logical lines until End Namespace (or end of file
// at the top level), dispatching type headers. Namespace blocks nest
// arbitrarily; their findings merge into the same unit in encounter order.
// Unrecognized lines are skipped.
func (p *vbExtractor) walkContainer(s *vbScanner, unit *docmodel.SourceUnit, inNamespace bool) error {
	var errs []error
	var doc []string
	for s.more() {
		line := s.next()
		switch {
		case line == "":
			doc = nil
		case strings.HasPrefix(line, vbDocMarker):
			doc = append(doc, line)
		case vbNamespaceRe.MatchString(line):
			if err := p.walkContainer(s, unit, true); err != nil {
				errs = append(errs, err)
			}
			doc = nil
		case inNamespace && matchesEnd(line, "Namespace"):
			return errors.Join(errs...)
		default:
			if m := vbTypeRe.FindStringSubmatch(line); m != nil {
				block := doccomment.NewBlock(strings.Join(doc, "\n"), vbDocMarker)
				p.dispatchType(s, unit, strings.ToLower(m[1]), m[2], block, &errs)
			}
			doc = nil
		}
	}
	return errors.Join(errs...)
}

func (p *vbExtractor) dispatchType(s *vbScanner, unit *docmodel.SourceUnit, kind, name string, doc doccomment.Block, errs *[]error) {
	switch kind {
	case "class":
		cls, err := p.extractClass(s, unit.Path, name, doc)
		if err != nil {
			*errs = append(*errs, err)
		}
		if cls != nil {
			unit.Classes = append(unit.Classes, *cls)
		}
	case "interface":
		td, err := p.extractType(s, unit.Path, name, doc, "Interface", false)
		if err != nil {
			*errs = append(*errs, err)
		}
		if td != nil {
			unit.Interfaces = append(unit.Interfaces, *td)
		}
	case "structure":
		td, err := p.extractType(s, unit.Path, name, doc, "Structure", true)
		if err != nil {
			*errs = append(*errs, err)
		}
		if td != nil {
			unit.Structs = append(unit.Structs, *td)
		}
	case "enum":
		unit.Enums = append(unit.Enums, *p.extractEnum(s, name, doc))
	}
}

// extractClass reads a Class body. Inherits and Implements clauses feed the
// base-type list in declaration order.
func (p *vbExtractor) extractClass(s *vbScanner, path, name string, doc doccomment.Block) (*docmodel.ClassDoc, error) {
	td, baseTypes, err := p.typeBody(s, path, name, doc, "Class", true)
	if td == nil {
		return nil, err
	}
	cls := &docmodel.ClassDoc{TypeDoc: *td, BaseTypes: baseTypes}
	return cls, err
}

// extractType reads an Interface or Structure body; their base clauses are
// not part of the result model.
func (p *vbExtractor) extractType(s *vbScanner, path, name string, doc doccomment.Block, terminator string, hasBodies bool) (*docmodel.TypeDoc, error) {
	td, _, err := p.typeBody(s, path, name, doc, terminator, hasBodies)
	return td, err
}

// typeBody consumes a type block through its End line, partitioning members
// into properties, fields, and methods. hasBodies tells whether Function,
// Sub, and Property members carry implementation blocks to skip over
// (false inside interfaces). Member kinds with zero matches stay nil.
func (p *vbExtractor) typeBody(s *vbScanner, path, name string, doc doccomment.Block, terminator string, hasBodies bool) (*docmodel.TypeDoc, []string, error) {
	td := &docmodel.TypeDoc{
		Name:    name,
		Summary: doc.Text("summary"),
	}
	baseTypes := []string{}

	var props, fields, methods []docmodel.Member
	var pending []string
	var errs []error

	for s.more() {
		line := s.next()
		switch {
		case line == "":
			pending = nil
			continue
		case strings.HasPrefix(line, vbDocMarker):
			pending = append(pending, line)
			continue
		case matchesEnd(line, terminator):
			finalizeTypeDoc(td, props, fields, methods)
			return td, baseTypes, errors.Join(errs...)
		}

		block := doccomment.NewBlock(strings.Join(pending, "\n"), vbDocMarker)
		pending = nil

		if m := vbInheritsRe.FindStringSubmatch(line); m != nil {
			baseTypes = append(baseTypes, splitTopLevel(m[1])...)
			continue
		}
		if m := vbImplRe.FindStringSubmatch(line); m != nil {
			baseTypes = append(baseTypes, splitTopLevel(m[1])...)
			continue
		}
		if m := vbTypeRe.FindStringSubmatch(line); m != nil {
			// Nested type declarations are not part of the result model;
			// skip the whole block so its members do not leak out here.
			s.skipBlock(m[1])
			continue
		}
		if m := vbPropertyRe.FindStringSubmatch(line); m != nil {
			props = append(props, p.propertyMember(m[1], m[2], block))
			if hasBodies && p.expandedProperty(s) {
				s.skipBlock("Property")
			}
			continue
		}
		if m := vbFunctionRe.FindStringSubmatch(line); m != nil {
			methods = append(methods, p.methodMember(m[1], m[2], m[3], block))
			if hasBodies && !isAbstractLine(line) {
				s.skipBlock("Function")
			}
			continue
		}
		if m := vbSubRe.FindStringSubmatch(line); m != nil {
			if strings.EqualFold(m[1], "New") {
				// Constructors are not documented members.
				if hasBodies {
					s.skipBlock("Sub")
				}
				continue
			}
			methods = append(methods, p.methodMember(m[1], m[2], "", block))
			if hasBodies && !isAbstractLine(line) {
				s.skipBlock("Sub")
			}
			continue
		}
		if vbOperatorRe.MatchString(line) {
			if hasBodies {
				s.skipBlock("Operator")
			}
			continue
		}
		if m := vbFieldRe.FindStringSubmatch(line); m != nil {
			fields = append(fields, p.fieldMembers(m[1], m[2], block)...)
			continue
		}
		// Anything else (events, delegates, accessor lines) is skipped.
	}

	finalizeTypeDoc(td, props, fields, methods)
	errs = append(errs, &DeclError{Path: path, Kind: strings.ToLower(terminator), Name: name})
	return td, baseTypes, errors.Join(errs...)
}

// finalizeTypeDoc attaches member sequences, leaving kinds with zero
// members absent rather than empty.
func finalizeTypeDoc(td *docmodel.TypeDoc, props, fields, methods []docmodel.Member) {
	if len(props) > 0 {
		td.Properties = props
	}
	if len(fields) > 0 {
		td.Fields = fields
	}
	if len(methods) > 0 {
		td.Methods = methods
	}
}

func (p *vbExtractor) propertyMember(name, typeName string, doc doccomment.Block) docmodel.Member {
	typeName = strings.TrimSpace(typeName)
	return docmodel.Member{
		Name:        name,
		Summary:     doc.Text("summary"),
		TypeName:    typeName,
		IsPrimitive: vbPrimitives.primitive(typeName),
	}
}

// fieldMembers expands one field statement into one member per declared
// name. Grouped names (Dim a, b, c As Integer) share the statement's type
// and documentation comment.
func (p *vbExtractor) fieldMembers(names, typeName string, doc doccomment.Block) []docmodel.Member {
	typeName = strings.TrimSpace(typeName)
	summary := doc.Text("summary")
	primitive := vbPrimitives.primitive(typeName)

	var members []docmodel.Member
	for _, name := range strings.Split(names, ",") {
		members = append(members, docmodel.Member{
			Name:        strings.TrimSpace(name),
			Summary:     summary,
			TypeName:    typeName,
			IsPrimitive: primitive,
		})
	}
	return members
}

// methodMember builds a method record. Subs declare no return type, so
// their TypeName stays empty and classifies composite.
func (p *vbExtractor) methodMember(name, params, returnType string, doc doccomment.Block) docmodel.Member {
	returnType = strings.TrimSpace(returnType)
	returns := doc.Text("returns")
	m := docmodel.Member{
		Name:        name,
		Summary:     doc.Text("summary"),
		TypeName:    returnType,
		Returns:     &returns,
		IsPrimitive: vbPrimitives.primitive(returnType),
	}
	m.AttachParams(splitTopLevel(params))
	return m
}

// extractEnum reads an Enum body. Members carry no type information.
func (p *vbExtractor) extractEnum(s *vbScanner, name string, doc doccomment.Block) *docmodel.EnumDoc {
	ed := &docmodel.EnumDoc{
		Name:    name,
		Summary: doc.Text("summary"),
		Members: []docmodel.Member{},
	}

	var pending []string
	for s.more() {
		line := s.next()
		switch {
		case line == "":
			pending = nil
		case strings.HasPrefix(line, vbDocMarker):
			pending = append(pending, line)
		case matchesEnd(line, "Enum"):
			return ed
		default:
			if m := vbEnumItemRe.FindStringSubmatch(line); m != nil {
				block := doccomment.NewBlock(strings.Join(pending, "\n"), vbDocMarker)
				ed.Members = append(ed.Members, docmodel.Member{
					Name:    m[1],
					Summary: block.Text("summary"),
				})
			}
			pending = nil
		}
	}
	return ed
}

// expandedProperty peeks ahead for a Get or Set accessor line, which marks
// a property with an implementation block rather than an auto-property.
func (p *vbExtractor) expandedProperty(s *vbScanner) bool {
	save := s.pos
	for s.more() {
		line := s.next()
		if line == "" || strings.HasPrefix(line, "'") {
			continue
		}
		s.pos = save
		return vbAccessorRe.MatchString(line)
	}
	s.pos = save
	return false
}

// isAbstractLine reports a member declared without a body.
func isAbstractLine(line string) bool {
	lower := strings.ToLower(line)
	return strings.Contains(lower, "mustoverride")
}

// matchesEnd reports an "End <keyword>" line for the given block keyword.
func matchesEnd(line, keyword string) bool {
	m := vbEndRe.FindStringSubmatch(line)
	return m != nil && strings.EqualFold(m[1], keyword)
}

// splitTopLevel splits a comma-separated list while respecting nesting
// parentheses, so generic types like List(Of String) stay intact. Each
// entry is returned as written, trimmed.
func splitTopLevel(list string) []string {
	if strings.TrimSpace(list) == "" {
		return nil
	}

	var parts []string
	depth := 0
	start := 0
	for i, r := range list {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(list[start:i]))
				start = i + 1
			}
		}
	}
	parts = append(parts, strings.TrimSpace(list[start:]))
	return parts
}

// vbScanner iterates logical lines: trimmed, with explicit " _"
// continuations joined.
type vbScanner struct {
	lines []string
	pos   int
}

func newVBScanner(source string) *vbScanner {
	return &vbScanner{lines: strings.Split(source, "\n")}
}

func (s *vbScanner) more() bool {
	return s.pos < len(s.lines)
}

// next returns the next logical line. A line ending in the continuation
// marker " _" is joined with its successors.
func (s *vbScanner) next() string {
	line := strings.TrimSpace(s.lines[s.pos])
	s.pos++
	for strings.HasSuffix(line, " _") && s.pos < len(s.lines) {
		line = strings.TrimSuffix(line, "_")
		line = strings.TrimSpace(line) + " " + strings.TrimSpace(s.lines[s.pos])
		s.pos++
	}
	return line
}

// skipBlock consumes lines through the first "End <keyword>" line.
// Declaration-level extraction does not look inside bodies, so the first
// terminator is taken as the block end.
func (s *vbScanner) skipBlock(keyword string) {
	for s.more() {
		if matchesEnd(s.next(), keyword) {
			return
		}
	}
}
