package extract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	csharp "github.com/tree-sitter/tree-sitter-c-sharp/bindings/go"

	"github.com/dotdoc-tools/dotdoc/internal/doccomment"
	"github.com/dotdoc-tools/dotdoc/internal/docmodel"
)

// csharpDocMarker prefixes every line of a C# documentation comment.
const csharpDocMarker = "///"

// csharpExtractor extracts documentation from C# files via tree-sitter.
type csharpExtractor struct {
	language *sitter.Language
}

// NewCSharpExtractor creates the C# grammar front end.
func NewCSharpExtractor() Extractor {
	return &csharpExtractor{
		language: sitter.NewLanguage(csharp.Language()),
	}
}

func (p *csharpExtractor) Grammar() string { return GrammarCSharp }

// ParseFile parses a C# source file.
func (p *csharpExtractor) ParseFile(ctx context.Context, filePath string) (*docmodel.SourceUnit, error) {
	source, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return p.Parse(filePath, source)
}

// Parse extracts documentation from in-memory C# source.
func (p *csharpExtractor) Parse(filePath string, source []byte) (*docmodel.SourceUnit, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(p.language)

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("failed to parse C# file: %s", filePath)
	}
	defer tree.Close()

	unit := docmodel.NewSourceUnit(filePath, GrammarCSharp)
	err := p.walkContainer(tree.RootNode(), source, unit)
	return unit, err
}

// walkContainer classifies the immediate children of the compilation unit or
// of a namespace body, dispatching each declaration to its extractor.
// Namespaces are descended recursively however deeply they nest, and their
// findings merge into the same unit in encounter order. Unrecognized node
// kinds are skipped.
func (p *csharpExtractor) walkContainer(node *sitter.Node, source []byte, unit *docmodel.SourceUnit) error {
	var errs []error
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		switch child.Kind() {
		case "class_declaration":
			cls, err := p.extractClass(child, source, unit.Path)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			unit.Classes = append(unit.Classes, *cls)
		case "interface_declaration":
			td, err := p.extractType(child, source, unit.Path, "interface")
			if err != nil {
				errs = append(errs, err)
				continue
			}
			unit.Interfaces = append(unit.Interfaces, *td)
		case "struct_declaration":
			td, err := p.extractType(child, source, unit.Path, "struct")
			if err != nil {
				errs = append(errs, err)
				continue
			}
			unit.Structs = append(unit.Structs, *td)
		case "enum_declaration":
			ed, err := p.extractEnum(child, source, unit.Path)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			unit.Enums = append(unit.Enums, *ed)
		case "namespace_declaration":
			if body := child.ChildByFieldName("body"); body != nil {
				if err := p.walkContainer(body, source, unit); err != nil {
					errs = append(errs, err)
				}
			}
		case "file_scoped_namespace_declaration":
			// Declarations may hang off the namespace node or remain
			// siblings depending on the grammar version; recursing here
			// covers the former, the outer loop the latter.
			if err := p.walkContainer(child, source, unit); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

// extractType handles the shape shared by interfaces and structs.
func (p *csharpExtractor) extractType(node *sitter.Node, source []byte, path, kind string) (*docmodel.TypeDoc, error) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil, &DeclError{Path: path, Kind: kind}
	}

	td := &docmodel.TypeDoc{
		Name:    nodeText(nameNode, source),
		Summary: p.docBlock(node, source).Text("summary"),
	}

	body := node.ChildByFieldName("body")
	if body == nil {
		body = findChildByType(node, "declaration_list")
	}
	if body != nil {
		p.fillMembers(body, source, td)
	}
	return td, nil
}

// extractClass extends the shared type shape with the base-type list.
func (p *csharpExtractor) extractClass(node *sitter.Node, source []byte, path string) (*docmodel.ClassDoc, error) {
	td, err := p.extractType(node, source, path, "class")
	if err != nil {
		return nil, err
	}

	cls := &docmodel.ClassDoc{TypeDoc: *td, BaseTypes: []string{}}
	if baseList := findChildByType(node, "base_list"); baseList != nil {
		for i := uint(0); i < baseList.ChildCount(); i++ {
			child := baseList.Child(i)
			kind := child.Kind()
			if kind == ":" || kind == "," {
				continue
			}
			if text := nodeText(child, source); text != "" {
				cls.BaseTypes = append(cls.BaseTypes, text)
			}
		}
	}
	return cls, nil
}

// fillMembers partitions a declaration body into properties, fields, and
// methods in encounter order. Kinds with no members stay nil on the TypeDoc.
func (p *csharpExtractor) fillMembers(body *sitter.Node, source []byte, td *docmodel.TypeDoc) {
	var props, fields, methods []docmodel.Member
	for i := uint(0); i < body.ChildCount(); i++ {
		child := body.Child(i)
		switch child.Kind() {
		case "property_declaration":
			if m, ok := p.extractProperty(child, source); ok {
				props = append(props, m)
			}
		case "field_declaration":
			fields = append(fields, p.extractField(child, source)...)
		case "method_declaration":
			if m, ok := p.extractMethod(child, source); ok {
				methods = append(methods, m)
			}
		}
	}
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

func (p *csharpExtractor) extractProperty(node *sitter.Node, source []byte) (docmodel.Member, bool) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return docmodel.Member{}, false
	}

	typeName := nodeText(node.ChildByFieldName("type"), source)
	return docmodel.Member{
		Name:        nodeText(nameNode, source),
		Summary:     p.docBlock(node, source).Text("summary"),
		TypeName:    typeName,
		IsPrimitive: csharpPrimitives.primitive(typeName),
	}, true
}

// extractField expands one field statement into one member per declared
// name. Grouped declarators (int x, y, z;) share the statement's type and
// documentation comment.
func (p *csharpExtractor) extractField(node *sitter.Node, source []byte) []docmodel.Member {
	varDecl := findChildByType(node, "variable_declaration")
	if varDecl == nil {
		return nil
	}

	typeName := nodeText(varDecl.ChildByFieldName("type"), source)
	summary := p.docBlock(node, source).Text("summary")
	primitive := csharpPrimitives.primitive(typeName)

	var members []docmodel.Member
	for _, decl := range findChildrenByType(varDecl, "variable_declarator") {
		nameNode := decl.ChildByFieldName("name")
		if nameNode == nil {
			nameNode = findChildByType(decl, "identifier")
		}
		if nameNode == nil {
			continue
		}
		members = append(members, docmodel.Member{
			Name:        nodeText(nameNode, source),
			Summary:     summary,
			TypeName:    typeName,
			IsPrimitive: primitive,
		})
	}
	return members
}

func (p *csharpExtractor) extractMethod(node *sitter.Node, source []byte) (docmodel.Member, bool) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return docmodel.Member{}, false
	}

	typeNode := node.ChildByFieldName("type")
	if typeNode == nil {
		typeNode = node.ChildByFieldName("returns")
	}
	returnType := nodeText(typeNode, source)

	doc := p.docBlock(node, source)
	returns := doc.Text("returns")
	m := docmodel.Member{
		Name:        nodeText(nameNode, source),
		Summary:     doc.Text("summary"),
		TypeName:    returnType,
		Returns:     &returns,
		IsPrimitive: csharpPrimitives.primitive(returnType),
	}

	if paramsNode := node.ChildByFieldName("parameters"); paramsNode != nil {
		var sigs []string
		for _, param := range findChildrenByType(paramsNode, "parameter") {
			sigs = append(sigs, nodeText(param, source))
		}
		m.AttachParams(sigs)
	}
	return m, true
}

func (p *csharpExtractor) extractEnum(node *sitter.Node, source []byte, path string) (*docmodel.EnumDoc, error) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil, &DeclError{Path: path, Kind: "enum"}
	}

	ed := &docmodel.EnumDoc{
		Name:    nodeText(nameNode, source),
		Summary: p.docBlock(node, source).Text("summary"),
		Members: []docmodel.Member{},
	}

	body := node.ChildByFieldName("body")
	if body == nil {
		body = findChildByType(node, "enum_member_declaration_list")
	}
	if body == nil {
		return ed, nil
	}

	for _, member := range findChildrenByType(body, "enum_member_declaration") {
		memberName := member.ChildByFieldName("name")
		if memberName == nil {
			memberName = findChildByType(member, "identifier")
		}
		if memberName == nil {
			continue
		}
		ed.Members = append(ed.Members, docmodel.Member{
			Name:    nodeText(memberName, source),
			Summary: p.docBlock(member, source).Text("summary"),
		})
	}
	return ed, nil
}

// docBlock collects the contiguous run of /// comment lines immediately
// preceding a declaration. A blank line or an ordinary // comment breaks
// the run.
func (p *csharpExtractor) docBlock(node *sitter.Node, source []byte) doccomment.Block {
	var lines []string
	current := node
	for {
		prev := current.PrevSibling()
		if prev == nil || prev.Kind() != "comment" {
			break
		}
		if current.StartPosition().Row-prev.EndPosition().Row > 1 {
			break
		}
		text := nodeText(prev, source)
		if !strings.HasPrefix(text, csharpDocMarker) {
			break
		}
		lines = append([]string{text}, lines...)
		current = prev
	}
	return doccomment.NewBlock(strings.Join(lines, "\n"), csharpDocMarker)
}
