package render

// Test Plan for Renderers:
// - ForFormat returns a renderer for json, yaml, and html
// - ForFormat rejects unknown format names
// - JSON output keeps the " NO <TAG> " placeholder text verbatim
// - JSON output omits absent member sequences and keeps empty declared ones
// - JSON output omits params for parameterless methods
// - YAML output round-trips names and placeholder text
// - HTML output includes type names and marks missing documentation

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotdoc-tools/dotdoc/internal/docmodel"
)

func sampleUnits() []*docmodel.SourceUnit {
	returns := docmodel.Documented("Weight in kilograms.")
	method := docmodel.Member{
		Name:        "TotalWeight",
		Summary:     docmodel.Documented("Computes the total weight."),
		TypeName:    "double",
		Returns:     &returns,
		IsPrimitive: true,
	}
	method.AttachParams([]string{"bool includePacking"})

	noReturns := docmodel.NoDoc("returns")
	bare := docmodel.Member{
		Name:        "Clear",
		Summary:     docmodel.NoDoc("summary"),
		TypeName:    "void",
		Returns:     &noReturns,
		IsPrimitive: true,
	}

	unit := docmodel.NewSourceUnit("src/Warehouse.cs", "csharp")
	unit.Classes = append(unit.Classes, docmodel.ClassDoc{
		TypeDoc: docmodel.TypeDoc{
			Name:    "Warehouse",
			Summary: docmodel.Documented("Tracks items held in a warehouse."),
			Methods: []docmodel.Member{method, bare},
		},
		BaseTypes: []string{"IAuditable"},
	})
	unit.Enums = append(unit.Enums, docmodel.EnumDoc{
		Name:    "ShipmentState",
		Summary: docmodel.NoDoc("summary"),
		Members: []docmodel.Member{
			{Name: "Pending", Summary: docmodel.Documented("Waiting for pickup.")},
		},
	})
	return []*docmodel.SourceUnit{unit}
}

func TestForFormat(t *testing.T) {
	t.Parallel()

	for _, format := range []string{"json", "yaml", "html"} {
		r, err := ForFormat(format)
		require.NoError(t, err, format)
		require.NotNil(t, r, format)
	}

	_, err := ForFormat("xml")
	assert.Error(t, err)
}

func TestJSONRenderer(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, (&JSONRenderer{}).Render(&buf, sampleUnits()))
	out := buf.String()

	assert.Contains(t, out, `"Warehouse"`)
	assert.Contains(t, out, `" NO SUMMARY "`)
	assert.Contains(t, out, `" NO RETURNS "`)
	assert.Contains(t, out, `"Weight in kilograms."`)

	// The class declares no properties or fields; those keys are absent.
	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	classes := decoded[0]["classes"].([]interface{})
	require.Len(t, classes, 1)
	class := classes[0].(map[string]interface{})
	assert.NotContains(t, class, "properties")
	assert.NotContains(t, class, "fields")
	assert.Contains(t, class, "methods")

	// Parameterless methods carry no params key at all.
	methods := class["methods"].([]interface{})
	require.Len(t, methods, 2)
	assert.Contains(t, methods[0].(map[string]interface{}), "params")
	assert.NotContains(t, methods[1].(map[string]interface{}), "params")

	// Interfaces were declared (empty), so the key is present.
	assert.Contains(t, decoded[0], "interfaces")
}

func TestYAMLRenderer(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, (&YAMLRenderer{}).Render(&buf, sampleUnits()))
	out := buf.String()

	assert.Contains(t, out, "name: Warehouse")
	assert.Contains(t, out, "grammar: csharp")
	assert.Contains(t, out, " NO SUMMARY ")
	assert.NotContains(t, out, "properties:")
}

func TestHTMLRenderer(t *testing.T) {
	t.Parallel()

	r, err := NewHTMLRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, sampleUnits()))
	out := buf.String()

	assert.True(t, strings.Contains(out, "Class Warehouse"))
	assert.True(t, strings.Contains(out, "Enum ShipmentState"))
	assert.Contains(t, out, "Tracks items held in a warehouse.")
	// The undocumented enum renders the muted note, not the placeholder.
	assert.Contains(t, out, `class="missing"`)
	assert.NotContains(t, out, " NO SUMMARY ")
}
