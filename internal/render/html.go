package render

import (
	"html/template"
	"io"

	"github.com/dotdoc-tools/dotdoc/internal/docmodel"
)

// HTMLRenderer writes a single static HTML page. Missing documentation is
// shown as a muted note, and member sections that do not apply to a type
// are left out of the page.
type HTMLRenderer struct {
	tmpl *template.Template
}

// NewHTMLRenderer parses the page template once.
func NewHTMLRenderer() (*HTMLRenderer, error) {
	tmpl, err := template.New("page").Parse(htmlPage)
	if err != nil {
		return nil, err
	}
	return &HTMLRenderer{tmpl: tmpl}, nil
}

func (r *HTMLRenderer) Render(w io.Writer, units []*docmodel.SourceUnit) error {
	return r.tmpl.Execute(w, units)
}

const htmlPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>dotdoc</title>
<style>
body { font-family: sans-serif; margin: 2em auto; max-width: 60em; color: #222; }
h1 { border-bottom: 2px solid #ccc; }
h2 { margin-top: 2em; }
h3 { color: #355; }
table { border-collapse: collapse; width: 100%; margin: 0.5em 0 1.5em; }
th, td { border: 1px solid #ddd; padding: 0.4em 0.7em; text-align: left; }
th { background: #f4f4f4; }
code { background: #f0f0f0; padding: 0 0.2em; }
.missing { color: #999; font-style: italic; }
</style>
</head>
<body>
{{range .}}
<h1>{{.Path}}</h1>
{{range .Classes}}
<h2>Class {{.Name}}</h2>
{{template "summary" .Summary}}
{{if .BaseTypes}}<p>Inherits/implements: {{range $i, $b := .BaseTypes}}{{if $i}}, {{end}}<code>{{$b}}</code>{{end}}</p>{{end}}
{{template "members" .}}
{{end}}
{{range .Interfaces}}
<h2>Interface {{.Name}}</h2>
{{template "summary" .Summary}}
{{template "members" .}}
{{end}}
{{range .Structs}}
<h2>Struct {{.Name}}</h2>
{{template "summary" .Summary}}
{{template "members" .}}
{{end}}
{{range .Enums}}
<h2>Enum {{.Name}}</h2>
{{template "summary" .Summary}}
<h3>Members</h3>
<table>
<tr><th>Name</th><th>Summary</th></tr>
{{range .Members}}<tr><td><code>{{.Name}}</code></td><td>{{template "doc" .Summary}}</td></tr>
{{end}}
</table>
{{end}}
{{end}}
</body>
</html>
{{define "summary"}}{{if .Missing}}<p class="missing">No documentation.</p>{{else}}<p>{{.String}}</p>{{end}}{{end}}
{{define "doc"}}{{if .Missing}}<span class="missing">n/a</span>{{else}}{{.String}}{{end}}{{end}}
{{define "members"}}
{{if .Properties}}
<h3>Properties</h3>
<table>
<tr><th>Name</th><th>Type</th><th>Primitive</th><th>Summary</th></tr>
{{range .Properties}}<tr><td><code>{{.Name}}</code></td><td><code>{{.TypeName}}</code></td><td>{{.IsPrimitive}}</td><td>{{template "doc" .Summary}}</td></tr>
{{end}}
</table>
{{end}}
{{if .Fields}}
<h3>Fields</h3>
<table>
<tr><th>Name</th><th>Type</th><th>Primitive</th><th>Summary</th></tr>
{{range .Fields}}<tr><td><code>{{.Name}}</code></td><td><code>{{.TypeName}}</code></td><td>{{.IsPrimitive}}</td><td>{{template "doc" .Summary}}</td></tr>
{{end}}
</table>
{{end}}
{{if .Methods}}
<h3>Methods</h3>
<table>
<tr><th>Name</th><th>Returns</th><th>Parameters</th><th>Summary</th><th>Returns doc</th></tr>
{{range .Methods}}<tr><td><code>{{.Name}}</code></td><td><code>{{.TypeName}}</code></td><td>{{range $i, $p := .Params}}{{if $i}}, {{end}}<code>{{$p}}</code>{{end}}</td><td>{{template "doc" .Summary}}</td><td>{{if .Returns}}{{template "doc" .Returns}}{{end}}</td></tr>
{{end}}
</table>
{{end}}
{{end}}
`
