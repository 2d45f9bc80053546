package generator

import (
	"bytes"
	_ "embed"
	"sort"
	"strings"
	"text/template"

	"github.com/Station-Manager/errors"
	"golang.org/x/tools/imports"
)

//go:embed adapter.go.tmpl
var adapterTemplate string

var tmpl = template.Must(template.New("adapter").Parse(adapterTemplate))

type importLine struct {
	Alias string
	Path  string
}

type renderData struct {
	Adapter
	ImportLines []importLine
}

// Render resolves s and returns the formatted source of its package.
// Syntax errors in the bodies are reported here rather than at build time.
func Render(s Adapter, fixImports bool) ([]byte, error) {
	const op errors.Op = "generator.Render"
	s, err := Resolve(s)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	if err = s.Validate(); err != nil {
		return nil, errors.New(op).Err(err)
	}

	data := renderData{Adapter: s}
	data.Encode = strings.TrimSpace(s.Encode)
	data.Decode = strings.TrimSpace(s.Decode)
	data.ImportLines = importLines(mergeImports([]string{wrapImport}, s.Imports))

	var buf bytes.Buffer
	if err = tmpl.Execute(&buf, data); err != nil {
		return nil, errors.New(op).Err(err)
	}

	src, err := imports.Process(s.Name+".go", buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: !fixImports,
	})
	if err != nil {
		return nil, errors.New(op).Errorf("adapter %s: generated source does not parse: %v", s.Name, err)
	}
	return src, nil
}

func importLines(imps []string) []importLine {
	lines := make([]importLine, 0, len(imps))
	for _, imp := range imps {
		alias, path, err := splitImport(imp)
		if err != nil {
			continue
		}
		lines = append(lines, importLine{Alias: alias, Path: path})
	}
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].Path < lines[j].Path })
	return lines
}
