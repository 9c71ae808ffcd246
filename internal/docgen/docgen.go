// Package docgen renders an exported schema document as markdown
// reference documentation.
package docgen

import (
	_ "embed"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/clispect/clispect/internal/cerrors"
	"github.com/clispect/clispect/internal/export"
)

//go:embed markdown.tmpl
var defaultTemplate string

// DefaultTemplate returns the built-in markdown template.
func DefaultTemplate() string {
	return defaultTemplate
}

// Markdown renders the document with the built-in template.
func Markdown(doc *export.Document) (string, error) {
	return MarkdownWithTemplate(doc, defaultTemplate)
}

// MarkdownWithTemplate renders the document with a caller-supplied
// template. The template executes against the export.Document wire
// model and has the sprig function map available.
func MarkdownWithTemplate(doc *export.Document, tmplText string) (string, error) {
	tmpl, err := template.New("docs").Funcs(sprig.TxtFuncMap()).Parse(tmplText)
	if err != nil {
		return "", cerrors.NewRenderError("docs", "failed to parse docs template", err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, doc); err != nil {
		return "", cerrors.NewRenderError("docs", "failed to render docs template", err)
	}
	return b.String(), nil
}
