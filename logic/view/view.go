// Package view holds the HTML pages of the proposal workflow.
package view

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"mapca-proposal/logic/proposal"
	"mapca-proposal/logs"
	"mapca-proposal/types"
)

//go:embed templates/*.html
var files embed.FS

var (
	md     = goldmark.New(goldmark.WithExtensions(extension.Linkify, extension.Strikethrough))
	policy = bluemonday.UGCPolicy()
)

// Page is what every template receives.
type Page struct {
	View      string
	Snapshot  types.WorkflowSnapshot
	Notice    string
	MaxUpload int
}

func NewPage(snap types.WorkflowSnapshot) Page {
	view := snap.ActiveView()
	if view == "" {
		view = string(types.StepInput)
	}
	return Page{View: view, Snapshot: snap}
}

// Templates parses the embedded pages. The entry template is "index.html".
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(files, "templates/*.html")
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"brl":      proposal.FormatBRL,
		"markdown": Markdown,
	}
}

// Markdown renders model prose as sanitized HTML.
func Markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		logs.L().Warnf(">>> [View] markdown: %v", err)
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(policy.SanitizeBytes(buf.Bytes()))
}
