package output

import (
	"strings"

	"github.com/standardnine/s9glossary/pkg/glossary/models"
)

const (
	// Namespace is the S9ML XML namespace.
	Namespace = "http://www.standardnine.com/s9ml"
	// Designation is the fixed designation of a glossary root element.
	Designation = "Glossary"

	xmlDeclaration = `<?xml version="1.0" encoding="UTF-8"?>`
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// Escape replaces &, <, > and " with their XML entities.
func Escape(s string) string {
	return xmlEscaper.Replace(s)
}

// RenderEntry serializes a single glossentry fragment. With escape unset
// the term, slug and description are emitted verbatim.
func RenderEntry(e models.Entry, escape bool) string {
	term, slug, desc := e.Term, e.Slug, e.Description
	if escape {
		term, slug, desc = Escape(term), Escape(slug), Escape(desc)
	}

	var b strings.Builder
	b.WriteString("\n<glossentry data-uuid=\"" + e.ID + "\">\n")
	b.WriteString("\t<term key=\"" + slug + "\">" + term + "</term>\n")
	b.WriteString("\t<definition>\n")
	b.WriteString("\t\t<title>" + term + "</title>\n")
	b.WriteString("\t\t<text>" + desc + "</text>\n")
	b.WriteString("\t</definition>\n")
	b.WriteString("</glossentry>")
	return b.String()
}

// Render wraps the document's entry fragments in the glossary envelope.
func Render(doc models.Document) string {
	var b strings.Builder
	b.WriteString(xmlDeclaration)
	b.WriteString(`<glossary xmlns="` + Namespace + `" designation="` + Designation + `" data-uuid="` + doc.ID + `">`)
	for _, entry := range doc.Entries {
		b.WriteString(entry)
	}
	b.WriteString("\n</glossary>")
	return b.String()
}
