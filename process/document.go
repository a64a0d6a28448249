package process

import (
	"regexp"
	"strings"

	"github.com/csln-go/csln/render"
)

// DocumentFormat selects process_document's final output shape (§6).
type DocumentFormat int

const (
	DocumentPlain DocumentFormat = iota
	DocumentDjot
	DocumentHTML
)

// citationSpanPattern matches `[@id]` and `[@id, locator]` spans; ids allow
// the word characters, colons, periods, slashes, and hyphens that appear in
// practice (DOI-
// style and slug-style ids alike). Non-matching brackets are left untouched
// since the pattern requires a leading '@'.
var citationSpanPattern = regexp.MustCompile(`\[@([\w:.\/-]+)(?:,\s*([^\]]+))?\]`)

// CitationSpan is one `[@id]`/`[@id, locator]` match within a document, with
// its byte offsets in the source content.
type CitationSpan struct {
	Start, End int
	Citation   Citation
}

// ParseCitationSpans finds every `[@id]`/`[@id, locator]` span in content,
// per §6's document citation syntax.
func ParseCitationSpans(content string) []CitationSpan {
	matches := citationSpanPattern.FindAllStringSubmatchIndex(content, -1)
	out := make([]CitationSpan, 0, len(matches))
	for _, m := range matches {
		start, end := m[0], m[1]
		id := content[m[2]:m[3]]
		locator := ""
		if m[4] >= 0 {
			locator = strings.TrimSpace(content[m[4]:m[5]])
		}
		out = append(out, CitationSpan{start, end, Citation{Items: []CitationItem{{ID: id, Locator: locator}}}})
	}
	return out
}

// ProcessDocument implements process_document (§4.6, §6): replaces every
// `[@id]`/`[@id, locator]` span with its rendered citation, appends a
// bibliography heading and rendered bibliography, and renders in the
// requested document format. A citation id absent from the bibliography is
// left verbatim in the output rather than failing the whole document.
func (p *Processor) ProcessDocument(content string, docFormat DocumentFormat) string {
	f := formatFor(docFormat)

	var sb strings.Builder
	lastIdx := 0
	for _, span := range ParseCitationSpans(content) {
		sb.WriteString(content[lastIdx:span.Start])
		rendered, err := p.ProcessCitation(span.Citation, f)
		if err != nil {
			sb.WriteString(content[span.Start:span.End])
		} else {
			sb.WriteString(rendered)
		}
		lastIdx = span.End
	}
	sb.WriteString(content[lastIdx:])

	sb.WriteString("\n\n# Bibliography\n\n")
	sb.WriteString(p.RenderBibliography(f))

	return sb.String()
}

// formatFor picks the render.Format a DocumentFormat renders citations and
// the bibliography with; DocumentHTML renders directly with the HTML format
// rather than converting Djot markup through a separate HTML converter,
// since the corpus carries no djot-to-HTML library (DESIGN.md).
func formatFor(f DocumentFormat) render.Format {
	switch f {
	case DocumentHTML:
		return render.HTML{}
	case DocumentDjot:
		return render.Djot{}
	default:
		return render.PlainText{}
	}
}
