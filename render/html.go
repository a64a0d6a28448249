package render

import (
	"html"
	"strings"

	"github.com/csln-go/csln/style"
)

// HTML renders `<i>`, `<b>`, `<span>`, `<a>`, and `<div class="csln-entry">`
// markup, escaping raw text per the html package.
type HTML struct{}

func (HTML) Text(raw string) string { return html.EscapeString(raw) }

func (HTML) Join(items []string, delim string) string {
	return strings.Join(items, delim)
}

func (HTML) Emph(body string) string { return "<i>" + body + "</i>" }

func (HTML) Strong(body string) string { return "<b>" + body + "</b>" }

func (HTML) SmallCaps(body string) string {
	return `<span class="smallcaps">` + body + "</span>"
}

func (HTML) Quote(body string) string { return "&ldquo;" + body + "&rdquo;" }

func (HTML) Affix(prefix, body, suffix string) string {
	if body == "" {
		return ""
	}
	return prefix + body + suffix
}

func (HTML) WrapPunctuation(kind style.WrapKind, body string) string {
	switch kind {
	case style.WrapParentheses:
		return "(" + body + ")"
	case style.WrapBrackets:
		return "[" + body + "]"
	default:
		return body
	}
}

func (HTML) Semantic(class, body string) string {
	if body == "" {
		return ""
	}
	return `<span class="` + class + `">` + body + "</span>"
}

func (HTML) Link(url, body string) string {
	return `<a href="` + url + `">` + body + "</a>"
}

func (HTML) Entry(id, body string) string {
	return `<div class="csln-entry" id="ref-` + id + `">` + body + "</div>"
}

func (HTML) Finish(body string) string {
	return `<div class="csln-bibliography">` + body + "</div>"
}
