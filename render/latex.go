package render

import (
	"strings"

	"github.com/csln-go/csln/style"
)

// LaTeX renders `\textit{}`, `\textbf{}`, `\textsc{}`, and `\href{}{}`,
// escaping the ten characters LaTeX treats specially in ordinary text.
type LaTeX struct{}

var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

func (LaTeX) Text(raw string) string { return latexEscaper.Replace(raw) }

func (LaTeX) Join(items []string, delim string) string {
	return strings.Join(items, delim)
}

func (LaTeX) Emph(body string) string { return `\textit{` + body + `}` }

func (LaTeX) Strong(body string) string { return `\textbf{` + body + `}` }

func (LaTeX) SmallCaps(body string) string { return `\textsc{` + body + `}` }

func (LaTeX) Quote(body string) string { return "``" + body + "''" }

func (LaTeX) Affix(prefix, body, suffix string) string {
	if body == "" {
		return ""
	}
	return prefix + body + suffix
}

func (LaTeX) WrapPunctuation(kind style.WrapKind, body string) string {
	switch kind {
	case style.WrapParentheses:
		return "(" + body + ")"
	case style.WrapBrackets:
		return "[" + body + "]"
	default:
		return body
	}
}

func (LaTeX) Semantic(class, body string) string { return body }

func (LaTeX) Link(url, body string) string {
	return `\href{` + url + `}{` + body + `}`
}

func (LaTeX) Entry(id, body string) string { return body }

func (LaTeX) Finish(body string) string { return body }
