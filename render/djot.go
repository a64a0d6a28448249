package render

import (
	"strings"

	"github.com/csln-go/csln/style"
)

// Djot renders the lightweight Djot markup: `_emph_`, `*strong*`,
// `[body]{.class}` spans, and `[label](url)` links.
type Djot struct{}

func (Djot) Text(raw string) string { return raw }

func (Djot) Join(items []string, delim string) string {
	return strings.Join(items, delim)
}

func (Djot) Emph(body string) string { return "_" + body + "_" }

func (Djot) Strong(body string) string { return "*" + body + "*" }

func (Djot) SmallCaps(body string) string {
	return "[" + body + "]{.smallcaps}"
}

func (Djot) Quote(body string) string { return "“" + body + "”" }

func (Djot) Affix(prefix, body, suffix string) string {
	if body == "" {
		return ""
	}
	return prefix + body + suffix
}

func (Djot) WrapPunctuation(kind style.WrapKind, body string) string {
	switch kind {
	case style.WrapParentheses:
		return "(" + body + ")"
	case style.WrapBrackets:
		return "[" + body + "]"
	default:
		return body
	}
}

func (Djot) Semantic(class, body string) string {
	if body == "" {
		return ""
	}
	return "[" + body + "]{." + class + "}"
}

func (Djot) Link(url, body string) string {
	return "[" + body + "](" + url + ")"
}

func (Djot) Entry(id, body string) string {
	return "[" + body + "]{#ref-" + id + " .csln-entry}"
}

func (Djot) Finish(body string) string { return body }
