package render

import (
	"strings"

	"github.com/csln-go/csln/style"
)

// PlainText is the monochrome format: by default inline formatting and
// semantic wrapping are dropped entirely. Setting Markers renders emphasis
// with the common plain-text conventions (`_..._`, `**...**`) instead of
// discarding them, for callers that want a lightweight visual cue without
// committing to a markup language.
type PlainText struct {
	Markers bool
}

func (p PlainText) Text(raw string) string { return raw }

func (p PlainText) Join(items []string, delim string) string {
	return strings.Join(items, delim)
}

func (p PlainText) Emph(body string) string {
	if p.Markers {
		return "_" + body + "_"
	}
	return body
}

func (p PlainText) Strong(body string) string {
	if p.Markers {
		return "**" + body + "**"
	}
	return body
}

func (p PlainText) SmallCaps(body string) string { return body }

func (p PlainText) Quote(body string) string { return "“" + body + "”" }

func (p PlainText) Affix(prefix, body, suffix string) string {
	if body == "" {
		return ""
	}
	return prefix + body + suffix
}

func (p PlainText) WrapPunctuation(kind style.WrapKind, body string) string {
	switch kind {
	case style.WrapParentheses:
		return "(" + body + ")"
	case style.WrapBrackets:
		return "[" + body + "]"
	default:
		return body
	}
}

func (p PlainText) Semantic(class, body string) string { return body }

func (p PlainText) Link(url, body string) string { return body }

func (p PlainText) Entry(id, body string) string { return body }

func (p PlainText) Finish(body string) string { return body }
