// Package render defines the output-format capability table (§4.7) and its
// four implementations. A Format is a stateless value passed to the
// processor at call time, not a base class subclassed per format.
package render

import "github.com/csln-go/csln/style"

// Format is the capability set a citation/bibliography renderer must
// provide. Each method takes already-rendered body text and wraps or joins
// it; Format implementations never see reference data directly.
type Format interface {
	// Text passes raw text through, escaping it for the target markup.
	Text(raw string) string
	// Join concatenates items with delim between them.
	Join(items []string, delim string) string
	Emph(body string) string
	Strong(body string) string
	SmallCaps(body string) string
	Quote(body string) string
	// Affix wraps body with a literal prefix/suffix, applied outside any
	// inline formatting already in body.
	Affix(prefix, body, suffix string) string
	// WrapPunctuation applies a component or citation's outermost bracketing.
	WrapPunctuation(kind style.WrapKind, body string) string
	// Semantic tags body with a CSS-class-like semantic role
	// ("csln-title", "csln-author", ...); a no-op for formats without markup.
	Semantic(class, body string) string
	// Link renders body as a hyperlink to url.
	Link(url, body string) string
	// Entry wraps one rendered bibliography entry, tagging it with the
	// reference id for formats that support in-page anchors.
	Entry(id, body string) string
	// Finish performs any whole-document finishing touches (e.g. wrapping
	// the joined bibliography in a container element). Most formats are
	// the identity function here.
	Finish(body string) string
}
