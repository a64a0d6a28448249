package reference

import "strings"

// TitleVariable selects which of a reference's title fields a Title
// template component reads (§4.4 upsample mapping, original_source
// TitleType).
type TitleVariable string

const (
	TitlePrimary         TitleVariable = "title"
	TitleParentSerial    TitleVariable = "container-title"
	TitleParentMonograph TitleVariable = "collection-title"
)

// serialTypes is the set of reference types whose container-title is a
// serial (journal/magazine/newspaper), matching the original
// TitleType::ParentSerial dispatch.
var serialTypes = map[string]bool{
	"article-journal":   true,
	"article-magazine":  true,
	"article-newspaper": true,
	"article":           true,
	"paper-conference":  true,
}

// monographContainerTypes is the set of reference types whose
// container-title is a containing monograph (a book containing a chapter).
var monographContainerTypes = map[string]bool{
	"chapter":             true,
	"paper-conference":    true,
	"entry":               true,
	"entry-dictionary":    true,
	"entry-encyclopedia":  true,
}

// Title resolves which MultilingualString backs the given TitleVariable for
// r, returning the zero value if that variable doesn't apply to r's type.
func (r *Reference) Title(v TitleVariable) MultilingualString {
	switch v {
	case TitlePrimary:
		return r.PrimaryTitle
	case TitleParentSerial:
		if serialTypes[r.Type] {
			return r.ContainerTitle
		}
	case TitleParentMonograph:
		if monographContainerTypes[r.Type] {
			return r.ContainerTitle
		}
	}
	return MultilingualString{}
}

// SortArticles are the locale-independent default leading articles stripped
// from sort/disambiguation keys (§4.6.1); a locale table may extend this
// list.
var SortArticles = []string{"the", "a", "an", "der", "die", "das", "le", "la", "les", "el", "los", "las"}

// StripSortArticle removes a leading sort-article token (case-insensitive)
// from s, if present, for use as a sort key.
func StripSortArticle(s string, articles []string) string {
	trimmed := strings.TrimSpace(s)
	lower := strings.ToLower(trimmed)
	for _, a := range articles {
		prefix := a + " "
		if strings.HasPrefix(lower, prefix) {
			return trimmed[len(prefix):]
		}
	}
	return trimmed
}
