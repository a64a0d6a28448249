package process

import (
	"sort"
	"strings"

	"github.com/csln-go/csln/localeset"
	"github.com/csln-go/csln/reference"
	"github.com/csln-go/csln/style"
)

// SortReferences orders refs per cfg's sort template (§4.6.1), stable across
// equal composite keys.
func SortReferences(refs []*reference.Reference, keys []style.SortKey, cfg style.Config, loc *localeset.Locale) {
	sort.SliceStable(refs, func(i, j int) bool {
		return lessByKeys(refs[i], refs[j], keys, cfg, loc)
	})
}

func lessByKeys(a, b *reference.Reference, keys []style.SortKey, cfg style.Config, loc *localeset.Locale) bool {
	for _, k := range keys {
		av, bv := sortKey(a, k.Key, cfg, loc), sortKey(b, k.Key, cfg, loc)
		if av == bv {
			continue
		}
		if k.Ascending {
			return av < bv
		}
		return av > bv
	}
	return false
}

// sortKey computes one reference's comparable key string for the named
// sort field. Numeric keys (year, citation-number) are zero-padded so
// lexicographic string comparison matches numeric order.
func sortKey(ref *reference.Reference, key string, cfg style.Config, loc *localeset.Locale) string {
	switch key {
	case "author":
		return authorSortKey(ref, cfg, loc)
	case "year":
		return padSortInt(ref.Issued.Parse().Year())
	case "title":
		articles := append(append([]string{}, reference.SortArticles...), loc.SortArticles...)
		return strings.ToLower(reference.StripSortArticle(ref.Title(reference.TitlePrimary).Original, articles))
	case "citation-number":
		return padSortInt(ref.Numbers.CitationNumber)
	default:
		return ""
	}
}

// authorSortKey is the first author's family name (lowercased), falling
// through the substitute chain when there is no author (§4.6.1).
func authorSortKey(ref *reference.Reference, cfg style.Config, loc *localeset.Locale) string {
	if contrib, ok := ref.Contributors["author"]; ok && !contrib.IsEmpty() {
		names := contrib.ToFlatNames()
		if len(names) > 0 {
			return strings.ToLower(names[0].FamilyOrLiteral())
		}
	}
	if v, ok := resolveSubstitute(ref, cfg, loc); ok {
		return strings.ToLower(v)
	}
	return ""
}

// padSortInt zero-pads n to a fixed width so string comparison orders it
// numerically; negative years sort before positive ones via an offset.
func padSortInt(n int) string {
	const offset = 1 << 20
	shifted := n + offset
	s := ""
	for i := 0; i < 8; i++ {
		digit := shifted % 10
		s = string(rune('0'+digit)) + s
		shifted /= 10
	}
	return s
}
