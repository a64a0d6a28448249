package process

import (
	"github.com/csln-go/csln/localeset"
	"github.com/csln-go/csln/reference"
	"github.com/csln-go/csln/style"
)

// primaryContributorKey renders ref's primary (author) contributor through
// the same substitute chain §4.6.3 resolves at render time, for comparison
// by the subsequent-author-substitute matcher (§4.6.4). Per §9 design note
// (d), the comparison is on the *rendered* value, so two authors whose
// transliterations differ only in diacritics are treated as distinct —
// this mirrors observed legacy behavior rather than guessing a fix.
func primaryContributorKey(ref *reference.Reference, cfg style.Config, loc *localeset.Locale) string {
	if contrib, ok := ref.Contributors["author"]; ok && !contrib.IsEmpty() {
		return renderContributor(contrib, style.FormLong, cfg, loc)
	}
	if v, ok := resolveSubstitute(ref, cfg, loc); ok {
		return v
	}
	return ""
}

// MarkSubsequentAuthorSubstitutes returns, for each reference in sorted
// order, whether its primary-contributor slot should be replaced by the
// configured substitute marker because it renders identically to the
// previous entry's (§4.6.4). The marker itself (cfg.Bibliography.
// SubsequentAuthorSubstitute) is applied by the caller; an empty marker
// disables the feature entirely.
func MarkSubsequentAuthorSubstitutes(refs []*reference.Reference, cfg style.Config, loc *localeset.Locale) []bool {
	out := make([]bool, len(refs))
	if cfg.Bibliography.SubsequentAuthorSubstitute == "" {
		return out
	}
	var prevKey string
	havePrev := false
	for i, ref := range refs {
		key := primaryContributorKey(ref, cfg, loc)
		if havePrev && key != "" && key == prevKey {
			out[i] = true
		}
		prevKey = key
		havePrev = true
	}
	return out
}
