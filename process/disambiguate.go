package process

import (
	"github.com/csln-go/csln/localeset"
	"github.com/csln-go/csln/reference"
	"github.com/csln-go/csln/style"
)

// DisambiguateByAuthorYear assigns a letter suffix ("a", "b", "c", ...) to
// every reference that shares an author+year key with another one in refs,
// in the order given (the caller is expected to pass refs already in the
// author/date citation order): the first of a colliding group gets "a".
// References with a unique key get no suffix. RenderBibliography appends
// the suffix to the end of each tagged entry; ProcessCitation does not
// use it.
func DisambiguateByAuthorYear(refs []*reference.Reference, cfg style.Config, loc *localeset.Locale) map[string]string {
	tags := make(map[string]string, len(refs))
	seen := make(map[string]int)
	for _, ref := range refs {
		key := authorSortKey(ref, cfg, loc) + "|" + padSortInt(ref.Issued.Parse().Year())
		n := seen[key]
		seen[key] = n + 1
		if n > 0 {
			tags[ref.ID] = string(rune('a' + n))
		}
	}
	// A key with only one occurrence never needed a tag; keys with more
	// than one need their *first* occurrence tagged "a" too, once we know
	// the collision exists.
	counts := make(map[string]int, len(refs))
	for _, ref := range refs {
		key := authorSortKey(ref, cfg, loc) + "|" + padSortInt(ref.Issued.Parse().Year())
		counts[key]++
	}
	firstSeen := make(map[string]bool)
	for _, ref := range refs {
		key := authorSortKey(ref, cfg, loc) + "|" + padSortInt(ref.Issued.Parse().Year())
		if counts[key] > 1 && !firstSeen[key] {
			tags[ref.ID] = "a"
			firstSeen[key] = true
		}
	}
	return tags
}
