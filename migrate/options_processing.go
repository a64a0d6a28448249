package migrate

import (
	"github.com/csln-go/csln/legacy"
	"github.com/csln-go/csln/style"
)

// detectProcessingMode classifies the style's citation layout per §4.3: a
// citation template containing both a names/author reference and a date
// reference is AuthorDate; a citation-number reference with no author is
// Numeric (whether the number is wrapped in parentheses or brackets is not
// examined); a "note" style class is Note; everything else is Custom.
func detectProcessingMode(s *legacy.Style, citation []legacy.Node) style.ProcessingMode {
	if s.Class == "note" {
		return style.ModeNote
	}

	hasAuthor := false
	hasDate := false
	hasCitationNumber := false

	legacy.WalkAll(citation, func(n legacy.Node) {
		switch t := n.(type) {
		case *legacy.Names:
			for _, v := range t.Variable {
				if v == "author" {
					hasAuthor = true
				}
			}
		case *legacy.Text:
			if t.Variable == "author" {
				hasAuthor = true
			}
			if t.Variable == "citation-number" {
				hasCitationNumber = true
			}
		case *legacy.Number:
			if t.Variable == "citation-number" {
				hasCitationNumber = true
			}
		case *legacy.Date:
			hasDate = true
		}
	})

	switch {
	case hasAuthor && hasDate:
		return style.ModeAuthorDate
	case hasCitationNumber && !hasAuthor:
		return style.ModeNumeric
	default:
		return style.ModeCustom
	}
}

// extractCustomProcessing infers the sort/group/disambiguate blocks for a
// Custom-mode style. In the absence of a richer legacy sort-key schema in
// this corpus, the scan falls back to author-then-year-then-title, which
// is both CSL's own default sort and the most common explicit one.
func extractCustomProcessing(s *legacy.Style) style.CustomProcessing {
	return style.CustomProcessing{
		Sort: []style.SortKey{
			{Key: "author", Ascending: true},
			{Key: "year", Ascending: true},
			{Key: "title", Ascending: true},
		},
	}
}

// extractPunctuationInQuote implements the heuristic in §4.3: true iff
// default-locale begins with "en-US" or is absent; true for "en"
// generally; false for "en-GB" (and other locales). §9 Open Question (c)
// flags this as keying on the style's locale only, not the reference's.
func extractPunctuationInQuote(s *legacy.Style) bool {
	switch {
	case s.DefaultLocale == "":
		return true
	case hasPrefix(s.DefaultLocale, "en-US"):
		return true
	case hasPrefix(s.DefaultLocale, "en-GB"):
		return false
	case hasPrefix(s.DefaultLocale, "en"):
		return true
	default:
		return false
	}
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
