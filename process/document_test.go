package process

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseCitationSpans(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []CitationSpan
	}{
		{
			"simple",
			"See [@smith2020] for details.",
			[]CitationSpan{{Start: 4, End: 16, Citation: Citation{Items: []CitationItem{{ID: "smith2020"}}}}},
		},
		{
			"with locator",
			"As argued [@kuhn1962, p. 45].",
			[]CitationSpan{{Start: 10, End: 28, Citation: Citation{Items: []CitationItem{{ID: "kuhn1962", Locator: "p. 45"}}}}},
		},
		{
			"no spans",
			"Plain prose with no citations.",
			[]CitationSpan{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCitationSpans(tt.content)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseCitationSpans() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestProcessDocument_replacesSpansAndAppendsBibliography(t *testing.T) {
	bib := newBibliography(newRef("kuhn62", "Kuhn", "Thomas", "Structure", "1962"))
	p := NewProcessor(authorDateStyle(), bib)
	out := p.ProcessDocument("Paradigms shift [@kuhn62].", DocumentPlain)

	if !strings.Contains(out, "(Kuhn 1962)") {
		t.Errorf("expected rendered citation in output, got %q", out)
	}
	if !strings.Contains(out, "# Bibliography") {
		t.Errorf("expected a bibliography heading, got %q", out)
	}
	if !strings.Contains(out, "Thomas Kuhn") && !strings.Contains(out, "Kuhn") {
		t.Errorf("expected the bibliography entry to mention the author, got %q", out)
	}
}

func TestProcessDocument_unresolvedCitationLeftVerbatim(t *testing.T) {
	bib := newBibliography(newRef("a", "Smith", "J", "T", "2020"))
	p := NewProcessor(authorDateStyle(), bib)
	out := p.ProcessDocument("Unknown work [@nonexistent].", DocumentPlain)
	if !strings.Contains(out, "[@nonexistent]") {
		t.Errorf("expected the unresolved span preserved verbatim, got %q", out)
	}
}
