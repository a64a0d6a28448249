package process

import (
	"testing"

	"github.com/csln-go/csln/localeset"
	"github.com/csln-go/csln/reference"
	"github.com/csln-go/csln/style"
)

func TestSortReferences_authorYearTitle(t *testing.T) {
	refs := []*reference.Reference{
		newRef("c", "Smith", "Jane", "Zebra Book", "2019"),
		newRef("a", "Adams", "Amy", "Apple Book", "2021"),
		newRef("b", "Adams", "Amy", "Banana Book", "2020"),
	}
	keys := []style.SortKey{
		{Key: "author", Ascending: true},
		{Key: "year", Ascending: true},
		{Key: "title", Ascending: true},
	}
	cfg := style.Config{}
	loc := localeset.EnUS()
	SortReferences(refs, keys, cfg, loc)

	var ids []string
	for _, r := range refs {
		ids = append(ids, r.ID)
	}
	want := []string{"b", "a", "c"}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("got order %v, want %v", ids, want)
		}
	}
}

func TestSortReferences_descendingYear(t *testing.T) {
	refs := []*reference.Reference{
		newRef("old", "Smith", "Jane", "Old", "2000"),
		newRef("new", "Smith", "Jane", "New", "2020"),
	}
	keys := []style.SortKey{{Key: "year", Ascending: false}}
	SortReferences(refs, keys, style.Config{}, localeset.EnUS())
	if refs[0].ID != "new" {
		t.Errorf("expected descending year order, got %s first", refs[0].ID)
	}
}

func TestSortReferences_stableOnEqualKeys(t *testing.T) {
	refs := []*reference.Reference{
		newRef("first", "Adams", "A", "Same Title", "2020"),
		newRef("second", "Adams", "A", "Same Title", "2020"),
	}
	keys := []style.SortKey{{Key: "author", Ascending: true}}
	SortReferences(refs, keys, style.Config{}, localeset.EnUS())
	if refs[0].ID != "first" || refs[1].ID != "second" {
		t.Errorf("expected stable order preserved, got %s, %s", refs[0].ID, refs[1].ID)
	}
}

func TestSortReferences_citationNumber(t *testing.T) {
	a := newRef("a", "Smith", "A", "A", "2020")
	b := newRef("b", "Adams", "B", "B", "2019")
	a.Numbers.CitationNumber = 5
	b.Numbers.CitationNumber = 1
	refs := []*reference.Reference{a, b}
	SortReferences(refs, []style.SortKey{{Key: "citation-number", Ascending: true}}, style.Config{}, localeset.EnUS())
	if refs[0].ID != "b" {
		t.Errorf("expected citation-number order [b, a], got %s first", refs[0].ID)
	}
}
