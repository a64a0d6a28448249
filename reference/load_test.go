package reference

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLoadBibliography(t *testing.T) {
	data := []byte(`{
		"references": [
			{
				"id": "kuhn1962",
				"type": "book",
				"author": [{"family": "Kuhn", "given": "Thomas S."}],
				"title": "The Structure of Scientific Revolutions",
				"issued": "1962",
				"publisher": "University of Chicago Press"
			},
			{
				"id": "smith2020",
				"type": "article-journal",
				"author": [{"family": "Smith", "given": "Jane"}, {"family": "Doe", "given": "John"}],
				"container-title": "Journal of Examples",
				"title": {"original": "A Study", "original-script": "en"},
				"issued": {"date-parts": [[2020, 6, 15]]},
				"volume": "10",
				"page": "100-120"
			}
		]
	}`)

	bib, err := LoadBibliography(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(bib.References) != 2 {
		t.Fatalf("got %d references, want 2", len(bib.References))
	}

	kuhn, ok := bib.Lookup("kuhn1962")
	if !ok {
		t.Fatal("kuhn1962 not found")
	}
	if kuhn.PrimaryTitle.Original != "The Structure of Scientific Revolutions" {
		t.Errorf("title = %q", kuhn.PrimaryTitle.Original)
	}
	if string(kuhn.Issued) != "1962" {
		t.Errorf("issued = %q", kuhn.Issued)
	}
	if kuhn.Publisher.Name != "University of Chicago Press" {
		t.Errorf("publisher = %q", kuhn.Publisher.Name)
	}

	smith, ok := bib.Lookup("smith2020")
	if !ok {
		t.Fatal("smith2020 not found")
	}
	if diff := cmp.Diff("2020-06-15", string(smith.Issued)); diff != "" {
		t.Errorf("issued date-parts conversion mismatch (-want +got):\n%s", diff)
	}
	if smith.Numbers.Pages != "100-120" {
		t.Errorf("pages = %q", smith.Numbers.Pages)
	}
	authorContrib, ok := smith.Contributors["author"]
	if !ok {
		t.Fatal("smith2020 missing author contributor")
	}
	names := authorContrib.ToFlatNames()
	if len(names) != 2 {
		t.Fatalf("got %d author names, want 2", len(names))
	}
	if diff := cmp.Diff("Smith", names[0].Family, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("first author family mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadBibliography_missingID(t *testing.T) {
	_, err := LoadBibliography([]byte(`{"references": [{"type": "book"}]}`))
	if err == nil {
		t.Fatal("expected error for reference missing id")
	}
}

func TestLoadBibliography_duplicateID(t *testing.T) {
	data := []byte(`{
		"references": [
			{"id": "a", "type": "book"},
			{"id": "a", "type": "book"}
		]
	}`)
	_, err := LoadBibliography(data)
	if err == nil {
		t.Fatal("expected error for duplicate id")
	}
}
