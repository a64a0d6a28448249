package process

import (
	"testing"

	"github.com/csln-go/csln/localeset"
	"github.com/csln-go/csln/render"
	"github.com/csln-go/csln/style"
)

func TestRenderTemplate_authorYear(t *testing.T) {
	s := authorDateStyle()
	ref := newRef("kuhn62", "Kuhn", "Thomas S.", "The Structure of Scientific Revolutions", "1962")
	ctx := renderCtx{ref: ref, cfg: s.Options, loc: localeset.EnUS(), format: render.PlainText{}}
	got := renderTemplate(s.Citation, s.CitationDelimiter, ctx)
	want := "Kuhn 1962"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAssemble_quoteAndEmphOrdering(t *testing.T) {
	c := style.TemplateComponent{
		Kind:          style.KindTitle,
		TitleVariable: "title",
		Rendering:     style.Rendering{Quote: true, Emph: true},
	}
	ctx := renderCtx{
		ref:    newRef("r", "Smith", "Jane", "A Title", "2020"),
		cfg:    style.Config{},
		loc:    localeset.EnUS(),
		format: render.PlainText{Markers: true},
	}
	pv, _ := resolveValue(c, ctx)
	got := assemble(pv, c, ctx)
	want := "_“A Title”_"
	if got != want {
		t.Errorf("got %q, want %q (quote applied before emph, per assembly order)", got, want)
	}
}

func TestAssemble_overrideByType(t *testing.T) {
	emphTrue := true
	c := style.TemplateComponent{
		Kind:          style.KindTitle,
		TitleVariable: "title",
		Overrides: map[string]style.RenderingOverride{
			"webpage": {Emph: &emphTrue},
		},
	}
	book := newRef("b", "Smith", "J", "A Title", "2020")
	book.Type = "book"
	webpage := newRef("w", "Smith", "J", "A Title", "2020")
	webpage.Type = "webpage"

	fmtr := render.PlainText{Markers: true}
	ctxBook := renderCtx{ref: book, cfg: style.Config{}, loc: localeset.EnUS(), format: fmtr}
	pv, _ := resolveValue(c, ctxBook)
	gotBook := assemble(pv, c, ctxBook)
	if gotBook != "A Title" {
		t.Errorf("book (no override) = %q, want plain title", gotBook)
	}

	ctxWeb := renderCtx{ref: webpage, cfg: style.Config{}, loc: localeset.EnUS(), format: fmtr}
	pv, _ = resolveValue(c, ctxWeb)
	gotWeb := assemble(pv, c, ctxWeb)
	if gotWeb != "_A Title_" {
		t.Errorf("webpage (override emph) = %q, want emphasized title", gotWeb)
	}
}

func TestEvaluateBranch_itemTypeAndPosition(t *testing.T) {
	branch := style.ConditionBranch{
		ItemTypes: map[string]bool{"book": true},
		Position:  []string{"first"},
		Match:     "all",
	}
	ref := newRef("r", "Smith", "J", "T", "2020")
	ref.Type = "book"

	ctxFirst := renderCtx{ref: ref, cit: &citationContext{Position: "first"}}
	if !evaluateBranch(branch, ctxFirst) {
		t.Error("expected branch to match on first citation of a book")
	}

	ctxSubsequent := renderCtx{ref: ref, cit: &citationContext{Position: "subsequent"}}
	if evaluateBranch(branch, ctxSubsequent) {
		t.Error("expected branch to not match on subsequent citation")
	}
}

func TestEvaluateBranch_anyMode(t *testing.T) {
	branch := style.ConditionBranch{
		Variable: []string{"doi", "url"},
		Match:    "any",
	}
	withDOI := newRef("r", "S", "J", "T", "2020")
	withDOI.Identifiers.DOI = "10.1/x"
	if !evaluateBranch(branch, renderCtx{ref: withDOI}) {
		t.Error("expected any-mode match when doi is present")
	}
	withNeither := newRef("r2", "S", "J", "T", "2020")
	if evaluateBranch(branch, renderCtx{ref: withNeither}) {
		t.Error("expected no match when neither doi nor url present")
	}
}

func TestRenderGroup_suppressedWhenAllChildrenEmpty(t *testing.T) {
	g := style.TemplateComponent{
		Kind:      style.KindGroup,
		Delimiter: ", ",
		Children: []style.TemplateComponent{
			{Kind: style.KindVariable, VariableName: "doi"},
		},
	}
	ref := newRef("r", "S", "J", "T", "2020")
	ctx := renderCtx{ref: ref, cfg: style.Config{}, loc: localeset.EnUS(), format: render.PlainText{}}
	if got := renderGroup(g, ctx); got != "" {
		t.Errorf("expected empty group, got %q", got)
	}
}

func TestResolveDate_fallback(t *testing.T) {
	c := style.TemplateComponent{
		Kind:         style.KindDate,
		DateVariable: "issued",
		Fallback:     []style.TemplateComponent{{Kind: style.KindTerm, TermName: "no-date"}},
	}
	ref := newRef("r", "S", "J", "T", "")
	loc := localeset.EnUS()
	pv, fallback := resolveDate(c, ref, loc)
	if !pv.empty() {
		t.Fatalf("expected empty ProcValues for absent date, got %+v", pv)
	}
	if len(fallback) != 1 || fallback[0].TermName != "no-date" {
		t.Errorf("expected the fallback template returned, got %+v", fallback)
	}
}
