package process

import (
	"github.com/csln-go/csln/reference"
	"github.com/csln-go/csln/style"
)

// newRef builds a minimal monograph reference with one author and a year,
// the shape most process tests exercise.
func newRef(id, family, given, title, year string) *reference.Reference {
	return &reference.Reference{
		ID:   id,
		Type: "book",
		Kind: reference.KindMonograph,
		Contributors: map[string]reference.Contributor{
			"author": {Structured: &reference.StructuredName{Family: family, Given: given}},
		},
		PrimaryTitle: reference.NewMultilingualString(title),
		Issued:       reference.EdtfString(year),
	}
}

func newBibliography(refs ...*reference.Reference) *reference.Bibliography {
	bib, err := reference.NewBibliography(refs)
	if err != nil {
		panic(err)
	}
	return bib
}

// authorDateStyle returns a small author-date style: citation renders
// "Family Year" wrapped in parentheses; bibliography renders
// "Given Family. Title. Year.".
func authorDateStyle() *style.Style {
	return &style.Style{
		Options: style.Config{
			Processing:   style.ModeAuthorDate,
			Links:        style.LinksConfig{Target: "doi"},
			Bibliography: style.BibliographyConfig{Separator: "\n"},
		},
		Citation: style.Template{
			{
				Kind:      style.KindGroup,
				Delimiter: " ",
				Children: []style.TemplateComponent{
					{Kind: style.KindContributor, Role: style.RoleAuthor, Form: style.FormShort},
					{Kind: style.KindDate, DateVariable: "issued", DateFormKind: style.DateYear},
				},
			},
		},
		CitationWrap: style.WrapParentheses,
		Bibliography: style.Template{
			{Kind: style.KindContributor, Role: style.RoleAuthor, Form: style.FormLong, Rendering: style.Rendering{Suffix: ". "}},
			{Kind: style.KindTitle, TitleVariable: "title", Rendering: style.Rendering{Emph: true, Suffix: ". "}},
			{Kind: style.KindDate, DateVariable: "issued", DateFormKind: style.DateYear, Rendering: style.Rendering{Suffix: "."}},
		},
		BibliographyDelimiter: "",
	}
}
