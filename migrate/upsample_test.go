package migrate

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/csln-go/csln/legacy"
	"github.com/csln-go/csln/style"
)

func TestUpsample_text(t *testing.T) {
	tests := []struct {
		name string
		in   legacy.Node
		want style.TemplateComponent
	}{
		{"literal", &legacy.Text{Value: "p. "},
			style.TemplateComponent{Kind: style.KindText, Text: "p. "}},
		{"term", &legacy.Text{Term: "editor", Form: "short"},
			style.TemplateComponent{Kind: style.KindTerm, TermName: "editor", TermForm: "short"}},
		{"author variable", &legacy.Text{Variable: "author"},
			style.TemplateComponent{Kind: style.KindContributor, Role: style.RoleAuthor, Form: style.FormLong}},
		{"title variable", &legacy.Text{Variable: "title"},
			style.TemplateComponent{Kind: style.KindTitle, TitleVariable: "title"}},
		{"issued variable", &legacy.Text{Variable: "issued"},
			style.TemplateComponent{Kind: style.KindDate, DateVariable: "issued", DateFormKind: style.DateFull}},
		{"volume variable", &legacy.Text{Variable: "volume"},
			style.TemplateComponent{Kind: style.KindNumber, NumberVariable: style.NumberVolume}},
		{"doi variable", &legacy.Text{Variable: "doi"},
			style.TemplateComponent{Kind: style.KindVariable, VariableName: "doi"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Upsample([]legacy.Node{tt.in})
			if diff := cmp.Diff(style.Template{tt.want}, got); diff != "" {
				t.Errorf("Upsample() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUpsample_collectionEditorCollapsesToEditor(t *testing.T) {
	got := Upsample([]legacy.Node{&legacy.Text{Variable: "collection-editor"}})
	if len(got) != 1 || got[0].Role != style.RoleEditor {
		t.Fatalf("got %+v, want a single Editor-role component", got)
	}
}

func TestUpsample_formatting(t *testing.T) {
	n := &legacy.Text{
		Variable: "title",
		Formatting: legacy.Formatting{
			FontStyle: "italic",
			Quotes:    true,
			Prefix:    "(",
			Suffix:    ")",
		},
	}
	got := Upsample([]legacy.Node{n})
	if len(got) != 1 {
		t.Fatalf("got %d components, want 1", len(got))
	}
	c := got[0]
	if !c.Emph || !c.Quote {
		t.Errorf("expected emph+quote, got %+v", c.Rendering)
	}
	if c.Wrap != style.WrapParentheses {
		t.Errorf("expected parentheses wrap canonicalized from ( )/ affixes, got %v prefix=%q suffix=%q", c.Wrap, c.Prefix, c.Suffix)
	}
}

func TestUpsample_names(t *testing.T) {
	n := &legacy.Names{
		Variable: []string{"editor"},
		Name:     &legacy.Name{Form: "short"},
		Substitute: &legacy.Substitute{
			Children: []legacy.Node{&legacy.Text{Variable: "translator"}},
		},
	}
	got := Upsample([]legacy.Node{n})
	if len(got) != 1 {
		t.Fatalf("got %d components, want 1", len(got))
	}
	c := got[0]
	if c.Kind != style.KindContributor || c.Role != style.RoleEditor || c.Form != style.FormShort {
		t.Errorf("got %+v", c)
	}
	if len(c.Fallback) != 1 || c.Fallback[0].Role != style.RoleTranslator {
		t.Errorf("fallback not upsampled, got %+v", c.Fallback)
	}
}

func TestUpsample_dateForm(t *testing.T) {
	tests := []struct {
		name string
		in   *legacy.Date
		want style.DateForm
	}{
		{"year only", &legacy.Date{Variable: "issued"}, style.DateYear},
		{"with month", &legacy.Date{Variable: "issued", Parts: []legacy.DatePart{{Name: "month"}}}, style.DateFull},
		{"explicit short", &legacy.Date{Variable: "issued", Form: "short"}, style.DateShort},
		{"explicit numeric", &legacy.Date{Variable: "issued", Form: "numeric"}, style.DateNumeric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Upsample([]legacy.Node{tt.in})
			if got[0].DateFormKind != tt.want {
				t.Errorf("got %v, want %v", got[0].DateFormKind, tt.want)
			}
		})
	}
}

func TestUpsample_group(t *testing.T) {
	g := &legacy.Group{
		Formatting: legacy.Formatting{Delimiter: ", "},
		Children: []legacy.Node{
			&legacy.Text{Variable: "author"},
			&legacy.Text{Variable: "issued"},
		},
	}
	got := Upsample([]legacy.Node{g})
	if len(got) != 1 {
		t.Fatalf("got %d components, want 1", len(got))
	}
	c := got[0]
	if c.Kind != style.KindGroup || c.Delimiter != ", " || len(c.Children) != 2 {
		t.Errorf("got %+v", c)
	}
}

func TestUpsample_choose(t *testing.T) {
	ch := &legacy.Choose{
		If: legacy.ChooseBranch{
			Condition: legacy.Condition{Type: []string{"book"}, Match: legacy.MatchAny},
			Children:  []legacy.Node{&legacy.Text{Variable: "title", Formatting: legacy.Formatting{FontStyle: "italic"}}},
		},
		HasElse: true,
		Else:    []legacy.Node{&legacy.Text{Variable: "title"}},
	}
	got := Upsample([]legacy.Node{ch})
	if len(got) != 1 {
		t.Fatalf("got %d components, want 1", len(got))
	}
	c := got[0]
	if c.Kind != style.KindCondition || len(c.Branches) != 1 || !c.HasElse {
		t.Fatalf("got %+v", c)
	}
	if !c.Branches[0].ItemTypes["book"] {
		t.Errorf("expected ItemTypes[book], got %+v", c.Branches[0].ItemTypes)
	}
}
