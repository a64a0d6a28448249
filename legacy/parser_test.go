package legacy

import (
	"errors"
	"testing"
)

const minimalStyle = `<?xml version="1.0"?>
<style class="in-text" default-locale="en-US">
  <info>
    <title>Example Style</title>
    <id>http://example.com/styles/example</id>
    <author><name>Jane Doe</name></author>
  </info>
  <macro name="author-short">
    <names variable="author">
      <name form="short"/>
    </names>
  </macro>
  <citation>
    <layout prefix="(" suffix=")" delimiter="; ">
      <group delimiter=", ">
        <text macro="author-short"/>
        <date variable="issued" form="short"/>
      </group>
    </layout>
  </citation>
  <bibliography>
    <layout>
      <text macro="author-short" suffix=". "/>
      <text variable="title" font-style="italic"/>
    </layout>
  </bibliography>
</style>`

func TestParse_minimalStyle(t *testing.T) {
	s, err := Parse([]byte(minimalStyle))
	if err != nil {
		t.Fatal(err)
	}
	if s.Info.Title != "Example Style" {
		t.Errorf("title = %q", s.Info.Title)
	}
	if len(s.Info.Authors) != 1 || s.Info.Authors[0] != "Jane Doe" {
		t.Errorf("authors = %v", s.Info.Authors)
	}
	if _, ok := s.Macros["author-short"]; !ok {
		t.Fatalf("macro author-short not parsed, got %v", s.Macros)
	}
	if len(s.Citation.Layout.Children) != 1 {
		t.Fatalf("expected one top-level citation child, got %d", len(s.Citation.Layout.Children))
	}
	g, ok := s.Citation.Layout.Children[0].(*Group)
	if !ok {
		t.Fatalf("expected a Group, got %#v", s.Citation.Layout.Children[0])
	}
	if g.Delimiter != ", " || len(g.Children) != 2 {
		t.Errorf("group = %+v", g)
	}
	if s.Citation.Layout.Prefix != "(" || s.Citation.Layout.Suffix != ")" {
		t.Errorf("layout affixes = %q/%q", s.Citation.Layout.Prefix, s.Citation.Layout.Suffix)
	}
	if s.Bibliography == nil {
		t.Fatal("expected a bibliography layout")
	}
	if len(s.Bibliography.Layout.Children) != 2 {
		t.Fatalf("expected 2 bibliography children, got %d", len(s.Bibliography.Layout.Children))
	}
}

func TestParse_missingCitation(t *testing.T) {
	_, err := Parse([]byte(`<style><info/></style>`))
	var missing *MissingAttrError
	if !errors.As(err, &missing) {
		t.Fatalf("expected a MissingAttrError, got %v", err)
	}
}

func TestParse_unknownElement(t *testing.T) {
	xml := `<style><citation><layout><bogus/></layout></citation></style>`
	_, err := Parse([]byte(xml))
	var unknown *UnknownElementError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected an UnknownElementError, got %v", err)
	}
}

func TestParse_textExactlyOneSourceEnforced(t *testing.T) {
	xml := `<style><citation><layout><text variable="author" value="x"/></layout></citation></style>`
	_, err := Parse([]byte(xml))
	if err == nil {
		t.Fatal("expected an error for a <text> with both variable and value set")
	}
}

func TestParse_unknownAttrPreservedInExtra(t *testing.T) {
	xml := `<style><citation><layout><text value="x" some-future-attr="yes"/></layout></citation></style>`
	s, err := Parse([]byte(xml))
	if err != nil {
		t.Fatal(err)
	}
	text := s.Citation.Layout.Children[0].(*Text)
	if text.Extra["some-future-attr"] != "yes" {
		t.Errorf("expected unknown attr preserved in Extra, got %+v", text.Extra)
	}
}

func TestParse_choose(t *testing.T) {
	xml := `<style><citation><layout>
		<choose>
			<if type="book" match="any"><text variable="title" font-style="italic"/></if>
			<else-if type="chapter"><text variable="title"/></else-if>
			<else><text variable="title"/></else>
		</choose>
	</layout></citation></style>`
	s, err := Parse([]byte(xml))
	if err != nil {
		t.Fatal(err)
	}
	ch, ok := s.Citation.Layout.Children[0].(*Choose)
	if !ok {
		t.Fatalf("expected a Choose, got %#v", s.Citation.Layout.Children[0])
	}
	if len(ch.If.Condition.Type) != 1 || ch.If.Condition.Type[0] != "book" {
		t.Errorf("if condition type = %v", ch.If.Condition.Type)
	}
	if len(ch.ElseIf) != 1 {
		t.Fatalf("expected 1 else-if, got %d", len(ch.ElseIf))
	}
	if !ch.HasElse || len(ch.Else) != 1 {
		t.Errorf("expected an else branch, got HasElse=%v Else=%v", ch.HasElse, ch.Else)
	}
}
