package xmlutil

import (
	"testing"

	"github.com/beevik/etree"
)

func parseElement(t *testing.T, xml string) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	if err := doc.ReadFromString(xml); err != nil {
		t.Fatalf("ReadFromString: %v", err)
	}
	return doc.Root()
}

func TestAttrOr(t *testing.T) {
	el := parseElement(t, `<text variable="title" form="short"/>`)
	if got := AttrOr(el, "variable", ""); got != "title" {
		t.Errorf("AttrOr(variable) = %q, want title", got)
	}
	if got := AttrOr(el, "missing", "default"); got != "default" {
		t.Errorf("AttrOr(missing) = %q, want fallback default", got)
	}
}

func TestBoolAttr(t *testing.T) {
	el := parseElement(t, `<names et-al-use-first="true" initialize="false"/>`)
	if !BoolAttr(el, "et-al-use-first") {
		t.Error("BoolAttr(et-al-use-first) = false, want true")
	}
	if BoolAttr(el, "initialize") {
		t.Error("BoolAttr(initialize) = true, want false")
	}
	if BoolAttr(el, "absent") {
		t.Error("BoolAttr(absent) = true, want false (missing attribute defaults false)")
	}
}

func TestChildElements(t *testing.T) {
	el := parseElement(t, `<group>text content<names/><label/></group>`)
	children := ChildElements(el)
	if len(children) != 2 {
		t.Fatalf("got %d children, want 2 (text node skipped)", len(children))
	}
	if children[0].Tag != "names" || children[1].Tag != "label" {
		t.Errorf("got tags %q, %q", children[0].Tag, children[1].Tag)
	}
}

func TestAttrs_knownVsExtra(t *testing.T) {
	el := parseElement(t, `<date variable="issued" form="year" custom-flag="x"/>`)
	var variable, form string
	var extras []string
	Attrs(el, map[string]func(string){
		"variable": func(v string) { variable = v },
		"form":     func(v string) { form = v },
	}, func(name, val string) {
		extras = append(extras, name+"="+val)
	})
	if variable != "issued" || form != "year" {
		t.Errorf("got variable=%q form=%q", variable, form)
	}
	if len(extras) != 1 || extras[0] != "custom-flag=x" {
		t.Errorf("got extras=%v, want [custom-flag=x]", extras)
	}
}
