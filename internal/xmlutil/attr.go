// Package xmlutil holds small attribute-walking helpers shared by the legacy
// style parser. It exists so legacy.Parser doesn't need to know about
// etree.Element directly in more than one place.
package xmlutil

import "github.com/beevik/etree"

// KnownAttrs describes the attribute names a legacy node type understands.
// Attrs walks an element's attributes and calls assign for every name in
// known; every other attribute is handed to extra so the caller can stash it
// for forward compatibility instead of rejecting the document.
func Attrs(el *etree.Element, known map[string]func(val string), extra func(name, val string)) {
	for _, a := range el.Attr {
		if fn, ok := known[a.Key]; ok {
			fn(a.Value)
			continue
		}
		if extra != nil {
			extra(a.Key, a.Value)
		}
	}
}

// ChildElements returns the direct child elements of el, skipping
// non-element children (text, comments). Thin wrapper kept so callers don't
// need to import etree just to call this one method.
func ChildElements(el *etree.Element) []*etree.Element {
	return el.ChildElements()
}

// AttrOr returns the value of attribute name on el, or def if absent.
func AttrOr(el *etree.Element, name, def string) string {
	if a := el.SelectAttr(name); a != nil {
		return a.Value
	}
	return def
}

// BoolAttr returns true iff the attribute name is present and equals "true".
func BoolAttr(el *etree.Element, name string) bool {
	return AttrOr(el, name, "false") == "true"
}
