package legacy

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/csln-go/csln/internal/xmlutil"
)

// Parse parses a legacy style document from XML text. The parser is strict
// about element and required-attribute structure but tolerant of unknown
// formatting attributes, which it records in each node's Formatting.Extra
// map for forward compatibility.
func Parse(xml []byte) (*Style, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(xml); err != nil {
		return nil, &ParseError{Path: "style", Err: err}
	}
	root := doc.SelectElement("style")
	if root == nil {
		return nil, &ParseError{Path: "style", Err: fmt.Errorf("missing root <style> element")}
	}
	p := &parser{}
	return p.parseStyle(root)
}

type parser struct{}

func (p *parser) parseStyle(el *etree.Element) (*Style, error) {
	s := &Style{
		Class:                     xmlutil.AttrOr(el, "class", "in-text"),
		DefaultLocale:             xmlutil.AttrOr(el, "default-locale", ""),
		NamesDelimiter:            xmlutil.AttrOr(el, "names-delimiter", ", "),
		AndStyle:                  xmlutil.AttrOr(el, "and", "text"),
		PageRangeFormat:           xmlutil.AttrOr(el, "page-range-format", ""),
		InitializeWith:            xmlutil.AttrOr(el, "initialize-with", ""),
		DemoteNonDroppingParticle: xmlutil.AttrOr(el, "demote-non-dropping-particle", "display-and-sort"),
		Macros:                    map[string]*Macro{},
	}

	if info := el.SelectElement("info"); info != nil {
		s.Info = p.parseInfo(info)
	}

	for _, m := range el.SelectElements("macro") {
		name := xmlutil.AttrOr(m, "name", "")
		if name == "" {
			return nil, &MissingAttrError{Path: "style/macro", Attr: "name"}
		}
		children, err := p.parseChildren(m, "style/macro["+name+"]")
		if err != nil {
			return nil, err
		}
		s.Macros[name] = &Macro{Name: name, Children: children}
	}

	citationEl := el.SelectElement("citation")
	if citationEl == nil {
		return nil, &MissingAttrError{Path: "style", Attr: "citation"}
	}
	citationLayout, err := p.parseLayout(citationEl, "style/citation")
	if err != nil {
		return nil, err
	}
	s.Citation = Citation{Layout: *citationLayout}

	if bibEl := el.SelectElement("bibliography"); bibEl != nil {
		bibLayout, err := p.parseLayout(bibEl, "style/bibliography")
		if err != nil {
			return nil, err
		}
		s.Bibliography = &Bibliography{Layout: *bibLayout}
	}

	return s, nil
}

func (p *parser) parseInfo(el *etree.Element) Info {
	info := Info{}
	if t := el.SelectElement("title"); t != nil {
		info.Title = t.Text()
	}
	if id := el.SelectElement("id"); id != nil {
		info.ID = id.Text()
	}
	for _, a := range el.SelectElements("author") {
		if name := a.SelectElement("name"); name != nil {
			info.Authors = append(info.Authors, name.Text())
		}
	}
	for _, c := range el.SelectElements("category") {
		if ct := xmlutil.AttrOr(c, "citation-format", ""); ct != "" {
			info.Category = append(info.Category, ct)
		}
	}
	return info
}

func (p *parser) parseLayout(el *etree.Element, path string) (*Layout, error) {
	layoutEl := el.SelectElement("layout")
	if layoutEl == nil {
		return nil, &MissingAttrError{Path: path, Attr: "layout"}
	}
	children, err := p.parseChildren(layoutEl, path+"/layout")
	if err != nil {
		return nil, err
	}
	return &Layout{
		Formatting: p.parseFormatting(layoutEl),
		Children:   children,
	}, nil
}

func (p *parser) parseChildren(el *etree.Element, path string) ([]Node, error) {
	var out []Node
	for _, c := range xmlutil.ChildElements(el) {
		n, err := p.parseNode(c, path)
		if err != nil {
			return nil, err
		}
		if n != nil {
			out = append(out, n)
		}
	}
	return out, nil
}

func (p *parser) parseNode(el *etree.Element, path string) (Node, error) {
	childPath := path + "/" + el.Tag
	switch el.Tag {
	case "text":
		return p.parseText(el)
	case "names":
		return p.parseNames(el, childPath)
	case "date":
		return p.parseDate(el)
	case "number":
		return p.parseNumber(el)
	case "group":
		children, err := p.parseChildren(el, childPath)
		if err != nil {
			return nil, err
		}
		return &Group{Formatting: p.parseFormatting(el), Children: children}, nil
	case "choose":
		return p.parseChoose(el, childPath)
	default:
		return nil, &UnknownElementError{Path: path, Name: el.Tag}
	}
}

func (p *parser) parseText(el *etree.Element) (*Text, error) {
	t := &Text{
		Formatting: p.parseFormatting(el),
		Macro:      xmlutil.AttrOr(el, "macro", ""),
		Variable:   xmlutil.AttrOr(el, "variable", ""),
		Term:       xmlutil.AttrOr(el, "term", ""),
		Form:       xmlutil.AttrOr(el, "form", "long"),
		Value:      xmlutil.AttrOr(el, "value", ""),
		Plural:     xmlutil.AttrOr(el, "plural", "contextual"),
	}
	set := 0
	for _, v := range []string{t.Macro, t.Variable, t.Term, t.Value} {
		if v != "" {
			set++
		}
	}
	if set != 1 {
		return nil, &ParseError{Path: "text", Err: fmt.Errorf("exactly one of macro, variable, term, value must be set")}
	}
	return t, nil
}

func (p *parser) parseNames(el *etree.Element, path string) (*Names, error) {
	n := &Names{
		Formatting: p.parseFormatting(el),
	}
	if v := xmlutil.AttrOr(el, "variable", ""); v != "" {
		n.Variable = strings.Fields(v)
	}
	if nameEl := el.SelectElement("name"); nameEl != nil {
		n.Name = p.parseName(nameEl)
	}
	if labelEl := el.SelectElement("label"); labelEl != nil {
		n.Label = &NameLabel{
			Formatting: p.parseFormatting(labelEl),
			Form:       xmlutil.AttrOr(labelEl, "form", "long"),
			Plural:     xmlutil.AttrOr(labelEl, "plural", "contextual"),
		}
	}
	if subEl := el.SelectElement("substitute"); subEl != nil {
		children, err := p.parseChildren(subEl, path+"/substitute")
		if err != nil {
			return nil, err
		}
		n.Substitute = &Substitute{Children: children}
	}
	return n, nil
}

func (p *parser) parseName(el *etree.Element) *Name {
	return &Name{
		Formatting:             p.parseFormatting(el),
		And:                    xmlutil.AttrOr(el, "and", ""),
		DelimiterPrecedesLast:  xmlutil.AttrOr(el, "delimiter-precedes-last", "contextual"),
		EtAlMin:                atoiOr(xmlutil.AttrOr(el, "et-al-min", ""), 0),
		EtAlUseFirst:           atoiOr(xmlutil.AttrOr(el, "et-al-use-first", ""), 1),
		EtAlSubsequentMin:      atoiOr(xmlutil.AttrOr(el, "et-al-subsequent-min", ""), 0),
		EtAlSubsequentUseFirst: atoiOr(xmlutil.AttrOr(el, "et-al-subsequent-use-first", ""), 0),
		Form:                   xmlutil.AttrOr(el, "form", "long"),
		Initialize:             xmlutil.AttrOr(el, "initialize", "true") == "true",
		InitializeWith:         xmlutil.AttrOr(el, "initialize-with", ""),
		NameAsSortOrder:        xmlutil.AttrOr(el, "name-as-sort-order", ""),
		SortSeparator:          xmlutil.AttrOr(el, "sort-separator", ", "),
	}
}

func (p *parser) parseDate(el *etree.Element) (*Date, error) {
	d := &Date{
		Formatting:            p.parseFormatting(el),
		Variable:              xmlutil.AttrOr(el, "variable", "issued"),
		Form:                  xmlutil.AttrOr(el, "form", ""),
		DelimiterBetweenParts: xmlutil.AttrOr(el, "delimiter", ""),
	}
	for _, partEl := range el.SelectElements("date-part") {
		d.Parts = append(d.Parts, DatePart{
			Formatting:     p.parseFormatting(partEl),
			Name:           xmlutil.AttrOr(partEl, "name", ""),
			Form:           xmlutil.AttrOr(partEl, "form", "long"),
			RangeDelimiter: xmlutil.AttrOr(partEl, "range-delimiter", "–"),
		})
	}
	return d, nil
}

func (p *parser) parseNumber(el *etree.Element) (*Number, error) {
	return &Number{
		Formatting: p.parseFormatting(el),
		Variable:   xmlutil.AttrOr(el, "variable", ""),
		Form:       xmlutil.AttrOr(el, "form", "numeric"),
	}, nil
}

func (p *parser) parseChoose(el *etree.Element, path string) (*Choose, error) {
	c := &Choose{}
	ifEl := el.SelectElement("if")
	if ifEl == nil {
		return nil, &MissingAttrError{Path: path, Attr: "if"}
	}
	branch, err := p.parseBranch(ifEl, path+"/if")
	if err != nil {
		return nil, err
	}
	c.If = branch

	for _, elseIfEl := range el.SelectElements("else-if") {
		b, err := p.parseBranch(elseIfEl, path+"/else-if")
		if err != nil {
			return nil, err
		}
		c.ElseIf = append(c.ElseIf, b)
	}

	if elseEl := el.SelectElement("else"); elseEl != nil {
		children, err := p.parseChildren(elseEl, path+"/else")
		if err != nil {
			return nil, err
		}
		c.Else = children
		c.HasElse = true
	}
	return c, nil
}

func (p *parser) parseBranch(el *etree.Element, path string) (ChooseBranch, error) {
	children, err := p.parseChildren(el, path)
	if err != nil {
		return ChooseBranch{}, err
	}
	cond := Condition{
		Match: Match(xmlutil.AttrOr(el, "match", "all")),
	}
	if v := xmlutil.AttrOr(el, "type", ""); v != "" {
		cond.Type = strings.Fields(v)
	}
	if v := xmlutil.AttrOr(el, "variable", ""); v != "" {
		cond.Variable = strings.Fields(v)
	}
	if v := xmlutil.AttrOr(el, "is-numeric", ""); v != "" {
		cond.IsNumeric = strings.Fields(v)
	}
	if v := xmlutil.AttrOr(el, "is-uncertain-date", ""); v != "" {
		cond.IsUncertainDate = strings.Fields(v)
	}
	if v := xmlutil.AttrOr(el, "locator", ""); v != "" {
		cond.Locator = strings.Fields(v)
	}
	if v := xmlutil.AttrOr(el, "position", ""); v != "" {
		cond.Position = strings.Fields(v)
	}
	return ChooseBranch{Condition: cond, Children: children}, nil
}

// known formatting attribute names, used to decide what goes to Extra.
var formattingAttrs = map[string]bool{
	"prefix": true, "suffix": true, "delimiter": true,
	"font-style": true, "font-variant": true, "font-weight": true,
	"quotes": true, "text-case": true, "strip-periods": true,
	"vertical-align": true,
}

func (p *parser) parseFormatting(el *etree.Element) Formatting {
	f := Formatting{
		Prefix:        xmlutil.AttrOr(el, "prefix", ""),
		Suffix:        xmlutil.AttrOr(el, "suffix", ""),
		Delimiter:     xmlutil.AttrOr(el, "delimiter", ""),
		FontStyle:     xmlutil.AttrOr(el, "font-style", "normal"),
		FontVariant:   xmlutil.AttrOr(el, "font-variant", "normal"),
		FontWeight:    xmlutil.AttrOr(el, "font-weight", "normal"),
		Quotes:        xmlutil.BoolAttr(el, "quotes"),
		TextCase:      xmlutil.AttrOr(el, "text-case", ""),
		StripPeriods:  xmlutil.BoolAttr(el, "strip-periods"),
		VerticalAlign: xmlutil.AttrOr(el, "vertical-align", ""),
	}
	for _, a := range el.Attr {
		if formattingAttrs[a.Key] {
			continue
		}
		// Tag- and variable-identifying attributes are consumed by the
		// specific node parser, not stashed as forward-compat extras.
		switch a.Key {
		case "variable", "macro", "term", "value", "form", "plural", "name",
			"type", "match", "is-numeric", "is-uncertain-date", "locator",
			"position", "and", "delimiter-precedes-last", "et-al-min",
			"et-al-use-first", "et-al-subsequent-min", "et-al-subsequent-use-first",
			"initialize", "initialize-with", "name-as-sort-order", "sort-separator",
			"range-delimiter":
			continue
		}
		if f.Extra == nil {
			f.Extra = map[string]string{}
		}
		f.Extra[a.Key] = a.Value
	}
	return f
}

func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
