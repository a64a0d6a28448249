package migrate

import (
	"github.com/csln-go/csln/legacy"
	"github.com/csln-go/csln/style"
)

// roleVariables maps legacy <names>/<text> variable names to the contributor
// role they upsample to. CollectionEditor and EditorialDirector both collapse
// to Editor (DESIGN.md: Open Question b).
var roleVariables = map[string]style.ContributorRole{
	"author":             style.RoleAuthor,
	"editor":             style.RoleEditor,
	"translator":         style.RoleTranslator,
	"container-author":   style.RoleContainerAuthor,
	"collection-editor":  style.RoleEditor,
	"editorial-director": style.RoleEditor,
	"composer":           style.RoleComposer,
	"director":           style.RoleDirector,
	"interviewer":        style.RoleInterviewer,
}

var dateVariables = map[string]bool{
	"issued":        true,
	"accessed":      true,
	"event-date":    true,
	"submitted":     true,
	"original-date": true,
}

var titleVariables = map[string]string{
	"title":            "title",
	"container-title":  "container-title",
	"collection-title": "collection-title",
}

var numberVariables = map[string]style.NumberKind{
	"volume":           style.NumberVolume,
	"issue":            style.NumberIssue,
	"page":             style.NumberPages,
	"pages":            style.NumberPages,
	"edition":          style.NumberEdition,
	"chapter-number":   style.NumberChapter,
	"citation-number":  style.NumberCitationNumber,
}

// Upsample converts a macro-free legacy node list into a flat template,
// following the variable-to-kind mapping of §4.4. Nodes that carry no
// renderable content after migration (an unresolved macro call left over
// from an unknown-macro warning) produce no component and are dropped.
func Upsample(nodes []legacy.Node) style.Template {
	tmpl := make(style.Template, 0, len(nodes))
	for _, n := range nodes {
		if c, ok := upsampleNode(n); ok {
			tmpl = append(tmpl, c)
		}
	}
	return tmpl
}

func upsampleNode(n legacy.Node) (style.TemplateComponent, bool) {
	switch t := n.(type) {
	case *legacy.Text:
		return upsampleText(t)
	case *legacy.Names:
		return upsampleNames(t)
	case *legacy.Date:
		return upsampleDate(t), true
	case *legacy.Number:
		return upsampleNumber(t), true
	case *legacy.Group:
		return upsampleGroup(t), true
	case *legacy.Choose:
		return upsampleChoose(t), true
	default:
		return style.TemplateComponent{}, false
	}
}

func renderingOf(f legacy.Formatting) style.Rendering {
	r := style.Rendering{
		Emph:      f.FontStyle == "italic" || f.FontStyle == "oblique",
		Strong:    f.FontWeight == "bold",
		SmallCaps: f.FontVariant == "small-caps",
		Quote:     f.Quotes,
		Prefix:    f.Prefix,
		Suffix:    f.Suffix,
	}
	r.Wrap, r.Prefix, r.Suffix = style.CanonicalizeWrap(r.Prefix, r.Suffix)
	return r
}

func upsampleText(t *legacy.Text) (style.TemplateComponent, bool) {
	base := renderingOf(t.Formatting)
	switch {
	case t.Term != "":
		return style.TemplateComponent{Kind: style.KindTerm, Rendering: base, TermName: t.Term, TermForm: t.Form}, true
	case t.Value != "":
		return style.TemplateComponent{Kind: style.KindText, Rendering: base, Text: t.Value}, true
	case t.Variable != "":
		return upsampleVariable(t.Variable, base)
	default:
		// A macro call an inliner warning left unresolved; preserve nothing
		// rather than fabricate content.
		return style.TemplateComponent{}, false
	}
}

func upsampleVariable(variable string, r style.Rendering) (style.TemplateComponent, bool) {
	if role, ok := roleVariables[variable]; ok {
		return style.TemplateComponent{Kind: style.KindContributor, Rendering: r, Role: role, Form: style.FormLong}, true
	}
	if dateVariables[variable] {
		return style.TemplateComponent{Kind: style.KindDate, Rendering: r, DateVariable: variable, DateFormKind: style.DateFull}, true
	}
	if titleVar, ok := titleVariables[variable]; ok {
		return style.TemplateComponent{Kind: style.KindTitle, Rendering: r, TitleVariable: titleVar}, true
	}
	if num, ok := numberVariables[variable]; ok {
		return style.TemplateComponent{Kind: style.KindNumber, Rendering: r, NumberVariable: num}, true
	}
	return style.TemplateComponent{Kind: style.KindVariable, Rendering: r, VariableName: variable}, true
}

func upsampleNames(n *legacy.Names) (style.TemplateComponent, bool) {
	if len(n.Variable) == 0 {
		return style.TemplateComponent{}, false
	}
	role, ok := roleVariables[n.Variable[0]]
	if !ok {
		return style.TemplateComponent{}, false
	}
	form := style.FormLong
	if n.Name != nil && n.Name.Form == "short" {
		form = style.FormShort
	}
	c := style.TemplateComponent{Kind: style.KindContributor, Rendering: renderingOf(n.Formatting), Role: role, Form: form}
	if n.Substitute != nil {
		c.Fallback = Upsample(n.Substitute.Children)
	}
	return c, true
}

// upsampleDate picks one of §4.6.5's five renderings from the date-part shape:
// a bare year-only date upsamples to Year, an explicit Form="short"/"numeric"
// shorthand upsamples directly, and anything with month/day parts upsamples
// to Full.
func upsampleDate(d *legacy.Date) style.TemplateComponent {
	c := style.TemplateComponent{Kind: style.KindDate, Rendering: renderingOf(d.Formatting), DateVariable: d.Variable}
	switch d.Form {
	case "short":
		c.DateFormKind = style.DateShort
		return c
	case "numeric":
		c.DateFormKind = style.DateNumeric
		return c
	}
	hasMonth, hasDay := false, false
	for _, p := range d.Parts {
		switch p.Name {
		case "month":
			hasMonth = true
		case "day":
			hasDay = true
		}
	}
	switch {
	case hasMonth && hasDay:
		c.DateFormKind = style.DateFull
	case hasMonth:
		c.DateFormKind = style.DateFull
	default:
		c.DateFormKind = style.DateYear
	}
	return c
}

func upsampleNumber(n *legacy.Number) style.TemplateComponent {
	kind, ok := numberVariables[n.Variable]
	if !ok {
		kind = style.NumberKind(n.Variable)
	}
	return style.TemplateComponent{Kind: style.KindNumber, Rendering: renderingOf(n.Formatting), NumberVariable: kind}
}

func upsampleGroup(g *legacy.Group) style.TemplateComponent {
	r := renderingOf(g.Formatting)
	return style.TemplateComponent{Kind: style.KindGroup, Rendering: r, Children: Upsample(g.Children), Delimiter: g.Delimiter}
}

func upsampleChoose(ch *legacy.Choose) style.TemplateComponent {
	c := style.TemplateComponent{Kind: style.KindCondition}
	c.Branches = append(c.Branches, upsampleBranch(ch.If))
	for _, b := range ch.ElseIf {
		c.Branches = append(c.Branches, upsampleBranch(b))
	}
	if ch.HasElse {
		c.HasElse = true
		c.Else = Upsample(ch.Else)
	}
	return c
}

func upsampleBranch(b legacy.ChooseBranch) style.ConditionBranch {
	types := map[string]bool{}
	for _, t := range b.Condition.Type {
		types[t] = true
	}
	return style.ConditionBranch{
		ItemTypes:       types,
		Variable:        b.Condition.Variable,
		IsNumeric:       b.Condition.IsNumeric,
		IsUncertainDate: b.Condition.IsUncertainDate,
		Locator:         b.Condition.Locator,
		Position:        b.Condition.Position,
		Match:           string(b.Condition.Match),
		Children:        Upsample(b.Children),
	}
}
