package process

import (
	"strconv"
	"strings"

	"github.com/csln-go/csln/localeset"
	"github.com/csln-go/csln/reference"
	"github.com/csln-go/csln/render"
	"github.com/csln-go/csln/style"
)

// citationContext carries the per-citation-item state a Condition's
// position/locator predicates test (§4.6.7); nil when rendering a
// bibliography entry, which has no notion of position.
type citationContext struct {
	Position string // "first" | "subsequent" | "ibid" | "near-note"
	Locator  string
}

// renderCtx bundles the read-only inputs every component resolver needs.
type renderCtx struct {
	ref    *reference.Reference
	cfg    style.Config
	loc    *localeset.Locale
	cit    *citationContext
	format render.Format

	// authorSubstitute, when non-empty, replaces the rendered value of the
	// first author Contributor component (§4.6.4 subsequent-author-substitute).
	authorSubstitute string
}

// renderTemplate renders tmpl's components in order and joins them with
// delim, the §4.4 "Group { children, delim }" joining rule applied at the
// template's own root.
func renderTemplate(tmpl style.Template, delim string, ctx renderCtx) string {
	parts := make([]string, 0, len(tmpl))
	for _, c := range tmpl {
		if s := renderComponent(c, ctx); s != "" {
			parts = append(parts, s)
		}
	}
	return ctx.format.Join(parts, delim)
}

func renderComponent(c style.TemplateComponent, ctx renderCtx) string {
	switch c.Kind {
	case style.KindGroup, style.KindList:
		return renderGroup(c, ctx)
	case style.KindCondition:
		return renderCondition(c, ctx)
	default:
		pv, fallback := resolveValue(c, ctx)
		if pv.empty() && fallback != nil {
			return renderTemplate(fallback, "", ctx)
		}
		return assemble(pv, c, ctx)
	}
}

// resolveValue dispatches to the per-kind value resolver. Only the Date
// resolver ever returns a non-nil fallback template (§4.6.5).
func resolveValue(c style.TemplateComponent, ctx renderCtx) (ProcValues, []style.TemplateComponent) {
	switch c.Kind {
	case style.KindContributor:
		return resolveContributor(c, ctx), nil
	case style.KindDate:
		return resolveDate(c, ctx.ref, ctx.loc)
	case style.KindTitle:
		return resolveTitle(c, ctx.ref, ctx.cfg), nil
	case style.KindNumber:
		return resolveNumber(c, ctx.ref), nil
	case style.KindVariable:
		return resolveVariable(c, ctx.ref), nil
	case style.KindTerm:
		return resolveTerm(c, ctx.loc), nil
	case style.KindText:
		return ProcValues{Value: c.Text, PreFormatted: true}, nil
	default:
		return ProcValues{}, nil
	}
}

func renderGroup(c style.TemplateComponent, ctx renderCtx) string {
	parts := make([]string, 0, len(c.Children))
	for _, child := range c.Children {
		if s := renderComponent(child, ctx); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	joined := ctx.format.Join(parts, c.Delimiter)
	return assemble(ProcValues{Value: joined, PreFormatted: true}, c, ctx)
}

func renderCondition(c style.TemplateComponent, ctx renderCtx) string {
	for _, b := range c.Branches {
		if evaluateBranch(b, ctx) {
			return renderTemplate(b.Children, "", ctx)
		}
	}
	if c.HasElse {
		return renderTemplate(c.Else, "", ctx)
	}
	return ""
}

// evaluateBranch tests a Condition branch's predicates under its match mode
// (any/all/none), per §4.6.7.
func evaluateBranch(b style.ConditionBranch, ctx renderCtx) bool {
	var preds []bool
	if len(b.ItemTypes) > 0 {
		preds = append(preds, b.ItemTypes[ctx.ref.Type])
	}
	for _, v := range b.Variable {
		preds = append(preds, hasVariable(ctx.ref, v))
	}
	for _, v := range b.IsNumeric {
		preds = append(preds, isNumericField(ctx.ref, v))
	}
	for _, v := range b.IsUncertainDate {
		preds = append(preds, isUncertainDate(ctx.ref, v))
	}
	if ctx.cit != nil {
		for range b.Locator {
			preds = append(preds, ctx.cit.Locator != "")
		}
		for _, v := range b.Position {
			preds = append(preds, ctx.cit.Position == v)
		}
	} else {
		for range b.Locator {
			preds = append(preds, false)
		}
		for range b.Position {
			preds = append(preds, false)
		}
	}
	if len(preds) == 0 {
		return true
	}
	switch b.Match {
	case "all":
		for _, p := range preds {
			if !p {
				return false
			}
		}
		return true
	case "none":
		for _, p := range preds {
			if p {
				return false
			}
		}
		return true
	default: // "any"
		for _, p := range preds {
			if p {
				return true
			}
		}
		return false
	}
}

func hasVariable(ref *reference.Reference, name string) bool {
	if contrib, ok := ref.Contributors[name]; ok {
		return !contrib.IsEmpty()
	}
	switch name {
	case "title":
		return !ref.Title(reference.TitlePrimary).IsEmpty()
	case "container-title":
		return !ref.ContainerTitle.IsEmpty()
	case "collection-title":
		return !ref.CollectionTitle.IsEmpty()
	case "issued":
		return string(ref.Issued) != ""
	case "accessed":
		return string(ref.Accessed) != ""
	case "volume":
		return ref.Numbers.Volume != ""
	case "issue":
		return ref.Numbers.Issue != ""
	case "page", "pages":
		return ref.Numbers.Pages != ""
	case "edition":
		return ref.Numbers.Edition != ""
	case "doi":
		return ref.Identifiers.DOI != ""
	case "url":
		return ref.Identifiers.URL != ""
	case "isbn":
		return ref.Identifiers.ISBN != ""
	case "issn":
		return ref.Identifiers.ISSN != ""
	case "pmid":
		return ref.Identifiers.PMID != ""
	case "publisher":
		return ref.Publisher.Name != ""
	case "note":
		return ref.Notes != ""
	default:
		return false
	}
}

// isNumericField reports whether a numeric-typed variable's value is a bare
// integer rather than a range or literal ("145" is numeric; "145-150" is
// not), per the legacy is-numeric condition.
func isNumericField(ref *reference.Reference, name string) bool {
	var v string
	switch name {
	case "volume":
		v = ref.Numbers.Volume
	case "issue":
		v = ref.Numbers.Issue
	case "page", "pages":
		v = ref.Numbers.Pages
	case "edition":
		v = ref.Numbers.Edition
	case "chapter-number":
		v = ref.Numbers.ChapterNumber
	default:
		return false
	}
	if v == "" {
		return false
	}
	_, err := strconv.Atoi(strings.TrimSpace(v))
	return err == nil
}

func isUncertainDate(ref *reference.Reference, name string) bool {
	d := dateField(ref, name).Parse()
	if d.Date != nil {
		return d.Date.Uncertain || d.Date.Approximate
	}
	return false
}

// semanticClass returns the "csln-*" tag a format's Semantic wraps a
// component's rendered body in.
func semanticClass(kind style.ComponentKind) string {
	switch kind {
	case style.KindContributor:
		return "csln-author"
	case style.KindDate:
		return "csln-date"
	case style.KindTitle:
		return "csln-title"
	case style.KindNumber:
		return "csln-number"
	case style.KindVariable:
		return "csln-variable"
	case style.KindTerm:
		return "csln-term"
	default:
		return "csln-text"
	}
}

// assemble applies §4.6.8's rendering order: per-type override merge, inner
// affixes, inline formatting (emph outside quote), semantic wrapping, link,
// wrap-punctuation, then outer affixes.
func assemble(pv ProcValues, c style.TemplateComponent, ctx renderCtx) string {
	if pv.Value == "" {
		return ""
	}
	r := c.Rendering
	if c.Overrides != nil {
		if o, ok := c.Overrides[ctx.ref.Type]; ok {
			r = r.Merge(o)
		} else if o, ok := c.Overrides["default"]; ok {
			r = r.Merge(o)
		}
	}

	f := ctx.format
	body := pv.Value
	if !pv.PreFormatted {
		body = f.Text(body)
	}
	body = f.Affix(pv.Prefix, body, pv.Suffix)
	if r.Quote {
		body = f.Quote(body)
	}
	if r.Emph {
		body = f.Emph(body)
	}
	if r.Strong {
		body = f.Strong(body)
	}
	if r.SmallCaps {
		body = f.SmallCaps(body)
	}
	body = f.Semantic(semanticClass(c.Kind), body)
	if pv.URL != "" && ctx.cfg.Links.Target != "none" {
		body = f.Link(pv.URL, body)
	}
	body = f.WrapPunctuation(r.Wrap, body)
	body = f.Affix(r.Prefix, body, r.Suffix)
	return body
}
