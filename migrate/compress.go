package migrate

import "github.com/csln-go/csln/style"

// Compress collapses single-variable then/else Condition branches into
// per-type Overrides on the matching component (§4.5), recursing into Group
// children and surviving Conditions. Conditions with more than one branch, or
// whose then/else arms don't reduce to exactly one matching component, are
// left in place.
func Compress(tmpl style.Template) style.Template {
	out := make(style.Template, 0, len(tmpl))
	for _, c := range tmpl {
		switch c.Kind {
		case style.KindCondition:
			if merged, ok := compressCondition(c); ok {
				out = append(out, merged)
				continue
			}
			out = append(out, compressConditionChildren(c))
		case style.KindGroup:
			c.Children = Compress(c.Children)
			out = append(out, c)
		default:
			out = append(out, c)
		}
	}
	return out
}

func compressConditionChildren(c style.TemplateComponent) style.TemplateComponent {
	for i := range c.Branches {
		c.Branches[i].Children = Compress(c.Branches[i].Children)
	}
	if c.HasElse {
		c.Else = Compress(c.Else)
	}
	return c
}

// compressCondition attempts the merge described in §4.5: a single branch
// (no else-if) whose then-arm and else-arm are each exactly one component of
// the same kind/variable collapses into that component, with the then-arm's
// Rendering recorded as an override for every item type the branch matches.
func compressCondition(c style.TemplateComponent) (style.TemplateComponent, bool) {
	if len(c.Branches) != 1 {
		return style.TemplateComponent{}, false
	}
	branch := c.Branches[0]
	then := Compress(branch.Children)
	if len(then) != 1 {
		return style.TemplateComponent{}, false
	}
	if !c.HasElse {
		return style.TemplateComponent{}, false
	}
	els := Compress(c.Else)
	if len(els) != 1 {
		return style.TemplateComponent{}, false
	}
	thenComp, elseComp := then[0], els[0]
	if !sameVariable(thenComp, elseComp) {
		return style.TemplateComponent{}, false
	}

	merged := elseComp
	if merged.Overrides == nil {
		merged.Overrides = map[string]style.RenderingOverride{}
	}
	override := overrideFromThen(thenComp.Rendering)
	for t := range branch.ItemTypes {
		merged.Overrides[t] = override
	}
	return merged, true
}

// overrideFromThen builds the RenderingOverride applied for a branch's
// matching types: every field of the then-arm's Rendering is recorded
// explicitly, so a base Rendering field the then-arm leaves at its zero
// value (no quotes, no emphasis) is applied as an explicit clear rather than
// silently falling through to the base component's own value.
func overrideFromThen(then style.Rendering) style.RenderingOverride {
	o := style.RenderingOverride{}
	emph, quote, strong, smallCaps := then.Emph, then.Quote, then.Strong, then.SmallCaps
	prefix, suffix, wrap := then.Prefix, then.Suffix, then.Wrap
	o.Emph, o.Quote, o.Strong, o.SmallCaps = &emph, &quote, &strong, &smallCaps
	o.Prefix, o.Suffix, o.Wrap = &prefix, &suffix, &wrap
	return o
}

// sameVariable reports whether two compressed components refer to the same
// underlying variable, the precondition for merging a then/else pair into a
// single component with overrides.
func sameVariable(a, b style.TemplateComponent) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case style.KindContributor:
		return a.Role == b.Role
	case style.KindDate:
		return a.DateVariable == b.DateVariable
	case style.KindTitle:
		return a.TitleVariable == b.TitleVariable
	case style.KindNumber:
		return a.NumberVariable == b.NumberVariable
	case style.KindVariable:
		return a.VariableName == b.VariableName
	case style.KindTerm:
		return a.TermName == b.TermName
	default:
		return false
	}
}
