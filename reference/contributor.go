package reference

// Contributor is a tagged variant over a single literal name, a structured
// name, and a list of contributors (§3). Exactly one of the three is set.
type Contributor struct {
	Simple     *SimpleName
	Structured *StructuredName
	List       []Contributor
}

// SimpleName is a literal, unparsed name string (a corporate author, or any
// name the bibliography author didn't want split into parts).
type SimpleName struct {
	Name     string
	Location string // optional, e.g. a performing-group's home venue
}

// StructuredName is a name already broken into family/given plus the
// particles CSL distinguishes: a dropping particle ("de" in "Charles de
// Gaulle", kept for sort but dropped when initials-only) and a
// non-dropping particle ("van" in "Ludwig van Beethoven", always kept).
type StructuredName struct {
	Given               string
	Family              string
	Suffix              string
	DroppingParticle    string
	NonDroppingParticle string
}

// FlatName is the resolved, renderer-ready shape every Contributor variant
// expands to (§4.6.2 step 2; I2: a Contributor always yields a non-empty
// FlatName list or renders empty).
type FlatName struct {
	Family              string
	Given               string
	Suffix              string
	DroppingParticle    string
	NonDroppingParticle string
	// Literal is set instead of Family/Given for a SimpleName; corporate
	// names render it verbatim (§4.6.2 step 6).
	Literal string
}

// IsLiteral reports whether f came from a SimpleName rather than a
// StructuredName.
func (f FlatName) IsLiteral() bool { return f.Literal != "" }

// FamilyOrLiteral returns the value used as a sort/disambiguation key: the
// family name if structured, else the literal string.
func (f FlatName) FamilyOrLiteral() string {
	if f.Family != "" {
		return f.Family
	}
	return f.Literal
}

// ToFlatNames expands c into its flat, renderer-ready name list (I2).
func (c Contributor) ToFlatNames() []FlatName {
	switch {
	case c.Simple != nil:
		if c.Simple.Name == "" {
			return nil
		}
		return []FlatName{{Literal: c.Simple.Name}}
	case c.Structured != nil:
		s := c.Structured
		if s.Family == "" && s.Given == "" {
			return nil
		}
		return []FlatName{{
			Family:              s.Family,
			Given:               s.Given,
			Suffix:              s.Suffix,
			DroppingParticle:    s.DroppingParticle,
			NonDroppingParticle: s.NonDroppingParticle,
		}}
	case len(c.List) > 0:
		var out []FlatName
		for _, sub := range c.List {
			out = append(out, sub.ToFlatNames()...)
		}
		return out
	default:
		return nil
	}
}

// IsEmpty reports whether c carries no data at all, the trigger for the
// substitute chain (§4.6.3).
func (c Contributor) IsEmpty() bool {
	return len(c.ToFlatNames()) == 0
}
