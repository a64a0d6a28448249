package process

import (
	"strconv"

	"github.com/csln-go/csln/localeset"
	"github.com/csln-go/csln/reference"
	"github.com/csln-go/csln/style"
)

// ProcValues is the intermediate result of resolving one TemplateComponent
// against a reference, before the renderer applies formatting (§4.6.8).
type ProcValues struct {
	Value        string
	Prefix       string
	Suffix       string
	URL          string
	PreFormatted bool
}

func (p ProcValues) empty() bool { return p.Value == "" }

// multilingualModeOf converts a style.MultilingualMode to its reference
// package equivalent; the two are kept as distinct types so reference does
// not import style (DESIGN.md).
func multilingualModeOf(m style.MultilingualMode) reference.MultilingualMode {
	switch m {
	case style.Transliterated:
		return reference.ModeTransliterated
	case style.Translated:
		return reference.ModeTranslated
	case style.Combined:
		return reference.ModeCombined
	default:
		return reference.ModePrimary
	}
}

// resolveContributor implements §4.6.2 steps 1-6 plus the §4.6.3 substitute
// fallback: if the component's role has no data on ref, the substitute
// chain is walked and the first non-empty candidate's rendered value is
// used in its place.
func resolveContributor(c style.TemplateComponent, ctx renderCtx) ProcValues {
	ref, cfg, loc := ctx.ref, ctx.cfg, ctx.loc
	if ctx.authorSubstitute != "" && c.Role == style.RoleAuthor {
		return ProcValues{Value: ctx.authorSubstitute}
	}
	contrib, ok := ref.Contributors[string(c.Role)]
	if !ok || contrib.IsEmpty() {
		if v, ok := resolveSubstitute(ref, cfg, loc); ok {
			return ProcValues{Value: v}
		}
		return ProcValues{}
	}
	return ProcValues{Value: renderContributor(contrib, c.Form, cfg, loc)}
}

// renderContributor expands a contributor to flat names, applies et-al
// truncation and "and" joining, and renders each name per form/sort order.
func renderContributor(c reference.Contributor, form style.ContributorForm, cfg style.Config, loc *localeset.Locale) string {
	names := c.ToFlatNames()
	if len(names) == 0 {
		return ""
	}
	truncated := false
	if cfg.Contributors.ShortenMin > 0 && len(names) >= cfg.Contributors.ShortenMin {
		keep := cfg.Contributors.ShortenUseFirst
		if keep < 1 {
			keep = 1
		}
		if keep < len(names) {
			names = names[:keep]
			truncated = true
		}
	}
	rendered := make([]string, len(names))
	for i, n := range names {
		rendered[i] = renderFlatName(n, form, cfg.Contributors.DisplayAsSort)
	}
	if truncated {
		etAl := loc.Term("et-al")
		if etAl == "" {
			etAl = "et al."
		}
		return joinWithOxford(rendered, "", style.AndNone, false) + " " + etAl
	}
	and := andSeparator(cfg.Contributors.And, loc)
	return joinWithOxford(rendered, and, cfg.Contributors.And, cfg.Contributors.DelimiterPrecedesLast == "true")
}

func andSeparator(style_ style.AndStyle, loc *localeset.Locale) string {
	switch style_ {
	case style.AndSymbol:
		return "&"
	case style.AndNone:
		return ""
	default:
		and := loc.Term("and")
		if and == "" {
			and = "and"
		}
		return and
	}
}

func joinWithOxford(names []string, and string, mode style.AndStyle, oxford bool) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	if mode == style.AndNone || and == "" {
		return joinStrings(names, ", ")
	}
	head := joinStrings(names[:len(names)-1], ", ")
	sep := " " + and + " "
	if oxford {
		sep = "," + sep
	}
	return head + sep + names[len(names)-1]
}

func joinStrings(ss []string, sep string) string {
	out := ""
	for i, s := range ss {
		if i > 0 {
			out += sep
		}
		out += s
	}
	return out
}

// renderFlatName implements §4.6.2 step 5: Long is given+particles+family+
// suffix, Short is family only (with non-dropping particle); display-as-sort
// swaps to "Family, Given".
func renderFlatName(n reference.FlatName, form style.ContributorForm, displayAsSort string) string {
	if n.IsLiteral() {
		return n.Literal
	}
	family := n.Family
	if n.NonDroppingParticle != "" {
		family = n.NonDroppingParticle + " " + family
	}
	if form == style.FormShort {
		return family
	}
	given := n.Given
	if n.DroppingParticle != "" {
		given = given + " " + n.DroppingParticle
	}
	full := given
	if full != "" {
		full += " "
	}
	full += family
	if n.Suffix != "" {
		full += " " + n.Suffix
	}
	if displayAsSort == "all" || (displayAsSort == "first" && given != "") {
		sorted := family
		if n.Suffix != "" {
			sorted += ", " + n.Suffix
		}
		if given != "" {
			sorted += ", " + given
		}
		return sorted
	}
	return full
}

// resolveSubstitute walks cfg's substitute chain (base, or the per-type
// override for ref.Type if present) and returns the first candidate's
// rendered value (§4.6.3).
func resolveSubstitute(ref *reference.Reference, cfg style.Config, loc *localeset.Locale) (string, bool) {
	chain := cfg.Substitute.Base
	if cfg.Substitute.Overrides != nil {
		if o, ok := cfg.Substitute.Overrides[ref.Type]; ok {
			chain = o
		}
	}
	for _, field := range chain {
		if contrib, ok := ref.Contributors[field]; ok && !contrib.IsEmpty() {
			return renderContributor(contrib, style.FormLong, cfg, loc), true
		}
		switch field {
		case "title":
			if v := ref.Title(reference.TitlePrimary); !v.IsEmpty() {
				return v.Select(multilingualModeOf(cfg.Multilingual.TitleMode), cfg.Multilingual.PreferredScript), true
			}
		case "container-title":
			if !ref.ContainerTitle.IsEmpty() {
				return ref.ContainerTitle.Select(multilingualModeOf(cfg.Multilingual.TitleMode), cfg.Multilingual.PreferredScript), true
			}
		}
	}
	return "", false
}

// resolveTitle implements the multilingual selection of §4.6.2 step 1 for
// title components.
func resolveTitle(c style.TemplateComponent, ref *reference.Reference, cfg style.Config) ProcValues {
	v := ref.Title(reference.TitleVariable(c.TitleVariable))
	if v.IsEmpty() {
		return ProcValues{}
	}
	return ProcValues{Value: v.Select(multilingualModeOf(cfg.Multilingual.TitleMode), cfg.Multilingual.PreferredScript)}
}

// resolveDate implements §4.6.5: parses the EDTF string, renders one of the
// five forms, and handles ranges, open ranges, and the fallback template.
func resolveDate(c style.TemplateComponent, ref *reference.Reference, loc *localeset.Locale) (ProcValues, []style.TemplateComponent) {
	raw := dateField(ref, c.DateVariable)
	d := raw.Parse()
	if d.Date == nil && d.Interval == nil {
		if d.Literal != "" {
			return ProcValues{Value: d.Literal}, nil
		}
		return ProcValues{}, c.Fallback
	}
	if d.Interval != nil {
		return ProcValues{Value: renderInterval(d.Interval, loc)}, nil
	}
	return ProcValues{Value: renderDatePoint(d.Date, c.DateFormKind, loc)}, nil
}

func dateField(ref *reference.Reference, variable string) reference.EdtfString {
	switch variable {
	case "accessed":
		return ref.Accessed
	case "issued":
		return ref.Issued
	default:
		return ""
	}
}

func renderDatePoint(d *reference.EdtfDate, form style.DateForm, loc *localeset.Locale) string {
	switch form {
	case style.DateNumeric:
		switch {
		case d.Precision >= reference.PrecisionDay:
			return pad4(d.Year) + "-" + pad2(d.Month) + "-" + pad2(d.Day)
		case d.Precision >= reference.PrecisionMonth:
			return pad4(d.Year) + "-" + pad2(d.Month)
		default:
			return pad4(d.Year)
		}
	case style.DateShort:
		if d.Precision >= reference.PrecisionMonth {
			return loc.Month(d.Month, true) + " " + pad4(d.Year)
		}
		return pad4(d.Year)
	case style.DateFull:
		switch {
		case d.Precision >= reference.PrecisionDay:
			return loc.Month(d.Month, false) + " " + strconv.Itoa(d.Day) + ", " + pad4(d.Year)
		case d.Precision >= reference.PrecisionMonth:
			return loc.Month(d.Month, false) + " " + pad4(d.Year)
		default:
			return pad4(d.Year)
		}
	default: // DateYear
		return pad4(d.Year)
	}
}

func renderInterval(iv *reference.Interval, loc *localeset.Locale) string {
	left := "…"
	if iv.Start != nil {
		left = pad4(iv.Start.Year)
	}
	right := loc.OpenEndedTerm
	if right == "" {
		right = "present"
	}
	if iv.End != nil {
		right = pad4(iv.End.Year)
	}
	return left + "–" + right
}

func pad4(n int) string {
	s := strconv.Itoa(n)
	for len(s) < 4 && n >= 0 {
		s = "0" + s
	}
	return s
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// resolveNumber reads the reference's Numbers struct, or the processor's
// assigned citation number for NumberCitationNumber (§4.6.6).
func resolveNumber(c style.TemplateComponent, ref *reference.Reference) ProcValues {
	switch c.NumberVariable {
	case style.NumberVolume:
		return ProcValues{Value: ref.Numbers.Volume}
	case style.NumberIssue:
		return ProcValues{Value: ref.Numbers.Issue}
	case style.NumberPages:
		return ProcValues{Value: ref.Numbers.Pages}
	case style.NumberEdition:
		return ProcValues{Value: ref.Numbers.Edition}
	case style.NumberChapter:
		return ProcValues{Value: ref.Numbers.ChapterNumber}
	case style.NumberCitationNumber:
		if ref.Numbers.CitationNumber == 0 {
			return ProcValues{}
		}
		return ProcValues{Value: strconv.Itoa(ref.Numbers.CitationNumber)}
	default:
		return ProcValues{}
	}
}

// resolveVariable reads one of the reference's generic string fields.
func resolveVariable(c style.TemplateComponent, ref *reference.Reference) ProcValues {
	switch c.VariableName {
	case "doi":
		return ProcValues{Value: ref.Identifiers.DOI, URL: "https://doi.org/" + ref.Identifiers.DOI}
	case "url":
		return ProcValues{Value: ref.Identifiers.URL, URL: ref.Identifiers.URL}
	case "isbn":
		return ProcValues{Value: ref.Identifiers.ISBN}
	case "issn":
		return ProcValues{Value: ref.Identifiers.ISSN}
	case "pmid":
		return ProcValues{Value: ref.Identifiers.PMID}
	case "publisher":
		return ProcValues{Value: ref.Publisher.Name}
	case "publisher-place":
		return ProcValues{Value: ref.Publisher.Place}
	case "note":
		return ProcValues{Value: ref.Notes}
	default:
		return ProcValues{}
	}
}

// resolveTerm looks up a locale term or role label by name/form.
func resolveTerm(c style.TemplateComponent, loc *localeset.Locale) ProcValues {
	if v := loc.Term(c.TermName); v != "" {
		return ProcValues{Value: v}
	}
	form := localeset.FormLong
	if c.TermForm == "short" {
		form = localeset.FormShort
	}
	return ProcValues{Value: loc.Role(c.TermName, form)}
}
