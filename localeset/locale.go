// Package localeset declares the locale table: terms, month names,
// sort-article list, and ordinal rules a style's output is rendered
// through (§3).
package localeset

// Form selects which grammatical form of a term/role is used.
type Form string

const (
	FormLong      Form = "long"
	FormShort     Form = "short"
	FormVerb      Form = "verb"
	FormVerbShort Form = "verb-short"
)

// TermValue is a term that may have a single value or distinct
// singular/plural forms.
type TermValue struct {
	Singular string
	Plural   string
}

// String returns the singular form, the common case for terms that don't
// distinguish plurality.
func (t TermValue) String() string { return t.Singular }

// Locale is a fully resolved locale table, keyed by BCP 47 id.
type Locale struct {
	ID string

	// General terms, keyed by term name (e.g. "and", "et-al", "present",
	// "no-date", "ibid").
	Terms map[string]TermValue
	// Role terms, keyed by (role, form), e.g. ("editor", FormShort) -> "ed.".
	Roles map[RoleKey]TermValue

	MonthsLong  [12]string
	MonthsShort [12]string
	Seasons     []string

	// SortArticles extends reference.SortArticles with locale-specific
	// leading articles stripped from sort keys (§4.6.1).
	SortArticles []string

	// UncertaintyTerm and OpenEndedTerm back §4.6.5's date fallbacks
	// ("present" for an open interval end, by default).
	UncertaintyTerm string
	OpenEndedTerm   string

	// OrdinalRules maps a numeral's last digit(s) to its ordinal suffix,
	// e.g. {"1": "st", "2": "nd", "3": "rd", "default": "th"}.
	OrdinalRules map[string]string
}

// RoleKey is the (role, form) composite key for Locale.Roles.
type RoleKey struct {
	Role string
	Form Form
}

// Term looks up a general term by name, returning "" if absent.
func (l *Locale) Term(name string) string {
	if l == nil {
		return ""
	}
	if v, ok := l.Terms[name]; ok {
		return v.Singular
	}
	return ""
}

// TermPlural looks up a general term, choosing the plural form when
// plural is true and one is defined.
func (l *Locale) TermPlural(name string, plural bool) string {
	if l == nil {
		return ""
	}
	v, ok := l.Terms[name]
	if !ok {
		return ""
	}
	if plural && v.Plural != "" {
		return v.Plural
	}
	return v.Singular
}

// Role looks up a role term by (role, form), falling back to FormLong then
// to the role name itself.
func (l *Locale) Role(role string, form Form) string {
	if l == nil {
		return role
	}
	if v, ok := l.Roles[RoleKey{role, form}]; ok {
		return v.Singular
	}
	if v, ok := l.Roles[RoleKey{role, FormLong}]; ok {
		return v.Singular
	}
	return role
}

// Month returns the long or short month name for a 1-based month number.
func (l *Locale) Month(n int, short bool) string {
	if l == nil || n < 1 || n > 12 {
		return ""
	}
	if short {
		return l.MonthsShort[n-1]
	}
	return l.MonthsLong[n-1]
}

// Ordinal returns the ordinal suffix for n per the locale's ordinal rules,
// e.g. Ordinal(1) -> "st", Ordinal(11) -> "th".
func (l *Locale) Ordinal(n int) string {
	if l == nil || l.OrdinalRules == nil {
		return ""
	}
	key := itoa(n % 10)
	if n%100 >= 11 && n%100 <= 13 {
		key = "default"
	}
	if suf, ok := l.OrdinalRules[key]; ok {
		return suf
	}
	return l.OrdinalRules["default"]
}

func itoa(n int) string {
	if n < 0 {
		n = -n
	}
	if n == 0 {
		return "0"
	}
	digits := []byte{}
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

// EnUS is the built-in fallback locale used when no style/system locale
// resolves to a known table (§6: "falls back to en-US").
func EnUS() *Locale {
	return &Locale{
		ID: "en-US",
		Terms: map[string]TermValue{
			"and":      {Singular: "and"},
			"et-al":    {Singular: "et al."},
			"present":  {Singular: "present"},
			"no-date":  {Singular: "n.d."},
			"ibid":     {Singular: "ibid."},
			"editor":   {Singular: "editor", Plural: "editors"},
			"edition":  {Singular: "ed."},
			"page":     {Singular: "page", Plural: "pages"},
		},
		Roles: map[RoleKey]TermValue{
			{"editor", FormLong}:   {Singular: "editor", Plural: "editors"},
			{"editor", FormShort}:  {Singular: "ed.", Plural: "eds."},
			{"translator", FormLong}:  {Singular: "translator", Plural: "translators"},
			{"translator", FormShort}: {Singular: "trans.", Plural: "trans."},
		},
		MonthsLong: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		MonthsShort: [12]string{
			"Jan.", "Feb.", "Mar.", "Apr.", "May", "Jun.",
			"Jul.", "Aug.", "Sep.", "Oct.", "Nov.", "Dec.",
		},
		UncertaintyTerm: "?",
		OpenEndedTerm:   "present",
		OrdinalRules: map[string]string{
			"1": "st", "2": "nd", "3": "rd", "default": "th",
		},
	}
}
