package localeset

import (
	"fmt"

	yaml "go.yaml.in/yaml/v2"
)

// rawTermValue mirrors the untagged RawTermValue union from the original
// locale schema: either a bare string, a {singular, plural} pair, or (for
// role terms) a form-keyed map. It tries each shape in turn, the same
// "attempt the simple shape, fall back to the struct" idiom the new style
// document's presets use (SPEC_FULL §6).
type rawTermValue struct {
	simple   string
	singular string
	plural   string
	forms    map[string]rawTermValue
}

func (v *rawTermValue) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err == nil {
		v.simple = s
		return nil
	}

	var sp struct {
		Singular string `yaml:"singular"`
		Plural   string `yaml:"plural"`
	}
	if err := unmarshal(&sp); err == nil && sp.Singular != "" {
		v.singular, v.plural = sp.Singular, sp.Plural
		return nil
	}

	var forms map[string]rawTermValue
	if err := unmarshal(&forms); err == nil {
		v.forms = forms
		return nil
	}

	return fmt.Errorf("localeset: term value must be a string, {singular,plural}, or a form map")
}

func (v rawTermValue) toTermValue() TermValue {
	if v.singular != "" || v.plural != "" {
		return TermValue{Singular: v.singular, Plural: v.plural}
	}
	return TermValue{Singular: v.simple}
}

type rawMonthNames struct {
	Long  []string `yaml:"long"`
	Short []string `yaml:"short"`
}

type rawRoleTerm struct {
	Long      *rawTermValue `yaml:"long"`
	Short     *rawTermValue `yaml:"short"`
	Verb      *rawTermValue `yaml:"verb"`
	VerbShort *rawTermValue `yaml:"verb-short"`
}

type rawDateTerms struct {
	Months          rawMonthNames `yaml:"months"`
	Seasons         []string      `yaml:"seasons"`
	UncertaintyTerm string        `yaml:"uncertainty-term"`
	OpenEndedTerm   string        `yaml:"open-ended-term"`
}

// rawLocale is the top-level YAML document shape (§6 "raw YAML document
// per BCP 47 id with dates, roles, terms sections").
type rawLocale struct {
	Locale       string                  `yaml:"locale"`
	Dates        rawDateTerms            `yaml:"dates"`
	Roles        map[string]rawRoleTerm  `yaml:"roles"`
	Terms        map[string]rawTermValue `yaml:"terms"`
	SortArticles []string                `yaml:"sort-articles"`
	OrdinalRules map[string]string       `yaml:"ordinal-rules"`
}

// Decode parses a raw locale YAML document into a Locale.
func Decode(data []byte) (*Locale, error) {
	var raw rawLocale
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("localeset: %w", err)
	}

	l := &Locale{
		ID:              raw.Locale,
		Terms:           map[string]TermValue{},
		Roles:           map[RoleKey]TermValue{},
		Seasons:         raw.Dates.Seasons,
		SortArticles:    raw.SortArticles,
		UncertaintyTerm: raw.Dates.UncertaintyTerm,
		OpenEndedTerm:   raw.Dates.OpenEndedTerm,
		OrdinalRules:    raw.OrdinalRules,
	}
	if l.UncertaintyTerm == "" {
		l.UncertaintyTerm = "?"
	}
	if l.OpenEndedTerm == "" {
		l.OpenEndedTerm = "present"
	}

	for name, v := range raw.Terms {
		l.Terms[name] = v.toTermValue()
	}
	for role, rt := range raw.Roles {
		assign := func(form Form, v *rawTermValue) {
			if v != nil {
				l.Roles[RoleKey{role, form}] = v.toTermValue()
			}
		}
		assign(FormLong, rt.Long)
		assign(FormShort, rt.Short)
		assign(FormVerb, rt.Verb)
		assign(FormVerbShort, rt.VerbShort)
	}

	copy(l.MonthsLong[:], raw.Dates.Months.Long)
	copy(l.MonthsShort[:], raw.Dates.Months.Short)

	return l, nil
}
