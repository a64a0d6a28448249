package reference

// MultilingualString holds a value plus optional per-script translations
// and transliterations, resolved at render time by the active
// style.MultilingualConfig (§4.6.2 step 1, §3).
type MultilingualString struct {
	// Original is the value as authored, in its original script.
	Original string
	// OriginalScript is a BCP 47 script/language subtag for Original, e.g.
	// "ja" or "ja-Latn". Empty means "unspecified".
	OriginalScript string
	// Transliterated maps a script tag to a transliterated form.
	Transliterated map[string]string
	// Translated maps a language tag to a translated form.
	Translated map[string]string
}

// NewMultilingualString wraps a plain string, the common case for titles
// and names that carry no translation data.
func NewMultilingualString(s string) MultilingualString {
	return MultilingualString{Original: s}
}

// IsEmpty reports whether the string carries no value at all: no original,
// no transliteration, and no translation.
func (m MultilingualString) IsEmpty() bool {
	return m.Original == "" && len(m.Transliterated) == 0 && len(m.Translated) == 0
}

// Select resolves m to a single string per the given mode and preferred
// script/language tag. Combined mode renders transliterated only, the same
// as Transliterated mode, matching observed legacy behavior.
func (m MultilingualString) Select(mode MultilingualMode, preferred string) string {
	switch mode {
	case ModeTransliterated, ModeCombined:
		if v, ok := m.Transliterated[preferred]; ok {
			return v
		}
		for _, v := range m.Transliterated {
			return v
		}
		return m.Original
	case ModeTranslated:
		if v, ok := m.Translated[preferred]; ok {
			return v
		}
		return m.Original
	default: // ModePrimary
		return m.Original
	}
}

// MultilingualMode mirrors style.MultilingualMode without importing the
// style package, to keep reference free of a dependency on style.
type MultilingualMode string

const (
	ModePrimary        MultilingualMode = "primary"
	ModeTransliterated MultilingualMode = "transliterated"
	ModeTranslated     MultilingualMode = "translated"
	ModeCombined       MultilingualMode = "combined"
)
