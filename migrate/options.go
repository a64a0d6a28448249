package migrate

import (
	"github.com/csln-go/csln/legacy"
	"github.com/csln-go/csln/style"
)

// ExtractConfig scans s (after macro inlining) and produces the style.Config
// described in §4.3. citation and bibliography are the already-inlined node
// lists from InlineMacros.
func (m *Migrator) ExtractConfig(s *legacy.Style, citation, bibliography []legacy.Node) style.Config {
	mode := detectProcessingMode(s, citation)
	cfg := style.Config{
		Processing:           mode,
		Contributors:         extractContributorConfig(s),
		Substitute:           extractSubstitutePattern(s),
		Dates:                extractDateConfig(s),
		Titles:               extractTitleConfig(s),
		Bibliography:         extractBibliographyConfig(s),
		PunctuationInQuote:   extractPunctuationInQuote(s),
		VolumePagesDelimiter: extractVolumePagesDelimiter(s),
		Multilingual: style.MultilingualConfig{
			TitleMode: style.Primary,
			NameMode:  style.Primary,
		},
		Links: style.LinksConfig{Target: "doi", Anchor: "title"},
	}
	if mode == style.ModeCustom {
		cfg.Custom = extractCustomProcessing(s)
	}
	if pr := extractPageRangeFormat(s); pr != "" {
		// Page-range format has no direct style.Config field of its own in
		// §3's listed fields; it is kept in the Dates config's Extra map
		// under "page-range-format".
		if cfg.Dates.Extra == nil {
			cfg.Dates.Extra = map[string]any{}
		}
		cfg.Dates.Extra["page-range-format"] = pr
	}
	return cfg
}
