package migrate

import (
	"github.com/csln-go/csln/legacy"
	"github.com/csln-go/csln/style"
)

// extractBibliographyConfig pulls the entry suffix from the bibliography
// layout's suffix attribute, the entry separator from the top-level
// group's delimiter, and the subsequent-author-substitute marker from the
// bibliography layout's Extra attributes (where legacy styles record it
// verbatim, since it has no first-class node of its own), per §4.3.
func extractBibliographyConfig(s *legacy.Style) style.BibliographyConfig {
	cfg := style.BibliographyConfig{Separator: "\n\n"}
	if s.Bibliography == nil {
		return cfg
	}
	layout := s.Bibliography.Layout
	cfg.EntrySuffix = layout.Suffix
	if layout.Extra != nil {
		if v, ok := layout.Extra["subsequent-author-substitute"]; ok {
			cfg.SubsequentAuthorSubstitute = v
		}
		if v, ok := layout.Extra["hanging-indent"]; ok && v == "true" {
			cfg.HangingIndent = true
		}
	}
	for _, n := range layout.Children {
		if g, ok := n.(*legacy.Group); ok && g.Delimiter != "" {
			cfg.Separator = g.Delimiter
			break
		}
	}
	return cfg
}
