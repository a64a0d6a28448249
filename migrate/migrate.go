package migrate

import (
	"github.com/csln-go/csln/legacy"
	"github.com/csln-go/csln/style"
)

// Migrate runs the full pipeline of §4 over a parsed legacy style: macro
// inlining, options extraction, upsampling, and compression, producing the
// flat declarative style described in §3.
func (m *Migrator) Migrate(s *legacy.Style) (*style.Style, error) {
	citation, bibliography, err := m.InlineMacros(s)
	if err != nil {
		return nil, err
	}

	cfg := m.ExtractConfig(s, citation, bibliography)

	wrap, _, _ := style.CanonicalizeWrap(s.Citation.Layout.Prefix, s.Citation.Layout.Suffix)
	out := &style.Style{
		Info: style.Info{
			Title:   s.Info.Title,
			ID:      s.Info.ID,
			Authors: s.Info.Authors,
		},
		Options:           cfg,
		Citation:          Compress(Upsample(citation)),
		CitationDelimiter: s.Citation.Layout.Delimiter,
		CitationWrap:      wrap,
	}
	if bibliography != nil {
		out.Bibliography = Compress(Upsample(bibliography))
		out.BibliographyDelimiter = s.Bibliography.Layout.Delimiter
	}
	return out, nil
}

// Migrate is the package-level convenience entry point, using a Migrator
// configured with the default logger.
func Migrate(s *legacy.Style) (*style.Style, error) {
	return New().Migrate(s)
}
