package process

import (
	"log/slog"

	"github.com/csln-go/csln/localeset"
	"github.com/csln-go/csln/reference"
	"github.com/csln-go/csln/render"
	"github.com/csln-go/csln/style"
)

// Processor runs the operations of §4.6 against one style.Style and
// reference.Bibliography. It is single-threaded and its only mutable state
// is the citation-number assignment map, cleared by Reset between
// documents. It keeps no disambiguation cache: suffixes are recomputed on
// each RenderBibliography call.
type Processor struct {
	log *slog.Logger

	style *style.Style
	bib   *reference.Bibliography
	loc   *localeset.Locale

	citationNumbers map[string]int
	nextNumber      int
}

// Option configures a Processor, following the teacher's functional-options
// constructor shape.
type Option func(*Processor)

// WithLogger overrides the default logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Processor) { p.log = l }
}

// WithLocale overrides the default (en-US) locale table.
func WithLocale(l *localeset.Locale) Option {
	return func(p *Processor) { p.loc = l }
}

// NewProcessor builds a Processor over s and bib.
func NewProcessor(s *style.Style, bib *reference.Bibliography, opts ...Option) *Processor {
	p := &Processor{
		log:             slog.Default(),
		style:           s,
		bib:             bib,
		loc:             localeset.EnUS(),
		citationNumbers: make(map[string]int),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Reset clears the citation-number assignment map, for starting a new
// document with the same Processor instance (§5).
func (p *Processor) Reset() {
	p.citationNumbers = make(map[string]int)
	p.nextNumber = 0
}

// CitationItem is one `[@id]` or `[@id, locator]` reference within a
// citation (§6).
type CitationItem struct {
	ID      string
	Locator string
}

// Citation is a single in-text citation: one or more items cited together,
// e.g. "(Smith 2020; Jones 2021)".
type Citation struct {
	Items []CitationItem
}

// itemDelimiter joins multiple items within one citation; CSL styles
// conventionally use "; " here and the corpus offers no first-class field
// for it, so it is fixed rather than extracted.
const itemDelimiter = "; "

// ensureCitationNumber returns ref's assigned citation number, assigning
// the next one in first-citation order if this is its first appearance
// (I6), and reports whether this was the first appearance.
func (p *Processor) ensureCitationNumber(ref *reference.Reference) (n int, first bool) {
	if n, ok := p.citationNumbers[ref.ID]; ok {
		return n, false
	}
	p.nextNumber++
	p.citationNumbers[ref.ID] = p.nextNumber
	ref.Numbers.CitationNumber = p.nextNumber
	return p.nextNumber, true
}

// ProcessCitation implements process_citation (§4.6): resolves each item's
// reference, assigns citation numbers, runs the citation template, and
// joins/wraps the result.
func (p *Processor) ProcessCitation(c Citation, f render.Format) (string, error) {
	parts := make([]string, 0, len(c.Items))
	for _, item := range c.Items {
		ref, ok := p.bib.Lookup(item.ID)
		if !ok {
			return "", &UnresolvedReferenceError{ID: item.ID}
		}
		_, first := p.ensureCitationNumber(ref)
		position := "subsequent"
		if first {
			position = "first"
		}
		ctx := renderCtx{
			ref:    ref,
			cfg:    p.style.Options,
			loc:    p.loc,
			format: f,
			cit:    &citationContext{Position: position, Locator: item.Locator},
		}
		parts = append(parts, renderTemplate(p.style.Citation, p.style.CitationDelimiter, ctx))
	}
	joined := f.Join(parts, itemDelimiter)
	return f.WrapPunctuation(p.style.CitationWrap, joined), nil
}

// ProcessedReference is one bibliography entry after sorting,
// subsequent-author substitution, and disambiguation (§4.6).
type ProcessedReference struct {
	Ref              *reference.Reference
	SubstituteAuthor bool
	DisambigTag      string
}

// ProcessedReferences is the structured result of process_references.
type ProcessedReferences struct {
	Entries []ProcessedReference
}

// defaultSortKeys returns the sort template for non-Custom processing
// modes, which the corpus's legacy styles never spell out explicitly.
func defaultSortKeys(mode style.ProcessingMode) []style.SortKey {
	switch mode {
	case style.ModeNumeric:
		return []style.SortKey{{Key: "citation-number", Ascending: true}}
	default:
		return []style.SortKey{
			{Key: "author", Ascending: true},
			{Key: "year", Ascending: true},
			{Key: "title", Ascending: true},
		}
	}
}

// ProcessReferences implements process_references (§4.6): sorts the full
// bibliography, marks subsequent-author substitutions, and computes
// author-date disambiguation tags.
func (p *Processor) ProcessReferences() *ProcessedReferences {
	cfg := p.style.Options
	refs := make([]*reference.Reference, len(p.bib.References))
	copy(refs, p.bib.References)

	keys := cfg.Custom.Sort
	if cfg.Processing != style.ModeCustom || len(keys) == 0 {
		keys = defaultSortKeys(cfg.Processing)
	}
	SortReferences(refs, keys, cfg, p.loc)

	substitutes := MarkSubsequentAuthorSubstitutes(refs, cfg, p.loc)
	var tags map[string]string
	if cfg.Processing == style.ModeAuthorDate {
		tags = DisambiguateByAuthorYear(refs, cfg, p.loc)
	}

	out := &ProcessedReferences{Entries: make([]ProcessedReference, len(refs))}
	for i, ref := range refs {
		out.Entries[i] = ProcessedReference{
			Ref:              ref,
			SubstituteAuthor: substitutes[i],
			DisambigTag:      tags[ref.ID],
		}
	}
	return out
}

// RenderBibliography implements render_bibliography / render_bibliography_with_format
// (§4.6): emits each processed reference through the bibliography template
// and joins with the configured entry separator.
func (p *Processor) RenderBibliography(f render.Format) string {
	cfg := p.style.Options
	processed := p.ProcessReferences()

	entries := make([]string, 0, len(processed.Entries))
	for _, pe := range processed.Entries {
		ctx := renderCtx{ref: pe.Ref, cfg: cfg, loc: p.loc, format: f}
		if pe.SubstituteAuthor {
			ctx.authorSubstitute = cfg.Bibliography.SubsequentAuthorSubstitute
		}
		body := renderTemplate(p.style.Bibliography, p.style.BibliographyDelimiter, ctx)
		if body == "" {
			continue
		}
		if cfg.Processing == style.ModeNumeric && pe.Ref.Numbers.CitationNumber > 0 {
			body = itoaSimple(pe.Ref.Numbers.CitationNumber) + ". " + body
		}
		if pe.DisambigTag != "" {
			body += pe.DisambigTag
		}
		body += cfg.Bibliography.EntrySuffix
		entries = append(entries, f.Entry(pe.Ref.ID, body))
	}
	joined := f.Join(entries, cfg.Bibliography.Separator)
	return f.Finish(joined)
}

func itoaSimple(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	if neg {
		return "-" + string(digits)
	}
	return string(digits)
}
