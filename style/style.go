package style

// Info mirrors the legacy style's self-description.
type Info struct {
	Title   string
	ID      string
	Authors []string
}

// Style is the root of the new, flat declarative style model (§3). It is
// produced by migrate.Migrate from a legacy.Style or built directly in Go;
// this module has no decoder that reads it from a YAML/JSON document.
type Style struct {
	Info    Info
	Options Config

	Citation     Template
	Bibliography Template // nil if the style has no standalone bibliography entry

	// CitationDelimiter joins the top-level citation components (e.g. ", "
	// between an author component and a year component); CitationWrap is the
	// citation's own outermost bracketing, lifted from the legacy citation
	// layout's formatting (§4.4).
	CitationDelimiter string
	CitationWrap      WrapKind
	// BibliographyDelimiter joins the top-level bibliography entry
	// components, independent of BibliographyConfig.Separator which joins
	// entries to each other.
	BibliographyDelimiter string

	// Templates holds named sub-templates a style may reference (e.g. for
	// reuse across citation and bibliography); optional.
	Templates map[string]Template
}

// SchemaError describes a style-schema violation (unknown top-level field,
// bad preset name, etc.), per §7. Nothing in this module returns it, since
// no style-document decoder exists here.
type SchemaError struct {
	Path string
	Msg  string
}

func (e *SchemaError) Error() string {
	return "style: schema error at " + e.Path + ": " + e.Msg
}
