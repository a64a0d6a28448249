// Package reference declares the Reference model: monograph, serial
// component, and collection component variants, their contributors,
// titles, dates, and identifiers (§3).
package reference

// Kind tags which of the three Reference variants a value is.
type Kind string

const (
	KindMonograph           Kind = "monograph"
	KindSerialComponent     Kind = "serial-component"
	KindCollectionComponent Kind = "collection-component"
)

// Numbers holds the numeric fields a reference may carry.
type Numbers struct {
	Volume         string
	Issue          string
	Pages          string
	Edition        string
	ChapterNumber  string
	CitationNumber int // assigned by the processor; 0 means "not yet cited" (I6)
}

// Identifiers holds a reference's external identifiers.
type Identifiers struct {
	DOI  string
	URL  string
	ISBN string
	ISSN string
	PMID string
}

// Publisher holds publication metadata.
type Publisher struct {
	Name  string
	Place string
}

// Reference is a single bibliography entry (I1: ID is required and unique
// within a bibliography).
type Reference struct {
	ID   string
	Type string // CSL item type, e.g. "book", "article-journal", "chapter"
	Kind Kind

	Contributors map[string]Contributor // role -> contributor(s)

	PrimaryTitle    MultilingualString
	ContainerTitle  MultilingualString // journal/series/collection title
	CollectionTitle MultilingualString

	Issued   EdtfString
	Accessed EdtfString

	Numbers     Numbers
	Identifiers Identifiers
	Publisher   Publisher
	Notes       string

	// Parent is set for serial-component / collection-component references
	// that embed their parent record directly rather than referencing it by
	// id (§3 "Parent links").
	Parent *Reference
	// ParentID is set instead of Parent when the parent is referenced by id
	// and must be looked up in the containing Bibliography.
	ParentID string
}

// Bibliography is an ordered collection of references, indexed by ID.
type Bibliography struct {
	References []*Reference
	byID       map[string]*Reference
}

// NewBibliography builds a Bibliography and its id index, enforcing I1.
func NewBibliography(refs []*Reference) (*Bibliography, error) {
	b := &Bibliography{References: refs, byID: make(map[string]*Reference, len(refs))}
	for _, r := range refs {
		if r.ID == "" {
			return nil, &SchemaError{Msg: "reference missing required id"}
		}
		if _, ok := b.byID[r.ID]; ok {
			return nil, &SchemaError{Msg: "duplicate reference id: " + r.ID}
		}
		b.byID[r.ID] = r
	}
	return b, nil
}

// Lookup resolves a reference by id. It does not follow ParentID links;
// ResolvedParent does that.
func (b *Bibliography) Lookup(id string) (*Reference, bool) {
	r, ok := b.byID[id]
	return r, ok
}

// ResolvedParent returns r's parent reference, following either the
// embedded Parent or the ParentID lookup against bib.
func (r *Reference) ResolvedParent(bib *Bibliography) *Reference {
	if r.Parent != nil {
		return r.Parent
	}
	if r.ParentID != "" && bib != nil {
		if p, ok := bib.Lookup(r.ParentID); ok {
			return p
		}
	}
	return nil
}

// SchemaError is returned when bibliography input is structurally valid
// JSON/YAML but violates the reference schema (§7).
type SchemaError struct {
	Msg string
}

func (e *SchemaError) Error() string { return "reference: schema error: " + e.Msg }
