package reference

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// bibliographyDoc is the top-level shape of a CSL-JSON compatible
// bibliography input (§6): a "references" array of rawReference.
type bibliographyDoc struct {
	References []rawReference `json:"references"`
}

// rawReference mirrors the on-the-wire CSL-JSON reference shape before it's
// converted into a Reference. Field names follow the CSL-JSON convention
// (kebab-case via json tags), matching the naming style the pack's own
// CSL-JSON-adjacent code uses for its metadata payloads.
type rawReference struct {
	ID              string          `json:"id"`
	Type            string          `json:"type"`
	Author          []rawName       `json:"author"`
	Editor          []rawName       `json:"editor"`
	Translator      []rawName       `json:"translator"`
	ContainerAuthor []rawName       `json:"container-author"`
	Title           json.RawMessage `json:"title"`
	ContainerTitle  json.RawMessage `json:"container-title"`
	CollectionTitle json.RawMessage `json:"collection-title"`
	Issued          json.RawMessage `json:"issued"`
	Accessed        json.RawMessage `json:"accessed"`
	Volume          string          `json:"volume"`
	Issue           string          `json:"issue"`
	Page            string          `json:"page"`
	Edition         string          `json:"edition"`
	ChapterNumber   string          `json:"chapter-number"`
	DOI             string          `json:"doi"`
	URL             string          `json:"url"`
	ISBN            string          `json:"isbn"`
	ISSN            string          `json:"issn"`
	PMID            string          `json:"pmid"`
	PublisherName   string          `json:"publisher"`
	PublisherPlace  string          `json:"publisher-place"`
	Note            string          `json:"note"`
	ParentID        string          `json:"parent-id"`
}

// rawName mirrors a CSL-JSON name object: either {literal: "..."} or
// {family, given, suffix, dropping-particle, non-dropping-particle}.
type rawName struct {
	Literal             string `json:"literal"`
	Family              string `json:"family"`
	Given               string `json:"given"`
	Suffix              string `json:"suffix"`
	DroppingParticle    string `json:"dropping-particle"`
	NonDroppingParticle string `json:"non-dropping-particle"`
}

func (n rawName) toContributor() Contributor {
	if n.Literal != "" {
		return Contributor{Simple: &SimpleName{Name: n.Literal}}
	}
	return Contributor{Structured: &StructuredName{
		Given:               n.Given,
		Family:              n.Family,
		Suffix:              n.Suffix,
		DroppingParticle:    n.DroppingParticle,
		NonDroppingParticle: n.NonDroppingParticle,
	}}
}

func namesToContributor(names []rawName) Contributor {
	if len(names) == 0 {
		return Contributor{}
	}
	if len(names) == 1 {
		return names[0].toContributor()
	}
	list := make([]Contributor, len(names))
	for i, n := range names {
		list[i] = n.toContributor()
	}
	return Contributor{List: list}
}

// rawDateParts is the CSL-JSON date shape: {"date-parts": [[y,m,d], ...]}.
// raw field may instead be a bare EDTF string.
type rawDateParts struct {
	DateParts [][]int `json:"date-parts"`
	Raw       string  `json:"raw"`
}

// parseDateField accepts either a JSON string (an EDTF literal) or a
// {date-parts: [[...]]} object and normalizes both into an EdtfString.
func parseDateField(raw json.RawMessage) (EdtfString, error) {
	if len(raw) == 0 {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return EdtfString(s), nil
	}
	var dp rawDateParts
	if err := json.Unmarshal(raw, &dp); err != nil {
		return "", fmt.Errorf("reference: unparseable date field: %w", err)
	}
	if dp.Raw != "" {
		return EdtfString(dp.Raw), nil
	}
	if len(dp.DateParts) == 0 || len(dp.DateParts[0]) == 0 {
		return "", nil
	}
	parts := dp.DateParts[0]
	out := strconv.Itoa(parts[0])
	if len(parts) > 1 {
		out += fmt.Sprintf("-%02d", parts[1])
	}
	if len(parts) > 2 {
		out += fmt.Sprintf("-%02d", parts[2])
	}
	return EdtfString(out), nil
}

// parseMultilingualField accepts either a bare JSON string or a structured
// {original, original-script, transliterated, translated} object.
func parseMultilingualField(raw json.RawMessage) (MultilingualString, error) {
	if len(raw) == 0 {
		return MultilingualString{}, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return NewMultilingualString(s), nil
	}
	var m struct {
		Original       string            `json:"original"`
		OriginalScript string            `json:"original-script"`
		Transliterated map[string]string `json:"transliterated"`
		Translated     map[string]string `json:"translated"`
	}
	if err := json.Unmarshal(raw, &m); err != nil {
		return MultilingualString{}, fmt.Errorf("reference: unparseable title field: %w", err)
	}
	return MultilingualString{
		Original:       m.Original,
		OriginalScript: m.OriginalScript,
		Transliterated: m.Transliterated,
		Translated:     m.Translated,
	}, nil
}

func kindForType(t string) Kind {
	switch t {
	case "article-journal", "article-magazine", "article-newspaper", "article", "paper-conference":
		return KindSerialComponent
	case "chapter", "entry", "entry-dictionary", "entry-encyclopedia":
		return KindCollectionComponent
	default:
		return KindMonograph
	}
}

func (raw rawReference) toReference() (*Reference, error) {
	if raw.ID == "" {
		return nil, &SchemaError{Msg: "reference missing required id"}
	}
	title, err := parseMultilingualField(raw.Title)
	if err != nil {
		return nil, err
	}
	containerTitle, err := parseMultilingualField(raw.ContainerTitle)
	if err != nil {
		return nil, err
	}
	collectionTitle, err := parseMultilingualField(raw.CollectionTitle)
	if err != nil {
		return nil, err
	}
	issued, err := parseDateField(raw.Issued)
	if err != nil {
		return nil, err
	}
	accessed, err := parseDateField(raw.Accessed)
	if err != nil {
		return nil, err
	}

	contributors := map[string]Contributor{}
	if c := namesToContributor(raw.Author); !c.IsEmpty() {
		contributors["author"] = c
	}
	if c := namesToContributor(raw.Editor); !c.IsEmpty() {
		contributors["editor"] = c
	}
	if c := namesToContributor(raw.Translator); !c.IsEmpty() {
		contributors["translator"] = c
	}
	if c := namesToContributor(raw.ContainerAuthor); !c.IsEmpty() {
		contributors["container-author"] = c
	}

	return &Reference{
		ID:              raw.ID,
		Type:            raw.Type,
		Kind:            kindForType(raw.Type),
		Contributors:    contributors,
		PrimaryTitle:    title,
		ContainerTitle:  containerTitle,
		CollectionTitle: collectionTitle,
		Issued:          issued,
		Accessed:        accessed,
		Numbers: Numbers{
			Volume:        raw.Volume,
			Issue:         raw.Issue,
			Pages:         raw.Page,
			Edition:       raw.Edition,
			ChapterNumber: raw.ChapterNumber,
		},
		Identifiers: Identifiers{
			DOI:  raw.DOI,
			URL:  raw.URL,
			ISBN: raw.ISBN,
			ISSN: raw.ISSN,
			PMID: raw.PMID,
		},
		Publisher: Publisher{Name: raw.PublisherName, Place: raw.PublisherPlace},
		Notes:     raw.Note,
		ParentID:  raw.ParentID,
	}, nil
}

// LoadBibliography decodes a CSL-JSON compatible bibliography document
// (§6) into a Bibliography, enforcing I1.
func LoadBibliography(data []byte) (*Bibliography, error) {
	var doc bibliographyDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("reference: %w", err)
	}
	refs := make([]*Reference, 0, len(doc.References))
	for i, raw := range doc.References {
		r, err := raw.toReference()
		if err != nil {
			return nil, fmt.Errorf("reference: references[%d]: %w", i, err)
		}
		refs = append(refs, r)
	}
	return NewBibliography(refs)
}
