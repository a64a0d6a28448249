package style

// ComponentKind tags the variant of a TemplateComponent.
type ComponentKind int

const (
	KindContributor ComponentKind = iota
	KindDate
	KindTitle
	KindNumber
	KindVariable
	KindTerm
	KindText
	KindGroup
	KindList
	KindCondition
)

// ContributorRole names the role a Contributor component renders, mirroring
// the legacy <names variable="..."> values. CollectionEditor and
// EditorialDirector both upsample to Editor (see DESIGN.md: Open Question b).
type ContributorRole string

const (
	RoleAuthor            ContributorRole = "author"
	RoleEditor            ContributorRole = "editor"
	RoleTranslator        ContributorRole = "translator"
	RoleContainerAuthor   ContributorRole = "container-author"
	RoleCollectionEditor  ContributorRole = "collection-editor"
	RoleEditorialDirector ContributorRole = "editorial-director"
	RoleComposer          ContributorRole = "composer"
	RoleDirector          ContributorRole = "director"
	RoleInterviewer       ContributorRole = "interviewer"
)

// ContributorForm selects how a resolved name list is rendered (§4.6.2 step 5).
type ContributorForm string

const (
	FormLong  ContributorForm = "long"
	FormShort ContributorForm = "short"
)

// DateForm selects which of the five renderings in §4.6.5 is produced.
type DateForm string

const (
	DateYear    DateForm = "year"
	DateFull    DateForm = "full"
	DateShort   DateForm = "short"
	DateNumeric DateForm = "numeric"
)

// NumberKind is the semantic variable a Number component reads.
type NumberKind string

const (
	NumberVolume         NumberKind = "volume"
	NumberIssue          NumberKind = "issue"
	NumberPages          NumberKind = "page"
	NumberEdition        NumberKind = "edition"
	NumberChapter        NumberKind = "chapter-number"
	NumberCitationNumber NumberKind = "citation-number"
)

// TemplateComponent is one element of a flat (macro-free, branch-free after
// compression) style template.
type TemplateComponent struct {
	Kind ComponentKind
	Rendering

	// Contributor
	Role ContributorRole
	Form ContributorForm

	// Date
	DateVariable string // "issued" | "accessed" | ...
	DateFormKind DateForm
	Fallback     []TemplateComponent // rendered if the date is absent/unparseable

	// Title
	TitleVariable string // "title" | "container-title" | "collection-title"

	// Number
	NumberVariable NumberKind

	// Variable (generic string variable passthrough, e.g. "publisher", "url")
	VariableName string

	// Term
	TermName string
	TermForm string // long | short | verb | verb-short

	// Text (literal, from legacy Text{Value})
	Text string

	// Group / List / Condition
	Children []TemplateComponent
	// Delimiter joins Children when Kind is Group or List (§4.4 "Group {
	// children, delim }").
	Delimiter string

	// Overrides maps a reference type selector ("book", "article-journal",
	// "default", ...) to a RenderingOverride applied on top of the base
	// Rendering when rendering a reference of that type. Populated by the
	// compressor (§4.5) for Contributor/Title/Number/Variable components.
	Overrides map[string]RenderingOverride

	// Condition-only: the branches in order, with an optional else.
	Branches []ConditionBranch
	Else     []TemplateComponent
	HasElse  bool
}

// ConditionBranch is one branch of a Condition component. ItemTypes is the
// exact set selecting this branch (invariant I4); Match mirrors the legacy
// any/all/none matching mode over all of the branch's predicates, the
// item-type test included.
type ConditionBranch struct {
	ItemTypes       map[string]bool
	Variable        []string
	IsNumeric       []string
	IsUncertainDate []string
	Locator         []string
	Position        []string
	Match           string // any | all | none
	Children        []TemplateComponent
}

// Template is an ordered list of components, used for both the citation and
// bibliography templates and for named sub-templates in Style.Templates.
type Template []TemplateComponent
