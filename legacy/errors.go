package legacy

import "fmt"

// ParseError is returned when the legacy XML fails to parse into a Style,
// either because the XML itself is malformed or because a required
// attribute or child is missing.
type ParseError struct {
	// Path is a slash-separated element path, e.g. "style/citation/layout",
	// identifying where parsing failed.
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("legacy: parse error at %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// UnknownElementError records an element name the parser doesn't recognize.
// The parser is tolerant of unknown formatting attributes but not of
// unknown elements, which always indicate either a typo or a schema version
// the parser doesn't yet understand.
type UnknownElementError struct {
	Path string
	Name string
}

func (e *UnknownElementError) Error() string {
	return fmt.Sprintf("legacy: unknown element %q at %s", e.Name, e.Path)
}

// MissingAttrError records a required attribute absent from an element.
type MissingAttrError struct {
	Path string
	Attr string
}

func (e *MissingAttrError) Error() string {
	return fmt.Sprintf("legacy: %s missing required attribute %q", e.Path, e.Attr)
}

// CycleError is returned by the macro inliner when a macro transitively
// references itself.
type CycleError struct {
	Macro string
	Chain []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("legacy: macro %q cycles through %v", e.Macro, e.Chain)
}
