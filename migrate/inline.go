// Package migrate turns a legacy.Style into a style.Style: it inlines
// macros, extracts a style.Config by scanning the expanded tree, upsamples
// the legacy node tree into a flat style.Template, and compresses
// then/else variable branches into overrides (§4.2-4.5).
package migrate

import (
	"log/slog"

	"github.com/csln-go/csln/legacy"
)

// Migrator holds the configuration (currently just a logger) the migration
// passes share, following the teacher's functional-options constructor
// shape (bibtex.New / bibtex.Option).
type Migrator struct {
	log *slog.Logger
}

// Option configures a Migrator.
type Option func(*Migrator)

// WithLogger overrides the default logger, used to surface unknown-macro
// and unknown-variable diagnostics (§4.2, §7).
func WithLogger(l *slog.Logger) Option {
	return func(m *Migrator) { m.log = l }
}

// New creates a Migrator with the given options.
func New(opts ...Option) *Migrator {
	m := &Migrator{log: slog.Default()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// inlineMacros replaces every macro call in nodes with the named macro's
// (already-expanded) children, recursively. chain tracks the macro names
// currently being expanded, to detect cycles (§4.2).
func (m *Migrator) inlineMacros(nodes []legacy.Node, macros map[string]*legacy.Macro, chain []string) ([]legacy.Node, error) {
	out := make([]legacy.Node, 0, len(nodes))
	for _, n := range nodes {
		expanded, err := m.inlineNode(n, macros, chain)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded...)
	}
	return out, nil
}

func (m *Migrator) inlineNode(n legacy.Node, macros map[string]*legacy.Macro, chain []string) ([]legacy.Node, error) {
	switch t := n.(type) {
	case *legacy.Text:
		if t.Macro == "" {
			return []legacy.Node{n}, nil
		}
		macro, ok := macros[t.Macro]
		if !ok {
			// Unknown macro names are preserved as-is rather than erroring
			// (§4.2, §9 Open Question a); surface at a higher log level.
			m.log.Warn("migrate: unknown macro name preserved as node", "macro", t.Macro)
			return []legacy.Node{n}, nil
		}
		for _, seen := range chain {
			if seen == t.Macro {
				return nil, &legacy.CycleError{Macro: t.Macro, Chain: append(append([]string{}, chain...), t.Macro)}
			}
		}
		expanded, err := m.inlineMacros(macro.Children, macros, append(chain, t.Macro))
		if err != nil {
			return nil, err
		}
		// A macro call carries its own affixes/delimiter, which must wrap
		// the expansion: if the call site set a delimiter/prefix/suffix and
		// the macro expands to more than one node, preserve that by
		// wrapping in a synthetic Group.
		if len(expanded) > 1 && (t.Prefix != "" || t.Suffix != "" || t.Delimiter != "") {
			return []legacy.Node{&legacy.Group{Formatting: t.Formatting, Children: expanded}}, nil
		}
		if len(expanded) == 1 {
			applyOuterFormatting(expanded[0], t.Formatting)
		}
		return expanded, nil

	case *legacy.Names:
		if t.Substitute != nil {
			expanded, err := m.inlineMacros(t.Substitute.Children, macros, chain)
			if err != nil {
				return nil, err
			}
			cp := *t
			cp.Substitute = &legacy.Substitute{Children: expanded}
			return []legacy.Node{&cp}, nil
		}
		return []legacy.Node{n}, nil

	case *legacy.Group:
		expanded, err := m.inlineMacros(t.Children, macros, chain)
		if err != nil {
			return nil, err
		}
		cp := *t
		cp.Children = expanded
		return []legacy.Node{&cp}, nil

	case *legacy.Choose:
		cp := *t
		var err error
		cp.If.Children, err = m.inlineMacros(t.If.Children, macros, chain)
		if err != nil {
			return nil, err
		}
		cp.ElseIf = make([]legacy.ChooseBranch, len(t.ElseIf))
		for i, b := range t.ElseIf {
			cp.ElseIf[i] = b
			cp.ElseIf[i].Children, err = m.inlineMacros(b.Children, macros, chain)
			if err != nil {
				return nil, err
			}
		}
		if t.HasElse {
			cp.Else, err = m.inlineMacros(t.Else, macros, chain)
			if err != nil {
				return nil, err
			}
		}
		return []legacy.Node{&cp}, nil

	default:
		return []legacy.Node{n}, nil
	}
}

// applyOuterFormatting merges call-site formatting onto a single expanded
// node when the macro call had its own affixes but expanded to exactly one
// child (so no synthetic Group is needed).
func applyOuterFormatting(n legacy.Node, outer legacy.Formatting) {
	// Only a non-empty Prefix and Suffix are carried over; font styling
	// on the call site is rare in practice and left to the macro body.
	switch t := n.(type) {
	case *legacy.Text:
		if outer.Prefix != "" {
			t.Prefix = outer.Prefix
		}
		if outer.Suffix != "" {
			t.Suffix = outer.Suffix
		}
	case *legacy.Group:
		if outer.Prefix != "" {
			t.Prefix = outer.Prefix
		}
		if outer.Suffix != "" {
			t.Suffix = outer.Suffix
		}
	case *legacy.Names:
		if outer.Prefix != "" {
			t.Prefix = outer.Prefix
		}
		if outer.Suffix != "" {
			t.Suffix = outer.Suffix
		}
	}
}

// InlineMacros inlines every macro call reachable from the citation layout
// and (if present) the bibliography layout, returning a macro-free copy of
// the style's two layouts. Satisfies invariant I5.
func (m *Migrator) InlineMacros(s *legacy.Style) (citation []legacy.Node, bibliography []legacy.Node, err error) {
	citation, err = m.inlineMacros(s.Citation.Layout.Children, s.Macros, nil)
	if err != nil {
		return nil, nil, err
	}
	if s.Bibliography != nil {
		bibliography, err = m.inlineMacros(s.Bibliography.Layout.Children, s.Macros, nil)
		if err != nil {
			return nil, nil, err
		}
	}
	return citation, bibliography, nil
}
