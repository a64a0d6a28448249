package migrate

import (
	"github.com/csln-go/csln/legacy"
	"github.com/csln-go/csln/style"
)

// extractContributorConfig lifts et-al thresholds and "and"/display-as-sort
// settings from the bibliography's (or, failing that, the citation's)
// author <names>/<name> path, per §4.3.
func extractContributorConfig(s *legacy.Style) style.ContributorsConfig {
	cfg := style.ContributorsConfig{
		ShortenMin:      0,
		ShortenUseFirst: 1,
		And:             style.AndText,
		DisplayAsSort:   "first",
	}

	scan := func(nodes []legacy.Node) bool {
		found := false
		legacy.WalkAll(nodes, func(n legacy.Node) {
			names, ok := n.(*legacy.Names)
			if !ok || names.Name == nil {
				return
			}
			isAuthorPath := false
			for _, v := range names.Variable {
				if v == "author" {
					isAuthorPath = true
				}
			}
			if !isAuthorPath {
				return
			}
			found = true
			nm := names.Name
			if nm.EtAlMin > 0 {
				cfg.ShortenMin = nm.EtAlMin
				cfg.ShortenUseFirst = nm.EtAlUseFirst
			}
			if nm.And != "" {
				if nm.And == "symbol" {
					cfg.And = style.AndSymbol
				} else {
					cfg.And = style.AndText
				}
			}
			if nm.NameAsSortOrder != "" {
				cfg.DisplayAsSort = nm.NameAsSortOrder
			}
			if nm.DelimiterPrecedesLast != "" {
				cfg.DelimiterPrecedesLast = nm.DelimiterPrecedesLast
			}
		})
		return found
	}

	// Bibliography takes precedence over citation (§4.3 "bibliography
	// taking precedence over citation for the date/title scans" — applied
	// uniformly here too, since et-al settings are most authoritative on
	// the bibliography's full-name rendering).
	if s.Bibliography != nil && scan(s.Bibliography.Layout.Children) {
		return cfg
	}
	scan(s.Citation.Layout.Children)
	return cfg
}

// extractSubstitutePattern walks the author <substitute> block (if any),
// found by scanning the bibliography author <names> path, and returns the
// base chain plus any per-type overrides contributed by a nested <choose>
// (§4.3).
func extractSubstitutePattern(s *legacy.Style) style.SubstituteConfig {
	var sub *legacy.Substitute

	scan := func(nodes []legacy.Node) {
		legacy.WalkAll(nodes, func(n legacy.Node) {
			names, ok := n.(*legacy.Names)
			if !ok || names.Substitute == nil {
				return
			}
			isAuthorPath := false
			for _, v := range names.Variable {
				if v == "author" {
					isAuthorPath = true
				}
			}
			if isAuthorPath {
				sub = names.Substitute
			}
		})
	}

	if s.Bibliography != nil {
		scan(s.Bibliography.Layout.Children)
	}
	if sub == nil {
		scan(s.Citation.Layout.Children)
	}
	if sub == nil {
		return style.SubstituteConfig{}
	}

	cfg := style.SubstituteConfig{Overrides: map[string][]string{}}
	for _, child := range sub.Children {
		switch t := child.(type) {
		case *legacy.Text:
			if t.Variable != "" {
				cfg.Base = append(cfg.Base, t.Variable)
			}
		case *legacy.Names:
			for _, v := range t.Variable {
				cfg.Base = append(cfg.Base, v)
			}
		case *legacy.Choose:
			addSubstituteBranch(cfg.Overrides, t.If)
			for _, b := range t.ElseIf {
				addSubstituteBranch(cfg.Overrides, b)
			}
		}
	}
	if len(cfg.Overrides) == 0 {
		cfg.Overrides = nil
	}
	return cfg
}

func addSubstituteBranch(overrides map[string][]string, b legacy.ChooseBranch) {
	var chain []string
	for _, child := range b.Children {
		switch t := child.(type) {
		case *legacy.Text:
			if t.Variable != "" {
				chain = append(chain, t.Variable)
			}
		case *legacy.Names:
			for _, v := range t.Variable {
				chain = append(chain, v)
			}
		}
	}
	for _, typ := range b.Condition.Type {
		overrides[typ] = chain
	}
}
