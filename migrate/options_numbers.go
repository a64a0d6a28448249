package migrate

import "github.com/csln-go/csln/legacy"

// extractVolumePagesDelimiter returns the delimiter of the group that
// directly or transitively contains both a volume and a page reference
// (a "pages" variable does not count), scanning the bibliography layout
// (§4.3).
func extractVolumePagesDelimiter(s *legacy.Style) string {
	if s.Bibliography == nil {
		return ""
	}
	return findVolumePagesDelimiter(s.Bibliography.Layout.Children)
}

func findVolumePagesDelimiter(nodes []legacy.Node) string {
	for _, n := range nodes {
		switch t := n.(type) {
		case *legacy.Group:
			if d := findVolumePagesDelimiter(t.Children); d != "" {
				return d
			}
			if groupContainsVariable(t.Children, "volume") && groupContainsVariable(t.Children, "page") {
				if t.Delimiter != "" {
					return t.Delimiter
				}
			}
		case *legacy.Choose:
			if d := findVolumePagesDelimiter(t.If.Children); d != "" {
				return d
			}
			for _, b := range t.ElseIf {
				if d := findVolumePagesDelimiter(b.Children); d != "" {
					return d
				}
			}
			if t.HasElse {
				if d := findVolumePagesDelimiter(t.Else); d != "" {
					return d
				}
			}
		}
	}
	return ""
}

func groupContainsVariable(nodes []legacy.Node, name string) bool {
	for _, n := range nodes {
		switch t := n.(type) {
		case *legacy.Text:
			if t.Variable == name {
				return true
			}
		case *legacy.Number:
			if t.Variable == name {
				return true
			}
		case *legacy.Group:
			if groupContainsVariable(t.Children, name) {
				return true
			}
		}
	}
	return false
}

// extractPageRangeFormat reads the top-level page-range-format attribute
// verbatim; unrecognized values are dropped (§4.3).
func extractPageRangeFormat(s *legacy.Style) string {
	switch s.PageRangeFormat {
	case "expanded", "minimal", "minimal-two", "chicago", "chicago-15", "chicago-16":
		return s.PageRangeFormat
	default:
		return ""
	}
}
