package migrate

import (
	"github.com/csln-go/csln/legacy"
	"github.com/csln-go/csln/style"
)

// extractDateConfig lifts the month format from the first <date> (or its
// month <date-part>) encountered, bibliography first (§4.3).
func extractDateConfig(s *legacy.Style) style.DatesConfig {
	cfg := style.DatesConfig{MonthFormat: style.MonthLong}

	scan := func(nodes []legacy.Node) (style.MonthFormat, bool) {
		var found style.MonthFormat
		ok := false
		legacy.WalkAll(nodes, func(n legacy.Node) {
			if ok {
				return
			}
			d, isDate := n.(*legacy.Date)
			if !isDate {
				return
			}
			if d.Form != "" {
				found, ok = monthFormatFromForm(d.Form), true
				return
			}
			for _, part := range d.Parts {
				if part.Name == "month" {
					found, ok = monthFormatFromForm(part.Form), true
					return
				}
			}
		})
		return found, ok
	}

	if s.Bibliography != nil {
		if f, ok := scan(s.Bibliography.Layout.Children); ok {
			cfg.MonthFormat = f
			return cfg
		}
	}
	if f, ok := scan(s.Citation.Layout.Children); ok {
		cfg.MonthFormat = f
	}
	return cfg
}

func monthFormatFromForm(form string) style.MonthFormat {
	switch form {
	case "short":
		return style.MonthShort
	case "numeric", "numeric-leading-zeros":
		return style.MonthNumeric
	default:
		return style.MonthLong
	}
}
