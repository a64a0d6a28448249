package migrate

import (
	"github.com/csln-go/csln/legacy"
	"github.com/csln-go/csln/style"
)

// extractTitleConfig sets italic emphasis on container-title rendering
// when the bibliography renders it with font-style="italic" (§4.3).
func extractTitleConfig(s *legacy.Style) style.TitlesConfig {
	cfg := style.TitlesConfig{PerCategory: map[string]style.Rendering{}}

	scan := func(nodes []legacy.Node, variable string) bool {
		found := false
		legacy.WalkAll(nodes, func(n legacy.Node) {
			if found {
				return
			}
			t, ok := n.(*legacy.Text)
			if !ok || t.Variable != variable {
				return
			}
			if t.FontStyle == "italic" {
				found = true
			}
		})
		return found
	}

	if s.Bibliography != nil {
		if scan(s.Bibliography.Layout.Children, "container-title") {
			cfg.PerCategory["container-title"] = style.Rendering{Emph: true}
		}
		if scan(s.Bibliography.Layout.Children, "title") {
			cfg.PerCategory["title"] = style.Rendering{Emph: true}
		}
	}
	if len(cfg.PerCategory) == 0 {
		cfg.PerCategory = nil
	}
	return cfg
}
