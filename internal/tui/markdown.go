package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const featureHighlights = `## Why Echo Room?

- **100% Anonymous**: share and receive advice without revealing your identity.
- **Expert Insights**: learn from experienced women across different industries.
- **Safe Space**: a supportive environment designed for women's professional growth.
`

const privacyNote = "**Privacy Note:** Your question will be posted anonymously. No personal information will be shared or stored."

// markdownRenderer caches glamour output per wrap width. The standard dark
// style is used so rendering never queries the terminal.
type markdownRenderer struct {
	width    int
	renderer *glamour.TermRenderer
	cache    map[string]string
}

func newMarkdownRenderer() *markdownRenderer {
	return &markdownRenderer{cache: map[string]string{}}
}

func (r *markdownRenderer) Render(source string, width int) string {
	if width <= 0 {
		width = 80
	}
	if r.renderer == nil || r.width != width {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return source
		}
		r.renderer = renderer
		r.width = width
		r.cache = map[string]string{}
	}
	if cached, ok := r.cache[source]; ok {
		return cached
	}
	out, err := r.renderer.Render(source)
	if err != nil {
		return source
	}
	out = strings.Trim(out, "\n")
	r.cache[source] = out
	return out
}
