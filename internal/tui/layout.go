package tui

import (
	"strings"
	"unicode/utf8"
)

type pageLayout struct {
	windowWidth    int
	windowHeight   int
	contentWidth   int
	inputWidth     int
	viewportWidth  int
	viewportHeight int
}

func newPageLayout() pageLayout {
	var l pageLayout
	l.Update(80, 24)
	return l
}

// Update recomputes the page geometry. Content is centred in a column no
// wider than maxContentWidth; the browse list takes whatever height is left
// after the header and footer chrome.
func (l *pageLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height
	inner := width - viewportHorizontalPadding
	if inner < minViewportWidth {
		inner = minViewportWidth
	}
	if inner > maxContentWidth {
		inner = maxContentWidth
	}
	l.contentWidth = inner
	l.viewportWidth = inner
	l.inputWidth = inner - inputBorderWidth

	const chrome = 12
	l.viewportHeight = height - chrome
	if l.viewportHeight < minListHeight {
		l.viewportHeight = minListHeight
	}
}

// wrapWidth is the text width left inside the content column after padding.
func (l pageLayout) wrapWidth(padding int) int {
	width := l.contentWidth
	if width <= 0 {
		width = 80
	}
	if padding < 0 {
		padding = 0
	}
	available := width - padding
	if available < 20 {
		available = 20
	}
	return available
}

// contentBuilder counts lines as it goes so callers can record where each
// block starts inside a viewport.
type contentBuilder struct {
	builder strings.Builder
	lines   int
}

func (cb *contentBuilder) WriteString(s string) {
	cb.builder.WriteString(s)
	cb.lines += strings.Count(s, "\n")
}

func (cb *contentBuilder) WriteRune(r rune) {
	cb.builder.WriteRune(r)
	if r == '\n' {
		cb.lines++
	}
}

func (cb *contentBuilder) WriteLine(s string) {
	cb.WriteString(s)
	cb.WriteRune('\n')
}

func (cb *contentBuilder) String() string {
	return cb.builder.String()
}

func (cb *contentBuilder) Line() int {
	return cb.lines
}

// lineSpan is a half-open range of content lines.
type lineSpan struct {
	start int
	end   int
}

// bannerGlyphs holds the block letters used by the home banner.
var bannerGlyphs = map[rune][]string{
	'E': {
		"███████╗",
		"██╔════╝",
		"█████╗  ",
		"██╔══╝  ",
		"███████╗",
		"╚══════╝",
	},
	'C': {
		" ██████╗",
		"██╔════╝",
		"██║     ",
		"██║     ",
		"╚██████╗",
		" ╚═════╝",
	},
	'H': {
		"██╗  ██╗",
		"██║  ██║",
		"███████║",
		"██╔══██║",
		"██║  ██║",
		"╚═╝  ╚═╝",
	},
	'O': {
		" ██████╗ ",
		"██╔═══██╗",
		"██║   ██║",
		"██║   ██║",
		"╚██████╔╝",
		" ╚═════╝ ",
	},
	'R': {
		"██████╗ ",
		"██╔══██╗",
		"██████╔╝",
		"██╔══██╗",
		"██║  ██║",
		"╚═╝  ╚═╝",
	},
	'M': {
		"███╗   ███╗",
		"████╗ ████║",
		"██╔████╔██║",
		"██║╚██╔╝██║",
		"██║ ╚═╝ ██║",
		"╚═╝     ╚═╝",
	},
	' ': {"  ", "  ", "  ", "  ", "  ", "  "},
}

const bannerRows = 6

// composeBanner lays out text in block letters. Letters without a glyph are
// skipped.
func composeBanner(text string) []string {
	rows := make([]strings.Builder, bannerRows)
	for _, r := range strings.ToUpper(text) {
		glyph, ok := bannerGlyphs[r]
		if !ok {
			continue
		}
		for i := range rows {
			rows[i].WriteString(glyph[i])
			rows[i].WriteString(" ")
		}
	}
	lines := make([]string, bannerRows)
	for i := range rows {
		lines[i] = strings.TrimRight(rows[i].String(), " ")
	}
	return lines
}

func bannerWidth(lines []string) int {
	width := 0
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > width {
			width = n
		}
	}
	return width
}
