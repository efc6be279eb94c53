package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/echoroom/internal/qa"
)

const (
	askDescription    = "Share your question anonymously and get advice from experienced women in your field."
	browseDescription = "Share your wisdom and learn from the community's collective experience."
	askCardCopy       = "Get anonymous advice from experienced women in your field. Whether it's about career progression, workplace challenges, or professional development."
	browseCardCopy    = "Share your experience and wisdom. Help other women by answering questions anonymously and reading insights from the community."
)

func (m *model) View() string {
	var body string
	switch m.view {
	case viewAsk:
		body = m.askView()
	case viewBrowse:
		body = m.browseView()
	default:
		body = m.homeView()
	}
	return joinNonEmpty([]string{body, m.toastView(), m.footerView()})
}

func (m *model) homeView() string {
	width := m.layout.contentWidth
	return joinNonEmpty([]string{
		m.heroView(),
		m.homeCardsView(width),
		m.markdown.Render(featureHighlights, width),
	})
}

// heroView shows the block-letter banner when it fits and a plain title
// otherwise.
func (m *model) heroView() string {
	width := m.layout.contentWidth
	title := heroTitleStyle.Render(heroTitle)
	if banner := composeBanner(heroTitle); bannerWidth(banner)+3 <= width {
		title = renderLogo(banner)
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		taglineStyle.Render(wordwrap.String(heroTagline, m.layout.wrapWidth(2))),
	)
}

func (m *model) homeCardsView(width int) string {
	type card struct {
		kind   homeCard
		title  string
		copy   string
		action string
	}
	cards := []card{
		{cardAsk, "Ask a Question", askCardCopy, "Start Your Question (a)"},
		{cardBrowse, "Browse & Answer", browseCardCopy, "Explore Questions (b)"},
	}

	sideBySide := width >= 72
	cardWidth := width
	if sideBySide {
		cardWidth = (width - 2) / 2
	}
	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		style := cardStyle
		action := buttonStyle.Render(c.action)
		if c.kind == m.homeCursor {
			style = selectedCardStyle
			action = focusedButtonStyle.Render(c.action)
		}
		inner := cardWidth - 6
		body := lipgloss.JoinVertical(
			lipgloss.Left,
			cardTitleStyle.Render(c.title),
			"",
			wordwrap.String(c.copy, inner),
			"",
			action,
		)
		rendered = append(rendered, style.Width(cardWidth-2).Render(body))
	}
	if sideBySide {
		return lipgloss.JoinHorizontal(lipgloss.Top, rendered[0], "  ", rendered[1])
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

func (m *model) askView() string {
	a := m.ask
	if a == nil {
		return ""
	}
	width := m.layout.contentWidth

	header := lipgloss.JoinVertical(
		lipgloss.Left,
		backLinkStyle.Render("← Back to Home (esc)"),
		"",
		titleStyle.Render("Ask Your Question"),
		helperStyle.Render(wordwrap.String(askDescription, m.layout.wrapWidth(0))),
	)
	category := lipgloss.JoinVertical(
		lipgloss.Left,
		fieldLabel("Category", a.focus == askFocusCategory),
		a.category.View(),
	)
	box := inputBoxStyle
	if a.focus == askFocusBody {
		box = focusedInputBoxStyle
	}
	question := lipgloss.JoinVertical(
		lipgloss.Left,
		fieldLabel("Your Question", a.focus == askFocusBody),
		box.Render(a.body.View()),
		helperStyle.Render(fmt.Sprintf("%d/%d characters", a.length(), a.limit)),
	)
	return joinNonEmpty([]string{
		header,
		category,
		question,
		m.markdown.Render(privacyNote, width),
		m.submitButton("Submit Question ↗", a.submitting, a.focus == askFocusSubmit),
	})
}

func (m *model) browseView() string {
	b := m.browse
	if b == nil {
		return ""
	}

	header := lipgloss.JoinVertical(
		lipgloss.Left,
		backLinkStyle.Render("← Back to Home (esc)"),
		"",
		titleStyle.Render("Browse & Answer Questions"),
		helperStyle.Render(wordwrap.String(browseDescription, m.layout.wrapWidth(0))),
	)
	filter := lipgloss.JoinHorizontal(
		lipgloss.Center,
		fieldLabel("Filter ", b.focus == browseFocusFilter),
		b.filter.View(),
	)
	m.refreshBrowseViewport()
	return joinNonEmpty([]string{header, filter, b.viewport.View()})
}

// refreshBrowseViewport re-renders the question list and scrolls the
// selected card into view when the selection moved.
func (m *model) refreshBrowseViewport() {
	b := m.browse
	b.viewport.SetContent(b.listContent(m.layout.contentWidth, m.spinner.View()))
	if b.anchored != b.cursor {
		b.scrollToCursor()
		b.anchored = b.cursor
	}
}

func (b *browseModel) scrollToCursor() {
	if b.cursor < 0 || b.cursor >= len(b.cardSpans) {
		return
	}
	span := b.cardSpans[b.cursor]
	top := b.viewport.YOffset
	height := b.viewport.Height
	switch {
	case span.start < top || span.end-span.start >= height:
		b.viewport.SetYOffset(span.start)
	case span.end > top+height:
		b.viewport.SetYOffset(span.end - height)
	}
}

func (b *browseModel) listContent(width int, spin string) string {
	cb := &contentBuilder{}
	b.cardSpans = b.cardSpans[:0]
	if len(b.visible) == 0 {
		action := buttonStyle
		if b.focus == browseFocusList {
			action = focusedButtonStyle
		}
		cb.WriteLine(helperStyle.Render("No questions found in this category yet."))
		cb.WriteRune('\n')
		cb.WriteString(action.Render("Ask the First Question"))
		return cb.String()
	}
	for i, q := range b.visible {
		if i > 0 {
			cb.WriteRune('\n')
		}
		start := cb.Line()
		cb.WriteLine(b.cardView(i, q, width, spin))
		b.cardSpans = append(b.cardSpans, lineSpan{start: start, end: cb.Line()})
	}
	return strings.TrimRight(cb.String(), "\n")
}

func (b *browseModel) cardView(idx int, q qa.Question, width int, spin string) string {
	inner := width - 4
	expanded := b.expanded.is(q.ID)

	toggle := "View Answers & Respond"
	if expanded {
		toggle = "Hide Answers & Respond"
	}
	parts := []string{
		badgeStyle.Render(string(q.Category)) + "  " + helperStyle.Render(q.Timestamp),
		wordwrap.String(q.Body, inner),
		helperStyle.Render(q.AnswerLabel()) + "  " + linkStyle.Render(toggle),
	}

	if expanded {
		if len(q.Answers) > 0 {
			parts = append(parts, "", sectionHeaderStyle.Render("Community Answers"))
			for _, answer := range q.Answers {
				body := wordwrap.String(answer.Body, inner-2)
				parts = append(parts,
					answerStyle.Render(lipgloss.JoinVertical(lipgloss.Left, body, helperStyle.Render(answer.Timestamp))),
				)
			}
		}
		box := inputBoxStyle
		if b.focus == browseFocusAnswer {
			box = focusedInputBoxStyle
		}
		count := utf8.RuneCountInString(b.draft(q.ID))
		parts = append(parts,
			"",
			sectionHeaderStyle.Render("Share Your Advice"),
			box.Render(b.answer.View()),
			lipgloss.JoinHorizontal(
				lipgloss.Center,
				helperStyle.Render(fmt.Sprintf("%d/%d characters", count, b.limit)),
				"   ",
				submitButtonView("Submit Answer", b.submitting.is(q.ID), b.focus == browseFocusAnswer, spin),
			),
		)
	}

	style := questionCardStyle
	if idx == b.cursor && b.focus != browseFocusFilter {
		style = selectedQuestionCardStyle
	}
	return style.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *model) submitButton(label string, submitting, focused bool) string {
	return submitButtonView(label, submitting, focused, m.spinner.View())
}

func submitButtonView(label string, submitting, focused bool, spin string) string {
	switch {
	case submitting:
		return disabledButtonStyle.Render(spin + " Submitting...")
	case focused:
		return focusedButtonStyle.Render(label + " (ctrl+s)")
	default:
		return buttonStyle.Render(label + " (ctrl+s)")
	}
}

func fieldLabel(label string, focused bool) string {
	if focused {
		return focusedLabelStyle.Render(label)
	}
	return labelStyle.Render(label)
}

func (m *model) footerView() string {
	stats := []string{strings.ToUpper(m.view.String())}
	stats = append(stats, m.jobStatusBadges()...)
	bar := statusBarStyle.Render(strings.Join(stats, "  •  "))
	if m.helpVisible {
		return joinNonEmpty([]string{bar, m.keyLegendView()})
	}
	return lipgloss.JoinVertical(lipgloss.Left, bar, helperStyle.Render(m.hintLine()))
}

func (m *model) jobStatusBadges() []string {
	running := m.jobs.Running()
	badges := make([]string, 0, len(running))
	for _, job := range running {
		badges = append(badges, fmt.Sprintf("%s submitting %s", m.spinner.View(), job.Kind))
	}
	return badges
}

func (m *model) hintLine() string {
	var bindings []key.Binding
	switch m.view {
	case viewAsk:
		bindings = []key.Binding{keys.NextFocus, keys.Submit, keys.Back}
	case viewBrowse:
		bindings = []key.Binding{keys.Activate, keys.Reply, keys.Submit, keys.Back}
	default:
		bindings = []key.Binding{keys.Ask, keys.Browse, keys.Help, keys.Quit}
	}
	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		help := b.Help()
		hints = append(hints, help.Key+" "+help.Desc)
	}
	return strings.Join(hints, " • ")
}

func (m *model) keyLegendView() string {
	bindings := keys.forView(m.view)
	rows := []string{sectionHeaderStyle.Render("Keys")}
	const columns = 3
	for i := 0; i < len(bindings); i += columns {
		end := i + columns
		if end > len(bindings) {
			end = len(bindings)
		}
		var cells []string
		for _, binding := range bindings[i:end] {
			help := binding.Help()
			k := keyStyle.Render(help.Key)
			desc := keyDescStyle.Width(20).Render(" " + help.Desc)
			cells = append(cells, lipgloss.JoinHorizontal(lipgloss.Top, k, desc))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return legendBoxStyle.Render(strings.Join(rows, "\n"))
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}

func positionLabel(idx, total int) string {
	return fmt.Sprintf("%d/%d", idx+1, total)
}

// renderLogo draws block letters with a one-cell drop shadow.
func renderLogo(art []string) string {
	if len(art) == 0 {
		return ""
	}
	width := 0
	lineRunes := make([][]rune, len(art))
	for i, line := range art {
		runes := []rune(line)
		lineRunes[i] = runes
		if len(runes) > width {
			width = len(runes)
		}
	}
	width++
	height := len(art) + 1

	type cell struct {
		r     rune
		style lipgloss.Style
	}
	grid := make([][]cell, height)
	for i := range grid {
		grid[i] = make([]cell, width)
	}
	for y, runes := range lineRunes {
		for x, r := range runes {
			if r != ' ' {
				grid[y+1][x+1] = cell{r: r, style: logoShadowStyle}
			}
		}
	}
	for y, runes := range lineRunes {
		for x, r := range runes {
			if r != ' ' {
				grid[y][x] = cell{r: r, style: logoFaceStyle}
			}
		}
	}

	lines := make([]string, height)
	for y, row := range grid {
		var b strings.Builder
		for _, c := range row {
			if c.r == 0 {
				b.WriteRune(' ')
				continue
			}
			b.WriteString(c.style.Render(string(c.r)))
		}
		lines[y] = strings.TrimRight(b.String(), " ")
	}
	return logoContainerStyle.Render(strings.Join(lines, "\n"))
}

var (
	navyColor   = lipgloss.Color("#1e2a4a")
	roseColor   = lipgloss.Color("#f4a6b7")
	blushColor  = lipgloss.Color("#fde4ea")
	sageColor   = lipgloss.Color("#8fbf9f")
	mutedColor  = lipgloss.Color("244")
	dangerColor = lipgloss.Color("#e5484d")

	titleStyle         = lipgloss.NewStyle().Bold(true).Foreground(roseColor)
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	helperStyle        = lipgloss.NewStyle().Foreground(mutedColor)
	placeholderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
	labelStyle         = lipgloss.NewStyle().Bold(true)
	focusedLabelStyle  = lipgloss.NewStyle().Bold(true).Foreground(roseColor)
	backLinkStyle      = lipgloss.NewStyle().Foreground(mutedColor).Underline(true)
	linkStyle          = lipgloss.NewStyle().Foreground(roseColor).Underline(true)

	heroTitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(roseColor)
	taglineStyle       = lipgloss.NewStyle().Foreground(blushColor).Italic(true)
	logoFaceStyle      = lipgloss.NewStyle().Bold(true).Foreground(roseColor)
	logoShadowStyle    = lipgloss.NewStyle().Foreground(navyColor)
	logoContainerStyle = lipgloss.NewStyle().Padding(0, 1)

	cardStyle                 = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(1, 2)
	selectedCardStyle         = cardStyle.BorderForeground(roseColor)
	cardTitleStyle            = lipgloss.NewStyle().Bold(true).Foreground(blushColor)
	questionCardStyle         = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#3b3950")).Padding(0, 1)
	selectedQuestionCardStyle = questionCardStyle.BorderForeground(roseColor)
	badgeStyle                = lipgloss.NewStyle().Foreground(navyColor).Background(blushColor).Padding(0, 1)
	answerStyle               = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(sageColor).PaddingLeft(1)

	inputBoxStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(0, 1)
	focusedInputBoxStyle = inputBoxStyle.BorderForeground(roseColor)
	selectorStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e"))
	focusedSelectorStyle = selectorStyle.BorderForeground(roseColor).Bold(true)

	buttonStyle         = lipgloss.NewStyle().Foreground(blushColor).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(0, 2)
	focusedButtonStyle  = buttonStyle.Foreground(navyColor).Background(roseColor).BorderForeground(roseColor)
	disabledButtonStyle = buttonStyle.Foreground(mutedColor)

	toastBaseStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	successToastStyle     = toastBaseStyle.BorderForeground(sageColor)
	destructiveToastStyle = toastBaseStyle.BorderForeground(dangerColor).Foreground(dangerColor)
	toastTitleStyle       = lipgloss.NewStyle().Bold(true)

	statusBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#0f0f0f")).Background(roseColor).Padding(0, 1)
	keyStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#ffd166")).Padding(0, 1)
	keyDescStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0def4"))
	legendBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(1, 2)
)
