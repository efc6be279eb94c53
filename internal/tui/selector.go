package tui

import "github.com/charmbracelet/lipgloss"

// selector is a single-choice picker cycled with the arrow keys. index -1
// means nothing has been picked yet.
type selector struct {
	options     []string
	label       func(string) string
	placeholder string
	index       int
	focused     bool
}

func newSelector(options []string, placeholder string, initial int) selector {
	if initial >= len(options) {
		initial = -1
	}
	return selector{
		options:     options,
		placeholder: placeholder,
		index:       initial,
	}
}

func (s *selector) Next() {
	if len(s.options) == 0 {
		return
	}
	if s.index < 0 {
		s.index = 0
		return
	}
	s.index = (s.index + 1) % len(s.options)
}

func (s *selector) Prev() {
	if len(s.options) == 0 {
		return
	}
	if s.index < 0 {
		s.index = len(s.options) - 1
		return
	}
	s.index = (s.index - 1 + len(s.options)) % len(s.options)
}

// Set picks value if it is one of the options.
func (s *selector) Set(value string) bool {
	for i, option := range s.options {
		if option == value {
			s.index = i
			return true
		}
	}
	return false
}

func (s *selector) Clear() {
	s.index = -1
}

func (s selector) Value() string {
	if s.index < 0 || s.index >= len(s.options) {
		return ""
	}
	return s.options[s.index]
}

func (s selector) display() string {
	value := s.Value()
	if value == "" {
		return s.placeholder
	}
	if s.label != nil {
		return s.label(value)
	}
	return value
}

func (s selector) View() string {
	text := s.display()
	if s.Value() == "" {
		text = placeholderStyle.Render(text)
	}
	counter := ""
	if s.index >= 0 {
		counter = helperStyle.Render(" " + positionLabel(s.index, len(s.options)))
	}
	box := selectorStyle.Render("  " + text + "  ")
	if s.focused {
		box = focusedSelectorStyle.Render("‹ " + text + " ›")
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, box, counter)
}
