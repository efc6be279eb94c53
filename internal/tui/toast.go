package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

type toastVariant int

const (
	toastSuccess toastVariant = iota
	toastDestructive
)

// toast is a transient notification. Only one is shown at a time; a newer
// toast replaces the current one.
type toast struct {
	id          int
	title       string
	description string
	variant     toastVariant
}

func (m *model) notify(variant toastVariant, title, description string) tea.Cmd {
	m.toastSeq++
	id := m.toastSeq
	m.toast = &toast{id: id, title: title, description: description, variant: variant}
	m.config.Logger.Debug("toast", zap.Int("id", id), zap.String("title", title), zap.Bool("destructive", variant == toastDestructive))
	if m.config.ToastDuration <= 0 {
		return nil
	}
	return tea.Tick(m.config.ToastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func (m *model) dismissToast(id int) {
	if m.toast != nil && m.toast.id == id {
		m.toast = nil
	}
}

func (m *model) toastView() string {
	if m.toast == nil {
		return ""
	}
	style := successToastStyle
	if m.toast.variant == toastDestructive {
		style = destructiveToastStyle
	}
	width := m.layout.contentWidth / 2
	if width < minViewportWidth {
		width = minViewportWidth
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		toastTitleStyle.Render(m.toast.title),
		m.toast.description,
	)
	return style.Width(width).Render(body)
}
