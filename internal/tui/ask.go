package tui

import (
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/csheth/echoroom/internal/qa"
)

// askModel is the question form. It lives only while the ask view is
// mounted.
type askModel struct {
	mount      int
	limit      int
	category   selector
	body       textarea.Model
	focus      askFocus
	submitting bool
}

func newAskModel(mount, limit int, layout pageLayout) *askModel {
	options := make([]string, 0, len(qa.Categories()))
	for _, c := range qa.Categories() {
		options = append(options, string(c))
	}

	body := textarea.New()
	body.Placeholder = askBodyPlaceholder
	// Limits count runes; textarea.CharLimit counts cells.
	body.CharLimit = 0
	body.MaxHeight = limit + 1
	body.ShowLineNumbers = false
	body.SetHeight(6)

	a := &askModel{
		mount:    mount,
		limit:    limit,
		category: newSelector(options, askCategoryPlaceholder, -1),
		body:     body,
	}
	a.resize(layout)
	a.setFocus(askFocusCategory)
	return a
}

func (a *askModel) resize(layout pageLayout) {
	a.body.SetWidth(layout.inputWidth)
}

func (a *askModel) setFocus(focus askFocus) tea.Cmd {
	a.focus = focus
	a.category.focused = focus == askFocusCategory
	if focus == askFocusBody {
		return a.body.Focus()
	}
	a.body.Blur()
	return nil
}

func (a *askModel) cycleFocus(delta int) tea.Cmd {
	next := (int(a.focus) + delta + int(askFocusCount)) % int(askFocusCount)
	return a.setFocus(askFocus(next))
}

func (a *askModel) draft() qa.QuestionDraft {
	return qa.QuestionDraft{
		Body:     a.body.Value(),
		Category: qa.Category(a.category.Value()),
	}
}

func (a *askModel) length() int {
	return utf8.RuneCountInString(a.body.Value())
}

func (a *askModel) updateBody(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	a.body, cmd = a.body.Update(msg)
	if a.length() > a.limit {
		a.body.SetValue(qa.Truncate(a.body.Value(), a.limit))
	}
	return cmd
}

func (a *askModel) reset() {
	a.body.Reset()
	a.category.Clear()
}

func (m *model) handleAskKey(msg tea.KeyMsg) tea.Cmd {
	a := m.ask
	if a == nil {
		return nil
	}
	switch {
	case key.Matches(msg, keys.Submit):
		return m.submitQuestion()
	case key.Matches(msg, keys.NextFocus):
		return a.cycleFocus(1)
	case key.Matches(msg, keys.PrevFocus):
		return a.cycleFocus(-1)
	case key.Matches(msg, keys.Back):
		if a.focus == askFocusBody {
			return a.setFocus(askFocusSubmit)
		}
		return m.navigate(viewHome, false)
	}

	switch a.focus {
	case askFocusCategory:
		switch {
		case key.Matches(msg, keys.Left, keys.Up):
			a.category.Prev()
		case key.Matches(msg, keys.Right, keys.Down):
			a.category.Next()
		case key.Matches(msg, keys.Activate):
			return a.setFocus(askFocusBody)
		}
	case askFocusBody:
		return a.updateBody(msg)
	case askFocusSubmit:
		if key.Matches(msg, keys.Activate) {
			return m.submitQuestion()
		}
	}
	return nil
}

func (m *model) submitQuestion() tea.Cmd {
	a := m.ask
	if a == nil || a.submitting {
		return nil
	}
	draft := a.draft()
	if err := draft.Validate(); err != nil {
		m.config.Logger.Debug("question rejected", zap.Error(err))
		return m.notify(toastDestructive, "Please complete all fields", "Both question and category are required.")
	}
	a.submitting = true
	return tea.Batch(
		m.spinner.Tick,
		m.jobs.Start(jobKindQuestion, submitQuestionJob(m.config.Submitter, a.mount, draft)),
	)
}

// handleQuestionResult reports the outcome. The notification and the
// deferred trip home happen even if the form was unmounted while waiting;
// only the field reset is scoped to the mount that submitted.
func (m *model) handleQuestionResult(msg questionResultMsg) tea.Cmd {
	current := m.ask != nil && m.ask.mount == msg.mount
	if current {
		m.ask.submitting = false
	}
	if msg.err != nil {
		m.config.Logger.Warn("question submission failed", zap.Error(msg.err))
		return m.notify(toastDestructive, "Error submitting question", "Please try again later.")
	}
	if current {
		m.ask.reset()
	}
	return tea.Batch(
		m.notify(toastSuccess, "Question submitted successfully!", "Your anonymous question has been posted and will be visible to the community."),
		navigateAfter(m.config.NavigateDelay, viewHome),
	)
}
