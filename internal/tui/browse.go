package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/csheth/echoroom/internal/qa"
)

// browseModel is the question board. questions is the fixture handed over
// at construction and is only ever read.
type browseModel struct {
	mount     int
	limit     int
	questions []qa.Question
	visible   []qa.Question

	filter     selector
	cursor     int
	expanded   questionRef
	drafts     map[int]string
	submitting questionRef

	answer    textarea.Model
	focus     browseFocus
	viewport  viewport.Model
	cardSpans []lineSpan
	anchored  int
}

func newBrowseModel(mount int, questions []qa.Question, limit int, layout pageLayout) *browseModel {
	answer := textarea.New()
	answer.Placeholder = answerPlaceholder
	answer.CharLimit = 0
	answer.MaxHeight = limit + 1
	answer.ShowLineNumbers = false
	answer.SetHeight(4)

	filter := newSelector(qa.FilterOptions(), filterPlaceholder, 0)
	filter.label = qa.FilterLabel

	b := &browseModel{
		mount:     mount,
		limit:     limit,
		questions: questions,
		filter:    filter,
		drafts:    map[int]string{},
		answer:    answer,
		viewport:  viewport.New(layout.contentWidth, layout.viewportHeight),
	}
	b.resize(layout)
	b.applyFilter()
	b.setFocus(browseFocusList)
	return b
}

func (b *browseModel) resize(layout pageLayout) {
	b.answer.SetWidth(layout.inputWidth - inputBorderWidth)
	b.viewport.Width = layout.contentWidth
	b.viewport.Height = layout.viewportHeight
}

// applyFilter recomputes the visible list from the fixture. The expanded
// question is left alone even when it is filtered out.
func (b *browseModel) applyFilter() {
	visible, err := qa.Filter(b.questions, b.filter.Value())
	if err != nil {
		visible = nil
	}
	b.visible = visible
	b.cursor = 0
	b.anchored = -1
	b.viewport.SetYOffset(0)
	if b.focus == browseFocusAnswer && !b.expandedVisible() {
		b.setFocus(browseFocusList)
	}
}

func (b *browseModel) setFilter(option string) bool {
	if !b.filter.Set(option) {
		return false
	}
	b.applyFilter()
	return true
}

func (b *browseModel) current() (qa.Question, bool) {
	if b.cursor < 0 || b.cursor >= len(b.visible) {
		return qa.Question{}, false
	}
	return b.visible[b.cursor], true
}

func (b *browseModel) expandedVisible() bool {
	if !b.expanded.set {
		return false
	}
	for _, q := range b.visible {
		if q.ID == b.expanded.id {
			return true
		}
	}
	return false
}

func (b *browseModel) moveCursor(delta int) {
	if len(b.visible) == 0 {
		b.cursor = 0
		return
	}
	b.cursor += delta
	if b.cursor < 0 {
		b.cursor = 0
	}
	if b.cursor >= len(b.visible) {
		b.cursor = len(b.visible) - 1
	}
}

// toggleExpand opens id, or closes it when it is already open. Only one
// question is open at a time.
func (b *browseModel) toggleExpand(id int) {
	if b.expanded.is(id) {
		b.expanded = questionRef{}
		if b.focus == browseFocusAnswer {
			b.setFocus(browseFocusList)
		}
		return
	}
	b.expanded = someQuestion(id)
	b.anchored = -1
	b.answer.SetValue(b.drafts[id])
}

func (b *browseModel) draft(id int) string {
	return b.drafts[id]
}

func (b *browseModel) setDraft(id int, value string) {
	value = qa.Truncate(value, b.limit)
	b.drafts[id] = value
	if b.expanded.is(id) && b.answer.Value() != value {
		b.answer.SetValue(value)
	}
}

func (b *browseModel) updateAnswer(msg tea.Msg) tea.Cmd {
	if !b.expanded.set {
		return nil
	}
	var cmd tea.Cmd
	b.answer, cmd = b.answer.Update(msg)
	b.setDraft(b.expanded.id, b.answer.Value())
	return cmd
}

func (b *browseModel) setFocus(focus browseFocus) tea.Cmd {
	if focus == browseFocusAnswer && !b.expandedVisible() {
		focus = browseFocusList
	}
	b.focus = focus
	b.filter.focused = focus == browseFocusFilter
	if focus == browseFocusAnswer {
		return b.answer.Focus()
	}
	b.answer.Blur()
	return nil
}

func (b *browseModel) cycleFocus(delta int) tea.Cmd {
	order := []browseFocus{browseFocusFilter, browseFocusList}
	if b.expandedVisible() {
		order = append(order, browseFocusAnswer)
	}
	idx := 0
	for i, f := range order {
		if f == b.focus {
			idx = i
		}
	}
	idx = (idx + delta + len(order)) % len(order)
	return b.setFocus(order[idx])
}

func (m *model) handleBrowseKey(msg tea.KeyMsg) tea.Cmd {
	b := m.browse
	if b == nil {
		return nil
	}
	switch {
	case key.Matches(msg, keys.Submit):
		if b.expandedVisible() {
			return m.submitAnswer(b.expanded.id)
		}
		return nil
	case key.Matches(msg, keys.NextFocus):
		return b.cycleFocus(1)
	case key.Matches(msg, keys.PrevFocus):
		return b.cycleFocus(-1)
	case key.Matches(msg, keys.Back):
		if b.focus == browseFocusAnswer {
			return b.setFocus(browseFocusList)
		}
		return m.navigate(viewHome, false)
	}

	switch b.focus {
	case browseFocusFilter:
		switch {
		case key.Matches(msg, keys.Left, keys.Up):
			b.filter.Prev()
			b.applyFilter()
		case key.Matches(msg, keys.Right, keys.Down):
			b.filter.Next()
			b.applyFilter()
		case key.Matches(msg, keys.Activate):
			return b.setFocus(browseFocusList)
		}
	case browseFocusList:
		return m.handleBrowseListKey(msg)
	case browseFocusAnswer:
		return b.updateAnswer(msg)
	}
	return nil
}

func (m *model) handleBrowseListKey(msg tea.KeyMsg) tea.Cmd {
	b := m.browse
	if len(b.visible) == 0 {
		// The empty state offers a single action: ask the first question.
		if key.Matches(msg, keys.Activate, keys.Ask) {
			return m.navigate(viewAsk, false)
		}
		return nil
	}
	switch {
	case key.Matches(msg, keys.Help):
		m.helpVisible = !m.helpVisible
	case key.Matches(msg, keys.Up):
		b.moveCursor(-1)
	case key.Matches(msg, keys.Down):
		b.moveCursor(1)
	case key.Matches(msg, keys.Left, keys.Right):
		// arrows only move between options on the filter
	case key.Matches(msg, keys.Activate):
		if q, ok := b.current(); ok {
			b.toggleExpand(q.ID)
		}
	case key.Matches(msg, keys.Reply):
		q, ok := b.current()
		if !ok {
			return nil
		}
		if !b.expanded.is(q.ID) {
			b.toggleExpand(q.ID)
		}
		return b.setFocus(browseFocusAnswer)
	case key.Matches(msg, keys.PageUp, keys.PageDown):
		var cmd tea.Cmd
		b.viewport, cmd = b.viewport.Update(msg)
		return cmd
	}
	return nil
}

func (m *model) submitAnswer(questionID int) tea.Cmd {
	b := m.browse
	if b == nil || b.submitting.is(questionID) {
		return nil
	}
	draft := qa.AnswerDraft{QuestionID: questionID, Body: b.draft(questionID)}
	if err := draft.Validate(); err != nil {
		m.config.Logger.Debug("answer rejected", zap.Int("question", questionID), zap.Error(err))
		return m.notify(toastDestructive, "Please write an answer", "Answer cannot be empty.")
	}
	b.submitting = someQuestion(questionID)
	return tea.Batch(
		m.spinner.Tick,
		m.jobs.Start(jobKindAnswer, submitAnswerJob(m.config.Submitter, b.mount, draft)),
	)
}

// handleAnswerResult clears the draft on success. The answer itself is
// discarded: the card keeps its original answers and count.
func (m *model) handleAnswerResult(msg answerResultMsg) tea.Cmd {
	current := m.browse != nil && m.browse.mount == msg.mount
	if current {
		m.browse.submitting = questionRef{}
	}
	if msg.err != nil {
		m.config.Logger.Warn("answer submission failed", zap.Int("question", msg.questionID), zap.Error(msg.err))
		return m.notify(toastDestructive, "Error submitting answer", "Please try again later.")
	}
	if current {
		m.browse.setDraft(msg.questionID, "")
	}
	return m.notify(toastSuccess, "Answer submitted successfully!", "Your anonymous answer has been posted.")
}
