package tui

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/echoroom/internal/qa"
)

func openBrowse(t *testing.T, m *model) *browseModel {
	t.Helper()
	press(m, keyRunes("b"))
	if m.browse == nil {
		t.Fatal("browse view not mounted")
	}
	return m.browse
}

func visibleIDs(b *browseModel) []int {
	ids := make([]int, 0, len(b.visible))
	for _, q := range b.visible {
		ids = append(ids, q.ID)
	}
	return ids
}

func TestBrowseFilterMatchesCategory(t *testing.T) {
	m := newTestModel(t)
	b := openBrowse(t, m)
	if got := visibleIDs(b); len(got) != 3 {
		t.Fatalf("all filter shows %v, want every question", got)
	}

	for _, option := range qa.FilterOptions() {
		t.Run(option, func(t *testing.T) {
			if !b.setFilter(option) {
				t.Fatalf("option %q rejected", option)
			}
			want, err := qa.Filter(m.config.Questions, option)
			if err != nil {
				t.Fatalf("filter: %v", err)
			}
			got := visibleIDs(b)
			if len(got) != len(want) {
				t.Fatalf("visible = %v, want %d questions", got, len(want))
			}
			for i, q := range want {
				if got[i] != q.ID {
					t.Fatalf("visible = %v, want order of %v", got, want)
				}
			}
		})
	}

	if b.setFilter("Knitting") {
		t.Fatal("unknown filter option should be rejected")
	}
}

func TestBrowseFilterWithArrowKeys(t *testing.T) {
	m := newTestModel(t)
	b := openBrowse(t, m)
	press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if b.focus != browseFocusFilter {
		t.Fatalf("shift+tab from the list should focus the filter, got %v", b.focus)
	}
	press(m, tea.KeyMsg{Type: tea.KeyRight})
	if got := b.filter.Value(); got != string(qa.CategoryCareerProgression) {
		t.Fatalf("filter = %q, want Career Progression", got)
	}
	if got := visibleIDs(b); len(got) != 1 || got[0] != 3 {
		t.Fatalf("visible = %v, want [3]", got)
	}
	press(m, tea.KeyMsg{Type: tea.KeyLeft})
	if b.filter.Value() != qa.FilterAll || len(b.visible) != 3 {
		t.Fatal("left should return to all categories")
	}
}

func TestBrowseToggleExpand(t *testing.T) {
	m := newTestModel(t)
	b := openBrowse(t, m)

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if !b.expanded.is(1) {
		t.Fatalf("enter should expand the first card, got %+v", b.expanded)
	}
	press(m, tea.KeyMsg{Type: tea.KeyDown})
	press(m, tea.KeyMsg{Type: tea.KeySpace})
	if !b.expanded.is(2) {
		t.Fatalf("only the second card should be expanded, got %+v", b.expanded)
	}
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if b.expanded.set {
		t.Fatal("toggling the expanded card should collapse it")
	}
}

func TestBrowseCursorStaysInBounds(t *testing.T) {
	m := newTestModel(t)
	b := openBrowse(t, m)
	press(m, tea.KeyMsg{Type: tea.KeyUp})
	if b.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", b.cursor)
	}
	for i := 0; i < 5; i++ {
		press(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if b.cursor != 2 {
		t.Fatalf("cursor = %d, want 2", b.cursor)
	}
}

func TestBrowseDraftsArePerQuestion(t *testing.T) {
	m := newTestModel(t)
	b := openBrowse(t, m)
	b.toggleExpand(1)
	b.setDraft(1, "first")
	b.toggleExpand(2)
	if got := b.answer.Value(); got != "" {
		t.Fatalf("question 2 should start with an empty draft, got %q", got)
	}
	b.setDraft(2, "second")
	b.toggleExpand(1)
	if got := b.answer.Value(); got != "first" {
		t.Fatalf("question 1 draft = %q, want first", got)
	}
	if b.draft(2) != "second" {
		t.Fatal("question 2 draft lost")
	}
}

func TestBrowseAnswerCapsAtLimit(t *testing.T) {
	m := newTestModel(t)
	b := openBrowse(t, m)
	b.toggleExpand(1)
	b.setDraft(1, strings.Repeat("y", 600))
	if got := utf8.RuneCountInString(b.draft(1)); got != 500 {
		t.Fatalf("draft length = %d, want 500", got)
	}
}

func TestBrowseAnswerCountsWideRunesOnce(t *testing.T) {
	m := newTestModel(t)
	b := openBrowse(t, m)
	press(m, keyRunes("r"))
	if b.focus != browseFocusAnswer {
		t.Fatalf("r should focus the answer input, got %v", b.focus)
	}
	for i := 0; i < 10; i++ {
		press(m, keyRunes("é"))
	}
	for i := 0; i < 300; i++ {
		press(m, keyRunes("界"))
	}
	if got := utf8.RuneCountInString(b.draft(1)); got != 310 {
		t.Fatalf("draft length = %d, want 310", got)
	}
	for i := 0; i < 300; i++ {
		press(m, keyRunes("界"))
	}
	if got := utf8.RuneCountInString(b.draft(1)); got != 500 {
		t.Fatalf("draft length = %d, want 500", got)
	}
	if got := utf8.RuneCountInString(b.answer.Value()); got != 500 {
		t.Fatalf("answer input length = %d, want 500", got)
	}
}

func TestBrowseEmptyAnswerKeepsDraft(t *testing.T) {
	m := newTestModel(t)
	b := openBrowse(t, m)
	b.toggleExpand(1)
	b.setDraft(1, "   ")

	press(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if b.submitting.set {
		t.Fatal("blank answer should not start a submission")
	}
	if m.toast == nil || m.toast.variant != toastDestructive || m.toast.title != "Please write an answer" {
		t.Fatalf("unexpected toast %+v", m.toast)
	}
	if m.toast.description != "Answer cannot be empty." {
		t.Fatalf("unexpected description %q", m.toast.description)
	}
	if b.draft(1) != "   " {
		t.Fatalf("draft changed to %q", b.draft(1))
	}
}

func TestBrowseAnswerSalaryQuestion(t *testing.T) {
	m := newTestModel(t)
	b := openBrowse(t, m)
	press(m, tea.WindowSizeMsg{Width: 100, Height: 80})

	b.setFilter(string(qa.CategorySalary))
	if got := visibleIDs(b); len(got) != 1 || got[0] != 1 {
		t.Fatalf("salary filter shows %v, want [1]", got)
	}
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	view := plainView(m)
	if !strings.Contains(view, "Community Answers") || !strings.Contains(view, "3 answers") {
		t.Fatalf("expanded salary card missing answers:\n%s", view)
	}
	originals := []string{"I was in a similar situation", "Before asking for a raise"}
	for _, want := range originals {
		if !strings.Contains(view, want) {
			t.Fatalf("expanded salary card missing answer %q", want)
		}
	}

	press(m, keyRunes("r"))
	if b.focus != browseFocusAnswer {
		t.Fatalf("r should focus the answer input, got %v", b.focus)
	}
	press(m, keyRunes("Thanks!"))
	if got := b.draft(1); got != "Thanks!" {
		t.Fatalf("draft = %q, want Thanks!", got)
	}

	cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if !b.submitting.is(1) {
		t.Fatal("answer should be submitting")
	}
	if cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlS}); cmd != nil {
		t.Fatal("repeat submit should be ignored")
	}

	follow := deliverJob(t, m, cmd)
	if b.submitting.set {
		t.Fatal("submitting id not cleared")
	}
	if b.draft(1) != "" || b.answer.Value() != "" {
		t.Fatalf("draft not cleared: %q", b.draft(1))
	}
	if m.toast == nil || m.toast.variant != toastSuccess || m.toast.title != "Answer submitted successfully!" {
		t.Fatalf("unexpected toast %+v", m.toast)
	}
	if _, ok := firstMsg[navigateMsg](follow); ok {
		t.Fatal("answering should not leave the browse view")
	}
	q := b.visible[0]
	if q.AnswerCount != 3 || len(q.Answers) != 2 {
		t.Fatalf("answers changed: count=%d len=%d", q.AnswerCount, len(q.Answers))
	}
	if !b.expanded.is(1) {
		t.Fatal("card should stay expanded")
	}
	view = plainView(m)
	if strings.Contains(view, "Thanks!") || !strings.Contains(view, "3 answers") {
		t.Fatalf("submitted answer should not be listed:\n%s", view)
	}
	for _, want := range originals {
		if !strings.Contains(view, want) {
			t.Fatalf("original answer %q missing after submit", want)
		}
	}
}

func TestBrowseAnswerFailureKeepsDraft(t *testing.T) {
	m := newTestModelWith(t, Config{Submitter: failingSubmitter{err: errors.New("offline")}})
	b := openBrowse(t, m)
	b.toggleExpand(3)
	b.setDraft(3, "Ask your manager for a growth plan.")

	deliverJob(t, m, m.submitAnswer(3))
	if b.submitting.set {
		t.Fatal("submitting id not cleared after failure")
	}
	if b.draft(3) != "Ask your manager for a growth plan." {
		t.Fatal("failed submission should keep the draft")
	}
	if m.toast == nil || m.toast.title != "Error submitting answer" || m.toast.description != "Please try again later." {
		t.Fatalf("unexpected toast %+v", m.toast)
	}
}

func TestBrowseFilterKeepsHiddenExpansion(t *testing.T) {
	m := newTestModel(t)
	b := openBrowse(t, m)
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	press(m, tea.KeyMsg{Type: tea.KeyTab})
	if b.focus != browseFocusAnswer {
		t.Fatalf("tab should reach the answer input, got %v", b.focus)
	}

	b.setFilter(string(qa.CategoryWorkplace))
	if b.focus != browseFocusList {
		t.Fatal("hidden answer input should lose focus")
	}
	if !b.expanded.is(1) {
		t.Fatal("expansion should survive filtering")
	}
	if cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlS}); cmd != nil {
		t.Fatal("submit should be ignored while the expanded card is hidden")
	}
	b.setFilter(qa.FilterAll)
	if !b.expandedVisible() {
		t.Fatal("expanded card should reappear")
	}
}

func TestBrowseEmptyStateAsksFirstQuestion(t *testing.T) {
	salaryOnly := []qa.Question{qa.MockQuestions()[0]}
	m := newTestModelWith(t, Config{Questions: salaryOnly})
	b := openBrowse(t, m)
	b.setFilter(string(qa.CategoryNetworking))
	if len(b.visible) != 0 {
		t.Fatalf("networking filter shows %v", visibleIDs(b))
	}
	view := plainView(m)
	for _, want := range []string{"No questions found in this category yet.", "Ask the First Question"} {
		if !strings.Contains(view, want) {
			t.Fatalf("empty state missing %q:\n%s", want, view)
		}
	}

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewAsk || m.ask == nil {
		t.Fatalf("empty state action should open ask, got %v", m.view)
	}
}

func TestBrowseEscLeavesAnswerBeforeView(t *testing.T) {
	m := newTestModel(t)
	b := openBrowse(t, m)
	press(m, keyRunes("r"))
	if b.focus != browseFocusAnswer || !b.expanded.is(1) {
		t.Fatal("r should expand and focus the answer input")
	}
	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewBrowse || b.focus != browseFocusList {
		t.Fatal("first esc should only leave the answer input")
	}
	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewHome {
		t.Fatalf("second esc should go home, got %v", m.view)
	}
}
