package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/echoroom/internal/qa"
)

const submitTimeout = 30 * time.Second

type navigateMsg struct {
	to       view
	deferred bool
}

type questionResultMsg struct {
	mount   int
	receipt qa.Receipt
	err     error
}

type answerResultMsg struct {
	mount      int
	questionID int
	receipt    qa.Receipt
	err        error
}

type toastExpiredMsg struct {
	id int
}

func submitQuestionJob(submitter qa.Submitter, mount int, draft qa.QuestionDraft) jobRunner {
	return func(parent context.Context) (tea.Msg, error) {
		ctx, cancel := context.WithTimeout(parent, submitTimeout)
		defer cancel()
		receipt, err := submitter.SubmitQuestion(ctx, draft)
		return questionResultMsg{mount: mount, receipt: receipt, err: err}, err
	}
}

func submitAnswerJob(submitter qa.Submitter, mount int, draft qa.AnswerDraft) jobRunner {
	questionID := draft.QuestionID
	return func(parent context.Context) (tea.Msg, error) {
		ctx, cancel := context.WithTimeout(parent, submitTimeout)
		defer cancel()
		receipt, err := submitter.SubmitAnswer(ctx, draft)
		return answerResultMsg{mount: mount, questionID: questionID, receipt: receipt, err: err}, err
	}
}

// navigateAfter schedules a view change. The timer is never cancelled: it
// fires even if the user has navigated elsewhere in the meantime.
func navigateAfter(delay time.Duration, to view) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return navigateMsg{to: to, deferred: true} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return navigateMsg{to: to, deferred: true}
	})
}
