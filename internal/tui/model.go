package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/csheth/echoroom/internal/qa"
)

// Config wires runtime options into the TUI program. Zero durations mean
// "immediately" for NavigateDelay and "never expire" for ToastDuration.
type Config struct {
	Questions     []qa.Question
	Submitter     qa.Submitter
	NavigateDelay time.Duration
	ToastDuration time.Duration
	QuestionLimit int
	AnswerLimit   int
	Logger        *zap.Logger
}

func (c Config) withDefaults() Config {
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	if c.Questions == nil {
		c.Questions = qa.MockQuestions()
	}
	if c.Submitter == nil {
		c.Submitter = qa.NewSimulatedSubmitter(qa.DefaultSubmitDelay, c.Logger)
	}
	if c.QuestionLimit <= 0 {
		c.QuestionLimit = 1000
	}
	if c.AnswerLimit <= 0 {
		c.AnswerLimit = 500
	}
	return c
}

// New returns a tea.Model ready to be mounted into a Program. The program
// starts on the home view.
func New(config Config) tea.Model {
	config = config.withDefaults()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return &model{
		config:   config,
		view:     viewHome,
		spinner:  spin,
		jobs:     newJobBus(config.Logger),
		layout:   newPageLayout(),
		markdown: newMarkdownRenderer(),
	}
}

type model struct {
	config Config
	view   view

	homeCursor homeCard
	ask        *askModel
	browse     *browseModel
	mounts     int

	toast    *toast
	toastSeq int

	jobs        *jobBus
	spinner     spinner.Model
	layout      pageLayout
	markdown    *markdownRenderer
	helpVisible bool
}

func (m *model) Init() tea.Cmd {
	return tea.SetWindowTitle(heroTitle)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.busy() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.applyLayout()
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, keys.ForceQuit) {
			return m, tea.Quit
		}
		switch m.view {
		case viewAsk:
			return m, m.handleAskKey(msg)
		case viewBrowse:
			return m, m.handleBrowseKey(msg)
		default:
			return m, m.handleHomeKey(msg)
		}
	case navigateMsg:
		return m, m.navigate(msg.to, msg.deferred)
	case jobResultEnvelope:
		m.jobs.Finish(msg.Snapshot)
		return m.Update(msg.Payload)
	case questionResultMsg:
		return m, m.handleQuestionResult(msg)
	case answerResultMsg:
		return m, m.handleAnswerResult(msg)
	case toastExpiredMsg:
		m.dismissToast(msg.id)
		return m, nil
	}
	return m, m.forwardToInputs(msg)
}

// navigate swaps the visible view. Sub-views are rebuilt on every entry so
// their local state never survives a round trip through home.
func (m *model) navigate(to view, deferred bool) tea.Cmd {
	m.config.Logger.Debug("view change",
		zap.Stringer("from", m.view),
		zap.Stringer("to", to),
		zap.Bool("deferred", deferred),
	)
	m.view = to
	m.ask = nil
	m.browse = nil
	switch to {
	case viewAsk:
		m.mounts++
		m.ask = newAskModel(m.mounts, m.config.QuestionLimit, m.layout)
	case viewBrowse:
		m.mounts++
		m.browse = newBrowseModel(m.mounts, m.config.Questions, m.config.AnswerLimit, m.layout)
	}
	return nil
}

func (m *model) handleHomeKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		return tea.Quit
	case key.Matches(msg, keys.Help):
		m.helpVisible = !m.helpVisible
	case key.Matches(msg, keys.Ask):
		return m.navigate(viewAsk, false)
	case key.Matches(msg, keys.Browse):
		return m.navigate(viewBrowse, false)
	case key.Matches(msg, keys.Left, keys.Up, keys.PrevFocus):
		m.homeCursor = cardAsk
	case key.Matches(msg, keys.Right, keys.Down, keys.NextFocus):
		m.homeCursor = cardBrowse
	case key.Matches(msg, keys.Activate):
		if m.homeCursor == cardBrowse {
			return m.navigate(viewBrowse, false)
		}
		return m.navigate(viewAsk, false)
	}
	return nil
}

// forwardToInputs hands non-key messages (cursor blinks) to whichever text
// area has focus.
func (m *model) forwardToInputs(msg tea.Msg) tea.Cmd {
	switch {
	case m.ask != nil && m.ask.focus == askFocusBody:
		var cmd tea.Cmd
		m.ask.body, cmd = m.ask.body.Update(msg)
		return cmd
	case m.browse != nil && m.browse.focus == browseFocusAnswer:
		var cmd tea.Cmd
		m.browse.answer, cmd = m.browse.answer.Update(msg)
		return cmd
	}
	return nil
}

func (m *model) busy() bool {
	if m.ask != nil && m.ask.submitting {
		return true
	}
	return m.browse != nil && m.browse.submitting.set
}

func (m *model) applyLayout() {
	if m.ask != nil {
		m.ask.resize(m.layout)
	}
	if m.browse != nil {
		m.browse.resize(m.layout)
	}
}
