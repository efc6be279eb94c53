package main

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/csheth/echoroom/internal/config"
	"github.com/csheth/echoroom/internal/logging"
	"github.com/csheth/echoroom/internal/qa"
	"github.com/csheth/echoroom/internal/tui"
)

const printWidth = 76

type rootOptions struct {
	configPath  string
	logFile     string
	noAltScreen bool
	verbose     bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "echoroom",
		Short:         "Anonymous career advice board for the terminal",
		Long:          "Echo Room is a safe, anonymous space to ask career questions and answer other people's.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file (overrides logging.file)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")
	cmd.Flags().BoolVar(&opts.noAltScreen, "no-alt-screen", false, "disable the alternate screen buffer")

	cmd.AddCommand(newQuestionsCmd(), newCategoriesCmd())
	return cmd
}

// load resolves configuration and the logger. Flags win over the file and
// environment.
func (o *rootOptions) load() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, nil, err
	}
	if o.logFile != "" {
		cfg.Logging.File = o.logFile
	}
	if o.noAltScreen {
		cfg.UI.AltScreen = false
	}
	logger, err := logging.New(cfg.Logging, o.verbose)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func runTUI(opts *rootOptions) error {
	cfg, logger, err := opts.load()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting",
		zap.Duration("submit_delay", cfg.Submission.Delay),
		zap.Duration("navigate_delay", cfg.Submission.NavigateDelay),
		zap.Bool("alt_screen", cfg.UI.AltScreen),
	)

	var programOpts []tea.ProgramOption
	if cfg.UI.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			Questions:     qa.MockQuestions(),
			Submitter:     qa.NewSimulatedSubmitter(cfg.Submission.Delay, logger.Named("submitter")),
			NavigateDelay: cfg.Submission.NavigateDelay,
			ToastDuration: cfg.UI.ToastDuration,
			QuestionLimit: cfg.Limits.QuestionChars,
			AnswerLimit:   cfg.Limits.AnswerChars,
			Logger:        logger,
		}),
		programOpts...,
	)
	if _, err := program.Run(); err != nil {
		logger.Error("program exited", zap.Error(err))
		return fmt.Errorf("run program: %w", err)
	}
	logger.Info("bye")
	return nil
}

func newQuestionsCmd() *cobra.Command {
	var (
		category    string
		showAnswers bool
	)
	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Print the question board without starting the UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := qa.FilterAll
			if category != "" && !strings.EqualFold(category, qa.FilterAll) {
				c, err := qa.ParseCategory(category)
				if err != nil {
					return err
				}
				filter = string(c)
			}
			questions, err := qa.Filter(qa.MockQuestions(), filter)
			if err != nil {
				return err
			}
			return printQuestions(cmd.OutOrStdout(), questions, showAnswers)
		},
	}
	cmd.Flags().StringVar(&category, "category", qa.FilterAll, `only show this category, or "all"`)
	cmd.Flags().BoolVar(&showAnswers, "answers", false, "include community answers")
	return cmd
}

func printQuestions(w io.Writer, questions []qa.Question, showAnswers bool) error {
	if len(questions) == 0 {
		_, err := fmt.Fprintln(w, "No questions found in this category yet.")
		return err
	}
	var b strings.Builder
	for i, q := range questions {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "#%d [%s] %s · %s\n", q.ID, q.Category, q.Timestamp, q.AnswerLabel())
		b.WriteString(indent.String(wordwrap.String(q.Body, printWidth-2), 2))
		b.WriteString("\n")
		if !showAnswers {
			continue
		}
		for _, a := range q.Answers {
			b.WriteString(indent.String(wordwrap.String("- "+a.Body, printWidth-6), 4))
			fmt.Fprintf(&b, "\n      (%s)\n", a.Timestamp)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List question categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range qa.Categories() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), c); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
