package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csheth/echoroom/internal/qa"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCategoriesCommand(t *testing.T) {
	out, err := execute(t, "categories")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "Career Progression", lines[0])
	assert.Equal(t, "Other", lines[9])
}

func TestQuestionsCommand(t *testing.T) {
	t.Run("all", func(t *testing.T) {
		out, err := execute(t, "questions")
		require.NoError(t, err)
		assert.Contains(t, out, "#1 [Salary & Negotiations] 2 hours ago · 3 answers")
		assert.Contains(t, out, "#2 [Workplace Challenges]")
		assert.Contains(t, out, "#3 [Career Progression]")
		assert.NotContains(t, out, "45 minutes ago")
	})

	t.Run("category with answers", func(t *testing.T) {
		out, err := execute(t, "questions", "--category", "salary & negotiations", "--answers")
		require.NoError(t, err)
		assert.Contains(t, out, "#1 [Salary & Negotiations]")
		assert.NotContains(t, out, "#2 ")
		assert.Contains(t, out, "(45 minutes ago)")
	})

	t.Run("empty category", func(t *testing.T) {
		out, err := execute(t, "questions", "--category", "Networking")
		require.NoError(t, err)
		assert.Equal(t, "No questions found in this category yet.\n", out)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := execute(t, "questions", "--category", "knitting")
		assert.ErrorIs(t, err, qa.ErrUnknownCategory)
	})
}

func TestRootRejectsArguments(t *testing.T) {
	_, err := execute(t, "surprise")
	assert.Error(t, err)
}

func TestRootOptionsLoad(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "echoroom.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("submission:\n  delay: 250ms\nui:\n  alt_screen: true\n"), 0o644))
	logPath := filepath.Join(dir, "echoroom.log")

	opts := &rootOptions{configPath: cfgPath, logFile: logPath, noAltScreen: true}
	cfg, logger, err := opts.load()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.Submission.Delay)
	assert.False(t, cfg.UI.AltScreen)
	assert.Equal(t, logPath, cfg.Logging.File)

	logger.Info("hello")
	require.NoError(t, logger.Sync())
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestRootOptionsLoadMissingConfig(t *testing.T) {
	opts := &rootOptions{configPath: filepath.Join(t.TempDir(), "missing.yaml")}
	_, _, err := opts.load()
	assert.ErrorIs(t, err, os.ErrNotExist)
}
