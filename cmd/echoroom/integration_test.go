package main

import (
	"context"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/csheth/echoroom/internal/tuitest"
)

func TestEchoRoomNavigationInTerminal(t *testing.T) {
	if testing.Short() {
		t.Skip("builds and runs the binary")
	}
	t.Parallel()

	cmdDir := moduleDir(t)
	binary := buildBinary(t, cmdDir)
	rec, err := tuitest.Run(context.Background(), tuitest.Config{
		Command: []string{binary, "--no-alt-screen"},
		Dir:     cmdDir,
		Env:     []string{"ECHOROOM_LOG_FILE=" + filepath.Join(t.TempDir(), "echoroom.log")},
		Width:   100,
		Height:  40,
		Steps: []tuitest.Step{
			{Delay: time.Second},
			tuitest.Type(0, "b"),
			{Delay: 500 * time.Millisecond},
			tuitest.Press(0, tuitest.KeyEnter),
			{Delay: 500 * time.Millisecond},
			tuitest.Press(0, tuitest.KeyEsc),
			{Delay: 500 * time.Millisecond},
			tuitest.Type(0, "q"),
		},
		Timeout: 15 * time.Second,
	})
	if err != nil {
		t.Fatalf("run CLI: %v", err)
	}

	for _, want := range []string{
		"A safe, anonymous space",
		"Browse & Answer Questions",
		"All Categories",
		"Community Answers",
	} {
		if !rec.Contains(want) {
			t.Fatalf("terminal never showed %q\n%s", want, rec.Plain())
		}
	}
	if _, ok := rec.FinalFrame(); !ok {
		t.Fatal("no frames captured")
	}
}

func moduleDir(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller unavailable")
	}
	return filepath.Dir(file)
}

func buildBinary(t *testing.T, cmdDir string) string {
	t.Helper()
	name := "echoroom-integration"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	binPath := filepath.Join(t.TempDir(), name)
	cmd := exec.Command("go", "build", "-o", binPath, ".")
	cmd.Dir = cmdDir
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build CLI: %v\n%s", err, output)
	}
	return binPath
}
