package application

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/cs50-week1/internal/config"
	"github.com/eugenenazirov/cs50-week1/internal/prompt"
)

func newTestApp(t *testing.T, input string, cfg config.Config) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	var out, errOut bytes.Buffer
	app, err := New(cfg, zaptest.NewLogger(t), Streams{
		In:  strings.NewReader(input),
		Out: &out,
		Err: &errOut,
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return app, &out, &errOut
}

func TestRunChange(t *testing.T) {
	app, out, errOut := newTestApp(t, "41\n", baseTestConfig())

	if err := app.RunChange(context.Background()); err != nil {
		t.Fatalf("RunChange returned error: %v", err)
	}
	if want := "Change owed: 4\n"; out.String() != want {
		t.Fatalf("expected %q, got %q", want, out.String())
	}
	if errOut.Len() != 0 {
		t.Fatalf("expected no diagnostics, got %q", errOut.String())
	}
}

func TestRunChangeRetriesWithRangeMessage(t *testing.T) {
	app, out, errOut := newTestApp(t, "-3\n1\n", baseTestConfig())

	if err := app.RunChange(context.Background()); err != nil {
		t.Fatalf("RunChange returned error: %v", err)
	}
	if want := "Change owed: Change owed: 1\n"; out.String() != want {
		t.Fatalf("expected %q, got %q", want, out.String())
	}
	if want := changeRangeMsg + "\n"; errOut.String() != want {
		t.Fatalf("expected %q, got %q", want, errOut.String())
	}
}

func TestRunPyramid(t *testing.T) {
	app, out, _ := newTestApp(t, "3\n", baseTestConfig())

	if err := app.RunPyramid(context.Background()); err != nil {
		t.Fatalf("RunPyramid returned error: %v", err)
	}
	want := "Height: You entered: 3\n  #  #\n ##  ##\n###  ###\n"
	if out.String() != want {
		t.Fatalf("expected %q, got %q", want, out.String())
	}
}

func TestRunPyramidUsesHeightRangeMessage(t *testing.T) {
	app, _, errOut := newTestApp(t, "0\n1\n", baseTestConfig())

	if err := app.RunPyramid(context.Background()); err != nil {
		t.Fatalf("RunPyramid returned error: %v", err)
	}
	if want := heightRangeMsg + "\n"; errOut.String() != want {
		t.Fatalf("expected %q, got %q", want, errOut.String())
	}
}

func TestRunReturnsStreamError(t *testing.T) {
	app, out, _ := newTestApp(t, "", baseTestConfig())

	if err := app.RunChange(context.Background()); !errors.Is(err, prompt.ErrStream) {
		t.Fatalf("expected ErrStream, got %v", err)
	}
	if out.String() != changePrompt {
		t.Fatalf("expected only the prompt, got %q", out.String())
	}
}

func TestNewRequiresStreams(t *testing.T) {
	if _, err := New(baseTestConfig(), nil, Streams{}); err == nil {
		t.Fatalf("expected error for missing streams")
	}
}

func TestNewRetryLimiter(t *testing.T) {
	if limiter := newRetryLimiter(0, 5); limiter != nil {
		t.Fatalf("expected throttling disabled for zero rate")
	}

	limiter := newRetryLimiter(2, 0)
	if limiter == nil {
		t.Fatalf("expected limiter instance")
	}
	if limiter.Burst() != 1 {
		t.Fatalf("expected burst to default to 1, got %d", limiter.Burst())
	}
}

func baseTestConfig() config.Config {
	return config.Config{
		LogLevel:   "debug",
		RetryRPS:   0,
		RetryBurst: 1,
	}
}

func TestRunsShareBufferedInput(t *testing.T) {
	app, out, _ := newTestApp(t, "41\n2\n", baseTestConfig())

	if err := app.RunChange(context.Background()); err != nil {
		t.Fatalf("RunChange returned error: %v", err)
	}
	if err := app.RunPyramid(context.Background()); err != nil {
		t.Fatalf("RunPyramid returned error: %v", err)
	}

	want := "Change owed: 4\nHeight: You entered: 2\n #  #\n##  ##\n"
	if out.String() != want {
		t.Fatalf("expected %q, got %q", want, out.String())
	}
}
