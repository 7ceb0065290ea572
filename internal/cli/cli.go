// Package cli holds the process wiring shared by the exercise binaries:
// flag parsing, configuration, logging and the fatal exit path.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/cs50-week1/internal/application"
	"github.com/eugenenazirov/cs50-week1/internal/config"
	"github.com/eugenenazirov/cs50-week1/internal/logging"
)

var (
	notifyContext = signal.NotifyContext
	newLogger     = logging.New
)

// Command describes one exercise binary.
type Command struct {
	Name string
	Help string
	Run  func(ctx context.Context, app *application.App) error
}

// Main runs cmd against the process streams and exits with its status.
func Main(cmd Command) {
	os.Exit(Run(cmd, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// Run executes cmd with a buffered stdout that is flushed before returning.
// Failures are reported on stderr and yield status 1. SIGINT and SIGTERM
// cancel a pending prompt.
func Run(cmd Command, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	ctx, stop := notifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := bufio.NewWriter(stdout)
	err := Execute(ctx, cmd, args, application.Streams{
		In:  stdin,
		Out: out,
		Err: stderr,
	})
	if flushErr := out.Flush(); err == nil && flushErr != nil {
		err = fmt.Errorf("flush stdout: %w", flushErr)
	}

	status := 0
	kingpin.New(cmd.Name, cmd.Help).
		ErrorWriter(stderr).
		Terminate(func(code int) { status = code }).
		FatalIfError(err, "")
	return status
}

// Execute parses args, resolves configuration and runs cmd.
func Execute(ctx context.Context, cmd Command, args []string, streams application.Streams) error {
	kingpinApp := kingpin.New(cmd.Name, cmd.Help)
	kingpinApp.UsageWriter(streams.Out)
	kingpinApp.ErrorWriter(streams.Err)

	configFile := kingpinApp.Flag("config", "Path to YAML configuration file").String()
	logLevel := kingpinApp.Flag("log-level", "Log level (debug, info, warn, error)").String()
	retryRPSFlag := kingpinApp.Flag("retry-rps", "Re-prompts per second after invalid input (set 0 to disable)").Default("-1").Float64()
	retryBurstFlag := kingpinApp.Flag("retry-burst", "Re-prompts allowed before throttling starts").Default("-1").Int()

	// Help output must not exit the process before stdout is flushed.
	exited := false
	kingpinApp.Terminate(func(int) { exited = true })

	_, err := kingpinApp.Parse(args)
	if exited {
		return nil
	}
	if err != nil {
		return err
	}

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
	}

	if *logLevel != "" {
		overrides.LogLevel = logLevel
	}

	if *retryRPSFlag >= 0 {
		overrides.RetryRPS = retryRPSFlag
	}

	if *retryBurstFlag >= 0 {
		overrides.RetryBurst = retryBurstFlag
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	app, err := application.New(cfg, logger, streams)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	if err := cmd.Run(ctx, app); err != nil {
		logger.Debug("exercise aborted", zap.String("command", cmd.Name), zap.Error(err))
		return err
	}
	return nil
}
