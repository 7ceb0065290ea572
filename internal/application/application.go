package application

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/eugenenazirov/cs50-week1/internal/change"
	"github.com/eugenenazirov/cs50-week1/internal/config"
	"github.com/eugenenazirov/cs50-week1/internal/prompt"
	"github.com/eugenenazirov/cs50-week1/internal/pyramid"
)

const (
	changePrompt      = "Change owed: "
	changeRangeMsg    = "Please enter a positive, non-zero amount."
	heightPrompt      = "Height: "
	heightRangeMsg    = "Please enter a positive (non-zero and non-negative) integer."
	heightEchoMessage = "You entered: %d\n"
)

// Streams bundles the standard streams a program talks to.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// App encapsulates the exercise dependencies.
type App struct {
	streams    Streams
	reader     *prompt.Reader
	calculator change.Calculator
	logger     *zap.Logger
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg config.Config, logger *zap.Logger, streams Streams) (*App, error) {
	if streams.In == nil || streams.Out == nil || streams.Err == nil {
		return nil, errors.New("all of stdin, stdout and stderr are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	reader := prompt.NewReader(streams.In, streams.Out, streams.Err,
		prompt.WithLogger(logger),
		prompt.WithRetryLimiter(newRetryLimiter(cfg.RetryRPS, cfg.RetryBurst)),
	)

	return &App{
		streams:    streams,
		reader:     reader,
		calculator: change.NewDefault(),
		logger:     logger,
	}, nil
}

// RunChange prompts for the change owed and prints the minimal coin count.
func (a *App) RunChange(ctx context.Context) error {
	cents, err := a.reader.Derive(prompt.WithRangeMessage(changeRangeMsg)).PositiveInt(ctx, changePrompt)
	if err != nil {
		return err
	}

	result := a.calculator.Calculate(cents)
	a.logger.Debug("change calculated",
		zap.Int("cents", cents),
		zap.Int("coins", result.TotalCoins),
		zap.Any("breakdown", result.Coins),
	)

	if _, err := fmt.Fprintln(a.streams.Out, result.TotalCoins); err != nil {
		return fmt.Errorf("write coin count: %w", err)
	}
	return nil
}

// RunPyramid prompts for a height, echoes it and prints the staircase.
func (a *App) RunPyramid(ctx context.Context) error {
	height, err := a.reader.Derive(prompt.WithRangeMessage(heightRangeMsg)).PositiveInt(ctx, heightPrompt)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(a.streams.Out, heightEchoMessage, height); err != nil {
		return fmt.Errorf("write height: %w", err)
	}
	a.logger.Debug("rendering pyramid", zap.Int("height", height))

	return pyramid.Render(a.streams.Out, height)
}

// newRetryLimiter returns nil when throttling is disabled.
func newRetryLimiter(ratePerSecond float64, burst int) *rate.Limiter {
	if ratePerSecond <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(ratePerSecond), burst)
}
