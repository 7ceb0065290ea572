package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const defaultRangeMessage = "Please enter a positive, non-zero amount."

type flusher interface {
	Flush() error
}

type lineResult struct {
	line string
	err  error
}

// lineSource owns the buffered input. A read abandoned by a cancelled context
// stays pending and is collected by the next read.
type lineSource struct {
	in      *bufio.Reader
	pending chan lineResult
}

// Reader prompts for and reads positive integers, one line per attempt.
// A Reader and the Readers derived from it share one input buffer and are
// not safe for concurrent use.
type Reader struct {
	src    *lineSource
	out    io.Writer
	errOut io.Writer

	logger       *zap.Logger
	limiter      *rate.Limiter
	rangeMessage string
}

// Option configures Reader behaviour.
type Option func(*Reader)

// WithLogger attaches a logger for per-attempt debug events.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Reader) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithRangeMessage overrides the diagnostic written for zero or negative values.
func WithRangeMessage(message string) Option {
	return func(r *Reader) {
		r.rangeMessage = message
	}
}

// WithRetryLimiter throttles prompts that follow a rejected attempt.
func WithRetryLimiter(limiter *rate.Limiter) Option {
	return func(r *Reader) {
		r.limiter = limiter
	}
}

// NewReader constructs a Reader. Prompts go to out, diagnostics to errOut.
func NewReader(in io.Reader, out, errOut io.Writer, opts ...Option) *Reader {
	r := &Reader{
		src:          &lineSource{in: bufio.NewReader(in)},
		out:          out,
		errOut:       errOut,
		logger:       zap.NewNop(),
		rangeMessage: defaultRangeMessage,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Derive returns a copy of r with opts applied that reads from the same input.
func (r *Reader) Derive(opts ...Option) *Reader {
	derived := *r
	for _, opt := range opts {
		opt(&derived)
	}
	return &derived
}

// PositiveInt displays prompt and reads lines until one holds an integer > 0.
// Invalid lines are reported on the error stream and the prompt repeats. The
// returned error wraps ErrStream when input is exhausted or unreadable, or is
// the context error if ctx is done before a value is accepted.
func (r *Reader) PositiveInt(ctx context.Context, prompt string) (int, error) {
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		if err := r.writePrompt(prompt); err != nil {
			return 0, err
		}

		line, err := r.src.readLine(ctx)
		if err != nil {
			r.logger.Debug("input stream failed", zap.Int("attempt", attempt), zap.Error(err))
			return 0, err
		}
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		value, err := parsePositive(line)
		if err == nil {
			r.logger.Debug("input accepted", zap.Int("attempt", attempt), zap.Int("value", value))
			return value, nil
		}

		r.logger.Debug("input rejected",
			zap.Int("attempt", attempt),
			zap.String("input", strings.TrimSpace(line)),
			zap.Error(err),
		)
		if _, werr := fmt.Fprintln(r.errOut, r.diagnostic(err)); werr != nil {
			return 0, fmt.Errorf("%w: write diagnostic: %w", ErrStream, werr)
		}

		if r.limiter != nil {
			if err := r.limiter.Wait(ctx); err != nil {
				return 0, err
			}
		}
	}
}

func (r *Reader) writePrompt(prompt string) error {
	if _, err := io.WriteString(r.out, prompt); err != nil {
		return fmt.Errorf("%w: write prompt: %w", ErrStream, err)
	}
	// A buffered prompt must reach the terminal before the read blocks.
	if f, ok := r.out.(flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("%w: flush prompt: %w", ErrStream, err)
		}
	}
	return nil
}

// readLine returns the next line, or ctx.Err() if ctx is done first. A final
// line without a newline is still returned; end of input with nothing pending
// is an error.
func (s *lineSource) readLine(ctx context.Context) (string, error) {
	if s.pending == nil {
		results := make(chan lineResult, 1)
		go func() {
			line, err := s.in.ReadString('\n')
			results <- lineResult{line: line, err: err}
		}()
		s.pending = results
	}

	var res lineResult
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res = <-s.pending:
		s.pending = nil
	}

	if res.err == nil {
		return res.line, nil
	}
	if errors.Is(res.err, io.EOF) && res.line != "" {
		return res.line, nil
	}
	return "", fmt.Errorf("%w: %w", ErrStream, res.err)
}

func (r *Reader) diagnostic(err error) string {
	if errors.Is(err, ErrRange) {
		return r.rangeMessage
	}
	return "Parse Error: " + err.Error()
}

func parsePositive(line string) (int, error) {
	text := strings.TrimSpace(line)
	value, err := strconv.Atoi(text)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, fmt.Errorf("%w %q: %w", ErrParse, text, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%w, got %d", ErrRange, value)
	}
	return value, nil
}
