package prompt

import "errors"

var (
	// ErrParse is reported when a line is not a valid base-10 integer. It is recovered by retrying.
	ErrParse = errors.New("invalid integer")
	// ErrRange is reported when a line parses but is not strictly positive. It is recovered by retrying.
	ErrRange = errors.New("value must be positive")
	// ErrStream is returned when no further input can be read, including end of input.
	ErrStream = errors.New("read input")
)
