// Package prompt reads validated positive integers from an interactive
// stream. Malformed and out-of-range input is reported and retried; a closed
// or failing input stream is returned to the caller as a fatal error.
package prompt
