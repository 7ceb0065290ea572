// Package application provides application initialization and dependency wiring.
// It builds the input reader, change calculator and pyramid renderer from the
// resolved configuration, keeping the main packages focused on CLI parsing
// and process lifetime.
package application
