// Package change computes the minimal number of coins owed for an amount of
// cents by greedy reduction over a fixed, canonical denomination set.
package change
