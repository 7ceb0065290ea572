// Package pyramid renders a two-sided staircase of bricks, one row per unit of height.
package pyramid

import (
	"fmt"
	"io"
	"strings"
)

const (
	brick = "#"
	blank = " "
	gap   = "  "
)

// row returns row r of a pyramid of the given height, for 0 <= r < height.
func row(height, r int) string {
	blanks := height - r - 1
	bricks := r + 1
	side := strings.Repeat(brick, bricks)

	var b strings.Builder
	b.Grow(blanks + 2*bricks + len(gap))
	b.WriteString(strings.Repeat(blank, blanks))
	b.WriteString(side)
	b.WriteString(gap)
	b.WriteString(side)
	return b.String()
}

// Render writes height newline-terminated rows to w.
func Render(w io.Writer, height int) error {
	for r := 0; r < height; r++ {
		if _, err := fmt.Fprintln(w, row(height, r)); err != nil {
			return fmt.Errorf("write row %d: %w", r, err)
		}
	}
	return nil
}
