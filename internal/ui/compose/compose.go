// Package compose splices rendered blocks into a base view by row.
// Sheets span the full terminal width, so composition is line
// replacement: block lines replace base lines from the anchor row down.
package compose

import "strings"

// AtRow paints block over base starting at topRow. Block lines falling
// above the top or below the bottom of the base are clipped. The base's
// line count is preserved.
func AtRow(base, block string, topRow int) string {
	if block == "" {
		return base
	}
	baseLines := strings.Split(base, "\n")
	blockLines := strings.Split(block, "\n")

	for i, line := range blockLines {
		row := topRow + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		baseLines[row] = line
	}
	return strings.Join(baseLines, "\n")
}

// Rows returns the number of visual rows in a rendered string.
func Rows(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
