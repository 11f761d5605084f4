package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRenderGrid verifies plain rendering: one row per line, right-aligned
// columns.
func TestRenderGrid(t *testing.T) {
	labels := [][]int{
		{1, 0, 2},
		{1, 1, 0},
	}
	want := "1 0 2\n1 1 0\n"
	assert.Equal(t, want, renderGrid(labels))
}

// TestRenderGrid_AlignsWideLabels verifies columns pad to the widest label.
func TestRenderGrid_AlignsWideLabels(t *testing.T) {
	labels := [][]int{
		{10, 0},
		{1, 10},
	}
	want := "10  0\n 1 10\n"
	assert.Equal(t, want, renderGrid(labels))
}

// TestRenderGrid_Empty verifies degenerate shapes render to nothing (or
// bare newlines for zero-width rows).
func TestRenderGrid_Empty(t *testing.T) {
	assert.Equal(t, "", renderGrid([][]int{}))
	assert.Equal(t, "\n\n", renderGrid([][]int{{}, {}}))
}

// TestRenderGridColor_KeepsCellValues verifies the colored renderer still
// carries every label digit per row (styling may add escape codes, never
// drop values).
func TestRenderGridColor_KeepsCellValues(t *testing.T) {
	labels := [][]int{
		{1, 0},
		{0, 2},
	}
	out := renderGridColor(labels)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "1")
	assert.Contains(t, lines[0], "0")
	assert.Contains(t, lines[1], "2")
}
