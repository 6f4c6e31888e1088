package report_test

import (
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/katalvlaran/bazinga/pattern"
	"github.com/katalvlaran/bazinga/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// computeGolden returns the canonical record used across renderer tests.
func computeGolden(t *testing.T) pattern.Result {
	t.Helper()

	opts := pattern.DefaultOptions()
	opts.ReturnTrajectory = true
	res, err := pattern.Compute("AI applications in healthcare", &opts)
	require.NoError(t, err)

	return res
}

// TestMarkdown_SectionsPresent checks the rendered document carries every
// section and the recorded signature numbers.
func TestMarkdown_SectionsPresent(t *testing.T) {
	md, err := report.Markdown(computeGolden(t))
	require.NoError(t, err)

	assert.Contains(t, md, "# Pattern Analysis")
	assert.Contains(t, md, "## Signature")
	assert.Contains(t, md, "## Text Features")
	assert.Contains(t, md, "## Fractal Orbit")
	assert.Contains(t, md, "## Principles")
	assert.Contains(t, md, "Seed: 356")
	assert.Contains(t, md, "Frequency: 1.826017")
	assert.Contains(t, md, "Escaped: true")
}

// TestMarkdown_PrincipleOrder verifies the table lists the five principles
// in canonical order.
func TestMarkdown_PrincipleOrder(t *testing.T) {
	md, err := report.Markdown(computeGolden(t))
	require.NoError(t, err)

	order := []string{"observation", "operation", "verification", "integration", "execution"}
	last := -1
	for _, name := range order {
		idx := strings.Index(md, "| "+name+" |")
		assert.Greater(t, idx, last, "principle %q out of order", name)
		last = idx
	}
}

// TestMarkdown_Deterministic renders the same record twice and expects
// identical bytes.
func TestMarkdown_Deterministic(t *testing.T) {
	res := computeGolden(t)

	a, err := report.Markdown(res)
	require.NoError(t, err)
	b, err := report.Markdown(res)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestSparkline_LengthMatchesTrajectory renders one glyph per orbit point.
func TestSparkline_LengthMatchesTrajectory(t *testing.T) {
	res := computeGolden(t)

	line := report.Sparkline(res.Fractal.Trajectory)
	assert.Equal(t, len(res.Fractal.Trajectory), utf8.RuneCountInString(line))
}

// TestSparkline_Empty renders nothing for nil or empty trajectories.
func TestSparkline_Empty(t *testing.T) {
	assert.Empty(t, report.Sparkline(nil))
	assert.Empty(t, report.Sparkline([]complex128{}))
}

// TestSparkline_PeakIsTallest puts the largest magnitude last and expects
// the tallest glyph there.
func TestSparkline_PeakIsTallest(t *testing.T) {
	traj := []complex128{complex(0.1, 0), complex(1, 0), complex(4, 0)}

	line := []rune(report.Sparkline(traj))
	require.Len(t, line, 3)
	assert.Equal(t, '█', line[2])
}

// TestSparkline_NonFinite renders overflowed orbit points as the tallest
// glyph instead of panicking or emitting garbage.
func TestSparkline_NonFinite(t *testing.T) {
	traj := []complex128{complex(1, 0), complex(math.Inf(1), 0)}

	line := []rune(report.Sparkline(traj))
	require.Len(t, line, 2)
	assert.Equal(t, '█', line[1])
}
