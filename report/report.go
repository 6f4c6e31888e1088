package report

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
	"text/template"

	"github.com/katalvlaran/bazinga/pattern"
)

// markdownTemplate lays out the analysis section. Field access goes through
// the Result value only; the template has no function hooks that could
// reach outside the record.
const markdownTemplate = `# Pattern Analysis

## Signature

- Seed: {{.Seed}}
- Frequency: {{printf "%.6f" .Frequency}}
- Resonance: {{printf "%.4f" .Resonance}}

## Text Features

- Vowel ratio: {{printf "%.4f" .Features.VowelRatio}}
- Consonant ratio: {{printf "%.4f" .Features.ConsonantRatio}}
- Average word length: {{printf "%.2f" .Features.AvgWordLength}}
- Complexity factor: {{printf "%.4f" .Features.ComplexityFactor}}
- Sentiment factor: {{printf "%.4f" .Features.SentimentFactor}}

## Fractal Orbit

- Iterations: {{.Fractal.Iterations}}
- Escaped: {{.Fractal.Escaped}}
- Final point: {{printf "%.6f" .Fractal.Real}} {{if ge .Fractal.Imag 0.0}}+{{end}}{{printf "%.6f" .Fractal.Imag}}i
- Day index: {{printf "%.4f" .Day}}

## Principles

| Principle | Weight |
|-----------|--------|
{{range .Cycle.Principles}}| {{.Name}} | {{printf "%.6f" .Weight}} |
{{end}}`

// tmpl is parsed once; Markdown only executes it.
var tmpl = template.Must(template.New("analysis").Parse(markdownTemplate))

// Markdown renders res into the Markdown analysis section.
//
// The output is deterministic for a fixed Result: identical records render
// to identical bytes.
func Markdown(res pattern.Result) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, res); err != nil {
		return "", fmt.Errorf("report: render markdown: %w", err)
	}

	return b.String(), nil
}

// sparkLevels are the eight block glyphs used to plot orbit magnitudes.
var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// Sparkline plots the orbit magnitudes as one line of block characters,
// scaled so the largest finite magnitude fills the tallest glyph. Empty or
// nil trajectories render as the empty string; non-finite magnitudes
// render as the tallest glyph.
//
// Complexity: O(len(trajectory)).
func Sparkline(trajectory []complex128) string {
	if len(trajectory) == 0 {
		return ""
	}

	mags := make([]float64, len(trajectory))
	var max float64
	for i, z := range trajectory {
		m := cmplx.Abs(z)
		mags[i] = m
		if isFinite(m) && m > max {
			max = m
		}
	}

	var b strings.Builder
	top := len(sparkLevels) - 1
	for _, m := range mags {
		level := top // non-finite magnitudes peg to the tallest glyph
		if isFinite(m) {
			level = 0
			if max > 0 {
				level = int(m / max * float64(top))
			}
			if level > top {
				level = top
			}
		}
		b.WriteRune(sparkLevels[level])
	}

	return b.String()
}

// isFinite reports whether f is neither NaN nor infinite.
func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
