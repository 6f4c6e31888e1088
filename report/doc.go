// Package report renders a computed pattern record into human-readable
// artifacts: a Markdown analysis section and an ASCII visualization of the
// fractal orbit.
//
// Renderers are external consumers of the pipeline: they only ever read a
// pattern.Result and never feed anything back into the numeric core. Both
// renderers are deterministic — a fixed Result always renders to the same
// bytes — so report output can be golden-tested alongside the pipeline.
//
// ⚙️ Usage:
//
//	res, _ := pattern.Compute(text, &opts)
//	md, err := report.Markdown(res)
//	fmt.Println(md)
//	fmt.Println(report.Sparkline(res.Fractal.Trajectory))
//
// Complexity: O(len(Result)) per render; no I/O.
package report
