// Package cycle - types and sentinel errors for the periodic mapper.
package cycle

import "errors"

// Sentinel errors for cycle operations.
var (
	// ErrBadCycleDays indicates a non-positive cycle length.
	ErrBadCycleDays = errors.New("cycle: cycleDays must be positive")
)

// Resonance holds the five principle weights produced by Map.
// Field order matches the canonical rendering order of the principles.
type Resonance struct {
	Observation  float64
	Operation    float64
	Verification float64
	Integration  float64
	Execution    float64
}

// Principle pairs a principle name with its weight, for renderers that
// iterate the principles in canonical order.
type Principle struct {
	Name   string
	Weight float64
}

// Principles returns the five weights in canonical order:
// observation → operation → verification → integration → execution.
func (r Resonance) Principles() []Principle {
	return []Principle{
		{Name: "observation", Weight: r.Observation},
		{Name: "operation", Weight: r.Operation},
		{Name: "verification", Weight: r.Verification},
		{Name: "integration", Weight: r.Integration},
		{Name: "execution", Weight: r.Execution},
	}
}
