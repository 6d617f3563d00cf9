// Package phase drives a cyclic sequence of named, timed phases with a fixed
// tick interval. A Scheduler owns exactly one tick source while it runs and
// reports every phase change to a caller-supplied callback.
package phase

import "fmt"

// Common phase labels.
const (
	Inhale = "Inhale"
	Hold   = "Hold"
	Exhale = "Exhale"
)

// Phase is a named segment of a breathing cycle. Side is only set for phases
// that travel along a square path.
type Phase struct {
	Label   string `json:"label"   yaml:"label"`
	Side    string `json:"side"    yaml:"side"`
	Seconds int    `json:"seconds" yaml:"seconds"`
}

func (p Phase) String() string {
	if p.Side != "" {
		return fmt.Sprintf("%s/%s/%d", p.Side, p.Label, p.Seconds)
	}

	return fmt.Sprintf("%s/%d", p.Label, p.Seconds)
}

// Sequence is an ordered, cyclic list of phases. After the last phase it wraps
// to the first.
type Sequence []Phase

// Total returns the length of one full cycle in ticks.
func (s Sequence) Total() int {
	var total int
	for _, p := range s {
		total += p.Seconds
	}

	return total
}

// Valid reports whether the sequence can be scheduled.
func (s Sequence) Valid() bool {
	if len(s) == 0 {
		return false
	}

	for _, p := range s {
		if p.Seconds <= 0 {
			return false
		}
	}

	return true
}

// Transition is delivered whenever the scheduler enters a phase.
type Transition struct {
	Phase Phase
	// Index is the position of Phase in the active sequence
	Index int
	// Cycle counts the full cycles completed since the last Start
	Cycle int
}

// Label returns the label of the phase being entered.
func (t Transition) Label() string {
	return t.Phase.Label
}

// Seconds returns the duration of the phase being entered.
func (t Transition) Seconds() int {
	return t.Phase.Seconds
}
