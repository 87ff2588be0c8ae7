// Package energy accounts for per-step movement cost.
package energy

import (
	"fmt"
	"strings"
)

// DefaultRate is the energy cost per unit of displacement.
const DefaultRate = 10.0

// Entry is one recorded step cost.
type Entry struct {
	Step int
	Cost float64
}

// Log is an append-only sequence of per-step energy costs with an O(1)
// running total. Text rendering is deferred to Render, which joins the
// formatted entries once; nothing on the record path builds strings.
type Log struct {
	rate    float64
	entries []Entry
	total   float64
}

// NewLog creates a log charging rate units of energy per unit of
// displacement. A non-positive rate falls back to DefaultRate.
func NewLog(rate float64) *Log {
	if rate <= 0 {
		rate = DefaultRate
	}
	return &Log{rate: rate}
}

// Record appends one entry for the given displacement magnitude and
// updates the running total. O(1).
func (l *Log) Record(step int, magnitude float64) float64 {
	cost := magnitude * l.rate
	l.entries = append(l.entries, Entry{Step: step, Cost: cost})
	l.total += cost
	return cost
}

// Total is the cumulative energy over all recorded steps.
func (l *Log) Total() float64 { return l.total }

func (l *Log) Len() int { return len(l.entries) }

func (l *Log) Rate() float64 { return l.rate }

// Entries returns a copy of the recorded entries.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Render produces the text log, one line per entry, built in a single
// pass.
func (l *Log) Render() string {
	var b strings.Builder
	for _, e := range l.entries {
		fmt.Fprintf(&b, "Step %d: %g units\n", e.Step, e.Cost)
	}
	return b.String()
}
