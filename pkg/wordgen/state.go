package wordgen

import (
	"strings"

	"github.com/dmitrymomot/namesmith/pkg/freqtable"
)

// Phase is the stage of a generation.
type Phase string

const (
	// PhaseSeeding copies the next seed symbol without sampling.
	PhaseSeeding Phase = "seeding"
	// PhaseSampling draws the next symbol from the merged tables.
	PhaseSampling Phase = "sampling"
	// PhaseDone is terminal.
	PhaseDone Phase = "done"
)

// Position describes how one symbol of the word came to be.
type Position struct {
	Index int
	// Symbol is the copied or drawn symbol. It is None when the merged table
	// was empty and generation stopped at this position.
	Symbol freqtable.Symbol
	Phase  Phase
	// Table is the merged table the symbol was drawn from. Seeded positions
	// carry an empty table.
	Table *freqtable.Table
}

// State is a snapshot of a generation in progress. Steps never modify a
// State; they return a new one.
type State struct {
	// Word always starts with a Space marking the word start and, once
	// complete, may end with the Space that terminated it.
	Word      string
	Positions []Position
	// Index is the next position to fill.
	Index int
	Phase Phase
}

// Done reports whether the generation has finished.
func (s State) Done() bool {
	return s.Phase == PhaseDone
}

// Result is a finished generation.
type Result struct {
	Seed string
	// Word is the generated word without boundary spaces.
	Word      string
	Positions []Position
}

// Tables returns the merged table of every position.
func (r Result) Tables() []*freqtable.Table {
	out := make([]*freqtable.Table, len(r.Positions))
	for i, p := range r.Positions {
		out[i] = p.Table
	}
	return out
}

func finish(seed string, s State) Result {
	return Result{
		Seed:      seed,
		Word:      strings.Trim(s.Word, string(freqtable.Space)),
		Positions: s.Positions,
	}
}
