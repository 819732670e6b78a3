package freqtable

import "math"

// Interval is the sub-range [Min, Max] of the unit interval assigned to Symbol.
type Interval struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Symbol Symbol  `json:"symbol"`
}

// Selector maps a draw in [0, 1] to a symbol. It reports false, together with
// None, when there is nothing to select from.
type Selector func(r float64) (Symbol, bool)

// Partition splits [0, 1] into contiguous intervals, one per symbol in table
// order, each proportional to the symbol's weight. The first interval starts
// at 0 and the last one ends at exactly 1. Empty and zero-sum tables have no
// partition.
func Partition(t *Table) []Interval {
	sum := Sum(t)
	if sum <= 0 {
		return nil
	}

	out := make([]Interval, 0, t.Len())
	var running float64
	for s, w := range t.All() {
		upper := running + w/sum
		out = append(out, Interval{Min: running, Max: upper, Symbol: s})
		running = upper
	}
	out[len(out)-1].Max = 1

	return out
}

// Select returns a Selector over the partition of t. Both interval bounds are
// inclusive and intervals are scanned in order, so a draw sitting exactly on
// an edge belongs to the earlier interval.
//
// Draws outside [0, 1] are clamped to the nearest bound and NaN is treated as
// 0; the draw source is expected to stay inside the unit interval.
func Select(t *Table) Selector {
	parts := Partition(t)
	return func(r float64) (Symbol, bool) {
		r = clamp(r)
		for _, p := range parts {
			if r >= p.Min && r <= p.Max {
				return p.Symbol, true
			}
		}
		return None, false
	}
}

func clamp(r float64) float64 {
	switch {
	case math.IsNaN(r), r < 0:
		return 0
	case r > 1:
		return 1
	default:
		return r
	}
}
