package server

import (
	"cmp"
	"slices"

	"github.com/dmitrymomot/namesmith/pkg/freqtable"
	"github.com/dmitrymomot/namesmith/pkg/wordgen"
)

// spaceLabel is how the word boundary is shown to people.
const spaceLabel = "WHITE SPACE"

type rowView struct {
	Symbol  string  `json:"symbol"`
	Weight  float64 `json:"weight"`
	Percent float64 `json:"percent"`
}

type positionView struct {
	Index  int           `json:"index"`
	Symbol string        `json:"symbol"`
	Phase  wordgen.Phase `json:"phase"`
	Table  []rowView     `json:"table"`
}

type resultView struct {
	Word      string         `json:"word"`
	Seed      string         `json:"seed,omitempty"`
	Positions []positionView `json:"positions"`
}

func label(s freqtable.Symbol) string {
	if s == freqtable.Space {
		return spaceLabel
	}
	return s.String()
}

// rows lists the table sorted by descending weight. Equal weights keep table
// order. Percent is the share of the table total.
func rows(t *freqtable.Table) []rowView {
	sum := freqtable.Sum(t)
	out := make([]rowView, 0, t.Len())
	for s, w := range t.All() {
		r := rowView{Symbol: label(s), Weight: w}
		if sum > 0 {
			r.Percent = w / sum * 100
		}
		out = append(out, r)
	}
	slices.SortStableFunc(out, func(a, b rowView) int {
		return cmp.Compare(b.Weight, a.Weight)
	})
	return out
}

func present(res wordgen.Result) resultView {
	v := resultView{
		Word:      res.Word,
		Seed:      res.Seed,
		Positions: make([]positionView, len(res.Positions)),
	}
	for i, p := range res.Positions {
		v.Positions[i] = positionView{
			Index:  p.Index,
			Symbol: label(p.Symbol),
			Phase:  p.Phase,
			Table:  rows(p.Table),
		}
	}
	return v
}
