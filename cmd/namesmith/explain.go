package main

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/dmitrymomot/namesmith/pkg/freqtable"
	"github.com/dmitrymomot/namesmith/pkg/wordgen"
)

// topRows is how many candidates are listed per position.
const topRows = 5

func symbolLabel(s freqtable.Symbol) string {
	switch s {
	case freqtable.Space:
		return "WHITE SPACE"
	case freqtable.None:
		return "-"
	default:
		return s.String()
	}
}

func printExplained(w io.Writer, res wordgen.Result) {
	fmt.Fprintln(w, res.Word)
	for _, p := range res.Positions {
		fmt.Fprintf(w, "  %2d %-11s %-8s %s\n", p.Index+1, symbolLabel(p.Symbol), p.Phase, candidates(p.Table))
	}
}

// candidates lists the heaviest symbols of t with their share of the total.
func candidates(t *freqtable.Table) string {
	sum := freqtable.Sum(t)
	if sum <= 0 {
		return ""
	}
	entries := t.Entries()
	slices.SortStableFunc(entries, func(a, b freqtable.Entry) int {
		return cmp.Compare(b.Weight, a.Weight)
	})

	parts := make([]string, 0, topRows)
	for _, e := range entries[:min(topRows, len(entries))] {
		parts = append(parts, fmt.Sprintf("%s %.1f%%", symbolLabel(e.Symbol), e.Weight/sum*100))
	}
	return strings.Join(parts, "  ")
}
