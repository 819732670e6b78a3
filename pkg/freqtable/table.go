package freqtable

import (
	"iter"
	"strconv"
	"strings"
)

// Symbol is a single corpus character: a lowercase ASCII letter or Space.
type Symbol byte

const (
	// Space marks a word boundary.
	Space Symbol = ' '
	// None is returned by a Selector when there is nothing to select.
	None Symbol = 0
)

// IsLetter reports whether s is a lowercase ASCII letter.
func (s Symbol) IsLetter() bool {
	return s >= 'a' && s <= 'z'
}

func (s Symbol) String() string {
	if s == None {
		return ""
	}
	return string(rune(s))
}

// Entry is a single symbol/weight pair of a Table.
type Entry struct {
	Symbol Symbol  `json:"symbol"`
	Weight float64 `json:"weight"`
}

// Table maps symbols to nonnegative weights and remembers the order in which
// symbols were first added. The order decides interval assignment in
// Partition, so two tables with equal weights but different order sample
// differently for the same draw.
//
// The zero value is an empty table ready to use. Read methods accept a nil
// receiver and treat it as empty.
type Table struct {
	order   []Symbol
	weights map[Symbol]float64
}

// New builds a table from entries in the given order.
// Repeated symbols accumulate their weights.
func New(entries ...Entry) *Table {
	t := &Table{}
	for _, e := range entries {
		t.Add(e.Symbol, e.Weight)
	}
	return t
}

// Add increases the weight of s by w, appending s to the order on first use.
// Negative weights are ignored.
func (t *Table) Add(s Symbol, w float64) {
	if w < 0 {
		return
	}
	if t.weights == nil {
		t.weights = make(map[Symbol]float64)
	}
	if _, ok := t.weights[s]; !ok {
		t.order = append(t.order, s)
	}
	t.weights[s] += w
}

// Weight returns the weight of s, or 0 if s is absent.
func (t *Table) Weight(s Symbol) float64 {
	if t == nil {
		return 0
	}
	return t.weights[s]
}

// Has reports whether s is present in the table.
func (t *Table) Has(s Symbol) bool {
	if t == nil {
		return false
	}
	_, ok := t.weights[s]
	return ok
}

// Len returns the number of symbols in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}

// Empty reports whether the table carries no symbols.
func (t *Table) Empty() bool {
	return t.Len() == 0
}

// Symbols returns the symbols in insertion order.
func (t *Table) Symbols() []Symbol {
	if t == nil {
		return nil
	}
	out := make([]Symbol, len(t.order))
	copy(out, t.order)
	return out
}

// Entries returns the symbol/weight pairs in insertion order.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	out := make([]Entry, 0, len(t.order))
	for _, s := range t.order {
		out = append(out, Entry{Symbol: s, Weight: t.weights[s]})
	}
	return out
}

// All iterates the table in insertion order.
func (t *Table) All() iter.Seq2[Symbol, float64] {
	return func(yield func(Symbol, float64) bool) {
		if t == nil {
			return
		}
		for _, s := range t.order {
			if !yield(s, t.weights[s]) {
				return
			}
		}
	}
}

// Map returns the weights as a plain map, losing the order.
func (t *Table) Map() map[Symbol]float64 {
	out := make(map[Symbol]float64, t.Len())
	for s, w := range t.All() {
		out[s] = w
	}
	return out
}

// Clone returns an independent copy of the table.
func (t *Table) Clone() *Table {
	c := &Table{}
	for s, w := range t.All() {
		c.Add(s, w)
	}
	return c
}

// String renders the table as {a:1 b:2 space:1}.
func (t *Table) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for s, w := range t.All() {
		if b.Len() > 1 {
			b.WriteByte(' ')
		}
		if s == Space {
			b.WriteString("space")
		} else {
			b.WriteString(s.String())
		}
		b.WriteByte(':')
		b.WriteString(strconv.FormatFloat(w, 'g', -1, 64))
	}
	b.WriteByte('}')
	return b.String()
}
