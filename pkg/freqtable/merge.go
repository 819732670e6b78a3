package freqtable

// MergeEntry pairs a table with the total weight it contributes to a merge.
type MergeEntry struct {
	Table  *Table
	Weight float64
}

// Sum returns the total weight of the table.
func Sum(t *Table) float64 {
	var sum float64
	for _, w := range t.All() {
		sum += w
	}
	return sum
}

// Normalize rescales the table so that its weights add up to target, keeping
// keys and order. A table already summing to exactly target comes back with
// equal values. A table summing to zero (empty or all-zero) normalizes to an
// empty table instead of dividing by zero.
func Normalize(t *Table, target float64) *Table {
	sum := Sum(t)
	if sum == 0 {
		return &Table{}
	}
	if sum == target {
		return t.Clone()
	}

	out := &Table{}
	for s, w := range t.All() {
		out.Add(s, w*target/sum)
	}
	return out
}

// Merge normalizes every entry to its weight and sums the results per symbol.
// Symbols keep the order in which they are first seen across entries. Entries
// backed by an empty table, or with a nonpositive weight, contribute nothing,
// so the result sums to the weights of the contributing entries.
func Merge(entries []MergeEntry) *Table {
	out := &Table{}
	for _, e := range entries {
		if e.Weight <= 0 || e.Table.Empty() {
			continue
		}
		for s, w := range Normalize(e.Table, e.Weight).All() {
			out.Add(s, w)
		}
	}
	return out
}
