// Package freqtable builds and samples symbol frequency tables learned from a
// cleaned corpus string.
//
// A corpus is a string of lowercase ASCII words, each wrapped in spaces
// (" acme  globex  initech "). A Table maps symbols (letters and the Space
// boundary marker) to nonnegative weights and keeps insertion order, which
// decides how Partition lays symbols out on the unit interval.
//
// # Builders
//
// All builders share one scanner that counts the symbol found right after a
// matched pattern:
//
//   - GlobalLetters: every letter of the corpus.
//   - FirstLetters: letters that start a word.
//   - LetterAfter / SignAfter: the letter (or letter-or-space) following a
//     context string.
//   - AtPosition: the symbol at a given position inside a word.
//
// # Combining and sampling
//
// Normalize rescales a table to a target sum, Merge blends weighted tables
// into one, and Select turns a table into a function from a uniform draw to
// a symbol:
//
//	combined := freqtable.Merge([]freqtable.MergeEntry{
//		{Table: freqtable.GlobalLetters(corpus), Weight: 0.8},
//		{Table: freqtable.LetterAfter(corpus, "ac"), Weight: 1},
//	})
//	sym, ok := freqtable.Select(combined)(rand.Float64())
//
// Nothing in the package returns an error: an empty or zero-sum table is a
// valid "no information" value, and Select reports it with ok == false.
package freqtable
