// Package wordgen invents words symbol by symbol from the statistics of a
// cleaned corpus.
//
// At every position the generator merges a baseline letter table with
// context tables for the last 1 to 7 symbols of the word so far, and, for
// longer words, a positional table. Short contexts get full weight, longer
// ones progressively less. While the word has fewer than four symbols the
// context tables never propose a word end; afterwards they do.
//
// Generation is a small state machine: a caller-supplied seed is copied in
// the Seeding phase, then symbols are drawn in the Sampling phase until a
// space is drawn, nothing can be drawn, or the maximum length is reached.
// Every Step returns a new State value and never modifies its input:
//
//	g, err := wordgen.New(c.Text)
//	if err != nil {
//		return err
//	}
//	res := g.Generate(ctx, "ka")
//	fmt.Println(res.Word)
//
// Randomness comes from a DrawSource. The default uses math/rand/v2; tests
// pass a Sequence to get byte-identical output.
//
// Corpus tables (baseline, context and positional) are cached per Generator
// with an LRU keyed by builder and argument. The cache only saves work, the
// output does not depend on it.
package wordgen
