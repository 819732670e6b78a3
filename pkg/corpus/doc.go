// Package corpus turns raw name lists into the cleaned corpus string that
// freqtable and wordgen learn from.
//
// Cleaning lowercases the input, folds accented Latin letters to ASCII
// (golang.org/x/text normalization, with a fast path for input that is
// already ASCII), treats every character outside a-z as a separator and
// drops words shorter than four letters. Each surviving word is wrapped in
// spaces, so the result starts and ends with a space and adjacent words are
// separated by two:
//
//	corpus.Clean([]string{"Nestlé S.A.", "Łukasiewicz", "IBM"})
//	// " nestle  lukasiewicz "
//
// Raw entries come from a Source (local file, embedded sample list, any
// io.Reader, or an S3 object) and are parsed by extension: plain text with
// one entry per line, YAML, or JSON. Structured files hold either a list of
// names or a mapping with a "names" list.
//
//	c, err := corpus.Load(ctx, corpus.File("names.yaml"))
//	if err != nil {
//		return err
//	}
//	gen := wordgen.New(c.Text)
package corpus
