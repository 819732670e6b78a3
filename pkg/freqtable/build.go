package freqtable

import "strings"

// pattern describes one family of corpus lookups: a literal lead, followed by
// a fixed number of letters, followed by the counted symbol.
type pattern struct {
	lead    string
	letters int
	follow  func(Symbol) bool
}

func letter(s Symbol) bool { return s.IsLetter() }

func letterOrSpace(s Symbol) bool { return s.IsLetter() || s == Space }

// scan counts the symbol found right after every match of p in corpus.
// A match consumes its counted symbol and scanning resumes after it, so
// overlapping occurrences ("aa" in "aaa") count once.
func scan(corpus string, p pattern) *Table {
	t := &Table{}
	offset := len(p.lead) + p.letters

	for i := 0; i+offset < len(corpus); i++ {
		k := strings.Index(corpus[i:], p.lead)
		if k < 0 {
			break
		}
		i += k
		if i+offset >= len(corpus) {
			break
		}

		matched := true
		for j := i + len(p.lead); j < i+offset; j++ {
			if !Symbol(corpus[j]).IsLetter() {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}

		if s := Symbol(corpus[i+offset]); p.follow(s) {
			t.Add(s, 1)
			i += offset
		}
	}

	return t
}

// GlobalLetters counts every letter of the corpus. Spaces are not counted.
func GlobalLetters(corpus string) *Table {
	return scan(corpus, pattern{follow: letter})
}

// FirstLetters counts the letters that directly follow a space, i.e. the
// letters words start with.
func FirstLetters(corpus string) *Table {
	return scan(corpus, pattern{lead: " ", follow: letter})
}

// LetterAfter counts the letters that directly follow an exact, case-sensitive
// occurrence of context. A following space is not counted, so the result never
// suggests ending the word. An empty context yields an empty table.
func LetterAfter(corpus, context string) *Table {
	if context == "" {
		return &Table{}
	}
	return scan(corpus, pattern{lead: context, follow: letter})
}

// SignAfter is LetterAfter that also counts a following space.
func SignAfter(corpus, context string) *Table {
	if context == "" {
		return &Table{}
	}
	return scan(corpus, pattern{lead: context, follow: letterOrSpace})
}

// AtPosition counts the symbol (letter or space) found at 1-based position n
// of every word that has at least n-1 letters. Positions below 2 carry no
// meaning and yield an empty table. When no word reaches position n the
// result is {space: 1}: absent positional data means "end the word here".
func AtPosition(corpus string, n int) *Table {
	if n < 2 {
		return &Table{}
	}
	t := scan(corpus, pattern{lead: " ", letters: n - 1, follow: letterOrSpace})
	if t.Empty() {
		return New(Entry{Symbol: Space, Weight: 1})
	}
	return t
}
