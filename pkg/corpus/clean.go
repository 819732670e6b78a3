package corpus

import (
	"strings"
	"unicode"

	"github.com/segmentio/asm/ascii"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultMinWordLength is the shortest word kept in a corpus.
const DefaultMinWordLength = 4

// Option configures cleaning.
type Option func(*options)

type options struct {
	minWordLength int
}

// WithMinWordLength drops words shorter than n letters. Values below 1 keep
// every word.
func WithMinWordLength(n int) Option {
	return func(o *options) { o.minWordLength = n }
}

func newOptions(opts []Option) *options {
	o := &options{minWordLength: DefaultMinWordLength}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// foldMap covers letters that carry no combining mark after NFD and so
// survive mark removal unchanged.
var foldMap = map[rune]rune{
	'ł': 'l', 'Ł': 'L',
	'ø': 'o', 'Ø': 'O',
	'đ': 'd', 'Đ': 'D',
	'ħ': 'h', 'Ħ': 'H',
	'ı': 'i',
	'ß': 's',
	'æ': 'a', 'Æ': 'A',
	'œ': 'o', 'Œ': 'O',
	'þ': 't', 'Þ': 'T',
}

// FoldAccents replaces accented Latin letters with their ASCII base letter
// ("Łódź" → "Lodz"). Pure ASCII input is returned as is.
func FoldAccents(s string) string {
	if ascii.ValidString(s) {
		return s
	}

	// transform.Chain keeps state, so it is built per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	return strings.Map(func(r rune) rune {
		if f, ok := foldMap[r]; ok {
			return f
		}
		return r
	}, folded)
}

// Words turns raw entries into the list of corpus words: lowercased, accents
// folded, every character outside a-z treated as a separator, and words
// shorter than the minimum length dropped.
func Words(raw []string, opts ...Option) []string {
	o := newOptions(opts)

	s := FoldAccents(strings.ToLower(strings.Join(raw, " ")))
	s = strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r
		}
		return ' '
	}, s)

	fields := strings.Fields(s)
	words := fields[:0]
	for _, w := range fields {
		if len(w) >= o.minWordLength {
			words = append(words, w)
		}
	}
	return words
}

// Clean builds the corpus string consumed by freqtable: every word wrapped in
// single spaces and concatenated, " acme  globex ". It returns "" when no word
// survives.
func Clean(raw []string, opts ...Option) string {
	return join(Words(raw, opts...))
}

func join(words []string) string {
	var b strings.Builder
	for _, w := range words {
		b.Grow(len(w) + 2)
		b.WriteByte(' ')
		b.WriteString(w)
		b.WriteByte(' ')
	}
	return b.String()
}

// CleanSeed prepares a user-supplied word prefix: lowercased, accents folded
// and everything but a-z removed.
func CleanSeed(s string) string {
	s = FoldAccents(strings.ToLower(s))
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r
		}
		return -1
	}, s)
}
