package logger

import (
	"log/slog"
	"time"
)

// Error records err under the key "error". Nil errors produce an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// An empty id produces an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Word records a generated or saved word.
func Word(w string) slog.Attr {
	return slog.String("word", w)
}

// Seed records the caller-supplied word prefix. An empty seed produces an
// empty Attr.
func Seed(s string) slog.Attr {
	if s == "" {
		return slog.Attr{}
	}
	return slog.String("seed", s)
}

// Position records a 0-based symbol position within a word.
func Position(i int) slog.Attr {
	return slog.Int("position", i)
}

// Symbol records a sampled symbol. The word boundary is logged as "space".
func Symbol(s string) slog.Attr {
	if s == " " {
		s = "space"
	}
	return slog.String("symbol", s)
}

// CorpusSize records the number of words in a corpus.
func CorpusSize(n int) slog.Attr {
	return slog.Int("corpus_size", n)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
