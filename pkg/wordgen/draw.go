package wordgen

import (
	"math/rand/v2"
	"sync"
)

// DrawSource yields uniform draws in [0, 1]. *rand.Rand from math/rand/v2
// satisfies it.
type DrawSource interface {
	Float64() float64
}

// DrawFunc adapts a function to DrawSource.
type DrawFunc func() float64

func (f DrawFunc) Float64() float64 { return f() }

type globalDraw struct{}

func (globalDraw) Float64() float64 { return rand.Float64() }

// Sequence returns a DrawSource that yields draws in order and starts over
// after the last one. With no draws it always yields 0. It is safe for
// concurrent use.
func Sequence(draws ...float64) DrawSource {
	return &sequence{draws: append([]float64(nil), draws...)}
}

type sequence struct {
	mu    sync.Mutex
	draws []float64
	next  int
}

func (s *sequence) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.draws) == 0 {
		return 0
	}
	r := s.draws[s.next]
	s.next = (s.next + 1) % len(s.draws)
	return r
}
