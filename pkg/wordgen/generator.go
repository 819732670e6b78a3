package wordgen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/dmitrymomot/namesmith/pkg/freqtable"
	"github.com/dmitrymomot/namesmith/pkg/logger"
)

// shortContext is the word length below which context tables never propose
// ending the word.
const shortContext = 4

// Generator produces words from one corpus. It is safe for concurrent use as
// long as its DrawSource is.
type Generator struct {
	cfg    *config
	tables *tables
}

// New returns a Generator over a cleaned corpus string such as
// " acme  globex ".
func New(corpus string, opts ...Option) (*Generator, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.maxLength < 1 {
		return nil, fmt.Errorf("%w: max length must be positive, got %d", ErrInvalidConfig, cfg.maxLength)
	}
	if cfg.cacheSize < 0 {
		return nil, fmt.Errorf("%w: cache size must not be negative, got %d", ErrInvalidConfig, cfg.cacheSize)
	}

	t, err := newTables(corpus, cfg.cacheSize)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	return &Generator{cfg: cfg, tables: t}, nil
}

// MaxLength returns the configured maximum number of positions.
func (g *Generator) MaxLength() int {
	return g.cfg.maxLength
}

// Limited returns a Generator that shares g's tables, draw source and logger
// but stops after n positions.
func (g *Generator) Limited(n int) (*Generator, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: max length must be positive, got %d", ErrInvalidConfig, n)
	}
	cfg := *g.cfg
	cfg.maxLength = n
	return &Generator{cfg: &cfg, tables: g.tables}, nil
}

// Start returns the initial state for seed. Surrounding spaces of the seed
// are dropped.
func (g *Generator) Start(seed string) State {
	s := State{Word: string(freqtable.Space) + strings.TrimSpace(seed)}
	s.Phase = g.phase(s)
	return s
}

func (g *Generator) phase(s State) Phase {
	switch {
	case s.Index >= g.cfg.maxLength:
		return PhaseDone
	case len(s.Word) > s.Index+1:
		return PhaseSeeding
	default:
		return PhaseSampling
	}
}

// Step advances s by one position. A seeded position is copied with an empty
// table. Otherwise one draw is taken from the merged table; drawing a space,
// or finding nothing to draw, finishes the word. A finished state is
// returned as is.
func (g *Generator) Step(s State) State {
	if s.Done() {
		return s
	}

	next := State{
		Word:      s.Word,
		Positions: slices.Clip(s.Positions),
		Index:     s.Index + 1,
	}

	if len(s.Word) > s.Index+1 {
		next.Positions = append(next.Positions, Position{
			Index:  s.Index,
			Symbol: freqtable.Symbol(s.Word[s.Index+1]),
			Phase:  PhaseSeeding,
			Table:  &freqtable.Table{},
		})
		next.Phase = g.phase(next)
		return next
	}

	merged := g.Merged(s.Word)
	sym, ok := freqtable.Select(merged)(g.cfg.draw.Float64())
	next.Positions = append(next.Positions, Position{
		Index:  s.Index,
		Symbol: sym,
		Phase:  PhaseSampling,
		Table:  merged,
	})
	if !ok {
		next.Phase = PhaseDone
		return next
	}

	next.Word += sym.String()
	if sym == freqtable.Space {
		next.Phase = PhaseDone
		return next
	}
	next.Phase = g.phase(next)
	return next
}

// Merged returns the merged table used to pick the symbol following word.
// word starts with the Space word-start marker.
func (g *Generator) Merged(word string) *freqtable.Table {
	w := g.cfg.weights
	entries := make([]freqtable.MergeEntry, 0, len(w.Context)+2)
	entries = append(entries, freqtable.MergeEntry{
		Table:  g.tables.get(tableKey{kind: globalLetters}),
		Weight: w.Base,
	})

	kind := signAfter
	if len(word) < shortContext {
		kind = letterAfter
	}
	// The bare leading space is never a context: an unseeded first symbol
	// comes from the baseline alone.
	for k := 1; k <= len(w.Context) && len(word) > k; k++ {
		entries = append(entries, freqtable.MergeEntry{
			Table:  g.tables.get(tableKey{kind: kind, context: word[len(word)-k:]}),
			Weight: w.Context[k-1],
		})
	}

	if len(word) > shortContext {
		entries = append(entries, freqtable.MergeEntry{
			Table:  g.tables.get(tableKey{kind: atPosition, n: len(word) + 1}),
			Weight: w.Positional,
		})
	}

	return freqtable.Merge(entries)
}

// Generate runs a full generation for seed. It always returns a word, which
// may be empty, truncated at the maximum length, or just the seed.
func (g *Generator) Generate(ctx context.Context, seed string) Result {
	start := time.Now()
	log := g.cfg.log

	s := g.Start(seed)
	for !s.Done() {
		s = g.Step(s)
		if p := s.Positions[len(s.Positions)-1]; p.Phase == PhaseSampling {
			log.DebugContext(ctx, "symbol sampled",
				logger.Position(p.Index),
				logger.Symbol(p.Symbol.String()),
				slog.Int("candidates", p.Table.Len()),
			)
		}
	}

	res := finish(strings.TrimSpace(seed), s)
	log.InfoContext(ctx, "word generated",
		logger.Word(res.Word),
		logger.Seed(res.Seed),
		slog.Int("positions", len(res.Positions)),
		slog.Int("cached_tables", g.tables.len()),
		logger.Duration(time.Since(start)),
	)
	return res
}

// Generate is a one-off generation over corpus.
func Generate(ctx context.Context, corpus, seed string, opts ...Option) (Result, error) {
	g, err := New(corpus, opts...)
	if err != nil {
		return Result{}, err
	}
	return g.Generate(ctx, seed), nil
}
