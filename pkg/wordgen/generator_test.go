package wordgen_test

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namesmith/pkg/corpus"
	"github.com/dmitrymomot/namesmith/pkg/freqtable"
	"github.com/dmitrymomot/namesmith/pkg/logger"
	"github.com/dmitrymomot/namesmith/pkg/wordgen"
)

const tiny = " abcd  abcd "

func newGen(t *testing.T, text string, opts ...wordgen.Option) *wordgen.Generator {
	t.Helper()
	g, err := wordgen.New(text, opts...)
	require.NoError(t, err)
	return g
}

func embedded(t testing.TB) string {
	t.Helper()
	c, err := corpus.Load(context.Background(), corpus.Embedded())
	require.NoError(t, err)
	return c.Text
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("lowest draws run to max length", func(t *testing.T) {
		t.Parallel()
		res := newGen(t, tiny, wordgen.WithDrawSource(wordgen.Sequence(0))).Generate(ctx, "")
		assert.Equal(t, strings.Repeat("a", 15), res.Word)
		require.Len(t, res.Positions, 15)
		for i, p := range res.Positions {
			assert.Equal(t, i, p.Index)
			assert.Equal(t, wordgen.PhaseSampling, p.Phase)
			assert.Equal(t, freqtable.Symbol('a'), p.Symbol)
		}
	})

	t.Run("highest draws end on space", func(t *testing.T) {
		t.Parallel()
		res := newGen(t, tiny, wordgen.WithDrawSource(wordgen.Sequence(1))).Generate(ctx, "")
		assert.Equal(t, "ddd", res.Word)
		require.Len(t, res.Positions, 4)
		assert.Equal(t, freqtable.Space, res.Positions[3].Symbol)

		last := res.Positions[3].Table
		assert.Equal(t, []freqtable.Symbol{'a', 'b', 'c', 'd', freqtable.Space}, last.Symbols())
		assert.InDelta(t, 1.0, last.Weight(freqtable.Space), 1e-9)
	})

	t.Run("seed is copied without sampling", func(t *testing.T) {
		t.Parallel()
		res := newGen(t, tiny, wordgen.WithDrawSource(wordgen.Sequence(0.5))).Generate(ctx, " ab ")
		assert.Equal(t, "abcd", res.Word)
		assert.Equal(t, "ab", res.Seed)
		require.Len(t, res.Positions, 5)

		for i, want := range []freqtable.Symbol{'a', 'b'} {
			assert.Equal(t, wordgen.PhaseSeeding, res.Positions[i].Phase)
			assert.Equal(t, want, res.Positions[i].Symbol)
			assert.True(t, res.Positions[i].Table.Empty())
		}
		for _, p := range res.Positions[2:] {
			assert.Equal(t, wordgen.PhaseSampling, p.Phase)
			assert.False(t, p.Table.Empty())
		}

		third := res.Positions[2].Table
		assert.InDelta(t, 2.2, third.Weight('c'), 1e-9)
		assert.InDelta(t, 0.2, third.Weight('a'), 1e-9)
	})

	t.Run("empty table stops generation", func(t *testing.T) {
		t.Parallel()
		res := newGen(t, "  ", wordgen.WithDrawSource(wordgen.Sequence(0.3))).Generate(ctx, "")
		assert.Equal(t, "", res.Word)
		require.Len(t, res.Positions, 1)
		assert.Equal(t, freqtable.None, res.Positions[0].Symbol)
		assert.True(t, res.Positions[0].Table.Empty())
	})

	t.Run("max length option", func(t *testing.T) {
		t.Parallel()
		res := newGen(t, tiny, wordgen.WithMaxLength(2), wordgen.WithDrawSource(wordgen.Sequence(1))).Generate(ctx, "")
		assert.Equal(t, "dd", res.Word)
		assert.Len(t, res.Tables(), 2)
	})

	t.Run("seed longer than max length is kept", func(t *testing.T) {
		t.Parallel()
		res := newGen(t, tiny, wordgen.WithMaxLength(3)).Generate(ctx, "abcdef")
		assert.Equal(t, "abcdef", res.Word)
		assert.Len(t, res.Positions, 3)
	})

	t.Run("weights option", func(t *testing.T) {
		t.Parallel()
		res := newGen(t, tiny,
			wordgen.WithWeights(wordgen.Weights{Base: 1}),
			wordgen.WithDrawSource(wordgen.Sequence(1)),
		).Generate(ctx, "")
		assert.Equal(t, strings.Repeat("d", 15), res.Word)
	})

	t.Run("package level helper", func(t *testing.T) {
		t.Parallel()
		res, err := wordgen.Generate(ctx, tiny, "", wordgen.WithDrawSource(wordgen.Sequence(1)))
		require.NoError(t, err)
		assert.Equal(t, "ddd", res.Word)

		_, err = wordgen.Generate(ctx, tiny, "", wordgen.WithMaxLength(0))
		assert.ErrorIs(t, err, wordgen.ErrInvalidConfig)
	})
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	_, err := wordgen.New(tiny, wordgen.WithMaxLength(0))
	assert.ErrorIs(t, err, wordgen.ErrInvalidConfig)

	_, err = wordgen.New(tiny, wordgen.WithCacheSize(-1))
	assert.ErrorIs(t, err, wordgen.ErrInvalidConfig)

	g, err := wordgen.New(tiny, wordgen.WithCacheSize(0))
	require.NoError(t, err)
	assert.Equal(t, wordgen.DefaultMaxLength, g.MaxLength())
}

func TestLimited(t *testing.T) {
	t.Parallel()

	g := newGen(t, tiny, wordgen.WithDrawSource(wordgen.Sequence(0)))

	short, err := g.Limited(3)
	require.NoError(t, err)
	assert.Equal(t, 3, short.MaxLength())
	assert.Equal(t, "aaa", short.Generate(context.Background(), "").Word)
	assert.Equal(t, wordgen.DefaultMaxLength, g.MaxLength())

	_, err = g.Limited(0)
	assert.ErrorIs(t, err, wordgen.ErrInvalidConfig)
}

func TestStep(t *testing.T) {
	t.Parallel()

	g := newGen(t, tiny, wordgen.WithDrawSource(wordgen.Sequence(0, 1)))

	start := g.Start("")
	assert.Equal(t, " ", start.Word)
	assert.Equal(t, wordgen.PhaseSampling, start.Phase)
	assert.Equal(t, 0, start.Index)

	first := g.Step(start)
	second := g.Step(start)

	assert.Equal(t, " ", start.Word)
	assert.Empty(t, start.Positions)

	assert.Equal(t, " a", first.Word)
	assert.Equal(t, " d", second.Word)
	require.Len(t, first.Positions, 1)
	require.Len(t, second.Positions, 1)
	assert.Equal(t, freqtable.Symbol('a'), first.Positions[0].Symbol)
	assert.Equal(t, freqtable.Symbol('d'), second.Positions[0].Symbol)
	assert.Equal(t, 1, first.Index)

	t.Run("branches do not share positions", func(t *testing.T) {
		a := g.Step(first)
		b := g.Step(first)
		require.Len(t, a.Positions, 2)
		require.Len(t, b.Positions, 2)
		assert.Len(t, first.Positions, 1)
		assert.Equal(t, freqtable.Symbol('a'), a.Positions[1].Symbol)
		assert.Equal(t, freqtable.Symbol('d'), b.Positions[1].Symbol)
	})

	t.Run("seeding phases", func(t *testing.T) {
		s := g.Start("ab")
		assert.Equal(t, wordgen.PhaseSeeding, s.Phase)
		s = g.Step(s)
		assert.Equal(t, wordgen.PhaseSeeding, s.Phase)
		s = g.Step(s)
		assert.Equal(t, wordgen.PhaseSampling, s.Phase)
		assert.Equal(t, " ab", s.Word)
	})

	t.Run("done is terminal", func(t *testing.T) {
		short := newGen(t, tiny, wordgen.WithMaxLength(1))
		s := short.Step(short.Start("xy"))
		require.True(t, s.Done())
		assert.Equal(t, " xy", s.Word)
		assert.Equal(t, s, short.Step(s))
	})
}

func TestMerged(t *testing.T) {
	t.Parallel()

	g := newGen(t, tiny)

	t.Run("start of word uses baseline only", func(t *testing.T) {
		m := g.Merged(" ")
		assert.InDelta(t, 0.8, freqtable.Sum(m), 1e-9)
		assert.False(t, m.Has(freqtable.Space))
		for _, s := range []freqtable.Symbol{'a', 'b', 'c', 'd'} {
			assert.InDelta(t, 0.2, m.Weight(s), 1e-9, "first letters must not weigh in")
		}
	})

	t.Run("short words never propose the end", func(t *testing.T) {
		m := g.Merged(" ab")
		assert.InDelta(t, 2.2, m.Weight('c'), 1e-9)
		assert.False(t, m.Has(freqtable.Space))
	})

	t.Run("long words add context and position", func(t *testing.T) {
		m := g.Merged(" abcd")
		assert.InDelta(t, 5.0, m.Weight(freqtable.Space), 1e-9)
		assert.InDelta(t, 0.8+4+1, freqtable.Sum(m), 1e-9)
	})
}

func TestGenerateProperties(t *testing.T) {
	t.Parallel()

	text := embedded(t)
	ctx := context.Background()

	g := newGen(t, text, wordgen.WithDrawSource(rand.New(rand.NewPCG(7, 11))))
	for range 200 {
		w := g.Generate(ctx, "").Word
		assert.LessOrEqual(t, len(w), wordgen.DefaultMaxLength)
		assert.Equal(t, strings.TrimSpace(w), w)
		for _, r := range w {
			assert.True(t, r >= 'a' && r <= 'z', "unexpected %q in %q", r, w)
		}
	}

	t.Run("same draws give the same words", func(t *testing.T) {
		draws := []float64{0.13, 0.71, 0.42, 0.97, 0.05, 0.66, 0.31, 0.88, 0.52}
		a := newGen(t, text, wordgen.WithDrawSource(wordgen.Sequence(draws...)))
		b := newGen(t, text, wordgen.WithDrawSource(wordgen.Sequence(draws...)), wordgen.WithCacheSize(0))
		for range 20 {
			assert.Equal(t, a.Generate(ctx, "").Word, b.Generate(ctx, "").Word)
		}
	})
}

func TestGenerateLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithFormat(logger.FormatJSON))

	g := newGen(t, tiny, wordgen.WithLogger(log), wordgen.WithDrawSource(wordgen.Sequence(1)))
	g.Generate(context.Background(), "")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "word generated", rec["msg"])
	assert.Equal(t, "ddd", rec["word"])
	assert.EqualValues(t, 4, rec["positions"])
}

func TestSequence(t *testing.T) {
	t.Parallel()

	s := wordgen.Sequence(0.1, 0.2)
	assert.Equal(t, 0.1, s.Float64())
	assert.Equal(t, 0.2, s.Float64())
	assert.Equal(t, 0.1, s.Float64())

	assert.Equal(t, 0.0, wordgen.Sequence().Float64())

	f := wordgen.DrawFunc(func() float64 { return 0.25 })
	assert.Equal(t, 0.25, f.Float64())
}

func BenchmarkGenerate(b *testing.B) {
	text := embedded(b)
	ctx := context.Background()

	for _, size := range []int{0, wordgen.DefaultCacheSize} {
		g, err := wordgen.New(text, wordgen.WithCacheSize(size), wordgen.WithDrawSource(rand.New(rand.NewPCG(1, 2))))
		require.NoError(b, err)

		name := "uncached"
		if size > 0 {
			name = "cached"
		}
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = g.Generate(ctx, "")
			}
		})
	}
}
