package wordgen_test

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namesmith/pkg/wordgen"
)

func TestBatch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("distinct words", func(t *testing.T) {
		t.Parallel()
		g := newGen(t, embedded(t), wordgen.WithDrawSource(rand.New(rand.NewPCG(3, 5))))

		words, err := g.Batch(ctx, 5, "", nil)
		require.NoError(t, err)
		require.Len(t, words, 5)

		seen := map[string]bool{}
		for _, w := range words {
			assert.NotEmpty(t, w)
			assert.False(t, seen[w], "duplicate %q", w)
			seen[w] = true
		}
	})

	t.Run("validator and seed", func(t *testing.T) {
		t.Parallel()
		g := newGen(t, embedded(t), wordgen.WithDrawSource(rand.New(rand.NewPCG(9, 1))))

		words, err := g.Batch(ctx, 3, "ma", func(w string) bool { return len(w) >= 3 })
		require.NoError(t, err)
		require.Len(t, words, 3)
		for _, w := range words {
			assert.True(t, strings.HasPrefix(w, "ma"), w)
			assert.GreaterOrEqual(t, len(w), 3)
		}
	})

	t.Run("duplicates exhaust attempts", func(t *testing.T) {
		t.Parallel()
		g := newGen(t, tiny, wordgen.WithDrawSource(wordgen.Sequence(1)))

		words, err := g.Batch(ctx, 3, "", nil)
		assert.ErrorIs(t, err, wordgen.ErrAttemptsExhausted)
		assert.Equal(t, []string{"ddd"}, words)
	})

	t.Run("validator rejects everything", func(t *testing.T) {
		t.Parallel()
		calls := 0
		g := newGen(t, tiny, wordgen.WithDrawSource(wordgen.Sequence(1)))

		words, err := g.Batch(ctx, 1, "", func(string) bool { calls++; return false })
		assert.ErrorIs(t, err, wordgen.ErrAttemptsExhausted)
		assert.Empty(t, words)
		assert.Equal(t, 100, calls)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		words, err := newGen(t, tiny).Batch(cctx, 2, "", nil)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, words)
	})

	t.Run("nothing requested", func(t *testing.T) {
		t.Parallel()
		words, err := newGen(t, tiny).Batch(ctx, 0, "", nil)
		require.NoError(t, err)
		assert.Nil(t, words)
	})
}
