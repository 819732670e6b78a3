package corpus_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namesmith/pkg/corpus"
)

func TestParserFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want corpus.Parser
	}{
		{name: "names.txt", want: corpus.TextParser{}},
		{name: "names", want: corpus.TextParser{}},
		{name: "names.YAML", want: corpus.YAMLParser{}},
		{name: "dir/names.yml", want: corpus.YAMLParser{}},
		{name: "names.json", want: corpus.JSONParser{}},
	}
	for _, tt := range tests {
		p, err := corpus.ParserFor(tt.name)
		require.NoError(t, err, tt.name)
		assert.IsType(t, tt.want, p, tt.name)
	}

	_, err := corpus.ParserFor("names.csv")
	assert.ErrorIs(t, err, corpus.ErrUnsupportedFormat)
}

func TestTextParser(t *testing.T) {
	t.Parallel()

	in := "# companies\nAcme Corp\n\n  Globex  \n#skip\nInitech\n"
	got, err := corpus.TextParser{}.Parse(context.Background(), strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme Corp", "Globex", "Initech"}, got)
}

func TestYAMLParser(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("list", func(t *testing.T) {
		got, err := corpus.YAMLParser{}.Parse(ctx, strings.NewReader("- Acme\n- Globex\n- 1234\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"Acme", "Globex", "1234"}, got)
	})

	t.Run("names mapping", func(t *testing.T) {
		got, err := corpus.YAMLParser{}.Parse(ctx, strings.NewReader("names:\n  - Acme\n  - Hooli\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"Acme", "Hooli"}, got)
	})

	t.Run("empty document", func(t *testing.T) {
		got, err := corpus.YAMLParser{}.Parse(ctx, strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("mapping without names", func(t *testing.T) {
		_, err := corpus.YAMLParser{}.Parse(ctx, strings.NewReader("brands:\n  - Acme\n"))
		assert.ErrorIs(t, err, corpus.ErrInvalidContent)
	})

	t.Run("scalar document", func(t *testing.T) {
		_, err := corpus.YAMLParser{}.Parse(ctx, strings.NewReader("just a string"))
		assert.ErrorIs(t, err, corpus.ErrInvalidContent)
	})

	t.Run("cancelled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := corpus.YAMLParser{}.Parse(cctx, strings.NewReader("- Acme"))
		assert.ErrorIs(t, err, corpus.ErrParsingCancelled)
	})
}

func TestJSONParser(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	got, err := corpus.JSONParser{}.Parse(ctx, strings.NewReader(`["Acme", "Vandelay"]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme", "Vandelay"}, got)

	got, err = corpus.JSONParser{}.Parse(ctx, strings.NewReader(`{"names": ["Soylent"]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"Soylent"}, got)

	_, err = corpus.JSONParser{}.Parse(ctx, strings.NewReader(`{"names": "Soylent"}`))
	assert.ErrorIs(t, err, corpus.ErrInvalidContent)

	_, err = corpus.JSONParser{}.Parse(ctx, strings.NewReader(`[["nested"]]`))
	assert.ErrorIs(t, err, corpus.ErrInvalidContent)

	_, err = corpus.JSONParser{}.Parse(ctx, strings.NewReader(`{broken`))
	assert.ErrorIs(t, err, corpus.ErrInvalidContent)
}
