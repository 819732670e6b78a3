package wordgen

import (
	"log/slog"

	"github.com/dmitrymomot/namesmith/pkg/logger"
)

const (
	// DefaultMaxLength is the number of positions generated before a word is
	// cut off.
	DefaultMaxLength = 15

	// DefaultCacheSize is the number of corpus tables kept per Generator.
	DefaultCacheSize = 4096
)

// Weights sets how much each table contributes to the merged table at a
// position.
type Weights struct {
	// Base weighs the table of all corpus letters.
	Base float64
	// Context[k-1] weighs the table for the last k symbols of the word.
	Context [7]float64
	// Positional weighs the table of symbols seen at the next position.
	Positional float64
}

// DefaultWeights returns the standard backoff weights.
func DefaultWeights() Weights {
	return Weights{
		Base:       0.8,
		Context:    [7]float64{1, 1, 1, 1, 0.6, 0.5, 0.4},
		Positional: 1,
	}
}

// Option configures a Generator.
type Option func(*config)

type config struct {
	maxLength int
	cacheSize int
	weights   Weights
	draw      DrawSource
	log       *slog.Logger
}

func defaultConfig() *config {
	return &config{
		maxLength: DefaultMaxLength,
		cacheSize: DefaultCacheSize,
		weights:   DefaultWeights(),
		draw:      globalDraw{},
		log:       logger.Discard(),
	}
}

// WithMaxLength sets how many positions are generated at most.
func WithMaxLength(n int) Option {
	return func(c *config) { c.maxLength = n }
}

// WithDrawSource replaces the default random source.
func WithDrawSource(d DrawSource) Option {
	return func(c *config) {
		if d != nil {
			c.draw = d
		}
	}
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.log = logger.OrDiscard(l) }
}

// WithCacheSize sets the table cache capacity. Zero disables caching.
func WithCacheSize(n int) Option {
	return func(c *config) { c.cacheSize = n }
}

// WithWeights overrides the backoff weights.
func WithWeights(w Weights) Option {
	return func(c *config) { c.weights = w }
}
