// Command namesmith invents brandable words from a corpus of names.
//
// Usage:
//
//	namesmith [-n 10] [-seed ka] [-max 15] [-corpus names.txt] [-rand 42] [-explain]
//	namesmith -serve
//
// Flags:
//
//	-n        number of distinct words to print
//	-seed     prefix every word starts with
//	-max      maximum word length (overrides WORDGEN_MAX_LENGTH)
//	-corpus   .txt, .yaml or .json corpus file (overrides CORPUS_PATH)
//	-rand     random seed for reproducible output, 0 picks one
//	-explain  print the table each symbol was drawn from
//	-serve    run the HTTP interface instead of printing words
//
// Without a corpus file or CORPUS_S3_BUCKET/CORPUS_S3_KEY the built-in list
// of company names is used.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/dmitrymomot/namesmith/internal/server"
	"github.com/dmitrymomot/namesmith/pkg/config"
	"github.com/dmitrymomot/namesmith/pkg/corpus"
	"github.com/dmitrymomot/namesmith/pkg/logger"
	"github.com/dmitrymomot/namesmith/pkg/wordgen"
)

type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL"`

	CorpusPath          string `env:"CORPUS_PATH"`
	CorpusMinWordLength int    `env:"CORPUS_MIN_WORD_LENGTH" envDefault:"4"`
	S3                  corpus.S3Config

	MaxLength int `env:"WORDGEN_MAX_LENGTH" envDefault:"15"`
	CacheSize int `env:"WORDGEN_CACHE_SIZE" envDefault:"4096"`

	HTTP server.Config
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "namesmith: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("namesmith", flag.ContinueOnError)
	fs.SetOutput(stderr)
	count := fs.Int("n", 10, "number of distinct words to print")
	seed := fs.String("seed", "", "prefix every word starts with")
	maxLength := fs.Int("max", 0, "maximum word length (overrides WORDGEN_MAX_LENGTH)")
	corpusPath := fs.String("corpus", "", "corpus file (overrides CORPUS_PATH)")
	randSeed := fs.Uint64("rand", 0, "random seed for reproducible output, 0 picks one")
	explain := fs.Bool("explain", false, "print the table each symbol was drawn from")
	serve := fs.Bool("serve", false, "run the HTTP interface")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	// CLI flags override config.
	if *corpusPath != "" {
		cfg.CorpusPath = *corpusPath
	}
	if *maxLength > 0 {
		cfg.MaxLength = *maxLength
	}

	logOpts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "namesmith"),
		logger.WithOutput(stderr),
		logger.WithContextExtractors(server.RequestIDExtractor()),
	}
	if cfg.LogLevel != "" {
		logOpts = append(logOpts, logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	}
	log := logger.New(logOpts...)

	src, err := corpusSource(ctx, cfg)
	if err != nil {
		return err
	}
	c, err := corpus.Load(ctx, src, corpus.WithMinWordLength(cfg.CorpusMinWordLength))
	if err != nil {
		return err
	}
	log.InfoContext(ctx, "corpus loaded", logger.CorpusSize(c.Len()), slog.String("version", c.Version))

	genOpts := []wordgen.Option{
		wordgen.WithMaxLength(cfg.MaxLength),
		wordgen.WithCacheSize(cfg.CacheSize),
		wordgen.WithLogger(log.With(logger.Component("wordgen"))),
	}
	if *randSeed != 0 {
		genOpts = append(genOpts, wordgen.WithDrawSource(rand.New(rand.NewPCG(*randSeed, *randSeed))))
	}
	gen, err := wordgen.New(c.Text, genOpts...)
	if err != nil {
		return err
	}

	if *serve {
		return server.New(cfg.HTTP, gen, server.WithLogger(log)).Run(ctx)
	}

	prefix := corpus.CleanSeed(*seed)
	if !*explain {
		words, err := gen.Batch(ctx, *count, prefix, nil)
		for _, w := range words {
			fmt.Fprintln(stdout, w)
		}
		return err
	}

	for range *count {
		printExplained(stdout, gen.Generate(ctx, prefix))
	}
	return nil
}

func corpusSource(ctx context.Context, cfg appConfig) (corpus.Source, error) {
	switch {
	case cfg.CorpusPath != "":
		return corpus.File(cfg.CorpusPath), nil
	case cfg.S3.Enabled():
		src, err := corpus.NewS3Source(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		return src, nil
	default:
		return corpus.Embedded(), nil
	}
}
