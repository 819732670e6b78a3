package corpus

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Corpus is a cleaned training corpus.
type Corpus struct {
	// Text is the string freqtable scans: " acme  globex  initech ".
	Text string
	// Words are the surviving words in input order.
	Words []string
	// Version identifies Text; equal texts share a version.
	Version string
}

// Len returns the number of words.
func (c *Corpus) Len() int {
	return len(c.Words)
}

// New cleans raw entries into a corpus. It returns ErrEmptyCorpus when no
// word survives cleaning.
func New(raw []string, opts ...Option) (*Corpus, error) {
	words := Words(raw, opts...)
	if len(words) == 0 {
		return nil, ErrEmptyCorpus
	}
	text := join(words)
	return &Corpus{
		Text:    text,
		Words:   words,
		Version: uuid.NewSHA1(uuid.NameSpaceOID, []byte(text)).String(),
	}, nil
}

// Load reads, parses and cleans the corpus provided by src.
func Load(ctx context.Context, src Source, opts ...Option) (*Corpus, error) {
	rc, name, err := src.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	p, err := ParserFor(name)
	if err != nil {
		return nil, err
	}

	entries, err := p.Parse(ctx, rc)
	if err != nil {
		return nil, err
	}

	c, err := New(entries, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: source %s", err, name)
	}
	return c, nil
}
