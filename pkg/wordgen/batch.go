package wordgen

import (
	"context"
	"fmt"
)

// maxAttempts bounds the candidates tried for each word of a batch.
const maxAttempts = 100

// Validator accepts or rejects a generated word.
type Validator func(word string) bool

// Batch generates up to n distinct, non-empty words starting with seed.
// Candidates rejected by validate, empty, or already in the batch are
// retried up to 100 times per word. When a word cannot be found the words
// collected so far are returned with ErrAttemptsExhausted. A nil validator
// accepts every word.
func (g *Generator) Batch(ctx context.Context, n int, seed string, validate Validator) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}

	words := make([]string, 0, n)
	seen := make(map[string]struct{}, n)

	for len(words) < n {
		found := false
		for range maxAttempts {
			if err := ctx.Err(); err != nil {
				return words, err
			}

			w := g.Generate(ctx, seed).Word
			if w == "" {
				continue
			}
			if _, dup := seen[w]; dup {
				continue
			}
			if validate != nil && !validate(w) {
				continue
			}

			seen[w] = struct{}{}
			words = append(words, w)
			found = true
			break
		}
		if !found {
			return words, fmt.Errorf("%w: word %d of %d after %d attempts", ErrAttemptsExhausted, len(words)+1, n, maxAttempts)
		}
	}

	return words, nil
}
