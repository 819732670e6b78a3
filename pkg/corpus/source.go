package corpus

import (
	"context"
	_ "embed"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Source provides raw corpus content. The returned name is used only to pick
// a parser by its extension.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, string, error)
}

//go:embed data/companies.txt
var companies string

// Embedded returns the built-in list of company names.
func Embedded() Source {
	return Reader("companies.txt", strings.NewReader(companies))
}

// File reads the corpus from a local path.
func File(path string) Source {
	return fileSource(path)
}

type fileSource string

func (f fileSource) Open(ctx context.Context) (io.ReadCloser, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	fh, err := os.Open(string(f))
	if err != nil {
		return nil, "", errors.Join(ErrReadSource, err)
	}
	return fh, filepath.Base(string(f)), nil
}

// Reader wraps an already open stream. It can be opened once.
func Reader(name string, r io.Reader) Source {
	return &readerSource{name: name, r: r}
}

type readerSource struct {
	name string
	r    io.Reader
}

func (s *readerSource) Open(ctx context.Context) (io.ReadCloser, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	if rc, ok := s.r.(io.ReadCloser); ok {
		return rc, s.name, nil
	}
	return io.NopCloser(s.r), s.name, nil
}
