package corpus

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser reads raw corpus entries from a stream.
type Parser interface {
	Parse(ctx context.Context, r io.Reader) ([]string, error)
	SupportsFileExtension(ext string) bool
}

var parsers = []Parser{TextParser{}, YAMLParser{}, JSONParser{}}

// ParserFor picks a parser by the extension of name. Names without an
// extension are read as text.
func ParserFor(name string) (Parser, error) {
	ext := filepath.Ext(name)
	if ext == "" {
		return TextParser{}, nil
	}
	for _, p := range parsers {
		if p.SupportsFileExtension(ext) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// TextParser reads one entry per line. Blank lines and lines starting with
// '#' are skipped.
type TextParser struct{}

func (TextParser) Parse(ctx context.Context, r io.Reader) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var entries []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Join(ErrReadSource, err)
	}
	return entries, nil
}

func (TextParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "txt") || strings.EqualFold(ext, "text")
}

// YAMLParser reads either a top-level list of names or a mapping with a
// "names" list.
type YAMLParser struct{}

func (YAMLParser) Parse(ctx context.Context, r io.Reader) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var doc any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errors.Join(ErrInvalidContent, err)
	}
	return entriesFrom(doc)
}

func (YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}

// JSONParser reads either an array of names or an object with a "names" array.
type JSONParser struct{}

func (JSONParser) Parse(ctx context.Context, r io.Reader) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errors.Join(ErrInvalidContent, err)
	}
	return entriesFrom(doc)
}

func (JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}

// entriesFrom accepts a decoded document shaped as [..] or {names: [..]}.
func entriesFrom(doc any) ([]string, error) {
	switch v := doc.(type) {
	case nil:
		return nil, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			switch s := item.(type) {
			case string:
				out = append(out, s)
			case map[string]any, []any, nil:
				return nil, fmt.Errorf("%w: unexpected %T in names list", ErrInvalidContent, item)
			default:
				out = append(out, fmt.Sprint(s))
			}
		}
		return out, nil
	case map[string]any:
		names, ok := v["names"]
		if !ok {
			return nil, fmt.Errorf("%w: missing \"names\" key", ErrInvalidContent)
		}
		if _, isList := names.([]any); !isList {
			return nil, fmt.Errorf("%w: \"names\" must be a list", ErrInvalidContent)
		}
		return entriesFrom(names)
	default:
		return nil, fmt.Errorf("%w: expected list or mapping, got %T", ErrInvalidContent, doc)
	}
}
