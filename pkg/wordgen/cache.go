package wordgen

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dmitrymomot/namesmith/pkg/freqtable"
)

type tableKind uint8

const (
	globalLetters tableKind = iota
	letterAfter
	signAfter
	atPosition
)

type tableKey struct {
	kind    tableKind
	context string
	n       int
}

// tables builds corpus tables on demand. Cached tables are shared between
// generations and must not be modified; freqtable.Merge only reads them.
type tables struct {
	corpus string
	cache  *lru.Cache[tableKey, *freqtable.Table]
}

func newTables(corpus string, size int) (*tables, error) {
	t := &tables{corpus: corpus}
	if size > 0 {
		c, err := lru.New[tableKey, *freqtable.Table](size)
		if err != nil {
			return nil, err
		}
		t.cache = c
	}
	return t, nil
}

func (t *tables) get(key tableKey) *freqtable.Table {
	if t.cache != nil {
		if tbl, ok := t.cache.Get(key); ok {
			return tbl
		}
	}

	var tbl *freqtable.Table
	switch key.kind {
	case globalLetters:
		tbl = freqtable.GlobalLetters(t.corpus)
	case letterAfter:
		tbl = freqtable.LetterAfter(t.corpus, key.context)
	case signAfter:
		tbl = freqtable.SignAfter(t.corpus, key.context)
	case atPosition:
		tbl = freqtable.AtPosition(t.corpus, key.n)
	}

	if t.cache != nil {
		t.cache.Add(key, tbl)
	}
	return tbl
}

func (t *tables) len() int {
	if t.cache == nil {
		return 0
	}
	return t.cache.Len()
}
