// Package shortlist keeps the words a user chose to save, most recent first.
// Lists live in memory only.
package shortlist

import (
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyWord = errors.New("shortlist: word cannot be empty")
	ErrNotFound  = errors.New("shortlist: item not found")
)

// Item is a saved word.
type Item struct {
	ID      uuid.UUID `json:"id"`
	Word    string    `json:"word"`
	SavedAt time.Time `json:"saved_at"`
}

// Option configures a List.
type Option func(*List)

// WithLimit keeps at most n items, dropping the oldest. Zero means no limit.
func WithLimit(n int) Option {
	return func(l *List) {
		if n >= 0 {
			l.limit = n
		}
	}
}

// WithClock sets the time source for SavedAt.
func WithClock(now func() time.Time) Option {
	return func(l *List) {
		if now != nil {
			l.now = now
		}
	}
}

// List is a concurrency-safe list of saved words.
type List struct {
	mu    sync.RWMutex
	items []Item // newest first
	limit int
	now   func() time.Time
}

func New(opts ...Option) *List {
	l := &List{now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Add saves word at the front of the list. The same word may be saved more
// than once.
func (l *List) Add(word string) (Item, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return Item{}, ErrEmptyWord
	}

	item := Item{ID: uuid.New(), Word: word, SavedAt: l.now()}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.items = slices.Insert(l.items, 0, item)
	if l.limit > 0 && len(l.items) > l.limit {
		l.items = slices.Delete(l.items, l.limit, len(l.items))
	}
	return item, nil
}

// List returns a copy of the saved items, newest first.
func (l *List) List() []Item {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.items)
}

func (l *List) Get(id uuid.UUID) (Item, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i := slices.IndexFunc(l.items, func(it Item) bool { return it.ID == id })
	if i < 0 {
		return Item{}, ErrNotFound
	}
	return l.items[i], nil
}

// Remove deletes the item with id and reports whether it existed.
func (l *List) Remove(id uuid.UUID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := slices.IndexFunc(l.items, func(it Item) bool { return it.ID == id })
	if i < 0 {
		return false
	}
	l.items = slices.Delete(l.items, i, i+1)
	return true
}

func (l *List) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}
