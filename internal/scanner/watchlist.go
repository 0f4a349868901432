package scanner

import (
	"sort"
	"sync"

	"crypto-sentiment-bot/internal/domain"
)

// Watchlist maps token address to the last snapshot seen for it.
// It is owned by the calling layer and safe for concurrent use.
type Watchlist struct {
	mu     sync.RWMutex
	tokens map[string]domain.TokenSnapshot
}

func NewWatchlist() *Watchlist {
	return &Watchlist{tokens: make(map[string]domain.TokenSnapshot)}
}

// Add inserts or replaces the entry for snap.Address.
func (w *Watchlist) Add(snap domain.TokenSnapshot) bool {
	if snap.Address == "" {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.tokens[snap.Address] = snap
	return true
}

func (w *Watchlist) Remove(address string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.tokens[address]; !ok {
		return false
	}
	delete(w.tokens, address)
	return true
}

func (w *Watchlist) Get(address string) (domain.TokenSnapshot, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	snap, ok := w.tokens[address]
	return snap, ok
}

// List returns entries sorted by symbol, then address.
func (w *Watchlist) List() []domain.TokenSnapshot {
	w.mu.RLock()
	out := make([]domain.TokenSnapshot, 0, len(w.tokens))
	for _, snap := range w.tokens {
		out = append(out, snap)
	}
	w.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Symbol != out[j].Symbol {
			return out[i].Symbol < out[j].Symbol
		}
		return out[i].Address < out[j].Address
	})
	return out
}

func (w *Watchlist) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.tokens)
}

// Refresh replaces watched entries with newer snapshots for the same address.
// Unwatched tokens are ignored. It returns how many entries changed.
func (w *Watchlist) Refresh(latest []domain.TokenSnapshot) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	n := 0
	for _, snap := range latest {
		if _, ok := w.tokens[snap.Address]; ok {
			w.tokens[snap.Address] = snap
			n++
		}
	}
	return n
}
