package repl

import "github.com/DrnchedNGold/IS601-Assignment-5/pkg/calc"

// Entry is an immutable record of one attempted calculation and its
// outcome. Err is non-nil exactly when the calculation was well-formed but
// failed at evaluation, like a division by zero.
type Entry struct {
	Op     calc.Op
	A, B   float64
	Result float64
	Err    error
}

// History is the append-only record of the calculations one session has
// attempted, in submission order. It is owned exclusively by that session;
// entries are never mutated after being added.
type History struct {
	entries []Entry
	max     int
}

// NewHistory makes an empty History. When the number of entries would
// exceed max, the oldest entries are evicted; a max of zero means no limit.
func NewHistory(max int) *History {
	return &History{max: max}
}

// Add appends an entry, evicting the oldest entry if the history is full.
func (h *History) Add(e Entry) {
	h.entries = append(h.entries, e)
	if h.max > 0 && len(h.entries) > h.max {
		h.entries = h.entries[len(h.entries)-h.max:]
	}
}

// Entries returns a copy of the recorded entries, oldest first.
func (h *History) Entries() []Entry {
	entries := make([]Entry, len(h.entries))
	copy(entries, h.entries)
	return entries
}

// Len returns the number of recorded entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Clear discards all recorded entries.
func (h *History) Clear() {
	h.entries = nil
}
