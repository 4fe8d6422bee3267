// Package ids hands out identifiers for newly added employees.
package ids

import "sync/atomic"

// Sequence is a monotonic identifier source. Two calls never return the same
// value, however fast they arrive.
type Sequence struct {
	last atomic.Int64
}

// NewSequence returns a Sequence whose first value is after+1.
func NewSequence(after int64) *Sequence {
	s := &Sequence{}
	s.last.Store(after)
	return s
}

// Next returns the next identifier.
func (s *Sequence) Next() int64 {
	return s.last.Add(1)
}

// Observe moves the sequence past id so a manually chosen identifier is not
// handed out again later.
func (s *Sequence) Observe(id int64) {
	for {
		cur := s.last.Load()
		if id <= cur || s.last.CompareAndSwap(cur, id) {
			return
		}
	}
}
