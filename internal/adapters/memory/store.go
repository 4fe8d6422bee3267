// Package memory provides the in-memory Record Store. Contents vanish when the
// process exits.
package memory

import (
	"slices"
	"sync"

	"github.com/csg33k/roster/internal/domain"
	"github.com/csg33k/roster/internal/ports"
)

var _ ports.EmployeeStore = (*Store)(nil)

type Store struct {
	mu      sync.RWMutex
	records []domain.Employee
}

// New returns a store holding a copy of seed. Records repeating an earlier
// identifier are dropped.
func New(seed []domain.Employee) *Store {
	s := &Store{records: make([]domain.Employee, 0, len(seed))}
	for _, e := range seed {
		s.Append(e)
	}
	return s
}

// Append adds e at the end. It is a no-op when e.ID is already present.
func (s *Store) Append(e domain.Employee) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(e.ID) >= 0 {
		return false
	}
	s.records = append(s.records, e)
	return true
}

// Replace overwrites the record with the given id in place.
func (s *Store) Replace(id int64, e domain.Employee) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.records[i] = e
	return true
}

// Remove deletes the first record with the given id.
func (s *Store) Remove(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.records = slices.Delete(s.records, i, i+1)
	return true
}

func (s *Store) Find(id int64) (domain.Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return domain.Employee{}, false
	}
	return s.records[i], true
}

// List returns a snapshot copy in insertion order.
func (s *Store) List() []domain.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.records)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// MaxID returns the largest identifier held, or 0 when empty.
func (s *Store) MaxID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var max int64
	for _, e := range s.records {
		if e.ID > max {
			max = e.ID
		}
	}
	return max
}

func (s *Store) indexOf(id int64) int {
	return slices.IndexFunc(s.records, func(e domain.Employee) bool { return e.ID == id })
}
