// Package app wires user interactions to state changes. A Session owns the
// record store, the view state and the form, and every operation re-runs the
// view pipeline before it returns, so the caller always renders current state.
package app

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/csg33k/roster/internal/domain"
	"github.com/csg33k/roster/internal/form"
	"github.com/csg33k/roster/internal/ids"
	"github.com/csg33k/roster/internal/observability"
	"github.com/csg33k/roster/internal/ports"
	"github.com/csg33k/roster/internal/view"
)

// ErrInvalidPageSize is returned when a page size is not a positive integer.
// The previous page size stays in effect.
var ErrInvalidPageSize = errors.New("page size must be a positive integer")

// Screen is everything the renderer needs after one interaction.
type Screen struct {
	Page           domain.Page
	View           domain.ViewState
	Form           domain.FormState
	FiltersCleared bool
	Rejected       bool // the last submit failed validation
}

// Deps are the collaborators of a Session.
type Deps struct {
	Store    ports.EmployeeStore
	Report   ports.ReportGenerator
	Logger   *zap.Logger
	Metrics  *observability.Metrics
	Locale   language.Tag
	PageSize int
	Now      func() time.Time
}

// Session is the single process-wide UI session. Its mutex plays the role of
// the event loop: one operation runs to completion before the next starts.
type Session struct {
	mu      sync.Mutex
	store   ports.EmployeeStore
	report  ports.ReportGenerator
	logger  *zap.Logger
	metrics *observability.Metrics
	locale  language.Tag
	now     func() time.Time

	state domain.ViewState
	form  *form.Controller
	seq   *ids.Sequence
}

func NewSession(d Deps) *Session {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	s := &Session{
		store:   d.Store,
		report:  d.Report,
		logger:  d.Logger,
		metrics: d.Metrics,
		locale:  d.Locale,
		now:     d.Now,
		state:   domain.NewViewState(d.PageSize),
		form:    form.New(),
		seq:     ids.NewSequence(d.Store.MaxID()),
	}
	s.metrics.SetRecords(d.Store.Len())
	return s
}

// Screen recomputes the view without changing anything.
func (s *Session) Screen() Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recompute()
}

// Search sets the free-text search term.
func (s *Session) Search(term string) Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Search = strings.TrimSpace(term)
	return s.recompute()
}

// ApplyFilters replaces the structured filters.
func (s *Session) ApplyFilters(f domain.Filters) Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Filters = domain.Filters{
		Name:       strings.TrimSpace(f.Name),
		Department: strings.TrimSpace(f.Department),
		Role:       strings.TrimSpace(f.Role),
	}
	return s.recompute()
}

// ClearFilters removes every structured filter. The search term is kept.
func (s *Session) ClearFilters() Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Filters = domain.Filters{}
	sc := s.recompute()
	sc.FiltersCleared = true
	return sc
}

// SetSort selects the sort key from its select value.
func (s *Session) SetSort(raw string) Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Sort = domain.ParseSortKey(raw)
	return s.recompute()
}

// SetPageSize changes the page size and returns to page 1. Anything other
// than a positive integer is rejected with ErrInvalidPageSize.
func (s *Session) SetPageSize(raw string) (Screen, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		s.logger.Warn("rejected page size", zap.String("value", raw))
		return s.recompute(), ErrInvalidPageSize
	}
	s.state.PageSize = n
	s.state.Page = 1
	return s.recompute(), nil
}

// GoToPage moves to page n. Out-of-range pages fall back to page 1.
func (s *Session) GoToPage(n int) Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Page = n
	return s.recompute()
}

// OpenAdd shows the empty form.
func (s *Session) OpenAdd() Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form.OpenAdd()
	return s.recompute()
}

// OpenEdit shows the form populated from record id. A missing id changes nothing.
func (s *Session) OpenEdit(id int64) Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.store.Find(id); ok {
		s.form.OpenEdit(e)
	}
	return s.recompute()
}

// Cancel closes the form without saving.
func (s *Session) Cancel() Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form.Cancel()
	return s.recompute()
}

// Submit validates the typed fields and upserts the record. A rejected
// submit leaves the store alone and the form open; Screen.Rejected is set.
func (s *Session) Submit(f domain.FormFields) Screen {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.form.Submit(f, s.seq.Next)
	if !ok {
		s.metrics.RecordValidationFailure()
		s.logger.Debug("submitted record rejected")
		sc := s.recompute()
		sc.Rejected = true
		return sc
	}

	if _, exists := s.store.Find(e.ID); exists {
		s.store.Replace(e.ID, e)
		s.metrics.RecordMutation("replace", s.store.Len())
		s.logger.Info("employee updated", zap.Int64("id", e.ID))
	} else {
		s.store.Append(e)
		s.seq.Observe(e.ID)
		s.metrics.RecordMutation("append", s.store.Len())
		s.logger.Info("employee added", zap.Int64("id", e.ID))
	}
	return s.recompute()
}

// Delete removes record id. A missing id changes nothing.
func (s *Session) Delete(id int64) Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store.Remove(id) {
		s.metrics.RecordMutation("remove", s.store.Len())
		s.logger.Info("employee deleted", zap.Int64("id", id))
	}
	return s.recompute()
}

// Report writes the roster report for every record matching the current view.
func (s *Session) Report(ctx context.Context, w io.Writer) error {
	s.mu.Lock()
	sc := s.recompute()
	s.mu.Unlock()

	return s.report.Generate(ctx, domain.Report{
		State:       sc.View,
		Employees:   sc.Page.Matched,
		GeneratedAt: s.now(),
	}, w)
}

// recompute runs the view pipeline over a store snapshot and stores the
// clamped page back into the view state. Callers hold s.mu.
func (s *Session) recompute() Screen {
	p := view.Compute(s.store.List(), s.state, s.locale)
	s.state.Page = p.Page
	s.state.PageSize = p.PageSize
	return Screen{
		Page: p,
		View: s.state,
		Form: s.form.State(),
	}
}
