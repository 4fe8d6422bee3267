package domain

import (
	"strings"
	"time"
)

const DefaultPageSize = 10

// PageSizes are the page sizes offered by the page-size select.
var PageSizes = []int{5, 10, 20, 50}

// Employee is a single roster entry. ID is unique within the store.
type Employee struct {
	ID         int64  `json:"id" yaml:"id"`
	FirstName  string `json:"firstName" yaml:"firstName"`
	LastName   string `json:"lastName" yaml:"lastName"`
	Email      string `json:"email" yaml:"email"`
	Department string `json:"department" yaml:"department"`
	Role       string `json:"role" yaml:"role"`
}

// FullName is "First Last", as shown on the card heading.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// SortKey selects the single sort column of the list.
type SortKey string

const (
	SortNone       SortKey = ""
	SortFirstName  SortKey = "firstName"
	SortDepartment SortKey = "department"
)

// ParseSortKey maps a select value onto a SortKey. Unknown values sort nothing.
func ParseSortKey(raw string) SortKey {
	switch SortKey(strings.TrimSpace(raw)) {
	case SortFirstName:
		return SortFirstName
	case SortDepartment:
		return SortDepartment
	default:
		return SortNone
	}
}

// Filters are the structured substring filters applied before search.
type Filters struct {
	Name       string
	Department string
	Role       string
}

// IsZero reports whether no filter is set.
func (f Filters) IsZero() bool {
	return f.Name == "" && f.Department == "" && f.Role == ""
}

// ViewState is everything the View Pipeline needs besides the records.
type ViewState struct {
	Search   string
	Filters  Filters
	Sort     SortKey
	Page     int // 1-based
	PageSize int
}

// NewViewState returns the initial state: no search, no filters, page 1.
func NewViewState(pageSize int) ViewState {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return ViewState{Page: 1, PageSize: pageSize}
}

// Page is the output of one pipeline run.
type Page struct {
	Items      []Employee // the slice to display
	Matched    []Employee // every record surviving filter+sort, in display order
	Page       int        // current page after clamping
	PageSize   int
	TotalPages int
	TotalItems int
}

// PageNumbers lists 1..TotalPages for the pagination controls.
func (p Page) PageNumbers() []int {
	out := make([]int, p.TotalPages)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// Report is the input of the roster report: every matched record under the
// view state that selected them.
type Report struct {
	State       ViewState
	Employees   []Employee
	GeneratedAt time.Time
}
