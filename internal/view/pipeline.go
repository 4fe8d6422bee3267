// Package view turns the store contents and the view state into the slice of
// records to display: filter and search, then sort, then paginate. Every stage
// is a pure function over its inputs and returns fresh slices.
package view

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/csg33k/roster/internal/domain"
)

// Compute runs the whole pipeline over a snapshot of the records.
func Compute(records []domain.Employee, state domain.ViewState, tag language.Tag) domain.Page {
	matched := Sort(Filter(records, state.Search, state.Filters), state.Sort, tag)
	return Paginate(matched, state.Page, state.PageSize)
}

// Filter keeps the records matching every structured filter and the search
// term. Matching is case-insensitive substring; empty terms match everything.
// The search term looks at first name, last name and email.
func Filter(records []domain.Employee, search string, f domain.Filters) []domain.Employee {
	search = strings.ToLower(search)
	name := strings.ToLower(f.Name)
	dept := strings.ToLower(f.Department)
	role := strings.ToLower(f.Role)

	out := make([]domain.Employee, 0, len(records))
	for _, e := range records {
		if !contains(e.FirstName, name) || !contains(e.Department, dept) || !contains(e.Role, role) {
			continue
		}
		if !contains(e.FirstName, search) && !contains(e.LastName, search) && !contains(e.Email, search) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Sort orders a copy of records by the given key using the collation rules of
// tag. Ties keep their relative order. SortNone returns the copy unchanged.
func Sort(records []domain.Employee, key domain.SortKey, tag language.Tag) []domain.Employee {
	out := slices.Clone(records)
	var field func(domain.Employee) string
	switch key {
	case domain.SortFirstName:
		field = func(e domain.Employee) string { return e.FirstName }
	case domain.SortDepartment:
		field = func(e domain.Employee) string { return e.Department }
	default:
		return out
	}
	c := collate.New(tag)
	slices.SortStableFunc(out, func(a, b domain.Employee) int {
		return c.CompareString(field(a), field(b))
	})
	return out
}

// Paginate cuts records into pages of size and returns the requested one.
// There is always at least one page; a page outside [1, TotalPages] falls
// back to page 1.
func Paginate(records []domain.Employee, page, size int) domain.Page {
	if size <= 0 {
		size = domain.DefaultPageSize
	}
	total := TotalPages(len(records), size)
	if page < 1 || page > total {
		page = 1
	}
	start := min((page-1)*size, len(records))
	end := min(start+size, len(records))
	return domain.Page{
		Items:      slices.Clone(records[start:end]),
		Matched:    records,
		Page:       page,
		PageSize:   size,
		TotalPages: total,
		TotalItems: len(records),
	}
}

// TotalPages is ceil(n/size), never less than 1. It does not overflow for
// sizes near math.MaxInt.
func TotalPages(n, size int) int {
	if n <= 0 || size <= 0 {
		return 1
	}
	total := n / size
	if n%size != 0 {
		total++
	}
	return max(total, 1)
}

func contains(s, lowerSub string) bool {
	if lowerSub == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), lowerSub)
}
