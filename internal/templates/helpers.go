package templates

import (
	"slices"

	"github.com/csg33k/roster/internal/domain"
)

type sortOption struct {
	Value domain.SortKey
	Label string
}

var sortOptions = []sortOption{
	{domain.SortNone, "None"},
	{domain.SortFirstName, "First name"},
	{domain.SortDepartment, "Department"},
}

// pageSizes returns the offered page sizes, plus current when it was set
// through config to something outside the list.
func pageSizes(current int) []int {
	if slices.Contains(domain.PageSizes, current) {
		return domain.PageSizes
	}
	out := append(slices.Clone(domain.PageSizes), current)
	slices.Sort(out)
	return out
}

type filterBar struct {
	Filters domain.Filters
	OOB     bool
}

func newFilterBar(f domain.Filters, oob bool) filterBar {
	return filterBar{Filters: f, OOB: oob}
}
