package templates_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csg33k/roster/internal/app"
	"github.com/csg33k/roster/internal/domain"
	"github.com/csg33k/roster/internal/templates"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func screen() app.Screen {
	items := []domain.Employee{
		{ID: 7, FirstName: "Ann", LastName: "Lee", Email: "ann@corp.io", Department: "R&D", Role: "Developer"},
		{ID: 9, FirstName: "Bob", LastName: "Stone", Email: "bob@corp.io", Department: "Sales", Role: "Manager"},
	}
	return app.Screen{
		Page: domain.Page{Items: items, Matched: items, Page: 2, PageSize: 2, TotalPages: 3, TotalItems: 6},
		View: domain.ViewState{Search: "o", Sort: domain.SortDepartment, Page: 2, PageSize: 2},
	}
}

func TestIndex_RendersToolbarAndWorkspace(t *testing.T) {
	out := renderString(t, templates.Index(screen()))

	assert.Contains(t, out, `id="search-input"`)
	assert.Contains(t, out, `id="workspace"`)
	assert.Contains(t, out, `<option value="department" selected>`)
	assert.Contains(t, out, `<option value="2" selected>2</option>`, "a configured size outside the list is still offered")
	assert.Contains(t, out, `/employees/report.pdf`)
	assert.Contains(t, out, "validationFailed")
	assert.NotContains(t, out, "hx-swap-oob", "the full page never swaps out of band")
}

func TestListRegion_Cards(t *testing.T) {
	out := renderString(t, templates.ListRegion(screen().Page.Items))

	assert.Equal(t, 2, strings.Count(out, `class="card employee-card"`))
	assert.Contains(t, out, `data-id="7"`)
	assert.Contains(t, out, `hx-get="/employees/7/edit"`)
	assert.Contains(t, out, `hx-delete="/employees/9"`)
	assert.Contains(t, out, "Ann Lee")
	assert.Contains(t, out, "R&amp;D", "record text is escaped")
}

func TestListRegion_Empty(t *testing.T) {
	out := renderString(t, templates.ListRegion(nil))
	assert.Contains(t, out, "No employees match.")
	assert.NotContains(t, out, "employee-card")
}

func TestPaginationRegion(t *testing.T) {
	out := renderString(t, templates.PaginationRegion(screen().Page))

	assert.Equal(t, 3, strings.Count(out, "<button"))
	assert.Equal(t, 1, strings.Count(out, "disabled"))
	assert.Contains(t, out, `hx-post="/view/page/1"`)
	assert.Contains(t, out, `hx-post="/view/page/3"`)
	assert.NotContains(t, out, `hx-post="/view/page/2"`, "the current page is not a link")
}

func TestFormRegion(t *testing.T) {
	closed := renderString(t, templates.FormRegion(domain.FormState{}))
	assert.Contains(t, closed, "display:none")

	edit := renderString(t, templates.FormRegion(domain.FormState{
		Mode:   domain.FormEdit,
		Fields: domain.FormFields{ID: "7", FirstName: "Ann"},
		Error:  "Please fill all fields correctly.",
	}))
	assert.NotContains(t, edit, "display:none")
	assert.Contains(t, edit, "Edit Employee")
	assert.Contains(t, edit, `name="id" value="7"`)
	assert.Contains(t, edit, `value="Ann"`)
	assert.Contains(t, edit, "Please fill all fields correctly.")

	add := renderString(t, templates.FormRegion(domain.FormState{Mode: domain.FormAdd}))
	assert.Contains(t, add, "Add Employee")
}

func TestWorkspace_FilterBarOnlyAfterClear(t *testing.T) {
	sc := screen()
	assert.NotContains(t, renderString(t, templates.Workspace(sc)), "filter-bar")

	sc.FiltersCleared = true
	out := renderString(t, templates.Workspace(sc))
	assert.Contains(t, out, `id="filter-bar"`)
	assert.Contains(t, out, `hx-swap-oob="true"`)
}
