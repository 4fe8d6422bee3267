// Package templates renders the roster page and its htmx regions.
package templates

import (
	"github.com/a-h/templ"

	"github.com/csg33k/roster/internal/app"
	"github.com/csg33k/roster/internal/domain"
)

// Index renders the full page: toolbar, filter bar and workspace.
func Index(sc app.Screen) templ.Component {
	return templ.FromGoHTML(root.Lookup("index"), sc)
}

// Workspace renders the #workspace swap target. When the filters were just
// cleared it also carries an out-of-band filter bar with empty inputs.
func Workspace(sc app.Screen) templ.Component {
	return templ.FromGoHTML(root.Lookup("workspace"), sc)
}

func ListRegion(items []domain.Employee) templ.Component {
	return templ.FromGoHTML(root.Lookup("list-region"), items)
}

func PaginationRegion(p domain.Page) templ.Component {
	return templ.FromGoHTML(root.Lookup("pagination-region"), p)
}

func FormRegion(f domain.FormState) templ.Component {
	return templ.FromGoHTML(root.Lookup("form-region"), f)
}
