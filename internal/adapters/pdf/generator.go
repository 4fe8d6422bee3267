// Package pdf renders the roster report: every record matching the current
// view, in display order, as a paginated table with a summary of the search,
// filters and sort that produced it.
package pdf

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/csg33k/roster/internal/domain"
	"github.com/csg33k/roster/internal/ports"
)

var _ ports.ReportGenerator = Generator{}

type Generator struct{}

// column widths as fractions of the content width
var columns = []struct {
	title string
	frac  float64
	value func(domain.Employee) string
}{
	{"ID", 0.08, func(e domain.Employee) string { return fmt.Sprint(e.ID) }},
	{"Name", 0.24, func(e domain.Employee) string { return e.LastName + ", " + e.FirstName }},
	{"Email", 0.30, func(e domain.Employee) string { return e.Email }},
	{"Department", 0.19, func(e domain.Employee) string { return e.Department }},
	{"Role", 0.19, func(e domain.Employee) string { return e.Role }},
}

// Generate writes the report PDF for r to w.
func (Generator) Generate(ctx context.Context, r domain.Report, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AliasNbPages("{nb}")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-14)
		pdf.SetFont("Helvetica", "I", 7.5)
		pdf.SetTextColor(130, 130, 130)
		pdf.CellFormat(0, 5, fmt.Sprintf("Employee Roster | generated %s | page %d of {nb}",
			r.GeneratedAt.Format("Jan 02, 2006 15:04"), pdf.PageNo()), "", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})

	pdf.AddPage()
	pageW, _ := pdf.GetPageSize()
	marginL, _, marginR, _ := pdf.GetMargins()
	contentW := pageW - marginL - marginR

	// ── Header bar ───────────────────────────────────────────────────────────
	pdf.SetFillColor(30, 30, 30)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 10, "  EMPLOYEE ROSTER", "", 1, "L", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(3)

	// ── View summary ─────────────────────────────────────────────────────────
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 5.5, "VIEW", "LRT", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	summary := summaryLines(r)
	for i, line := range summary {
		border := "LR"
		if i == len(summary)-1 {
			border = "LRB"
		}
		pdf.CellFormat(contentW, 5.5, tr(line), border, 1, "L", false, 0, "")
	}
	pdf.Ln(5)

	// ── Table ────────────────────────────────────────────────────────────────
	header := func() {
		pdf.SetFillColor(30, 30, 30)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 8.5)
		for _, c := range columns {
			pdf.CellFormat(contentW*c.frac, 7, c.title, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetTextColor(0, 0, 0)
	}
	header()

	_, pageH := pdf.GetPageSize()
	_, _, _, marginB := pdf.GetMargins()
	rowH := 6.5
	pdf.SetFont("Helvetica", "", 8.5)
	for i, e := range r.Employees {
		if err := ctx.Err(); err != nil {
			return err
		}
		if pdf.GetY()+rowH > pageH-marginB {
			pdf.AddPage()
			header()
			pdf.SetFont("Helvetica", "", 8.5)
		}
		// Alternating row background
		if i%2 == 0 {
			pdf.SetFillColor(250, 250, 250)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		for _, c := range columns {
			pdf.CellFormat(contentW*c.frac, rowH, clip(pdf, tr(c.value(e)), contentW*c.frac-2), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
	}
	if len(r.Employees) == 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(contentW, rowH, "No employees match the current view.", "1", 1, "C", false, 0, "")
	}

	return pdf.Output(w)
}

func summaryLines(r domain.Report) []string {
	s := r.State
	lines := []string{fmt.Sprintf("Matching employees: %d", len(r.Employees))}
	if s.Search != "" {
		lines = append(lines, fmt.Sprintf("Search: %q", s.Search))
	}
	if !s.Filters.IsZero() {
		var parts []string
		if s.Filters.Name != "" {
			parts = append(parts, "name contains "+s.Filters.Name)
		}
		if s.Filters.Department != "" {
			parts = append(parts, "department contains "+s.Filters.Department)
		}
		if s.Filters.Role != "" {
			parts = append(parts, "role contains "+s.Filters.Role)
		}
		lines = append(lines, "Filters: "+strings.Join(parts, "; "))
	}
	lines = append(lines, "Sorted by: "+sortLabel(s.Sort))
	return lines
}

func sortLabel(k domain.SortKey) string {
	switch k {
	case domain.SortFirstName:
		return "first name"
	case domain.SortDepartment:
		return "department"
	default:
		return "insertion order"
	}
}

// clip shortens s with an ellipsis so it fits in width millimetres. s must
// already be translated to the font's single-byte encoding.
func clip(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > width {
		s = s[:len(s)-1]
	}
	return s + "..."
}
