package ports

import (
	"context"
	"io"

	"github.com/csg33k/roster/internal/domain"
)

// EmployeeStore is the authoritative, ordered collection of employees.
// Misses are reported through the boolean results, never as errors.
type EmployeeStore interface {
	Append(e domain.Employee) bool
	Replace(id int64, e domain.Employee) bool
	Remove(id int64) bool
	Find(id int64) (domain.Employee, bool)
	List() []domain.Employee
	Len() int
	MaxID() int64
}

// SeedSource supplies the starting record collection.
type SeedSource interface {
	Load(ctx context.Context) ([]domain.Employee, error)
}

// ReportGenerator defines the roster report output port.
type ReportGenerator interface {
	// Generate writes a report of r.Employees, described by r.State, to w.
	Generate(ctx context.Context, r domain.Report, w io.Writer) error
}
