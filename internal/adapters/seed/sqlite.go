package seed

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/csg33k/roster/internal/domain"
)

// SQLiteSource imports the roster from an existing database. The database is
// opened read-only and closed after the import; edits are never written back.
// Records are loaded in ascending id order.
type SQLiteSource struct {
	DSN string
}

func SQLite(dsn string) *SQLiteSource {
	return &SQLiteSource{DSN: dsn}
}

func (s *SQLiteSource) Load(ctx context.Context) ([]domain.Employee, error) {
	db, err := sql.Open("sqlite3", "file:"+s.DSN+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open seed db: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `
		SELECT id, first_name, last_name, email, department, role
		FROM employees ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query seed employees: %w", err)
	}
	defer rows.Close()

	var list []domain.Employee
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Department, &e.Role); err != nil {
			return nil, fmt.Errorf("scan seed employee: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}
