package seed_test

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/csg33k/roster/internal/adapters/seed"
	"github.com/csg33k/roster/internal/domain"
	"github.com/csg33k/roster/internal/validator"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestBuiltin_IsValidAndUnique(t *testing.T) {
	list, err := seed.Builtin().Load(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 25)

	seen := map[int64]bool{}
	for _, e := range list {
		assert.True(t, validator.Valid(e), "builtin record %d must validate", e.ID)
		assert.False(t, seen[e.ID], "duplicate builtin id %d", e.ID)
		seen[e.ID] = true
	}
}

func TestStatic_LoadReturnsCopy(t *testing.T) {
	src := seed.Static{{ID: 1, FirstName: "Ann"}}
	list, err := src.Load(context.Background())
	require.NoError(t, err)
	list[0].FirstName = "Changed"
	assert.Equal(t, "Ann", src[0].FirstName)
}

func TestFile_YAML(t *testing.T) {
	path := writeFile(t, "roster.yaml", `
- id: 1
  firstName: Ann
  lastName: Lee
  email: ann@corp.io
  department: Engineering
  role: Developer
- id: 2
  firstName: Bob
  lastName: Stone
  email: bob@corp.io
  department: Sales
  role: Account Manager
`)
	list, err := seed.File(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, domain.Employee{ID: 2, FirstName: "Bob", LastName: "Stone", Email: "bob@corp.io", Department: "Sales", Role: "Account Manager"}, list[1])
}

func TestFile_JSON(t *testing.T) {
	path := writeFile(t, "roster.json", `[
  {"id": 7, "firstName": "Cara", "lastName": "Diaz", "email": "cara@corp.io", "department": "HR", "role": "Recruiter"}
]`)
	list, err := seed.File(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(7), list[0].ID)
	assert.Equal(t, "Recruiter", list[0].Role)
}

func TestFile_Errors(t *testing.T) {
	_, err := seed.File(filepath.Join(t.TempDir(), "missing.yaml")).Load(context.Background())
	assert.Error(t, err)

	path := writeFile(t, "bad.yaml", "id: [unterminated")
	_, err = seed.File(path).Load(context.Background())
	assert.Error(t, err)
}

func TestSQLite_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec(`
		CREATE TABLE employees (
			id INTEGER PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			email TEXT NOT NULL,
			department TEXT NOT NULL,
			role TEXT NOT NULL
		);
		INSERT INTO employees VALUES (10, 'Ann', 'Lee', 'ann@corp.io', 'Engineering', 'Developer');
		INSERT INTO employees VALUES (3, 'Bob', 'Stone', 'bob@corp.io', 'Sales', 'Account Manager');`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	list, err := seed.SQLite(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(3), list[0].ID, "rows come back in ascending id order")
	assert.Equal(t, "Stone", list[0].LastName)
	assert.Equal(t, int64(10), list[1].ID)
	assert.Equal(t, "Lee", list[1].LastName)
}

func TestSQLite_MissingTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE other (x INTEGER)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = seed.SQLite(path).Load(context.Background())
	assert.Error(t, err)
}

func TestPick(t *testing.T) {
	assert.IsType(t, seed.Static{}, seed.Pick("", ""))
	assert.IsType(t, &seed.FileSource{}, seed.Pick("a.yaml", ""))
	assert.IsType(t, &seed.SQLiteSource{}, seed.Pick("a.yaml", "a.db"))
}

func TestSanitize(t *testing.T) {
	good := domain.Employee{ID: 1, FirstName: "Ann", LastName: "Lee", Email: "ann@corp.io", Department: "Eng", Role: "Dev"}
	dup := good
	dup.FirstName = "Duplicate"
	noRole := domain.Employee{ID: 2, FirstName: "Bob", LastName: "Stone", Email: "bob@corp.io", Department: "Sales"}
	noID := good
	noID.ID = 0

	core, logs := observer.New(zap.WarnLevel)
	out := seed.Sanitize([]domain.Employee{good, dup, noRole, noID}, zap.New(core))

	require.Len(t, out, 1)
	assert.Equal(t, "Ann", out[0].FirstName)
	assert.Equal(t, 3, logs.Len())
}
