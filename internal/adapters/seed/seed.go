// Package seed supplies the starting roster: a built-in demo list, a YAML or
// JSON file, or an employees table in an SQLite database.
package seed

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/csg33k/roster/internal/domain"
	"github.com/csg33k/roster/internal/ports"
	"github.com/csg33k/roster/internal/validator"
)

var (
	_ ports.SeedSource = Static(nil)
	_ ports.SeedSource = (*FileSource)(nil)
	_ ports.SeedSource = (*SQLiteSource)(nil)
)

// Static is a fixed in-process list of employees.
type Static []domain.Employee

func (s Static) Load(context.Context) ([]domain.Employee, error) {
	out := make([]domain.Employee, len(s))
	copy(out, s)
	return out, nil
}

// FileSource reads a sequence of employees from a YAML document. JSON arrays
// parse as well since JSON is valid YAML.
type FileSource struct {
	Path string
}

func File(path string) *FileSource {
	return &FileSource{Path: path}
}

func (f *FileSource) Load(ctx context.Context) ([]domain.Employee, error) {
	raw, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var list []domain.Employee
	if err := yaml.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", f.Path, err)
	}
	return list, nil
}

// Pick chooses the configured source: the database wins over the file, and
// the built-in roster is used when neither is set.
func Pick(file, db string) ports.SeedSource {
	switch {
	case db != "":
		return SQLite(db)
	case file != "":
		return File(file)
	default:
		return Builtin()
	}
}

// Sanitize drops records that fail validation or repeat an earlier id,
// logging each one at warn.
func Sanitize(list []domain.Employee, logger *zap.Logger) []domain.Employee {
	seen := make(map[int64]struct{}, len(list))
	out := make([]domain.Employee, 0, len(list))
	for i, e := range list {
		if _, dup := seen[e.ID]; dup {
			logger.Warn("skipping seed record with duplicate id", zap.Int("index", i), zap.Int64("id", e.ID))
			continue
		}
		if e.ID <= 0 || !validator.Valid(e) {
			logger.Warn("skipping invalid seed record", zap.Int("index", i), zap.Int64("id", e.ID))
			continue
		}
		seen[e.ID] = struct{}{}
		out = append(out, e)
	}
	return out
}
