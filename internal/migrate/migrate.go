// Package migrate applies the embedded PostgreSQL schema migrations.
package migrate

import (
	"context"
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
)

const dir = "migrations"

//go:embed migrations/*.sql
var migrations embed.FS

// Up applies every migration not yet recorded in schema_migrations, in file name order.
// It returns the names of the applied files.
func Up(ctx context.Context, db dbmetrics.DBExecutor) ([]string, error) {
	files, err := Files()
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY);`); err != nil {
		return nil, fmt.Errorf("create schema_migrations: %w", err)
	}

	applied := make([]string, 0, len(files))
	for _, f := range files {
		var exists bool
		if err := db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version=$1)`, f).Scan(&exists); err != nil {
			return applied, fmt.Errorf("check %s: %w", f, err)
		}
		if exists {
			continue
		}

		b, err := migrations.ReadFile(path.Join(dir, f))
		if err != nil {
			return applied, err
		}

		if _, err := db.ExecContext(ctx, string(b)); err != nil {
			return applied, fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := db.ExecContext(ctx, `INSERT INTO schema_migrations(version) VALUES ($1)`, f); err != nil {
			return applied, fmt.Errorf("record %s: %w", f, err)
		}
		applied = append(applied, f)
	}

	return applied, nil
}

// Files returns the embedded migration file names, sorted
func Files() ([]string, error) {
	entries, err := migrations.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	return files, nil
}
