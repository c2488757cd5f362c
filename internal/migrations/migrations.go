// Package migrations holds the database schema and the reference data seed.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/josfem004/cl-clone/internal/logger"
)

//go:embed sql/*.sql
var schemaFS embed.FS

//go:embed seed.sql
var seedSQL string

// Apply runs every schema file in name order. All statements are idempotent.
func Apply(ctx context.Context, db *sqlx.DB) error {
	names, err := fs.Glob(schemaFS, "sql/*.sql")
	if err != nil {
		return err
	}
	sort.Strings(names)

	for _, name := range names {
		content, err := schemaFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		if err := execScript(ctx, db, string(content)); err != nil {
			return fmt.Errorf("apply %s: %w", name, err)
		}
		logger.Log.Infow("migration applied", "file", name)
	}
	return nil
}

// Seed inserts the default cities and categories. Existing rows are kept.
func Seed(ctx context.Context, db *sqlx.DB) error {
	if err := execScript(ctx, db, seedSQL); err != nil {
		return fmt.Errorf("seed reference data: %w", err)
	}
	logger.Log.Info("reference data seeded")
	return nil
}

func execScript(ctx context.Context, db *sqlx.DB, script string) error {
	for _, stmt := range Statements(script) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// Statements splits a script on semicolons. Scripts must not contain
// semicolons inside literals.
func Statements(script string) []string {
	var stmts []string
	for _, s := range strings.Split(script, ";") {
		if s = strings.TrimSpace(s); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}
