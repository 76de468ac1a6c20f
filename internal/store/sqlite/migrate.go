package sqlite

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var migrationName = regexp.MustCompile(`^(\d+)_(.+)\.(up|down)\.sql$`)

// Migration represents a database migration.
type Migration struct {
	Version     int
	Description string
	UpSQL       string
	DownSQL     string
}

// Migrator handles database migrations.
type Migrator struct {
	db *sqlx.DB
}

// NewMigrator creates a new migration handler.
func NewMigrator(db *sqlx.DB) *Migrator {
	return &Migrator{db: db}
}

// LoadMigrations loads all migrations from the embedded filesystem.
func (m *Migrator) LoadMigrations() ([]Migration, error) {
	migrations := make(map[int]*Migration)

	err := fs.WalkDir(migrationsFS, "migrations", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		// 001_description.up.sql or 001_description.down.sql
		matches := migrationName.FindStringSubmatch(filepath.Base(path))
		if len(matches) != 4 {
			return nil
		}

		version, _ := strconv.Atoi(matches[1])
		direction := matches[3]

		content, err := migrationsFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", path, err)
		}

		if _, exists := migrations[version]; !exists {
			migrations[version] = &Migration{
				Version:     version,
				Description: strings.ReplaceAll(matches[2], "_", " "),
			}
		}

		if direction == "up" {
			migrations[version].UpSQL = string(content)
		} else {
			migrations[version].DownSQL = string(content)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking migrations: %w", err)
	}

	result := make([]Migration, 0, len(migrations))
	for _, mig := range migrations {
		result = append(result, *mig)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Version < result[j].Version
	})

	return result, nil
}

// CurrentVersion returns the current schema version, 0 for a fresh file.
func (m *Migrator) CurrentVersion(ctx context.Context) (int, error) {
	if _, err := m.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			description TEXT NOT NULL DEFAULT '',
			applied_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return 0, fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var version int
	if err := m.db.GetContext(ctx, &version, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`); err != nil {
		return 0, fmt.Errorf("getting current version: %w", err)
	}

	return version, nil
}

// MigrateUp applies all pending migrations.
func (m *Migrator) MigrateUp(ctx context.Context) error {
	migrations, err := m.LoadMigrations()
	if err != nil {
		return fmt.Errorf("loading migrations: %w", err)
	}

	currentVersion, err := m.CurrentVersion(ctx)
	if err != nil {
		return err
	}

	for _, mig := range migrations {
		if mig.Version <= currentVersion {
			continue
		}

		if mig.UpSQL == "" {
			return fmt.Errorf("migration %d has no up SQL", mig.Version)
		}

		if err := m.runMigration(ctx, mig); err != nil {
			return fmt.Errorf("applying migration %d (%s): %w", mig.Version, mig.Description, err)
		}
	}

	return nil
}

// runMigration executes a migration script and records it in one transaction.
func (m *Migrator) runMigration(ctx context.Context, mig Migration) (err error) {
	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, mig.UpSQL); err != nil {
		return fmt.Errorf("executing migration: %w", err)
	}

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version, description) VALUES (?, ?)`,
		mig.Version, mig.Description,
	); err != nil {
		return fmt.Errorf("recording migration: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}
