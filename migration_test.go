package berkas

import (
	"context"
	"strings"
	"testing"
)

// fakeDatabase records executed queries; Query always returns zero rows
type fakeDatabase struct {
	driver   string
	executed []string
}

type fakeRows struct{}

func (r *fakeRows) Close()                         {}
func (r *fakeRows) Next() bool                     { return false }
func (r *fakeRows) Scan(dest ...interface{}) error { return nil }
func (r *fakeRows) Err() error                     { return nil }

type fakeRow struct{}

func (r *fakeRow) Scan(dest ...interface{}) error { return ErrNotFound }

func (db *fakeDatabase) Exec(ctx context.Context, query string, args ...interface{}) error {
	db.executed = append(db.executed, query)
	return nil
}

func (db *fakeDatabase) Query(ctx context.Context, query string, args ...interface{}) (Rows, error) {
	return &fakeRows{}, nil
}

func (db *fakeDatabase) QueryRow(ctx context.Context, query string, args ...interface{}) Row {
	return &fakeRow{}
}

func (db *fakeDatabase) Begin(ctx context.Context) (Tx, error) { return nil, nil }

func (db *fakeDatabase) WithTx(ctx context.Context, fn TransactionFunc) error {
	return fn(ctx, nil)
}

func (db *fakeDatabase) Close() error { return nil }

func (db *fakeDatabase) DriverName() string { return db.driver }

func (db *fakeDatabase) Rebind(query string) string { return query }

func TestGetMigrationsOrdered(t *testing.T) {
	migrations := GetMigrations()

	if len(migrations) != 3 {
		t.Fatalf("migrations = %d, want 3", len(migrations))
	}

	for i, migration := range migrations {
		if migration.Version != int64(i+1) {
			t.Errorf("migration[%d].Version = %d, want %d", i, migration.Version, i+1)
		}
	}

	names := []string{"create_users_table", "create_files_table", "create_file_contents_table"}
	for i, want := range names {
		if migrations[i].Name != want {
			t.Errorf("migration[%d].Name = %q, want %q", i, migrations[i].Name, want)
		}
	}
}

func TestRunMigrationsAppliesAll(t *testing.T) {
	db := &fakeDatabase{driver: "sqlite"}

	if err := RunMigrations(db, GetMigrations()); err != nil {
		t.Fatalf("RunMigrations() error = %v", err)
	}

	joined := strings.Join(db.executed, "\n")
	for _, table := range []string{"users", "files", "file_contents", "migrations"} {
		if !strings.Contains(joined, table) {
			t.Errorf("expected DDL for table %q", table)
		}
	}
}

func TestRunMigrationsSQLiteTypes(t *testing.T) {
	db := &fakeDatabase{driver: "sqlite"}

	if err := RunMigrations(db, GetMigrations()); err != nil {
		t.Fatalf("RunMigrations() error = %v", err)
	}

	joined := strings.Join(db.executed, "\n")
	if strings.Contains(joined, "UUID") || strings.Contains(joined, "BYTEA") {
		t.Errorf("sqlite migrations should not use postgres types")
	}
	if !strings.Contains(joined, "BLOB") {
		t.Errorf("sqlite file contents should use BLOB")
	}
}

func TestRunMigrationsPostgresTypes(t *testing.T) {
	db := &fakeDatabase{driver: "postgres"}

	if err := RunMigrations(db, GetMigrations()); err != nil {
		t.Fatalf("RunMigrations() error = %v", err)
	}

	joined := strings.Join(db.executed, "\n")
	if !strings.Contains(joined, "UUID") || !strings.Contains(joined, "BYTEA") {
		t.Errorf("postgres migrations should use UUID and BYTEA types")
	}
}

func TestRollbackMigration(t *testing.T) {
	db := &fakeDatabase{driver: "sqlite"}

	migrations := GetMigrations()
	if err := RollbackMigration(db, migrations[0]); err != nil {
		t.Fatalf("RollbackMigration() error = %v", err)
	}

	joined := strings.Join(db.executed, "\n")
	if !strings.Contains(joined, "DROP TABLE IF EXISTS users") {
		t.Errorf("rollback should drop the users table")
	}
	if !strings.Contains(joined, "DELETE FROM migrations") {
		t.Errorf("rollback should remove the migration record")
	}
}
