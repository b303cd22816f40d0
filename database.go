package berkas

import (
	"context"
	"errors"
)

// ErrNotFound is returned by stores when a record does not exist
var ErrNotFound = errors.New("record not found")

// Rows represents query result rows
type Rows interface {
	Close()
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// Row represents a single query result row
type Row interface {
	Scan(dest ...interface{}) error
}

// Database is the interface for database operations
type Database interface {
	Exec(ctx context.Context, query string, args ...interface{}) error
	Query(ctx context.Context, query string, args ...interface{}) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...interface{}) Row
	Begin(ctx context.Context) (Tx, error)
	WithTx(ctx context.Context, fn TransactionFunc) error
	Close() error
	DriverName() string
	Rebind(query string) string
}

// Tx represents a database transaction
type Tx interface {
	Exec(ctx context.Context, query string, args ...interface{}) error
	Query(ctx context.Context, query string, args ...interface{}) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...interface{}) Row
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionFunc is a function that performs operations within a transaction
type TransactionFunc func(ctx context.Context, tx Tx) error

// NewDatabase membuat Database instance sesuai driver yang dikonfigurasi.
// Mendukung "postgres" (pgx pool) dan "sqlite" (file-based).
//
// Parameters:
//   - config: DatabaseConfig berisi driver dan konfigurasi koneksi
//
// Returns:
//   - Database: database instance yang siap digunakan
//   - error: error jika driver tidak dikenal atau koneksi gagal
//
// Example:
//
//	db, err := NewDatabase(config.Database)
//	if err != nil {
//	  log.Fatal(err)
//	}
//	defer db.Close()
func NewDatabase(config DatabaseConfig) (Database, error) {
	switch config.Driver {
	case "postgres":
		return NewPostgresDatabase(config)
	case "sqlite":
		return NewSQLiteDatabase(config)
	default:
		return nil, errors.New("unsupported database driver: " + config.Driver)
	}
}
