package berkas

import (
	"context"
	"fmt"
	"maps"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresTx wraps pgx.Tx to implement Tx interface
type PostgresTx struct {
	tx pgx.Tx
}

func (p *PostgresTx) Exec(ctx context.Context, query string, args ...interface{}) error {
	_, err := p.tx.Exec(ctx, query, args...)
	return err
}

func (p *PostgresTx) Query(ctx context.Context, query string, args ...interface{}) (Rows, error) {
	return p.tx.Query(ctx, query, args...)
}

func (p *PostgresTx) QueryRow(ctx context.Context, query string, args ...interface{}) Row {
	return p.tx.QueryRow(ctx, query, args...)
}

func (p *PostgresTx) Commit(ctx context.Context) error {
	return p.tx.Commit(ctx)
}

func (p *PostgresTx) Rollback(ctx context.Context) error {
	return p.tx.Rollback(ctx)
}

// PostgresDatabase is the PostgreSQL implementation of Database interface
type PostgresDatabase struct {
	pool *pgxpool.Pool
}

// NewPostgresDatabase membuat koneksi database PostgreSQL baru.
// Koneksi di-test dengan ping sebelum dikembalikan.
//
// Parameters:
//   - config: DatabaseConfig berisi konfigurasi koneksi database
//
// Returns:
//   - *PostgresDatabase: instance database yang siap digunakan
//   - error: error jika gagal membuat connection pool
//
// Example:
//
//	db, err := NewPostgresDatabase(config)
//	if err != nil {
//	  log.Fatal(err)
//	}
func NewPostgresDatabase(config DatabaseConfig) (*PostgresDatabase, error) {
	connString := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		config.Username,
		config.Password,
		config.Host,
		config.Port,
		config.Database,
		config.SSLMode,
	)

	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	poolConfig.MaxConns = int32(config.MaxConns)

	if poolConfig.ConnConfig.RuntimeParams == nil {
		poolConfig.ConnConfig.RuntimeParams = make(map[string]string)
	}
	maps.Copy(poolConfig.ConnConfig.RuntimeParams, config.RuntimeParams)

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Test connection
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresDatabase{pool: pool}, nil
}

// Exec mengeksekusi write query (INSERT, UPDATE, DELETE).
//
// Parameters:
//   - ctx: context untuk membatalkan operasi
//   - query: SQL query untuk dieksekusi
//   - args: parameter untuk query
//
// Returns:
//   - error: error jika query execution gagal
//
// Example:
//
//	err := db.Exec(ctx, "UPDATE users SET token = $1 WHERE username = $2", token, username)
func (db *PostgresDatabase) Exec(ctx context.Context, query string, args ...interface{}) error {
	_, err := db.pool.Exec(ctx, query, args...)
	return err
}

// Query mengeksekusi read query (SELECT) dan mengembalikan multiple rows.
//
// Parameters:
//   - ctx: context untuk membatalkan operasi
//   - query: SQL SELECT query
//   - args: parameter untuk query
//
// Returns:
//   - Rows: result set dari query
//   - error: error jika query execution gagal
//
// Example:
//
//	rows, err := db.Query(ctx, "SELECT id, name FROM files ORDER BY name")
func (db *PostgresDatabase) Query(ctx context.Context, query string, args ...interface{}) (Rows, error) {
	rows, err := db.pool.Query(ctx, query, args...)
	return rows, err
}

// QueryRow mengeksekusi read query yang mengembalikan single row.
//
// Parameters:
//   - ctx: context untuk membatalkan operasi
//   - query: SQL SELECT query
//   - args: parameter untuk query
//
// Returns:
//   - Row: single row result yang bisa di-scan
//
// Example:
//
//	err := db.QueryRow(ctx, "SELECT token FROM users WHERE username = $1", username).Scan(&token)
func (db *PostgresDatabase) QueryRow(ctx context.Context, query string, args ...interface{}) Row {
	return db.pool.QueryRow(ctx, query, args...)
}

// Begin memulai transaction baru.
//
// Parameters:
//   - ctx: context untuk membatalkan operasi
//
// Returns:
//   - Tx: transaction object yang bisa digunakan untuk execute queries
//   - error: error jika gagal membuat transaction
//
// Example:
//
//	tx, err := db.Begin(ctx)
//	if err != nil {
//	  return err
//	}
//	defer tx.Rollback(ctx)
func (db *PostgresDatabase) Begin(ctx context.Context) (Tx, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return &PostgresTx{tx: tx}, nil
}

// Close menutup connection pool.
// Harus dipanggil sebelum aplikasi shutdown untuk cleanup yang proper.
//
// Returns:
//   - error: selalu nil, tapi disediakan untuk compatibility dengan interface
//
// Example:
//
//	defer db.Close()
func (db *PostgresDatabase) Close() error {
	db.pool.Close()
	return nil
}

// DriverName returns the driver name
func (db *PostgresDatabase) DriverName() string {
	return "postgres"
}

// Rebind returns the query as is for PostgreSQL (using $1, $2)
func (db *PostgresDatabase) Rebind(query string) string {
	return query
}

// WithTx mengeksekusi function dalam transaction dengan auto rollback/commit.
// Jika fn return error, transaction di-rollback. Jika sukses, transaction di-commit.
//
// Parameters:
//   - ctx: context untuk membatalkan operasi
//   - fn: function yang berisi query operations dalam transaction
//
// Returns:
//   - error: error dari fn execution atau commit/rollback
//
// Example:
//
//	err := db.WithTx(ctx, func(ctx context.Context, tx Tx) error {
//	  return tx.Exec(ctx, "DELETE FROM files WHERE name = $1", name)
//	})
func (db *PostgresDatabase) WithTx(ctx context.Context, fn TransactionFunc) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback(ctx) //nolint:errcheck
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		tx.Rollback(ctx) //nolint:errcheck
		return err
	}

	return tx.Commit(ctx)
}
