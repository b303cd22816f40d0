package berkas

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// User represents a user entity.
// Token menyimpan token aktif milik user; string kosong berarti tidak ada sesi aktif.
// Hanya satu token yang tersimpan per user, jadi login baru mencabut token lama.
type User struct {
	ID          string   `json:"id"`
	Username    string   `json:"username"`
	Password    string   `json:"-"`
	Token       string   `json:"-"`
	Authorities []string `json:"authorities,omitempty"`
}

// UserStore defines the interface for user storage operations
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByToken(ctx context.Context, token string) (*User, error)
	Save(ctx context.Context, user *User) error
}

// DatabaseUserStore is the database-backed implementation of UserStore
type DatabaseUserStore struct {
	db Database
}

// NewDatabaseUserStore membuat user store baru di atas Database.
//
// Parameters:
//   - db: Database instance untuk execute queries
//
// Returns:
//   - *DatabaseUserStore: user store instance
//
// Example:
//
//	userStore := NewDatabaseUserStore(db)
func NewDatabaseUserStore(db Database) *DatabaseUserStore {
	return &DatabaseUserStore{db: db}
}

// FindByUsername mencari user berdasarkan username (case-sensitive, exact match).
//
// Parameters:
//   - ctx: context untuk membatalkan operasi
//   - username: username yang akan dicari
//
// Returns:
//   - *User: User struct jika ditemukan
//   - error: ErrNotFound jika user tidak ada, atau error lain jika query gagal
//
// Example:
//
//	user, err := userStore.FindByUsername(ctx, "alice")
func (s *DatabaseUserStore) FindByUsername(ctx context.Context, username string) (*User, error) {
	query := s.db.Rebind(
		`SELECT id, username, password, COALESCE(token, ''), authorities
		 FROM users WHERE username = $1`,
	)

	user := &User{}
	var authorities string
	err := s.db.QueryRow(ctx, query, username).
		Scan(&user.ID, &user.Username, &user.Password, &user.Token, &authorities)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}

	user.Authorities = splitAuthorities(authorities)
	return user, nil
}

// FindByToken mencari user yang token aktifnya sama persis dengan token yang diberikan.
// Lookup ini adalah gerbang utama autentikasi: token yang sudah dicabut
// tidak akan cocok dengan row manapun.
//
// Parameters:
//   - ctx: context untuk membatalkan operasi
//   - token: token string yang akan dicocokkan
//
// Returns:
//   - *User: User pemilik token jika ditemukan
//   - error: ErrNotFound jika tidak ada user dengan token tersebut
//
// Example:
//
//	user, err := userStore.FindByToken(ctx, tokenString)
func (s *DatabaseUserStore) FindByToken(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, ErrNotFound
	}

	query := s.db.Rebind(
		`SELECT id, username, password, COALESCE(token, ''), authorities
		 FROM users WHERE token = $1`,
	)

	user := &User{}
	var authorities string
	err := s.db.QueryRow(ctx, query, token).
		Scan(&user.ID, &user.Username, &user.Password, &user.Token, &authorities)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by token: %w", err)
	}

	user.Authorities = splitAuthorities(authorities)
	return user, nil
}

// Save menyimpan user ke database dengan upsert berdasarkan username.
// User baru di-insert dengan ID yang di-generate; user yang sudah ada
// di-update (password, token, authorities). Token kosong disimpan sebagai NULL.
//
// Parameters:
//   - ctx: context untuk membatalkan operasi
//   - user: User struct yang akan disimpan
//
// Returns:
//   - error: error jika query gagal
//
// Example:
//
//	user.Token = newToken
//	err := userStore.Save(ctx, user)
func (s *DatabaseUserStore) Save(ctx context.Context, user *User) error {
	if user.ID == "" {
		user.ID = NewUuid().String()
	}

	query := s.db.Rebind(
		`INSERT INTO users (id, username, password, token, authorities)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5)
		 ON CONFLICT (username) DO UPDATE SET
		   password = EXCLUDED.password,
		   token = EXCLUDED.token,
		   authorities = EXCLUDED.authorities`,
	)

	err := s.db.Exec(ctx, query,
		user.ID,
		user.Username,
		user.Password,
		user.Token,
		joinAuthorities(user.Authorities),
	)

	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	return nil
}

// isNoRows reports whether err means the query matched no rows
func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}

// splitAuthorities parses the comma-separated authorities column
func splitAuthorities(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// joinAuthorities serializes authorities for the comma-separated column
func joinAuthorities(authorities []string) string {
	return strings.Join(authorities, ",")
}

// MockUserStore is a mock implementation for testing
type MockUserStore struct {
	users map[string]*User
}

// NewMockUserStore membuat mock user store untuk testing.
// Mock store menyimpan users dalam memory dan cocok untuk unit tests.
//
// Returns:
//   - *MockUserStore: mock store instance dengan empty users map
//
// Example:
//
//	mockStore := NewMockUserStore()
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		users: make(map[string]*User),
	}
}

// FindByUsername mencari user berdasarkan username dalam mock store.
func (s *MockUserStore) FindByUsername(ctx context.Context, username string) (*User, error) {
	if user, exists := s.users[username]; exists {
		copied := *user
		return &copied, nil
	}
	return nil, ErrNotFound
}

// FindByToken mencari user berdasarkan token aktif dalam mock store.
func (s *MockUserStore) FindByToken(ctx context.Context, token string) (*User, error) {
	if token == "" {
		return nil, ErrNotFound
	}
	for _, user := range s.users {
		if user.Token == token {
			copied := *user
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

// Save menyimpan user ke mock store (upsert berdasarkan username).
func (s *MockUserStore) Save(ctx context.Context, user *User) error {
	if user.ID == "" {
		user.ID = NewUuid().String()
	}
	copied := *user
	s.users[user.Username] = &copied
	return nil
}
