package berkas

import (
	"context"
)

// GetMigrations mengembalikan semua migrasi skema aplikasi, terurut berdasarkan version.
// Urutan versi:
// 1. Users
// 2. Files
// 3. File contents
func GetMigrations() []Migration {
	var migrations []Migration
	migrations = append(migrations, GetUserMigrations()...)
	migrations = append(migrations, GetFileMigrations()...)
	return migrations
}

// GetUserMigrations mengembalikan daftar migrasi terkait tabel users.
// Kolom token menyimpan token aktif milik user (NULL berarti tidak ada sesi aktif).
func GetUserMigrations() []Migration {
	return []Migration{
		{
			Version: 1,
			Name:    "create_users_table",
			Up: func(db Database) error {
				var query string
				if db.DriverName() == "sqlite" {
					query = `
						CREATE TABLE IF NOT EXISTS users (
							id TEXT PRIMARY KEY,
							username TEXT UNIQUE NOT NULL,
							password TEXT NOT NULL,
							token TEXT,
							authorities TEXT NOT NULL DEFAULT ''
						);
						CREATE INDEX IF NOT EXISTS idx_users_token ON users(token);
					`
				} else {
					query = `
						CREATE TABLE IF NOT EXISTS users (
							id UUID PRIMARY KEY,
							username VARCHAR(255) UNIQUE NOT NULL,
							password VARCHAR(255) NOT NULL,
							token TEXT,
							authorities TEXT NOT NULL DEFAULT ''
						);
						CREATE INDEX IF NOT EXISTS idx_users_token ON users(token);
					`
				}
				return db.Exec(context.Background(), query)
			},
			Down: func(db Database) error {
				query := "DROP TABLE IF EXISTS users CASCADE"
				if db.DriverName() == "sqlite" {
					query = "DROP TABLE IF EXISTS users"
				}
				return db.Exec(context.Background(), query)
			},
		},
	}
}

// GetFileMigrations mengembalikan daftar migrasi terkait tabel files dan file_contents.
// Nama file tidak unique, jadi beberapa file bisa memiliki nama yang sama.
// Timestamps disimpan sebagai epoch milliseconds. Isi file disimpan sebagai blob
// di tabel terpisah keyed by file id, supaya listing tidak menyeret blob.
func GetFileMigrations() []Migration {
	return []Migration{
		{
			Version: 2,
			Name:    "create_files_table",
			Up: func(db Database) error {
				var query string
				if db.DriverName() == "sqlite" {
					query = `
						CREATE TABLE IF NOT EXISTS files (
							id TEXT PRIMARY KEY,
							name TEXT NOT NULL,
							content_type TEXT NOT NULL DEFAULT '',
							size INTEGER NOT NULL DEFAULT 0,
							created_at INTEGER NOT NULL,
							edited_at INTEGER NOT NULL
						);
						CREATE INDEX IF NOT EXISTS idx_files_name ON files(name);
					`
				} else {
					query = `
						CREATE TABLE IF NOT EXISTS files (
							id UUID PRIMARY KEY,
							name VARCHAR(255) NOT NULL,
							content_type VARCHAR(255) NOT NULL DEFAULT '',
							size BIGINT NOT NULL DEFAULT 0,
							created_at BIGINT NOT NULL,
							edited_at BIGINT NOT NULL
						);
						CREATE INDEX IF NOT EXISTS idx_files_name ON files(name);
					`
				}
				return db.Exec(context.Background(), query)
			},
			Down: func(db Database) error {
				query := "DROP TABLE IF EXISTS files CASCADE"
				if db.DriverName() == "sqlite" {
					query = "DROP TABLE IF EXISTS files"
				}
				return db.Exec(context.Background(), query)
			},
		},
		{
			Version: 3,
			Name:    "create_file_contents_table",
			Up: func(db Database) error {
				var query string
				if db.DriverName() == "sqlite" {
					query = `
						CREATE TABLE IF NOT EXISTS file_contents (
							file_id TEXT PRIMARY KEY,
							content BLOB NOT NULL
						)
					`
				} else {
					query = `
						CREATE TABLE IF NOT EXISTS file_contents (
							file_id UUID PRIMARY KEY,
							content BYTEA NOT NULL
						)
					`
				}
				return db.Exec(context.Background(), query)
			},
			Down: func(db Database) error {
				query := "DROP TABLE IF EXISTS file_contents CASCADE"
				if db.DriverName() == "sqlite" {
					query = "DROP TABLE IF EXISTS file_contents"
				}
				return db.Exec(context.Background(), query)
			},
		},
	}
}
