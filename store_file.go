package berkas

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// File represents a stored file's metadata.
// Timestamps adalah epoch milliseconds. Isi file disimpan terpisah
// di tabel file_contents supaya listing tidak perlu membaca blob.
type File struct {
	ID          string `json:"id"`
	Name        string `json:"filename"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
	CreatedAt   int64  `json:"createdAt"`
	EditedAt    int64  `json:"editedAt"`
}

// FileStore defines the interface for file storage operations
type FileStore interface {
	Save(ctx context.Context, file *File) error
	Rename(ctx context.Context, fileID string, newName string) error
	FindByName(ctx context.Context, name string) (*File, error)
	FindAll(ctx context.Context, limit int) ([]File, error)
	DeleteByName(ctx context.Context, name string) (int64, error)
	SaveContent(ctx context.Context, fileID string, content []byte) error
	FindContent(ctx context.Context, fileID string) ([]byte, error)
}

// DatabaseFileStore is the database-backed implementation of FileStore
type DatabaseFileStore struct {
	db Database
}

// NewDatabaseFileStore membuat file store baru di atas Database.
//
// Parameters:
//   - db: Database instance untuk execute queries
//
// Returns:
//   - *DatabaseFileStore: file store instance
//
// Example:
//
//	fileStore := NewDatabaseFileStore(db)
func NewDatabaseFileStore(db Database) *DatabaseFileStore {
	return &DatabaseFileStore{db: db}
}

// Save menyimpan metadata file baru. Auto-generate ID dan timestamps
// jika belum di-set.
//
// Parameters:
//   - ctx: context untuk membatalkan operasi
//   - file: File struct dengan metadata yang akan disimpan
//
// Returns:
//   - error: error jika INSERT query gagal
//
// Example:
//
//	file := &File{Name: "report.pdf", ContentType: "application/pdf", Size: 1024}
//	err := fileStore.Save(ctx, file)
func (s *DatabaseFileStore) Save(ctx context.Context, file *File) error {
	if file.ID == "" {
		file.ID = NewUuid().String()
	}

	now := time.Now().UnixMilli()
	if file.CreatedAt == 0 {
		file.CreatedAt = now
	}
	if file.EditedAt == 0 {
		file.EditedAt = now
	}

	query := s.db.Rebind(
		`INSERT INTO files (id, name, content_type, size, created_at, edited_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
	)

	err := s.db.Exec(ctx, query,
		file.ID,
		file.Name,
		file.ContentType,
		file.Size,
		file.CreatedAt,
		file.EditedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}

	return nil
}

// Rename mengganti nama satu file berdasarkan id dan update edited_at timestamp.
//
// Parameters:
//   - ctx: context untuk membatalkan operasi
//   - fileID: id file yang akan di-rename
//   - newName: nama file baru
//
// Returns:
//   - error: error jika UPDATE query gagal
//
// Example:
//
//	err := fileStore.Rename(ctx, file.ID, "new.txt")
func (s *DatabaseFileStore) Rename(ctx context.Context, fileID string, newName string) error {
	query := s.db.Rebind("UPDATE files SET name = $1, edited_at = $2 WHERE id = $3")
	if err := s.db.Exec(ctx, query, newName, time.Now().UnixMilli(), fileID); err != nil {
		return fmt.Errorf("failed to rename file: %w", err)
	}

	return nil
}

// FindByName mencari satu file berdasarkan nama (exact match, case-sensitive).
// Jika ada beberapa file dengan nama sama, yang pertama (terurut created_at)
// yang dikembalikan.
//
// Parameters:
//   - ctx: context untuk membatalkan operasi
//   - name: nama file yang akan dicari
//
// Returns:
//   - *File: metadata file jika ditemukan
//   - error: ErrNotFound jika tidak ada file dengan nama tersebut
//
// Example:
//
//	file, err := fileStore.FindByName(ctx, "report.pdf")
func (s *DatabaseFileStore) FindByName(ctx context.Context, name string) (*File, error) {
	query := s.db.Rebind(
		`SELECT id, name, content_type, size, created_at, edited_at
		 FROM files WHERE name = $1
		 ORDER BY created_at LIMIT 1`,
	)

	file := &File{}
	err := s.db.QueryRow(ctx, query, name).
		Scan(&file.ID, &file.Name, &file.ContentType, &file.Size, &file.CreatedAt, &file.EditedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find file by name: %w", err)
	}

	return file, nil
}

// FindAll mengembalikan daftar metadata semua file.
// Jika limit > 0, hasil diurutkan by name ascending dan dipotong sebanyak limit.
//
// Parameters:
//   - ctx: context untuk membatalkan operasi
//   - limit: jumlah maksimal file yang dikembalikan, 0 berarti semua
//
// Returns:
//   - []File: daftar metadata file
//   - error: error jika query gagal
//
// Example:
//
//	files, err := fileStore.FindAll(ctx, 10)
func (s *DatabaseFileStore) FindAll(ctx context.Context, limit int) ([]File, error) {
	query := `SELECT id, name, content_type, size, created_at, edited_at
	          FROM files ORDER BY name`
	args := []interface{}{}

	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := s.db.Query(ctx, s.db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	defer rows.Close()

	files := []File{}
	for rows.Next() {
		var file File
		if err := rows.Scan(&file.ID, &file.Name, &file.ContentType, &file.Size, &file.CreatedAt, &file.EditedAt); err != nil {
			return nil, fmt.Errorf("failed to scan file row: %w", err)
		}
		files = append(files, file)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file rows: %w", err)
	}

	return files, nil
}

// DeleteByName menghapus semua file yang namanya sama persis dengan name,
// beserta isinya di file_contents.
//
// Parameters:
//   - ctx: context untuk membatalkan operasi
//   - name: nama file yang akan dihapus (exact match, case-sensitive)
//
// Returns:
//   - int64: jumlah file yang dihapus
//   - error: error jika DELETE query gagal
//
// Example:
//
//	count, err := fileStore.DeleteByName(ctx, "report.pdf")
func (s *DatabaseFileStore) DeleteByName(ctx context.Context, name string) (int64, error) {
	var count int64
	countQuery := s.db.Rebind("SELECT COUNT(*) FROM files WHERE name = $1")
	if err := s.db.QueryRow(ctx, countQuery, name).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count files for delete: %w", err)
	}

	if count == 0 {
		return 0, nil
	}

	err := s.db.WithTx(ctx, func(ctx context.Context, tx Tx) error {
		contentQuery := s.db.Rebind(
			"DELETE FROM file_contents WHERE file_id IN (SELECT id FROM files WHERE name = $1)",
		)
		if err := tx.Exec(ctx, contentQuery, name); err != nil {
			return err
		}

		return tx.Exec(ctx, s.db.Rebind("DELETE FROM files WHERE name = $1"), name)
	})

	if err != nil {
		return 0, fmt.Errorf("failed to delete file: %w", err)
	}

	return count, nil
}

// SaveContent menyimpan isi file sebagai blob, upsert berdasarkan file id.
//
// Parameters:
//   - ctx: context untuk membatalkan operasi
//   - fileID: id file pemilik content
//   - content: isi file
//
// Returns:
//   - error: error jika query gagal
//
// Example:
//
//	err := fileStore.SaveContent(ctx, file.ID, data)
func (s *DatabaseFileStore) SaveContent(ctx context.Context, fileID string, content []byte) error {
	query := s.db.Rebind(
		`INSERT INTO file_contents (file_id, content) VALUES ($1, $2)
		 ON CONFLICT (file_id) DO UPDATE SET content = EXCLUDED.content`,
	)

	if err := s.db.Exec(ctx, query, fileID, content); err != nil {
		return fmt.Errorf("failed to save file content: %w", err)
	}

	return nil
}

// FindContent mengambil isi file berdasarkan file id.
//
// Parameters:
//   - ctx: context untuk membatalkan operasi
//   - fileID: id file yang isinya akan diambil
//
// Returns:
//   - []byte: isi file
//   - error: ErrNotFound jika content tidak ada
//
// Example:
//
//	content, err := fileStore.FindContent(ctx, file.ID)
func (s *DatabaseFileStore) FindContent(ctx context.Context, fileID string) ([]byte, error) {
	query := s.db.Rebind("SELECT content FROM file_contents WHERE file_id = $1")

	var content []byte
	err := s.db.QueryRow(ctx, query, fileID).Scan(&content)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find file content: %w", err)
	}

	return content, nil
}

// MockFileStore is a mock implementation for testing
type MockFileStore struct {
	files    []*File
	contents map[string][]byte
}

// NewMockFileStore membuat mock file store untuk testing.
//
// Returns:
//   - *MockFileStore: mock store instance kosong
//
// Example:
//
//	mockStore := NewMockFileStore()
func NewMockFileStore() *MockFileStore {
	return &MockFileStore{
		files:    []*File{},
		contents: make(map[string][]byte),
	}
}

// Save menyimpan metadata file ke mock store.
func (s *MockFileStore) Save(ctx context.Context, file *File) error {
	if file.ID == "" {
		file.ID = NewUuid().String()
	}

	now := time.Now().UnixMilli()
	if file.CreatedAt == 0 {
		file.CreatedAt = now
	}
	if file.EditedAt == 0 {
		file.EditedAt = now
	}

	copied := *file
	s.files = append(s.files, &copied)
	return nil
}

// Rename mengganti nama satu file berdasarkan id dalam mock store.
func (s *MockFileStore) Rename(ctx context.Context, fileID string, newName string) error {
	for _, file := range s.files {
		if file.ID == fileID {
			file.Name = newName
			file.EditedAt = time.Now().UnixMilli()
		}
	}
	return nil
}

// FindByName mencari satu file berdasarkan nama dalam mock store.
func (s *MockFileStore) FindByName(ctx context.Context, name string) (*File, error) {
	for _, file := range s.files {
		if file.Name == name {
			copied := *file
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

// FindAll mengembalikan daftar file dalam mock store.
func (s *MockFileStore) FindAll(ctx context.Context, limit int) ([]File, error) {
	files := make([]File, 0, len(s.files))
	for _, file := range s.files {
		files = append(files, *file)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})

	if limit > 0 && limit < len(files) {
		files = files[:limit]
	}

	return files, nil
}

// DeleteByName menghapus semua file dengan nama yang cocok dari mock store.
func (s *MockFileStore) DeleteByName(ctx context.Context, name string) (int64, error) {
	var count int64
	kept := s.files[:0]
	for _, file := range s.files {
		if file.Name == name {
			delete(s.contents, file.ID)
			count++
			continue
		}
		kept = append(kept, file)
	}
	s.files = kept
	return count, nil
}

// SaveContent menyimpan isi file dalam mock store.
func (s *MockFileStore) SaveContent(ctx context.Context, fileID string, content []byte) error {
	s.contents[fileID] = content
	return nil
}

// FindContent mengambil isi file dari mock store.
func (s *MockFileStore) FindContent(ctx context.Context, fileID string) ([]byte, error) {
	content, exists := s.contents[fileID]
	if !exists {
		return nil, ErrNotFound
	}
	return content, nil
}
