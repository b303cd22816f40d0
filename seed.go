package berkas

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// SeedDemoData mengisi database dengan akun dan file demo.
// Idempotent: seeding di-skip jika user demo pertama sudah ada,
// jadi aman dipanggil setiap startup dengan SEED_DEMO aktif.
//
// Parameters:
//   - ctx: context untuk membatalkan operasi
//   - userStore: UserStore untuk menyimpan akun demo
//   - fileStore: FileStore untuk menyimpan file demo
//   - logger: Logger untuk mencatat progress seeding
//
// Returns:
//   - error: error jika seeding gagal
//
// Example:
//
//	if config.SeedDemo {
//	  if err := SeedDemoData(ctx, userStore, fileStore, logger); err != nil {
//	    log.Fatal(err)
//	  }
//	}
func SeedDemoData(ctx context.Context, userStore UserStore, fileStore FileStore, logger *Logger) error {
	if _, err := userStore.FindByUsername(ctx, "test"); err == nil {
		logger.Info("demo data already seeded, skipping")
		return nil
	} else if !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("failed to check seed state: %w", err)
	}

	demoUsers := []struct {
		username string
		password string
	}{
		{"test", "test"},
		{"user2@mail.edu", "234"},
	}

	for _, u := range demoUsers {
		hash, err := HashPassword(u.password)
		if err != nil {
			return fmt.Errorf("failed to hash demo password: %w", err)
		}

		user := &User{
			Username: u.username,
			Password: hash,
		}
		if err := userStore.Save(ctx, user); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", u.username, err)
		}
		logger.Info("seeded demo user", "username", u.username)
	}

	now := time.Now()
	demoFiles := []struct {
		name    string
		content string
		daysAgo int
	}{
		{"Lorem Ipsum.txt", loremIpsum, 10},
		{"notes.md", "# Notes\n\n- upload works\n- rename works\n- delete works\n", 7},
		{"report.csv", "quarter,revenue\nQ1,1200\nQ2,1540\nQ3,1310\n", 5},
	}

	for _, f := range demoFiles {
		createdAt := now.AddDate(0, 0, -f.daysAgo).UnixMilli()
		file := &File{
			Name:        f.name,
			ContentType: DetectContentType(f.name),
			Size:        int64(len(f.content)),
			CreatedAt:   createdAt,
			EditedAt:    createdAt,
		}

		if err := fileStore.Save(ctx, file); err != nil {
			return fmt.Errorf("failed to seed file %s: %w", f.name, err)
		}
		if err := fileStore.SaveContent(ctx, file.ID, []byte(f.content)); err != nil {
			return fmt.Errorf("failed to seed file content %s: %w", f.name, err)
		}
		logger.Info("seeded demo file", "filename", f.name)
	}

	return nil
}

const loremIpsum = `Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod
tempor incididunt ut labore et dolore magna aliqua. Ut enim ad minim veniam,
quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo
consequat. Duis aute irure dolor in reprehenderit in voluptate velit esse
cillum dolore eu fugiat nulla pariatur.
`
