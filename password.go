package berkas

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost adalah bcrypt cost factor untuk hashing password.
const BcryptCost = 12

// HashPassword melakukan hash password menggunakan bcrypt algorithm.
// Menggunakan BcryptCost constant untuk set hashing difficulty level.
//
// Example:
//
//	hashedPassword, err := HashPassword("rahasia123")
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword memverifikasi plaintext password terhadap hash yang tersimpan.
// bcrypt melakukan comparison yang constant-time terhadap hash.
//
// Example:
//
//	if err := VerifyPassword(user.Password, creds.Password); err != nil {
//	  // password salah
//	}
func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
