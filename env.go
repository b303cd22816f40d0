package berkas

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// GetEnv mengambil environment variable berdasarkan key.
// Returns empty string jika variable tidak ada.
func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvOrDefault mengambil environment variable atau return default value jika tidak ada.
// Useful untuk provide fallback values untuk configuration.
//
// Example:
//
//	port := GetEnvOrDefault("SERVER_PORT", "8080")
func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// ParseEnvInt mengurai string integer dari variabel lingkungan.
func ParseEnvInt(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid integer value: %q", value)
	}
	return n, nil
}

// ParseEnvInt64 mengurai string integer 64-bit dari variabel lingkungan.
// Digunakan untuk nilai berbasis milidetik seperti masa berlaku token.
func ParseEnvInt64(value string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer value: %q", value)
	}
	return n, nil
}

// ParseEnvDuration mengurai string durasi dari variabel lingkungan.
// Mengembalikan 0 jika input kosong.
//
// Example:
//
//	timeout, err := ParseEnvDuration("30s") // returns 30 * time.Second, nil
func ParseEnvDuration(value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid duration value: %q", value)
	}
	return d, nil
}

// ParseEnvBool mengurai string boolean dari variabel lingkungan.
// Nilai yang dikenali sebagai `true` (tidak case-sensitive) adalah "true", "yes", "1", "on".
// Semua nilai lain dianggap `false`.
func ParseEnvBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "1", "on":
		return true
	}
	return false
}

// ParseEnvList memecah daftar yang dipisahkan koma dari variabel lingkungan.
// Setiap elemen di-trim; elemen kosong dibuang.
func ParseEnvList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
