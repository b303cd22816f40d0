package berkas

import (
	"crypto/rand"
	"encoding/hex"
	"net"
	"net/http"
	"strings"
)

// GenerateSecureToken menghasilkan token random yang cryptographically secure.
// Token di-generate menggunakan crypto/rand dan di-encode sebagai hex string.
// Dipakai antara lain untuk request ID pada logger middleware.
//
// Example:
//
//	id, err := GenerateSecureToken(16) // hex string sepanjang 32 karakter
func GenerateSecureToken(length int) (string, error) {
	b := make([]byte, length)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// lastSegment memecah value pada whitespace dan mengambil segmen terakhir.
// Dipakai untuk nilai header token, supaya prefix skema seperti
// "Bearer <token>" tetap diterima. Returns false jika value kosong.
func lastSegment(value string) (string, bool) {
	pieces := strings.Fields(value)
	if len(pieces) == 0 {
		return "", false
	}
	return pieces[len(pieces)-1], true
}

// isBlank reports whether s is empty or whitespace-only
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// GetClientIP mengekstrak client IP address dari HTTP request.
// Mengecek X-Forwarded-For dan X-Real-IP headers (untuk proxy scenarios),
// falls back ke RemoteAddr jika headers tidak ada.
func GetClientIP(r *http.Request) string {
	if xForwardedFor := r.Header.Get("X-Forwarded-For"); xForwardedFor != "" {
		ips := strings.Split(xForwardedFor, ",")
		if clientIP := strings.TrimSpace(ips[0]); clientIP != "" {
			return CleanIPAddress(clientIP)
		}
	}

	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return CleanIPAddress(strings.TrimSpace(realIP))
	}

	return CleanIPAddress(r.RemoteAddr)
}

// CleanIPAddress membuang port number dari address string jika ada.
// Menangani format IPv4 dan IPv6.
func CleanIPAddress(addr string) string {
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return strings.Trim(addr, "[]")
}
